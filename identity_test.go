package main

import (
	"encoding/base64"
	"os"
	"testing"
)

func TestPlayerIDPersistsAcrossLoads(t *testing.T) {
	baseDir = t.TempDir()
	id := loadPlayerID()
	if len(id) != 6 {
		t.Fatalf("id %q, want 6 characters", id)
	}
	if again := loadPlayerID(); again != id {
		t.Fatalf("second load %q, want %q", again, id)
	}
}

func TestPlayerIDTamperRegenerates(t *testing.T) {
	baseDir = t.TempDir()
	id := loadPlayerID()

	forged := base64.StdEncoding.EncodeToString([]byte("admin|deadbeef"))
	if err := os.WriteFile(identityPath(), []byte(forged), 0600); err != nil {
		t.Fatalf("write forged file: %v", err)
	}
	got := loadPlayerID()
	if got == "admin" {
		t.Fatal("forged id accepted")
	}
	if got == id {
		t.Fatal("expected a fresh id after tampering")
	}
	// The regenerated file must verify on the next load.
	if again := loadPlayerID(); again != got {
		t.Fatalf("regenerated id not stable: %q vs %q", again, got)
	}
}

func TestPlayerIDGarbageFileRegenerates(t *testing.T) {
	baseDir = t.TempDir()
	if err := os.WriteFile(identityPath(), []byte("not base64 at all!!"), 0600); err != nil {
		t.Fatalf("write: %v", err)
	}
	id := loadPlayerID()
	if len(id) != 6 {
		t.Fatalf("id %q after garbage file", id)
	}
}
