package main

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// The player id is a short opaque string created once per install and
// signed so casual editing of player.dat produces a fresh id instead of an
// arbitrary chosen one.
const identitySecret = "AUGU_SUPER_SECRET_KEY_2026"

var playerID string

func identityPath() string {
	return filepath.Join(baseDir, "player.dat")
}

func signID(id string) string {
	sum := sha256.Sum256([]byte(id + identitySecret))
	return hex.EncodeToString(sum[:])
}

func newPlayerID() string {
	return uuid.NewString()[:6]
}

// loadPlayerID reads the persisted identity, regenerating it when the file
// is missing or its signature does not verify.
func loadPlayerID() string {
	encoded, err := os.ReadFile(identityPath())
	if err != nil {
		return resetPlayerID()
	}
	raw, err := base64.StdEncoding.DecodeString(string(encoded))
	if err != nil {
		return resetPlayerID()
	}
	id, sig, ok := strings.Cut(string(raw), "|")
	if !ok || signID(id) != sig {
		return resetPlayerID()
	}
	return id
}

func resetPlayerID() string {
	id := newPlayerID()
	savePlayerID(id)
	return id
}

func savePlayerID(id string) {
	raw := id + "|" + signID(id)
	encoded := base64.StdEncoding.EncodeToString([]byte(raw))
	if err := os.WriteFile(identityPath(), []byte(encoded), 0600); err != nil {
		logError("save player id: %v", err)
	}
}
