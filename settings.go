package main

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
)

// Settings is the persisted per-install configuration: key bindings (ebiten
// key names), appearance and window options.
type Settings struct {
	MoveLeft    string `json:"moveLeft"`
	MoveRight   string `json:"moveRight"`
	Jump        string `json:"jump"`
	Chat        string `json:"chat"`
	PlayerColor string `json:"playerColor"`
	Language    string `json:"language"`
	Scale       int    `json:"scale"`
	Vsync       bool   `json:"vsync"`
}

func defaultSettings() Settings {
	return Settings{
		MoveLeft:    "A",
		MoveRight:   "D",
		Jump:        "Space",
		Chat:        "T",
		PlayerColor: "blue",
		Language:    "english",
		Scale:       1,
		Vsync:       true,
	}
}

var gs = defaultSettings()

func settingsPath() string {
	return filepath.Join(baseDir, "settings.json")
}

// loadSettings reads settings.json, creating it with defaults on first run.
func loadSettings() {
	data, err := os.ReadFile(settingsPath())
	if err != nil {
		saveSettings()
		return
	}
	s := defaultSettings()
	if err := json.Unmarshal(data, &s); err != nil {
		log.Printf("load settings: %v", err)
		return
	}
	if s.Scale < 1 {
		s.Scale = 1
	}
	if _, ok := playerColors[s.PlayerColor]; !ok {
		s.PlayerColor = "blue"
	}
	gs = s
}

func saveSettings() {
	data, err := json.MarshalIndent(gs, "", "  ")
	if err != nil {
		log.Printf("save settings: %v", err)
		return
	}
	if err := os.WriteFile(settingsPath(), data, 0644); err != nil {
		log.Printf("save settings: %v", err)
	}
}

// keyByName resolves a stored binding name to an ebiten key, falling back
// when the name is unknown.
func keyByName(name string, fallback ebiten.Key) ebiten.Key {
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		if k.String() == name {
			return k
		}
	}
	return fallback
}

// keyBindings is the resolved, per-frame input mapping.
type keyBindings struct {
	moveLeft  ebiten.Key
	moveRight ebiten.Key
	jump      ebiten.Key
	chat      ebiten.Key
}

func resolveBindings() keyBindings {
	return keyBindings{
		moveLeft:  keyByName(gs.MoveLeft, ebiten.KeyA),
		moveRight: keyByName(gs.MoveRight, ebiten.KeyD),
		jump:      keyByName(gs.Jump, ebiten.KeySpace),
		chat:      keyByName(gs.Chat, ebiten.KeyT),
	}
}
