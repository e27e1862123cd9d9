package main

import (
	"image/color"

	dark "github.com/thiagokokada/dark-mode-go"
)

// Tile kinds the server is known to send. Anything else renders gray and
// still collides; only air is passable.
const (
	blockAir     = "air"
	blockStone   = "stone"
	blockGrass   = "grass"
	blockDirt    = "dirt"
	blockWood    = "wood"
	blockSand    = "sand"
	blockBedrock = "bedrock"
)

var blockColors = map[string]color.RGBA{
	blockStone:   {128, 128, 128, 255},
	blockGrass:   {34, 139, 34, 255},
	blockDirt:    {101, 67, 33, 255},
	blockWood:    {160, 82, 45, 255},
	blockSand:    {238, 214, 175, 255},
	blockBedrock: {64, 64, 64, 255},
}

var unknownBlockColor = color.RGBA{100, 100, 100, 255}

var playerColors = map[string]color.RGBA{
	"red":    {255, 0, 0, 255},
	"blue":   {0, 0, 255, 255},
	"green":  {0, 200, 0, 255},
	"yellow": {255, 255, 0, 255},
	"purple": {200, 0, 200, 255},
	"orange": {255, 165, 0, 255},
	"cyan":   {0, 255, 255, 255},
	"pink":   {255, 105, 180, 255},
}

var headColor = color.RGBA{255, 192, 203, 255}

var (
	daySky   = color.RGBA{135, 206, 235, 255}
	duskSky  = color.RGBA{40, 50, 80, 255}
	skyColor = daySky
)

// initSkyColor follows the OS appearance: a dark desktop gets a dusk sky.
func initSkyColor() {
	darkMode, err := dark.IsDarkMode()
	if err == nil && darkMode {
		skyColor = duskSky
	}
}

func blockColor(kind string) color.RGBA {
	if c, ok := blockColors[kind]; ok {
		return c
	}
	return unknownBlockColor
}

func playerBodyColor(name string) color.RGBA {
	if c, ok := playerColors[name]; ok {
		return c
	}
	return playerColors["cyan"]
}
