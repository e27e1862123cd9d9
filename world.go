package main

import "sync"

const hotbarSlots = 7

// Replicated world state. Written by the session's receive loop, read by
// the frame loop; every inbound message mutates it inside one critical
// section so a frame never observes a half-applied update.
var (
	worldMu        sync.RWMutex
	world          [][]string
	serverName     string
	serverMOTD     string
	playerLevel    int
	spawnX, spawnY float64
	respawnPending bool
	hotbar         [hotbarSlots]*HotbarSlot
)

// applyWelcome installs the initial world snapshot. The grid dimensions are
// fixed for the rest of the session.
func applyWelcome(w welcomeMsg) {
	worldMu.Lock()
	serverName = w.Server
	serverMOTD = w.MOTD
	world = w.World
	spawnX = w.X
	spawnY = w.Y
	playerLevel = w.Level
	hotbar = normalizeHotbar(w.Hotbar)
	worldMu.Unlock()
}

// applyRespawn records a forced repositioning. The simulator consumes the
// flag on its next tick.
func applyRespawn(x, y float64) {
	worldMu.Lock()
	spawnX = x
	spawnY = y
	respawnPending = true
	worldMu.Unlock()
}

// consumeRespawn returns the pending respawn coordinates, clearing the
// one-shot flag. ok is false when no respawn is pending.
func consumeRespawn() (x, y float64, ok bool) {
	worldMu.Lock()
	defer worldMu.Unlock()
	if !respawnPending {
		return 0, 0, false
	}
	respawnPending = false
	return spawnX, spawnY, true
}

// setBlock replaces a single tile. Out-of-range coordinates are dropped
// silently; the server is trusted but the grid is not grown.
func setBlock(x, y int, block string) {
	worldMu.Lock()
	if y >= 0 && y < len(world) && x >= 0 && x < len(world[y]) {
		world[y][x] = block
	}
	worldMu.Unlock()
}

// solidAt reports whether the tile at (x, y) blocks movement. Out-of-range
// tiles do not collide; the bounds clamp keeps the player inside the grid.
func solidAt(x, y int) bool {
	worldMu.RLock()
	defer worldMu.RUnlock()
	if y < 0 || y >= len(world) || x < 0 || x >= len(world[y]) {
		return false
	}
	return world[y][x] != blockAir
}

func blockAt(x, y int) string {
	worldMu.RLock()
	defer worldMu.RUnlock()
	if y < 0 || y >= len(world) || x < 0 || x >= len(world[y]) {
		return blockAir
	}
	return world[y][x]
}

// worldSize returns the grid dimensions in tiles (width, height).
func worldSize() (int, int) {
	worldMu.RLock()
	defer worldMu.RUnlock()
	if len(world) == 0 {
		return 0, 0
	}
	return len(world[0]), len(world)
}

// spawnPosition returns the last server-issued spawn coordinates.
func spawnPosition() (float64, float64) {
	worldMu.RLock()
	defer worldMu.RUnlock()
	return spawnX, spawnY
}

func worldReady() bool {
	worldMu.RLock()
	defer worldMu.RUnlock()
	return len(world) > 0
}

// worldSnapshot copies the grid for rendering so the draw pass never holds
// the lock across a whole frame.
func worldSnapshot() [][]string {
	worldMu.RLock()
	defer worldMu.RUnlock()
	out := make([][]string, len(world))
	for y, row := range world {
		out[y] = append([]string(nil), row...)
	}
	return out
}

func setHotbar(slots []*HotbarSlot) {
	worldMu.Lock()
	hotbar = normalizeHotbar(slots)
	worldMu.Unlock()
}

// normalizeHotbar forces the fixed slot count: extra slots are dropped,
// missing ones stay empty.
func normalizeHotbar(slots []*HotbarSlot) [hotbarSlots]*HotbarSlot {
	var out [hotbarSlots]*HotbarSlot
	for i := 0; i < len(slots) && i < hotbarSlots; i++ {
		out[i] = slots[i]
	}
	return out
}

func getHotbar() [hotbarSlots]*HotbarSlot {
	worldMu.RLock()
	defer worldMu.RUnlock()
	return hotbar
}

func serverInfo() (name, motd string, level int) {
	worldMu.RLock()
	defer worldMu.RUnlock()
	return serverName, serverMOTD, playerLevel
}

// resetWorld clears all replicated state on session teardown.
func resetWorld() {
	worldMu.Lock()
	world = nil
	serverName = ""
	serverMOTD = ""
	playerLevel = 0
	spawnX, spawnY = 0, 0
	respawnPending = false
	hotbar = [hotbarSlots]*HotbarSlot{}
	worldMu.Unlock()
}
