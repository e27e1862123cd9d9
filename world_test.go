package main

import "testing"

func TestSetBlockBounds(t *testing.T) {
	installWorld(airWorld(4, 3, ""))

	setBlock(2, 1, blockDirt)
	if blockAt(2, 1) != blockDirt {
		t.Fatalf("in-bounds set did not apply: %q", blockAt(2, 1))
	}

	setBlock(4, 1, blockDirt)
	setBlock(-1, 1, blockDirt)
	setBlock(1, 3, blockDirt)
	setBlock(1, -1, blockDirt)
	w, h := worldSize()
	if w != 4 || h != 3 {
		t.Fatalf("grid resized to %dx%d", w, h)
	}
	count := 0
	for _, row := range worldSnapshot() {
		for _, b := range row {
			if b == blockDirt {
				count++
			}
		}
	}
	if count != 1 {
		t.Fatalf("%d dirt tiles, want 1", count)
	}
}

func TestSolidAtOutOfRange(t *testing.T) {
	installWorld(airWorld(4, 3, blockStone))
	if solidAt(-1, 0) || solidAt(4, 0) || solidAt(0, -1) || solidAt(0, 3) {
		t.Fatal("out-of-range tiles must not collide")
	}
	if !solidAt(0, 2) {
		t.Fatal("bottom row should be solid")
	}
}

func TestWorldSnapshotIsIsolated(t *testing.T) {
	installWorld(airWorld(4, 3, ""))
	snap := worldSnapshot()
	setBlock(0, 0, blockStone)
	if snap[0][0] != blockAir {
		t.Fatal("snapshot shares storage with the live grid")
	}
}

func TestNormalizeHotbar(t *testing.T) {
	short := normalizeHotbar([]*HotbarSlot{{Block: blockWood, Count: 2}})
	if len(short) != hotbarSlots || short[0] == nil || short[1] != nil {
		t.Fatalf("short input: %+v", short)
	}
	long := make([]*HotbarSlot, 12)
	for i := range long {
		long[i] = &HotbarSlot{Block: blockSand, Count: i}
	}
	trimmed := normalizeHotbar(long)
	if len(trimmed) != hotbarSlots || trimmed[hotbarSlots-1].Count != hotbarSlots-1 {
		t.Fatalf("long input: %+v", trimmed)
	}
}

func TestResetWorldClearsEverything(t *testing.T) {
	installWorld(airWorld(4, 3, blockStone))
	applyRespawn(1, 1)
	setHotbar([]*HotbarSlot{{Block: blockWood, Count: 1}})

	resetWorld()
	if worldReady() {
		t.Fatal("world still present after reset")
	}
	if _, _, ok := consumeRespawn(); ok {
		t.Fatal("respawn flag survived reset")
	}
	if getHotbar()[0] != nil {
		t.Fatal("hotbar survived reset")
	}
}
