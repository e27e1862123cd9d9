package main

import (
	"math"
	"testing"
)

const tickDt = 1.0 / 60.0

func installWorld(grid [][]string) {
	resetReplicatedState()
	applyWelcome(welcomeMsg{Server: "test", World: grid})
}

func TestFallComesToRestOnStone(t *testing.T) {
	installWorld(airWorld(10, 5, blockStone))

	p := localPlayer{x: 5, y: 0}
	for i := 0; i < 300; i++ {
		p.step(tickDt, moveInput{})
	}
	// Bottom row is y=4; a two-tile body rests with its top at y=2.
	if p.y != 2 {
		t.Fatalf("rest y = %v, want exactly 2", p.y)
	}
	if !p.onGround {
		t.Fatal("player not grounded at rest")
	}
	if p.vy != 0 {
		t.Fatalf("vy = %v at rest", p.vy)
	}
}

func TestFallSnapsWithinOneFrameOfOverlap(t *testing.T) {
	installWorld(airWorld(10, 5, blockStone))

	// Start just above the floor, already falling fast.
	p := localPlayer{x: 5, y: 1.99, vy: maxFallSpeed}
	p.step(tickDt, moveInput{})
	if p.y != 2 || !p.onGround || p.vy != 0 {
		t.Fatalf("after one frame: y=%v onGround=%v vy=%v", p.y, p.onGround, p.vy)
	}
}

func TestRespawnOverridesInput(t *testing.T) {
	installWorld(airWorld(10, 5, ""))
	applyRespawn(5, 2)

	p := localPlayer{x: 1, y: 0, vx: walkSpeed, vy: 7}
	p.step(tickDt, moveInput{right: true, jump: true})
	if p.x != 5 || p.y != 2 {
		t.Fatalf("position = (%v, %v), want (5, 2)", p.x, p.y)
	}
	if p.vx != 0 || p.vy != 0 {
		t.Fatalf("velocity = (%v, %v), want zero", p.vx, p.vy)
	}

	// The flag is one-shot: the next frame simulates normally.
	p.step(tickDt, moveInput{})
	if p.y <= 2 {
		t.Fatalf("gravity did not resume: y = %v", p.y)
	}
}

func TestHorizontalMoveRejectedByWall(t *testing.T) {
	grid := airWorld(10, 5, blockStone)
	grid[2][6] = blockStone
	grid[3][6] = blockStone
	installWorld(grid)

	p := localPlayer{x: 5, y: 2, onGround: true}
	for i := 0; i < 120; i++ {
		p.step(tickDt, moveInput{right: true})
	}
	// The wall face is at x=6; the body half-width keeps the center at 5.6.
	if p.x > 6-playerHalfWidth+1e-9 {
		t.Fatalf("walked into the wall: x = %v", p.x)
	}
	if p.x < 5.5 {
		t.Fatalf("never approached the wall: x = %v", p.x)
	}
	// Rejection suppresses the move but keeps the velocity.
	if p.vx != walkSpeed {
		t.Fatalf("vx = %v, want %v", p.vx, walkSpeed)
	}
}

func TestJumpOnlyWhenGrounded(t *testing.T) {
	installWorld(airWorld(10, 5, blockStone))

	p := localPlayer{x: 5, y: 2, onGround: true}
	p.step(tickDt, moveInput{jump: true})
	if p.vy != jumpVelocity {
		t.Fatalf("grounded jump vy = %v, want %v", p.vy, jumpVelocity)
	}

	q := localPlayer{x: 5, y: 0}
	q.step(tickDt, moveInput{jump: true})
	if q.vy < 0 {
		t.Fatalf("airborne jump changed vy to %v", q.vy)
	}
}

func TestTerminalFallSpeed(t *testing.T) {
	installWorld(airWorld(10, 50, ""))

	p := localPlayer{x: 5, y: 0}
	for i := 0; i < 120; i++ {
		p.step(tickDt, moveInput{})
	}
	if p.vy > maxFallSpeed {
		t.Fatalf("vy = %v exceeds terminal %v", p.vy, maxFallSpeed)
	}
}

func TestPositionClampedToWorldBounds(t *testing.T) {
	installWorld(airWorld(10, 5, ""))

	p := localPlayer{x: 5, y: 0}
	for i := 0; i < 300; i++ {
		p.step(tickDt, moveInput{left: true})
	}
	if p.x != 0.5 {
		t.Fatalf("x = %v, want left clamp 0.5", p.x)
	}
	if p.y != 5-2.5 {
		t.Fatalf("y = %v, want bottom clamp %v", p.y, 5-2.5)
	}
}

func TestPeerOverlapPushesBack(t *testing.T) {
	installWorld(airWorld(10, 5, blockStone))
	setPlayer("peer", 5.5, 2, "red")

	p := localPlayer{x: 5.3, y: 2, onGround: true}
	before := p.x
	p.step(tickDt, moveInput{})
	if math.Abs(before-peerPushback-p.x) > 1e-9 {
		t.Fatalf("x = %v, want pushed to %v", p.x, before-peerPushback)
	}

	// Non-overlapping peers leave the player alone.
	clearPlayers()
	setPlayer("far", 8, 2, "red")
	q := localPlayer{x: 5.3, y: 2, onGround: true}
	q.step(tickDt, moveInput{})
	if q.x != 5.3 {
		t.Fatalf("x = %v, want unchanged", q.x)
	}
}
