package main

// Movement constants, in tiles and seconds. The player body is an
// axis-aligned box two tiles tall and 0.8 tiles wide whose position is the
// top-center of the box.
const (
	walkSpeed       = 5.0
	gravity         = 25.0
	maxFallSpeed    = 15.0
	jumpVelocity    = -12.0
	playerHalfWidth = 0.4
	playerHeight    = 2.0
	peerPushback    = 0.1
)

// moveInput is the resolved movement intent for one frame.
type moveInput struct {
	left  bool
	right bool
	jump  bool
}

// localPlayer is the client-side predicted state of the controlled player.
// The server never corrects it directly except through a respawn.
type localPlayer struct {
	x, y     float64
	vx, vy   float64
	onGround bool
}

// step advances the prediction by dt seconds against the replicated tile
// grid. A pending respawn overrides everything else for the frame.
func (p *localPlayer) step(dt float64, in moveInput) {
	if x, y, ok := consumeRespawn(); ok {
		p.x = x
		p.y = y
		p.vx = 0
		p.vy = 0
		return
	}

	w, h := worldSize()
	if w == 0 || h == 0 {
		return
	}

	// Instantaneous horizontal speed; no acceleration, no friction.
	switch {
	case in.left && !in.right:
		p.vx = -walkSpeed
	case in.right && !in.left:
		p.vx = walkSpeed
	default:
		p.vx = 0
	}

	p.vy += gravity * dt
	if p.vy > maxFallSpeed {
		p.vy = maxFallSpeed
	}
	if in.jump && p.onGround {
		p.vy = jumpVelocity
	}

	// Horizontal pass: the move is rejected outright on overlap, keeping
	// the velocity so the player resumes as soon as the way is clear.
	if p.vx != 0 {
		newX := p.x + p.vx*dt
		if !p.horizontalBlocked(newX) {
			p.x = newX
		}
	}

	p.y += p.vy * dt

	p.x = clamp(p.x, 0.5, float64(w)-1.5)
	p.y = clamp(p.y, 0, float64(h)-2.5)

	// Vertical pass: scan the 3x3 tile neighborhood around the body and
	// snap to rest against whichever face was hit.
	gridX := int(p.x)
	gridY := int(p.y)
	p.onGround = false
	for checkY := gridY; checkY <= gridY+2; checkY++ {
		for checkX := gridX - 1; checkX <= gridX+1; checkX++ {
			if !solidAt(checkX, checkY) {
				continue
			}
			blockLeft := float64(checkX)
			blockRight := blockLeft + 1
			blockTop := float64(checkY)
			blockBottom := blockTop + 1

			if p.x+playerHalfWidth > blockLeft && p.x-playerHalfWidth < blockRight &&
				p.y+playerHeight > blockTop && p.y < blockBottom {
				if p.vy > 0 { // falling
					p.y = blockTop - playerHeight
					p.vy = 0
					p.onGround = true
				} else if p.vy < 0 { // rising into a ceiling
					p.y = blockBottom
					p.vy = 0
				}
			}
		}
	}

	p.x = clamp(p.x, 0.5, float64(w)-1.5)
	if p.y < 0 {
		p.y = 0
	}

	p.resolvePeerOverlap()
}

// horizontalBlocked reports whether the body at the tentative x would
// overlap a solid tile in either body row across the three candidate
// columns. The small vertical tolerance lets the player slide along a floor
// it is resting on.
func (p *localPlayer) horizontalBlocked(newX float64) bool {
	gridY := int(p.y)
	newGridX := int(newX)
	for _, checkY := range []int{gridY, gridY + 1} {
		for offset := -1; offset <= 1; offset++ {
			checkX := newGridX + offset
			if !solidAt(checkX, checkY) {
				continue
			}
			blockLeft := float64(checkX)
			blockRight := blockLeft + 1
			blockTop := float64(checkY)
			blockBottom := blockTop + 1

			if p.y+playerHeight > blockTop+0.1 && p.y < blockBottom-0.1 &&
				newX+playerHalfWidth > blockLeft && newX-playerHalfWidth < blockRight {
				return true
			}
		}
	}
	return false
}

// resolvePeerOverlap nudges the local player away from any peer sharing its
// space. Peers are soft: a fixed sideways step per frame, not a hard wall.
func (p *localPlayer) resolvePeerOverlap() {
	for _, other := range getPlayers() {
		dx := p.x - other.X
		dy := p.y - other.Y
		if abs(dx) < 2*playerHalfWidth && abs(dy) < playerHeight {
			if p.x < other.X {
				p.x -= peerPushback
			} else {
				p.x += peerPushback
			}
		}
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
