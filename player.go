package main

import "sync"

// Player holds the replicated state of another connected player.
type Player struct {
	ID    string
	X, Y  float64
	Color string
}

var (
	players   = make(map[string]*Player)
	playersMu sync.RWMutex
)

// setPlayer inserts or overwrites a peer's position, and color when one is
// supplied. A move for an unknown id inserts it: some servers broadcast
// moves before the join notification arrives.
func setPlayer(id string, x, y float64, color string) {
	playersMu.Lock()
	p, ok := players[id]
	if !ok {
		p = &Player{ID: id}
		players[id] = p
	}
	p.X = x
	p.Y = y
	if color != "" {
		p.Color = color
	}
	playersMu.Unlock()
}

// setPlayerColor updates a peer's color. Unknown ids are ignored.
func setPlayerColor(id, color string) {
	playersMu.Lock()
	if p, ok := players[id]; ok {
		p.Color = color
	}
	playersMu.Unlock()
}

func removePlayer(id string) {
	playersMu.Lock()
	delete(players, id)
	playersMu.Unlock()
}

func playerCount() int {
	playersMu.RLock()
	defer playersMu.RUnlock()
	return len(players)
}

func getPlayers() []Player {
	playersMu.RLock()
	defer playersMu.RUnlock()
	out := make([]Player, 0, len(players))
	for _, p := range players {
		out = append(out, *p)
	}
	return out
}

// clearPlayers drops the whole roster on session teardown.
func clearPlayers() {
	playersMu.Lock()
	players = make(map[string]*Player)
	playersMu.Unlock()
}
