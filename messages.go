package main

import "encoding/json"

// Wire message type tags. Every framed payload is a JSON object whose
// "type" field carries one of these.
const (
	// client -> server
	msgLogin       = "login"
	msgChat        = "chat"
	msgMove        = "move"
	msgBreakBlock  = "break_block"
	msgPlaceBlock  = "place_block"
	msgUpdateColor = "update_color"

	// server -> client
	msgWelcome      = "welcome"
	msgRespawn      = "respawn"
	msgUpdateBlock  = "update_block"
	msgPlayerJoin   = "player_join"
	msgPlayerMove   = "player_move"
	msgPlayerColor  = "player_color"
	msgPlayerLeave  = "player_leave"
	msgHotbarUpdate = "hotbar_update"
	msgDisconnect   = "disconnect"
)

type loginMsg struct {
	Type     string `json:"type"`
	ID       string `json:"id"`
	Password string `json:"password"`
	Color    string `json:"color"`
}

type chatSendMsg struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type moveMsg struct {
	Type string  `json:"type"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

type breakBlockMsg struct {
	Type string `json:"type"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

type placeBlockMsg struct {
	Type string `json:"type"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
	Slot int    `json:"slot"`
}

type updateColorMsg struct {
	Type  string `json:"type"`
	Color string `json:"color"`
}

// HotbarSlot is one inventory slot. A nil slot is empty.
type HotbarSlot struct {
	Block string `json:"block"`
	Count int    `json:"count"`
}

type welcomeMsg struct {
	Server string        `json:"server"`
	MOTD   string        `json:"motd"`
	World  [][]string    `json:"world"`
	X      float64       `json:"x"`
	Y      float64       `json:"y"`
	Hotbar []*HotbarSlot `json:"hotbar"`
	Level  int           `json:"level"`
}

type respawnMsg struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type chatRecvMsg struct {
	From    string `json:"from"`
	Level   int    `json:"level"`
	Message string `json:"message"`
}

type updateBlockMsg struct {
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Block string `json:"block"`
}

type playerJoinMsg struct {
	ID    string  `json:"id"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Color string  `json:"color"`
}

type playerMoveMsg struct {
	ID string  `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

type playerColorMsg struct {
	ID    string `json:"id"`
	Color string `json:"color"`
}

type playerLeaveMsg struct {
	ID string `json:"id"`
}

type hotbarUpdateMsg struct {
	Hotbar []*HotbarSlot `json:"hotbar"`
}

type disconnectMsg struct {
	Reason string `json:"reason"`
}

// envelope carries the type tag plus the raw payload so the dispatcher can
// decode the concrete shape after switching on the tag.
type envelope struct {
	Type string `json:"type"`
}

// messageType extracts the dispatch tag. ok is false only when the payload
// is not a JSON object at all; an object without a tag yields an empty
// type, which the dispatcher ignores like any other unknown type.
func messageType(raw []byte) (string, bool) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return "", false
	}
	return env.Type, true
}
