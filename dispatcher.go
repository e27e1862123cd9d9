package main

import "encoding/json"

// dispatchMessage applies one raw server message to the replicated state.
// It returns false when the message ends the session (a server-issued
// disconnect). Unknown message types are ignored so newer servers can talk
// to older clients.
func dispatchMessage(c *Connection, raw []byte) bool {
	typ, ok := messageType(raw)
	if !ok {
		// A payload that isn't a JSON object is a protocol violation,
		// handled like a closed stream. A parseable object with no type
		// tag is merely unknown and falls through to the ignore arm.
		logDebug("unparseable message: %s", raw)
		return false
	}

	switch typ {
	case msgWelcome:
		var m welcomeMsg
		if err := json.Unmarshal(raw, &m); err != nil {
			return true
		}
		applyWelcome(m)
		logDebug("welcome: world %dx%d, spawn (%v, %v)", len(m.World), rowLen(m.World), m.X, m.Y)

	case msgRespawn:
		var m respawnMsg
		if err := json.Unmarshal(raw, &m); err != nil {
			return true
		}
		applyRespawn(m.X, m.Y)

	case msgChat:
		var m chatRecvMsg
		if err := json.Unmarshal(raw, &m); err != nil {
			return true
		}
		chatMessage(chatLine(m.From, m.Level, m.Message))

	case msgUpdateBlock:
		var m updateBlockMsg
		if err := json.Unmarshal(raw, &m); err != nil {
			return true
		}
		setBlock(m.X, m.Y, m.Block)

	case msgPlayerJoin:
		var m playerJoinMsg
		if err := json.Unmarshal(raw, &m); err != nil {
			return true
		}
		setPlayer(m.ID, m.X, m.Y, m.Color)

	case msgPlayerMove:
		var m playerMoveMsg
		if err := json.Unmarshal(raw, &m); err != nil {
			return true
		}
		setPlayer(m.ID, m.X, m.Y, "")

	case msgPlayerColor:
		var m playerColorMsg
		if err := json.Unmarshal(raw, &m); err != nil {
			return true
		}
		setPlayerColor(m.ID, m.Color)

	case msgPlayerLeave:
		var m playerLeaveMsg
		if err := json.Unmarshal(raw, &m); err != nil {
			return true
		}
		removePlayer(m.ID)

	case msgHotbarUpdate:
		var m hotbarUpdateMsg
		if err := json.Unmarshal(raw, &m); err != nil {
			return true
		}
		setHotbar(m.Hotbar)

	case msgDisconnect:
		var m disconnectMsg
		_ = json.Unmarshal(raw, &m)
		c.setDisconnectReason(m.Reason)
		return false

	default:
		logDebug("ignoring message type %q", typ)
	}
	return true
}

func rowLen(grid [][]string) int {
	if len(grid) == 0 {
		return 0
	}
	return len(grid[0])
}
