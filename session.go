package main

import (
	"fmt"
	"net"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	connectTimeout = 5 * time.Second
	// positionInterval limits outbound position reports to 20 per second.
	positionInterval = 50 * time.Millisecond
)

// Connection is one session with a game server: the socket, the receive
// loop and the outbound command surface. All outbound commands are no-ops
// once the session is no longer connected.
type Connection struct {
	addr     string
	password string

	conn net.Conn

	mu               sync.Mutex
	connected        bool
	disconnectReason string

	posLimiter  *rate.Limiter
	connectedAt time.Time
}

func newConnection(ip string, port int, password string) *Connection {
	return &Connection{
		addr:       net.JoinHostPort(ip, strconv.Itoa(port)),
		password:   password,
		posLimiter: rate.NewLimiter(rate.Every(positionInterval), 1),
	}
}

// connect dials the server, sends the login command and starts the receive
// loop. On failure the session stays disconnected with no partial state.
func (c *Connection) connect(id, color string) error {
	conn, err := net.DialTimeout("tcp", c.addr, connectTimeout)
	if err != nil {
		return fmt.Errorf("connect %s: %w", c.addr, err)
	}
	if err := sendMessage(conn, loginMsg{Type: msgLogin, ID: id, Password: c.password, Color: color}); err != nil {
		conn.Close()
		return fmt.Errorf("send login: %w", err)
	}

	c.conn = conn
	c.mu.Lock()
	c.connected = true
	c.mu.Unlock()
	c.connectedAt = time.Now()
	logDebug("connected to %s", c.addr)

	go c.readLoop()
	return nil
}

// readLoop decodes and dispatches inbound messages until the stream closes,
// a decode fails, or the server sends a disconnect. There is no read
// deadline: an idle server is legitimate.
func (c *Connection) readLoop() {
	for c.isConnected() {
		raw, err := readMessage(c.conn)
		if err != nil {
			if c.isConnected() {
				logDebug("read: %v", err)
				c.markDisconnected()
			}
			return
		}
		if !dispatchMessage(c, raw) {
			// Server-issued disconnect (reason recorded) or a protocol
			// violation; either way the session is over.
			c.markDisconnected()
			return
		}
	}
}

func (c *Connection) isConnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connected
}

func (c *Connection) markDisconnected() {
	c.mu.Lock()
	c.connected = false
	c.mu.Unlock()
}

func (c *Connection) setDisconnectReason(reason string) {
	c.mu.Lock()
	c.disconnectReason = reason
	c.mu.Unlock()
	logError("disconnected by server: %s", reason)
}

// reason returns the server-supplied disconnect reason, if any.
func (c *Connection) reason() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.disconnectReason
}

// send transmits one command, fire and forget. A write failure ends the
// session; there is no retry.
func (c *Connection) send(v any) {
	if !c.isConnected() {
		return
	}
	if err := sendMessage(c.conn, v); err != nil {
		logError("send: %v", err)
		c.markDisconnected()
	}
}

func (c *Connection) sendChat(message string) {
	c.send(chatSendMsg{Type: msgChat, Message: message})
}

// sendPosition reports the predicted position, rate limited. Suppressed
// sends are dropped, not queued; the next allowed report carries the
// current position anyway.
func (c *Connection) sendPosition(x, y float64) {
	if !c.isConnected() || !c.posLimiter.Allow() {
		return
	}
	c.send(moveMsg{Type: msgMove, X: x, Y: y})
}

func (c *Connection) breakBlock(x, y int) {
	c.send(breakBlockMsg{Type: msgBreakBlock, X: x, Y: y})
}

func (c *Connection) placeBlock(x, y, slot int) {
	c.send(placeBlockMsg{Type: msgPlaceBlock, X: x, Y: y, Slot: slot})
}

func (c *Connection) updateColor(color string) {
	c.send(updateColorMsg{Type: msgUpdateColor, Color: color})
}

// close tears the session down: the socket is closed, the receive loop
// observes the closed stream on its next read and exits on its own.
func (c *Connection) close() {
	c.markDisconnected()
	if c.conn != nil {
		c.conn.Close()
	}
	clearPlayers()
	resetWorld()
}

// waitForWelcome blocks until the welcome snapshot has arrived, the session
// dies, or the timeout elapses.
func (c *Connection) waitForWelcome(timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if worldReady() {
			return true
		}
		if !c.isConnected() {
			return false
		}
		time.Sleep(50 * time.Millisecond)
	}
	return worldReady()
}
