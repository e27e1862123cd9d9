package main

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"sync/atomic"
)

// maxMessageSize caps a single framed payload. The length prefix is 32 bits
// on the wire; anything near that is a corrupt prefix, not a real message.
const maxMessageSize = 16 << 20

// bytesReceived counts inbound wire bytes for the HUD network stats.
var bytesReceived atomic.Int64

// sendMessage writes one length-prefixed JSON message to the connection.
func sendMessage(conn net.Conn, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode message: %w", err)
	}
	var size [4]byte
	binary.BigEndian.PutUint32(size[:], uint32(len(payload)))
	if err := writeAll(conn, size[:]); err != nil {
		return fmt.Errorf("send size: %w", err)
	}
	if err := writeAll(conn, payload); err != nil {
		return fmt.Errorf("send payload: %w", err)
	}
	logDebug("send len %d: %s", len(payload), payload)
	return nil
}

// writeAll writes the entirety of data to conn, returning an error if the
// write fails or is short.
func writeAll(conn net.Conn, data []byte) error {
	for len(data) > 0 {
		n, err := conn.Write(data)
		if err != nil {
			return err
		}
		if n == 0 {
			return io.ErrShortWrite
		}
		data = data[n:]
	}
	return nil
}

// readMessage reads one length-prefixed message from the connection. A
// stream that closes before the prefix or the full payload arrives returns
// an error, never a partial message.
func readMessage(conn net.Conn) ([]byte, error) {
	var sizeBuf [4]byte
	if _, err := io.ReadFull(conn, sizeBuf[:]); err != nil {
		return nil, err
	}
	sz := binary.BigEndian.Uint32(sizeBuf[:])
	if sz > maxMessageSize {
		return nil, fmt.Errorf("message length %d exceeds limit", sz)
	}
	buf := make([]byte, sz)
	if _, err := io.ReadFull(conn, buf); err != nil {
		return nil, err
	}
	bytesReceived.Add(int64(sz) + 4)
	logDebug("recv len %d: %s", sz, buf)
	return buf, nil
}
