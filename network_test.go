package main

import (
	"encoding/binary"
	"encoding/json"
	"net"
	"reflect"
	"testing"
)

func TestMessageRoundTrip(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()
	defer server.Close()

	sent := moveMsg{Type: msgMove, X: 5.25, Y: 3}
	errCh := make(chan error, 1)
	go func() { errCh <- sendMessage(client, sent) }()

	raw, err := readMessage(server)
	if err != nil {
		t.Fatalf("readMessage: %v", err)
	}
	if err := <-errCh; err != nil {
		t.Fatalf("sendMessage: %v", err)
	}
	var got moveMsg
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(got, sent) {
		t.Fatalf("round trip mismatch: sent %+v got %+v", sent, got)
	}
}

func TestReadMessage_ClosedBeforePrefix(t *testing.T) {
	client, server := net.Pipe()
	go func() {
		client.Write([]byte{0, 0})
		client.Close()
	}()
	if _, err := readMessage(server); err == nil {
		t.Fatal("expected error for stream closed inside the length prefix")
	}
}

func TestReadMessage_ClosedBeforePayload(t *testing.T) {
	client, server := net.Pipe()
	go func() {
		var size [4]byte
		binary.BigEndian.PutUint32(size[:], 10)
		client.Write(size[:])
		client.Write([]byte(`{"ty`)) // 4 of 10 payload bytes
		client.Close()
	}()
	if _, err := readMessage(server); err == nil {
		t.Fatal("expected error for truncated payload")
	}
}

func TestReadMessage_OversizedLength(t *testing.T) {
	client, server := net.Pipe()
	go func() {
		var size [4]byte
		binary.BigEndian.PutUint32(size[:], maxMessageSize+1)
		client.Write(size[:])
	}()
	if _, err := readMessage(server); err == nil {
		t.Fatal("expected error for oversized length prefix")
	}
	client.Close()
	server.Close()
}
