package main

import (
	"fmt"
	"testing"
)

func resetChat() {
	chatMsgMu.Lock()
	chatMsgs = nil
	chatMsgMu.Unlock()
}

func TestChatMessageEviction(t *testing.T) {
	resetChat()
	for i := 0; i < maxChatMessages+25; i++ {
		chatMessage(fmt.Sprintf("line %d", i))
	}
	msgs := getChatMessages()
	if len(msgs) != maxChatMessages {
		t.Fatalf("%d messages retained, want %d", len(msgs), maxChatMessages)
	}
	if msgs[0] != "line 25" || msgs[len(msgs)-1] != fmt.Sprintf("line %d", maxChatMessages+24) {
		t.Fatalf("wrong eviction order: first %q last %q", msgs[0], msgs[len(msgs)-1])
	}
}

func TestChatMessageIgnoresEmpty(t *testing.T) {
	resetChat()
	chatMessage("")
	if len(getChatMessages()) != 0 {
		t.Fatal("empty message stored")
	}
}

func TestChatLineFormat(t *testing.T) {
	if got := chatLine("bob", 3, "hi there"); got != "bob [3] >> hi there" {
		t.Fatalf("chatLine = %q", got)
	}
}

func TestLastChatMessages(t *testing.T) {
	resetChat()
	for i := 0; i < 8; i++ {
		chatMessage(fmt.Sprintf("m%d", i))
	}
	tail := lastChatMessages(5)
	if len(tail) != 5 || tail[0] != "m3" || tail[4] != "m7" {
		t.Fatalf("tail = %v", tail)
	}
	if got := lastChatMessages(20); len(got) != 8 {
		t.Fatalf("oversized request returned %d lines", len(got))
	}
}
