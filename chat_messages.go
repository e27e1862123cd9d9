package main

import (
	"fmt"
	"sync"
)

const maxChatMessages = 100

var (
	chatMsgMu sync.Mutex
	chatMsgs  []string
)

func chatMessage(msg string) {
	if msg == "" {
		return
	}
	chatMsgMu.Lock()
	chatMsgs = append(chatMsgs, msg)
	if len(chatMsgs) > maxChatMessages {
		chatMsgs = chatMsgs[len(chatMsgs)-maxChatMessages:]
	}
	chatMsgMu.Unlock()
}

// chatLine formats an inbound chat message the way the HUD displays it.
func chatLine(from string, level int, text string) string {
	return fmt.Sprintf("%s [%d] >> %s", from, level, text)
}

func getChatMessages() []string {
	chatMsgMu.Lock()
	defer chatMsgMu.Unlock()

	out := make([]string, len(chatMsgs))
	copy(out, chatMsgs)
	return out
}

// lastChatMessages returns up to n of the newest chat lines, oldest first.
func lastChatMessages(n int) []string {
	chatMsgMu.Lock()
	defer chatMsgMu.Unlock()

	if len(chatMsgs) < n {
		n = len(chatMsgs)
	}
	out := make([]string, n)
	copy(out, chatMsgs[len(chatMsgs)-n:])
	return out
}
