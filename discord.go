package main

import (
	"context"
	"time"

	client "github.com/hugolgst/rich-go/client"
)

// initDiscordRPC advertises the joined server as Discord presence. Best
// effort: no running Discord client is not an error worth surfacing.
func initDiscordRPC(ctx context.Context, server string) {
	if err := client.Login("1410783442676310119"); err != nil {
		logDebug("discord rpc login: %v", err)
		return
	}
	now := time.Now()
	if err := client.SetActivity(client.Activity{
		State:   server,
		Details: "In game",
		Timestamps: &client.Timestamps{
			Start: &now,
		},
	}); err != nil {
		logDebug("discord rpc activity: %v", err)
	}
	go func() {
		<-ctx.Done()
		client.Logout()
	}()
}
