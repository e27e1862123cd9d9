package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sqweek/dialog"
)

var (
	baseDir   string
	debugMode bool
)

func main() {
	ip := flag.String("ip", "", "server address (defaults to the first bookmark)")
	port := flag.Int("port", 0, "server port")
	password := flag.String("password", "", "server password")
	refresh := flag.Bool("refresh", false, "probe bookmarked servers, print their status and exit")
	flag.BoolVar(&debugMode, "debug", false, "verbose/debug logging")
	flag.Parse()

	baseDir = os.Getenv("PWD")
	if baseDir == "" {
		var err error
		if baseDir, err = os.Getwd(); err != nil {
			log.Fatalf("get working directory: %v", err)
		}
	}

	setupLogging(debugMode)
	defer func() {
		if r := recover(); r != nil {
			logError("panic: %v\n%s", r, debug.Stack())
		}
	}()

	loadSettings()
	initLanguage(gs.Language)
	initSkyColor()
	playerID = loadPlayerID()
	loadServers()

	if *refresh {
		silent = true // no in-game chat to mirror errors into
		refreshServers()
		for _, s := range servers {
			fmt.Printf("%s:%d - %s - %s - %d/%d\n", s.IP, s.Port, s.Name, s.MOTD, s.Current, s.Max)
		}
		return
	}

	target := ServerEntry{IP: *ip, Port: *port, Password: *password}
	if target.IP == "" {
		if len(servers) == 0 {
			log.Fatal("no server: pass -ip/-port or add a bookmark to servers.json")
		}
		target = servers[0]
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	conn := newConnection(target.IP, target.Port, target.Password)
	if err := conn.connect(playerID, gs.PlayerColor); err != nil {
		logError("connect: %v", err)
		dialog.Message("%s", err.Error()).Title(tr("Connection Failed")).Error()
		return
	}
	if !conn.waitForWelcome(connectTimeout) {
		reason := conn.reason()
		if reason == "" {
			reason = tr("Connection Failed")
		}
		conn.close()
		dialog.Message("%s", reason).Title(tr("Connection Failed")).Error()
		return
	}

	name, motd, _ := serverInfo()
	chatMessage(fmt.Sprintf("%s: %s", name, motd))
	initDiscordRPC(ctx, name)

	go func() {
		<-ctx.Done()
		conn.close()
	}()

	ebiten.SetWindowSize(screenWidth*gs.Scale, screenHeight*gs.Scale)
	ebiten.SetWindowTitle("goplat")
	ebiten.SetVsyncEnabled(gs.Vsync)
	if err := ebiten.RunGame(newGame(conn)); err != nil {
		logError("run game: %v", err)
	}

	reason := conn.reason()
	conn.close()
	cancel()
	if reason != "" {
		dialog.Message("%s", reason).Title(tr("Disconnected")).Error()
	}
}
