package main

import (
	"encoding/json"
	"errors"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/remeh/sizedwaitgroup"
)

var errNoWelcome = errors.New("no welcome from server")

// errServerRefused carries the server-supplied rejection reason.
type errServerRefused string

func (e errServerRefused) Error() string { return string(e) }

// ServerEntry is one bookmarked server.
type ServerEntry struct {
	IP       string `json:"ip"`
	Port     int    `json:"port"`
	Password string `json:"password"`
	Name     string `json:"name"`
	MOTD     string `json:"motd"`
	Current  int    `json:"current"`
	Max      int    `json:"max"`
}

var servers []ServerEntry

const maxProbeWorkers = 4

func serversPath() string {
	return filepath.Join(baseDir, "servers.json")
}

func loadServers() {
	data, err := os.ReadFile(serversPath())
	if err != nil {
		saveServers()
		return
	}
	if err := json.Unmarshal(data, &servers); err != nil {
		logError("load servers: %v", err)
	}
}

func saveServers() {
	out := servers
	if out == nil {
		out = []ServerEntry{}
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		logError("save servers: %v", err)
		return
	}
	if err := os.WriteFile(serversPath(), data, 0644); err != nil {
		logError("save servers: %v", err)
	}
}

// refreshServers probes every bookmark with a bounded worker pool and
// records name, MOTD and population, or marks the entry offline.
func refreshServers() {
	swg := sizedwaitgroup.New(maxProbeWorkers)
	for i := range servers {
		swg.Add()
		go func(s *ServerEntry) {
			defer swg.Done()
			name, motd, count, err := probeServer(s.IP, s.Port, s.Password)
			if err != nil {
				s.Name = tr("Offline")
				s.MOTD = tr("Server is offline")
				s.Current = 0
				s.Max = 0
				return
			}
			s.Name = name
			s.MOTD = motd
			s.Current = count
			s.Max = 10
		}(&servers[i])
	}
	swg.Wait()
	saveServers()
}

// probeServer opens a short-lived session just long enough to capture the
// welcome message and a snapshot of the roster. It never touches the
// replicated world state of the live session.
func probeServer(ip string, port int, password string) (name, motd string, count int, err error) {
	addr := net.JoinHostPort(ip, strconv.Itoa(port))
	conn, err := net.DialTimeout("tcp", addr, connectTimeout)
	if err != nil {
		return "", "", 0, err
	}
	defer conn.Close()

	login := loginMsg{Type: msgLogin, ID: playerID, Password: password, Color: gs.PlayerColor}
	if err := sendMessage(conn, login); err != nil {
		return "", "", 0, err
	}

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	gotWelcome := false
	peers := 0
	for {
		raw, rerr := readMessage(conn)
		if rerr != nil {
			break
		}
		typ, ok := messageType(raw)
		if !ok {
			continue
		}
		switch typ {
		case msgWelcome:
			var m welcomeMsg
			if json.Unmarshal(raw, &m) == nil {
				name = m.Server
				motd = m.MOTD
				gotWelcome = true
			}
		case msgPlayerJoin:
			peers++
		case msgDisconnect:
			var m disconnectMsg
			_ = json.Unmarshal(raw, &m)
			return "", "", 0, errServerRefused(m.Reason)
		}
		if gotWelcome && peers > 0 {
			break
		}
	}
	if !gotWelcome {
		return "", "", 0, errNoWelcome
	}
	return name, motd, peers + 1, nil
}
