package main

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/hako/durafmt"
)

const (
	screenWidth  = 1200
	screenHeight = 700
	blockSize    = 32

	playerPixelWidth  = 28
	playerPixelHeight = 64

	maxChatInputLen = 100
	chatTailLines   = 5
)

// Game is the gameplay screen: it runs the predicted simulation against
// the replicated world each tick and renders both.
type Game struct {
	conn     *Connection
	player   localPlayer
	bindings keyBindings

	cameraX, cameraY int
	selectedSlot     int

	chatOpen  bool
	chatInput string
}

func newGame(conn *Connection) *Game {
	g := &Game{
		conn:     conn,
		bindings: resolveBindings(),
	}
	g.player.x, g.player.y = spawnPosition()
	return g
}

func (g *Game) Update() error {
	if !g.conn.isConnected() {
		return ebiten.Termination
	}
	dt := 1.0 / float64(ebiten.TPS())

	if g.chatOpen {
		g.updateChatEntry()
	} else {
		g.updateHotbarSelection()
		g.updateBlockInteraction()
		if inpututil.IsKeyJustPressed(g.bindings.chat) {
			g.chatOpen = true
			g.chatInput = ""
		}
	}

	// The simulation pauses while the chat line has the keyboard; no
	// position reports go out for those frames either.
	if !g.chatOpen {
		in := moveInput{
			left:  ebiten.IsKeyPressed(g.bindings.moveLeft),
			right: ebiten.IsKeyPressed(g.bindings.moveRight),
			jump:  ebiten.IsKeyPressed(g.bindings.jump),
		}
		g.player.step(dt, in)
		g.conn.sendPosition(g.player.x, g.player.y)
	}

	g.updateCamera()
	return nil
}

func (g *Game) updateChatEntry() {
	for _, r := range ebiten.AppendInputChars(nil) {
		if len(g.chatInput) < maxChatInputLen {
			g.chatInput += string(r)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && g.chatInput != "" {
		runes := []rune(g.chatInput)
		g.chatInput = string(runes[:len(runes)-1])
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.submitChat()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.chatOpen = false
		g.chatInput = ""
	}
}

// submitChat sends the pending input line, if it has any content, and
// closes the entry field either way.
func (g *Game) submitChat() {
	if text := strings.TrimSpace(g.chatInput); text != "" {
		g.conn.sendChat(text)
	}
	g.chatOpen = false
	g.chatInput = ""
}

func (g *Game) updateHotbarSelection() {
	for i := 0; i < hotbarSlots; i++ {
		if inpututil.IsKeyJustPressed(ebiten.KeyDigit1 + ebiten.Key(i)) {
			g.selectedSlot = i
		}
	}
	if _, wy := ebiten.Wheel(); wy != 0 {
		g.selectedSlot = ((g.selectedSlot-int(wy))%hotbarSlots + hotbarSlots) % hotbarSlots
	}
}

// updateBlockInteraction handles break/place clicks on the tile under the
// cursor, limited to the original's reach: one column sideways and two rows
// up or down from the body.
func (g *Game) updateBlockInteraction() {
	breakClick := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	placeClick := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
	if !breakClick && !placeClick {
		return
	}

	mx, my := ebiten.CursorPosition()
	tileX := (mx + g.cameraX) / blockSize
	tileY := (my + g.cameraY) / blockSize

	bodyX := int(g.player.x)
	bodyY := int(g.player.y)
	dx := absInt(tileX - bodyX)
	dy := minInt(absInt(tileY-bodyY), absInt(tileY-(bodyY+1)))
	if dx > 1 || dy > 2 {
		return
	}
	w, h := worldSize()
	if tileX < 0 || tileX >= w || tileY < 0 || tileY >= h {
		return
	}

	if breakClick {
		g.conn.breakBlock(tileX, tileY)
		return
	}
	if getHotbar()[g.selectedSlot] == nil {
		return
	}
	// Never place into the player's own two cells.
	if tileX == bodyX && (tileY == bodyY || tileY == bodyY+1) {
		return
	}
	g.conn.placeBlock(tileX, tileY, g.selectedSlot)
}

func (g *Game) updateCamera() {
	w, h := worldSize()
	g.cameraX = int(g.player.x*blockSize) - screenWidth/2
	g.cameraY = int(g.player.y*blockSize) - screenHeight/2
	g.cameraX = clampInt(g.cameraX, 0, maxInt(0, w*blockSize-screenWidth))
	g.cameraY = clampInt(g.cameraY, 0, maxInt(0, h*blockSize-screenHeight))
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(skyColor)

	g.drawWorld(screen)
	for _, p := range getPlayers() {
		g.drawCharacter(screen, p.X, p.Y, playerBodyColor(p.Color), p.ID)
	}
	g.drawCharacter(screen, g.player.x, g.player.y, playerBodyColor(gs.PlayerColor), "")
	g.drawHotbar(screen)

	if g.chatOpen {
		g.drawChatOverlay(screen)
	} else {
		for i, msg := range lastChatMessages(chatTailLines) {
			ebitenutil.DebugPrintAt(screen, msg, 10, 10+i*18)
		}
	}
	g.drawHUD(screen)
}

func (g *Game) drawWorld(screen *ebiten.Image) {
	grid := worldSnapshot()
	for y, row := range grid {
		for x, block := range row {
			if block == blockAir {
				continue
			}
			sx := x*blockSize - g.cameraX
			sy := y*blockSize - g.cameraY
			if sx <= -blockSize || sx >= screenWidth || sy <= -blockSize || sy >= screenHeight {
				continue
			}
			vector.DrawFilledRect(screen, float32(sx), float32(sy), blockSize, blockSize, blockColor(block), false)
			vector.StrokeRect(screen, float32(sx), float32(sy), blockSize, blockSize, 1, color.Black, false)
		}
	}
}

// drawCharacter renders the two-tile body: colored lower half, pink head.
func (g *Game) drawCharacter(screen *ebiten.Image, x, y float64, body color.RGBA, name string) {
	sx := int(x*blockSize) - g.cameraX
	sy := int(y*blockSize) - g.cameraY
	left := float32(sx - playerPixelWidth/2)

	vector.DrawFilledRect(screen, left, float32(sy+playerPixelHeight/2), playerPixelWidth, playerPixelHeight/2, body, false)
	vector.DrawFilledRect(screen, left, float32(sy), playerPixelWidth, playerPixelHeight/2, headColor, false)
	vector.StrokeRect(screen, left, float32(sy), playerPixelWidth, playerPixelHeight, 1, color.Black, false)
	if name != "" {
		ebitenutil.DebugPrintAt(screen, name, sx-len(name)*3, sy-16)
	}
}

func (g *Game) drawHotbar(screen *ebiten.Image) {
	slots := getHotbar()
	const slotStride, slotSize = 50, 40
	barWidth := hotbarSlots * slotStride
	barX := screenWidth/2 - barWidth/2
	barY := screenHeight - 70

	vector.DrawFilledRect(screen, float32(barX-10), float32(barY-10), float32(barWidth+20), 60, color.RGBA{50, 50, 50, 200}, false)
	for i, slot := range slots {
		sx := barX + i*slotStride
		if i == g.selectedSlot {
			vector.StrokeRect(screen, float32(sx-2), float32(barY-2), slotSize+4, slotSize+4, 3, color.RGBA{255, 255, 100, 255}, false)
		} else {
			vector.StrokeRect(screen, float32(sx), float32(barY), slotSize, slotSize, 2, color.White, false)
		}
		if slot != nil {
			vector.DrawFilledRect(screen, float32(sx+5), float32(barY+5), 30, 30, blockColor(slot.Block), false)
			ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d", slot.Count), sx+25, barY+25)
		}
	}
}

func (g *Game) drawChatOverlay(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, screenWidth, screenHeight, color.RGBA{0, 0, 0, 200}, false)
	for i, msg := range lastChatMessages(20) {
		ebitenutil.DebugPrintAt(screen, msg, 20, 50+i*20)
	}
	inputY := screenHeight - 100
	vector.DrawFilledRect(screen, 20, float32(inputY), screenWidth-40, 40, color.White, false)
	ebitenutil.DebugPrintAt(screen, g.chatInput+cursorBlink(), 30, inputY+12)
	ebitenutil.DebugPrintAt(screen, tr("Press Enter to send, ESC to close"), screenWidth/2-120, inputY-24)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	name, _, level := serverInfo()
	uptime := durafmt.Parse(time.Since(g.conn.connectedAt).Round(time.Second)).LimitFirstN(2).String()
	lines := []string{
		fmt.Sprintf("%s: %s", tr("Server"), name),
		fmt.Sprintf("%s: (%d, %d)", tr("Position"), int(g.player.x), int(g.player.y)),
		fmt.Sprintf("%s: %d", tr("Players"), playerCount()+1),
		fmt.Sprintf("%s: %d", tr("Level"), level),
		fmt.Sprintf("%s: %s", tr("Color"), colorDisplayName(gs.PlayerColor)),
		fmt.Sprintf("%s: %s", tr("Connected"), uptime),
		fmt.Sprintf("%s: %s", tr("Received"), humanize.Bytes(uint64(bytesReceived.Load()))),
	}
	top := screenHeight - 170
	vector.DrawFilledRect(screen, 10, float32(top-5), 280, float32(len(lines)*18+10), color.RGBA{0, 0, 0, 180}, false)
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, 15, top+i*18)
	}
}

func (g *Game) Layout(int, int) (int, int) {
	return screenWidth, screenHeight
}

// cursorBlink appends a text cursor on alternating half seconds.
func cursorBlink() string {
	if time.Now().UnixMilli()/500%2 == 0 {
		return "_"
	}
	return ""
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
