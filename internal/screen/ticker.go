package screen

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/maze-chase/internal/game"
)

const (
	tickerWidth      = 260
	tickerMaxEntries = 40
	tickerLineHeight = 14
)

// TickerEntry is a single line in the event ticker.
type TickerEntry struct {
	Frame    int
	Actor    string
	Category string
	Message  string
}

// Ticker is a ring buffer of recent session events rendered beside the maze.
// Plain pellet pickups are too frequent to be worth a line and are skipped.
type Ticker struct {
	entries []TickerEntry
	head    int
	count   int
}

// NewTicker creates a ticker with a fixed capacity.
func NewTicker() *Ticker {
	return &Ticker{
		entries: make([]TickerEntry, tickerMaxEntries),
	}
}

// OnEvent records e unless it is a plain pellet pickup.
func (tk *Ticker) OnEvent(e game.Event) {
	if e.Key == game.KeyPellet {
		return
	}
	tk.Add(e.Frame, e.Actor, e.Category, fmt.Sprintf("%s %s", e.Key, e.Value))
}

// Add appends an entry, overwriting the oldest once full.
func (tk *Ticker) Add(frame int, actor, category, msg string) {
	tk.entries[tk.head] = TickerEntry{
		Frame:    frame,
		Actor:    actor,
		Category: category,
		Message:  msg,
	}
	tk.head = (tk.head + 1) % tickerMaxEntries
	if tk.count < tickerMaxEntries {
		tk.count++
	}
}

// Recent returns entries in chronological order (oldest first).
func (tk *Ticker) Recent() []TickerEntry {
	result := make([]TickerEntry, tk.count)
	for i := 0; i < tk.count; i++ {
		idx := (tk.head - tk.count + i + tickerMaxEntries) % tickerMaxEntries
		result[i] = tk.entries[idx]
	}
	return result
}

func categoryColor(category string) color.RGBA {
	switch category {
	case game.CatContact:
		return color.RGBA{R: 222, G: 33, B: 33, A: 255}
	case game.CatPower:
		return color.RGBA{R: 255, G: 165, A: 255}
	case game.CatState:
		return color.RGBA{R: 80, G: 200, B: 80, A: 255}
	default:
		return color.RGBA{R: 200, G: 200, B: 200, A: 255}
	}
}

// Draw renders the ticker panel at panelX, newest entry at the bottom.
func (tk *Ticker) Draw(screen *ebiten.Image, panelX, panelH int) {
	vector.FillRect(screen, float32(panelX), 0, float32(tickerWidth), float32(panelH), color.RGBA{R: 10, G: 10, B: 16, A: 248}, false)
	vector.StrokeLine(screen, float32(panelX), 0, float32(panelX), float32(panelH), 1.0, color.RGBA{R: 33, G: 33, B: 120, A: 255}, false)

	vector.FillRect(screen, float32(panelX), 0, float32(tickerWidth), 16, color.RGBA{R: 20, G: 20, B: 40, A: 255}, false)
	ebitenutil.DebugPrintAt(screen, "EVENTS", panelX+8, 0)

	entries := tk.Recent()
	maxVisible := (panelH - 24) / tickerLineHeight
	if len(entries) > maxVisible {
		entries = entries[len(entries)-maxVisible:]
	}

	y := 20
	for i, e := range entries {
		if i >= len(entries)-3 {
			vector.FillRect(screen, float32(panelX+2), float32(y), float32(tickerWidth-4), float32(tickerLineHeight), color.RGBA{R: 30, G: 30, B: 50, A: 160}, false)
		}
		vector.FillRect(screen, float32(panelX+5), float32(y+4), 3, 6, categoryColor(e.Category), false)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%4d %-6s %s", e.Frame, e.Actor, e.Message), panelX+12, y-2)
		y += tickerLineHeight
	}
}
