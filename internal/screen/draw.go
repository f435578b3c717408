package screen

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/maze-chase/internal/game"
)

const hudHeight = 80

var (
	colBlack  = color.RGBA{A: 255}
	colWhite  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colWall   = color.RGBA{R: 33, G: 33, B: 222, A: 255}
	colYellow = color.RGBA{R: 255, G: 210, A: 255}
	colOrange = color.RGBA{R: 255, G: 165, A: 255}
	colCyan   = color.RGBA{G: 255, B: 255, A: 255}
	colNavy   = color.RGBA{B: 128, A: 255}
	colHUD    = color.RGBA{R: 20, G: 20, B: 20, A: 255}
)

// ghostPalette maps game.Ghost* colour indices to body colours.
var ghostPalette = [...]color.RGBA{
	game.GhostRed:    {R: 222, G: 33, B: 33, A: 255},
	game.GhostPink:   {R: 255, G: 105, B: 180, A: 255},
	game.GhostCyan:   {R: 70, G: 190, B: 230, A: 255},
	game.GhostOrange: {R: 230, G: 140, B: 40, A: 255},
}

func ghostColor(g game.GhostView) color.RGBA {
	if g.Frightened {
		return colCyan
	}
	return ghostPalette[g.Color%len(ghostPalette)]
}

func playerColor(snap game.Snapshot) color.RGBA {
	if snap.Powered {
		return colOrange
	}
	return colYellow
}

// hudText is what the bottom bar shows for a snapshot.
type hudText struct {
	score       string
	lives       string
	status      string
	statusColor color.RGBA
}

func hudFor(snap game.Snapshot, paused bool) hudText {
	h := hudText{
		score:       fmt.Sprintf("Score: %d", snap.Score),
		lives:       fmt.Sprintf("Lives: %d", snap.Lives),
		status:      snap.Status,
		statusColor: colWhite,
	}
	if snap.Powered && snap.State == game.StatePlaying {
		h.status = fmt.Sprintf("POWER! %.1fs", snap.PowerLeft.Seconds())
		h.statusColor = colOrange
	}
	if paused && !snap.State.Terminal() {
		h.status = "PAUSED  P=resume"
	}
	return h
}

func drawMaze(screen *ebiten.Image, snap game.Snapshot) {
	t := float32(snap.TileSize)
	for r := 0; r < snap.Rows; r++ {
		for c := 0; c < snap.Cols; c++ {
			x, y := float32(c)*t, float32(r)*t
			if snap.Walls[r][c] {
				vector.FillRect(screen, x, y, t, t, colWall, false)
				continue
			}
			switch snap.Pellets[r][c] {
			case game.TilePellet:
				vector.FillCircle(screen, x+t/2, y+t/2, 5, colWhite, true)
			case game.TilePowerPellet:
				vector.FillCircle(screen, x+t/2, y+t/2, 9, colWhite, true)
			}
		}
	}
}

func drawGhost(screen *ebiten.Image, g game.GhostView) {
	x, y := float32(g.Pos.X), float32(g.Pos.Y)
	vector.FillCircle(screen, x, y, float32(g.Radius), ghostColor(g), true)
	const eye = 6
	for _, dx := range []float32{-eye, eye} {
		vector.FillCircle(screen, x+dx, y-eye, 4, colWhite, true)
		vector.FillCircle(screen, x+dx, y-eye, 2, colNavy, true)
	}
}

func drawPlayer(screen *ebiten.Image, snap game.Snapshot) {
	vector.FillCircle(screen, float32(snap.Player.X), float32(snap.Player.Y), float32(snap.PlayerRadius), playerColor(snap), true)
}

func drawText(dst *ebiten.Image, s string, face text.Face, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, face, op)
}

func drawHUD(screen *ebiten.Image, face text.Face, snap game.Snapshot, paused bool, width int) {
	top := float32(snap.Rows) * float32(snap.TileSize)
	vector.FillRect(screen, 0, top, float32(width), hudHeight, colHUD, false)

	h := hudFor(snap, paused)
	drawText(screen, h.score, face, 16, float64(top)+16, colWhite)
	lw := text.Advance(h.lives, face)
	drawText(screen, h.lives, face, float64(width)-16-lw, float64(top)+16, colWhite)
	if h.status != "" {
		drawText(screen, h.status, face, 16, float64(top)+44, h.statusColor)
	}
}
