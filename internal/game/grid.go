package game

import (
	"fmt"
	"math"
	"strings"
)

// Tile is a layout code. The numeric values double as the collectible codes
// stored in the pellet map.
type Tile uint8

const (
	TileEmpty       Tile = iota // Open corridor, nothing to eat
	TileWall                    // Impassable
	TilePellet                  // Small pellet
	TilePowerPellet             // Power pellet, arms power mode
	tileCount                   // sentinel
)

// Layout is the static board description, row-major.
type Layout [][]Tile

// classicLayout is the stock 7x7 board.
var classicLayout = Layout{
	{1, 1, 1, 1, 1, 1, 1},
	{1, 2, 2, 3, 2, 2, 1},
	{1, 2, 1, 1, 1, 2, 1},
	{1, 2, 2, 2, 2, 2, 1},
	{1, 3, 1, 1, 1, 3, 1},
	{1, 2, 2, 2, 2, 2, 1},
	{1, 1, 1, 1, 1, 1, 1},
}

// DefaultLayout returns a fresh copy of the classic board.
func DefaultLayout() Layout {
	return classicLayout.Clone()
}

// Clone deep-copies the layout.
func (l Layout) Clone() Layout {
	out := make(Layout, len(l))
	for r, row := range l {
		out[r] = append([]Tile(nil), row...)
	}
	return out
}

// Board is a parsed text fixture: the layout plus any spawn markers found.
type Board struct {
	Layout Layout
	Player Cell
	Ghosts []Cell
	// HasPlayer is false when the fixture had no 'P' marker.
	HasPlayer bool
}

// ParseLayout reads a text board.
//
//	#  wall
//	.  pellet
//	o  power pellet
//	P  player spawn (empty floor)
//	G  ghost spawn (empty floor)
//	   anything else is empty floor
func ParseLayout(lines []string) (Board, error) {
	var b Board
	if len(lines) == 0 {
		return b, fmt.Errorf("parse layout: no rows")
	}
	cols := len(lines[0])
	if cols == 0 {
		return b, fmt.Errorf("parse layout: empty first row")
	}
	b.Layout = make(Layout, len(lines))
	for r, line := range lines {
		if len(line) != cols {
			return Board{}, fmt.Errorf("parse layout: row %d has %d columns, want %d", r, len(line), cols)
		}
		row := make([]Tile, cols)
		for c, ch := range line {
			switch ch {
			case '#':
				row[c] = TileWall
			case '.':
				row[c] = TilePellet
			case 'o':
				row[c] = TilePowerPellet
			case 'P':
				b.Player = Cell{Row: r, Col: c}
				b.HasPlayer = true
			case 'G':
				b.Ghosts = append(b.Ghosts, Cell{Row: r, Col: c})
			}
		}
		b.Layout[r] = row
	}
	return b, nil
}

// MustParseLayout is ParseLayout for fixtures known to be well formed.
func MustParseLayout(lines ...string) Board {
	b, err := ParseLayout(lines)
	if err != nil {
		panic(err)
	}
	return b
}

// String renders the layout back into fixture text (no spawn markers).
func (l Layout) String() string {
	var sb strings.Builder
	for r, row := range l {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, t := range row {
			switch t {
			case TileWall:
				sb.WriteByte('#')
			case TilePellet:
				sb.WriteByte('.')
			case TilePowerPellet:
				sb.WriteByte('o')
			default:
				sb.WriteByte(' ')
			}
		}
	}
	return sb.String()
}

// Direction is one of the four cardinal moves, or none.
type Direction uint8

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// cardinals is the fixed probing order used by AvailableDirections.
var cardinals = [4]Direction{DirUp, DirDown, DirLeft, DirRight}

// Delta returns the (row, col) step for d.
func (d Direction) Delta() (dr, dc int) {
	switch d {
	case DirUp:
		return -1, 0
	case DirDown:
		return 1, 0
	case DirLeft:
		return 0, -1
	case DirRight:
		return 0, 1
	default:
		return 0, 0
	}
}

// Reverse returns the opposite direction. DirNone reverses to itself.
func (d Direction) Reverse() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirNone
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// Cell is a discrete grid index.
type Cell struct {
	Row, Col int
}

// Step returns the neighbouring cell in direction d.
func (c Cell) Step(d Direction) Cell {
	dr, dc := d.Delta()
	return Cell{Row: c.Row + dr, Col: c.Col + dc}
}

// Position is a continuous pixel-space coordinate. A cell's stored position
// is its centre, i.e. col*tile + tile/2.
type Position struct {
	X, Y float64
}

// Dist returns the Euclidean distance between p and q.
func (p Position) Dist(q Position) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Maze is the immutable wall grid. It never changes after construction;
// edible contents live in Collectibles.
type Maze struct {
	Rows, Cols int
	TileSize   float64
	walls      []bool
}

// NewMaze builds the wall grid from a layout. Ragged layouts are rejected.
func NewMaze(l Layout, tileSize float64) (*Maze, error) {
	if len(l) == 0 || len(l[0]) == 0 {
		return nil, fmt.Errorf("new maze: empty layout")
	}
	if tileSize <= 0 {
		return nil, fmt.Errorf("new maze: tile size %.1f must be positive", tileSize)
	}
	m := &Maze{
		Rows:     len(l),
		Cols:     len(l[0]),
		TileSize: tileSize,
	}
	m.walls = make([]bool, m.Rows*m.Cols)
	for r, row := range l {
		if len(row) != m.Cols {
			return nil, fmt.Errorf("new maze: row %d has %d columns, want %d", r, len(row), m.Cols)
		}
		for c, t := range row {
			if t >= tileCount {
				return nil, fmt.Errorf("new maze: unknown tile %d at (%d,%d)", t, r, c)
			}
			m.walls[r*m.Cols+c] = t == TileWall
		}
	}
	return m, nil
}

// InBounds reports whether (row, col) is on the board.
func (m *Maze) InBounds(row, col int) bool {
	return row >= 0 && row < m.Rows && col >= 0 && col < m.Cols
}

// IsWall reports whether (row, col) is a wall. Anything off the board is a wall.
func (m *Maze) IsWall(row, col int) bool {
	if !m.InBounds(row, col) {
		return true
	}
	return m.walls[row*m.Cols+col]
}

// AvailableDirections returns the cardinal directions whose neighbour is open,
// in the order up, down, left, right.
func (m *Maze) AvailableDirections(row, col int) []Direction {
	out := make([]Direction, 0, 4)
	for _, d := range cardinals {
		dr, dc := d.Delta()
		if !m.IsWall(row+dr, col+dc) {
			out = append(out, d)
		}
	}
	return out
}

// IsIntersection is true for cells with three or more exits.
func (m *Maze) IsIntersection(row, col int) bool {
	return len(m.AvailableDirections(row, col)) >= 3
}

func (m *Maze) half() float64 { return m.TileSize / 2 }

// CellCenter converts a cell index to the pixel position of its centre.
func (m *Maze) CellCenter(row, col int) Position {
	return Position{
		X: float64(col)*m.TileSize + m.half(),
		Y: float64(row)*m.TileSize + m.half(),
	}
}

// CellOf is the inverse of CellCenter: the half-tile offset is removed and
// both axes are floor-divided by the tile size.
func (m *Maze) CellOf(p Position) (row, col int) {
	return m.axisCell(p.Y), m.axisCell(p.X)
}

// axisCell floor-divides one coordinate into a cell index.
func (m *Maze) axisCell(v float64) int {
	return int(math.Floor((v - m.half()) / m.TileSize))
}

// axisCenter is the pixel coordinate of cell index i's centre on either axis.
func (m *Maze) axisCenter(i int) float64 {
	return float64(i)*m.TileSize + m.half()
}

// AtCenter reports whether p sits exactly on a cell centre.
func (m *Maze) AtCenter(p Position) bool {
	return m.onCenterLine(p.X) && m.onCenterLine(p.Y)
}

func (m *Maze) onCenterLine(v float64) bool {
	return math.Mod(v-m.half(), m.TileSize) == 0
}

// OpenCells returns every non-wall cell in row-major order.
func (m *Maze) OpenCells() []Cell {
	var out []Cell
	for r := 0; r < m.Rows; r++ {
		for c := 0; c < m.Cols; c++ {
			if !m.IsWall(r, c) {
				out = append(out, Cell{Row: r, Col: c})
			}
		}
	}
	return out
}
