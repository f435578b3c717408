package game

// Collectibles is the mutable pellet map. It starts as a deep copy of the
// layout and cells only ever move from pellet/power pellet to empty; the only
// way back is Refill on a full restart.
type Collectibles struct {
	rows, cols int
	items      []Tile
	seed       Layout
	remaining  int
}

// NewCollectibles copies the edible contents of l. Walls become TileEmpty.
func NewCollectibles(l Layout) *Collectibles {
	c := &Collectibles{seed: l.Clone()}
	c.Refill()
	return c
}

// Refill restores every pellet from the original layout.
func (c *Collectibles) Refill() {
	c.rows = len(c.seed)
	c.cols = 0
	if c.rows > 0 {
		c.cols = len(c.seed[0])
	}
	c.items = make([]Tile, c.rows*c.cols)
	c.remaining = 0
	for r, row := range c.seed {
		for col, t := range row {
			if t == TilePellet || t == TilePowerPellet {
				c.items[r*c.cols+col] = t
				c.remaining++
			}
		}
	}
}

// At returns the collectible at (row, col). Off-board cells hold nothing.
func (c *Collectibles) At(row, col int) Tile {
	if row < 0 || row >= c.rows || col < 0 || col >= c.cols {
		return TileEmpty
	}
	return c.items[row*c.cols+col]
}

// Take clears (row, col) and returns what was there. A second Take on the
// same cell returns TileEmpty.
func (c *Collectibles) Take(row, col int) Tile {
	t := c.At(row, col)
	if t == TileEmpty {
		return TileEmpty
	}
	c.items[row*c.cols+col] = TileEmpty
	c.remaining--
	return t
}

// Remaining counts pellets and power pellets still on the board.
func (c *Collectibles) Remaining() int {
	return c.remaining
}

// Grid returns a row-major copy of the current pellet map, for renderers and tests.
func (c *Collectibles) Grid() Layout {
	out := make(Layout, c.rows)
	for r := 0; r < c.rows; r++ {
		out[r] = append([]Tile(nil), c.items[r*c.cols:(r+1)*c.cols]...)
	}
	return out
}
