package core

import "fmt"

// Grid stores a bounded Game of Life board in row-major order together with
// the number of generations computed since the last seed load.
//
// Cells outside the grid are permanently dead; there is no wrapping.
type Grid struct {
	rows, cols int
	cur        []uint8
	nxt        []uint8
	generation int
}

// NewGrid allocates an empty grid. Both dimensions must be positive.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("grid %dx%d: %w", rows, cols, ErrDimensions)
	}
	total := rows * cols
	return &Grid{rows: rows, cols: cols, cur: make([]uint8, total), nxt: make([]uint8, total)}, nil
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{Rows: g.rows, Cols: g.cols} }

// Generation returns the number of steps since the last seed load.
func (g *Grid) Generation() int { return g.generation }

// Cells exposes the current cell values (0 or 1). The slice is owned by the
// grid and is only valid until the next mutation.
func (g *Grid) Cells() []uint8 { return g.cur }

// Index returns the linear slice index for (row, col).
func (g *Grid) Index(row, col int) int { return row*g.cols + col }

func (g *Grid) check(row, col int) error {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return fmt.Errorf("(%d,%d) in %dx%d grid: %w", row, col, g.rows, g.cols, ErrOutOfBounds)
	}
	return nil
}

// Alive reports whether the cell at (row, col) is live.
func (g *Grid) Alive(row, col int) (bool, error) {
	if err := g.check(row, col); err != nil {
		return false, err
	}
	return g.cur[g.Index(row, col)] != 0, nil
}

// SetAlive sets the cell at (row, col) live or dead.
func (g *Grid) SetAlive(row, col int, alive bool) error {
	if err := g.check(row, col); err != nil {
		return err
	}
	var v uint8
	if alive {
		v = 1
	}
	g.cur[g.Index(row, col)] = v
	return nil
}

// Toggle flips the cell at (row, col).
func (g *Grid) Toggle(row, col int) error {
	if err := g.check(row, col); err != nil {
		return err
	}
	g.cur[g.Index(row, col)] ^= 1
	return nil
}

// NeighborCount returns the number of live cells among the up to eight
// neighbors of (row, col). Off-grid neighbors count as dead.
func (g *Grid) NeighborCount(row, col int) (int, error) {
	if err := g.check(row, col); err != nil {
		return 0, err
	}
	return g.neighbors(g.cur, row, col), nil
}

func (g *Grid) neighbors(cells []uint8, row, col int) int {
	n := 0
	for dr := -1; dr <= 1; dr++ {
		r := row + dr
		if r < 0 || r >= g.rows {
			continue
		}
		base := r * g.cols
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			c := col + dc
			if c < 0 || c >= g.cols {
				continue
			}
			n += int(cells[base+c])
		}
	}
	return n
}

// Step advances the board by one generation. Every cell is computed from the
// current buffer into the auxiliary one, then the buffers are swapped.
func (g *Grid) Step() {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			idx := g.Index(row, col)
			n := g.neighbors(g.cur, row, col)
			alive := g.cur[idx] != 0
			g.nxt[idx] = 0
			if (alive && (n == 2 || n == 3)) || (!alive && n == 3) {
				g.nxt[idx] = 1
			}
		}
	}
	g.cur, g.nxt = g.nxt, g.cur
	g.generation++
}

// Clear kills every cell and resets the generation counter.
func (g *Grid) Clear() {
	clear(g.cur)
	g.generation = 0
}

// Population returns the number of live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cur {
		n += int(c)
	}
	return n
}

// Snapshot returns an immutable copy of the current cells.
func (g *Grid) Snapshot() Snapshot {
	return Snapshot{size: g.Size(), cells: append([]uint8(nil), g.cur...)}
}

// LoadFrom replaces the cells with the snapshot's and resets the generation
// counter. The snapshot must have been taken from a grid of the same size.
func (g *Grid) LoadFrom(s Snapshot) error {
	if s.size != g.Size() || len(s.cells) != len(g.cur) {
		return fmt.Errorf("load %dx%d snapshot into %dx%d grid: %w",
			s.size.Rows, s.size.Cols, g.rows, g.cols, ErrDimensions)
	}
	copy(g.cur, s.cells)
	g.generation = 0
	return nil
}

// Randomize fills the grid with a random soup where each cell is live with
// the given probability, and resets the generation counter.
func (g *Grid) Randomize(rng *RNG, density float64) {
	FillDensity(rng.Source(), g.cur, density)
	g.generation = 0
}
