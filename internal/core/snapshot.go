package core

// Snapshot is an immutable copy of a grid's cells.
type Snapshot struct {
	size  Size
	cells []uint8
}

// Size returns the dimensions of the grid the snapshot was taken from.
func (s Snapshot) Size() Size { return s.size }

// Alive reports whether (row, col) was live when the snapshot was taken.
// Coordinates outside the snapshot report false.
func (s Snapshot) Alive(row, col int) bool {
	if !s.size.Contains(Cell{Row: row, Col: col}) || len(s.cells) != s.size.Cells() {
		return false
	}
	return s.cells[row*s.size.Cols+col] != 0
}

// Live lists the live cells in row-major order.
func (s Snapshot) Live() []Cell {
	var out []Cell
	for i, c := range s.cells {
		if c != 0 {
			out = append(out, Cell{Row: i / s.size.Cols, Col: i % s.size.Cols})
		}
	}
	return out
}

// Store is a single slot holding the last committed seed.
type Store struct {
	snap Snapshot
	ok   bool
}

// Commit replaces the stored snapshot.
func (s *Store) Commit(snap Snapshot) {
	s.snap = snap
	s.ok = true
}

// Load returns the stored snapshot, or false if nothing was committed yet.
func (s *Store) Load() (Snapshot, bool) {
	return s.snap, s.ok
}
