package core

// Size describes the dimensions of a grid in rows and columns.
type Size struct {
	Rows int
	Cols int
}

// Cells returns the number of cells covered by the size.
func (s Size) Cells() int { return s.Rows * s.Cols }

// Contains reports whether c lies inside [0,Rows)x[0,Cols).
func (s Size) Contains(c Cell) bool {
	return c.Row >= 0 && c.Row < s.Rows && c.Col >= 0 && c.Col < s.Cols
}

// Cell addresses one grid position. Row 0, column 0 is the top-left corner.
type Cell struct {
	Row int
	Col int
}
