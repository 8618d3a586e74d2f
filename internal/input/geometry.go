package input

import (
	"image"

	"lifeviewer/internal/core"
)

const (
	// OriginX and OriginY place the top-left gridline on the canvas.
	OriginX = 25
	OriginY = 40
	// CellWidth and CellHeight exclude the one-pixel gridline.
	CellWidth  = 5
	CellHeight = 5
)

// Geometry maps between canvas pixels and grid cells. Each cell owns the
// gridline pixels on its top and left edge.
type Geometry struct {
	OriginX int
	OriginY int
	PitchX  int
	PitchY  int
	Size    core.Size
}

// DefaultGeometry returns the reference layout for a board of the given size.
func DefaultGeometry(size core.Size) Geometry {
	return Geometry{
		OriginX: OriginX,
		OriginY: OriginY,
		PitchX:  CellWidth + 1,
		PitchY:  CellHeight + 1,
		Size:    size,
	}
}

// CellAt returns the cell under the canvas pixel (x, y).
func (g Geometry) CellAt(x, y int) (core.Cell, bool) {
	if g.PitchX <= 0 || g.PitchY <= 0 || x < g.OriginX || y < g.OriginY {
		return core.Cell{}, false
	}
	cell := core.Cell{Row: (y - g.OriginY) / g.PitchY, Col: (x - g.OriginX) / g.PitchX}
	if !g.Size.Contains(cell) {
		return core.Cell{}, false
	}
	return cell, true
}

// Bounds returns the canvas rectangle covered by the grid including its
// closing gridlines.
func (g Geometry) Bounds() image.Rectangle {
	return image.Rect(
		g.OriginX,
		g.OriginY,
		g.OriginX+g.Size.Cols*g.PitchX+1,
		g.OriginY+g.Size.Rows*g.PitchY+1,
	)
}

// CellRect returns the fill rectangle of c, inside its gridlines.
func (g Geometry) CellRect(c core.Cell) image.Rectangle {
	x := g.OriginX + c.Col*g.PitchX + 1
	y := g.OriginY + c.Row*g.PitchY + 1
	return image.Rect(x, y, x+g.PitchX-1, y+g.PitchY-1)
}
