package render

import (
	"image/color"

	"lifeviewer/internal/input"
)

// Palette holds the colors used to rasterize the board.
type Palette struct {
	Grid color.Color
	Live color.Color
	Dead color.Color
}

// DefaultPalette draws black gridlines over a light board.
func DefaultPalette() Palette {
	return Palette{
		Grid: color.RGBA{R: 0, G: 0, B: 0, A: 255},
		Live: color.RGBA{R: 40, G: 120, B: 70, A: 255},
		Dead: color.RGBA{R: 238, G: 238, B: 238, A: 255},
	}
}

type rgba [4]byte

func toRGBA(c color.Color) rgba {
	r, g, b, a := c.RGBA()
	return rgba{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

// Raster converts binary cell data into an RGBA pixel buffer covering the
// board and its gridlines, one pitch per cell.
type Raster struct {
	w, h       int
	rows, cols int
	px, py     int
	grid       rgba
	live       rgba
	dead       rgba
	buf        []byte
}

// NewRaster allocates a raster for the board described by geom.
func NewRaster(geom input.Geometry, pal Palette) *Raster {
	bounds := geom.Bounds()
	r := &Raster{
		w:    bounds.Dx(),
		h:    bounds.Dy(),
		rows: geom.Size.Rows,
		cols: geom.Size.Cols,
		px:   geom.PitchX,
		py:   geom.PitchY,
		grid: toRGBA(pal.Grid),
		live: toRGBA(pal.Live),
		dead: toRGBA(pal.Dead),
	}
	r.buf = make([]byte, 4*r.w*r.h)
	return r
}

// Size returns the raster dimensions in pixels.
func (r *Raster) Size() (int, int) { return r.w, r.h }

// Fill paints cells into the internal buffer and returns it. The buffer is
// reused by the next call. Cells of the wrong length leave it untouched.
func (r *Raster) Fill(cells []uint8) []byte {
	if len(cells) != r.rows*r.cols {
		return r.buf
	}
	for y := 0; y < r.h; y++ {
		row := y / r.py
		onRowLine := y%r.py == 0 || row >= r.rows
		base := y * r.w * 4
		for x := 0; x < r.w; x++ {
			col := x / r.px
			c := r.grid
			if !onRowLine && x%r.px != 0 && col < r.cols {
				c = r.dead
				if cells[row*r.cols+col] != 0 {
					c = r.live
				}
			}
			copy(r.buf[base+x*4:base+x*4+4], c[:])
		}
	}
	return r.buf
}
