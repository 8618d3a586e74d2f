//go:build ebiten

package render

import (
	"lifeviewer/internal/input"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads the rasterized board into a single image and draws it
// at the grid origin.
type GridPainter struct {
	raster *Raster
	img    *ebiten.Image
	x, y   int
}

// NewGridPainter allocates a painter for the board described by geom.
func NewGridPainter(geom input.Geometry, pal Palette) *GridPainter {
	r := NewRaster(geom, pal)
	w, h := r.Size()
	return &GridPainter{raster: r, img: ebiten.NewImage(w, h), x: geom.OriginX, y: geom.OriginY}
}

// Blit uploads the provided cells into the painter image and draws it.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8) {
	gp.img.WritePixels(gp.raster.Fill(cells))

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(gp.x), float64(gp.y))
	dst.DrawImage(gp.img, op)
}
