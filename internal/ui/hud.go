//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"

	"lifeviewer/internal/control"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const resetNote = "*Reset sets all shapes to their original form regardless of turn implemented"

var (
	textColor   = color.RGBA{R: 20, G: 20, B: 24, A: 255}
	mutedColor  = color.RGBA{R: 110, G: 110, B: 120, A: 255}
	trackColor  = color.RGBA{R: 150, G: 150, B: 160, A: 255}
	knobColor   = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	refuseColor = color.RGBA{R: 200, G: 60, B: 50, A: 255}
)

// HUD paints the control row, the generation readout and the footnote.
type HUD struct {
	bar   *Bar
	pixel *ebiten.Image

	refused     int
	flashFrames int
}

// NewHUD constructs a HUD drawing the given bar.
func NewHUD(bar *Bar) *HUD {
	h := &HUD{bar: bar}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	return h
}

// Draw paints the controls for v onto screen.
func (h *HUD) Draw(screen *ebiten.Image, v control.View) {
	if h == nil {
		return
	}
	if v.Refused != h.refused {
		h.refused = v.Refused
		h.flashFrames = 20
	}

	for id := control.Button(0); id < control.ButtonCount; id++ {
		state := v.Buttons[id]
		if !state.Visible {
			continue
		}
		if id == control.ButtonSpeed {
			h.drawSlider(screen, v.Slider())
			continue
		}
		h.drawButton(screen, h.bar.Rect(id), v.Label(id), state.Enabled)
	}

	face := basicfont.Face7x13
	readout := h.bar.ReadoutPos()
	text.Draw(screen, fmt.Sprintf("Generation: %d", v.Generation), face, readout.X, readout.Y, textColor)
	text.Draw(screen, fmt.Sprintf("Population: %d", v.Population), face, readout.X, readout.Y+16, mutedColor)
	if v.Mode != control.ModeEdit {
		text.Draw(screen, fmt.Sprintf("Delay: %d ms", v.SpeedMs), face, h.bar.Rect(control.ButtonSpeed).Min.X, readout.Y, mutedColor)
	}
	note := h.bar.NotePos()
	text.Draw(screen, resetNote, face, note.X, note.Y, textColor)

	if h.flashFrames > 0 {
		h.flashFrames--
		text.Draw(screen, "ignored: "+v.LastRefused.String(), face, note.X, readout.Y, refuseColor)
	}
}

func (h *HUD) drawButton(screen *ebiten.Image, rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 180, G: 180, B: 186, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	screen.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	textWidth := bounds.Dx()
	textHeight := bounds.Dy()
	x := rect.Min.X + (rect.Dx()-textWidth)/2
	y := rect.Min.Y + (rect.Dy()-textHeight)/2 + textHeight
	text.Draw(screen, label, face, x, y, fg)
}

func (h *HUD) drawSlider(screen *ebiten.Image, value int) {
	rect := h.bar.Rect(control.ButtonSpeed)
	lo, hi := h.bar.track()
	cy := float32(rect.Min.Y + rect.Dy()/2)
	vector.StrokeLine(screen, float32(lo), cy, float32(hi), cy, 3, trackColor, true)
	vector.DrawFilledCircle(screen, float32(h.bar.KnobX(value)), cy, 7, knobColor, true)
}
