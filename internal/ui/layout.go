package ui

import (
	"image"

	"lifeviewer/internal/control"
)

const (
	buttonWidth  = 100
	buttonHeight = 36

	// ReferenceTop is the y coordinate of the control row on the reference canvas.
	ReferenceTop = 550

	sliderInset = 8
)

// column positions of each control in the row, left to right. The speed
// slider and the Clear button share a slot; they are never visible together.
var columns = [control.ButtonCount]int{
	control.ButtonStart:  25,
	control.ButtonStep:   125,
	control.ButtonDone:   225,
	control.ButtonSpeed:  325,
	control.ButtonClear:  325,
	control.ButtonReset:  425,
	control.ButtonEditor: 525,
}

// Bar lays out the control row and hit-tests pointer positions against it.
type Bar struct {
	top   int
	rects [control.ButtonCount]image.Rectangle
}

// NewBar places the control row with its top edge at y = top.
func NewBar(top int) *Bar {
	b := &Bar{top: top}
	for id, x := range columns {
		b.rects[id] = image.Rect(x, top, x+buttonWidth, top+buttonHeight)
	}
	return b
}

// Top returns the y coordinate of the control row.
func (b *Bar) Top() int { return b.top }

// Rect returns the screen rectangle of a control.
func (b *Bar) Rect(id control.Button) image.Rectangle {
	if id >= control.ButtonCount {
		return image.Rectangle{}
	}
	return b.rects[id]
}

// ButtonAt returns the actionable button under (x, y). The speed slider is
// not a button and is never returned.
func (b *Bar) ButtonAt(v control.View, x, y int) (control.Button, bool) {
	p := image.Pt(x, y)
	for id := control.Button(0); id < control.ButtonCount; id++ {
		if id == control.ButtonSpeed || !v.Buttons[id].Actionable() {
			continue
		}
		if p.In(b.rects[id]) {
			return id, true
		}
	}
	return 0, false
}

// OnSlider reports whether (x, y) grabs the speed slider.
func (b *Bar) OnSlider(v control.View, x, y int) bool {
	return v.Buttons[control.ButtonSpeed].Actionable() && image.Pt(x, y).In(b.rects[control.ButtonSpeed])
}

func (b *Bar) track() (int, int) {
	r := b.rects[control.ButtonSpeed]
	return r.Min.X + sliderInset, r.Max.X - sliderInset
}

// SliderValue maps a pointer x coordinate to a slider value in [0, 100].
func (b *Bar) SliderValue(x int) int {
	lo, hi := b.track()
	if x <= lo {
		return 0
	}
	if x >= hi {
		return control.SliderMax
	}
	return ((x-lo)*control.SliderMax + (hi-lo)/2) / (hi - lo)
}

// KnobX returns the x coordinate of the slider knob for value.
func (b *Bar) KnobX(value int) int {
	lo, hi := b.track()
	value = max(0, min(control.SliderMax, value))
	return lo + value*(hi-lo)/control.SliderMax
}

// ReadoutPos is where the generation counter is drawn.
func (b *Bar) ReadoutPos() image.Point { return image.Pt(500, b.top+50) }

// NotePos is where the footnote about Reset is drawn.
func (b *Bar) NotePos() image.Point { return image.Pt(25, b.top+100) }

// CanvasSize returns the canvas needed for a grid whose closing gridlines end
// at gridBottomRight, never smaller than the reference 665x700 window.
func CanvasSize(gridBottomRight image.Point) (top int, size image.Point) {
	top = max(ReferenceTop, gridBottomRight.Y+29)
	size = image.Pt(max(665, gridBottomRight.X+39), top+150)
	return top, size
}
