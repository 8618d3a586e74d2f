//go:build ebiten

package app

import (
	"image"

	"lifeviewer/internal/control"
	"lifeviewer/internal/input"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var shortcuts = []struct {
	key    ebiten.Key
	button control.Button
}{
	{ebiten.KeySpace, control.ButtonStart},
	{ebiten.KeyN, control.ButtonStep},
	{ebiten.KeyE, control.ButtonEditor},
	{ebiten.KeyEnter, control.ButtonDone},
	{ebiten.KeyC, control.ButtonClear},
	{ebiten.KeyR, control.ButtonReset},
}

// pollPointer turns the left mouse button and cursor into device events.
// Clicks on the control row become activations, drags on the slider become
// slider changes, everything else is forwarded as raw pointer events.
func (g *Game) pollPointer() []input.Event {
	var events []input.Event
	x, y := ebiten.CursorPosition()
	v := g.ctrl.View()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if id, ok := g.bar.ButtonAt(v, x, y); ok {
			return append(events, input.Event{Kind: input.EventActivate, Button: id})
		}
		if g.bar.OnSlider(v, x, y) {
			g.sliding = true
		} else {
			events = append(events, input.Event{Kind: input.EventPress, X: x, Y: y})
		}
		g.cursor, g.hasMoved = image.Pt(x, y), true
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		switch {
		case g.sliding:
			if value := g.bar.SliderValue(x); value != v.Slider() {
				events = append(events, input.Event{Kind: input.EventSlider, Value: value})
			}
		case !g.hasMoved || g.cursor != image.Pt(x, y):
			events = append(events, input.Event{Kind: input.EventMove, X: x, Y: y})
		}
		g.cursor, g.hasMoved = image.Pt(x, y), true
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.sliding = false
		g.hasMoved = false
		events = append(events, input.Event{Kind: input.EventRelease})
	}
	return events
}

func (g *Game) pollKeys() []input.Event {
	var events []input.Event
	for _, s := range shortcuts {
		if inpututil.IsKeyJustPressed(s.key) {
			events = append(events, input.Event{Kind: input.EventActivate, Button: s.button})
		}
	}
	return events
}
