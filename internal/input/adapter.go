package input

import (
	"lifeviewer/internal/control"
	"lifeviewer/internal/core"
)

// EventKind enumerates raw device events.
type EventKind uint8

const (
	// EventPress is a primary pointer press at (X, Y).
	EventPress EventKind = iota
	// EventMove is pointer motion to (X, Y).
	EventMove
	// EventRelease is the primary pointer release.
	EventRelease
	// EventActivate is a click or shortcut on Button.
	EventActivate
	// EventSlider is a speed slider change to Value.
	EventSlider
)

// Event is a device event in canvas pixel coordinates.
type Event struct {
	Kind   EventKind
	X, Y   int
	Button control.Button
	Value  int
}

var buttonCommands = map[control.Button]control.Kind{
	control.ButtonStart:  control.CmdToggleRun,
	control.ButtonStep:   control.CmdStep,
	control.ButtonEditor: control.CmdEnterEditor,
	control.ButtonDone:   control.CmdExitEditor,
	control.ButtonClear:  control.CmdClear,
	control.ButtonReset:  control.CmdReset,
}

// Adapter turns device events into controller commands and tracks the
// pointer drag. Presses outside the board or outside the editor never start a
// drag, and pixels off the board produce no command.
type Adapter struct {
	geom     Geometry
	dragging bool
	last     core.Cell
	onBoard  bool
}

// NewAdapter returns an Adapter for the given geometry.
func NewAdapter(geom Geometry) *Adapter {
	return &Adapter{geom: geom}
}

// Geometry returns the pixel mapping used by the adapter.
func (a *Adapter) Geometry() Geometry { return a.geom }

// Dragging reports whether a press on the board is still held.
func (a *Adapter) Dragging() bool { return a.dragging }

// Translate converts ev into zero or more commands. mode is the controller's
// current mode; pointer edits are only produced while editing.
func (a *Adapter) Translate(ev Event, mode control.Mode) []control.Command {
	switch ev.Kind {
	case EventPress:
		if mode != control.ModeEdit {
			return nil
		}
		cell, ok := a.geom.CellAt(ev.X, ev.Y)
		if !ok {
			return nil
		}
		a.dragging = true
		a.last, a.onBoard = cell, true
		return []control.Command{control.PointerDown(cell.Row, cell.Col)}
	case EventMove:
		if !a.dragging {
			return nil
		}
		cell, ok := a.geom.CellAt(ev.X, ev.Y)
		if !ok {
			a.onBoard = false
			return nil
		}
		if a.onBoard && cell == a.last {
			return nil
		}
		a.last, a.onBoard = cell, true
		return []control.Command{control.PointerMove(cell.Row, cell.Col)}
	case EventRelease:
		if !a.dragging {
			return nil
		}
		a.Cancel()
		return []control.Command{{Kind: control.CmdPointerUp}}
	case EventActivate:
		kind, ok := buttonCommands[ev.Button]
		if !ok {
			return nil
		}
		if kind == control.CmdExitEditor {
			a.Cancel()
		}
		return []control.Command{{Kind: kind}}
	case EventSlider:
		return []control.Command{control.SetSpeed(ev.Value)}
	}
	return nil
}

// Cancel forgets any drag in progress without emitting PointerUp.
func (a *Adapter) Cancel() {
	a.dragging = false
	a.onBoard = false
}
