package control

import "lifeviewer/internal/core"

// Button identifies one of the on-screen controls.
type Button uint8

const (
	ButtonStart Button = iota
	ButtonStep
	ButtonEditor
	ButtonDone
	ButtonClear
	ButtonReset
	ButtonSpeed
	ButtonCount
)

// ButtonState is the derived visibility of a control. A visible but disabled
// control is drawn greyed out and ignores activations.
type ButtonState struct {
	Visible bool
	Enabled bool
}

// Actionable reports whether the control accepts activations.
func (s ButtonState) Actionable() bool { return s.Visible && s.Enabled }

// View is the read-only render model for one frame. Cells aliases the
// controller's board and must not be retained past the next command.
type View struct {
	Size       core.Size
	Cells      []uint8
	Generation int
	Population int
	Mode       Mode
	SpeedMs    int
	Buttons    [ButtonCount]ButtonState

	// Refused counts refused commands; LastRefused is the most recent one.
	Refused     int
	LastRefused Command
}

// Alive reports whether (row, col) is live. Off-board cells report false.
func (v View) Alive(row, col int) bool {
	if !v.Size.Contains(core.Cell{Row: row, Col: col}) {
		return false
	}
	return v.Cells[row*v.Size.Cols+col] != 0
}

// Slider returns the raw slider position that corresponds to SpeedMs.
func (v View) Slider() int { return SliderMax - v.SpeedMs }

// Label returns the caption drawn on b.
func (v View) Label(b Button) string {
	switch b {
	case ButtonStart:
		if v.Mode == ModeRunning {
			return "Stop"
		}
		return "Start"
	case ButtonStep:
		return "Step"
	case ButtonEditor:
		return "Editor"
	case ButtonDone:
		return "Done"
	case ButtonClear:
		return "Clear"
	case ButtonReset:
		return "*Reset"
	case ButtonSpeed:
		return "Speed"
	default:
		return ""
	}
}

// View builds the render model for the current state.
func (c *Controller) View() View {
	return View{
		Size:        c.grid.Size(),
		Cells:       c.grid.Cells(),
		Generation:  c.grid.Generation(),
		Population:  c.grid.Population(),
		Mode:        c.mode,
		SpeedMs:     c.speedMs,
		Buttons:     buttonsFor(c.mode),
		Refused:     c.refused,
		LastRefused: c.lastRefused,
	}
}

func buttonsFor(mode Mode) [ButtonCount]ButtonState {
	var b [ButtonCount]ButtonState
	on := ButtonState{Visible: true, Enabled: true}
	switch mode {
	case ModeEdit:
		b[ButtonDone] = on
		b[ButtonClear] = on
	case ModeIdle:
		for _, id := range []Button{ButtonStart, ButtonStep, ButtonEditor, ButtonSpeed, ButtonReset} {
			b[id] = on
		}
	case ModeRunning:
		b[ButtonStart] = on
		b[ButtonSpeed] = on
		for _, id := range []Button{ButtonStep, ButtonEditor, ButtonReset} {
			b[id] = ButtonState{Visible: true}
		}
	}
	return b
}
