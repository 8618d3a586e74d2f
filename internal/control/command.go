package control

import "fmt"

// Kind enumerates the commands understood by the Controller.
type Kind uint8

const (
	CmdEnterEditor Kind = iota
	CmdExitEditor
	CmdToggleRun
	CmdStep
	CmdClear
	CmdReset
	CmdRandomize
	CmdSetSpeed
	CmdPointerDown
	CmdPointerMove
	CmdPointerUp
	CmdTick
)

var kindNames = [...]string{
	CmdEnterEditor: "EnterEditor",
	CmdExitEditor:  "ExitEditor",
	CmdToggleRun:   "ToggleRun",
	CmdStep:        "Step",
	CmdClear:       "Clear",
	CmdReset:       "Reset",
	CmdRandomize:   "Randomize",
	CmdSetSpeed:    "SetSpeed",
	CmdPointerDown: "PointerDown",
	CmdPointerMove: "PointerMove",
	CmdPointerUp:   "PointerUp",
	CmdTick:        "Tick",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Command is a single request to the Controller. Row and Col are used by the
// pointer commands, Value by SetSpeed.
type Command struct {
	Kind  Kind
	Row   int
	Col   int
	Value int
}

func (c Command) String() string {
	switch c.Kind {
	case CmdPointerDown, CmdPointerMove:
		return fmt.Sprintf("%s(%d,%d)", c.Kind, c.Row, c.Col)
	case CmdSetSpeed:
		return fmt.Sprintf("%s(%d)", c.Kind, c.Value)
	default:
		return c.Kind.String()
	}
}

// SetSpeed builds a speed change from a raw slider value in [0, 100].
func SetSpeed(v int) Command { return Command{Kind: CmdSetSpeed, Value: v} }

// PointerDown builds a press on the cell at (row, col).
func PointerDown(row, col int) Command { return Command{Kind: CmdPointerDown, Row: row, Col: col} }

// PointerMove builds a drag onto the cell at (row, col).
func PointerMove(row, col int) Command { return Command{Kind: CmdPointerMove, Row: row, Col: col} }
