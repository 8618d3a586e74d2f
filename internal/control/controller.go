package control

import (
	"errors"
	"fmt"
	"time"

	"lifeviewer/internal/core"
)

// ErrRefused is returned for commands that are not legal in the current mode.
// A refused command leaves the board, mode and speed unchanged.
var ErrRefused = errors.New("command refused")

// Mode is the controller's top-level state.
type Mode uint8

const (
	// ModeIdle holds a seed with the simulation paused.
	ModeIdle Mode = iota
	// ModeEdit has the population editor open.
	ModeEdit
	// ModeRunning advances a generation on every tick.
	ModeRunning
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "Idle"
	case ModeEdit:
		return "Edit"
	case ModeRunning:
		return "Running"
	default:
		return fmt.Sprintf("Mode(%d)", m)
	}
}

const (
	// MaxSpeedMs is the slowest pace, and the pace the controller starts at.
	MaxSpeedMs = 100
	// SliderMax is the top of the raw speed slider range.
	SliderMax = 100
)

// Config controls the board dimensions and the initial pacing.
type Config struct {
	Rows int
	Cols int

	// Speed is the initial raw slider value in [0, 100].
	Speed int

	// Seed and Density drive the editor's Randomize command.
	Seed    int64
	Density float64

	// Now is the clock used by the ticker. Defaults to time.Now.
	Now func() time.Time
}

// DefaultConfig returns the reference configuration: an 80x100 board at the
// slowest speed.
func DefaultConfig() Config {
	return Config{
		Rows:    80,
		Cols:    100,
		Speed:   0,
		Seed:    42,
		Density: 0.25,
		Now:     time.Now,
	}
}

// Controller owns the board and the committed seed and is the only place
// they are mutated. It is not safe for concurrent use: every command, tick
// and view read must come from the same goroutine.
type Controller struct {
	grid   *core.Grid
	store  core.Store
	ticker core.Ticker
	rng    *core.RNG

	density float64
	now     func() time.Time

	mode    Mode
	speedMs int
	drag    map[core.Cell]struct{}

	refused     int
	lastRefused Command
}

// New constructs a Controller in Idle mode with an empty board and no seed.
func New(cfg Config) (*Controller, error) {
	grid, err := core.NewGrid(cfg.Rows, cfg.Cols)
	if err != nil {
		return nil, err
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	c := &Controller{
		grid:    grid,
		rng:     core.NewRNG(cfg.Seed),
		density: cfg.Density,
		now:     now,
		mode:    ModeIdle,
	}
	c.setSpeed(cfg.Speed)
	return c, nil
}

// Mode returns the current mode.
func (c *Controller) Mode() Mode { return c.mode }

// SpeedMs returns the pause between generations in milliseconds.
func (c *Controller) SpeedMs() int { return c.speedMs }

// Generation returns the board's generation counter.
func (c *Controller) Generation() int { return c.grid.Generation() }

// Dragging reports whether a pointer drag is in progress.
func (c *Controller) Dragging() bool { return c.drag != nil }

// Refused returns how many commands have been refused so far.
func (c *Controller) Refused() int { return c.refused }

// Alive reports whether the cell at (row, col) is live.
func (c *Controller) Alive(row, col int) (bool, error) { return c.grid.Alive(row, col) }

// Live lists the live cells in row-major order.
func (c *Controller) Live() []core.Cell { return c.grid.Snapshot().Live() }

func (c *Controller) legal(cmd Command) bool {
	switch cmd.Kind {
	case CmdEnterEditor, CmdStep, CmdReset:
		return c.mode == ModeIdle
	case CmdExitEditor, CmdClear, CmdRandomize, CmdPointerDown, CmdPointerUp:
		return c.mode == ModeEdit
	case CmdPointerMove:
		return c.mode == ModeEdit && c.drag != nil
	case CmdToggleRun:
		return c.mode == ModeIdle || c.mode == ModeRunning
	case CmdTick:
		return c.mode == ModeRunning
	case CmdSetSpeed:
		return true
	default:
		return false
	}
}

// Handle applies a single command. Illegal commands are counted, recorded
// for the view and reported as ErrRefused. Pointer commands outside the board
// return an error wrapping core.ErrOutOfBounds and change nothing.
func (c *Controller) Handle(cmd Command) error {
	if !c.legal(cmd) {
		c.refused++
		c.lastRefused = cmd
		return fmt.Errorf("%s in %s mode: %w", cmd, c.mode, ErrRefused)
	}

	switch cmd.Kind {
	case CmdEnterEditor:
		c.mode = ModeEdit
	case CmdExitEditor:
		snap := c.grid.Snapshot()
		c.store.Commit(snap)
		c.drag = nil
		c.mode = ModeIdle
		return c.grid.LoadFrom(snap)
	case CmdToggleRun:
		if c.mode == ModeRunning {
			c.ticker.Stop()
			c.mode = ModeIdle
			return nil
		}
		c.ticker.Start(c.now())
		c.mode = ModeRunning
	case CmdStep, CmdTick:
		c.grid.Step()
	case CmdClear:
		c.grid.Clear()
	case CmdReset:
		snap, ok := c.store.Load()
		if !ok {
			c.grid.Clear()
			return nil
		}
		return c.grid.LoadFrom(snap)
	case CmdRandomize:
		c.grid.Randomize(c.rng, c.density)
	case CmdSetSpeed:
		c.setSpeed(cmd.Value)
	case CmdPointerDown:
		if err := c.grid.Toggle(cmd.Row, cmd.Col); err != nil {
			return err
		}
		c.drag = map[core.Cell]struct{}{{Row: cmd.Row, Col: cmd.Col}: {}}
	case CmdPointerMove:
		cell := core.Cell{Row: cmd.Row, Col: cmd.Col}
		if _, seen := c.drag[cell]; seen {
			return nil
		}
		if err := c.grid.Toggle(cmd.Row, cmd.Col); err != nil {
			return err
		}
		c.drag[cell] = struct{}{}
	case CmdPointerUp:
		c.drag = nil
	}
	return nil
}

func (c *Controller) setSpeed(v int) {
	c.speedMs = min(MaxSpeedMs, max(0, SliderMax-v))
}

// Update polls the ticker and delivers a Tick when one is due. It reports
// whether a generation was computed.
func (c *Controller) Update() bool {
	if !c.ticker.Due(c.now(), time.Duration(c.speedMs)*time.Millisecond) {
		return false
	}
	return c.Handle(Command{Kind: CmdTick}) == nil
}
