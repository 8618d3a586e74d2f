//go:build ebiten

package app

import (
	"image"
	"image/color"
	"log"

	"lifeviewer/internal/control"
	"lifeviewer/internal/input"
	"lifeviewer/internal/render"
	"lifeviewer/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var background = color.RGBA{R: 214, G: 217, B: 223, A: 255}

// Game adapts the controller to the ebiten.Game interface. Update and Draw
// both run on ebiten's main loop, so every command, tick and frame read is
// serialized.
type Game struct {
	ctrl    *control.Controller
	adapter *input.Adapter
	painter *render.GridPainter
	bar     *ui.Bar
	hud     *ui.HUD

	canvas  image.Point
	verbose bool

	sliding  bool
	cursor   image.Point
	hasMoved bool
}

// New constructs a Game for the provided controller.
func New(ctrl *control.Controller, cfg *Config) *Game {
	geom := input.DefaultGeometry(ctrl.View().Size)
	top, canvas := ui.CanvasSize(geom.Bounds().Max)
	bar := ui.NewBar(top)
	return &Game{
		ctrl:    ctrl,
		adapter: input.NewAdapter(geom),
		painter: render.NewGridPainter(geom, render.DefaultPalette()),
		bar:     bar,
		hud:     ui.NewHUD(bar),
		canvas:  canvas,
		verbose: cfg.Verbose,
	}
}

// CanvasSize returns the logical window size.
func (g *Game) CanvasSize() image.Point { return g.canvas }

// Update handles per-frame input and advances the simulation when due.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	for _, ev := range g.pollPointer() {
		g.dispatch(g.adapter.Translate(ev, g.ctrl.Mode()))
	}
	for _, ev := range g.pollKeys() {
		g.dispatch(g.adapter.Translate(ev, g.ctrl.Mode()))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyX) {
		g.apply(control.Command{Kind: control.CmdRandomize})
	}

	g.ctrl.Update()
	return nil
}

func (g *Game) dispatch(cmds []control.Command) {
	for _, cmd := range cmds {
		g.apply(cmd)
	}
}

func (g *Game) apply(cmd control.Command) {
	before := g.ctrl.Mode()
	err := g.ctrl.Handle(cmd)
	if !g.verbose {
		return
	}
	if err != nil {
		log.Printf("ignored %s: %v", cmd, err)
		return
	}
	if after := g.ctrl.Mode(); after != before {
		log.Printf("mode %s -> %s (generation %d)", before, after, g.ctrl.Generation())
	}
}

// Draw renders the board and the controls.
func (g *Game) Draw(screen *ebiten.Image) {
	v := g.ctrl.View()
	screen.Fill(background)
	g.painter.Blit(screen, v.Cells)
	g.hud.Draw(screen, v)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.canvas.X, g.canvas.Y
}
