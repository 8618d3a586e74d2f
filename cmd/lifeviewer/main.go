//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"lifeviewer/internal/app"
	"lifeviewer/internal/control"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	ctrl, err := control.New(cfg.Control())
	if err != nil {
		log.Fatalf("board: %v", err)
	}

	game := app.New(ctrl, cfg)
	canvas := game.CanvasSize()

	ebiten.SetWindowTitle("Game of Life")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(canvas.X, canvas.Y)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
