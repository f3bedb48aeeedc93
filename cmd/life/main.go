//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"lifegrid/internal/app"
	"lifegrid/internal/session"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	log.SetPrefix("life: ")
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	if err := cfg.Load(flag.CommandLine, os.Args[1:]); err != nil {
		log.Fatal(err)
	}

	s, err := session.New(cfg.SessionConfig())
	if err != nil {
		log.Fatalf("%+v", err)
	}

	game := app.New(s, cfg)

	ebiten.SetWindowTitle("lifegrid — " + s.Pattern())
	ebiten.SetWindowSize(game.WindowSize())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
