package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/shiny-button/internal/config"
	"github.com/iburimskiy/shiny-button/internal/game"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	label := flag.String("label", "", "button label (overrides config)")
	flag.Parse()

	if err := run(*configPath, *label); err != nil {
		log.Fatal(err)
	}
}

// run owns the game's lifetime so Close happens before any exit.
func run(configPath, label string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if label != "" {
		cfg.Button.Label = label
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)

	g, err := game.NewGame(cfg)
	if err != nil {
		return err
	}
	defer g.Close()

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
