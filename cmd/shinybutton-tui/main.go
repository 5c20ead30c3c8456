package main

import (
	"flag"
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/shiny-button/internal/config"
	"github.com/iburimskiy/shiny-button/internal/tui"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	label := flag.String("label", "", "button label (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *label != "" {
		cfg.Button.Label = *label
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}

	app, err := tui.New(screen, cfg)
	if err != nil {
		screen.Fini()
		log.Fatal(err)
	}

	app.Run()
	app.Close()
	screen.Fini()
}
