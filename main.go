package main

import (
	"flag"
	"log"

	"SketchPad/internal/config"
	"SketchPad/internal/ui"
)

func main() {
	cfgPath := flag.String("config", "sketchpad.toml", "path to the config file")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("Failed to load config %s: %v", *cfgPath, err)
	}

	ui.RunApp(cfg)
}
