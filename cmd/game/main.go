package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/Ray-Sense/internal/config"
	"github.com/Garsondee/Ray-Sense/internal/logging"
	"github.com/Garsondee/Ray-Sense/internal/view"
)

func main() {
	cfgPath := flag.String("config", "ray-sense.toml", "path to the TOML config (optional)")
	seed := flag.Int64("seed", 0, "spawn seed (0 keeps the config value; config 0 is time-based)")
	logLevel := flag.String("log-level", "", "override the configured log level")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatal(err)
	}
	if *seed != 0 {
		cfg.Sim.Seed = *seed
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	logger.WithField("config", *cfgPath).Info("starting client")

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetTPS(cfg.Sim.TPS)
	if err := ebiten.RunGame(view.New(cfg, logger)); err != nil {
		log.Fatal(err)
	}
}
