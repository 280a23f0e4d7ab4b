package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"

	"github.com/Garsondee/tilescape/internal/game"
	"github.com/Garsondee/tilescape/internal/telemetry"
	"github.com/Garsondee/tilescape/internal/termview"
	"github.com/Garsondee/tilescape/internal/tilemap"
)

func main() {
	cfg := game.DefaultConfig()
	var uniform bool
	flag.IntVar(&cfg.FPS, "fps", cfg.FPS, "target frame rate")
	flag.BoolVar(&uniform, "uniform", false, "pick tiles uniformly instead of the biased rule")
	flag.Parse()
	if uniform {
		cfg.Map.Pick = tilemap.UniformPick
	}

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn(".env not loaded", "err", err)
	}

	if err := run(cfg); err != nil {
		log.Error("terminal viewer", "err", err)
		os.Exit(1)
	}
}

func run(cfg game.Config) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	stop, err := telemetry.StartFromEnv(ctx)
	if err != nil {
		log.Warn("telemetry setup failed, continuing without it", "err", err)
	}
	defer stop(context.Background()) //nolint:errcheck

	grid := game.GenerateMap(ctx, game.NewRand(0), cfg.Map)

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))

	v, err := termview.New(screen, grid, cfg.FPS)
	if err != nil {
		return err
	}
	return v.Run(ctx)
}
