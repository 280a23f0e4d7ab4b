package main

import (
	"context"
	"flag"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"

	"github.com/Garsondee/tilescape/internal/game"
	"github.com/Garsondee/tilescape/internal/telemetry"
	"github.com/Garsondee/tilescape/internal/tilemap"
)

func main() {
	cfg := game.DefaultConfig()
	var uniform bool
	flag.IntVar(&cfg.ViewWidth, "width", cfg.ViewWidth, "viewport width in pixels")
	flag.IntVar(&cfg.ViewHeight, "height", cfg.ViewHeight, "viewport height in pixels")
	flag.StringVar(&cfg.AtlasPath, "atlas", cfg.AtlasPath, "sprite sheet path")
	flag.BoolVar(&cfg.LiteralFrameGate, "literal-gate", false, "never store the last draw time")
	flag.BoolVar(&cfg.ShowHUD, "hud", cfg.ShowHUD, "show the HUD at startup")
	flag.BoolVar(&uniform, "uniform", false, "pick tiles uniformly instead of the biased rule")
	flag.Parse()
	if uniform {
		cfg.Map.Pick = tilemap.UniformPick
	}

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn(".env not loaded", "err", err)
	}

	ctx := context.Background()
	stop, err := telemetry.StartFromEnv(ctx)
	if err != nil {
		log.Warn("telemetry setup failed, continuing without it", "err", err)
	}
	defer func() {
		if err := stop(ctx); err != nil {
			log.Error("telemetry shutdown", "err", err)
		}
	}()

	grid := game.GenerateMap(ctx, game.NewRand(0), cfg.Map)
	log.Info("map generated", "cols", grid.Cols, "rows", grid.Rows)

	ebiten.SetWindowTitle("Tilescape")
	ebiten.SetWindowSize(cfg.ViewWidth, cfg.ViewHeight)
	ebiten.SetTPS(ebiten.SyncWithFPS)
	ebiten.SetScreenClearedEveryFrame(false)
	if err := ebiten.RunGame(game.New(cfg, grid)); err != nil {
		log.Error("game exited", "err", err)
		os.Exit(1)
	}
}
