package game

import (
	"time"

	"github.com/Garsondee/tilescape/internal/tilemap"
)

// Config holds the viewer settings. The map, tile and scroll values are fixed for a
// session; only frontend concerns are overridden from flags.
type Config struct {
	Map tilemap.Config

	ViewWidth  int // viewport width in pixels, fixed at startup
	ViewHeight int // viewport height in pixels, fixed at startup
	TileSize   int // destination edge length of one tile in pixels
	ScrollStep int // camera movement per drawn frame in pixels
	FPS        int // target draw rate

	// AtlasPath is the sprite sheet loaded in the background at startup.
	AtlasPath string

	// LiteralFrameGate never records the last draw time, so after the first frame every
	// refresh draws. The default records it and drops frames that arrive early.
	LiteralFrameGate bool

	ShowHUD bool
}

// DefaultConfig returns the stock 100×100 map viewed through a 1280×720 window.
func DefaultConfig() Config {
	return Config{
		Map:        tilemap.DefaultConfig(),
		ViewWidth:  1280,
		ViewHeight: 720,
		TileSize:   32,
		ScrollStep: 10,
		FPS:        60,
		AtlasPath:  "assets/map-tiles.png",
		ShowHUD:    true,
	}
}

// Interval is the minimum time between two drawn frames.
func (c Config) Interval() time.Duration {
	if c.FPS <= 0 {
		return 0
	}
	return time.Second / time.Duration(c.FPS)
}

// Bounds returns the camera limits for this configuration.
func (c Config) Bounds() Bounds {
	return Bounds{
		MapWidth:   c.Map.Width,
		MapHeight:  c.Map.Height,
		TileSize:   c.TileSize,
		ViewWidth:  c.ViewWidth,
		ViewHeight: c.ViewHeight,
		Step:       c.ScrollStep,
	}
}

// Params returns the per-tick parameters for Advance.
func (c Config) Params() Params {
	return Params{
		Interval:     c.Interval(),
		Bounds:       c.Bounds(),
		KeepLastDraw: !c.LiteralFrameGate,
	}
}
