// Package game runs the scrolling tile viewer on ebiten.
package game

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/Garsondee/tilescape/internal/tilemap"
)

type Game struct {
	cfg    Config
	grid   *tilemap.Grid
	params Params

	state State
	input Input

	// Loop clock. now is swapped in tests.
	start time.Time
	now   func() time.Time

	prevKeys map[ebiten.Key]bool
	showHUD  bool

	atlas   *atlasLoader
	surface spriteSurface
	hudFace *text.GoTextFace

	// Set by Update when the frame gate lets a frame through; cleared by Draw.
	redraw bool
}

// New creates a viewer over grid and starts loading the sprite sheet.
func New(cfg Config, grid *tilemap.Grid) *Game {
	g := &Game{
		cfg:      cfg,
		grid:     grid,
		params:   cfg.Params(),
		now:      time.Now,
		prevKeys: make(map[ebiten.Key]bool),
		showHUD:  cfg.ShowHUD,
		atlas:    loadAtlas(cfg.AtlasPath),
	}
	g.start = g.now()
	face, err := newHUDFace()
	if err != nil {
		log.Warn("hud disabled", "err", err)
	}
	g.hudFace = face
	return g
}

func (g *Game) Update() error {
	g.handleInput()
	g.surface.sheet = g.atlas.poll()

	g.state.Held = g.input.Held()
	var draw bool
	g.state, draw = Advance(g.state, g.now().Sub(g.start), g.params)
	if draw {
		g.redraw = true
	}
	return nil
}

// handleInput converts arrow key state into key-down/key-up events and handles the
// edge-triggered toggles.
func (g *Game) handleInput() {
	currentKeys := map[ebiten.Key]bool{}
	for _, a := range arrowKeys {
		currentKeys[a.key] = ebiten.IsKeyPressed(a.key)
	}
	applyArrowEdges(&g.input, g.prevKeys, currentKeys)

	// H: toggle HUD.
	currentKeys[ebiten.KeyH] = ebiten.IsKeyPressed(ebiten.KeyH)
	if currentKeys[ebiten.KeyH] && !g.prevKeys[ebiten.KeyH] {
		g.showHUD = !g.showHUD
	}

	// C: copy the map as glyph rows.
	currentKeys[ebiten.KeyC] = ebiten.IsKeyPressed(ebiten.KeyC)
	if currentKeys[ebiten.KeyC] && !g.prevKeys[ebiten.KeyC] {
		if err := setClipboardText(g.grid.String()); err != nil {
			log.Warn("copy map to clipboard failed", "err", err)
		} else {
			log.Info("map copied to clipboard", "cols", g.grid.Cols, "rows", g.grid.Rows)
		}
	}

	g.prevKeys = currentKeys
}

// Draw only repaints on frames the gate let through. The screen is not cleared between
// frames, so a dropped frame shows the previous picture.
func (g *Game) Draw(screen *ebiten.Image) {
	if !g.redraw {
		return
	}
	g.redraw = false

	g.surface.dst = screen
	Render(&g.surface, g.grid, g.state.Camera, g.cfg.TileSize)
	if g.showHUD {
		g.drawHUD(screen)
	}
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.cfg.ViewWidth, g.cfg.ViewHeight
}
