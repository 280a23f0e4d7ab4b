// Package termview shows the tile map in a terminal, one cell per tile.
package termview

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/Garsondee/tilescape/internal/game"
	"github.com/Garsondee/tilescape/internal/tilemap"
)

// palette gives each symbol a foreground and background colour.
var palette = map[tilemap.Symbol][2]string{
	tilemap.Rock:         {"#c9c3b8", "#6b665e"},
	tilemap.CrackedRock:  {"#2b2824", "#6b665e"},
	tilemap.Grass:        {"#8fd16a", "#3f7a2c"},
	tilemap.FlowerWhite1: {"#ffffff", "#3f7a2c"},
	tilemap.FlowerWhite2: {"#f4f1e6", "#3f7a2c"},
}

func tcellColor(hex string) (tcell.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("palette colour %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b)), nil
}

func buildStyles() (map[tilemap.Symbol]tcell.Style, error) {
	styles := make(map[tilemap.Symbol]tcell.Style, len(palette))
	for _, s := range tilemap.Symbols() {
		pair, ok := palette[s]
		if !ok {
			return nil, fmt.Errorf("no palette entry for %s", s)
		}
		fg, err := tcellColor(pair[0])
		if err != nil {
			return nil, err
		}
		bg, err := tcellColor(pair[1])
		if err != nil {
			return nil, err
		}
		styles[s] = tcell.StyleDefault.Foreground(fg).Background(bg)
	}
	return styles, nil
}

// View drives the camera loop against a tcell screen. Terminals report key presses but
// not releases, so a press holds its direction for the next drawn tick only.
type View struct {
	screen tcell.Screen
	grid   *tilemap.Grid
	fps    int
	styles map[tilemap.Symbol]tcell.Style

	state game.State
	input game.Input
}

// New wraps an initialised screen.
func New(screen tcell.Screen, grid *tilemap.Grid, fps int) (*View, error) {
	styles, err := buildStyles()
	if err != nil {
		return nil, err
	}
	if fps <= 0 {
		fps = 60
	}
	return &View{screen: screen, grid: grid, fps: fps, styles: styles}, nil
}

// params derives the camera limits from the current terminal size. The map size used
// for clamping is the configured one, one less than the grid on each axis.
func (v *View) params() game.Params {
	w, h := v.screen.Size()
	return game.Params{
		Interval: time.Second / time.Duration(v.fps),
		Bounds: game.Bounds{
			MapWidth:   v.grid.Cols - 1,
			MapHeight:  v.grid.Rows - 1,
			TileSize:   1,
			ViewWidth:  w,
			ViewHeight: h,
			Step:       1,
		},
		KeepLastDraw: true,
	}
}

// Run draws until ctx is cancelled or the user quits with q, Esc or Ctrl-C.
func (v *View) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	interval := time.Second / time.Duration(v.fps)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	start := time.Now()

	v.draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if v.handleEvent(ev) {
				return nil
			}
		case t := <-ticker.C:
			v.Tick(t.Sub(start))
		}
	}
}

// Tick advances the loop; it redraws when the frame gate allows.
func (v *View) Tick(now time.Duration) bool {
	v.state.Held = v.input.Held()
	var drawn bool
	v.state, drawn = game.Advance(v.state, now, v.params())
	if !drawn {
		return false
	}
	// No key-up events arrive from a terminal.
	v.input.KeyUp(v.state.Held)
	v.draw()
	return true
}

// handleEvent applies one terminal event and reports whether the viewer should exit.
func (v *View) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyUp:
			v.input.KeyDown(game.DirUp)
		case tcell.KeyDown:
			v.input.KeyDown(game.DirDown)
		case tcell.KeyLeft:
			v.input.KeyDown(game.DirLeft)
		case tcell.KeyRight:
			v.input.KeyDown(game.DirRight)
		case tcell.KeyRune:
			if ev.Rune() == 'q' {
				return true
			}
		}
	case *tcell.EventResize:
		v.screen.Sync()
		v.draw()
	}
	return false
}

func (v *View) draw() {
	v.screen.Clear()
	w, h := v.screen.Size()
	cam := v.state.Camera
	v.grid.Each(func(col, row int, s tilemap.Symbol) {
		x, y := cam.X+col, cam.Y+row
		if x < 0 || y < 0 || x >= w || y >= h {
			return
		}
		v.screen.SetContent(x, y, s.Glyph(), nil, v.styles[s])
	})
	v.screen.Show()
}

// State returns a copy of the loop state.
func (v *View) State() game.State {
	return v.state
}
