package termview

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/tilescape/internal/tilemap"
)

const testFPS = 60

func newTestView(t *testing.T, w, h int) (*View, tcell.SimulationScreen) {
	t.Helper()
	s := tcell.NewSimulationScreen("")
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(s.Fini)
	s.SetSize(w, h)
	grid := tilemap.Generate(rand.New(rand.NewSource(4)), tilemap.Config{Width: 30, Height: 20})
	v, err := New(s, grid, testFPS)
	if err != nil {
		t.Fatal(err)
	}
	return v, s
}

func tickAt(n int) time.Duration {
	return time.Duration(n) * (time.Second / testFPS)
}

func TestBuildStyles_CoversEverySymbol(t *testing.T) {
	styles, err := buildStyles()
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range tilemap.Symbols() {
		if _, ok := styles[s]; !ok {
			t.Fatalf("no style for %s", s)
		}
	}
}

func TestView_DrawsGlyphs(t *testing.T) {
	v, s := newTestView(t, 20, 10)
	if !v.Tick(tickAt(1)) {
		t.Fatal("first tick should draw")
	}
	for _, pt := range [][2]int{{0, 0}, {5, 3}, {19, 9}} {
		r, _, _, _ := s.GetContent(pt[0], pt[1])
		if want := v.grid.At(pt[0], pt[1]).Glyph(); r != want {
			t.Fatalf("cell (%d,%d) = %q, want %q", pt[0], pt[1], r, want)
		}
	}
}

func TestView_KeyPressScrollsOneTick(t *testing.T) {
	v, s := newTestView(t, 20, 10)
	v.Tick(tickAt(1))

	if v.handleEvent(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone)) {
		t.Fatal("arrow key should not quit")
	}
	v.Tick(tickAt(2))
	if v.State().Camera.X != -1 {
		t.Fatalf("camera X = %d, want -1", v.State().Camera.X)
	}
	r, _, _, _ := s.GetContent(0, 0)
	if want := v.grid.At(1, 0).Glyph(); r != want {
		t.Fatalf("cell (0,0) = %q after scroll, want %q", r, want)
	}

	// No key-up arrives; the press is released after one drawn tick.
	v.Tick(tickAt(3))
	if v.State().Camera.X != -1 {
		t.Fatalf("camera kept moving without a key press: X = %d", v.State().Camera.X)
	}
}

func TestView_ClampsToTerminalSize(t *testing.T) {
	v, _ := newTestView(t, 20, 10)
	for i := 1; i <= 50; i++ {
		v.handleEvent(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
		v.Tick(tickAt(i))
	}
	// 30 configured tiles against a 20-cell terminal.
	if v.State().Camera.X != -10 {
		t.Fatalf("camera X = %d, want -10", v.State().Camera.X)
	}
}

func TestView_EarlyTickDropped(t *testing.T) {
	v, _ := newTestView(t, 20, 10)
	v.handleEvent(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone))
	if v.Tick(time.Millisecond) {
		t.Fatal("tick before the interval should be dropped")
	}
	if v.State().Camera.Y != 0 {
		t.Fatal("dropped tick moved the camera")
	}
}

func TestView_QuitKeys(t *testing.T) {
	v, _ := newTestView(t, 20, 10)
	if !v.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Fatal("q should quit")
	}
	if !v.handleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Fatal("Esc should quit")
	}
}

func TestView_RunStopsOnCancel(t *testing.T) {
	v, _ := newTestView(t, 20, 10)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- v.Run(ctx) }()
	select {
	case err := <-done:
		if err != nil {
			t.Fatal(err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
