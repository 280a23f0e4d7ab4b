package game

import (
	"image"
	"math/rand"
	"testing"

	"github.com/Garsondee/tilescape/internal/tilemap"
)

type drawCall struct {
	src, dst image.Rectangle
}

type recordingSurface struct {
	clears int
	draws  []drawCall
}

func (r *recordingSurface) Clear() { r.clears++ }

func (r *recordingSurface) DrawSprite(src, dst image.Rectangle) {
	r.draws = append(r.draws, drawCall{src: src, dst: dst})
}

func TestRender_DrawsEveryCellRowMajor(t *testing.T) {
	grid := tilemap.Generate(rand.New(rand.NewSource(1)), tilemap.DefaultConfig())
	surf := &recordingSurface{}
	cam := Camera{X: -50, Y: -20}
	Render(surf, grid, cam, 32)

	if surf.clears != 1 {
		t.Fatalf("expected 1 clear, got %d", surf.clears)
	}
	if len(surf.draws) != grid.Cols*grid.Rows {
		t.Fatalf("expected %d draws, got %d", grid.Cols*grid.Rows, len(surf.draws))
	}
	first := surf.draws[0]
	if first.dst != image.Rect(-50, -20, -18, 12) {
		t.Fatalf("first dst = %v", first.dst)
	}
	// Cell (3, 2).
	i := 2*grid.Cols + 3
	got := surf.draws[i]
	if got.dst != image.Rect(-50+96, -20+64, -50+128, -20+96) {
		t.Fatalf("cell (3,2) dst = %v", got.dst)
	}
	if got.src != grid.At(3, 2).SourceRect() {
		t.Fatalf("cell (3,2) src = %v, want %v", got.src, grid.At(3, 2).SourceRect())
	}
	if got.src.Dx() != 16 || got.dst.Dx() != 32 {
		t.Fatalf("expected 16px source scaled to 32px, got %d -> %d", got.src.Dx(), got.dst.Dx())
	}
}

func TestRender_SkippedOnDroppedFrame(t *testing.T) {
	// Mirrors the loop: Render only runs when Advance reports a draw.
	grid := tilemap.Generate(rand.New(rand.NewSource(2)), tilemap.Config{Width: 2, Height: 2})
	p := testParams()
	surf := &recordingSurface{}
	s, drawn := Advance(State{}, p.Interval/3, p)
	if drawn {
		Render(surf, grid, s.Camera, 32)
	}
	if surf.clears != 0 || len(surf.draws) != 0 {
		t.Fatalf("dropped frame touched the surface: clears=%d draws=%d", surf.clears, len(surf.draws))
	}
}

func TestSpriteSurface_NoSheetIsNoop(t *testing.T) {
	var s spriteSurface
	grid := tilemap.Generate(rand.New(rand.NewSource(3)), tilemap.Config{Width: 4, Height: 4})
	// Must not panic without a target or a sheet.
	Render(&s, grid, Camera{}, 32)
}
