package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestInput_LastKeyDownWins(t *testing.T) {
	var in Input
	in.KeyDown(DirLeft)
	in.KeyDown(DirUp)
	if in.Held() != DirUp {
		t.Fatalf("held = %s, want up", in.Held())
	}
	in.KeyDown(DirNone)
	if in.Held() != DirUp {
		t.Fatal("DirNone key-down should be ignored")
	}
}

func TestInput_AnyKeyUpClears(t *testing.T) {
	var in Input
	in.KeyDown(DirRight)
	in.KeyUp(DirLeft)
	if in.Held() != DirNone {
		t.Fatalf("held = %s after releasing another arrow, want none", in.Held())
	}
}

func TestApplyArrowEdges(t *testing.T) {
	var in Input
	prev := map[ebiten.Key]bool{}
	cur := map[ebiten.Key]bool{ebiten.KeyArrowRight: true}
	applyArrowEdges(&in, prev, cur)
	if in.Held() != DirRight {
		t.Fatalf("held = %s, want right", in.Held())
	}

	// Holding a key produces no new events.
	applyArrowEdges(&in, cur, cur)
	if in.Held() != DirRight {
		t.Fatalf("held = %s while still holding right", in.Held())
	}

	both := map[ebiten.Key]bool{ebiten.KeyArrowRight: true, ebiten.KeyArrowUp: true}
	applyArrowEdges(&in, cur, both)
	if in.Held() != DirUp {
		t.Fatalf("held = %s, want up", in.Held())
	}

	// Releasing up clears the held key even though right is still down.
	applyArrowEdges(&in, both, cur)
	if in.Held() != DirNone {
		t.Fatalf("held = %s, want none", in.Held())
	}

	// Release and press in the same frame: the press survives.
	left := map[ebiten.Key]bool{ebiten.KeyArrowLeft: true}
	applyArrowEdges(&in, cur, left)
	if in.Held() != DirLeft {
		t.Fatalf("held = %s, want left", in.Held())
	}
}
