package game

import "github.com/hajimehoshi/ebiten/v2"

// Direction is a held scroll key.
type Direction uint8

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// Input tracks the one direction key currently held. A new key-down replaces it and any
// directional key-up clears it, even if another arrow is still physically down.
type Input struct {
	held Direction
}

// KeyDown records d as the held direction.
func (in *Input) KeyDown(d Direction) {
	if d != DirNone {
		in.held = d
	}
}

// KeyUp clears the held direction.
func (in *Input) KeyUp(d Direction) {
	if d != DirNone {
		in.held = DirNone
	}
}

// Held returns the current direction, or DirNone.
func (in Input) Held() Direction { return in.held }

var arrowKeys = [...]struct {
	key ebiten.Key
	dir Direction
}{
	{ebiten.KeyArrowUp, DirUp},
	{ebiten.KeyArrowDown, DirDown},
	{ebiten.KeyArrowLeft, DirLeft},
	{ebiten.KeyArrowRight, DirRight},
}

// applyArrowEdges turns the difference between two key snapshots into key-up and
// key-down events. Releases go first so a key pressed in the same frame wins.
func applyArrowEdges(in *Input, prev, cur map[ebiten.Key]bool) {
	for _, a := range arrowKeys {
		if prev[a.key] && !cur[a.key] {
			in.KeyUp(a.dir)
		}
	}
	for _, a := range arrowKeys {
		if cur[a.key] && !prev[a.key] {
			in.KeyDown(a.dir)
		}
	}
}
