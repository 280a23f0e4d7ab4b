package game

import "time"

// State is everything the frame loop mutates.
type State struct {
	Camera   Camera
	Held     Direction
	LastDraw time.Duration // loop clock reading of the last drawn frame
	Frames   int           // frames drawn
	Dropped  int           // ticks skipped by the frame gate
}

// Params are the fixed inputs to Advance.
type Params struct {
	Interval     time.Duration
	Bounds       Bounds
	KeepLastDraw bool
}

// Advance runs one loop tick at clock reading now. It reports whether the frame should
// be drawn. A tick arriving less than Interval after the last draw is dropped and leaves
// the camera untouched.
//
// With KeepLastDraw false the draw time is never stored, so LastDraw stays at its
// initial value and every tick after the first Interval draws.
func Advance(s State, now time.Duration, p Params) (State, bool) {
	if now-s.LastDraw < p.Interval {
		s.Dropped++
		return s, false
	}
	s.Camera = s.Camera.Scroll(s.Held, p.Bounds)
	if p.KeepLastDraw {
		s.LastDraw = now
	}
	s.Frames++
	return s, true
}
