package game

import (
	"strings"
	"testing"
)

func TestHUDLines(t *testing.T) {
	cfg := DefaultConfig()
	s := State{Camera: Camera{X: -120, Y: -30}, Held: DirLeft, Frames: 9, Dropped: 2}
	lines := hudLines(s, cfg, atlasReady)
	joined := strings.Join(lines, "\n")
	for _, want := range []string{"camera -120,-30", "held left", "frames 9", "dropped 2", "gate fixed", "sheet ready"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("hud missing %q:\n%s", want, joined)
		}
	}

	cfg.LiteralFrameGate = true
	if !strings.Contains(strings.Join(hudLines(s, cfg, atlasMissing), "\n"), "gate literal") {
		t.Fatal("hud should show the literal gate")
	}
}
