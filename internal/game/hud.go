package game

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gomono"
)

const (
	hudFontSize   = 13
	hudLineHeight = 16
	hudPad        = 8
)

func newHUDFace() (*text.GoTextFace, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return nil, fmt.Errorf("load hud font: %w", err)
	}
	return &text.GoTextFace{Source: src, Size: hudFontSize}, nil
}

// hudLines is the text shown in the top-left corner.
func hudLines(s State, cfg Config, atlas atlasState) []string {
	gate := "fixed"
	if cfg.LiteralFrameGate {
		gate = "literal"
	}
	b := cfg.Bounds()
	return []string{
		fmt.Sprintf("camera %d,%d  (min %d,%d)", s.Camera.X, s.Camera.Y, b.MinX(), b.MinY()),
		fmt.Sprintf("held %-5s  frames %d  dropped %d", s.Held, s.Frames, s.Dropped),
		fmt.Sprintf("gate %s @ %d fps  sheet %s", gate, cfg.FPS, atlas),
		"[arrows] scroll  [C] copy map  [H] hide",
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	if g.hudFace == nil {
		return
	}
	lines := hudLines(g.state, g.cfg, g.atlas.state)
	w := float32(0)
	for _, l := range lines {
		adv, _ := text.Measure(l, g.hudFace, hudLineHeight)
		w = max(w, float32(adv))
	}
	h := float32(len(lines)*hudLineHeight + hudPad)
	vector.FillRect(screen, 0, 0, w+2*hudPad, h, color.RGBA{R: 12, G: 14, B: 12, A: 190}, false)

	for i, l := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(hudPad, float64(hudPad/2+i*hudLineHeight))
		op.ColorScale.ScaleWithColor(color.RGBA{R: 220, G: 230, B: 220, A: 255})
		text.Draw(screen, l, g.hudFace, op)
	}
}
