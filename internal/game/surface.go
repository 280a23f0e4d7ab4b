package game

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// spriteSurface draws sheet regions onto an ebiten image. While the sheet is not loaded
// every DrawSprite is a no-op.
type spriteSurface struct {
	dst   *ebiten.Image
	sheet *ebiten.Image
	op    ebiten.DrawImageOptions
}

func (s *spriteSurface) Clear() {
	if s.dst == nil {
		return
	}
	s.dst.Clear()
}

func (s *spriteSurface) DrawSprite(src, dst image.Rectangle) {
	if s.dst == nil || s.sheet == nil || src.Empty() {
		return
	}
	sub, ok := s.sheet.SubImage(src).(*ebiten.Image)
	if !ok {
		return
	}
	s.op.GeoM.Reset()
	s.op.GeoM.Scale(float64(dst.Dx())/float64(src.Dx()), float64(dst.Dy())/float64(src.Dy()))
	s.op.GeoM.Translate(float64(dst.Min.X), float64(dst.Min.Y))
	s.dst.DrawImage(sub, &s.op)
}
