package game

import (
	"image"

	"github.com/Garsondee/tilescape/internal/tilemap"
)

// Surface is a raster target that can be cleared and can copy a sheet region.
type Surface interface {
	Clear()
	DrawSprite(src, dst image.Rectangle)
}

// Render clears dst and draws every cell of grid in row-major order, offset by cam.
func Render(dst Surface, grid *tilemap.Grid, cam Camera, tileSize int) {
	dst.Clear()
	grid.Each(func(col, row int, s tilemap.Symbol) {
		x := cam.X + col*tileSize
		y := cam.Y + row*tileSize
		dst.DrawSprite(s.SourceRect(), image.Rect(x, y, x+tileSize, y+tileSize))
	})
}
