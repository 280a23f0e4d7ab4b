package game

// Camera is the pixel translation applied to every tile. Both axes are <= 0 while the
// map is larger than the viewport.
type Camera struct {
	X, Y int
}

// Bounds describes the map and viewport the camera is clamped against.
type Bounds struct {
	MapWidth   int // configured width in tiles
	MapHeight  int // configured height in tiles
	TileSize   int
	ViewWidth  int
	ViewHeight int
	Step       int
}

// MinX is the lowest X the camera may reach. It is positive when the viewport is wider
// than the map.
func (b Bounds) MinX() int { return -(b.MapWidth * b.TileSize) + b.ViewWidth }

// MinY is the lowest Y the camera may reach.
func (b Bounds) MinY() int { return -(b.MapHeight * b.TileSize) + b.ViewHeight }

// Scroll moves one axis by b.Step toward d. Moving toward the origin clamps at 0;
// moving away clamps at MinX/MinY.
func (c Camera) Scroll(d Direction, b Bounds) Camera {
	switch d {
	case DirUp:
		c.Y = min(c.Y+b.Step, 0)
	case DirDown:
		c.Y = max(c.Y-b.Step, b.MinY())
	case DirLeft:
		c.X = min(c.X+b.Step, 0)
	case DirRight:
		c.X = max(c.X-b.Step, b.MinX())
	}
	return c
}
