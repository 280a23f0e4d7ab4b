// Package tilemap generates the terrain grid shown by the viewers.
package tilemap

import "image"

// SourceSize is the edge length in pixels of one tile cell in the sprite sheet.
const SourceSize = 16

// Symbol identifies the terrain drawn in one grid cell.
type Symbol uint8

const (
	Rock         Symbol = iota // Bare stone
	CrackedRock                // Stone with a fissure
	Grass                      // Open ground
	FlowerWhite1               // Grass with small white flowers
	FlowerWhite2               // Grass with a larger white flower
	symbolCount                // sentinel
)

// AtlasCoord is the top-left pixel of a symbol's cell in the sprite sheet.
type AtlasCoord struct {
	X, Y int
}

// atlas maps every symbol to its sheet cell. Indexed by Symbol so the lookup is total.
var atlas = [symbolCount]AtlasCoord{
	Rock:         {X: 0, Y: 128},
	CrackedRock:  {X: 0, Y: 240},
	Grass:        {X: 0, Y: 0},
	FlowerWhite1: {X: 128, Y: 48},
	FlowerWhite2: {X: 128, Y: 112},
}

var glyphs = [symbolCount]rune{
	Rock:         '*',
	CrackedRock:  '-',
	Grass:        '!',
	FlowerWhite1: '&',
	FlowerWhite2: '^',
}

var names = [symbolCount]string{
	Rock:         "rock",
	CrackedRock:  "cracked-rock",
	Grass:        "grass",
	FlowerWhite1: "flower-white-1",
	FlowerWhite2: "flower-white-2",
}

// Symbols returns every symbol in declaration order.
func Symbols() []Symbol {
	out := make([]Symbol, 0, symbolCount)
	for s := Symbol(0); s < symbolCount; s++ {
		out = append(out, s)
	}
	return out
}

// Valid reports whether s is one of the declared symbols.
func (s Symbol) Valid() bool { return s < symbolCount }

// Atlas returns the sheet cell for s.
func (s Symbol) Atlas() AtlasCoord { return atlas[s] }

// SourceRect returns the SourceSize×SourceSize sheet rectangle for s.
func (s Symbol) SourceRect() image.Rectangle {
	a := atlas[s]
	return image.Rect(a.X, a.Y, a.X+SourceSize, a.Y+SourceSize)
}

// Glyph is the single-character form used in text dumps.
func (s Symbol) Glyph() rune { return glyphs[s] }

func (s Symbol) String() string {
	if !s.Valid() {
		return "unknown"
	}
	return names[s]
}

// ParseSymbol returns the symbol whose glyph is r.
func ParseSymbol(r rune) (Symbol, bool) {
	for s, g := range glyphs {
		if g == r {
			return Symbol(s), true
		}
	}
	return 0, false
}
