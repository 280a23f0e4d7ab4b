package tilemap

import (
	"fmt"
	"strings"
)

// DefaultWidth and DefaultHeight are the configured map size in tiles. The generated
// grid is one larger on each axis because both bounds are inclusive.
const (
	DefaultWidth  = 100
	DefaultHeight = 100
)

// Config controls Generate.
type Config struct {
	Width  int    // configured width W; the grid has W+1 columns
	Height int    // configured height H; the grid has H+1 rows
	Pick   Picker // nil means BiasedPick
}

// DefaultConfig returns the 100×100 map with the biased picker.
func DefaultConfig() Config {
	return Config{Width: DefaultWidth, Height: DefaultHeight, Pick: BiasedPick}
}

// Grid is a row-major block of symbols. It is never modified after generation.
type Grid struct {
	Cols  int
	Rows  int
	cells []Symbol
}

// Generate fills a (Height+1)×(Width+1) grid. Each row is an independent walk: the first
// column is drawn from the full symbol set and every later column from the neighbors of
// the tile to its left. Rows do not constrain each other.
func Generate(rng Rand, cfg Config) *Grid {
	pick := cfg.Pick
	if pick == nil {
		pick = BiasedPick
	}
	g := &Grid{
		Cols: max(cfg.Width, 0) + 1,
		Rows: max(cfg.Height, 0) + 1,
	}
	g.cells = make([]Symbol, g.Cols*g.Rows)
	for row := 0; row < g.Rows; row++ {
		base := row * g.Cols
		g.cells[base] = seedSet[pick(rng, len(seedSet))]
		for col := 1; col < g.Cols; col++ {
			cands := neighbors[g.cells[base+col-1]]
			g.cells[base+col] = cands[pick(rng, len(cands))]
		}
	}
	return g
}

// At returns the symbol at (col, row). Out-of-range coordinates panic.
func (g *Grid) At(col, row int) Symbol {
	return g.cells[row*g.Cols+col]
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(col, row int, s Symbol)) {
	for i, s := range g.cells {
		fn(i%g.Cols, i/g.Cols, s)
	}
}

// Counts returns how many cells hold each symbol.
func (g *Grid) Counts() map[Symbol]int {
	out := make(map[Symbol]int, symbolCount)
	for _, s := range g.cells {
		out[s]++
	}
	return out
}

// Validate returns an error naming the first cell whose left neighbor does not permit it.
func (g *Grid) Validate() error {
	for row := 0; row < g.Rows; row++ {
		for col := 1; col < g.Cols; col++ {
			prev, cur := g.At(col-1, row), g.At(col, row)
			if !Permits(prev, cur) {
				return fmt.Errorf("cell (%d,%d): %s may not follow %s", col, row, cur, prev)
			}
		}
	}
	return nil
}

// String renders the grid as one line of glyphs per row.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.Cols + 1) * g.Rows)
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			b.WriteRune(g.At(col, row).Glyph())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// ParseGrid reads the String form back. All rows must have the same length.
func ParseGrid(text string) (*Grid, error) {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) == 0 || lines[0] == "" {
		return nil, fmt.Errorf("empty grid")
	}
	g := &Grid{Cols: len([]rune(lines[0])), Rows: len(lines)}
	g.cells = make([]Symbol, 0, g.Cols*g.Rows)
	for row, line := range lines {
		runes := []rune(line)
		if len(runes) != g.Cols {
			return nil, fmt.Errorf("row %d: width %d, want %d", row, len(runes), g.Cols)
		}
		for col, r := range runes {
			s, ok := ParseSymbol(r)
			if !ok {
				return nil, fmt.Errorf("cell (%d,%d): unknown glyph %q", col, row, r)
			}
			g.cells = append(g.cells, s)
		}
	}
	return g, nil
}
