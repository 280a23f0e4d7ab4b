package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/Garsondee/tilescape/internal/game"
	"github.com/Garsondee/tilescape/internal/tilemap"
)

type symbolStat struct {
	sym   tilemap.Symbol
	count int
	share float64
}

func main() {
	var width, height int
	var seed int64
	var uniform, stats, quiet bool

	flag.IntVar(&width, "width", tilemap.DefaultWidth, "configured map width (grid has width+1 columns)")
	flag.IntVar(&height, "height", tilemap.DefaultHeight, "configured map height (grid has height+1 rows)")
	flag.Int64Var(&seed, "seed", 0, "RNG seed, 0 for a clock seed")
	flag.BoolVar(&uniform, "uniform", false, "pick tiles uniformly instead of the biased rule")
	flag.BoolVar(&stats, "stats", false, "print a symbol histogram and a rule check")
	flag.BoolVar(&quiet, "q", false, "skip the glyph dump")
	flag.Parse()

	if width < 0 || height < 0 {
		fmt.Println("error: -width and -height must be >= 0")
		return
	}

	cfg := tilemap.Config{Width: width, Height: height, Pick: tilemap.BiasedPick}
	if uniform {
		cfg.Pick = tilemap.UniformPick
	}
	grid := game.GenerateMap(context.Background(), game.NewRand(seed), cfg)

	if !quiet {
		fmt.Print(grid.String())
	}
	if stats {
		printStats(os.Stdout, grid, uniform)
	}
}

// collectStats returns per-symbol counts sorted by count, largest first.
func collectStats(grid *tilemap.Grid) []symbolStat {
	counts := grid.Counts()
	total := grid.Cols * grid.Rows
	out := make([]symbolStat, 0, len(counts))
	for _, s := range tilemap.Symbols() {
		out = append(out, symbolStat{sym: s, count: counts[s], share: float64(counts[s]) / float64(total)})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].count > out[j].count })
	return out
}

func printStats(w io.Writer, grid *tilemap.Grid, uniform bool) {
	picker := "biased"
	if uniform {
		picker = "uniform"
	}
	fmt.Fprintf(w, "=== Map Stats ===\n")
	fmt.Fprintf(w, "grid=%dx%d cells=%d picker=%s\n", grid.Cols, grid.Rows, grid.Cols*grid.Rows, picker)
	for _, st := range collectStats(grid) {
		bar := strings.Repeat("#", int(st.share*50+0.5))
		fmt.Fprintf(w, "  %c %-15s %6d %5.1f%% %s\n", st.sym.Glyph(), st.sym, st.count, st.share*100, bar)
	}
	if err := grid.Validate(); err != nil {
		fmt.Fprintf(w, "rules: FAIL %v\n", err)
		return
	}
	fmt.Fprintf(w, "rules: ok\n")
}
