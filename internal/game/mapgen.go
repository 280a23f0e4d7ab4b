package game

import (
	"context"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/Garsondee/tilescape/internal/telemetry"
	"github.com/Garsondee/tilescape/internal/tilemap"
)

// NewRand returns the generator's random source. Seed 0 means seed from the clock.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)) // #nosec G404 -- scenery only
}

// GenerateMap builds the grid inside a "tilemap.generate" span.
func GenerateMap(ctx context.Context, rng tilemap.Rand, cfg tilemap.Config) *tilemap.Grid {
	_, span := telemetry.Tracer("tilemap").Start(ctx, "tilemap.generate")
	defer span.End()

	grid := tilemap.Generate(rng, cfg)
	if err := grid.Validate(); err != nil {
		span.RecordError(err)
	}

	counts := grid.Counts()
	attrs := []attribute.KeyValue{
		attribute.Int("tilemap.cols", grid.Cols),
		attribute.Int("tilemap.rows", grid.Rows),
	}
	for _, s := range tilemap.Symbols() {
		attrs = append(attrs, attribute.Int("tilemap.count."+s.String(), counts[s]))
	}
	span.SetAttributes(attrs...)
	return grid
}
