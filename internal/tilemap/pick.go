package tilemap

import "math"

// Rand is the slice of *rand.Rand the generator needs.
type Rand interface {
	Float64() float64
}

// Picker chooses an index in [0, n) from one uniform draw.
type Picker func(rng Rand, n int) int

// BiasedPick returns max(round(r*n - 1), 0), rounding halves up.
// The last candidate is under-weighted and the first is over-weighted; maps generated
// with it match the layout the sprite sheet was designed around.
func BiasedPick(rng Rand, n int) int {
	i := int(math.Floor(rng.Float64()*float64(n) - 1 + 0.5))
	if i < 0 {
		return 0
	}
	if i > n-1 {
		return n - 1
	}
	return i
}

// UniformPick returns floor(r*n), an unbiased choice.
func UniformPick(rng Rand, n int) int {
	i := int(rng.Float64() * float64(n))
	if i >= n {
		return n - 1
	}
	return i
}
