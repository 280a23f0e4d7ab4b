package tilemap

// seedSet is the candidate list for the first tile of a row. Order matters to BiasedPick.
var seedSet = []Symbol{CrackedRock, Grass, Rock, FlowerWhite1, FlowerWhite2}

// neighbors lists, per symbol, which symbols may follow it within a row.
var neighbors = [symbolCount][]Symbol{
	Grass:        {Grass, Rock, FlowerWhite1, FlowerWhite2},
	FlowerWhite1: {Grass},
	FlowerWhite2: {Grass},
	Rock:         {Rock, CrackedRock, Grass},
	CrackedRock:  {Rock, Grass},
}

// SeedCandidates returns the candidates for a row's first column.
func SeedCandidates() []Symbol {
	return append([]Symbol(nil), seedSet...)
}

// Neighbors returns the symbols permitted to follow prev in the same row.
func Neighbors(prev Symbol) []Symbol {
	return append([]Symbol(nil), neighbors[prev]...)
}

// Permits reports whether next may directly follow prev in a row.
func Permits(prev, next Symbol) bool {
	for _, s := range neighbors[prev] {
		if s == next {
			return true
		}
	}
	return false
}
