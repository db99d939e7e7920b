package engine

import "math/rand"

// RNG is the match's deterministic randomness source (C2). The engine is
// its sole consumer: participant code never sees it, and it is never
// reseeded mid-match. Same seed, same traversal order of calls => same
// sequence of outcomes, which is what makes run() reproducible (§8).
type RNG struct {
	r *rand.Rand
}

func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewSource(seed))}
}

// Shuffle satisfies card.Shuffler.
func (g *RNG) Shuffle(n int, swap func(i, j int)) {
	g.r.Shuffle(n, swap)
}

// PickIndex returns a uniform index in [0, n). For n <= 0 it returns 0
// rather than panicking, since callers already guard the empty case where
// it matters (e.g. random defuse position over an empty deck picks 0).
func (g *RNG) PickIndex(n int) int {
	if n <= 0 {
		return 0
	}
	return g.r.Intn(n)
}

// Int63 exposes a raw draw for callers that need their own derived seed
// (e.g. handing a bot persona a reproducible sub-seed).
func (g *RNG) Int63() int64 { return g.r.Int63() }
