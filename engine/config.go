package engine

import (
	"fmt"
	"time"

	"kittenmatch/card"
)

// DeckConfig is the in-memory description of the non-dealt card pool,
// keyed by kind. Parsing this from a file and exposing it via a CLI flag
// belongs to the runner (out of scope, §1); the validated value type and
// its repair logic (§4.11) live in the core.
type DeckConfig struct {
	Counts map[card.Kind]int
}

// DefaultDeckConfig returns a standard-size Exploding Kittens pool (before
// hazards/defuses are added by setup). It's a convenience literal, not a
// parsed configuration file.
func DefaultDeckConfig() DeckConfig {
	counts := map[card.Kind]int{
		card.Skip:         4,
		card.Attack:       4,
		card.Favor:        4,
		card.Shuffle:      4,
		card.SeeTheFuture: 5,
		card.Nope:         5,
	}
	for _, k := range card.CatKinds {
		counts[k] = 4
	}
	return DeckConfig{Counts: counts}
}

// validate enforces "hazards must not be configured" (§4.11). Defuse may
// be configured; setup tops it up if short.
func (c DeckConfig) validate() error {
	if c.Counts[card.ExplodingKitten] > 0 {
		return fmt.Errorf("deck config must not include ExplodingKitten; hazards are generated by setup")
	}
	for k, n := range c.Counts {
		if n < 0 {
			return fmt.Errorf("deck config has negative count for %v: %d", k, n)
		}
	}
	return nil
}

// Options mirrors spec §6's run() options.
type Options struct {
	// TimeoutSeconds disables the deadline when nil or <= 0 (batch mode).
	TimeoutSeconds     *float64
	ChatEnabled        bool
	Quiet              bool
	ActionLimitPerTurn int
	Seed               int64
}

func (o Options) deadline() time.Duration {
	if o.TimeoutSeconds == nil || *o.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(*o.TimeoutSeconds * float64(time.Second))
}

func (o Options) actionLimit() int {
	if o.ActionLimitPerTurn <= 0 {
		return 1000
	}
	return o.ActionLimitPerTurn
}
