package engine

import (
	"testing"

	"kittenmatch/card"
)

func TestNewMatch_EachParticipantStartsWithOneDefuse(t *testing.T) {
	m, err := newMatch(fourPassiveSpecs(), DefaultDeckConfig(), Options{Seed: 9, Quiet: true})
	if err != nil {
		t.Fatalf("newMatch: %v", err)
	}
	for _, p := range m.participants {
		if n := card.CountByKind(p.hand.Cards())[card.Defuse]; n != 1 {
			t.Fatalf("participant %s expected exactly 1 defuse, got %d", p.ID, n)
		}
	}
}

func TestNewMatch_RejectsConfiguredHazards(t *testing.T) {
	cfg := DefaultDeckConfig()
	cfg.Counts[card.ExplodingKitten] = 1
	if _, err := newMatch(fourPassiveSpecs(), cfg, Options{Seed: 1}); err == nil {
		t.Fatalf("expected an error for a deck config carrying ExplodingKitten")
	}
}

func TestNewMatch_SatisfiesHazardInvariantAtSetup(t *testing.T) {
	m, err := newMatch(fourPassiveSpecs(), DefaultDeckConfig(), Options{Seed: 3, Quiet: true})
	if err != nil {
		t.Fatalf("newMatch: %v", err)
	}
	if err := m.checkHazardInvariant(); err != nil {
		t.Fatalf("hazard invariant violated at setup: %v", err)
	}
}
