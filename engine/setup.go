package engine

import (
	"fmt"
	"sort"

	"kittenmatch/card"
)

const startingHandSize = 7

// newMatch builds engine state for Run (§4.11): it validates the deck
// config, deals each participant a starting hand (always including
// exactly one Defuse), seeds the draw deck with the right number of
// Exploding Kittens for aliveCount-1 (I1), and shuffles it.
func newMatch(specs []ParticipantSpec, deckCfg DeckConfig, opts Options) (*Match, error) {
	if len(specs) < 2 {
		return nil, fmt.Errorf("a match needs at least 2 participants, got %d", len(specs))
	}
	if err := deckCfg.validate(); err != nil {
		return nil, err
	}

	rng := NewRNG(opts.Seed)

	pool := make([]card.Card, 0, 64)
	defuseCount := deckCfg.Counts[card.Defuse]
	if defuseCount < len(specs) {
		defuseCount = len(specs)
	}
	kinds := make([]card.Kind, 0, len(deckCfg.Counts))
	for k := range deckCfg.Counts {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	for _, k := range kinds {
		if k == card.Defuse {
			continue
		}
		n := deckCfg.Counts[k]
		for i := 0; i < n; i++ {
			pool = append(pool, card.New(k))
		}
	}
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	participants := make([]*Participant, len(specs))
	initialHands := make(map[string][]card.Kind, len(specs))
	for i, spec := range specs {
		p := newParticipant(spec.ID, spec.DisplayName, spec.Bot)
		p.hand.Add(card.New(card.Defuse))
		defuseCount--
		n := startingHandSize
		if n > len(pool) {
			n = len(pool)
		}
		p.hand.Add(pool[:n]...)
		pool = pool[n:]
		hand := make([]card.Kind, 0, p.hand.Len())
		for _, c := range p.hand.Cards() {
			hand = append(hand, c.Kind)
		}
		initialHands[p.ID] = hand
		participants[i] = p
	}

	for i := 0; i < defuseCount; i++ {
		pool = append(pool, card.New(card.Defuse))
	}
	for i := 0; i < len(specs)-1; i++ {
		pool = append(pool, card.New(card.ExplodingKitten))
	}
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	participantMap := make(map[string]*Participant, len(participants))
	seatOrder := make([]string, len(participants))
	for i, p := range participants {
		participantMap[p.ID] = p
		seatOrder[i] = p.ID
	}

	m := &Match{
		id:           newMatchID(),
		options:      opts,
		rng:          rng,
		deck:         card.NewDeck(pool),
		discard:      card.NewPile(),
		ring:         newSeatRing(participants),
		participants: participantMap,
		seatOrder:    seatOrder,
		log:          &eventLog{},
	}
	m.logger = newMatchLogger(m.id, opts.Quiet)

	m.appendEvent(EventMatchStarted, MatchStartedPayload{
		MatchID:      m.id,
		Seed:         opts.Seed,
		SeatOrder:    seatOrder,
		InitialHands: initialHands,
	})

	if err := m.checkHazardInvariant(); err != nil {
		return nil, err
	}
	return m, nil
}
