package engine

import "kittenmatch/card"

// View is the deep-copied, information-hiding snapshot handed to a bot
// callback (§4, I5), built the way holdem's Snapshot() builds a
// PlayerSnapshot: every field is a value or a fresh copy, so a bot can
// never reach back into engine-owned state through what it's given.
type View struct {
	SelfID         string
	Hand           []card.Kind
	DeckSize       int
	DiscardTop     []card.Kind
	TurnsRemaining int
	Opponents      []OpponentView
	Log            []Event
}

// OpponentView exposes only what §3 allows a bot to know about another
// seat: identity, liveness, and hand/turn counts, never hand contents.
type OpponentView struct {
	ID             string
	DisplayName    string
	Alive          bool
	HandSize       int
	TurnsRemaining int
}

// buildView deep-copies match state into a View for participant id. discard
// and deck are passed by value-producing accessors (card.Pile/Deck.Cards
// already return defensive copies).
func buildView(id string, self *Participant, deckSize int, discard *card.Pile, seats []*Participant, log *eventLog) View {
	hand := make([]card.Kind, 0, self.hand.Len())
	for _, c := range self.hand.Cards() {
		hand = append(hand, c.Kind)
	}

	var discardTop []card.Kind
	if top, ok := discard.Top(); ok {
		discardTop = []card.Kind{top.Kind}
	}

	opponents := make([]OpponentView, 0, len(seats))
	for _, p := range seats {
		if p.ID == id {
			continue
		}
		opponents = append(opponents, OpponentView{
			ID:             p.ID,
			DisplayName:    p.DisplayName,
			Alive:          p.alive,
			HandSize:       p.hand.Len(),
			TurnsRemaining: p.turnsRemaining,
		})
	}

	return View{
		SelfID:         id,
		Hand:           hand,
		DeckSize:       deckSize,
		DiscardTop:     discardTop,
		TurnsRemaining: self.turnsRemaining,
		Opponents:      opponents,
		Log:            redactLog(log.all(), id),
	}
}

// redactLog strips hand-revealing detail belonging to other participants
// out of the log before it's handed to a bot (I5): a drawn card's kind is
// only visible to the drawer, and another seat's starting hand is never
// visible at all.
func redactLog(events []Event, selfID string) []Event {
	out := make([]Event, len(events))
	for i, e := range events {
		switch p := e.Payload.(type) {
		case CardDrawnPayload:
			if p.ParticipantID != selfID {
				p.Kind = card.KindInvalid
				e.Payload = p
			}
		case MatchStartedPayload:
			redacted := make(map[string][]card.Kind, len(p.InitialHands))
			for pid, hand := range p.InitialHands {
				if pid == selfID {
					redacted[pid] = append([]card.Kind(nil), hand...)
				}
			}
			p.InitialHands = redacted
			p.SeatOrder = append([]string(nil), p.SeatOrder...)
			e.Payload = p
		case SeeTheFuturePayload:
			if p.ParticipantID != selfID {
				p.Revealed = nil
			} else {
				p.Revealed = append([]card.Kind(nil), p.Revealed...)
			}
			e.Payload = p
		case MatchEndedPayload:
			p.PlacementOrder = append([]string(nil), p.PlacementOrder...)
			e.Payload = p
		}
		out[i] = e
	}
	return out
}
