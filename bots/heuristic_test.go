package bots

import (
	"testing"

	"kittenmatch/card"
	"kittenmatch/engine"
)

func testPersona() *Persona {
	return &Persona{ID: "t", Name: "Test", Profile: Profile{
		Caution: 0.5, Aggression: 0.5, Randomness: 0, NopeWillingness: 1,
	}}
}

func TestHeuristic_DrawsWhenHandEmpty(t *testing.T) {
	b := NewHeuristic(testPersona(), 1)
	view := engine.View{SelfID: "p1", DeckSize: 10}
	action := b.OnTurn(view)
	if action.Kind != engine.ActionDrawCard {
		t.Fatalf("expected draw with empty hand, got %+v", action)
	}
}

func TestHeuristic_StopsAfterThreePlaysThisTurn(t *testing.T) {
	b := NewHeuristic(testPersona(), 1)
	view := engine.View{
		SelfID: "p1",
		Hand:   []card.Kind{card.Skip, card.Attack, card.Favor},
		Log: []engine.Event{
			{Kind: engine.EventTurnStarted, Payload: engine.TurnStartedPayload{ParticipantID: "p1"}},
			{Kind: engine.EventCardPlayed, Payload: engine.CardPlayedPayload{ParticipantID: "p1", Kind: card.Shuffle}},
			{Kind: engine.EventCardPlayed, Payload: engine.CardPlayedPayload{ParticipantID: "p1", Kind: card.Shuffle}},
			{Kind: engine.EventCardPlayed, Payload: engine.CardPlayedPayload{ParticipantID: "p1", Kind: card.Shuffle}},
		},
	}
	action := b.OnTurn(view)
	if action.Kind != engine.ActionDrawCard {
		t.Fatalf("expected draw after 3 plays this turn, got %+v", action)
	}
}

func TestHeuristic_NopeWithNopeInHand(t *testing.T) {
	b := NewHeuristic(testPersona(), 2)
	view := engine.View{SelfID: "p1", Hand: []card.Kind{card.Nope}}
	action := b.OnNopeWindow(view, engine.PendingTrigger{Kind: card.Attack})
	if action.Kind != engine.ActionPlayCard || action.PlayKind != card.Nope {
		t.Fatalf("expected full-willingness persona to Nope, got %+v", action)
	}
}

func TestHeuristic_OnFavorRequestedPrefersNonDefuse(t *testing.T) {
	b := NewHeuristic(testPersona(), 3)
	got := b.OnFavorRequested(engine.View{Hand: []card.Kind{card.Defuse, card.Skip}}, "p2")
	if got != card.Skip {
		t.Fatalf("expected Skip handed over instead of Defuse, got %v", got)
	}
}

func TestHeuristic_DefusePositionWithinBounds(t *testing.T) {
	b := NewHeuristic(testPersona(), 4)
	pos := b.OnChooseDefusePosition(engine.View{}, 10)
	if pos < 0 || pos > 10 {
		t.Fatalf("defuse position out of bounds: %d", pos)
	}
}
