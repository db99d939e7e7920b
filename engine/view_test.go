package engine

import (
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"

	"kittenmatch/card"
)

func TestBuildView_HidesOpponentHandContents(t *testing.T) {
	self := newParticipant("p1", "One", passiveBot{})
	self.hand.Add(card.New(card.Skip))
	opp := newParticipant("p2", "Two", passiveBot{})
	opp.hand.Add(card.New(card.Defuse), card.New(card.Attack))

	log := &eventLog{}
	view := buildView("p1", self, 5, card.NewPile(), []*Participant{self, opp}, log)

	if len(view.Opponents) != 1 {
		t.Fatalf("expected 1 opponent, got %d", len(view.Opponents))
	}
	o := view.Opponents[0]
	if o.ID != "p2" || o.HandSize != 2 {
		t.Fatalf("unexpected opponent view: %+v", o)
	}
	// OpponentView has no field that could expose hand contents; this is
	// a structural guarantee, but double check nothing else leaked it.
	if o.DisplayName != "Two" {
		t.Fatalf("expected display name preserved, got %q", o.DisplayName)
	}

	dump := spew.Sdump(view)
	if strings.Contains(dump, "Defuse") || strings.Contains(dump, "Attack") {
		t.Fatalf("opponent hand contents leaked into view dump:\n%s", dump)
	}
}

func TestRedactLog_HidesOtherParticipantsDrawnCardKind(t *testing.T) {
	events := []Event{
		{Seq: 0, Kind: EventCardDrawn, Payload: CardDrawnPayload{ParticipantID: "p2", Kind: card.Skip}},
	}
	redacted := redactLog(events, "p1")
	payload := redacted[0].Payload.(CardDrawnPayload)
	if payload.Kind != card.KindInvalid {
		t.Fatalf("expected opponent's drawn card kind hidden, got %v", payload.Kind)
	}
}

func TestRedactLog_HidesOtherParticipantsInitialHand(t *testing.T) {
	events := []Event{
		{Seq: 0, Kind: EventMatchStarted, Payload: MatchStartedPayload{
			InitialHands: map[string][]card.Kind{
				"p1": {card.Skip},
				"p2": {card.Attack},
			},
		}},
	}
	redacted := redactLog(events, "p1")
	payload := redacted[0].Payload.(MatchStartedPayload)
	if _, ok := payload.InitialHands["p2"]; ok {
		t.Fatalf("expected opponent's initial hand hidden")
	}
	if _, ok := payload.InitialHands["p1"]; !ok {
		t.Fatalf("expected own initial hand preserved")
	}
}
