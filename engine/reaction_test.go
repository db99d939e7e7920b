package engine

import (
	"testing"

	"kittenmatch/card"
)

// nopingBot always Nopes once (tracked via played flag) then declines.
type nopingBot struct {
	played *bool
}

func (b nopingBot) OnTurn(View) Action { return Action{Kind: ActionDrawCard} }
func (b nopingBot) OnNopeWindow(view View, trigger PendingTrigger) Action {
	if *b.played {
		return NoAction
	}
	*b.played = true
	return Action{Kind: ActionPlayCard, PlayKind: card.Nope}
}
func (b nopingBot) OnFavorRequested(View, string) card.Kind { return card.KindInvalid }
func (b nopingBot) OnChooseDefusePosition(View, int) int    { return 0 }
func (b nopingBot) OnSeeTheFuture(View, []card.Kind)        {}
func (b nopingBot) OnEvent(View, Event)                     {}
func (b nopingBot) OnExplode(View)                          {}

func TestRunNopeChain_SingleNopeNegates(t *testing.T) {
	played := false
	specs := []ParticipantSpec{
		{ID: "p1", DisplayName: "One", Bot: passiveBot{}},
		{ID: "p2", DisplayName: "Two", Bot: nopingBot{played: &played}},
	}
	m, err := newMatch(specs, DefaultDeckConfig(), Options{Seed: 1, Quiet: true})
	if err != nil {
		t.Fatalf("newMatch: %v", err)
	}
	m.participants["p2"].hand.Add(card.New(card.Nope))

	negated := m.runNopeChain("p1", card.Attack)
	if !negated {
		t.Fatalf("expected a single Nope to negate the trigger")
	}
}

func TestRunNopeChain_NoTakersResolvesUnnegated(t *testing.T) {
	specs := []ParticipantSpec{
		{ID: "p1", DisplayName: "One", Bot: passiveBot{}},
		{ID: "p2", DisplayName: "Two", Bot: passiveBot{}},
	}
	m, err := newMatch(specs, DefaultDeckConfig(), Options{Seed: 1, Quiet: true})
	if err != nil {
		t.Fatalf("newMatch: %v", err)
	}
	if negated := m.runNopeChain("p1", card.Skip); negated {
		t.Fatalf("expected no takers to leave the trigger unnegated")
	}
}
