package bots

import (
	"math/rand"

	"kittenmatch/card"
	"kittenmatch/engine"
)

// Heuristic is a Profile-tunable engine.Bot, adapted from holdem/npc's
// RuleBrain: legal-action probabilities driven by a small set of
// persona-controlled weights plus independent randomness noise, rather
// than a search or learned policy.
type Heuristic struct {
	Persona *Persona
	rng     *rand.Rand
}

// NewHeuristic builds a Heuristic from a persona definition, seeded
// independently of the match RNG (mirrors RuleBrain.NewRuleBrain).
func NewHeuristic(persona *Persona, seed int64) *Heuristic {
	return &Heuristic{Persona: persona, rng: rand.New(rand.NewSource(seed))}
}

func (b *Heuristic) Name() string { return b.Persona.Name }

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// playsThisTurn counts how many CardPlayed events this participant has
// already produced since its most recent TurnStarted, so the policy
// below can taper off and eventually draw instead of looping forever.
func playsThisTurn(view engine.View) int {
	count := 0
	for i := len(view.Log) - 1; i >= 0; i-- {
		e := view.Log[i]
		switch p := e.Payload.(type) {
		case engine.TurnStartedPayload:
			if p.ParticipantID == view.SelfID {
				return count
			}
		case engine.CardPlayedPayload:
			if p.ParticipantID == view.SelfID {
				count++
			}
		}
	}
	return count
}

func hasKind(hand []card.Kind, k card.Kind) bool {
	for _, h := range hand {
		if h == k {
			return true
		}
	}
	return false
}

func countKind(hand []card.Kind, k card.Kind) int {
	n := 0
	for _, h := range hand {
		if h == k {
			n++
		}
	}
	return n
}

// OnTurn implements engine.Bot.
func (b *Heuristic) OnTurn(view engine.View) engine.Action {
	p := b.Persona.Profile
	noise := (b.rng.Float64() - 0.5) * p.Randomness

	if playsThisTurn(view) >= 3 {
		return engine.Action{Kind: engine.ActionDrawCard}
	}

	caution := clamp01(p.Caution + noise*0.3)
	aggression := clamp01(p.Aggression + noise*0.3)

	if hasKind(view.Hand, card.SeeTheFuture) && view.DeckSize > 1 &&
		b.rng.Float64() < caution && playsThisTurn(view) == 0 {
		return engine.Action{Kind: engine.ActionPlayCard, PlayKind: card.SeeTheFuture}
	}

	target := b.pickOpponent(view)
	if target != "" {
		for _, k := range card.CatKinds {
			if countKind(view.Hand, k) >= 3 && b.rng.Float64() < aggression {
				return engine.Action{Kind: engine.ActionPlayCard, PlayKind: k, TargetID: target,
					ComboSize: 3, RequestedKind: card.Defuse}
			}
			if countKind(view.Hand, k) >= 2 && b.rng.Float64() < aggression {
				return engine.Action{Kind: engine.ActionPlayCard, PlayKind: k, TargetID: target, ComboSize: 2}
			}
		}
		if hasKind(view.Hand, card.Favor) && b.rng.Float64() < aggression*0.6 {
			return engine.Action{Kind: engine.ActionPlayCard, PlayKind: card.Favor, TargetID: target}
		}
		if hasKind(view.Hand, card.Attack) && b.rng.Float64() < aggression {
			return engine.Action{Kind: engine.ActionPlayCard, PlayKind: card.Attack}
		}
	}

	if hasKind(view.Hand, card.Skip) && view.DeckSize > 0 && b.rng.Float64() < caution*0.5 {
		return engine.Action{Kind: engine.ActionPlayCard, PlayKind: card.Skip}
	}

	return engine.Action{Kind: engine.ActionDrawCard}
}

func (b *Heuristic) pickOpponent(view engine.View) string {
	var alive []string
	for _, o := range view.Opponents {
		if o.Alive {
			alive = append(alive, o.ID)
		}
	}
	if len(alive) == 0 {
		return ""
	}
	return alive[b.rng.Intn(len(alive))]
}

// OnNopeWindow implements engine.Bot: spend a held Nope with probability
// tied to NopeWillingness, more readily against an Attack than anything
// else.
func (b *Heuristic) OnNopeWindow(view engine.View, trigger engine.PendingTrigger) engine.Action {
	if !hasKind(view.Hand, card.Nope) {
		return engine.NoAction
	}
	chance := b.Persona.Profile.NopeWillingness
	if trigger.Kind == card.Attack {
		chance = clamp01(chance + 0.2)
	}
	if trigger.Depth%2 == 1 {
		// someone already noped this trigger; countering it back needs
		// extra conviction since it flips things back in the trigger's favor
		chance *= 0.6
	}
	if b.rng.Float64() < chance {
		return engine.Action{Kind: engine.ActionPlayCard, PlayKind: card.Nope}
	}
	return engine.NoAction
}

// OnFavorRequested implements engine.Bot: hand over the least useful
// card, favoring giving up a duplicate cat over a unique action card.
func (b *Heuristic) OnFavorRequested(view engine.View, requesterID string) card.Kind {
	if len(view.Hand) == 0 {
		return card.KindInvalid
	}
	counts := map[card.Kind]int{}
	for _, k := range view.Hand {
		counts[k]++
	}
	best := view.Hand[0]
	for k, n := range counts {
		if n > counts[best] && k != card.Defuse {
			best = k
		}
	}
	if best == card.Defuse && len(view.Hand) > 1 {
		for _, k := range view.Hand {
			if k != card.Defuse {
				return k
			}
		}
	}
	return best
}

// OnChooseDefusePosition implements engine.Bot: cautious personas bury
// the hazard deep; aggressive ones leave it near the top to speed the
// game toward a decisive draw for someone else.
func (b *Heuristic) OnChooseDefusePosition(view engine.View, deckSize int) int {
	if deckSize <= 0 {
		return 0
	}
	caution := b.Persona.Profile.Caution
	target := int(float64(deckSize) * clamp01(0.3+caution*0.6))
	if target > deckSize {
		target = deckSize
	}
	return target
}

// OnSeeTheFuture implements engine.Bot. Heuristic has no internal state to
// update from a peek; the revealed kinds are already in view.Log for the
// next OnTurn/OnNopeWindow call.
func (b *Heuristic) OnSeeTheFuture(view engine.View, revealed []card.Kind) {}

// OnEvent implements engine.Bot. Heuristic's policy is stateless across
// turns beyond what view.Log already replays, so there's nothing to track.
func (b *Heuristic) OnEvent(view engine.View, event engine.Event) {}

// OnExplode implements engine.Bot; nothing to do once eliminated.
func (b *Heuristic) OnExplode(view engine.View) {}
