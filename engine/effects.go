package engine

import "kittenmatch/card"

// slicingResult tells runSeat's loop what the current play phase action
// implies for the rest of the turn (§4.9): most actions loop back into
// another play-phase decision, Skip and Attack end the turn without (for
// Skip) or without ever reaching (for Attack) a draw, and eliminatedResult
// means the seat is gone and runSeat must resume at m.afterElimination
// instead of ever reaching a draw.
type slicingResult int

const (
	continuePlaying slicingResult = iota
	goToDraw
	skipDraw
	attackEnds
	eliminatedResult
)

// playCard consumes actor's proposed PlayCardAction: it validates the
// card is actually in hand, discards it, runs the Nope-chain coordinator,
// and — if the chain didn't negate it — applies the card's effect. Every
// nopeable card goes through exactly this path, whether played solo or as
// part of a combo.
func (m *Match) playCard(actor *Participant, action Action) slicingResult {
	switch {
	case action.ComboSize >= 2:
		return m.playCombo(actor, action)
	default:
		return m.playSingle(actor, action)
	}
}

func (m *Match) playSingle(actor *Participant, action Action) slicingResult {
	k := action.PlayKind
	if !actor.hand.Contains(k) {
		m.appendEvent(EventActionRejected, ActionRejectedPayload{
			ParticipantID: actor.ID,
			Reason:        "card not in hand: " + k.String(),
		})
		return continuePlaying
	}
	if k == card.Favor && actor.targetInvalid(action.TargetID, m) {
		m.appendEvent(EventActionRejected, ActionRejectedPayload{
			ParticipantID: actor.ID,
			Reason:        "invalid Favor target",
		})
		return continuePlaying
	}

	actor.hand.TakeKind(k)
	m.discard.Add(card.New(k))

	negated := m.runNopeChain(actor.ID, k)
	m.appendEvent(EventCardPlayed, CardPlayedPayload{
		ParticipantID: actor.ID,
		Kind:          k,
		TargetID:      action.TargetID,
		Negated:       negated,
	})
	if negated {
		return continuePlaying
	}

	switch k {
	case card.Skip:
		return skipDraw
	case card.Attack:
		m.applyAttack(actor)
		return attackEnds
	case card.Shuffle:
		m.deck.Shuffle(m.rng)
		return continuePlaying
	case card.SeeTheFuture:
		m.applySeeTheFuture(actor)
		return continuePlaying
	case card.Favor:
		m.applyFavor(actor, action.TargetID)
		return continuePlaying
	default:
		return continuePlaying
	}
}

func (p *Participant) targetInvalid(targetID string, m *Match) bool {
	if targetID == "" || targetID == p.ID {
		return true
	}
	t, ok := m.participants[targetID]
	return !ok || !t.alive
}

func (m *Match) applyAttack(actor *Participant) {
	next := m.ring.next(actor.ID)
	if next == nil {
		return
	}
	remaining := actor.turnsRemaining - 1
	if remaining < 0 {
		remaining = 0
	}
	next.turnsRemaining += 2 + remaining
	actor.turnsRemaining = 0
}

// applySeeTheFuture reveals the top three (or fewer) cards to actor alone:
// it records what was seen in the event log (redacted for every other
// participant by redactLog) and pushes the same reveal to actor's bot via
// the notification-only OnSeeTheFuture callback, rather than stashing it on
// Participant for the next View to pick up.
func (m *Match) applySeeTheFuture(actor *Participant) {
	top := m.deck.PeekTop(3)
	revealed := make([]card.Kind, len(top))
	for i, c := range top {
		revealed[i] = c.Kind
	}
	m.appendEvent(EventSeeTheFuture, SeeTheFuturePayload{
		ParticipantID: actor.ID,
		Revealed:      revealed,
	})
	m.callOnSeeTheFuture(actor, revealed)
}

func (m *Match) callOnSeeTheFuture(p *Participant, revealed []card.Kind) {
	view := m.buildViewFor(p.ID)
	cbErr := invokeVoid(m.options.deadline(), p.ID, "OnSeeTheFuture", func() {
		p.bot.OnSeeTheFuture(view, revealed)
	})
	if cbErr != nil {
		m.recordCallbackError(cbErr)
	}
}

func (m *Match) applyFavor(actor *Participant, targetID string) {
	target, ok := m.participants[targetID]
	if !ok || !target.alive || target.hand.Len() == 0 {
		return
	}
	given := m.callOnFavorRequested(target, actor.ID)
	c, ok := target.hand.TakeKind(given)
	if !ok {
		return
	}
	actor.hand.Add(c)
	m.appendEvent(EventFavorResolved, FavorResolvedPayload{
		FromID: target.ID,
		ToID:   actor.ID,
		Kind:   c.Kind,
	})
}

// playCombo resolves a 2-of-a-kind (random steal) or 3-of-a-kind (named
// steal) of any combo-eligible kind, or a 5-unique cat combo (discard-pile
// retrieval) (§4.10). Any other
// ComboSize is rejected outright rather than silently coerced into one of
// the three.
func (m *Match) playCombo(actor *Participant, action Action) slicingResult {
	need := action.ComboSize
	if need != 2 && need != 3 && need != 5 {
		m.appendEvent(EventActionRejected, ActionRejectedPayload{
			ParticipantID: actor.ID,
			Reason:        "invalid combo size",
		})
		return continuePlaying
	}

	if need == 5 {
		return m.playFiveUniqueCombo(actor, action)
	}

	k := action.PlayKind
	if !k.IsComboEligible() {
		m.appendEvent(EventActionRejected, ActionRejectedPayload{
			ParticipantID: actor.ID,
			Reason:        "kind not combo-eligible: " + k.String(),
		})
		return continuePlaying
	}
	have := 0
	for _, c := range actor.hand.Cards() {
		if c.Kind == k {
			have++
		}
	}
	if have < need || actor.targetInvalid(action.TargetID, m) {
		m.appendEvent(EventActionRejected, ActionRejectedPayload{
			ParticipantID: actor.ID,
			Reason:        "insufficient cards or invalid target for combo",
		})
		return continuePlaying
	}

	for i := 0; i < need; i++ {
		actor.hand.TakeKind(k)
		m.discard.Add(card.New(k))
	}

	negated := m.runNopeChain(actor.ID, k)
	m.appendEvent(EventCardPlayed, CardPlayedPayload{
		ParticipantID: actor.ID,
		Kind:          k,
		TargetID:      action.TargetID,
		ComboSize:     need,
		Negated:       negated,
	})
	if negated {
		return continuePlaying
	}

	target := m.participants[action.TargetID]
	if target == nil || !target.alive {
		return continuePlaying
	}

	if need == 2 {
		if target.hand.Len() == 0 {
			m.appendEvent(EventRequestResolved, RequestResolvedPayload{
				FromID: target.ID, ToID: actor.ID, Kind: card.KindInvalid, ComboSize: need, Success: false,
			})
			return continuePlaying
		}
		idx := m.rng.PickIndex(target.hand.Len())
		c, ok := target.hand.TakeAt(idx)
		if !ok {
			return continuePlaying
		}
		actor.hand.Add(c)
		m.appendEvent(EventRequestResolved, RequestResolvedPayload{
			FromID: target.ID, ToID: actor.ID, Kind: c.Kind, ComboSize: need, Success: true,
		})
		return continuePlaying
	}

	// three-of-a-kind: actor names a kind; it transfers only if the target
	// actually holds it, but either outcome is reported (§5: a failed
	// request is a resolved request, not a silent no-op).
	c, ok := target.hand.TakeKind(action.RequestedKind)
	if ok {
		actor.hand.Add(c)
	}
	m.appendEvent(EventRequestResolved, RequestResolvedPayload{
		FromID: target.ID, ToID: actor.ID, Kind: action.RequestedKind, ComboSize: need, Success: ok,
	})
	return continuePlaying
}

// playFiveUniqueCombo resolves the 5-unique combo (§4.10, §3): actor
// discards one of each of the five cat kinds and, if the Nope chain doesn't
// negate it, reclaims one card of action.RequestedKind from the discard
// pile if one is there to reclaim.
func (m *Match) playFiveUniqueCombo(actor *Participant, action Action) slicingResult {
	counts := card.CountByKind(actor.hand.Cards())
	for _, k := range card.CatKinds {
		if counts[k] < 1 {
			m.appendEvent(EventActionRejected, ActionRejectedPayload{
				ParticipantID: actor.ID,
				Reason:        "missing cat kind for 5-unique combo: " + k.String(),
			})
			return continuePlaying
		}
	}

	for _, k := range card.CatKinds {
		actor.hand.TakeKind(k)
		m.discard.Add(card.New(k))
	}

	negated := m.runNopeChain(actor.ID, card.KindInvalid)
	m.appendEvent(EventCardPlayed, CardPlayedPayload{
		ParticipantID: actor.ID,
		Kind:          card.KindInvalid,
		ComboSize:     5,
		Negated:       negated,
	})
	if negated {
		return continuePlaying
	}

	c, ok := m.discard.TakeKind(action.RequestedKind)
	if ok {
		actor.hand.Add(c)
	}
	m.appendEvent(EventDiscardTake, DiscardTakePayload{
		ParticipantID: actor.ID,
		Kind:          action.RequestedKind,
		Success:       ok,
	})
	return continuePlaying
}

// callOnFavorRequested asks p which card to hand over. On timeout or panic
// it doesn't fall back to the top of p's hand: it picks a uniformly random
// card from p's hand via m.rng (§9's fixed RNG-consumption-order discipline
// applies to every chance-dependent branch, callback failures included) and
// eliminates p for the failed callback, the same way a wedged OnTurn does.
func (m *Match) callOnFavorRequested(p *Participant, requesterID string) card.Kind {
	view := m.buildViewFor(p.ID)
	k, cbErr := invoke(m.options.deadline(), p.ID, "OnFavorRequested", func() card.Kind {
		return p.bot.OnFavorRequested(view, requesterID)
	})
	if cbErr != nil {
		var picked card.Kind
		if n := p.hand.Len(); n > 0 {
			picked = p.hand.Cards()[m.rng.PickIndex(n)].Kind
		}
		m.eliminateForCallbackFailure(p, cbErr)
		return picked
	}
	return k
}
