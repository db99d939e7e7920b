package engine

import "kittenmatch/card"

// runNopeChain implements the reaction coordinator (§4.8) as an explicit
// loop over frames rather than true recursion: each frame asks every
// other living seat, in ring order starting just after whoever acted last
// in this frame, whether it wants to Nope. The first yes opens a new
// frame (depth+1) with the asking order restarted after the Noper; a
// frame with no takers ends the chain. Final negation is depth odd.
func (m *Match) runNopeChain(triggerID string, triggerKind card.Kind) bool {
	depth := 0
	askFrom := triggerID

	// effectiveTriggerID/effectiveTriggerKind describe what the NEXT frame's
	// PendingTrigger is actually reacting to. At depth 0 that's the original
	// play; from depth 1 on it's always the Nope that just opened this frame
	// (§4.8) — a later responder is Noping the Nope, not re-litigating the
	// original card, and PendingTrigger must say so or a bot reasoning about
	// "what am I cancelling" would see the wrong card at every depth past 0.
	effectiveTriggerID := triggerID
	effectiveTriggerKind := triggerKind

	for {
		m.appendEvent(EventNopeWindowOpened, NopeWindowOpenedPayload{
			TriggerParticipantID: triggerID,
			Depth:                depth,
		})

		noped := false
		for _, candidate := range m.aliveSeatOrderAfter(askFrom) {
			if candidate.ID == askFrom {
				// one full loop back to whoever acted last in this frame, with
				// no takers: the frame is exhausted.
				break
			}
			action := m.callOnNopeWindow(candidate, PendingTrigger{
				TriggerParticipantID: effectiveTriggerID,
				Kind:                 effectiveTriggerKind,
				Depth:                depth,
			})
			if action.Kind != ActionPlayCard || action.PlayKind != card.Nope {
				continue
			}
			if _, ok := candidate.hand.TakeKind(card.Nope); !ok {
				continue
			}
			m.discard.Add(card.New(card.Nope))
			m.appendEvent(EventCardPlayed, CardPlayedPayload{
				ParticipantID: candidate.ID,
				Kind:          card.Nope,
			})
			depth++
			askFrom = candidate.ID
			effectiveTriggerID = candidate.ID
			effectiveTriggerKind = card.Nope
			noped = true
			break
		}

		if !noped {
			negated := depth%2 == 1
			m.appendEvent(EventNopeChainResolved, NopeChainResolvedPayload{
				TriggerParticipantID: triggerID,
				FinalDepth:           depth,
				Negated:              negated,
			})
			return negated
		}
	}
}

// aliveSeatOrderAfter returns every living seat in ring order starting
// with the one right after id, wrapping around, and including id itself
// last (so a caller can detect "back to start" as a natural loop end).
func (m *Match) aliveSeatOrderAfter(id string) []*Participant {
	all := m.ring.walkAll()
	if len(all) == 0 {
		return nil
	}
	start := 0
	for i, p := range all {
		if p.ID == id {
			start = i
			break
		}
	}
	out := make([]*Participant, 0, len(all))
	for i := 1; i <= len(all); i++ {
		out = append(out, all[(start+i)%len(all)])
	}
	return out
}

func (m *Match) callOnNopeWindow(p *Participant, trigger PendingTrigger) Action {
	view := m.buildViewFor(p.ID)
	action, cbErr := invoke(m.options.deadline(), p.ID, "OnNopeWindow", func() Action {
		return p.bot.OnNopeWindow(view, trigger)
	})
	if cbErr != nil {
		m.recordCallbackError(cbErr)
		return NoAction
	}
	return action
}
