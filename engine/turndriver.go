package engine

import "kittenmatch/card"

// drive runs the turn state machine (§4.9) until one participant remains,
// then emits MatchEnded.
func (m *Match) drive() {
	all := m.ring.walkAll()
	if len(all) == 0 {
		return
	}
	currentID := all[0].ID
	halted := false

	for m.ring.len() > 1 {
		p := m.participants[currentID]
		if p == nil || !p.alive {
			break
		}
		if p.turnsRemaining == 0 {
			// no turns stacked up by an Attack; a fresh rotation owes one.
			p.turnsRemaining = 1
		}
		currentID = m.runSeat(p)
		if err := m.checkHazardInvariant(); err != nil {
			m.logger.logf("halting on invariant violation: %v", err)
			halted = true
			break
		}
	}

	winner := ""
	if remaining := m.ring.walkAll(); !halted && len(remaining) == 1 {
		winner = remaining[0].ID
		m.placements = append([]string{winner}, m.placements...)
	}
	placementOrder := make([]string, len(m.placements))
	copy(placementOrder, m.placements)

	m.appendEvent(EventMatchEnded, MatchEndedPayload{
		WinnerID:       winner,
		PlacementOrder: placementOrder,
	})
	turns := 0
	for _, e := range m.log.events {
		if e.Kind == EventTurnStarted {
			turns++
		}
	}
	m.logger.summary(turns, len(m.log.events), winner)
}

// runSeat plays out every turn p currently owes (turnsRemaining, which
// Attack can stack up before p ever acts) and returns the ID of the seat
// that should act next.
func (m *Match) runSeat(p *Participant) string {
	for p.alive && p.turnsRemaining > 0 {
		p.turnsRemaining--
		m.appendEvent(EventTurnStarted, TurnStartedPayload{
			ParticipantID:  p.ID,
			TurnsRemaining: p.turnsRemaining,
		})

		result := m.playPhase(p)
		if result == attackEnds {
			return m.nextSeatID(p.ID)
		}
		if result == eliminatedResult {
			return m.afterElimination
		}
		if result == skipDraw {
			continue
		}
		if drawResult := m.drawPhase(p); drawResult == eliminatedResult {
			return m.afterElimination
		}
	}
	return m.nextSeatID(p.ID)
}

// nextSeatID returns the ID of the seat after id, or "" if id is the only
// seat left (or no longer in the ring).
func (m *Match) nextSeatID(id string) string {
	next := m.ring.next(id)
	if next == nil {
		return ""
	}
	return next.ID
}

// playPhase runs OnTurn repeatedly, applying plays, until the bot draws,
// the per-turn action limit is hit, or an Attack/Skip ends the turn.
func (m *Match) playPhase(p *Participant) slicingResult {
	limit := m.options.actionLimit()
	for actions := 0; actions < limit; actions++ {
		view := m.buildViewFor(p.ID)
		action, cbErr := invoke(m.options.deadline(), p.ID, "OnTurn", func() Action {
			return p.bot.OnTurn(view)
		})
		if cbErr != nil {
			// §4.9/§5/§8 scenario 5: a wedged or panicking OnTurn ends the
			// match for this seat exactly like an undefused hazard would,
			// including the I1 hazard-count adjustment that comes with it.
			m.afterElimination = m.nextSeatID(p.ID)
			m.eliminateForCallbackFailure(p, cbErr)
			return eliminatedResult
		}

		switch action.Kind {
		case ActionSendChat:
			m.newChatSink(p.ID).Send(action.Message)
			continue
		case ActionDrawCard:
			return goToDraw
		case ActionPlayCard:
			switch m.playCard(p, action) {
			case skipDraw:
				return skipDraw
			case attackEnds:
				return attackEnds
			default:
				continue
			}
		default:
			return goToDraw
		}
	}
	return goToDraw
}

// drawPhase draws one card for p and resolves it (§4.9, §4.10: hazard vs
// ordinary draw).
func (m *Match) drawPhase(p *Participant) slicingResult {
	drawn, ok := m.deck.Pop()
	if !ok {
		return goToDraw
	}

	if drawn.Kind != card.ExplodingKitten {
		p.hand.Add(drawn)
		m.appendEvent(EventCardDrawn, CardDrawnPayload{ParticipantID: p.ID, Kind: drawn.Kind})
		return goToDraw
	}

	m.appendEvent(EventHazardDrawn, HazardDrawnPayload{ParticipantID: p.ID})

	if _, hasDefuse := p.hand.TakeKind(card.Defuse); hasDefuse {
		m.discard.Add(card.New(card.Defuse))
		idx := m.callOnChooseDefusePosition(p, m.deck.Len())
		if idx < 0 {
			idx = 0
		}
		if idx > m.deck.Len() {
			idx = m.deck.Len()
		}
		m.deck.Insert(idx, drawn)
		m.appendEvent(EventDefused, DefusedPayload{
			ParticipantID: p.ID,
			InsertIndex:   idx,
			DeckSizeAfter: m.deck.Len(),
		})
		return goToDraw
	}

	m.afterElimination = m.nextSeatID(p.ID)
	m.callOnExplode(p)
	m.eliminate(p, "hazard")
	return eliminatedResult
}

func (m *Match) callOnExplode(p *Participant) {
	view := m.buildViewFor(p.ID)
	cbErr := invokeVoid(m.options.deadline(), p.ID, "OnExplode", func() {
		p.bot.OnExplode(view)
	})
	if cbErr != nil {
		m.recordCallbackError(cbErr)
	}
}

func (m *Match) callOnChooseDefusePosition(p *Participant, deckSize int) int {
	view := m.buildViewFor(p.ID)
	idx, cbErr := invoke(m.options.deadline(), p.ID, "OnChooseDefusePosition", func() int {
		return p.bot.OnChooseDefusePosition(view, deckSize)
	})
	if cbErr != nil {
		m.recordCallbackError(cbErr)
		// §9: every chance-dependent branch consumes RNG in fixed traversal
		// order, even on a callback failure, so a random-but-valid position
		// replaces the bot's choice instead of a fixed fallback.
		return m.rng.PickIndex(deckSize + 1)
	}
	return idx
}
