package engine

import (
	"github.com/google/uuid"

	"kittenmatch/card"
)

// Match holds all engine-owned state for one run (C1-C11). Nothing here
// is ever handed to a bot directly; buildViewFor is the only path out,
// and it always deep-copies.
type Match struct {
	id      string
	options Options

	rng          *RNG
	deck         *card.Deck
	discard      *card.Pile
	ring         *seatRing
	participants map[string]*Participant
	seatOrder    []string

	log    *eventLog
	logger *matchLogger

	placements []string

	// afterElimination holds the seat runSeat resumes from when playPhase
	// or drawPhase has just eliminated the current actor.
	afterElimination string
}

// Run executes one complete match to completion and returns it. Every bot
// callback is wrapped by the bounded invoker (C7); with a positive
// options.deadline() no callback can hold Run past its deadline, while a
// deadline of 0 disables the wall-clock bound, so a callback that never
// returns then blocks Run.
func Run(participants []ParticipantSpec, deck DeckConfig, opts Options) (*Match, error) {
	m, err := newMatch(participants, deck, opts)
	if err != nil {
		return nil, err
	}
	m.drive()
	return m, nil
}

// ParticipantSpec names a seat and the Bot implementation that occupies
// it, as accepted by Run (§6).
type ParticipantSpec struct {
	ID          string
	DisplayName string
	Bot         Bot
}

func newMatchID() string {
	return uuid.NewString()
}

// Events returns the full append-only log in sequence order.
func (m *Match) Events() []Event { return m.log.all() }

// ID returns the match's generated identifier.
func (m *Match) ID() string { return m.id }

// Placements returns finishing order, winner first, as of match end.
func (m *Match) Placements() []string {
	out := make([]string, len(m.placements))
	copy(out, m.placements)
	return out
}

func (m *Match) buildViewFor(id string) View {
	p := m.participants[id]
	return buildView(id, p, m.deck.Len(), m.discard, m.ring.walkAll(), m.log)
}

// appendEvent appends to the log and pushes the event to every living
// participant's OnEvent (§6). recordCallbackError / broadcastEvent itself
// never route back through appendEvent, or a failing OnEvent callback
// would recursively broadcast its own failure forever.
func (m *Match) appendEvent(kind EventKind, payload interface{}) Event {
	e := m.log.append(kind, payload)
	m.broadcastEvent(e)
	return e
}

func (m *Match) broadcastEvent(e Event) {
	for _, p := range m.ring.walkAll() {
		view := m.buildViewFor(p.ID)
		ev := redactLog([]Event{e}, p.ID)[0]
		cbErr := invokeVoid(m.options.deadline(), p.ID, "OnEvent", func() {
			p.bot.OnEvent(view, ev)
		})
		if cbErr != nil {
			m.recordCallbackError(cbErr)
		}
	}
}

// sendChat is the only path a ChatSent event is ever produced through: it
// pins the sender to participantID and truncates to the 200-code-point
// bound from §4.7 before the message ever reaches the log.
func (m *Match) sendChat(participantID, message string) {
	m.appendEvent(EventChatSent, ChatSentPayload{
		FromID:  participantID,
		Message: truncateToCodePoints(message, chatMessageLimit),
	})
}

func (m *Match) newChatSink(participantID string) ChatSink {
	return &chatSink{participantID: participantID, m: m}
}

func (m *Match) recordCallbackError(cbErr *CallbackError) {
	switch cbErr.Kind {
	case ErrKindCallbackTimeout:
		m.log.append(EventCallbackTimedOut, CallbackTimedOutPayload{
			ParticipantID: cbErr.ParticipantID,
			Method:        cbErr.Method,
		})
	default:
		m.log.append(EventCallbackFailed, CallbackFailedPayload{
			ParticipantID: cbErr.ParticipantID,
			Method:        cbErr.Method,
			Reason:        cbErr.Error(),
		})
	}
	m.logger.logf("callback error: %v", cbErr)
}

// eliminate removes a participant from the seat ring, records its
// placement rank, and emits the Eliminated event. Rank counts down from
// aliveCountAtStart so the last elimination is rank 2 and the winner
// (who is never eliminated) is implicitly rank 1.
func (m *Match) eliminate(p *Participant, cause string) {
	if !p.alive {
		return
	}
	p.alive = false
	m.ring.remove(p.ID)
	rank := m.ring.len() + 1
	m.placements = append([]string{p.ID}, m.placements...)
	m.appendEvent(EventEliminated, EliminatedPayload{
		ParticipantID: p.ID,
		Cause:         cause,
		PlacementRank: rank,
	})
}

// eliminateForCallbackFailure handles a takeTurn timeout/panic (§4.9, §5,
// §8 scenario 5): the participant is eliminated outright, and since I1
// pins the hazard count to aliveCount-1, one hazard has to leave the pool
// along with the seat. The bottom-most hazard (§9's pinned reading of
// "bottom-most") is destroyed the same way a directly-drawn, undefused
// one is; there's always one to remove, since a live participant being
// eliminated is exactly the case I1 requires a hazard for.
func (m *Match) eliminateForCallbackFailure(p *Participant, cbErr *CallbackError) {
	m.recordCallbackError(cbErr)
	cause := "failure"
	if cbErr.Kind == ErrKindCallbackTimeout {
		cause = "timeout"
	}
	if idx := m.deck.LastIndexOfKind(card.ExplodingKitten); idx >= 0 {
		m.deck.RemoveAt(idx)
	}
	m.eliminate(p, cause)
}

// checkHazardInvariant enforces I1: hazard count across deck, every hand,
// and discard must equal aliveCount-1. A violation halts the match.
func (m *Match) checkHazardInvariant() error {
	count := card.CountByKind(m.deck.Cards())[card.ExplodingKitten]
	count += card.CountByKind(m.discard.Cards())[card.ExplodingKitten]
	for _, p := range m.participants {
		if !p.alive {
			continue
		}
		count += card.CountByKind(p.hand.Cards())[card.ExplodingKitten]
	}
	want := m.ring.len() - 1
	if want < 0 {
		want = 0
	}
	if count != want {
		return InvariantViolation("hazard count mismatch")
	}
	return nil
}
