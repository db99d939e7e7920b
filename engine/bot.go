package engine

import "kittenmatch/card"

// Bot is the capability set a participant implements (§6). The engine
// never calls these directly; every call passes through the bounded
// invoker (C7) so a slow or panicking bot can't stall or crash the match.
type Bot interface {
	// OnTurn is asked to choose zero or more plays followed by a draw.
	// It returns the next single action to take; the engine calls it
	// again after applying the action, until the turn ends.
	OnTurn(view View) Action

	// OnNopeWindow is asked whether to play a Nope in reaction to the
	// current trigger. Returning a PlayCardAction of Kind Nope plays it;
	// any other action (including NoAction) declines.
	OnNopeWindow(view View, trigger PendingTrigger) Action

	// OnFavorRequested is asked to choose a card to hand over after
	// being targeted by a Favor. The returned Kind must be in hand.
	OnFavorRequested(view View, requesterID string) card.Kind

	// OnChooseDefusePosition is asked where to reinsert a drawn hazard
	// after defusing it. 0 means "immediately back on top".
	OnChooseDefusePosition(view View, deckSize int) int

	// OnSeeTheFuture is a notification-only suspension point: it reports
	// the top of the deck (fewer than 3 kinds near the bottom) right
	// after a SeeTheFuture resolves. There is nothing to decide; the
	// return value is ignored by the engine.
	OnSeeTheFuture(view View, revealed []card.Kind)

	// OnEvent is pushed to every living participant right after each
	// event is appended to the log, so a bot can maintain its own
	// bookkeeping without polling View.Log every turn. Notification-only.
	OnEvent(view View, event Event)

	// OnExplode notifies a participant that it just drew an undefused
	// hazard and is being eliminated. Notification-only; called just
	// before the participant is removed from the seat ring.
	OnExplode(view View)
}

// ActionKind distinguishes the shapes an Action can take.
type ActionKind byte

const (
	ActionNone ActionKind = iota
	ActionPlayCard
	ActionDrawCard
	ActionSendChat
)

// Action is the single envelope every Bot callback that proposes a move
// returns. Only the fields relevant to Kind are read.
type Action struct {
	Kind ActionKind

	// ActionPlayCard
	PlayKind      card.Kind
	TargetID      string    // Favor's target, or a 2/3-combo's steal target
	ComboSize     int       // 0 for a solo play; 2 or 3 for an N-of-a-kind combo; 5 for a 5-unique cat combo
	RequestedKind card.Kind // named kind for a 3-of-a-kind steal or a 5-unique discard-take

	// ActionSendChat
	Message string
}

// NoAction is the zero-value "do nothing" action, used by OnNopeWindow to
// decline and as the failure-mode substitute when a callback times out or
// panics.
var NoAction = Action{Kind: ActionNone}

// PendingTrigger describes the action currently open to a Nope (§4.8).
type PendingTrigger struct {
	TriggerParticipantID string
	Kind                  card.Kind
	Depth                 int
}

// ChatSink is the write-only chat capability (§4, I5): it exposes send and
// nothing else, so its holder can never read the queue it writes to, reach
// back into Match, or see any other participant's outbound messages. The
// engine builds one per ActionSendChat; View carries no ChatSink and no
// callback receives one, so a bot chats only by returning an ActionSendChat
// from OnTurn.
type ChatSink interface {
	Send(message string)
}

// chatSink is the engine's only ChatSink implementation. Every ActionSendChat
// on a participant's turn is routed through one of these rather than
// appending a ChatSent event directly, so the 200-code-point truncation and
// sender-pinning in §4.7 live in exactly one place.
type chatSink struct {
	participantID string
	m             *Match
}

func (s *chatSink) Send(message string) {
	s.m.sendChat(s.participantID, message)
}

const chatMessageLimit = 200

func truncateToCodePoints(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
