package engine

import "kittenmatch/card"

// EventKind is the closed set of event log entries (§3, §4.4). Every
// payload type below is fixed per kind; the dispatcher never emits a kind
// with a shape other than its documented one.
type EventKind byte

const (
	EventMatchStarted EventKind = iota
	EventTurnStarted
	EventCardPlayed
	EventCardDrawn
	EventHazardDrawn
	EventDefused
	EventEliminated
	EventNopeWindowOpened
	EventNopeChainResolved
	EventFavorResolved
	EventRequestResolved
	EventDiscardTake
	EventSeeTheFuture
	EventChatSent
	EventActionRejected
	EventCallbackTimedOut
	EventCallbackFailed
	EventMatchEnded
)

var eventKindDictionary = map[EventKind]string{
	EventMatchStarted:      "MatchStarted",
	EventTurnStarted:       "TurnStarted",
	EventCardPlayed:        "CardPlayed",
	EventCardDrawn:         "CardDrawn",
	EventHazardDrawn:       "HazardDrawn",
	EventDefused:           "Defused",
	EventEliminated:        "Eliminated",
	EventNopeWindowOpened:  "NopeWindowOpened",
	EventNopeChainResolved: "NopeChainResolved",
	EventFavorResolved:     "FavorResolved",
	EventRequestResolved:   "RequestResolved",
	EventDiscardTake:       "DiscardTake",
	EventSeeTheFuture:      "SeeTheFuture",
	EventChatSent:          "ChatSent",
	EventActionRejected:    "ActionRejected",
	EventCallbackTimedOut:  "CallbackTimedOut",
	EventCallbackFailed:    "CallbackFailed",
	EventMatchEnded:        "MatchEnded",
}

func (k EventKind) String() string {
	if s, ok := eventKindDictionary[k]; ok {
		return s
	}
	return "Unknown"
}

// Event is one append-only, monotonically-sequenced log entry (C5). Seq is
// assigned by the log at append time; it is never reused or reordered.
type Event struct {
	Seq     int
	Kind    EventKind
	Payload interface{}
}

// Payload shapes, one per EventKind that carries data beyond Seq/Kind.

type MatchStartedPayload struct {
	MatchID      string
	Seed         int64
	SeatOrder    []string
	InitialHands map[string][]card.Kind
}

type TurnStartedPayload struct {
	ParticipantID  string
	TurnsRemaining int
}

type CardPlayedPayload struct {
	ParticipantID string
	Kind          card.Kind
	TargetID      string
	// ComboSize is 0 for a solo play, 2/3/5 for a combo. For a
	// 5-unique combo Kind is KindInvalid since no single kind repeats.
	ComboSize int
	Negated   bool
}

type CardDrawnPayload struct {
	ParticipantID string
	Kind          card.Kind
}

type HazardDrawnPayload struct {
	ParticipantID string
}

type DefusedPayload struct {
	ParticipantID string
	InsertIndex   int
	DeckSizeAfter int
}

type EliminatedPayload struct {
	ParticipantID string
	Cause         string
	PlacementRank int
}

type NopeWindowOpenedPayload struct {
	TriggerParticipantID string
	Depth                int
}

type NopeChainResolvedPayload struct {
	TriggerParticipantID string
	FinalDepth           int
	Negated              bool
}

// FavorResolvedPayload records an actual Favor card's transfer.
type FavorResolvedPayload struct {
	FromID string
	ToID   string
	Kind   card.Kind
}

// RequestResolvedPayload records a cat-combo steal request (2-of-a-kind
// random steal, always successful when the target has a card; 3-of-a-kind
// named steal, which can fail if the target doesn't hold Kind).
type RequestResolvedPayload struct {
	FromID    string
	ToID      string
	Kind      card.Kind
	ComboSize int
	Success   bool
}

// DiscardTakePayload records a 5-unique combo's attempt to reclaim a named
// kind from the discard pile.
type DiscardTakePayload struct {
	ParticipantID string
	Kind          card.Kind
	Success       bool
}

// SeeTheFuturePayload records the kinds revealed by a SeeTheFuture play,
// top card first.
type SeeTheFuturePayload struct {
	ParticipantID string
	Revealed      []card.Kind
}

type ChatSentPayload struct {
	FromID  string
	Message string
}

type ActionRejectedPayload struct {
	ParticipantID string
	Reason        string
}

type CallbackTimedOutPayload struct {
	ParticipantID string
	Method        string
}

type CallbackFailedPayload struct {
	ParticipantID string
	Method        string
	Reason        string
}

type MatchEndedPayload struct {
	WinnerID       string
	PlacementOrder []string
}

// eventLog is the append-only sequence backing Match.Events().
type eventLog struct {
	events []Event
}

func (l *eventLog) append(kind EventKind, payload interface{}) Event {
	e := Event{Seq: len(l.events), Kind: kind, Payload: payload}
	l.events = append(l.events, e)
	return e
}

func (l *eventLog) all() []Event {
	out := make([]Event, len(l.events))
	copy(out, l.events)
	return out
}
