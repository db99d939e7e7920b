package card

// Shuffler is the minimal randomness surface the deck needs. The engine's
// deterministic RNG (C2) is the only implementation the match uses; tests
// may substitute a stub.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// Deck is the ordered draw pile described in spec §3/§4.3. Index 0 is the
// top. Deck is not safe for concurrent use; the engine is its sole owner.
type Deck struct {
	cards []Card
}

// NewDeck builds a deck from cards, top-first.
func NewDeck(cards []Card) *Deck {
	d := &Deck{cards: make([]Card, len(cards))}
	copy(d.cards, cards)
	return d
}

func (d *Deck) Len() int { return len(d.cards) }

// Pop removes and returns the top card. ok is false on an empty deck; the
// caller (turn driver) decides what exhaustion means, per §4.3.
func (d *Deck) Pop() (c Card, ok bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	c = d.cards[0]
	d.cards = d.cards[1:]
	return c, true
}

// PeekTop returns up to k cards from the top, without removing them. The
// returned slice is a copy; mutating it never affects the deck.
func (d *Deck) PeekTop(k int) []Card {
	if k > len(d.cards) {
		k = len(d.cards)
	}
	out := make([]Card, k)
	copy(out, d.cards[:k])
	return out
}

// Insert places card at index (0 = top, Len() = bottom). index must satisfy
// 0 <= index <= Len(); callers are expected to clamp beforehand (the turn
// driver does this for chooseDefusePosition per §4.9).
func (d *Deck) Insert(index int, c Card) {
	if index < 0 {
		index = 0
	}
	if index > len(d.cards) {
		index = len(d.cards)
	}
	d.cards = append(d.cards, Card{})
	copy(d.cards[index+1:], d.cards[index:])
	d.cards[index] = c
}

// RemoveAt deletes and returns the card at index. Used by the turn driver
// to strip the bottom-most hazard on a non-draw elimination (§4.9).
func (d *Deck) RemoveAt(index int) (c Card, ok bool) {
	if index < 0 || index >= len(d.cards) {
		return Card{}, false
	}
	c = d.cards[index]
	d.cards = append(d.cards[:index], d.cards[index+1:]...)
	return c, true
}

// LastIndexOfKind returns the largest index holding a card of kind k, or -1.
// Used to find the "bottom-most hazard" per the pinned reading of the
// ambiguity noted in spec §9.
func (d *Deck) LastIndexOfKind(k Kind) int {
	for i := len(d.cards) - 1; i >= 0; i-- {
		if d.cards[i].Kind == k {
			return i
		}
	}
	return -1
}

// Shuffle permutes the deck in place using rng.
func (d *Deck) Shuffle(rng Shuffler) {
	rng.Shuffle(len(d.cards), func(i, j int) { d.cards[i], d.cards[j] = d.cards[j], d.cards[i] })
}

// Cards returns a defensive copy of the underlying slice, top-first. Used
// only by setup/test code; never handed to a participant view.
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}

// Pile is a general-purpose ordered container used for both hands and the
// discard pile: unordered removal doesn't apply, but index-based access,
// append, and takes do.
type Pile struct {
	cards []Card
}

func NewPile(cards ...Card) *Pile {
	p := &Pile{cards: make([]Card, len(cards))}
	copy(p.cards, cards)
	return p
}

func (p *Pile) Len() int { return len(p.cards) }

func (p *Pile) Add(cards ...Card) { p.cards = append(p.cards, cards...) }

// Top returns the most recently added card without removing it, and false
// if the pile is empty.
func (p *Pile) Top() (Card, bool) {
	if len(p.cards) == 0 {
		return Card{}, false
	}
	return p.cards[len(p.cards)-1], true
}

// TakeTop removes and returns the most recently added card.
func (p *Pile) TakeTop() (Card, bool) {
	c, ok := p.Top()
	if !ok {
		return Card{}, false
	}
	p.cards = p.cards[:len(p.cards)-1]
	return c, true
}

// Contains reports whether any card of kind k is present.
func (p *Pile) Contains(k Kind) bool {
	for _, c := range p.cards {
		if c.Kind == k {
			return true
		}
	}
	return false
}

// TakeKind removes and returns one card of kind k, if present.
func (p *Pile) TakeKind(k Kind) (Card, bool) {
	for i, c := range p.cards {
		if c.Kind == k {
			p.cards = append(p.cards[:i], p.cards[i+1:]...)
			return c, true
		}
	}
	return Card{}, false
}

// TakeAt removes and returns the card at index, and false if index is out
// of range. The engine uses it for the 2-of-a-kind random steal, whose
// index comes from the match RNG.
func (p *Pile) TakeAt(index int) (Card, bool) {
	if index < 0 || index >= len(p.cards) {
		return Card{}, false
	}
	c := p.cards[index]
	p.cards = append(p.cards[:index], p.cards[index+1:]...)
	return c, true
}

// IndexOf returns the first index holding kind k, or -1.
func (p *Pile) IndexOf(k Kind) int {
	for i, c := range p.cards {
		if c.Kind == k {
			return i
		}
	}
	return -1
}

// Cards returns a defensive copy, in pile order.
func (p *Pile) Cards() []Card {
	out := make([]Card, len(p.cards))
	copy(out, p.cards)
	return out
}

// CountByKind tallies cards by kind; used for combo validation and
// building the initial card-count table exposed in views.
func CountByKind(cards []Card) map[Kind]int {
	out := make(map[Kind]int, len(cards))
	for _, c := range cards {
		out[c.Kind]++
	}
	return out
}
