// Package card defines the card catalog and the draw pile (deck) used by
// the match engine.
package card

import "fmt"

// Kind identifies the face of a card. Two cards of the same kind are
// interchangeable; the engine never distinguishes cards by identity beyond
// which kind they are and which container holds them.
type Kind byte

const (
	KindInvalid Kind = iota

	// Defuse neutralizes an ExplodingKitten draw.
	Defuse
	// ExplodingKitten is the hazard: drawing one eliminates unless defused.
	ExplodingKitten

	// Action kinds, playable alone.
	Skip
	SeeTheFuture
	Shuffle
	Attack
	Favor
	Nope

	// Cat kinds: no standalone effect, legal only as combo components.
	CatTacocat
	CatRainbowRalphing
	CatPotatoCat
	CatBeardCat
	CatCattermelon
)

var kindDictionary = map[Kind]string{
	KindInvalid:        "Invalid",
	Defuse:             "Defuse",
	ExplodingKitten:    "ExplodingKitten",
	Skip:               "Skip",
	SeeTheFuture:       "SeeTheFuture",
	Shuffle:            "Shuffle",
	Attack:             "Attack",
	Favor:              "Favor",
	Nope:               "Nope",
	CatTacocat:         "Tacocat",
	CatRainbowRalphing: "RainbowRalphing",
	CatPotatoCat:       "PotatoCat",
	CatBeardCat:        "BeardCat",
	CatCattermelon:     "Cattermelon",
}

func (k Kind) String() string {
	if s, ok := kindDictionary[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", byte(k))
}

// CatKinds enumerates the five cat kinds, in a fixed deterministic order.
// Engine code that needs "all cat kinds" (e.g. 5-unique combo validation,
// deck construction) iterates this slice rather than re-deriving it.
var CatKinds = []Kind{CatTacocat, CatRainbowRalphing, CatPotatoCat, CatBeardCat, CatCattermelon}

// ActionKinds enumerates the standalone-playable action kinds.
var ActionKinds = []Kind{Skip, SeeTheFuture, Shuffle, Attack, Favor, Nope}

func (k Kind) IsCat() bool {
	switch k {
	case CatTacocat, CatRainbowRalphing, CatPotatoCat, CatBeardCat, CatCattermelon:
		return true
	}
	return false
}

func (k Kind) IsAction() bool {
	switch k {
	case Skip, SeeTheFuture, Shuffle, Attack, Favor, Nope:
		return true
	}
	return false
}

func (k Kind) IsHazard() bool { return k == ExplodingKitten }
func (k Kind) IsDefuse() bool { return k == Defuse }

// IsComboEligible reports whether k may participate in a 2/3-of-a-kind or
// 5-unique combo. Defuse and ExplodingKitten are excluded per §3.
func (k Kind) IsComboEligible() bool {
	return k != KindInvalid && k != Defuse && k != ExplodingKitten
}

// Card is the value object described in spec §3: a bare wrapper around a
// Kind. Cards carry no identity beyond their kind.
type Card struct {
	Kind Kind
}

func New(k Kind) Card { return Card{Kind: k} }

func (c Card) String() string { return c.Kind.String() }

// Equal reports whether two cards are interchangeable (same kind).
func (c Card) Equal(other Card) bool { return c.Kind == other.Kind }
