package engine

import "kittenmatch/card"

// Participant is one seat in the match (§3). Its hand and aliveness are
// engine-owned state; only the engine mutates them, never the bot.
type Participant struct {
	ID          string
	DisplayName string

	hand           *card.Pile
	alive          bool
	turnsRemaining int

	bot Bot
}

func newParticipant(id, name string, bot Bot) *Participant {
	return &Participant{
		ID:             id,
		DisplayName:    name,
		hand:           card.NewPile(),
		alive:          true,
		turnsRemaining: 1,
		bot:            bot,
	}
}

func (p *Participant) HandSize() int { return p.hand.Len() }
