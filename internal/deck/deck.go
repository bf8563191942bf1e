package deck

import (
	"math/rand"
)

// Size is the number of cards in a full deck.
const Size = 52

// Deck represents a standard 52-card draw pile. Cards are drawn from the
// top (the end of the slice), so an unshuffled deck yields cards in
// reverse generation order.
type Deck struct {
	cards []Card
	rng   *rand.Rand // Random source for deterministic shuffling
}

// New creates a full deck in canonical generation order with an explicit
// RNG. The deck is not shuffled; call Shuffle before dealing.
func New(rng *rand.Rand) *Deck {
	d := &Deck{
		cards: make([]Card, 0, Size),
		rng:   rng,
	}
	for rank := Two; rank <= Ace; rank++ {
		for suit := Clubs; suit <= Spades; suit++ {
			d.cards = append(d.cards, NewCard(suit, rank))
		}
	}
	return d
}

// Shuffle permutes the deck in place, visiting every index from last to
// first and swapping with a uniformly chosen index across the whole deck.
func (d *Deck) Shuffle() {
	for i := len(d.cards) - 1; i >= 0; i-- {
		j := d.rng.Intn(len(d.cards))
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// DrawTop removes and returns the top card. Drawing from an empty deck is
// a programming error: table seat limits guarantee at most 28 cards are
// ever consumed in a hand.
func (d *Deck) DrawTop() Card {
	if len(d.cards) == 0 {
		panic("deck: draw from empty deck")
	}
	card := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return card
}

// CardsRemaining returns the number of cards left in the deck
func (d *Deck) CardsRemaining() int {
	return len(d.cards)
}

// Reset restores the deck to a full 52-card pile in canonical order.
func (d *Deck) Reset() {
	d.cards = d.cards[:0]
	for rank := Two; rank <= Ace; rank++ {
		for suit := Clubs; suit <= Spades; suit++ {
			d.cards = append(d.cards, NewCard(suit, rank))
		}
	}
}
