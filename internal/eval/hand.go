package eval

import (
	"sort"

	"github.com/lox/holdemtable/internal/deck"
)

// Hand is the up-to-seven-card set a single seat plays at showdown: the
// visible community cards plus the seat's hole cards.
type Hand struct {
	cards []deck.Card
}

// NewHand builds a hand from community and hole cards.
func NewHand(community, hole []deck.Card) *Hand {
	cards := make([]deck.Card, 0, len(community)+len(hole))
	cards = append(cards, community...)
	cards = append(cards, hole...)
	return &Hand{cards: cards}
}

func (h *Hand) sortByRank() []deck.Card {
	out := make([]deck.Card, len(h.cards))
	copy(out, h.cards)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Rank != out[j].Rank {
			return out[i].Rank < out[j].Rank
		}
		return out[i].Suit < out[j].Suit
	})
	return out
}

func (h *Hand) sortBySuit() []deck.Card {
	out := make([]deck.Card, len(h.cards))
	copy(out, h.cards)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Suit != out[j].Suit {
			return out[i].Suit < out[j].Suit
		}
		return out[i].Rank < out[j].Rank
	})
	return out
}

// matchCount counts cards sharing the card's rank in a different suit.
// A card belongs to the pair set when the count is exactly 1, the trip
// set at 2 and the quad set at 3; quad members are naturally excluded
// from the pair and trip sets.
func (h *Hand) matchCount(card deck.Card) int {
	count := 0
	for _, other := range h.cards {
		if other.Rank == card.Rank && other.Suit != card.Suit {
			count++
		}
	}
	return count
}

func (h *Hand) cardsMatching(n int) []deck.Card {
	var out []deck.Card
	for _, card := range h.sortByRank() {
		if h.matchCount(card) == n {
			out = append(out, card)
		}
	}
	return out
}

func (h *Hand) pairs() []deck.Card { return h.cardsMatching(1) }
func (h *Hand) trips() []deck.Card { return h.cardsMatching(2) }
func (h *Hand) quads() []deck.Card { return h.cardsMatching(3) }

// straightHigh scans rank-sorted cards for a run of five or more where
// each next rank is exactly one higher; equal ranks are skipped without
// breaking the run. It returns the highest rank completing such a run.
// The ace only participates as the highest rank: there is no ace-low
// wheel.
func straightHigh(cards []deck.Card) (deck.Rank, bool) {
	best := deck.Rank(-1)
	found := false

	for i := 0; i+4 < len(cards); i++ {
		length := 1
		last := cards[i].Rank
		for j := i + 1; j < len(cards); j++ {
			rank := cards[j].Rank
			if rank == last {
				continue
			}
			if rank == last+1 {
				length++
				last = rank
				continue
			}
			break
		}
		if length >= 5 && last > best {
			best = last
			found = true
		}
	}

	return best, found
}

// flushCards returns every card of a suit holding five or more cards,
// rank ascending, or nil when no suit qualifies.
func (h *Hand) flushCards() []deck.Card {
	bySuit := h.sortBySuit()
	for start := 0; start < len(bySuit); {
		end := start
		for end < len(bySuit) && bySuit[end].Suit == bySuit[start].Suit {
			end++
		}
		if end-start >= 5 {
			return bySuit[start:end]
		}
		start = end
	}
	return nil
}

func tiebreak(rank deck.Rank) int {
	return int(rank) + 1
}

// CheckHighCard scores category 1 on the highest rank held.
func (h *Hand) CheckHighCard() Score {
	byRank := h.sortByRank()
	if len(byRank) == 0 {
		return newScore(CategoryHighCard, 0)
	}
	return newScore(CategoryHighCard, tiebreak(byRank[len(byRank)-1].Rank))
}

// CheckPair scores category 2 on the highest pair.
func (h *Hand) CheckPair() Score {
	pairs := h.pairs()
	if len(pairs) == 0 {
		return newScore(CategoryPair, 0)
	}
	return newScore(CategoryPair, tiebreak(pairs[len(pairs)-1].Rank))
}

// CheckTwoPairs scores category 3 on the two highest pairs.
func (h *Hand) CheckTwoPairs() Score {
	pairs := h.pairs()
	if len(pairs) < 4 {
		return newScore(CategoryTwoPairs, 0)
	}
	high := pairs[len(pairs)-1].Rank
	second := pairs[len(pairs)-3].Rank
	return newScore(CategoryTwoPairs, tiebreak(high), tiebreak(second))
}

// CheckThreeOfAKind scores category 4 on the highest trip.
func (h *Hand) CheckThreeOfAKind() Score {
	trips := h.trips()
	if len(trips) == 0 {
		return newScore(CategoryThreeOfAKind, 0)
	}
	return newScore(CategoryThreeOfAKind, tiebreak(trips[len(trips)-1].Rank))
}

// CheckStraight scores category 5 on the straight's completing card.
func (h *Hand) CheckStraight() Score {
	high, ok := straightHigh(h.sortByRank())
	if !ok {
		return newScore(CategoryStraight, 0)
	}
	return newScore(CategoryStraight, tiebreak(high))
}

// CheckFlush scores category 6 on the top five ranks of the qualifying
// suit, descending.
func (h *Hand) CheckFlush() Score {
	flush := h.flushCards()
	if flush == nil {
		return newScore(CategoryFlush, 0)
	}
	tiebreaks := make([]int, 0, 5)
	for i := len(flush) - 1; i >= len(flush)-5; i-- {
		tiebreaks = append(tiebreaks, tiebreak(flush[i].Rank))
	}
	return newScore(CategoryFlush, tiebreaks...)
}

// CheckFullHouse scores category 7 when a qualifying trip and pair are
// present simultaneously.
func (h *Hand) CheckFullHouse() Score {
	pairs := h.pairs()
	trips := h.trips()
	if len(pairs) == 0 || len(trips) == 0 {
		return newScore(CategoryFullHouse, 0)
	}
	return newScore(CategoryFullHouse,
		tiebreak(trips[len(trips)-1].Rank),
		tiebreak(pairs[len(pairs)-1].Rank))
}

// CheckFourOfAKind scores category 8 on the quad rank.
func (h *Hand) CheckFourOfAKind() Score {
	quads := h.quads()
	if len(quads) == 0 {
		return newScore(CategoryFourOfAKind, 0)
	}
	return newScore(CategoryFourOfAKind, tiebreak(quads[len(quads)-1].Rank))
}

// CheckStraightFlush scores category 9 when the qualifying flush suit
// also contains a straight.
func (h *Hand) CheckStraightFlush() Score {
	flush := h.flushCards()
	if flush == nil {
		return newScore(CategoryStraightFlush, 0)
	}
	high, ok := straightHigh(flush)
	if !ok {
		return newScore(CategoryStraightFlush, 0)
	}
	return newScore(CategoryStraightFlush, tiebreak(high))
}

// Best returns the strongest score across all nine category checks.
// Absent categories score with the zero tiebreak sentinel and would win
// on category number alone, so they are skipped; high card is always
// present and serves as the floor.
func (h *Hand) Best() Score {
	checks := []func() Score{
		h.CheckPair,
		h.CheckTwoPairs,
		h.CheckThreeOfAKind,
		h.CheckStraight,
		h.CheckFlush,
		h.CheckFullHouse,
		h.CheckFourOfAKind,
		h.CheckStraightFlush,
	}

	best := h.CheckHighCard()
	for _, check := range checks {
		score := check()
		if score.absent() {
			continue
		}
		if score.Compare(best) > 0 {
			best = score
		}
	}
	return best
}
