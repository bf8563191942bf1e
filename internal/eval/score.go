package eval

import (
	"strconv"
	"strings"
)

// Hand categories, weakest to strongest.
const (
	CategoryHighCard = iota + 1
	CategoryPair
	CategoryTwoPairs
	CategoryThreeOfAKind
	CategoryStraight
	CategoryFlush
	CategoryFullHouse
	CategoryFourOfAKind
	CategoryStraightFlush
)

// Score encodes a hand strength as "<category>.<tiebreak...>". A hand
// that does not contain the category carries the single tiebreak 0.
// Tiebreak values are one-based rank ordinals (Two=1 ... Ace=13).
type Score string

func newScore(category int, tiebreaks ...int) Score {
	var b strings.Builder
	b.WriteString(strconv.Itoa(category))
	for _, v := range tiebreaks {
		b.WriteByte('.')
		b.WriteString(strconv.Itoa(v))
	}
	return Score(b.String())
}

// Category returns the score's category number.
func (s Score) Category() int {
	parts := strings.SplitN(string(s), ".", 2)
	n, _ := strconv.Atoi(parts[0])
	return n
}

// Tiebreaks returns the score's tiebreak sequence.
func (s Score) Tiebreaks() []int {
	parts := strings.Split(string(s), ".")
	if len(parts) < 2 {
		return nil
	}
	out := make([]int, 0, len(parts)-1)
	for _, part := range parts[1:] {
		n, _ := strconv.Atoi(part)
		out = append(out, n)
	}
	return out
}

// absent reports whether the score is a category's "not present"
// sentinel: a single zero tiebreak. Real tiebreaks are one-based rank
// ordinals and never zero.
func (s Score) absent() bool {
	breaks := s.Tiebreaks()
	return len(breaks) == 1 && breaks[0] == 0
}

// Compare orders two scores: category number first, then the tiebreak
// sequences element by element, all compared numerically. It returns 1
// if s is stronger than other, -1 if weaker and 0 for a tie (split).
func (s Score) Compare(other Score) int {
	if c, o := s.Category(), other.Category(); c != o {
		return sign(c - o)
	}

	a, b := s.Tiebreaks(), other.Tiebreaks()
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return sign(a[i] - b[i])
		}
	}
	return sign(len(a) - len(b))
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}
