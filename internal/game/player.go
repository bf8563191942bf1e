package game

import (
	"github.com/lox/holdemtable/internal/deck"
)

// Player represents a seat at the table. The name is unique within a
// table and immutable once seated; the seat persists across hands.
type Player struct {
	Name          string
	Stack         int
	HoleCards     []deck.Card
	Contributions map[Phase]int
	InRound       bool

	// folded tracks whether the seat folded during the current hand.
	// InRound is restored at endround in preparation for the next hand,
	// so showdown settlement needs its own record of who folded.
	folded bool
}

func newPlayer(name string, stack int) *Player {
	return &Player{
		Name:          name,
		Stack:         stack,
		Contributions: make(map[Phase]int),
		InRound:       true,
	}
}

// Credit increases the player's stack.
func (p *Player) Credit(amount int) {
	p.Stack += amount
}

// Commit moves amount from the stack into the phase's contribution
// bucket. Money only ever moves between the stack and contribution
// buckets, never created or destroyed. Commit does not check that the
// stack covers the amount; the table logs a warning when a stack goes
// negative (side pots and all-in settlement are not modelled).
func (p *Player) Commit(amount int, phase Phase) {
	p.Stack -= amount
	p.Contributions[phase] += amount
}

// ContributionFor returns the player's commitment in the given phase.
func (p *Player) ContributionFor(phase Phase) int {
	return p.Contributions[phase]
}

// TotalContribution returns the player's commitment across all phases.
func (p *Player) TotalContribution() int {
	total := 0
	for _, amount := range p.Contributions {
		total += amount
	}
	return total
}

func (p *Player) resetForNewHand() {
	p.HoleCards = nil
	p.Contributions = make(map[Phase]int)
	p.InRound = true
	p.folded = false
}
