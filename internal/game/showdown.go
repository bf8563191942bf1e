package game

import (
	"fmt"

	"github.com/lox/holdemtable/internal/eval"
)

// Settlement records the outcome of a settled hand.
type Settlement struct {
	Rankings []eval.Result  // every contender, strongest first
	Winners  []string       // seats sharing the top score
	Pot      int            // total contributions distributed
	Shares   map[string]int // amount credited per winner
}

// Showdown ranks every seat that did not fold during the hand against
// the full community. Only available at endround.
func (t *Table) Showdown() ([]eval.Result, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.showdownRankings()
}

func (t *Table) showdownRankings() ([]eval.Result, error) {
	if t.phase != PhaseEndRound {
		return nil, newError(ErrInexistentPhase, "showdown is only available at endround, not %s", t.phase)
	}

	entrants := make([]eval.Entrant, 0, len(t.players))
	for _, p := range t.players {
		if p.folded {
			continue
		}
		entrants = append(entrants, eval.Entrant{Name: p.Name, Hole: p.HoleCards})
	}
	return eval.Rank(t.community, entrants), nil
}

// Settle runs the showdown and distributes the pot: every contribution
// bucket is emptied and the winners are credited equal shares, with any
// remainder chips going to the earliest winning seat after the button.
// Settling restores the conservation invariant into stacks alone.
func (t *Table) Settle() (*Settlement, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.settled {
		return nil, fmt.Errorf("hand already settled")
	}

	rankings, err := t.showdownRankings()
	if err != nil {
		return nil, err
	}

	winners := eval.Winners(rankings)
	if len(winners) == 0 {
		return nil, fmt.Errorf("no showdown contenders")
	}
	pot := 0
	for _, p := range t.players {
		pot += p.TotalContribution()
		p.Contributions = make(map[Phase]int)
	}

	shares := make(map[string]int, len(winners))
	share := pot / len(winners)
	remainder := pot % len(winners)
	for _, name := range winners {
		shares[name] = share
	}
	shares[t.firstWinnerAfterButton(winners)] += remainder

	for name, amount := range shares {
		t.players[t.position(name)].Credit(amount)
	}
	t.settled = true

	t.logger.Info("hand settled", "pot", pot, "winners", winners)
	return &Settlement{
		Rankings: rankings,
		Winners:  winners,
		Pot:      pot,
		Shares:   shares,
	}, nil
}

// firstWinnerAfterButton picks the winning seat closest after the button
// in rotation order.
func (t *Table) firstWinnerAfterButton(winners []string) string {
	isWinner := make(map[string]bool, len(winners))
	for _, name := range winners {
		isWinner[name] = true
	}

	for i := 1; i <= len(t.players); i++ {
		p := t.players[(t.button+i)%len(t.players)]
		if isWinner[p.Name] {
			return p.Name
		}
	}
	return winners[0]
}
