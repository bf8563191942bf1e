package simulator

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/holdemtable/internal/game"
	"github.com/lox/holdemtable/internal/randutil"
)

// Config controls a simulation run.
type Config struct {
	Tables     int   // number of tables run in parallel
	Hands      int   // hands played per table
	Seats      int   // seats per table
	BuyIn      int
	SmallBlind int
	BigBlind   int
	Seed       int64
}

// Results aggregates a simulation run across all tables.
type Results struct {
	Hands   int
	Actions int
	Wins    map[string]int // hands won per seat name, ties counted for each winner
}

// maxActionsPerHand bounds a single hand so a broken policy cannot spin
// forever.
const maxActionsPerHand = 10000

// Run plays cfg.Hands hands on cfg.Tables tables, each table on its own
// goroutine with its own deterministic RNG. The money conservation
// invariant is checked after every action; a violation aborts the run.
func Run(ctx context.Context, cfg Config, logger *log.Logger) (*Results, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.Tables < 1 || cfg.Hands < 1 || cfg.Seats < 2 {
		return nil, fmt.Errorf("simulator: need at least 1 table, 1 hand and 2 seats")
	}

	results := &Results{Wins: make(map[string]int)}
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < cfg.Tables; i++ {
		g.Go(func() error {
			r, err := runTable(ctx, cfg, int64(i), logger.With("table", i))
			if err != nil {
				return fmt.Errorf("table %d: %w", i, err)
			}
			mu.Lock()
			results.Hands += r.Hands
			results.Actions += r.Actions
			for name, wins := range r.Wins {
				results.Wins[name] += wins
			}
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runTable(ctx context.Context, cfg Config, tableNum int64, logger *log.Logger) (*Results, error) {
	table := game.NewTable(
		randutil.New(cfg.Seed+tableNum),
		cfg.BuyIn, cfg.SmallBlind, cfg.BigBlind,
		game.WithLogger(logger),
	)

	for seat := 1; seat <= cfg.Seats; seat++ {
		if err := table.SeatPlayer(fmt.Sprintf("seat-%d", seat)); err != nil {
			return nil, err
		}
	}

	decisions := randutil.New(cfg.Seed ^ (tableNum+1)*0x5deece66d)
	results := &Results{Wins: make(map[string]int)}
	expectedSum := cfg.Seats * cfg.BuyIn

	for hand := 0; hand < cfg.Hands; hand++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if err := table.StartGame(); err != nil {
			return nil, err
		}

		actions, err := PlayHand(table, decisions, maxActionsPerHand)
		if err != nil {
			return nil, err
		}
		results.Actions += actions

		if sum := table.TableSum(); sum != expectedSum {
			return nil, fmt.Errorf("conservation violated after hand %d: funds %d, want %d", hand, sum, expectedSum)
		}

		settlement, err := table.Settle()
		if err != nil {
			return nil, err
		}
		for _, name := range settlement.Winners {
			results.Wins[name]++
		}
		if sum := table.TableSum(); sum != expectedSum {
			return nil, fmt.Errorf("conservation violated by settlement of hand %d: funds %d, want %d", hand, sum, expectedSum)
		}

		results.Hands++
		if err := table.NextHand(); err != nil {
			return nil, err
		}
	}

	return results, nil
}

// PlayHand drives a started table to endround with random legal actions:
// mostly checks and calls, occasional minimum raises and folds. It
// verifies the conservation invariant after every action and returns the
// number of actions taken.
func PlayHand(table *game.Table, rng *rand.Rand, maxActions int) (int, error) {
	expectedSum := table.TableSum()

	for actions := 0; ; actions++ {
		if actions >= maxActions {
			return actions, fmt.Errorf("hand exceeded %d actions", maxActions)
		}

		name, err := table.CurrentSeat()
		if err != nil {
			if game.IsErrorID(err, game.ErrGameNotStarted) {
				// No active turn left: the hand reached endround.
				return actions, nil
			}
			return actions, err
		}

		// Openings go through Raise: only a raise moves the current bet,
		// so raise-then-call sequences always converge the phase.
		switch roll := rng.Intn(100); {
		case roll < 10 && inRoundCount(table) > 1:
			// The turn rotation needs at least one live seat, so the
			// last one never folds.
			err = table.Fold(name, nil)
		case roll < 25:
			err = table.Raise(name, nil, table.CurrentBet()+table.BigBlind())
		default:
			// Check or call depending on the outstanding bet.
			err = table.Bet(name, nil, 0)
		}
		if err != nil {
			return actions, err
		}

		if sum := table.TableSum(); sum != expectedSum {
			return actions, fmt.Errorf("conservation violated after action %d: funds %d, want %d", actions, sum, expectedSum)
		}
	}
}

func inRoundCount(table *game.Table) int {
	count := 0
	for _, p := range table.Players() {
		if p.InRound {
			count++
		}
	}
	return count
}
