package game

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/coder/quartz"
)

func TestTurnTimeoutFoldsSeat(t *testing.T) {
	ctx := context.Background()
	mClock := quartz.NewMock(t)

	var events []ActionEvent
	table := NewTable(rand.New(rand.NewSource(7)), 1000, 10, 20,
		WithTurnTimeout(mClock, 30*time.Second),
		WithActionHandler(func(ev ActionEvent) { events = append(events, ev) }))
	for _, name := range []string{"alice", "bob"} {
		if err := table.SeatPlayer(name); err != nil {
			t.Fatalf("SeatPlayer: %v", err)
		}
	}
	mustStart(t, table)

	// bob holds the turn and never acts.
	mClock.Advance(30 * time.Second).MustWait(ctx)

	if len(events) != 1 {
		t.Fatalf("Expected one auto-fold event, got %d", len(events))
	}
	if events[0].Seat != "bob" || events[0].Action != ActionFold {
		t.Errorf("Expected bob folded by timeout, got %+v", events[0])
	}

	// With bob out, his fold closes pre-flop and alice is up.
	if table.CurrentPhase() != PhaseFlop {
		t.Errorf("Expected flop after timeout fold, got %s", table.CurrentPhase())
	}
	turn, err := table.CurrentSeat()
	if err != nil {
		t.Fatalf("CurrentSeat: %v", err)
	}
	if turn != "alice" {
		t.Errorf("Expected alice on turn, got %s", turn)
	}
}

func TestTurnTimeoutRearmsPerTurn(t *testing.T) {
	ctx := context.Background()
	mClock := quartz.NewMock(t)

	table := NewTable(rand.New(rand.NewSource(7)), 1000, 10, 20,
		WithTurnTimeout(mClock, 30*time.Second))
	for _, name := range []string{"alice", "bob"} {
		if err := table.SeatPlayer(name); err != nil {
			t.Fatalf("SeatPlayer: %v", err)
		}
	}
	mustStart(t, table)

	// bob acts well before his deadline; the pending timer must not
	// fold alice when it expires.
	mClock.Advance(10 * time.Second).MustWait(ctx)
	if err := table.Bet("bob", nil, 0); err != nil {
		t.Fatalf("Bet: %v", err)
	}

	mClock.Advance(25 * time.Second).MustWait(ctx)
	turn, err := table.CurrentSeat()
	if err != nil {
		t.Fatalf("CurrentSeat: %v", err)
	}
	if turn != "alice" {
		t.Errorf("Expected alice still on turn, got %s", turn)
	}
	if alice := table.Players()[0]; !alice.InRound {
		t.Error("alice must not be folded by bob's stale timer")
	}

	// alice's own 30 seconds run out 40s after the hand started.
	mClock.Advance(5 * time.Second).MustWait(ctx)
	if table.CurrentPhase() != PhaseFlop {
		t.Errorf("Expected flop after alice's timeout fold, got %s", table.CurrentPhase())
	}
}
