package game

import (
	"testing"
)

func TestShowdownOnlyAtEndround(t *testing.T) {
	table := newTestTable(t, "alice", "bob")
	mustStart(t, table)

	_, err := table.Showdown()
	if !IsErrorID(err, ErrInexistentPhase) {
		t.Errorf("Expected InexistentPhase before endround, got %v", err)
	}
}

func TestShowdownRanksAllContenders(t *testing.T) {
	table := newTestTable(t, "alice", "bob")
	mustStart(t, table)
	playToEndround(t, table)

	rankings, err := table.Showdown()
	if err != nil {
		t.Fatalf("Showdown: %v", err)
	}
	if len(rankings) != 2 {
		t.Fatalf("Expected 2 ranked seats, got %d", len(rankings))
	}
	for i := 1; i < len(rankings); i++ {
		if rankings[i-1].Score.Compare(rankings[i].Score) < 0 {
			t.Errorf("Rankings out of order: %s before %s", rankings[i-1].Score, rankings[i].Score)
		}
	}
}

func TestShowdownExcludesFoldedSeats(t *testing.T) {
	table := newTestTable(t, "alice", "bob", "carol")
	mustStart(t, table)

	if err := table.Fold("alice", nil); err != nil {
		t.Fatalf("Fold: %v", err)
	}
	playToEndround(t, table)

	rankings, err := table.Showdown()
	if err != nil {
		t.Fatalf("Showdown: %v", err)
	}
	if len(rankings) != 2 {
		t.Fatalf("Expected 2 contenders with alice folded, got %d", len(rankings))
	}
	for _, r := range rankings {
		if r.Name == "alice" {
			t.Error("Folded seat must not reach showdown")
		}
	}
}

func TestSettleDistributesPot(t *testing.T) {
	table := newTestTable(t, "alice", "bob")
	mustStart(t, table)
	playToEndround(t, table)

	settlement, err := table.Settle()
	if err != nil {
		t.Fatalf("Settle: %v", err)
	}

	// Blinds called, every street checked through: 20 a head.
	if settlement.Pot != 40 {
		t.Errorf("Expected pot 40, got %d", settlement.Pot)
	}
	total := 0
	for _, share := range settlement.Shares {
		total += share
	}
	if total != settlement.Pot {
		t.Errorf("Shares sum to %d, want the pot %d", total, settlement.Pot)
	}
	if sum := table.TableSum(); sum != 2000 {
		t.Errorf("Conservation violated by settlement: funds %d", sum)
	}

	// Contribution buckets are emptied into stacks.
	for _, p := range table.Players() {
		if p.TotalContribution() != 0 {
			t.Errorf("Expected %s's contributions cleared, got %d", p.Name, p.TotalContribution())
		}
	}
}

func TestSettleTwice(t *testing.T) {
	table := newTestTable(t, "alice", "bob")
	mustStart(t, table)
	playToEndround(t, table)

	if _, err := table.Settle(); err != nil {
		t.Fatalf("Settle: %v", err)
	}
	if _, err := table.Settle(); err == nil {
		t.Error("Expected second settle to fail")
	}
}

func TestNextHandResetsTable(t *testing.T) {
	table := newTestTable(t, "alice", "bob")
	mustStart(t, table)
	playToEndround(t, table)
	if _, err := table.Settle(); err != nil {
		t.Fatalf("Settle: %v", err)
	}

	if err := table.NextHand(); err != nil {
		t.Fatalf("NextHand: %v", err)
	}

	if table.CurrentPhase() != PhaseStart {
		t.Errorf("Expected start phase, got %s", table.CurrentPhase())
	}
	if table.ButtonSeat() != "bob" {
		t.Errorf("Expected button advanced to bob, got %s", table.ButtonSeat())
	}
	if len(table.History()) != 0 {
		t.Errorf("Expected history cleared, got %d entries", len(table.History()))
	}
	for _, p := range table.Players() {
		if len(p.HoleCards) != 0 {
			t.Errorf("Expected %s's hole cards cleared", p.Name)
		}
		if p.TotalContribution() != 0 {
			t.Errorf("Expected %s's contributions cleared", p.Name)
		}
	}
	if sum := table.TableSum(); sum != 2000 {
		t.Errorf("Conservation violated across hands: funds %d", sum)
	}

	// The next hand runs with the rotated button: bob posts the big
	// blind and alice the small blind.
	mustStart(t, table)
	players := table.Players()
	if got := players[0].ContributionFor(PhasePreFlop); got != 10 {
		t.Errorf("Expected alice on the small blind, got %d", got)
	}
	if got := players[1].ContributionFor(PhasePreFlop); got != 20 {
		t.Errorf("Expected bob on the big blind, got %d", got)
	}
}

// Resetting an unsettled hand would zero the contribution buckets with
// the pot still in them, destroying money.
func TestNextHandRequiresSettlement(t *testing.T) {
	table := newTestTable(t, "alice", "bob")
	mustStart(t, table)
	playToEndround(t, table)

	if err := table.NextHand(); err == nil {
		t.Fatal("Expected NextHand to fail before settlement")
	}
	if table.CurrentPhase() != PhaseEndRound {
		t.Errorf("Rejected reset must not change phase, got %s", table.CurrentPhase())
	}
	if sum := table.TableSum(); sum != 2000 {
		t.Errorf("Conservation violated: funds %d, want 2000", sum)
	}

	if _, err := table.Settle(); err != nil {
		t.Fatalf("Settle: %v", err)
	}
	if err := table.NextHand(); err != nil {
		t.Fatalf("NextHand after settlement: %v", err)
	}
	if sum := table.TableSum(); sum != 2000 {
		t.Errorf("Conservation violated after reset: funds %d, want 2000", sum)
	}
}

func TestNextHandMidHand(t *testing.T) {
	table := newTestTable(t, "alice", "bob")
	mustStart(t, table)

	err := table.NextHand()
	if !IsErrorID(err, ErrGameAlreadyStarted) {
		t.Errorf("Expected GameAlreadyStarted mid-hand, got %v", err)
	}
}

func TestNextHandBeforeStart(t *testing.T) {
	table := newTestTable(t, "alice", "bob")
	err := table.NextHand()
	if !IsErrorID(err, ErrGameNotStarted) {
		t.Errorf("Expected GameNotStarted, got %v", err)
	}
}
