package eval

import "testing"

func TestRankOrdersStrongestFirst(t *testing.T) {
	community := cards("2c", "5d", "9h", "Jc", "Qs")
	results := Rank(community, []Entrant{
		{Name: "alice", Hole: cards("Qd", "3h")}, // pair of queens
		{Name: "bob", Hole: cards("Ad", "3s")},   // ace high
		{Name: "carol", Hole: cards("Jd", "Js")}, // trip jacks
	})

	want := []string{"carol", "alice", "bob"}
	for i, name := range want {
		if results[i].Name != name {
			t.Errorf("Expected %s at position %d, got %s", name, i, results[i].Name)
		}
	}
	if results[0].Score != "4.10" {
		t.Errorf("Expected carol's trips 4.10, got %s", results[0].Score)
	}
	if results[1].Score != "2.11" {
		t.Errorf("Expected alice's pair 2.11, got %s", results[1].Score)
	}
	if results[2].Score != "1.13" {
		t.Errorf("Expected bob's ace high 1.13, got %s", results[2].Score)
	}
}

func TestWinnersSingle(t *testing.T) {
	community := cards("2c", "5d", "9h", "Jc", "Qs")
	results := Rank(community, []Entrant{
		{Name: "alice", Hole: cards("Qd", "3h")},
		{Name: "bob", Hole: cards("Ad", "3s")},
	})

	winners := Winners(results)
	if len(winners) != 1 || winners[0] != "alice" {
		t.Errorf("Expected [alice], got %v", winners)
	}
}

// Seats making the same hand from the community split, keeping their
// seating order.
func TestWinnersSplitPot(t *testing.T) {
	community := cards("Ah", "Kd", "Qc", "Js", "9h")
	results := Rank(community, []Entrant{
		{Name: "alice", Hole: cards("Tc", "2d")},
		{Name: "bob", Hole: cards("Td", "3c")},
		{Name: "carol", Hole: cards("2h", "3s")},
	})

	if results[0].Score != "5.13" || results[1].Score != "5.13" {
		t.Fatalf("Expected both straights at 5.13, got %s and %s",
			results[0].Score, results[1].Score)
	}

	winners := Winners(results)
	if len(winners) != 2 || winners[0] != "alice" || winners[1] != "bob" {
		t.Errorf("Expected [alice bob], got %v", winners)
	}
}

func TestWinnersEmpty(t *testing.T) {
	if winners := Winners(nil); winners != nil {
		t.Errorf("Expected no winners for no results, got %v", winners)
	}
}
