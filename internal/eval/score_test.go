package eval

import "testing"

func TestScoreCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b Score
		want int
	}{
		{"category wins", "9.0", "5.13", 1},
		{"category loses", "1.13", "2.1", -1},
		{"first tiebreak", "3.13.12", "3.13.11", 1},
		{"second tiebreak", "6.12.10.8.4.1", "6.12.10.8.4.2", -1},
		{"exact tie", "2.8", "2.8", 0},
		{"numeric not lexicographic", "5.13", "5.9", 1},
		{"longer sequence wins tie", "6.12.10", "6.12", 1},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := test.a.Compare(test.b); got != test.want {
				t.Errorf("Compare(%s, %s) = %d, want %d", test.a, test.b, got, test.want)
			}
			if got := test.b.Compare(test.a); got != -test.want {
				t.Errorf("Compare(%s, %s) = %d, want %d", test.b, test.a, got, -test.want)
			}
		})
	}
}

func TestScoreParts(t *testing.T) {
	s := Score("3.13.12")
	if s.Category() != CategoryTwoPairs {
		t.Errorf("Expected category %d, got %d", CategoryTwoPairs, s.Category())
	}
	breaks := s.Tiebreaks()
	if len(breaks) != 2 || breaks[0] != 13 || breaks[1] != 12 {
		t.Errorf("Expected tiebreaks [13 12], got %v", breaks)
	}
}
