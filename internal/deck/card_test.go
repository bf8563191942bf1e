package deck

import (
	"testing"
)

func TestRankOrdering(t *testing.T) {
	if Two != 0 {
		t.Errorf("Two should be rank 0, got %d", Two)
	}
	if King != 11 {
		t.Errorf("King should be rank 11, got %d", King)
	}
	if Ace != 12 {
		t.Errorf("Ace should be rank 12, got %d", Ace)
	}
	if !(Ace > King && King > Queen && Queen > Jack) {
		t.Error("Face card ordering is wrong")
	}
}

func TestParseCard(t *testing.T) {
	tests := []struct {
		input string
		want  Card
	}{
		{"As", Card{Spades, Ace}},
		{"Kh", Card{Hearts, King}},
		{"Td", Card{Diamonds, Ten}},
		{"2c", Card{Clubs, Two}},
		{"9D", Card{Diamonds, Nine}},
		{"qC", Card{Clubs, Queen}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCard(tt.input)
			if err != nil {
				t.Fatalf("ParseCard(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseCard(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseCardInvalid(t *testing.T) {
	for _, input := range []string{"", "A", "Asx", "1s", "Ax"} {
		if _, err := ParseCard(input); err == nil {
			t.Errorf("ParseCard(%q) should fail", input)
		}
	}
}

func TestCardString(t *testing.T) {
	card := NewCard(Spades, Ace)
	if card.String() != "A♠" {
		t.Errorf("Expected A♠, got %s", card.String())
	}
	card = NewCard(Diamonds, Ten)
	if card.String() != "T♦" {
		t.Errorf("Expected T♦, got %s", card.String())
	}
}

func TestCardEquality(t *testing.T) {
	a := NewCard(Hearts, King)
	b := MustParseCard("Kh")
	if a != b {
		t.Errorf("Expected %v == %v", a, b)
	}
}
