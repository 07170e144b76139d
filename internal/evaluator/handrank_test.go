package evaluator

import (
	"testing"

	"github.com/olivhe/cards/internal/deck"
)

func TestHandRankDescribe(t *testing.T) {
	t.Parallel()
	tests := []struct {
		cards string
		want  string
	}{
		{"AcKcQcJcTc", "Royal Flush"},
		{"KcQcJcTc9c", "Straight Flush, 9 to King"},
		{"Ah2h3h4h5h", "Straight Flush, 1 to 5"},
		{"KcKhKdKsJh", "Four of a kind, Kings"},
		{"KcKhKdJsJh", "Full house, Kings and Jacks"},
		{"KcQcJc7c4c", "Flush, King high"},
		{"4c5h6d7s8h", "Straight, 4 to 8"},
		{"Ah2c3d4s5h", "Straight, 1 to 5"},
		{"TcJhQdKsAh", "Straight, 10 to Ace"},
		{"KcKhKd7sJh", "Three of a kind, Kings"},
		{"AcAhKdJsJh", "Two pairs, Aces and Jacks"},
		{"3c3h5dJs7h", "Pair, 3s"},
		{"AcKh5dJs7h", "Ace high"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			rank := MustEvaluate(deck.MustParseCards(tt.cards))
			if got := rank.Describe(); got != tt.want {
				t.Errorf("Describe() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHandRankString(t *testing.T) {
	t.Parallel()
	rank := MustEvaluate(deck.MustParseCards("KcKhKdJsJh"))
	if got := rank.String(); got != "Full House [K K K J J]" {
		t.Errorf("String() = %q", got)
	}

	wheel := MustEvaluate(deck.MustParseCards("Ah2c3d4s5h"))
	if got := wheel.String(); got != "Straight [5 4 3 2 A]" {
		t.Errorf("String() = %q", got)
	}
}

func TestCompareIsAntisymmetric(t *testing.T) {
	t.Parallel()
	a := MustEvaluate(deck.MustParseCards("AcAhKd9s7h"))
	b := MustEvaluate(deck.MustParseCards("KcKhQd9s7h"))

	if a.Compare(b) != 1 || b.Compare(a) != -1 {
		t.Error("compare should invert when operands swap")
	}
	if a.Compare(a) != 0 {
		t.Error("compare should be reflexive")
	}
}

func TestCategoryString(t *testing.T) {
	t.Parallel()
	want := []string{
		"High Card", "One Pair", "Two Pair", "Three of a Kind", "Straight",
		"Flush", "Full House", "Four of a Kind", "Straight Flush",
	}
	for c := HighCard; c <= StraightFlush; c++ {
		if got := c.String(); got != want[c] {
			t.Errorf("Category(%d).String() = %q, want %q", c, got, want[c])
		}
	}
}
