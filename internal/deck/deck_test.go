package deck

import (
	"errors"
	"testing"

	"github.com/olivhe/cards/internal/randutil"
)

func TestNewDeckHas52DistinctCards(t *testing.T) {
	t.Parallel()
	d := New(randutil.New(1))

	if d.CardsRemaining() != Size {
		t.Fatalf("expected %d cards, got %d", Size, d.CardsRemaining())
	}

	seen := make(map[Card]bool)
	for _, c := range d.Remaining() {
		if seen[c] {
			t.Errorf("duplicate card in fresh deck: %s", c)
		}
		seen[c] = true
	}
	if len(seen) != Size {
		t.Errorf("expected %d distinct cards, got %d", Size, len(seen))
	}
}

func TestDealWithoutReplacement(t *testing.T) {
	t.Parallel()
	d := New(randutil.New(42))
	d.Shuffle()

	seen := make(map[Card]bool)
	var hands [3][]Card
	for i := range hands {
		hand, err := d.Deal(5)
		if err != nil {
			t.Fatalf("Deal(5) #%d failed: %v", i+1, err)
		}
		if len(hand) != 5 {
			t.Fatalf("Deal(5) returned %d cards", len(hand))
		}
		for _, c := range hand {
			if seen[c] {
				t.Errorf("card %s dealt twice", c)
			}
			seen[c] = true
		}
		hands[i] = hand
	}

	if len(seen) != 15 {
		t.Errorf("expected 15 distinct dealt cards, got %d", len(seen))
	}
	if d.CardsRemaining() != 37 {
		t.Errorf("expected 37 cards remaining, got %d", d.CardsRemaining())
	}
	for _, c := range d.Remaining() {
		if seen[c] {
			t.Errorf("remaining card %s was also dealt", c)
		}
	}
}

func TestDealInsufficientCards(t *testing.T) {
	t.Parallel()
	d := New(randutil.New(7))
	if _, err := d.Deal(50); err != nil {
		t.Fatalf("Deal(50) from full deck failed: %v", err)
	}

	_, err := d.Deal(5)
	if err == nil {
		t.Fatal("expected error dealing 5 from 2 remaining")
	}
	var insufficient *InsufficientCardsError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientCardsError, got %T", err)
	}
	if insufficient.Requested != 5 || insufficient.Remaining != 2 {
		t.Errorf("unexpected error fields: %+v", insufficient)
	}
	if d.CardsRemaining() != 2 {
		t.Errorf("failed deal must not consume cards, %d remaining", d.CardsRemaining())
	}
}

func TestShuffleIsSeedDeterministic(t *testing.T) {
	t.Parallel()
	d1 := New(randutil.New(99))
	d2 := New(randutil.New(99))
	d1.Shuffle()
	d2.Shuffle()

	a, _ := d1.Deal(52)
	b, _ := d2.Deal(52)
	if !cardsEqual(a, b) {
		t.Error("same seed should produce the same shuffle")
	}

	d3 := New(randutil.New(100))
	d3.Shuffle()
	c, _ := d3.Deal(52)
	if cardsEqual(a, c) {
		t.Error("different seeds should produce different shuffles")
	}
}

func TestReset(t *testing.T) {
	t.Parallel()
	d := New(randutil.New(5))
	d.Shuffle()
	if _, err := d.Deal(20); err != nil {
		t.Fatal(err)
	}

	d.Reset()
	if d.CardsRemaining() != Size {
		t.Errorf("expected %d cards after reset, got %d", Size, d.CardsRemaining())
	}
	seen := make(map[Card]bool)
	for _, c := range d.Remaining() {
		seen[c] = true
	}
	if len(seen) != Size {
		t.Errorf("expected %d distinct cards after reset, got %d", Size, len(seen))
	}
}
