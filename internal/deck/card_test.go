package deck

import "testing"

func TestCardString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		card     Card
		short    string
		long     string
	}{
		{NewCard(Spades, Ace), "A♠", "Ace of spades"},
		{NewCard(Clubs, Two), "2♣", "2 of clubs"},
		{NewCard(Hearts, Ten), "T♥", "10 of hearts"},
		{NewCard(Diamonds, Queen), "Q♦", "Queen of diamonds"},
	}

	for _, tt := range tests {
		if got := tt.card.String(); got != tt.short {
			t.Errorf("String() = %q, want %q", got, tt.short)
		}
		if got := tt.card.Describe(); got != tt.long {
			t.Errorf("Describe() = %q, want %q", got, tt.long)
		}
	}
}

func TestRankName(t *testing.T) {
	t.Parallel()
	tests := []struct {
		rank   Rank
		plural bool
		want   string
	}{
		{Ace, false, "Ace"},
		{Ace, true, "Aces"},
		{King, true, "Kings"},
		{Ten, false, "10"},
		{Ten, true, "10s"},
		{Two, true, "2s"},
	}

	for _, tt := range tests {
		if got := tt.rank.Name(tt.plural); got != tt.want {
			t.Errorf("Rank(%d).Name(%v) = %q, want %q", tt.rank, tt.plural, got, tt.want)
		}
	}
}

func TestParseCards(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		expected []Card
		wantErr  bool
	}{
		{
			name:  "royal flush",
			input: "AsKsQsJsTs",
			expected: []Card{
				{Suit: Spades, Rank: Ace},
				{Suit: Spades, Rank: King},
				{Suit: Spades, Rank: Queen},
				{Suit: Spades, Rank: Jack},
				{Suit: Spades, Rank: Ten},
			},
		},
		{
			name:  "mixed suits",
			input: "AhKdQcJs9s",
			expected: []Card{
				{Suit: Hearts, Rank: Ace},
				{Suit: Diamonds, Rank: King},
				{Suit: Clubs, Rank: Queen},
				{Suit: Spades, Rank: Jack},
				{Suit: Spades, Rank: Nine},
			},
		},
		{
			name:  "case insensitive",
			input: "asKHqDjc",
			expected: []Card{
				{Suit: Spades, Rank: Ace},
				{Suit: Hearts, Rank: King},
				{Suit: Diamonds, Rank: Queen},
				{Suit: Clubs, Rank: Jack},
			},
		},
		{
			name:    "invalid rank",
			input:   "XsKs",
			wantErr: true,
		},
		{
			name:    "invalid suit",
			input:   "AsKx",
			wantErr: true,
		},
		{
			name:    "odd length",
			input:   "AsK",
			wantErr: true,
		},
		{
			name:     "empty string",
			input:    "",
			expected: []Card{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCards(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseCards() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && !cardsEqual(got, tt.expected) {
				t.Errorf("ParseCards() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestMustParseCards(t *testing.T) {
	t.Parallel()
	cards := MustParseCards("AsKs")
	expected := []Card{
		{Suit: Spades, Rank: Ace},
		{Suit: Spades, Rank: King},
	}
	if !cardsEqual(cards, expected) {
		t.Errorf("MustParseCards() = %v, want %v", cards, expected)
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("MustParseCards() should panic on invalid input")
		}
	}()
	MustParseCards("invalid")
}

func cardsEqual(a, b []Card) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Rank != b[i].Rank || a[i].Suit != b[i].Suit {
			return false
		}
	}
	return true
}
