package evaluator

import (
	"fmt"
	"sort"

	"github.com/olivhe/cards/internal/deck"
)

// HandSize is the number of cards in an evaluated hand.
const HandSize = 5

// InvalidHandSizeError is returned by Evaluate when the input is not exactly
// five distinct cards. A precondition violation is reported rather than
// classified into a misleading rank.
type InvalidHandSizeError struct {
	Got       int
	Duplicate bool
}

func (e *InvalidHandSizeError) Error() string {
	if e.Duplicate {
		return fmt.Sprintf("hand has duplicate cards (%d distinct, want %d)", e.Got, HandSize)
	}
	return fmt.Sprintf("hand has %d cards, want %d", e.Got, HandSize)
}

// cardSet is a 52-bit set keyed by (rank, suit), used to detect duplicates.
type cardSet uint64

func cardIndex(c deck.Card) int {
	return int(c.Rank-deck.Two)*4 + int(c.Suit)
}

func (cs *cardSet) add(c deck.Card) bool {
	bit := cardSet(1) << cardIndex(c)
	if *cs&bit != 0 {
		return false
	}
	*cs |= bit
	return true
}

// Evaluate classifies a 5-card hand into its HandRank. It is a pure function
// and total over all valid inputs: every set of five distinct cards maps to
// exactly one category.
func Evaluate(cards []deck.Card) (HandRank, error) {
	if len(cards) != HandSize {
		return HandRank{}, &InvalidHandSizeError{Got: len(cards)}
	}

	var seen cardSet
	for _, c := range cards {
		if !seen.add(c) {
			distinct := countDistinct(cards)
			return HandRank{}, &InvalidHandSizeError{Got: distinct, Duplicate: true}
		}
	}

	counts := make(map[deck.Rank]int, HandSize)
	flush := true
	for i, c := range cards {
		counts[c.Rank]++
		if i > 0 && c.Suit != cards[0].Suit {
			flush = false
		}
	}

	// Distinct ranks ordered by (multiplicity desc, rank desc). This ordering
	// is the tie-break key for every multiplicity-based category.
	groups := make([]deck.Rank, 0, len(counts))
	for r := range counts {
		groups = append(groups, r)
	}
	sort.Slice(groups, func(i, j int) bool {
		ci, cj := counts[groups[i]], counts[groups[j]]
		if ci != cj {
			return ci > cj
		}
		return groups[i] > groups[j]
	})

	straightHigh := straightHighCard(groups, counts)

	category := classify(counts, groups, flush, straightHigh)

	var tb [5]deck.Rank
	if category == Straight || category == StraightFlush {
		for i := range tb {
			tb[i] = straightHigh - deck.Rank(i)
		}
	} else {
		i := 0
		for _, r := range groups {
			for n := 0; n < counts[r]; n++ {
				tb[i] = r
				i++
			}
		}
	}

	return HandRank{Category: category, TieBreaks: tb}, nil
}

// MustEvaluate evaluates a hand and panics on error (for tests)
func MustEvaluate(cards []deck.Card) HandRank {
	rank, err := Evaluate(cards)
	if err != nil {
		panic(fmt.Sprintf("failed to evaluate hand %v: %v", cards, err))
	}
	return rank
}

// straightHighCard returns the high card of the straight formed by the hand's
// ranks, or 0 when there is none. The wheel A-2-3-4-5 counts as a straight
// with high card 5.
func straightHighCard(groups []deck.Rank, counts map[deck.Rank]int) deck.Rank {
	if len(groups) != HandSize {
		return 0 // A repeated rank rules out any straight.
	}

	sorted := make([]deck.Rank, len(groups))
	copy(sorted, groups)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] > sorted[j] })

	run := true
	for i := 1; i < len(sorted); i++ {
		if sorted[i] != sorted[0]-deck.Rank(i) {
			run = false
			break
		}
	}
	if run {
		return sorted[0]
	}

	// Wheel: ace plays low under the 5-4-3-2 run.
	if sorted[0] == deck.Ace && sorted[1] == deck.Five &&
		sorted[2] == deck.Four && sorted[3] == deck.Three && sorted[4] == deck.Two {
		return deck.Five
	}

	return 0
}

// classify combines the flush/straight checks with the rank multiplicity
// distribution. The strongest applicable category wins.
func classify(counts map[deck.Rank]int, groups []deck.Rank, flush bool, straightHigh deck.Rank) Category {
	straight := straightHigh != 0

	switch {
	case straight && flush:
		return StraightFlush
	case counts[groups[0]] == 4:
		return FourOfAKind
	case counts[groups[0]] == 3 && counts[groups[1]] == 2:
		return FullHouse
	case flush:
		return Flush
	case straight:
		return Straight
	case counts[groups[0]] == 3:
		return ThreeOfAKind
	case counts[groups[0]] == 2 && counts[groups[1]] == 2:
		return TwoPair
	case counts[groups[0]] == 2:
		return OnePair
	default:
		return HighCard
	}
}

func countDistinct(cards []deck.Card) int {
	var seen cardSet
	n := 0
	for _, c := range cards {
		if seen.add(c) {
			n++
		}
	}
	return n
}
