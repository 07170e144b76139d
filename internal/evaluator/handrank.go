package evaluator

import (
	"fmt"
	"strings"

	"github.com/olivhe/cards/internal/deck"
)

// wheelLow is the rank the ace contributes at the bottom of an A-2-3-4-5
// straight. It only ever appears in tie-break sequences, never on a card.
const wheelLow = deck.Rank(1)

// HandRank is the comparable strength of an evaluated 5-card hand: a category
// plus a 5-element tie-break sequence. For multiplicity-based categories the
// sequence is the hand's ranks ordered by (count desc, rank desc); for
// straights it is the descending run with the wheel reported as 5-4-3-2-1.
// HandRank values are immutable once computed.
type HandRank struct {
	Category  Category
	TieBreaks [5]deck.Rank
}

// Compare returns 1 if h is stronger than other, -1 if weaker, 0 on an exact
// tie. Higher category wins outright; equal categories compare tie-break
// sequences lexicographically.
func (h HandRank) Compare(other HandRank) int {
	if h.Category != other.Category {
		if h.Category > other.Category {
			return 1
		}
		return -1
	}
	for i := range h.TieBreaks {
		if h.TieBreaks[i] != other.TieBreaks[i] {
			if h.TieBreaks[i] > other.TieBreaks[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}

// String returns the category name plus the tie-break ranks, e.g.
// "Full House [K K K J J]".
func (h HandRank) String() string {
	parts := make([]string, 0, len(h.TieBreaks))
	for _, r := range h.TieBreaks {
		if r == wheelLow {
			parts = append(parts, "A")
			continue
		}
		parts = append(parts, r.String())
	}
	return fmt.Sprintf("%s [%s]", h.Category, strings.Join(parts, " "))
}

// Describe returns a long description of the hand in prose, e.g.
// "Full house, Kings and Jacks" or "Straight, 4 to 8". An ace-high straight
// flush reads "Royal Flush"; that is display wording, not a tenth category.
func (h HandRank) Describe() string {
	tb := h.TieBreaks
	switch h.Category {
	case StraightFlush:
		if tb[0] == deck.Ace {
			return "Royal Flush"
		}
		return fmt.Sprintf("Straight Flush, %s to %s", straightLowName(tb), tb[0].Name(false))
	case FourOfAKind:
		return fmt.Sprintf("Four of a kind, %s", tb[0].Name(true))
	case FullHouse:
		return fmt.Sprintf("Full house, %s and %s", tb[0].Name(true), tb[3].Name(true))
	case Flush:
		return fmt.Sprintf("Flush, %s high", tb[0].Name(false))
	case Straight:
		return fmt.Sprintf("Straight, %s to %s", straightLowName(tb), tb[0].Name(false))
	case ThreeOfAKind:
		return fmt.Sprintf("Three of a kind, %s", tb[0].Name(true))
	case TwoPair:
		return fmt.Sprintf("Two pairs, %s and %s", tb[0].Name(true), tb[2].Name(true))
	case OnePair:
		return fmt.Sprintf("Pair, %s", tb[0].Name(true))
	case HighCard:
		return fmt.Sprintf("%s high", tb[0].Name(false))
	default:
		return "Unknown"
	}
}

func straightLowName(tb [5]deck.Rank) string {
	if tb[4] == wheelLow {
		return "1"
	}
	return tb[4].Name(false)
}
