// Package showdown orders the three hands of a round and determines the
// winner set. Comparison is delegated entirely to evaluator.HandRank, so the
// ordering here is a strict total preorder: distinct strengths order
// strictly, fully equal (category, tie-break) pairs tie.
package showdown

import (
	"sort"

	"github.com/olivhe/cards/internal/evaluator"
)

// NumPlayers is the number of hands in a showdown.
const NumPlayers = 3

// Result describes the outcome of comparing three hands.
type Result struct {
	// Ranks holds the evaluated rank per player, indexed by position-1.
	Ranks [NumPlayers]evaluator.HandRank

	// Order lists player positions (1..3) from strongest hand to weakest.
	// Equal hands keep ascending position order.
	Order [NumPlayers]int

	// Winners lists the positions holding the strongest hand. More than one
	// entry means an exact tie.
	Winners []int

	// TieBreakDepth is the number of tie-break elements that had to be
	// examined to separate the two strongest hands: 0 when their categories
	// already differed, 1..5 when a tie-break element decided, and 5 with
	// multiple winners on a full tie.
	TieBreakDepth int
}

// IsTie reports whether the round ended with more than one winner.
func (r Result) IsTie() bool {
	return len(r.Winners) > 1
}

// Resolve compares exactly three hand ranks and produces the round's
// ordering and winner set. It has no failure mode: three valid ranks always
// determine an outcome.
func Resolve(ranks [NumPlayers]evaluator.HandRank) Result {
	res := Result{Ranks: ranks}

	for i := range res.Order {
		res.Order[i] = i + 1
	}
	sort.SliceStable(res.Order[:], func(i, j int) bool {
		a := ranks[res.Order[i]-1]
		b := ranks[res.Order[j]-1]
		return a.Compare(b) > 0
	})

	best := ranks[res.Order[0]-1]
	for _, pos := range res.Order {
		if ranks[pos-1].Compare(best) == 0 {
			res.Winners = append(res.Winners, pos)
		}
	}
	sort.Ints(res.Winners)

	res.TieBreakDepth = tieBreakDepth(best, ranks[res.Order[1]-1])
	return res
}

// tieBreakDepth reports how deep into the tie-break sequence the comparison
// of the two strongest hands had to go.
func tieBreakDepth(best, runnerUp evaluator.HandRank) int {
	if best.Category != runnerUp.Category {
		return 0
	}
	for i := range best.TieBreaks {
		if best.TieBreaks[i] != runnerUp.TieBreaks[i] {
			return i + 1
		}
	}
	return len(best.TieBreaks)
}
