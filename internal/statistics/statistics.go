// Package statistics accumulates aggregate counters across simulated rounds.
// The simulator exclusively owns and mutates one AggregateStats per run;
// parallel runs build per-worker partials and combine them with Merge.
package statistics

import (
	"fmt"
	"math"

	"github.com/olivhe/cards/internal/evaluator"
)

// NumPositions is the number of player positions per round.
const NumPositions = 3

// TiePolicy selects how tied rounds credit the winners column. This is a
// reporting decision, not an evaluation one: the evaluator and showdown stay
// policy-free.
type TiePolicy int

const (
	// CountAll credits every tied player a full win.
	CountAll TiePolicy = iota
	// SplitCredit divides one win evenly among the tied players.
	SplitCredit
)

// String returns the policy's config-file name.
func (p TiePolicy) String() string {
	switch p {
	case CountAll:
		return "count-all"
	case SplitCredit:
		return "split"
	default:
		return "unknown"
	}
}

// ParseTiePolicy converts a config-file name to a TiePolicy.
func ParseTiePolicy(s string) (TiePolicy, error) {
	switch s {
	case "count-all", "":
		return CountAll, nil
	case "split":
		return SplitCredit, nil
	default:
		return 0, fmt.Errorf("unknown tie policy %q (want count-all or split)", s)
	}
}

// RoundResult is the per-round record the simulator feeds into the aggregate.
type RoundResult struct {
	Ranks   [NumPositions]evaluator.HandRank
	Winners []int // positions 1..NumPositions holding the strongest hand
}

// AggregateStats tracks counters across rounds: how often each hand category
// occurred and how often each position won. Win counts are float64 so the
// split-credit tie policy can award fractions.
type AggregateStats struct {
	Policy TiePolicy

	Rounds int
	Hands  int
	Ties   int

	Categories [evaluator.NumCategories]int
	Wins       [NumPositions + 1]float64 // index 0 unused, 1..NumPositions
}

// New creates an empty aggregate using the given tie policy.
func New(policy TiePolicy) *AggregateStats {
	return &AggregateStats{Policy: policy}
}

// Add folds one round's result into the aggregate.
func (s *AggregateStats) Add(result RoundResult) {
	s.Rounds++
	for _, rank := range result.Ranks {
		s.Categories[rank.Category]++
		s.Hands++
	}

	if len(result.Winners) > 1 {
		s.Ties++
	}
	credit := 1.0
	if s.Policy == SplitCredit && len(result.Winners) > 0 {
		credit = 1.0 / float64(len(result.Winners))
	}
	for _, pos := range result.Winners {
		if pos >= 1 && pos <= NumPositions {
			s.Wins[pos] += credit
		}
	}
}

// Merge folds another aggregate into this one. Both sides must use the same
// tie policy or the win columns would not be comparable.
func (s *AggregateStats) Merge(other *AggregateStats) error {
	if other.Policy != s.Policy {
		return fmt.Errorf("cannot merge stats with tie policy %s into %s", other.Policy, s.Policy)
	}
	s.Rounds += other.Rounds
	s.Hands += other.Hands
	s.Ties += other.Ties
	for i := range s.Categories {
		s.Categories[i] += other.Categories[i]
	}
	for i := range s.Wins {
		s.Wins[i] += other.Wins[i]
	}
	return nil
}

// CategoryCount returns the occurrence count for one hand category.
func (s *AggregateStats) CategoryCount(c evaluator.Category) int {
	if c < 0 || int(c) >= len(s.Categories) {
		return 0
	}
	return s.Categories[c]
}

// WinCount returns the (possibly fractional) win count for a position.
func (s *AggregateStats) WinCount(pos int) float64 {
	if pos < 1 || pos > NumPositions {
		return 0
	}
	return s.Wins[pos]
}

// Validate sanity-checks the counters against their invariants.
func (s *AggregateStats) Validate() error {
	if s.Rounds < 0 || s.Hands < 0 || s.Ties < 0 {
		return fmt.Errorf("negative counter: rounds=%d hands=%d ties=%d", s.Rounds, s.Hands, s.Ties)
	}
	if s.Hands != s.Rounds*NumPositions {
		return fmt.Errorf("hand count %d does not match %d rounds of %d hands", s.Hands, s.Rounds, NumPositions)
	}
	sum := 0
	for c, n := range s.Categories {
		if n < 0 {
			return fmt.Errorf("negative count for category %s: %d", evaluator.Category(c), n)
		}
		sum += n
	}
	if sum != s.Hands {
		return fmt.Errorf("category counts sum to %d, want %d", sum, s.Hands)
	}
	var wins float64
	for pos := 1; pos <= NumPositions; pos++ {
		if s.Wins[pos] < 0 {
			return fmt.Errorf("negative win count for position %d: %f", pos, s.Wins[pos])
		}
		wins += s.Wins[pos]
	}
	if s.Policy == SplitCredit && math.Abs(wins-float64(s.Rounds)) > 1e-6 {
		return fmt.Errorf("split-credit wins sum to %f, want %d", wins, s.Rounds)
	}
	if s.Policy == CountAll && wins < float64(s.Rounds) {
		return fmt.Errorf("count-all wins sum to %f, want at least %d", wins, s.Rounds)
	}
	return nil
}
