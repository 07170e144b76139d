// Package simulator orchestrates simulated rounds: build a deck, shuffle,
// deal three 5-card hands, evaluate, and resolve the showdown. Each round is
// a self-contained computation over fresh state; only the aggregate counters
// persist across rounds, and the simulator owns those exclusively.
package simulator

import (
	"context"
	"fmt"
	"io"
	rand "math/rand/v2"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/olivhe/cards/internal/deck"
	"github.com/olivhe/cards/internal/evaluator"
	"github.com/olivhe/cards/internal/randutil"
	"github.com/olivhe/cards/internal/showdown"
	"github.com/olivhe/cards/internal/statistics"
)

// Config holds configuration for running simulations
type Config struct {
	// Seed drives all shuffles. 0 means derive one from the wall clock.
	Seed int64

	// TiePolicy controls how tied rounds credit the win counters.
	TiePolicy statistics.TiePolicy

	// Logger receives debug-level progress. nil discards.
	Logger *log.Logger

	// Clock is used for run timing. nil means the real clock.
	Clock quartz.Clock
}

// Simulator deals and evaluates rounds of three 5-card hands.
type Simulator struct {
	policy statistics.TiePolicy
	seed   int64
	rng    *rand.Rand
	logger *log.Logger
	clock  quartz.Clock
}

// New creates a simulator from the given configuration.
func New(cfg Config) *Simulator {
	seed := cfg.Seed
	if seed == 0 {
		seed = randutil.TimeSeed()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	clock := cfg.Clock
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Simulator{
		policy: cfg.TiePolicy,
		seed:   seed,
		rng:    randutil.New(seed),
		logger: logger,
		clock:  clock,
	}
}

// Seed returns the effective seed, useful for replaying a run.
func (s *Simulator) Seed() int64 {
	return s.seed
}

// RoundOutcome is the full result of one simulated round.
type RoundOutcome struct {
	// Hands holds the dealt cards per player, indexed by position-1.
	Hands [showdown.NumPlayers][]deck.Card

	// Result carries the evaluated ranks, ordering and winner set.
	Result showdown.Result
}

// RunRound simulates one complete round. The error paths are defensive: a
// fresh 52-card deck always covers three deals of five.
func (s *Simulator) RunRound() (RoundOutcome, error) {
	return runRound(s.rng)
}

func runRound(rng *rand.Rand) (RoundOutcome, error) {
	d := deck.New(rng)
	d.Shuffle()

	var out RoundOutcome
	var ranks [showdown.NumPlayers]evaluator.HandRank
	for i := 0; i < showdown.NumPlayers; i++ {
		hand, err := d.Deal(evaluator.HandSize)
		if err != nil {
			return RoundOutcome{}, fmt.Errorf("dealing hand %d: %w", i+1, err)
		}
		rank, err := evaluator.Evaluate(hand)
		if err != nil {
			return RoundOutcome{}, fmt.Errorf("evaluating hand %d: %w", i+1, err)
		}
		out.Hands[i] = hand
		ranks[i] = rank
	}

	out.Result = showdown.Resolve(ranks)
	return out, nil
}

// RunMany runs n independent rounds sequentially and returns the aggregate.
// n=0 yields all-zero counters without error.
func (s *Simulator) RunMany(n int) (*statistics.AggregateStats, error) {
	stats := statistics.New(s.policy)
	start := s.clock.Now()

	for i := 0; i < n; i++ {
		outcome, err := s.RunRound()
		if err != nil {
			return nil, fmt.Errorf("round %d: %w", i+1, err)
		}
		stats.Add(roundResult(outcome))
	}

	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}
	s.logger.Debug("simulation complete",
		"rounds", n, "seed", s.seed, "elapsed", s.clock.Since(start))
	return stats, nil
}

// RunManyParallel runs n rounds across the given number of workers (0 means
// one per CPU). Each worker owns a derived RNG stream and a partial aggregate;
// partials are merged in a single combine step once all workers finish, so no
// per-round state is ever shared.
func (s *Simulator) RunManyParallel(ctx context.Context, n, workers int) (*statistics.AggregateStats, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		return s.RunMany(n)
	}

	start := s.clock.Now()
	partials := make([]*statistics.AggregateStats, workers)
	g, ctx := errgroup.WithContext(ctx)

	perWorker := n / workers
	extra := n % workers
	for w := 0; w < workers; w++ {
		rounds := perWorker
		if w < extra {
			rounds++
		}
		stream := uint64(w)
		g.Go(func() error {
			rng := randutil.Derive(s.seed, stream)
			part := statistics.New(s.policy)
			for i := 0; i < rounds; i++ {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				outcome, err := runRound(rng)
				if err != nil {
					return fmt.Errorf("worker %d round %d: %w", stream, i+1, err)
				}
				part.Add(roundResult(outcome))
			}
			partials[stream] = part
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := statistics.New(s.policy)
	for _, part := range partials {
		if part == nil {
			continue
		}
		if err := stats.Merge(part); err != nil {
			return nil, err
		}
	}
	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}
	s.logger.Debug("parallel simulation complete",
		"rounds", n, "workers", workers, "seed", s.seed, "elapsed", s.clock.Since(start))
	return stats, nil
}

func roundResult(outcome RoundOutcome) statistics.RoundResult {
	return statistics.RoundResult{
		Ranks:   outcome.Result.Ranks,
		Winners: outcome.Result.Winners,
	}
}
