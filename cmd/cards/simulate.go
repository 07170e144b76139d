package main

import (
	"context"
	"fmt"

	"github.com/olivhe/cards/internal/config"
	"github.com/olivhe/cards/internal/evaluator"
	"github.com/olivhe/cards/internal/simulator"
	"github.com/olivhe/cards/internal/statistics"
)

// SimulateCmd runs many rounds and prints aggregate statistics.
type SimulateCmd struct {
	Rounds    int    `help:"Number of rounds to simulate (overrides config)"`
	Workers   int    `help:"Parallel workers (0 or 1 = sequential)"`
	TiePolicy string `name:"tie-policy" help:"Win crediting on ties: count-all or split (overrides config)"`
}

func (c *SimulateCmd) Run(g *Globals) error {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return err
	}
	logger := newLogger(g.Verbose, cfg.Output.LogLevel)

	rounds := cfg.Simulation.Rounds
	if c.Rounds > 0 {
		rounds = c.Rounds
	}
	workers := cfg.Simulation.Workers
	if c.Workers > 0 {
		workers = c.Workers
	}
	seed := g.Seed
	if seed == 0 {
		seed = cfg.Simulation.Seed
	}
	policyName := cfg.Simulation.TiePolicy
	if c.TiePolicy != "" {
		policyName = c.TiePolicy
	}
	policy, err := statistics.ParseTiePolicy(policyName)
	if err != nil {
		return err
	}

	sim := simulator.New(simulator.Config{
		Seed:      seed,
		TiePolicy: policy,
		Logger:    logger,
	})

	var stats *statistics.AggregateStats
	if workers > 1 {
		stats, err = sim.RunManyParallel(context.Background(), rounds, workers)
	} else {
		stats, err = sim.RunMany(rounds)
	}
	if err != nil {
		return err
	}

	printSummary(stats, sim.Seed())
	return nil
}

func printSummary(stats *statistics.AggregateStats, seed int64) {
	fmt.Printf("=== SIMULATION RESULTS ===\n")
	fmt.Printf("Rounds: %d (seed: %d)\n", stats.Rounds, seed)
	fmt.Printf("Hands evaluated: %d\n", stats.Hands)

	fmt.Printf("\n=== HAND CATEGORY FREQUENCIES ===\n")
	for c := evaluator.StraightFlush; c >= evaluator.HighCard; c-- {
		count := stats.CategoryCount(c)
		pct := 0.0
		if stats.Hands > 0 {
			pct = float64(count) / float64(stats.Hands) * 100
		}
		fmt.Printf("%-16s %8d  (%.3f%%)\n", c, count, pct)
	}

	fmt.Printf("\n=== WIN COUNTS (%s) ===\n", stats.Policy)
	for pos := 1; pos <= statistics.NumPositions; pos++ {
		wins := stats.WinCount(pos)
		pct := 0.0
		if stats.Rounds > 0 {
			pct = wins / float64(stats.Rounds) * 100
		}
		fmt.Printf("Player %d: %10.1f wins  (%.2f%%)\n", pos, wins, pct)
	}
	fmt.Printf("Tied rounds: %d\n", stats.Ties)
}
