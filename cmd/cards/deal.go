package main

import (
	"bytes"
	"fmt"
	"time"

	"github.com/muesli/termenv"

	"github.com/olivhe/cards/internal/config"
	"github.com/olivhe/cards/internal/fileutil"
	"github.com/olivhe/cards/internal/report"
	"github.com/olivhe/cards/internal/simulator"
	"github.com/olivhe/cards/internal/statistics"
)

// DealCmd deals a single round and prints the hand comparison.
type DealCmd struct {
	Out     string `help:"Analysis file path (defaults to output.file from config)"`
	NoColor bool   `help:"Disable styled output"`
}

func (c *DealCmd) Run(g *Globals) error {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return err
	}
	logger := newLogger(g.Verbose, cfg.Output.LogLevel)

	seed := g.Seed
	if seed == 0 {
		seed = cfg.Simulation.Seed
	}
	policy, err := statistics.ParseTiePolicy(cfg.Simulation.TiePolicy)
	if err != nil {
		return err
	}

	sim := simulator.New(simulator.Config{
		Seed:      seed,
		TiePolicy: policy,
		Logger:    logger,
	})
	outcome, err := sim.RunRound()
	if err != nil {
		return err
	}

	colored := cfg.Output.Color && !c.NoColor && termenv.ColorProfile() != termenv.Ascii
	renderer := report.NewRenderer(colored)
	fmt.Println(renderer.Render(outcome))

	out := c.Out
	if out == "" {
		out = cfg.Output.File
	}
	var buf bytes.Buffer
	if err := renderer.WriteAnalysis(&buf, outcome, time.Now()); err != nil {
		return fmt.Errorf("rendering analysis file: %w", err)
	}
	if err := fileutil.WriteFileAtomic(out, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing analysis file: %w", err)
	}
	logger.Info("analysis written", "file", out, "seed", sim.Seed())
	return nil
}
