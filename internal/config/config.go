// Package config loads the HCL configuration file consumed by the CLI.
package config

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/olivhe/cards/internal/statistics"
)

// Config represents the complete simulation configuration. The blocks are
// pointers so a config file may omit either one and still decode; Load fills
// absent blocks with defaults.
type Config struct {
	Simulation *SimulationSettings `hcl:"simulation,block"`
	Output     *OutputSettings     `hcl:"output,block"`
}

// SimulationSettings contains the knobs for a simulation run
type SimulationSettings struct {
	Rounds    int    `hcl:"rounds,optional"`
	Seed      int64  `hcl:"seed,optional"`
	Workers   int    `hcl:"workers,optional"`
	TiePolicy string `hcl:"tie_policy,optional"`
}

// OutputSettings controls where and how results are written
type OutputSettings struct {
	File     string `hcl:"file,optional"`
	Color    bool   `hcl:"color,optional"`
	LogLevel string `hcl:"log_level,optional"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Simulation: &SimulationSettings{
			Rounds:    1000,
			TiePolicy: statistics.CountAll.String(),
		},
		Output: &OutputSettings{
			File:     "analysis.txt",
			Color:    true,
			LogLevel: "info",
		},
	}
}

// Load loads the configuration from an HCL file. A missing file yields the
// defaults; a present but malformed file is an error. A file may carry either
// block alone; the absent block gets the same defaults a missing file does.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing blocks and values
	if config.Simulation == nil {
		config.Simulation = &SimulationSettings{}
	}
	if config.Output == nil {
		config.Output = &OutputSettings{Color: true}
	}
	if config.Simulation.Rounds == 0 {
		config.Simulation.Rounds = 1000
	}
	if config.Simulation.TiePolicy == "" {
		config.Simulation.TiePolicy = statistics.CountAll.String()
	}
	if config.Output.File == "" {
		config.Output.File = "analysis.txt"
	}
	if config.Output.LogLevel == "" {
		config.Output.LogLevel = "info"
	}

	if _, err := statistics.ParseTiePolicy(config.Simulation.TiePolicy); err != nil {
		return nil, fmt.Errorf("invalid tie_policy: %w", err)
	}
	if _, err := log.ParseLevel(config.Output.LogLevel); err != nil {
		return nil, fmt.Errorf("invalid log_level: %w", err)
	}
	if config.Simulation.Rounds < 0 {
		return nil, fmt.Errorf("rounds must be non-negative, got %d", config.Simulation.Rounds)
	}

	return &config, nil
}
