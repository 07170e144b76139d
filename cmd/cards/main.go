package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
)

// version is set by ldflags during build
var version = "dev"

// Globals holds flags shared by all subcommands.
type Globals struct {
	Config  string `help:"Path to HCL config file" default:"cards.hcl"`
	Seed    int64  `help:"RNG seed (0 for random)"`
	Verbose bool   `short:"v" help:"Verbose logging"`
}

type CLI struct {
	Globals
	Version  kong.VersionFlag `help:"Show version"`
	Deal     DealCmd          `cmd:"" help:"Deal one round of three hands and report the showdown"`
	Simulate SimulateCmd      `cmd:"" help:"Run many rounds and report aggregate statistics"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("cards"),
		kong.Description("Simulates single-deck poker deals between three players"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}

// newLogger builds the command logger at the configured level. --verbose
// forces debug regardless of the config file.
func newLogger(verbose bool, level string) *log.Logger {
	lvl := log.InfoLevel
	if parsed, err := log.ParseLevel(level); err == nil {
		lvl = parsed
	}
	if verbose {
		lvl = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{Level: lvl})
}
