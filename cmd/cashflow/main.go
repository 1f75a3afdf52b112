/*
main.go - CLI entry point

PURPOSE:
  Plays the built-in scenarios and prints yearly summaries (and
  optionally the full timeline) to stdout.

COMMAND-LINE FLAGS:
  -scenario  Run a single scenario by name (default: all)
  -years     Simulation length in years (default: 30)
  -timeline  Also print every timeline event
  -skip      Skip failed actions instead of aborting the run
*/
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/warp/cashflow-engine/finance"
	"github.com/warp/cashflow-engine/logging"
	"github.com/warp/cashflow-engine/report"
	"github.com/warp/cashflow-engine/scenario"
	"github.com/warp/cashflow-engine/schedule"
)

func main() {
	name := flag.String("scenario", "", "run a single scenario by name")
	years := flag.Int("years", 30, "simulation length in years")
	timeline := flag.Bool("timeline", false, "print every timeline event")
	skip := flag.Bool("skip", false, "skip failed actions instead of aborting")
	flag.Parse()

	logger, err := logging.NewFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	finance.SetMoneyContext(finance.DefaultMoneyContext)

	scenarios := scenario.Catalog()
	if *name != "" {
		s := scenario.ByName(*name)
		if s == nil {
			fmt.Fprintf(os.Stderr, "unknown scenario %q\n", *name)
			os.Exit(1)
		}
		scenarios = []scenario.Scenario{s}
	}

	cfg := scenario.DefaultConfig()
	cfg.End = cfg.Start.AddYears(*years)
	cfg.Logger = logger
	if *skip {
		cfg.Policy = schedule.SkipFailedAction
	}

	failed := false
	for _, s := range scenarios {
		fmt.Printf(" === %s ===\n", s.Name())
		res, err := s.Play(cfg)
		for _, summary := range res.Summaries {
			report.WriteSummary(os.Stdout, summary)
		}
		if *timeline {
			report.WriteTimeline(os.Stdout, res.Timeline)
		}
		if err != nil {
			fmt.Printf("run ended early after %s: %v\n", res.Run.LastDate, err)
			failed = true
		}
		fmt.Println()
	}
	if failed {
		os.Exit(1)
	}
}
