package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	hjson "github.com/hjson/hjson-go/v4"

	"cre_underwriting/pkg/core/analysis"
	"cre_underwriting/pkg/core/decision"
	"cre_underwriting/pkg/core/report"
)

// underwrite evaluates a deal file and prints the markdown memo.
//
// Deal files are HJSON so analysts can keep commented, hand-edited assumption
// sets under version control. See examples/deal.hjson.
func main() {
	var (
		input     = flag.String("in", "", "path to the deal file (hjson or json)")
		name      = flag.String("name", "", "deal display name (defaults to the file name)")
		strategy  = flag.String("strategy", "", "override strategy: core, value_add, opportunistic")
		targetIRR = flag.Float64("target-irr", 0, "override target IRR %% for the goal-seek sweep")
		conf      = flag.String("thresholds", "", "optional strategies.yaml override")
	)
	flag.Parse()

	if *input == "" {
		fmt.Fprintln(os.Stderr, "usage: underwrite -in deal.hjson [-name NAME] [-strategy core] [-target-irr 12]")
		os.Exit(2)
	}

	data, err := os.ReadFile(*input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read %s: %v\n", *input, err)
		os.Exit(1)
	}

	var in analysis.DealInputs
	if err := hjson.Unmarshal(data, &in); err != nil {
		fmt.Fprintf(os.Stderr, "failed to parse %s: %v\n", *input, err)
		os.Exit(1)
	}

	if *strategy != "" {
		in.Strategy = decision.Strategy(*strategy)
	}
	if *targetIRR != 0 {
		in.TargetIRRPct = *targetIRR
	}

	thresholds := decision.DefaultThresholds()
	if *conf != "" {
		thresholds, err = decision.LoadThresholds(*conf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load thresholds: %v\n", err)
			os.Exit(1)
		}
	}

	result := analysis.Evaluate(in, thresholds)

	display := *name
	if display == "" {
		display = strings.TrimSuffix(filepath.Base(*input), filepath.Ext(*input))
	}

	fmt.Print(report.Render(display, result))
}
