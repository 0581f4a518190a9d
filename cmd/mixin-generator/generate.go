package main

import (
	"fmt"
	"io"

	"goa.design/clue/log"

	"mixin-generator/internal/analyze"
	"mixin-generator/internal/compose"
)

func (e *env) generate(stdout io.Writer) int {
	report, err := e.round()
	if err != nil {
		log.Error(e.ctx, err)
		return exitError
	}

	printReport(stdout, report)

	if report.Diagnostics.HasErrors() {
		return exitError
	}

	return exitOK
}

// round loads and validates the declaration file, then runs one round over
// it. A table with validation errors is not processed.
func (e *env) round() (*compose.Report, error) {
	table, err := e.loadSymbols()
	if err != nil {
		return nil, err
	}

	round := compose.NewRound(table)

	checks := analyze.Validate(table, e.registry.Names())
	if checks.HasErrors() {
		return &compose.Report{RoundID: round.ID, Diagnostics: *checks}, nil
	}

	report := e.processor().Process(e.ctx, round)
	report.Diagnostics.Merge(*checks)

	return report, nil
}

func printReport(w io.Writer, report *compose.Report) {
	for _, d := range report.Diagnostics.All() {
		fmt.Fprintf(w, "%s: %s\n", d.Severity, d)

		if d.Stack != "" {
			fmt.Fprintln(w, d.Stack)
		}
	}

	for _, name := range report.Emitted() {
		fmt.Fprintf(w, "wrote %s\n", name)
	}

	fmt.Fprintf(w, "round %s: %d emitted, %d skipped, %d failed\n", report.RoundID,
		report.Count(compose.OutcomeEmitted),
		report.Count(compose.OutcomeSkipped),
		report.Count(compose.OutcomeFailed))
}
