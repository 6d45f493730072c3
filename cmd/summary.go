package cmd

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/etnz/expense"
	"github.com/etnz/expense/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	month int
	year  int
	width int
	chart bool
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display debit and credit totals, by month or year" }
func (*summaryCmd) Usage() string {
	return `exp summary [-m <month>] [-y <year>]

  Displays the debit and credit totals of the entries of a month, a year, or all of them.
  Without a month, it also breaks down the year (the current one by default) month by month, and
  charts it.

Usage Examples:
$ exp summary
$ exp summary -m 3 -y 2026
$ exp summary -y 26
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.month, "m", 0, "Month to summarize, 1 to 12. All months by default.")
	f.IntVar(&c.year, "y", 0, "Year to summarize, 2026 or 26. All years by default.")
	f.IntVar(&c.width, "width", 40, "Width of the longest bar of the chart.")
	f.BoolVar(&c.chart, "chart", true, "Display the monthly chart when no month is given.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	filter := expense.Filter{Month: time.Month(c.month), Year: c.year}
	if err := filter.Validate(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		f.Usage()
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	s := ledger.Summary(filter)
	printMarkdown(renderer.Summary(s, Currency()))
	if c.chart && filter.Month == 0 {
		fmt.Fprintln(stdout, renderer.Chart(s, Currency(), c.width))
	}
	return subcommands.ExitSuccess
}
