package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/expense"
	"github.com/google/subcommands"
)

type exportCmd struct {
	format string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write the entries as JSON or YAML" }
func (*exportCmd) Usage() string {
	return `exp export [-format json|yaml]

  Writes the entries, with their signed amount and running balance, to stdout.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", expense.FormatJSON, "Output format: json or yaml.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.format != expense.FormatJSON && c.format != expense.FormatYAML {
		fmt.Fprintf(stderr, "Error: unknown format %q.\n", c.format)
		f.Usage()
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := expense.ExportRows(stdout, ledger.List(), c.format); err != nil {
		fmt.Fprintf(stderr, "Error exporting entries: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
