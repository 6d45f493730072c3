package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/expense/renderer"
	"github.com/google/subcommands"
)

type listCmd struct{}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "display all entries with the running balance" }
func (*listCmd) Usage() string {
	return `exp list

  Displays every entry in insertion order: id, date, description, signed amount and the balance
  after the entry.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.List(ledger.List(), ledger.Balance(), Currency()))
	return subcommands.ExitSuccess
}
