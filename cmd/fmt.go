package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/expense"
	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the ledger file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `exp fmt

  Validates and formats the ledger file. Amounts are written as plain numbers with an explicit
  kind, totals are recomputed and ids renumbered. Ledgers whose amounts are currency-formatted
  strings (like "₹200.5" or "₹5,000 C") are migrated to this form.

Usage Examples:
$ exp fmt
`
}

func (p *fmtCmd) SetFlags(f *flag.FlagSet) {}

func (p *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := expense.RepairLedgerFile(LedgerPath())
	if err != nil {
		fmt.Fprintf(stderr, "Error: could not load ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stderr, "Formatting ledger %q...\n", LedgerPath())

	return commit(ledger, fmt.Sprintf("Formatted %d entries. Balance: %s", ledger.Len(), ledger.Balance().Format(Currency())))
}
