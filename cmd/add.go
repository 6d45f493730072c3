package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/etnz/expense"
	"github.com/google/subcommands"
)

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	desc   string
	amount string
	kind   string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a new expense or income, dated today" }
func (*addCmd) Usage() string {
	return `exp add -desc <description> -amt <amount> [-kind C|D]

  Records a new entry dated today. Debits (expenses) decrease the balance and credits (incomes)
  increase it. A debit larger than the current balance is rejected.

Usage Examples:
$ exp add -desc lunch -amt 200
$ exp add -desc salary -amt 5000 -kind C
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.desc, "desc", "", "Description of the entry.")
	f.StringVar(&c.amount, "amt", "", "Amount of the entry, a positive decimal number.")
	f.StringVar(&c.kind, "kind", "D", "Kind of the entry: C for credit, D for debit.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.desc == "" || c.amount == "" {
		fmt.Fprintln(stderr, "Error: -desc and -amt are required.")
		f.Usage()
		return subcommands.ExitUsageError
	}
	amount, err := expense.ParseMoney(c.amount)
	if err != nil {
		fmt.Fprintf(stderr, "Error: invalid amount: %v\n", err)
		return subcommands.ExitUsageError
	}
	kind, err := expense.ParseKind(c.kind)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	id, err := ledger.Add(c.desc, amount, kind)
	switch {
	case errors.Is(err, expense.ErrInsufficientFunds):
		fmt.Fprintf(stderr, "Insufficient balance: cannot spend %s out of %s.\n", amount.Format(Currency()), ledger.Balance().Format(Currency()))
		return subcommands.ExitFailure
	case errors.Is(err, expense.ErrInvalidAmount):
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	case err != nil:
		fmt.Fprintf(stderr, "Error adding entry: %v\n", err)
		return subcommands.ExitFailure
	}

	return commit(ledger, fmt.Sprintf("Added %s entry %d %q of %s. Balance: %s", kind, id, c.desc, amount.Format(Currency()), ledger.Balance().Format(Currency())))
}
