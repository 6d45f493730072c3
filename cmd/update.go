package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/etnz/expense"
	"github.com/google/subcommands"
)

// updateCmd holds the flags for the 'update' subcommand.
type updateCmd struct {
	id     int
	desc   string
	amount string
}

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "change the description or the amount of an entry" }
func (*updateCmd) Usage() string {
	return `exp update -id <id> [-desc <description>] [-amt <amount>]

  Changes the description and/or the amount of an entry. The kind and the date of an entry never
  change. A new amount re-prices the entry: only the difference is applied to the balance.

Usage Examples:
$ exp update -id 1 -amt 300
$ exp update -id 2 -desc "october salary"
`
}

func (c *updateCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "Id of the entry to update, as displayed by 'exp list'.")
	f.StringVar(&c.desc, "desc", "", "New description. Unchanged if empty.")
	f.StringVar(&c.amount, "amt", "", "New amount. Unchanged if empty.")
}

func (c *updateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == 0 || (c.desc == "" && c.amount == "") {
		fmt.Fprintln(stderr, "Error: -id and one of -desc or -amt are required.")
		f.Usage()
		return subcommands.ExitUsageError
	}
	var amount expense.Money
	if c.amount != "" {
		var err error
		amount, err = expense.ParseMoney(c.amount)
		if err != nil || !amount.IsPositive() {
			fmt.Fprintf(stderr, "Error: invalid amount %q, want a positive number.\n", c.amount)
			return subcommands.ExitUsageError
		}
	}

	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	err = ledger.Update(c.id, c.desc, amount)
	switch {
	case errors.Is(err, expense.ErrNotFound):
		fmt.Fprintf(stderr, "No entry with id %d.\n", c.id)
		return subcommands.ExitFailure
	case errors.Is(err, expense.ErrInsufficientFunds), errors.Is(err, expense.ErrWouldUnderflow):
		fmt.Fprintf(stderr, "Insufficient balance: cannot re-price entry %d to %s.\n", c.id, amount.Format(Currency()))
		return subcommands.ExitFailure
	case err != nil:
		fmt.Fprintf(stderr, "Error updating entry: %v\n", err)
		return subcommands.ExitFailure
	}

	return commit(ledger, fmt.Sprintf("Updated entry %d. Balance: %s", c.id, ledger.Balance().Format(Currency())))
}
