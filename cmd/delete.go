package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/etnz/expense"
	"github.com/google/subcommands"
)

type deleteCmd struct {
	id int
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "remove an entry and reverse its effect on the balance" }
func (*deleteCmd) Usage() string {
	return `exp delete -id <id>

  Removes an entry and reverses its effect on the balance. Following entries are renumbered.
  Removing an income that was already spent is rejected.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "Id of the entry to delete, as displayed by 'exp list'.")
}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == 0 {
		fmt.Fprintln(stderr, "Error: -id is required.")
		f.Usage()
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	err = ledger.Delete(c.id)
	switch {
	case errors.Is(err, expense.ErrNotFound):
		fmt.Fprintf(stderr, "No entry with id %d.\n", c.id)
		return subcommands.ExitFailure
	case errors.Is(err, expense.ErrWouldUnderflow):
		fmt.Fprintf(stderr, "Cannot delete entry %d: the balance would become negative.\n", c.id)
		return subcommands.ExitFailure
	case err != nil:
		fmt.Fprintf(stderr, "Error deleting entry: %v\n", err)
		return subcommands.ExitFailure
	}

	return commit(ledger, fmt.Sprintf("Deleted entry %d. Balance: %s", c.id, ledger.Balance().Format(Currency())))
}
