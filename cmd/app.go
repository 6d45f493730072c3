// Package cmd implements the CLI application to manage an expense ledger.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/expense"
	"github.com/google/subcommands"
)

// Commands is the list of commands of the exp tool, in help order.
var Commands = []subcommands.Command{
	&addCmd{},
	&listCmd{},
	&summaryCmd{},
	&updateCmd{},
	&deleteCmd{},
	&queryCmd{},
	&exportCmd{},
	&fmtCmd{},
	&topicCmd{},
}

// IsCommand reports whether name is one of the built-in commands.
func IsCommand(name string) bool {
	switch name {
	case "help", "flags", "commands":
		return true
	}
	for _, c := range Commands {
		if c.Name() == name {
			return true
		}
	}
	return false
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", "", "Path to the ledger JSON document. Defaults to $"+EnvLedgerFile+" or expense.json.")
var currency = flag.String("currency", "", "ISO 4217 code used to display amounts. Defaults to $"+EnvCurrency+" or INR.")
var opening = flag.String("opening", "", "Opening balance of a new ledger. Asked interactively when missing.")
var Verbose = flag.Bool("v", false, "Log debug messages to stderr.")

// stdout and stderr are the command outputs, replaced in tests.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// LedgerPath returns the path of the ledger document, from the flag or the configuration.
func LedgerPath() string {
	if *ledgerFile != "" {
		return *ledgerFile
	}
	return config().LedgerFile
}

// Currency returns the display currency, from the flag or the configuration.
func Currency() string {
	if *currency != "" {
		return *currency
	}
	return config().Currency
}

// DecodeLedger loads the app ledger. A new ledger is saved right away, so that the opening balance is
// only asked once.
func DecodeLedger() (*expense.Ledger, error) {
	path := LedgerPath()
	ledger, created, err := expense.LoadLedger(path, openingBalance)
	if err != nil {
		return nil, err
	}
	if created {
		if err := expense.SaveLedger(path, ledger); err != nil {
			return nil, err
		}
		fmt.Fprintf(stderr, "Created ledger %s with an opening balance of %s\n", path, ledger.Balance().Format(Currency()))
	}
	return ledger, nil
}

// EncodeLedger saves the app ledger.
func EncodeLedger(ledger *expense.Ledger) error {
	return expense.SaveLedger(LedgerPath(), ledger)
}

// commit saves a mutated ledger and reports the outcome.
func commit(ledger *expense.Ledger, success string) subcommands.ExitStatus {
	if err := EncodeLedger(ledger); err != nil {
		fmt.Fprintf(stderr, "Error saving ledger %q: %v\n", LedgerPath(), err)
		return subcommands.ExitFailure
	}
	fmt.Fprintln(stdout, success)
	return subcommands.ExitSuccess
}

// printMarkdown renders markdown for the terminal. The raw markdown is printed if it cannot be rendered.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Fprint(stdout, out)
			return
		}
	}
	slog.Debug("cannot render markdown", "error", err)
	fmt.Fprint(stdout, md)
}
