package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/etnz/expense"
)

// stdin is where the opening balance is read from, replaced in tests.
var stdin io.Reader = os.Stdin

// openingBalance returns the balance of a new ledger: from the -opening flag, the configuration, or
// asked on stdin.
func openingBalance() (expense.Money, error) {
	if *opening != "" {
		return parseOpening(*opening)
	}
	if v := config().OpeningBalance; v != "" {
		return parseOpening(v)
	}

	fmt.Fprint(stderr, "No ledger found. Enter your opening balance: ")
	scanner := bufio.NewScanner(stdin)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return expense.Money{}, fmt.Errorf("cannot read the opening balance: %w", err)
		}
		return expense.Money{}, errors.New("no opening balance entered")
	}
	return parseOpening(scanner.Text())
}

func parseOpening(s string) (expense.Money, error) {
	m, err := expense.ParseMoney(s)
	if err != nil {
		return expense.Money{}, err
	}
	if m.IsNegative() {
		return expense.Money{}, fmt.Errorf("opening balance cannot be negative, got %s", m)
	}
	return m, nil
}
