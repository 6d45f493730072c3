// Package expense implements a personal expense and income ledger.
//
// A Ledger is a running balance and an ordered list of entries, each one a credit (money received)
// or a debit (money spent). The package keeps the two consistent:
//   - entry ids are always their 1-based position, deletions renumber the following entries.
//   - the balance is always the opening balance plus credits minus debits.
//   - a mutation either fully applies or is rejected with one of the sentinel errors, leaving the
//     ledger untouched.
//
// Ledgers are persisted as a single JSON document (see EncodeLedger and DecodeLedger), and the
// package can summarize them by month and year (see Ledger.Summary).
//
// This package serves as the engine of the `exp` command-line tool.
package expense
