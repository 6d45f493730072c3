package expense

import (
	"testing"

	"github.com/etnz/expense/date"
)

// newTestLedger returns a ledger whose clock always returns on.
func newTestLedger(opening float64, on string) *Ledger {
	l := NewLedger(M(opening))
	l.today = fixedClock(on)
	return l
}

func fixedClock(on string) func() date.Date {
	d := date.MustParse(on)
	return func() date.Date { return d }
}

// addOn adds an entry dated on.
func addOn(t *testing.T, l *Ledger, on, description string, amount float64, kind Kind) int {
	t.Helper()
	l.today = fixedClock(on)
	id, err := l.Add(description, M(amount), kind)
	if err != nil {
		t.Fatalf("Add(%q, %v, %v) unexpected error: %v", description, amount, kind, err)
	}
	return id
}

func assertMoney(t *testing.T, what string, got Money, want float64) {
	t.Helper()
	if !got.Equal(M(want)) {
		t.Errorf("%s = %s, want %v", what, got, want)
	}
}

// assertConsistent checks the ledger invariants from the public API only.
func assertConsistent(t *testing.T, l *Ledger, opening Money) {
	t.Helper()
	var credit, debit Money
	for i, e := range l.Entries() {
		if e.ID != i+1 {
			t.Errorf("entry at position %d has id %d", i, e.ID)
		}
		if e.Kind == Credit {
			credit = credit.Add(e.Amount)
		} else {
			debit = debit.Add(e.Amount)
		}
	}
	if !credit.Equal(l.TotalCredit()) {
		t.Errorf("TotalCredit() = %s, entries sum to %s", l.TotalCredit(), credit)
	}
	if !debit.Equal(l.TotalDebit()) {
		t.Errorf("TotalDebit() = %s, entries sum to %s", l.TotalDebit(), debit)
	}
	if want := opening.Add(credit).Sub(debit); !want.Equal(l.Balance()) {
		t.Errorf("Balance() = %s, want %s", l.Balance(), want)
	}
}
