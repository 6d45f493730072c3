package expense

import (
	"fmt"
	"slices"

	"github.com/etnz/expense/date"
)

// Ledger is a running balance and the ordered list of entries that moved it.
//
// In a Ledger, entry ids are always the 1-based position of the entry, and the balance always equals
// the opening balance plus credits minus debits. Every mutation either applies completely or returns
// an error and leaves the Ledger untouched.
type Ledger struct {
	balance Money
	credit  Money // sum of credit entries
	debit   Money // sum of debit entries
	entries []Entry

	today func() date.Date // clock used to date new entries
}

// NewLedger creates an empty ledger starting at the opening balance.
func NewLedger(opening Money) *Ledger {
	return &Ledger{
		balance: opening,
		entries: make([]Entry, 0),
		today:   date.Today,
	}
}

// Balance returns the current balance.
func (l *Ledger) Balance() Money { return l.balance }

// TotalCredit returns the sum of all credit entries.
func (l *Ledger) TotalCredit() Money { return l.credit }

// TotalDebit returns the sum of all debit entries.
func (l *Ledger) TotalDebit() Money { return l.debit }

// Opening returns the balance before any entry.
func (l *Ledger) Opening() Money { return l.balance.Sub(l.credit).Add(l.debit) }

// Len returns the number of entries.
func (l *Ledger) Len() int { return len(l.entries) }

// Entries returns a copy of the entries, in order.
func (l *Ledger) Entries() []Entry { return slices.Clone(l.entries) }

// Entry returns the entry with the given id.
func (l *Ledger) Entry(id int) (Entry, error) {
	i, err := l.index(id)
	if err != nil {
		return Entry{}, err
	}
	return l.entries[i], nil
}

// Add appends a new entry dated today and returns its id.
//
// A debit larger than the balance is rejected with ErrInsufficientFunds.
func (l *Ledger) Add(description string, amount Money, kind Kind) (int, error) {
	if !amount.IsPositive() {
		return 0, fmt.Errorf("%w: got %s", ErrInvalidAmount, amount)
	}
	if kind != Credit && kind != Debit {
		return 0, fmt.Errorf("%w: %d", ErrInvalidKind, kind)
	}
	if kind == Debit && amount.GreaterThan(l.balance) {
		return 0, fmt.Errorf("%w: debit of %s exceeds balance of %s", ErrInsufficientFunds, amount, l.balance)
	}

	id := len(l.entries) + 1
	err := l.apply(func(next *Ledger) error {
		e := Entry{
			ID:          id,
			Date:        next.now(),
			Description: description,
			Amount:      amount,
			Kind:        kind,
		}
		next.entries = append(next.entries, e)
		next.move(kind, amount)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Update changes the description and/or the amount of an entry.
//
// An empty description or a zero amount leave the field unchanged. A new amount re-prices the entry:
// only the difference with the old amount is applied, with the sign of the entry kind.
func (l *Ledger) Update(id int, description string, amount Money) error {
	i, err := l.index(id)
	if err != nil {
		return err
	}
	if amount.IsNegative() {
		return fmt.Errorf("%w: got %s", ErrInvalidAmount, amount)
	}

	return l.apply(func(next *Ledger) error {
		e := &next.entries[i]
		if description != "" {
			e.Description = description
		}
		if amount.IsZero() {
			return nil
		}
		delta := amount.Sub(e.Amount)
		next.move(e.Kind, delta)
		e.Amount = amount
		if next.overdrawn(l) {
			if e.Kind == Debit {
				return fmt.Errorf("%w: entry %d would bring the balance to %s", ErrInsufficientFunds, id, next.balance)
			}
			return fmt.Errorf("%w: entry %d would bring the balance to %s", ErrWouldUnderflow, id, next.balance)
		}
		return nil
	})
}

// Delete removes an entry, reverses its effect on the balance, and renumbers the following entries.
//
// Removing a credit that would make the balance negative is rejected with ErrWouldUnderflow.
func (l *Ledger) Delete(id int) error {
	i, err := l.index(id)
	if err != nil {
		return err
	}

	return l.apply(func(next *Ledger) error {
		e := next.entries[i]
		next.move(e.Kind, e.Amount.Neg())
		if next.overdrawn(l) {
			return fmt.Errorf("%w: removing entry %d would bring the balance to %s", ErrWouldUnderflow, id, next.balance)
		}
		next.entries = slices.Delete(next.entries, i, i+1)
		next.renumber()
		return nil
	})
}

// index returns the position of the entry id.
func (l *Ledger) index(id int) (int, error) {
	if id < 1 || id > len(l.entries) {
		return 0, fmt.Errorf("%w: id %d, ledger has %d entries", ErrNotFound, id, len(l.entries))
	}
	return id - 1, nil
}

func (l *Ledger) now() date.Date {
	if l.today == nil {
		return date.Today()
	}
	return l.today()
}

// move applies a change of magnitude to the total of the kind and to the balance.
func (l *Ledger) move(kind Kind, amount Money) {
	switch kind {
	case Credit:
		l.credit = l.credit.Add(amount)
	case Debit:
		l.debit = l.debit.Add(amount)
	}
	l.balance = l.balance.Add(kind.sign(amount))
}

// overdrawn reports whether l is negative and lower than prev.
// A ledger that was already negative can still move towards zero.
func (l *Ledger) overdrawn(prev *Ledger) bool {
	return l.balance.IsNegative() && l.balance.LessThan(prev.balance)
}

func (l *Ledger) renumber() {
	for i := range l.entries {
		l.entries[i].ID = i + 1
	}
}

// apply runs mutate on a copy of the ledger and commits it only if it succeeds and the copy is
// consistent.
func (l *Ledger) apply(mutate func(next *Ledger) error) error {
	next := l.clone()
	if err := mutate(next); err != nil {
		return err
	}
	if err := next.check(l.Opening()); err != nil {
		return fmt.Errorf("ledger invariant violated: %w", err)
	}
	*l = *next
	return nil
}

func (l *Ledger) clone() *Ledger {
	next := *l
	next.entries = slices.Clone(l.entries)
	return &next
}

// check verifies the ledger invariants against the expected opening balance.
func (l *Ledger) check(opening Money) error {
	var credit, debit Money
	for i, e := range l.entries {
		if e.ID != i+1 {
			return fmt.Errorf("entry at position %d has id %d", i+1, e.ID)
		}
		if !e.Amount.IsPositive() {
			return fmt.Errorf("entry %d has a non positive amount %s", e.ID, e.Amount)
		}
		switch e.Kind {
		case Credit:
			credit = credit.Add(e.Amount)
		case Debit:
			debit = debit.Add(e.Amount)
		default:
			return fmt.Errorf("entry %d has an unknown kind %d", e.ID, e.Kind)
		}
	}
	if !credit.Equal(l.credit) {
		return fmt.Errorf("credit total %s does not match entries %s", l.credit, credit)
	}
	if !debit.Equal(l.debit) {
		return fmt.Errorf("debit total %s does not match entries %s", l.debit, debit)
	}
	if want := opening.Add(credit).Sub(debit); !want.Equal(l.balance) {
		return fmt.Errorf("balance %s does not match entries %s", l.balance, want)
	}
	return nil
}
