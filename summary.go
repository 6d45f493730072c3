package expense

import (
	"fmt"
	"time"

	"github.com/etnz/expense/date"
)

// Filter selects entries by month and year. A zero field matches any value.
type Filter struct {
	Month time.Month
	Year  int // two digit years are read as 20xx
}

// IsZero reports whether the filter matches every entry.
func (f Filter) IsZero() bool { return f.Month == 0 && f.Year == 0 }

// Validate checks the filter fields are in range.
func (f Filter) Validate() error {
	if f.Month < 0 || f.Month > time.December {
		return fmt.Errorf("invalid month %d, want 1 to 12", f.Month)
	}
	if f.Year < 0 {
		return fmt.Errorf("invalid year %d", f.Year)
	}
	return nil
}

func (f Filter) normalize() Filter {
	f.Year = date.NormalizeYear(f.Year)
	return f
}

// Match reports whether the day is selected by the filter.
func (f Filter) Match(on date.Date) bool {
	f = f.normalize()
	if f.Month != 0 && on.Month() != f.Month {
		return false
	}
	if f.Year != 0 && on.Year() != f.Year {
		return false
	}
	return true
}

// Totals accumulates debit and credit amounts independently.
type Totals struct {
	Debit  Money
	Credit Money
}

func (t *Totals) add(e Entry) {
	switch e.Kind {
	case Credit:
		t.Credit = t.Credit.Add(e.Amount)
	case Debit:
		t.Debit = t.Debit.Add(e.Amount)
	}
}

// MonthTotals are the totals of a single calendar month.
type MonthTotals struct {
	Month time.Month
	Totals
}

// Summary aggregates the entries selected by a Filter.
type Summary struct {
	Filter Filter // normalized filter
	Count  int    // number of selected entries
	Totals

	// Balance is the overall ledger balance, only reported by unfiltered summaries.
	Balance    Money
	HasBalance bool

	// Months is the per month breakdown of Year, with exactly 12 items. It is only computed when no
	// month is selected.
	Year   int
	Months []MonthTotals
}

// Summary computes the debit and credit totals of the entries matching f.
//
// When f selects no month, it also breaks down the year of f, or the current year if f selects no
// year either, month by month.
func (l *Ledger) Summary(f Filter) Summary {
	f = f.normalize()
	s := Summary{Filter: f}
	for _, e := range l.entries {
		if !f.Match(e.Date) {
			continue
		}
		s.Count++
		s.add(e)
	}

	if f.IsZero() {
		s.Balance = l.balance
		s.HasBalance = true
	}

	if f.Month == 0 {
		s.Year = f.Year
		if s.Year == 0 {
			s.Year = l.now().Year()
		}
		s.Months = l.monthly(s.Year)
	}
	return s
}

// monthly returns the totals of every month of the year, months without entries included.
func (l *Ledger) monthly(year int) []MonthTotals {
	months := make([]MonthTotals, 12)
	for i := range months {
		months[i].Month = time.Month(i + 1)
	}
	for _, e := range l.entries {
		if e.Date.Year() != year {
			continue
		}
		months[e.Date.Month()-1].add(e)
	}
	return months
}

// HasMonthlyActivity reports whether any month of the breakdown has an entry amount.
func (s Summary) HasMonthlyActivity() bool {
	for _, m := range s.Months {
		if !m.Debit.IsZero() || !m.Credit.IsZero() {
			return true
		}
	}
	return false
}
