package expense

import "github.com/etnz/expense/date"

// Row is the display projection of an entry.
type Row struct {
	ID          int
	Date        date.Date
	Description string
	Kind        Kind
	Amount      Money // signed: negative for debits
	Balance     Money // running balance right after this entry
}

// List returns one Row per entry, in order. The balance of the last row is the ledger balance.
func (l *Ledger) List() []Row {
	rows := make([]Row, 0, len(l.entries))
	running := l.Opening()
	for _, e := range l.entries {
		running = running.Add(e.Signed())
		rows = append(rows, Row{
			ID:          e.ID,
			Date:        e.Date,
			Description: e.Description,
			Kind:        e.Kind,
			Amount:      e.Signed(),
			Balance:     running,
		})
	}
	return rows
}
