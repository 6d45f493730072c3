package expense

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/etnz/expense/date"
)

// document is the persisted form of a Ledger.
type document struct {
	Balance Money      `json:"Balance"`
	Credit  *Money     `json:"Credit,omitempty"`
	Debit   *Money     `json:"Debit,omitempty"`
	Entry   []entryDoc `json:"Entry"`
}

// entryDoc is the persisted form of an Entry.
//
// Amount is read raw because older files store it as a display string like "₹200.5".
type entryDoc struct {
	ID          int             `json:"ID"`
	Date        date.Date       `json:"Date"`
	Description string          `json:"Description"`
	Amount      json.RawMessage `json:"Amount"`
	Kind        *Kind           `json:"Kind,omitempty"`
}

// entry decodes the document entry.
func (d entryDoc) entry() (Entry, error) {
	e := Entry{ID: d.ID, Date: d.Date, Description: d.Description}

	raw := bytes.TrimSpace(d.Amount)
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return e, err
		}
		amount, kind, hasKind, err := parseLegacyAmount(s)
		if err != nil {
			return e, err
		}
		e.Amount = amount
		if hasKind {
			e.Kind = kind
		}
	} else if err := json.Unmarshal(raw, &e.Amount); err != nil {
		return e, fmt.Errorf("invalid amount %s: %w", raw, err)
	}

	if d.Kind != nil {
		e.Kind = *d.Kind
	}
	return e, nil
}

// DecodeLedger decodes a ledger document.
//
// The document is taken verbatim: ids, totals and balance must be consistent with the entries.
// Missing credit and debit totals are computed from the entries. Any failure wraps ErrStorage.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	doc, ledger, err := decodeDocument(r)
	if err != nil {
		return nil, err
	}
	if doc.Credit != nil {
		ledger.credit = *doc.Credit
	}
	if doc.Debit != nil {
		ledger.debit = *doc.Debit
	}

	// The opening balance is derived from the totals, so check can only fail on ids and totals here.
	if err := ledger.check(ledger.Opening()); err != nil {
		return nil, fmt.Errorf("%w: inconsistent ledger document: %w", ErrStorage, err)
	}
	return ledger, nil
}

// RepairLedger decodes a ledger document like DecodeLedger, but renumbers the entries by position and
// recomputes the credit and debit totals from the entries instead of trusting the stored ones.
// The stored balance is kept.
func RepairLedger(r io.Reader) (*Ledger, error) {
	_, ledger, err := decodeDocument(r)
	if err != nil {
		return nil, err
	}
	ledger.renumber()
	if err := ledger.check(ledger.Opening()); err != nil {
		return nil, fmt.Errorf("%w: cannot repair ledger document: %w", ErrStorage, err)
	}
	return ledger, nil
}

// decodeDocument parses the document and its entries. The ledger totals are computed from the entries.
func decodeDocument(r io.Reader) (document, *Ledger, error) {
	var doc document
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return doc, nil, fmt.Errorf("%w: cannot parse ledger document: %w", ErrStorage, err)
	}

	ledger := NewLedger(doc.Balance)
	var totals Totals
	for i, d := range doc.Entry {
		e, err := d.entry()
		if err != nil {
			return doc, nil, fmt.Errorf("%w: entry %d: %w", ErrStorage, i+1, err)
		}
		ledger.entries = append(ledger.entries, e)
		totals.add(e)
	}
	ledger.credit, ledger.debit = totals.Credit, totals.Debit
	return doc, ledger, nil
}

// EncodeLedger writes the ledger document as indented JSON. Non ASCII characters are written as is.
func EncodeLedger(w io.Writer, ledger *Ledger) error {
	doc := document{
		Balance: ledger.balance,
		Credit:  &ledger.credit,
		Debit:   &ledger.debit,
		Entry:   make([]entryDoc, 0, len(ledger.entries)),
	}
	for _, e := range ledger.entries {
		amount, err := json.Marshal(e.Amount)
		if err != nil {
			return fmt.Errorf("%w: entry %d: %w", ErrStorage, e.ID, err)
		}
		kind := e.Kind
		doc.Entry = append(doc.Entry, entryDoc{
			ID:          e.ID,
			Date:        e.Date,
			Description: e.Description,
			Amount:      amount,
			Kind:        &kind,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("%w: cannot write ledger document: %w", ErrStorage, err)
	}
	return nil
}
