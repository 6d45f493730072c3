package expense

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/etnz/expense/date"
)

// Kind tells whether an entry brings money in or takes it out.
type Kind int

const (
	// Debit is money spent. It is the zero value: ledgers without kinds only hold debits.
	Debit Kind = iota
	// Credit is money received.
	Credit
)

// ParseKind parses a kind flag: "C" or "D", or their long forms, in any case.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "c", "credit":
		return Credit, nil
	case "d", "debit":
		return Debit, nil
	default:
		return Debit, fmt.Errorf("%w: %q, want C or D", ErrInvalidKind, s)
	}
}

// Code returns the one letter code of the kind, as written in ledger files.
func (k Kind) Code() string {
	if k == Credit {
		return "C"
	}
	return "D"
}

func (k Kind) String() string {
	if k == Credit {
		return "credit"
	}
	return "debit"
}

// sign returns the amount as it contributes to the balance.
func (k Kind) sign(amount Money) Money {
	if k == Credit {
		return amount
	}
	return amount.Neg()
}

func (k Kind) MarshalJSON() ([]byte, error) { return json.Marshal(k.Code()) }

func (k *Kind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	kind, err := ParseKind(s)
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

// Entry is a single line of the ledger.
//
// Entries are values: changing a field of an Entry returned by the Ledger does not change the
// Ledger.
type Entry struct {
	ID          int
	Date        date.Date
	Description string
	Amount      Money // always positive
	Kind        Kind
}

// Signed returns the entry contribution to the balance: positive for credits, negative for debits.
func (e Entry) Signed() Money { return e.Kind.sign(e.Amount) }
