package expense

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Money is an exact monetary value. The currency is not part of the value: a ledger holds a single
// currency that only matters when formatting.
type Money struct {
	value decimal.Decimal
}

// M is a convenient factory for Money.
func M[T float64 | int | int64 | decimal.Decimal](value T) Money {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return Money{value: v}
	case float64:
		return Money{value: decimal.NewFromFloat(v)}
	case int:
		return Money{value: decimal.NewFromInt(int64(v))}
	case int64:
		return Money{value: decimal.NewFromInt(v)}
	default:
		panic("unsupported type")
	}
}

// ParseMoney parses a plain decimal amount like "200" or "12.50".
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Money{value: d}, nil
}

func (m Money) Decimal() decimal.Decimal { return m.value }
func (m Money) Equal(n Money) bool       { return m.value.Equal(n.value) }
func (m Money) IsZero() bool             { return m.value.IsZero() }
func (m Money) IsPositive() bool         { return m.value.IsPositive() }
func (m Money) IsNegative() bool         { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool    { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool { return m.value.GreaterThan(n.value) }
func (m Money) Add(n Money) Money        { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money        { return Money{value: m.value.Sub(n.value)} }
func (m Money) Neg() Money               { return Money{value: m.value.Neg()} }
func (m Money) Abs() Money               { return Money{value: m.value.Abs()} }
func (m Money) String() string           { return m.value.String() }

// MarshalJSON writes the value as a plain JSON number.
func (m Money) MarshalJSON() ([]byte, error) { return m.value.MarshalJSON() }

// UnmarshalJSON accepts a JSON number or a quoted decimal.
func (m *Money) UnmarshalJSON(data []byte) error { return m.value.UnmarshalJSON(data) }

// Format returns the value formatted in the given ISO currency, e.g. "₹1,200.50".
func (m Money) Format(currency string) string {
	// to get a never nil currency I need to call the Money constructor
	cur := *money.New(0, currency).Currency()
	units := m.value.Abs().Shift(int32(cur.Fraction)).Round(0)
	s := cur.Formatter().Format(units.IntPart())
	if m.value.IsNegative() {
		return "-" + s
	}
	return s
}

// SignedFormat is like Format but always carries the sign, "+" for positive values.
func (m Money) SignedFormat(currency string) string {
	if m.value.IsPositive() {
		return "+" + m.Format(currency)
	}
	return m.Format(currency)
}

// legacyAmount matches amounts written as display strings by older ledger files: an optional currency
// symbol, a number with thousand separators, and an optional kind suffix like "C", "D" or "(C)".
var legacyAmount = regexp.MustCompile(`^[^\d.-]*(-?[\d,]*\.?\d+)\s*\(?\s*([CcDd])?\s*\)?\s*$`)

// parseLegacyAmount decodes a currency-formatted amount. The kind is reported when the string carries a
// suffix.
func parseLegacyAmount(s string) (Money, Kind, bool, error) {
	match := legacyAmount.FindStringSubmatch(strings.TrimSpace(s))
	if match == nil {
		return Money{}, Debit, false, fmt.Errorf("invalid amount %q", s)
	}
	amount, err := ParseMoney(strings.ReplaceAll(match[1], ",", ""))
	if err != nil {
		return Money{}, Debit, false, err
	}
	if match[2] == "" {
		return amount, Debit, false, nil
	}
	kind, err := ParseKind(match[2])
	return amount, kind, err == nil, err
}
