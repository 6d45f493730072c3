package expense

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/etnz/expense/date"
)

func TestEncodeLedger(t *testing.T) {
	l := newTestLedger(1000, "18-10-26")
	addOn(t, l, "18-10-26", "lunch", 200, Debit)
	addOn(t, l, "18-10-26", "salary ₹ <bonus>", 5000, Credit)
	if err := l.Delete(1); err != nil {
		t.Fatalf("Delete(1) unexpected error: %v", err)
	}

	var b bytes.Buffer
	if err := EncodeLedger(&b, l); err != nil {
		t.Fatalf("EncodeLedger() error: %v", err)
	}

	want := `{
    "Balance": 6000,
    "Credit": 5000,
    "Debit": 0,
    "Entry": [
        {
            "ID": 1,
            "Date": "18-10-26",
            "Description": "salary ₹ <bonus>",
            "Amount": 5000,
            "Kind": "C"
        }
    ]
}
`
	if got := b.String(); got != want {
		t.Errorf("EncodeLedger() =\n%s\nwant\n%s", got, want)
	}
}

func TestEncodeLedger_Empty(t *testing.T) {
	var b bytes.Buffer
	if err := EncodeLedger(&b, NewLedger(M(12.5))); err != nil {
		t.Fatalf("EncodeLedger() error: %v", err)
	}
	if !strings.Contains(b.String(), `"Entry": []`) {
		t.Errorf("empty ledger should have an empty entry list, got:\n%s", b.String())
	}
}

func TestDecodeLedger(t *testing.T) {
	doc := `{
    "Balance": 5800,
    "Credit": 5000,
    "Debit": 200,
    "Entry": [
        {"ID": 1, "Date": "18-10-26", "Description": "lunch", "Amount": 200, "Kind": "D"},
        {"ID": 2, "Date": "19-10-26", "Description": "salary", "Amount": 5000, "Kind": "C"}
    ]
}`
	l, err := DecodeLedger(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("DecodeLedger() unexpected error: %v", err)
	}

	assertMoney(t, "balance", l.Balance(), 5800)
	assertMoney(t, "opening", l.Opening(), 1000)
	want := []Entry{
		{ID: 1, Date: date.New(2026, time.October, 18), Description: "lunch", Amount: M(200), Kind: Debit},
		{ID: 2, Date: date.New(2026, time.October, 19), Description: "salary", Amount: M(5000), Kind: Credit},
	}
	got := l.Entries()
	if len(got) != len(want) {
		t.Fatalf("DecodeLedger() decoded %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].ID != want[i].ID || got[i].Date != want[i].Date || got[i].Description != want[i].Description ||
			!got[i].Amount.Equal(want[i].Amount) || got[i].Kind != want[i].Kind {
			t.Errorf("entry %d = %+v, want %+v", i+1, got[i], want[i])
		}
	}
}

// TestDecodeLedger_Legacy reads documents written by older versions of exp: amounts are display
// strings, kinds are missing or appended to the amount, and totals are missing.
func TestDecodeLedger_Legacy(t *testing.T) {
	doc := `{
    "Balance": 4779.5,
    "Entry": [
        {"ID": 1, "Date": "18-10-26", "Description": "lunch", "Amount": "₹200.5"},
        {"ID": 2, "Date": "19-10-26", "Description": "salary", "Amount": "₹5,000 C"},
        {"ID": 3, "Date": "20-10-26", "Description": "books", "Amount": "$20 (D)"}
    ]
}`
	l, err := DecodeLedger(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("DecodeLedger() unexpected error: %v", err)
	}
	assertMoney(t, "credit", l.TotalCredit(), 5000)
	assertMoney(t, "debit", l.TotalDebit(), 220.5)
	assertMoney(t, "opening", l.Opening(), 0)

	kinds := []Kind{Debit, Credit, Debit}
	for i, e := range l.Entries() {
		if e.Kind != kinds[i] {
			t.Errorf("entry %d kind = %v, want %v", i+1, e.Kind, kinds[i])
		}
	}
}

func TestDecodeLedger_Errors(t *testing.T) {
	testCases := []struct {
		name string
		doc  string
	}{
		{name: "not json", doc: `Balance: 12`},
		{name: "truncated", doc: `{"Balance": 12, "Entry": [`},
		{name: "bad date", doc: `{"Balance": 12, "Entry": [{"ID": 1, "Date": "tomorrow", "Amount": 1}]}`},
		{name: "bad amount", doc: `{"Balance": 12, "Entry": [{"ID": 1, "Date": "18-10-26", "Amount": "lots"}]}`},
		{name: "bad kind", doc: `{"Balance": 12, "Entry": [{"ID": 1, "Date": "18-10-26", "Amount": 1, "Kind": "X"}]}`},
		{name: "id gap", doc: `{"Balance": 12, "Entry": [{"ID": 2, "Date": "18-10-26", "Amount": 1}]}`},
		{name: "wrong total", doc: `{"Balance": 12, "Credit": 3, "Entry": [{"ID": 1, "Date": "18-10-26", "Amount": 1, "Kind": "C"}]}`},
		{name: "zero amount", doc: `{"Balance": 12, "Entry": [{"ID": 1, "Date": "18-10-26", "Amount": 0}]}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeLedger(strings.NewReader(tc.doc))
			if !errors.Is(err, ErrStorage) {
				t.Errorf("DecodeLedger() error = %v, want ErrStorage", err)
			}
		})
	}
}

func TestRepairLedger(t *testing.T) {
	testCases := []struct {
		name        string
		doc         string
		credit      float64
		debit       float64
		wantOpening float64
	}{
		{
			name:        "id gap",
			doc:         `{"Balance": 12, "Entry": [{"ID": 2, "Date": "18-10-26", "Amount": 1}, {"ID": 7, "Date": "18-10-26", "Amount": 3, "Kind": "C"}]}`,
			credit:      3,
			debit:       1,
			wantOpening: 10,
		},
		{
			name:        "stale totals",
			doc:         `{"Balance": 800, "Credit": 4, "Debit": 150, "Entry": [{"ID": 1, "Date": "18-10-26", "Amount": 200}]}`,
			debit:       200,
			wantOpening: 1000,
		},
		{
			name:        "legacy amounts",
			doc:         `{"Balance": 50, "Entry": [{"ID": 3, "Date": "18-10-26", "Amount": "₹1,000 C"}]}`,
			credit:      1000,
			wantOpening: -950,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeLedger(strings.NewReader(tc.doc)); !errors.Is(err, ErrStorage) {
				t.Errorf("DecodeLedger() error = %v, want ErrStorage", err)
			}

			l, err := RepairLedger(strings.NewReader(tc.doc))
			if err != nil {
				t.Fatalf("RepairLedger() unexpected error: %v", err)
			}
			assertMoney(t, "credit", l.TotalCredit(), tc.credit)
			assertMoney(t, "debit", l.TotalDebit(), tc.debit)
			assertMoney(t, "opening", l.Opening(), tc.wantOpening)
			assertConsistent(t, l, M(tc.wantOpening))
		})
	}
}

func TestRepairLedger_Errors(t *testing.T) {
	for _, doc := range []string{
		`{"Balance": 12, "Entry": [`,
		`{"Balance": 12, "Entry": [{"ID": 1, "Date": "18-10-26", "Amount": 0}]}`,
		`{"Balance": 12, "Entry": [{"ID": 1, "Date": "18-10-26", "Amount": "lots"}]}`,
	} {
		if _, err := RepairLedger(strings.NewReader(doc)); !errors.Is(err, ErrStorage) {
			t.Errorf("RepairLedger(%s) error = %v, want ErrStorage", doc, err)
		}
	}
}

func TestDecodeLedger_EncodedLedger(t *testing.T) {
	l := newTestLedger(250, "03-02-26")
	addOn(t, l, "03-02-26", "bus", 2.75, Debit)
	addOn(t, l, "04-02-26", "gift", 40, Credit)

	var b bytes.Buffer
	if err := EncodeLedger(&b, l); err != nil {
		t.Fatalf("EncodeLedger() error: %v", err)
	}
	decoded, err := DecodeLedger(&b)
	if err != nil {
		t.Fatalf("DecodeLedger() error: %v", err)
	}
	assertConsistent(t, decoded, M(250))
	assertMoney(t, "balance", decoded.Balance(), 287.25)
}

func TestParseLegacyAmount(t *testing.T) {
	testCases := []struct {
		in       string
		want     float64
		wantKind Kind
		hasKind  bool
		err      bool
	}{
		{in: "₹200", want: 200},
		{in: "₹200.0", want: 200},
		{in: "$1,234.56", want: 1234.56},
		{in: "₹5000 C", want: 5000, wantKind: Credit, hasKind: true},
		{in: "₹5000(c)", want: 5000, wantKind: Credit, hasKind: true},
		{in: "12 D", want: 12, wantKind: Debit, hasKind: true},
		{in: "₹", err: true},
		{in: "abc", err: true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, kind, hasKind, err := parseLegacyAmount(tc.in)
			if tc.err {
				if err == nil {
					t.Errorf("parseLegacyAmount(%q) = %s, want an error", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseLegacyAmount(%q) unexpected error: %v", tc.in, err)
			}
			assertMoney(t, "amount", got, tc.want)
			if kind != tc.wantKind || hasKind != tc.hasKind {
				t.Errorf("kind = (%v, %v), want (%v, %v)", kind, hasKind, tc.wantKind, tc.hasKind)
			}
		})
	}
}
