package expense

import (
	"bytes"
	"encoding/json"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestExportRows(t *testing.T) {
	l := newTestLedger(1000, "18-10-26")
	addOn(t, l, "18-10-26", "lunch", 200, Debit)
	addOn(t, l, "19-10-26", "salary", 5000.5, Credit)

	want := []exportRow{
		{ID: 1, Date: "18-10-26", Description: "lunch", Kind: "debit", Amount: "-200", Balance: "800"},
		{ID: 2, Date: "19-10-26", Description: "salary", Kind: "credit", Amount: "5000.5", Balance: "5800.5"},
	}

	testCases := []struct {
		format    string
		unmarshal func([]byte, any) error
	}{
		{format: FormatJSON, unmarshal: json.Unmarshal},
		{format: FormatYAML, unmarshal: yaml.Unmarshal},
	}
	for _, tc := range testCases {
		t.Run(tc.format, func(t *testing.T) {
			var b bytes.Buffer
			if err := ExportRows(&b, l.List(), tc.format); err != nil {
				t.Fatalf("ExportRows() unexpected error: %v", err)
			}
			var got []exportRow
			if err := tc.unmarshal(b.Bytes(), &got); err != nil {
				t.Fatalf("cannot read back export: %v\n%s", err, b.String())
			}
			if len(got) != len(want) {
				t.Fatalf("exported %d rows, want %d", len(got), len(want))
			}
			for i := range want {
				if got[i] != want[i] {
					t.Errorf("row %d = %+v, want %+v", i+1, got[i], want[i])
				}
			}
		})
	}
}

func TestExportRows_UnknownFormat(t *testing.T) {
	var b bytes.Buffer
	if err := ExportRows(&b, nil, "csv"); err == nil {
		t.Error("ExportRows() with an unknown format should fail")
	}
}
