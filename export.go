package expense

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Export formats supported by ExportRows.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// exportRow is the portable form of a Row. Amounts are decimal strings to stay exact in any format.
type exportRow struct {
	ID          int    `json:"id" yaml:"id"`
	Date        string `json:"date" yaml:"date"`
	Description string `json:"description" yaml:"description"`
	Kind        string `json:"kind" yaml:"kind"`
	Amount      string `json:"amount" yaml:"amount"`
	Balance     string `json:"balance" yaml:"balance"`
}

// ExportRows writes the rows in the given format, FormatJSON or FormatYAML.
func ExportRows(w io.Writer, rows []Row, format string) error {
	out := make([]exportRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, exportRow{
			ID:          r.ID,
			Date:        r.Date.String(),
			Description: r.Description,
			Kind:        r.Kind.String(),
			Amount:      r.Amount.String(),
			Balance:     r.Balance.String(),
		})
	}

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("error encoding yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown export format %q, want %q or %q", format, FormatJSON, FormatYAML)
	}
}
