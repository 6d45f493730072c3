// Package renderer turns ledger projections into markdown and terminal charts.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/expense"
)

//go:embed templates/*.md
var templates embed.FS

// rowView is a list row formatted for display.
type rowView struct {
	ID          int
	Date        string
	Description string
	Amount      string
	Balance     string
}

// List renders the rows as a markdown table, followed by the final balance.
func List(rows []expense.Row, balance expense.Money, currency string) string {
	data := struct {
		Rows    []rowView
		Balance string
	}{Balance: balance.Format(currency)}

	for _, r := range rows {
		data.Rows = append(data.Rows, rowView{
			ID:          r.ID,
			Date:        r.Date.String(),
			Description: cell(r.Description),
			Amount:      r.Amount.SignedFormat(currency),
			Balance:     r.Balance.Format(currency),
		})
	}
	return renderTemplate("list", "templates/list.md", data)
}

type monthView struct {
	Month  string
	Debit  string
	Credit string
}

// Summary renders the summary totals, and the monthly breakdown when it has any activity.
func Summary(s expense.Summary, currency string) string {
	data := struct {
		Title   string
		Debit   string
		Credit  string
		Balance string
		Year    int
		Months  []monthView
	}{
		Title:  title(s.Filter),
		Debit:  s.Debit.Format(currency),
		Credit: s.Credit.Format(currency),
		Year:   s.Year,
	}
	if s.HasBalance {
		data.Balance = s.Balance.Format(currency)
	}
	if s.HasMonthlyActivity() {
		for _, m := range s.Months {
			data.Months = append(data.Months, monthView{
				Month:  m.Month.String(),
				Debit:  m.Debit.Format(currency),
				Credit: m.Credit.Format(currency),
			})
		}
	}
	return renderTemplate("summary", "templates/summary.md", data)
}

// title describes the filter in plain words.
func title(f expense.Filter) string {
	switch {
	case f.Month != 0 && f.Year != 0:
		return fmt.Sprintf("of %s %d", f.Month, f.Year)
	case f.Month != 0:
		return fmt.Sprintf("of %s, all years", f.Month)
	case f.Year != 0:
		return fmt.Sprintf("of %d", f.Year)
	default:
		return "of all entries"
	}
}

// cell escapes text so that it fits in a single markdown table cell.
func cell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	s = strings.ReplaceAll(s, "\r", "")
	return strings.ReplaceAll(s, "\n", " ")
}

// renderTemplate is a generic utility to render an embedded template.
func renderTemplate(templateName, file string, data any) string {
	content, err := fs.ReadFile(templates, file)
	if err != nil {
		return fmt.Sprintf("error reading template %q: %v", file, err)
	}

	tmpl, err := template.New(templateName).Parse(string(content))
	if err != nil {
		return fmt.Sprintf("error parsing template %q: %v", file, err)
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
