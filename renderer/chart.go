package renderer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/etnz/expense"
	"github.com/shopspring/decimal"
)

const block = "█"

var (
	debitStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	creditStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	labelStyle  = lipgloss.NewStyle().Width(4)
)

// Chart renders the monthly breakdown of s as a bar chart: one debit bar and one credit bar per month,
// scaled so that the largest amount is width blocks long.
func Chart(s expense.Summary, currency string, width int) string {
	if !s.HasMonthlyActivity() {
		return fmt.Sprintf("No entries in %d.\n", s.Year)
	}
	if width < 1 {
		width = 1
	}

	var peak expense.Money
	for _, m := range s.Months {
		for _, v := range []expense.Money{m.Debit, m.Credit} {
			if v.GreaterThan(peak) {
				peak = v
			}
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Debit vs credit in %d\n\n", s.Year)
	for _, m := range s.Months {
		month := m.Month.String()[:3]
		fmt.Fprintf(&b, "%s D %s %s\n", labelStyle.Render(month), bar(debitStyle, m.Debit, peak, width), m.Debit.Format(currency))
		fmt.Fprintf(&b, "%s C %s %s\n", labelStyle.Render(""), bar(creditStyle, m.Credit, peak, width), m.Credit.Format(currency))
	}
	fmt.Fprintf(&b, "\n%s debit  %s credit\n", debitStyle.Render(block), creditStyle.Render(block))
	return b.String()
}

// bar returns a styled bar for v relative to peak, padded to width.
func bar(style lipgloss.Style, v, peak expense.Money, width int) string {
	n := 0
	if peak.IsPositive() && v.IsPositive() {
		n = int(v.Decimal().Div(peak.Decimal()).Mul(decimal.NewFromInt(int64(width))).Round(0).IntPart())
		n = max(n, 1) // a non zero amount is always visible
	}
	filled := ""
	if n > 0 {
		filled = style.Render(strings.Repeat(block, n))
	}
	return filled + strings.Repeat(" ", width-n)
}
