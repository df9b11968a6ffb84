package report

import (
	"fmt"
	"strings"

	"fjacquet/split-ledger/internal/amountutils"
)

// RenderText renders a monthly report the way the totals view displays it:
// the per-participant table, the month total, and one settlement line per
// transfer. Values are rounded to two decimals for display only.
func RenderText(r MonthlyReport, currency string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", r.Month)
	fmt.Fprintf(&b, "%-20s %14s %14s %14s\n", "Name", "Paid", "Should Pay", "Difference")
	for _, t := range r.Totals {
		fmt.Fprintf(&b, "%-20s %14s %14s %14s\n",
			t.Name,
			t.TotalPaid.StringFixed(2),
			t.ShouldPay.StringFixed(2),
			t.Difference.StringFixed(2))
	}
	fmt.Fprintf(&b, "Total expenses: %s\n", amountutils.FormatAmount(r.Total, currency))

	if len(r.Settlements) > 0 {
		b.WriteString("Settlements:\n")
		for _, s := range r.Settlements {
			fmt.Fprintf(&b, "  %s should pay %s %s\n",
				s.Debtor, s.Creditor, amountutils.FormatAmount(s.Amount, currency))
		}
	} else {
		b.WriteString("Settlements: none\n")
	}

	return b.String()
}
