package report

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/gocarina/gocsv"
)

// Delimiter is the rune used between CSV fields. Configurable through the
// csv.delimiter setting.
var Delimiter = ','

// SetDelimiter sets the delimiter for CSV output
func SetDelimiter(delim rune) {
	Delimiter = delim
}

// totalsRow is the CSV shape of one totals-table line.
type totalsRow struct {
	Month      string `csv:"Month"`
	Name       string `csv:"Name"`
	TotalPaid  string `csv:"Total Paid"`
	ShouldPay  string `csv:"Should Pay"`
	Difference string `csv:"Difference"`
}

// settlementRow is the CSV shape of one settlement instruction.
type settlementRow struct {
	Month    string `csv:"Month"`
	Debtor   string `csv:"Debtor"`
	Creditor string `csv:"Creditor"`
	Amount   string `csv:"Amount"`
}

// RenderCSV renders reports as CSV rows. kind selects the row type:
// "totals" for the per-participant table, "settlements" for the transfer
// list. Amounts are rounded to two decimals at this display boundary only.
func (g *Generator) RenderCSV(reports []MonthlyReport, kind string) ([]byte, error) {
	switch kind {
	case "totals":
		rows := make([]totalsRow, 0)
		for _, r := range reports {
			for _, t := range r.Totals {
				rows = append(rows, totalsRow{
					Month:      r.Month,
					Name:       t.Name,
					TotalPaid:  t.TotalPaid.StringFixed(2),
					ShouldPay:  t.ShouldPay.StringFixed(2),
					Difference: t.Difference.StringFixed(2),
				})
			}
		}
		return marshalCSV(rows)
	case "settlements":
		rows := make([]settlementRow, 0)
		for _, r := range reports {
			for _, s := range r.Settlements {
				rows = append(rows, settlementRow{
					Month:    r.Month,
					Debtor:   s.Debtor,
					Creditor: s.Creditor,
					Amount:   s.Amount.StringFixed(2),
				})
			}
		}
		return marshalCSV(rows)
	default:
		return nil, fmt.Errorf("unsupported CSV report kind: %s", kind)
	}
}

func marshalCSV(rows interface{}) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	writer.Comma = Delimiter
	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(writer)); err != nil {
		return nil, fmt.Errorf("failed to marshal CSV report: %w", err)
	}
	return buf.Bytes(), nil
}
