// Package report builds and renders monthly balance reports: the totals
// table, the month total, and the settlement instructions, in JSON, YAML,
// CSV, or plain text.
package report

import (
	"encoding/json"
	"fmt"

	"fjacquet/split-ledger/internal/dateutils"
	"fjacquet/split-ledger/internal/ledger"
	"fjacquet/split-ledger/internal/logging"
	"fjacquet/split-ledger/internal/models"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// MonthlyReport is the derived view for one month bucket.
type MonthlyReport struct {
	Month       string                    `json:"month" yaml:"month"`
	Total       decimal.Decimal           `json:"total_expenses" yaml:"total_expenses"`
	Totals      []models.ParticipantTotal `json:"totals" yaml:"totals"`
	Settlements []models.Settlement       `json:"settlements" yaml:"settlements"`
}

// Generator builds monthly reports from a ledger and renders them.
type Generator struct {
	logger logging.Logger
}

// NewGenerator creates a report generator.
func NewGenerator() *Generator {
	return &Generator{
		logger: logging.GetLogger().WithField("component", "ReportGenerator"),
	}
}

// BuildReports derives the report for every month with expenses, sorted
// chronologically. When month is non-empty only that bucket is returned; an
// unknown month yields an empty slice, mirroring how the reference behavior
// treated a month with no expenses.
func (g *Generator) BuildReports(l *ledger.Ledger, month string) ([]MonthlyReport, error) {
	totalsByMonth, balancesByMonth, err := l.CalculateTotals()
	if err != nil {
		return nil, err
	}
	settlementsByMonth := l.CalculateSettlements(balancesByMonth)

	months := make([]string, 0, len(totalsByMonth))
	for m := range totalsByMonth {
		months = append(months, m)
	}
	dateutils.SortMonthKeys(months)

	reports := make([]MonthlyReport, 0, len(months))
	for _, m := range months {
		if month != "" && m != month {
			continue
		}
		totals := totalsByMonth[m]
		total := decimal.Zero
		for _, row := range totals {
			total = total.Add(row.TotalPaid)
		}
		reports = append(reports, MonthlyReport{
			Month:       m,
			Total:       total,
			Totals:      totals,
			Settlements: settlementsByMonth[m],
		})
	}

	g.logger.Debug("built monthly reports",
		logging.Field{Key: logging.FieldCount, Value: len(reports)})
	return reports, nil
}

// Render serializes reports in the requested format: "json", "yaml" or
// "csv". CSV output is row-oriented; kind selects between the totals table
// and the settlement list (see RenderCSV).
func (g *Generator) Render(reports []MonthlyReport, format, kind string) ([]byte, error) {
	switch format {
	case "json":
		return g.renderJSON(reports)
	case "yaml":
		return g.renderYAML(reports)
	case "csv":
		return g.RenderCSV(reports, kind)
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

func (g *Generator) renderJSON(reports []MonthlyReport) ([]byte, error) {
	data, err := json.MarshalIndent(reports, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return data, nil
}

func (g *Generator) renderYAML(reports []MonthlyReport) ([]byte, error) {
	data, err := yaml.Marshal(reports)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal YAML report: %w", err)
	}
	return data, nil
}
