package report

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/split-ledger/internal/ledger"
	"fjacquet/split-ledger/internal/models"
)

func buildLedger(t *testing.T) *ledger.Ledger {
	t.Helper()
	l := ledger.New()
	require.NoError(t, l.AddParticipant("Alice", false))
	require.NoError(t, l.AddParticipant("Bob", false))

	add := func(name, amount string, y int, m time.Month, d int) {
		_, err := l.AddExpense(name, "", "", decimal.RequireFromString(amount),
			time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
	}
	add("Alice", "90", 2024, time.March, 10)
	add("Bob", "30", 2024, time.March, 20)
	add("Alice", "40", 2024, time.April, 5)
	return l
}

func TestBuildReports_SortedChronologically(t *testing.T) {
	g := NewGenerator()

	reports, err := g.BuildReports(buildLedger(t), "")

	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, "MAR 2024", reports[0].Month)
	assert.Equal(t, "APR 2024", reports[1].Month)
	assert.True(t, reports[0].Total.Equal(decimal.NewFromInt(120)))
	assert.True(t, reports[1].Total.Equal(decimal.NewFromInt(40)))
}

func TestBuildReports_MonthFilter(t *testing.T) {
	g := NewGenerator()

	reports, err := g.BuildReports(buildLedger(t), "MAR 2024")
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, "MAR 2024", reports[0].Month)
	require.Len(t, reports[0].Settlements, 1)
	assert.Equal(t, "Bob", reports[0].Settlements[0].Debtor)
	assert.Equal(t, "Alice", reports[0].Settlements[0].Creditor)
	assert.True(t, reports[0].Settlements[0].Amount.Equal(decimal.NewFromInt(30)))

	empty, err := g.BuildReports(buildLedger(t), "JUN 2024")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestBuildReports_EmptyLedger(t *testing.T) {
	_, err := NewGenerator().BuildReports(ledger.New(), "")
	assert.Error(t, err)
}

func TestRender_JSON(t *testing.T) {
	g := NewGenerator()
	reports, err := g.BuildReports(buildLedger(t), "MAR 2024")
	require.NoError(t, err)

	data, err := g.Render(reports, "json", "")
	require.NoError(t, err)

	var decoded []MonthlyReport
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "MAR 2024", decoded[0].Month)
	require.Len(t, decoded[0].Totals, 2)
}

func TestRender_YAML(t *testing.T) {
	g := NewGenerator()
	reports, err := g.BuildReports(buildLedger(t), "MAR 2024")
	require.NoError(t, err)

	data, err := g.Render(reports, "yaml", "")
	require.NoError(t, err)
	assert.Contains(t, string(data), "month: MAR 2024")
}

func TestRender_UnsupportedFormat(t *testing.T) {
	_, err := NewGenerator().Render(nil, "xml", "")
	assert.Error(t, err)
}

func TestRenderCSV_Totals(t *testing.T) {
	g := NewGenerator()
	reports, err := g.BuildReports(buildLedger(t), "MAR 2024")
	require.NoError(t, err)

	data, err := g.Render(reports, "csv", "totals")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Month,Name,Total Paid,Should Pay,Difference", lines[0])
	assert.Contains(t, lines[1], "MAR 2024,Alice,90.00,60.00,30.00")
	assert.Contains(t, lines[2], "MAR 2024,Bob,30.00,60.00,-30.00")
}

func TestRenderCSV_Settlements(t *testing.T) {
	g := NewGenerator()
	reports, err := g.BuildReports(buildLedger(t), "MAR 2024")
	require.NoError(t, err)

	data, err := g.Render(reports, "csv", "settlements")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Month,Debtor,Creditor,Amount", lines[0])
	assert.Equal(t, "MAR 2024,Bob,Alice,30.00", lines[1])
}

func TestRenderCSV_CustomDelimiter(t *testing.T) {
	old := Delimiter
	SetDelimiter(';')
	defer SetDelimiter(old)

	g := NewGenerator()
	reports, err := g.BuildReports(buildLedger(t), "MAR 2024")
	require.NoError(t, err)

	data, err := g.RenderCSV(reports, "settlements")
	require.NoError(t, err)
	assert.Contains(t, string(data), "MAR 2024;Bob;Alice;30.00")
}

func TestRenderCSV_UnknownKind(t *testing.T) {
	_, err := NewGenerator().RenderCSV(nil, "balances")
	assert.Error(t, err)
}

func TestRenderText(t *testing.T) {
	r := MonthlyReport{
		Month: "MAR 2024",
		Total: decimal.NewFromInt(120),
		Totals: []models.ParticipantTotal{
			{Name: "Alice", TotalPaid: decimal.NewFromInt(90), ShouldPay: decimal.NewFromInt(60), Difference: decimal.NewFromInt(30)},
			{Name: "Bob", TotalPaid: decimal.NewFromInt(30), ShouldPay: decimal.NewFromInt(60), Difference: decimal.NewFromInt(-30)},
		},
		Settlements: []models.Settlement{
			{Debtor: "Bob", Creditor: "Alice", Amount: decimal.NewFromInt(30)},
		},
	}

	out := RenderText(r, "EUR")

	assert.Contains(t, out, "MAR 2024")
	assert.Contains(t, out, "Total expenses: 120.00 EUR")
	assert.Contains(t, out, "Bob should pay Alice 30.00 EUR")
}

func TestRenderText_NoSettlements(t *testing.T) {
	out := RenderText(MonthlyReport{Month: "MAR 2024", Total: decimal.Zero}, "")
	assert.Contains(t, out, "Settlements: none")
}
