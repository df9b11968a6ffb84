package ledger

import (
	"fjacquet/split-ledger/internal/dateutils"
	"fjacquet/split-ledger/internal/ledgererror"
	"fjacquet/split-ledger/internal/models"

	"github.com/shopspring/decimal"
)

// ExpensesByMonth groups every expense across all participants by month
// bucket ("MAR 2024"). Order within a bucket is participant iteration order,
// then per-participant insertion order, so the grouping is deterministic for
// a fixed collection. The result is recomputed from live data on every call
// and never cached.
func (l *Ledger) ExpensesByMonth() map[string][]*models.Expense {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.expensesByMonth()
}

// expensesByMonth assumes l.mu is held.
func (l *Ledger) expensesByMonth() map[string][]*models.Expense {
	byMonth := make(map[string][]*models.Expense)
	for _, p := range l.participants {
		for _, e := range p.Expenses {
			key := dateutils.MonthKey(e.Date)
			byMonth[key] = append(byMonth[key], e)
		}
	}
	return byMonth
}

// CalculateTotals computes, for every month with at least one expense, the
// per-participant totals table and the balance map.
//
// For each month: the month total is divided among weighted shares (weight 2
// for a participant who pays for two, 1 otherwise), with the weight summed
// over ALL participants whether or not they spent anything that month. Each
// participant's difference is what they paid minus their share; positive
// means they are owed money. Intermediate values are not rounded: the
// settlement pass must run on unrounded balances so rounding drift cannot
// accumulate across a chain of transfers.
//
// An empty participant collection is an EmptyLedgerError, raised before any
// per-month work and independent of whether any expenses exist.
func (l *Ledger) CalculateTotals() (map[string][]models.ParticipantTotal, map[string]models.BalanceMap, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.participants) == 0 {
		return nil, nil, &ledgererror.EmptyLedgerError{}
	}

	// Total weight covers every participant. It is at least 1 per
	// participant, so a zero divisor is unreachable for a non-empty
	// collection.
	totalWeight := decimal.Zero
	for _, p := range l.participants {
		totalWeight = totalWeight.Add(decimal.NewFromInt(p.Weight()))
	}

	totalsByMonth := make(map[string][]models.ParticipantTotal)
	balancesByMonth := make(map[string]models.BalanceMap)

	for month, expenses := range l.expensesByMonth() {
		totalExpenses := decimal.Zero
		for _, e := range expenses {
			totalExpenses = totalExpenses.Add(e.Value)
		}
		splitAmount := totalExpenses.Div(totalWeight)

		totals := make([]models.ParticipantTotal, 0, len(l.participants))
		balances := make(models.BalanceMap, len(l.participants))
		for _, p := range l.participants {
			totalPaid := p.TotalPaidIn(month)
			shouldPay := splitAmount.Mul(decimal.NewFromInt(p.Weight()))
			difference := totalPaid.Sub(shouldPay)
			totals = append(totals, models.ParticipantTotal{
				Name:       p.Name,
				TotalPaid:  totalPaid,
				ShouldPay:  shouldPay,
				Difference: difference,
			})
			balances[p.Name] = difference
		}

		totalsByMonth[month] = totals
		balancesByMonth[month] = balances
	}

	return totalsByMonth, balancesByMonth, nil
}

// Months returns every month bucket that has at least one expense, sorted
// chronologically.
func (l *Ledger) Months() []string {
	byMonth := l.ExpensesByMonth()
	months := make([]string, 0, len(byMonth))
	for month := range byMonth {
		months = append(months, month)
	}
	dateutils.SortMonthKeys(months)
	return months
}
