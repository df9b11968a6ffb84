// Package models defines the core value objects of the ledger: participants
// and the expenses they own, plus the derived totals and settlement types.
package models

import (
	"fjacquet/split-ledger/internal/dateutils"

	"github.com/shopspring/decimal"
)

// Participant owns an ordered sequence of expenses and a weighting flag.
// Insertion order of expenses is preserved; it drives the deterministic
// ordering of derived computations.
type Participant struct {
	Name       string     `json:"name" yaml:"name"`
	PaysForTwo bool       `json:"pays_for_two" yaml:"pays_for_two"`
	Expenses   []*Expense `json:"expenses" yaml:"expenses"`
}

// NewParticipant creates a participant with an empty expense sequence.
func NewParticipant(name string, paysForTwo bool) *Participant {
	return &Participant{
		Name:       name,
		PaysForTwo: paysForTwo,
		Expenses:   []*Expense{},
	}
}

// Weight returns the participant's share multiplier: 2 when the participant
// pays for two, 1 otherwise.
func (p *Participant) Weight() int64 {
	if p.PaysForTwo {
		return 2
	}
	return 1
}

// AddExpense appends an expense to the participant's sequence.
func (p *Participant) AddExpense(e *Expense) {
	p.Expenses = append(p.Expenses, e)
}

// Expense returns the owned expense with the given ID, or nil.
func (p *Participant) Expense(id string) *Expense {
	for _, e := range p.Expenses {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// TotalExpenses sums every expense value owned by the participant.
func (p *Participant) TotalExpenses() decimal.Decimal {
	total := decimal.Zero
	for _, e := range p.Expenses {
		total = total.Add(e.Value)
	}
	return total
}

// TotalPaidIn sums the participant's expense values restricted to one month
// bucket.
func (p *Participant) TotalPaidIn(monthKey string) decimal.Decimal {
	total := decimal.Zero
	for _, e := range p.Expenses {
		if dateutils.MonthKey(e.Date) == monthKey {
			total = total.Add(e.Value)
		}
	}
	return total
}

// ExpensesIn returns the participant's expenses for one month bucket in
// insertion order.
func (p *Participant) ExpensesIn(monthKey string) []*Expense {
	var out []*Expense
	for _, e := range p.Expenses {
		if dateutils.MonthKey(e.Date) == monthKey {
			out = append(out, e)
		}
	}
	return out
}

// ParticipantTotal is one row of the monthly totals table.
type ParticipantTotal struct {
	Name       string          `json:"name" yaml:"name"`
	TotalPaid  decimal.Decimal `json:"total_paid" yaml:"total_paid"`
	ShouldPay  decimal.Decimal `json:"should_pay" yaml:"should_pay"`
	Difference decimal.Decimal `json:"difference" yaml:"difference"`
}

// BalanceMap maps participant name to that month's difference. Positive
// means the participant is owed money, negative means they owe.
type BalanceMap map[string]decimal.Decimal

// Settlement is a single directed payment instruction: Debtor transfers
// Amount to Creditor. Amount is always strictly positive.
type Settlement struct {
	Debtor   string          `json:"debtor" yaml:"debtor"`
	Creditor string          `json:"creditor" yaml:"creditor"`
	Amount   decimal.Decimal `json:"amount" yaml:"amount"`
}
