package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense represents a single cost paid by a participant. Value is signed:
// negative values are refunds or corrections and flow through the balance
// math unchanged.
type Expense struct {
	ID          string          `json:"id" yaml:"id"`
	InvoiceID   string          `json:"invoice_id" yaml:"invoice_id"`
	Description string          `json:"description" yaml:"description"`
	Value       decimal.Decimal `json:"value" yaml:"value"`
	Date        time.Time       `json:"expense_date" yaml:"expense_date"`
}

// NewExpense creates an expense with a freshly generated ID. The ID exists
// only so a specific expense can be referenced later (editing, removal); it
// carries no ordering or equality semantics.
func NewExpense(invoiceID, description string, value decimal.Decimal, date time.Time) *Expense {
	return &Expense{
		ID:          uuid.NewString(),
		InvoiceID:   invoiceID,
		Description: description,
		Value:       value,
		Date:        date,
	}
}
