// Package ledgererror defines the error taxonomy for ledger operations.
package ledgererror

import "fmt"

// DuplicateNameError is returned when adding or renaming a participant would
// produce a name that already exists in the ledger. Matching is exact and
// case-sensitive.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("participant '%s' already exists", e.Name)
}

// EmptyLedgerError is returned when totals are requested for a ledger that
// has no participants. It is raised before any per-month work happens.
type EmptyLedgerError struct{}

func (e *EmptyLedgerError) Error() string {
	return "no participants available to calculate totals"
}

// NotFoundError is returned when an operation references a participant or
// expense that does not exist.
type NotFoundError struct {
	Kind string // "participant" or "expense"
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s '%s' not found", e.Kind, e.Name)
}

// InvalidInputError is returned when a value crossing the parsing boundary
// (an amount or a date supplied as text) is malformed.
type InvalidInputError struct {
	Field string
	Value string
	Err   error
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s '%s': %v", e.Field, e.Value, e.Err)
}

func (e *InvalidInputError) Unwrap() error {
	return e.Err
}

// NewParticipantNotFound builds a NotFoundError for a missing participant.
func NewParticipantNotFound(name string) *NotFoundError {
	return &NotFoundError{Kind: "participant", Name: name}
}

// NewExpenseNotFound builds a NotFoundError for a missing expense.
func NewExpenseNotFound(id string) *NotFoundError {
	return &NotFoundError{Kind: "expense", Name: id}
}
