// Package ledger implements the shared-expense ledger: participant and
// expense bookkeeping, monthly totals, and settlement derivation.
package ledger

import (
	"sync"
	"time"

	"fjacquet/split-ledger/internal/ledgererror"
	"fjacquet/split-ledger/internal/logging"
	"fjacquet/split-ledger/internal/models"

	"github.com/shopspring/decimal"
)

var log = logging.GetLogger()

// SetLogger allows setting a custom logger for this package
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// Ledger owns the participant collection. All reads and mutations are
// serialized behind one mutex per instance, so derived computations never
// observe a collection mid-mutation.
type Ledger struct {
	mu           sync.Mutex
	participants []*models.Participant
}

// New creates an empty ledger.
func New() *Ledger {
	return &Ledger{participants: []*models.Participant{}}
}

// Reset replaces the whole participant collection. Used when loading from
// the persistence adapter.
func (l *Ledger) Reset(participants []*models.Participant) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if participants == nil {
		participants = []*models.Participant{}
	}
	l.participants = participants
}

// Participants returns a copy of the participant slice in iteration order.
// The participants themselves are shared; callers must not mutate them.
func (l *Ledger) Participants() []*models.Participant {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]*models.Participant, len(l.participants))
	copy(out, l.participants)
	return out
}

// Participant looks up a participant by exact name.
func (l *Ledger) Participant(name string) (*models.Participant, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	p := l.find(name)
	return p, p != nil
}

// Count returns the number of participants.
func (l *Ledger) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.participants)
}

// AddParticipant appends a new participant with an empty expense sequence.
// Names are unique with exact, case-sensitive matching.
func (l *Ledger) AddParticipant(name string, paysForTwo bool) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.find(name) != nil {
		return &ledgererror.DuplicateNameError{Name: name}
	}
	l.participants = append(l.participants, models.NewParticipant(name, paysForTwo))
	log.Debug("participant added", logging.Field{Key: logging.FieldParticipant, Value: name})
	return nil
}

// UpdateParticipant renames a participant and sets the weighting flag in
// place. Renaming onto another existing participant is a duplicate-name
// error; the expense sequence is untouched.
func (l *Ledger) UpdateParticipant(oldName, newName string, paysForTwo bool) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	p := l.find(oldName)
	if p == nil {
		return ledgererror.NewParticipantNotFound(oldName)
	}
	if newName != oldName && l.find(newName) != nil {
		return &ledgererror.DuplicateNameError{Name: newName}
	}
	p.Name = newName
	p.PaysForTwo = paysForTwo
	return nil
}

// DeleteParticipant removes a participant and, with it, every expense the
// participant owns. No orphaned expense survives.
func (l *Ledger) DeleteParticipant(name string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, p := range l.participants {
		if p.Name == name {
			l.participants = append(l.participants[:i], l.participants[i+1:]...)
			log.Debug("participant deleted", logging.Field{Key: logging.FieldParticipant, Value: name})
			return nil
		}
	}
	return ledgererror.NewParticipantNotFound(name)
}

// EraseAll drops every participant and expense.
func (l *Ledger) EraseAll() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.participants = []*models.Participant{}
	log.Debug("all ledger data erased")
}

// AddExpense records a new expense for the named participant and returns it.
// An unknown participant name is an error, not a silent no-op: on this
// surface a mistyped name would otherwise lose the expense without a trace.
func (l *Ledger) AddExpense(participantName, invoiceID, description string, value decimal.Decimal, date time.Time) (*models.Expense, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	p := l.find(participantName)
	if p == nil {
		return nil, ledgererror.NewParticipantNotFound(participantName)
	}
	e := models.NewExpense(invoiceID, description, value, date)
	p.AddExpense(e)
	log.Debug("expense added",
		logging.Field{Key: logging.FieldParticipant, Value: participantName},
		logging.Field{Key: logging.FieldExpenseID, Value: e.ID},
		logging.Field{Key: logging.FieldAmount, Value: value.String()})
	return e, nil
}

// UpdateExpense edits an owned expense in place, identified by its ID.
func (l *Ledger) UpdateExpense(participantName, id, invoiceID, description string, value decimal.Decimal, date time.Time) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	p := l.find(participantName)
	if p == nil {
		return ledgererror.NewParticipantNotFound(participantName)
	}
	e := p.Expense(id)
	if e == nil {
		return ledgererror.NewExpenseNotFound(id)
	}
	e.InvoiceID = invoiceID
	e.Description = description
	e.Value = value
	e.Date = date
	return nil
}

// RemoveExpense deletes a single expense from its owning participant.
func (l *Ledger) RemoveExpense(participantName, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	p := l.find(participantName)
	if p == nil {
		return ledgererror.NewParticipantNotFound(participantName)
	}
	for i, e := range p.Expenses {
		if e.ID == id {
			p.Expenses = append(p.Expenses[:i], p.Expenses[i+1:]...)
			return nil
		}
	}
	return ledgererror.NewExpenseNotFound(id)
}

// find assumes l.mu is held.
func (l *Ledger) find(name string) *models.Participant {
	for _, p := range l.participants {
		if p.Name == name {
			return p
		}
	}
	return nil
}
