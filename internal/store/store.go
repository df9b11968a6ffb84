// Package store is the persistence adapter: it serializes the participant
// collection to a JSON data file and reconstructs it on load. No ledger
// logic lives here; the core never sees the wire format.
package store

import (
	"encoding/json"
	"fmt"
	"os"

	"fjacquet/split-ledger/internal/dateutils"
	"fjacquet/split-ledger/internal/fileutils"
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

// Store reads and writes the participant collection at a fixed path.
type Store struct {
	Path string
}

// NewStore creates a store for the given data file path.
func NewStore(path string) *Store {
	return &Store{Path: path}
}

// participantRecord and expenseRecord are the on-disk shapes. Expense dates
// travel as ISO date strings and values as plain JSON numbers.
type participantRecord struct {
	Name       string          `json:"name"`
	PaysForTwo bool            `json:"pays_for_two"`
	Expenses   []expenseRecord `json:"expenses"`
}

type expenseRecord struct {
	ID          string      `json:"id"`
	InvoiceID   string      `json:"invoice_id"`
	Description string      `json:"description"`
	Value       json.Number `json:"value"`
	ExpenseDate string      `json:"expense_date"`
}

// Load reconstructs the participant collection from the data file. A
// missing file is not an error: it yields the empty collection, matching
// first-run behavior. Malformed content is an error.
func (s *Store) Load() ([]*models.Participant, error) {
	if !fileutils.FileExists(s.Path) {
		log.Debug("data file not found, starting with empty ledger",
			logging.Field{Key: logging.FieldDataFile, Value: s.Path})
		return []*models.Participant{}, nil
	}

	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("error reading data file %s: %w", s.Path, err)
	}

	var records []participantRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("error parsing data file %s: %w", s.Path, err)
	}

	participants := make([]*models.Participant, 0, len(records))
	for _, rec := range records {
		p, err := recordToParticipant(rec)
		if err != nil {
			return nil, fmt.Errorf("error in data file %s: %w", s.Path, err)
		}
		participants = append(participants, p)
	}

	log.Debug("loaded ledger data",
		logging.Field{Key: logging.FieldDataFile, Value: s.Path},
		logging.Field{Key: logging.FieldCount, Value: len(participants)})
	return participants, nil
}

// Save writes the full participant collection, replacing the data file
// atomically.
func (s *Store) Save(participants []*models.Participant) error {
	records := make([]participantRecord, 0, len(participants))
	for _, p := range participants {
		records = append(records, participantToRecord(p))
	}

	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return fmt.Errorf("error marshaling ledger data: %w", err)
	}

	if err := fileutils.WriteFileAtomic(s.Path, data, 0644); err != nil {
		return fmt.Errorf("error writing data file %s: %w", s.Path, err)
	}

	log.Debug("saved ledger data",
		logging.Field{Key: logging.FieldDataFile, Value: s.Path},
		logging.Field{Key: logging.FieldCount, Value: len(participants)})
	return nil
}

func participantToRecord(p *models.Participant) participantRecord {
	expenses := make([]expenseRecord, 0, len(p.Expenses))
	for _, e := range p.Expenses {
		expenses = append(expenses, expenseRecord{
			ID:          e.ID,
			InvoiceID:   e.InvoiceID,
			Description: e.Description,
			Value:       json.Number(e.Value.String()),
			ExpenseDate: dateutils.ToISODate(e.Date),
		})
	}
	return participantRecord{
		Name:       p.Name,
		PaysForTwo: p.PaysForTwo,
		Expenses:   expenses,
	}
}

func recordToParticipant(rec participantRecord) (*models.Participant, error) {
	p := models.NewParticipant(rec.Name, rec.PaysForTwo)
	for _, er := range rec.Expenses {
		value, err := decimal.NewFromString(er.Value.String())
		if err != nil {
			return nil, fmt.Errorf("expense %s has invalid value '%s': %w", er.ID, er.Value, err)
		}
		date, err := dateutils.ParseExpenseDate(er.ExpenseDate)
		if err != nil {
			return nil, fmt.Errorf("expense %s has invalid date: %w", er.ID, err)
		}
		p.AddExpense(&models.Expense{
			ID:          er.ID,
			InvoiceID:   er.InvoiceID,
			Description: er.Description,
			Value:       value,
			Date:        date,
		})
	}
	return p, nil
}
