package store_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/split-ledger/internal/models"
	"fjacquet/split-ledger/internal/store"
)

func sampleParticipants() []*models.Participant {
	alice := models.NewParticipant("Alice", false)
	alice.AddExpense(models.NewExpense("inv-1", "groceries", decimal.RequireFromString("12.50"),
		time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)))
	alice.AddExpense(models.NewExpense("inv-2", "refund", decimal.RequireFromString("-4.20"),
		time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC)))
	bob := models.NewParticipant("Bob", true)
	return []*models.Participant{alice, bob}
}

func TestStore_LoadMissingFileReturnsEmpty(t *testing.T) {
	s := store.NewStore(filepath.Join(t.TempDir(), "nope.json"))

	participants, err := s.Load()

	require.NoError(t, err)
	assert.Empty(t, participants)
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "expenses_data.json")
	s := store.NewStore(path)

	require.NoError(t, s.Save(sampleParticipants()))

	loaded, err := s.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	alice := loaded[0]
	assert.Equal(t, "Alice", alice.Name)
	assert.False(t, alice.PaysForTwo)
	require.Len(t, alice.Expenses, 2)
	assert.Equal(t, "inv-1", alice.Expenses[0].InvoiceID)
	assert.Equal(t, "groceries", alice.Expenses[0].Description)
	assert.True(t, alice.Expenses[0].Value.Equal(decimal.RequireFromString("12.50")))
	assert.Equal(t, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), alice.Expenses[0].Date)
	assert.True(t, alice.Expenses[1].Value.IsNegative())

	bob := loaded[1]
	assert.Equal(t, "Bob", bob.Name)
	assert.True(t, bob.PaysForTwo)
	assert.Empty(t, bob.Expenses)
}

func TestStore_WireFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expenses_data.json")
	s := store.NewStore(path)
	require.NoError(t, s.Save(sampleParticipants()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	// Values travel as JSON numbers and dates as ISO strings.
	var raw []map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Len(t, raw, 2)
	expenses := raw[0]["expenses"].([]interface{})
	first := expenses[0].(map[string]interface{})
	assert.IsType(t, float64(0), first["value"])
	assert.Equal(t, "2024-03-15", first["expense_date"])
	assert.NotEmpty(t, first["id"])
	assert.Equal(t, "inv-1", first["invoice_id"])
	assert.Equal(t, false, raw[0]["pays_for_two"])
}

func TestStore_SaveEmptyCollection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expenses_data.json")
	s := store.NewStore(path)

	require.NoError(t, s.Save(nil))

	participants, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, participants)
}

func TestStore_LoadMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expenses_data.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := store.NewStore(path).Load()
	assert.Error(t, err)
}

func TestStore_LoadRejectsBadDate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expenses_data.json")
	payload := `[{"name":"A","pays_for_two":false,"expenses":[
		{"id":"x","invoice_id":"","description":"","value":10,"expense_date":"15.03.2024"}]}]`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0644))

	_, err := store.NewStore(path).Load()
	assert.Error(t, err)
}

func TestStore_SaveReplacesPreviousContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expenses_data.json")
	s := store.NewStore(path)
	require.NoError(t, s.Save(sampleParticipants()))

	require.NoError(t, s.Save([]*models.Participant{models.NewParticipant("Only", false)}))

	loaded, err := s.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "Only", loaded[0].Name)
}
