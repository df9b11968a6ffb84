package logging

// Standardized field names for structured logging. Using the same keys
// everywhere keeps log output easy to filter.
const (
	FieldParticipant = "participant"
	FieldExpenseID   = "expense_id"
	FieldMonth       = "month"
	FieldAmount      = "amount"
	FieldCount       = "count"
	FieldDataFile    = "data_file"
	FieldFormat      = "format"
	FieldOutputFile  = "output_file"
	FieldError       = "error"
)
