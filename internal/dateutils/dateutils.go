// Package dateutils provides the date parsing and month bucketing helpers
// used throughout the application.
package dateutils

import (
	"errors"
	"sort"
	"strings"
	"time"

	"fjacquet/split-ledger/internal/ledgererror"
)

// Date format constants used throughout the application
const (
	// DateLayoutISO is the wire format for expense dates (YYYY-MM-DD).
	DateLayoutISO = "2006-01-02"
	// MonthKeyLayout is the layout behind month bucket keys such as "MAR 2024".
	MonthKeyLayout = "Jan 2006"
)

// ParseExpenseDate parses an expense date in strict ISO form (YYYY-MM-DD).
// Anything else is rejected: the presentation layer supplies dates in this
// exact shape and malformed input must surface as a distinguishable error
// rather than being coerced.
func ParseExpenseDate(dateStr string) (time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return time.Time{}, &ledgererror.InvalidInputError{
			Field: "date",
			Value: dateStr,
			Err:   errors.New("date is empty"),
		}
	}
	t, err := time.Parse(DateLayoutISO, dateStr)
	if err != nil {
		return time.Time{}, &ledgererror.InvalidInputError{
			Field: "date",
			Value: dateStr,
			Err:   err,
		}
	}
	return t, nil
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD)
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// MonthKey returns the month bucket for a date, e.g. "MAR 2024".
// Keys are derived on demand and never persisted.
func MonthKey(date time.Time) string {
	return strings.ToUpper(date.Format(MonthKeyLayout))
}

// ParseMonthKey parses a month bucket key back into the first day of that
// month. Month name matching is case-insensitive, so "MAR 2024" and
// "Mar 2024" are equivalent.
func ParseMonthKey(key string) (time.Time, error) {
	t, err := time.Parse(MonthKeyLayout, strings.TrimSpace(key))
	if err != nil {
		return time.Time{}, &ledgererror.InvalidInputError{
			Field: "month",
			Value: key,
			Err:   err,
		}
	}
	return t, nil
}

// SortMonthKeys sorts month bucket keys chronologically. Keys that fail to
// parse sort last, keeping their relative order.
func SortMonthKeys(keys []string) {
	sort.SliceStable(keys, func(i, j int) bool {
		ti, erri := ParseMonthKey(keys[i])
		tj, errj := ParseMonthKey(keys[j])
		if erri != nil || errj != nil {
			return erri == nil && errj != nil
		}
		return ti.Before(tj)
	})
}
