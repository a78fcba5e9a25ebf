// Package rowmap turns generic result rows into typed entities. A Row is the
// named-field view of one flat result row, either a relational row scanned
// into a map or the stored fields of a search hit; the converters below
// coerce its values into the attribute types the entities carry.
package rowmap

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"keeper/internal/models"

	"github.com/shopspring/decimal"
)

type Row map[string]any

// TypeMismatchError reports a row value that could not be coerced to the
// expected attribute type. Fatal for the row it occurred in.
type TypeMismatchError struct {
	Column string
	Value  any
	Want   string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("column %s: cannot convert %T(%v) to %s", e.Column, e.Value, e.Value, e.Want)
}

func mismatch(column string, value any, want string) error {
	return &TypeMismatchError{Column: column, Value: value, Want: want}
}

// Int64 reads a 64-bit integer column. A missing key counts as NULL: search
// hits omit fields the document never carried.
func Int64(row Row, column string) (*int64, error) {
	v, ok := row[column]
	if !ok || v == nil {
		return nil, nil
	}
	switch t := v.(type) {
	case int64:
		return &t, nil
	case int:
		n := int64(t)
		return &n, nil
	case float64:
		if t != math.Trunc(t) {
			return nil, mismatch(column, v, "int64")
		}
		n := int64(t)
		return &n, nil
	case []byte:
		return parseInt64(column, string(t))
	case string:
		return parseInt64(column, t)
	}
	return nil, mismatch(column, v, "int64")
}

func parseInt64(column, s string) (*int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, mismatch(column, s, "int64")
	}
	return &n, nil
}

func String(row Row, column string) (*string, error) {
	v, ok := row[column]
	if !ok || v == nil {
		return nil, nil
	}
	switch t := v.(type) {
	case string:
		return &t, nil
	case []byte:
		s := string(t)
		return &s, nil
	}
	return nil, mismatch(column, v, "string")
}

// Decimal reads an arbitrary-precision numeric column. Postgres numerics
// arrive as raw bytes, search hits as strings or floats.
func Decimal(row Row, column string) (*decimal.Decimal, error) {
	v, ok := row[column]
	if !ok || v == nil {
		return nil, nil
	}
	switch t := v.(type) {
	case []byte:
		return parseDecimal(column, string(t))
	case string:
		return parseDecimal(column, t)
	case float64:
		d := decimal.NewFromFloat(t)
		return &d, nil
	case int64:
		d := decimal.NewFromInt(t)
		return &d, nil
	case decimal.Decimal:
		return &t, nil
	}
	return nil, mismatch(column, v, "decimal")
}

func parseDecimal(column, s string) (*decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, mismatch(column, s, "decimal")
	}
	return &d, nil
}

const dateLayout = "2006-01-02"

// Date reads a date column (no time component).
func Date(row Row, column string) (*time.Time, error) {
	v, ok := row[column]
	if !ok || v == nil {
		return nil, nil
	}
	switch t := v.(type) {
	case time.Time:
		d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		return &d, nil
	case []byte:
		return parseDate(column, string(t))
	case string:
		return parseDate(column, t)
	}
	return nil, mismatch(column, v, "date")
}

func parseDate(column, s string) (*time.Time, error) {
	if d, err := time.Parse(dateLayout, s); err == nil {
		return &d, nil
	}
	if d, err := time.Parse(time.RFC3339, s); err == nil {
		d = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
		return &d, nil
	}
	return nil, mismatch(column, s, "date")
}

func Bool(row Row, column string) (*bool, error) {
	v, ok := row[column]
	if !ok || v == nil {
		return nil, nil
	}
	switch t := v.(type) {
	case bool:
		return &t, nil
	case []byte:
		return parseBool(column, string(t))
	case string:
		return parseBool(column, t)
	}
	return nil, mismatch(column, v, "bool")
}

func parseBool(column, s string) (*bool, error) {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return nil, mismatch(column, s, "bool")
	}
	return &b, nil
}

// EntryType reads the debit/credit discriminator, a closed string-backed
// enumeration. Any other value is a mismatch, not a new member.
func EntryType(row Row, column string) (*models.EntryType, error) {
	s, err := String(row, column)
	if err != nil || s == nil {
		return nil, err
	}
	et, ok := models.ParseEntryType(*s)
	if !ok {
		return nil, mismatch(column, *s, "entry type")
	}
	return &et, nil
}
