package rowmap

import (
	"errors"
	"testing"
	"time"

	"keeper/internal/models"
)

func TestInt64Coercions(t *testing.T) {
	row := Row{
		"a": int64(7),
		"b": 7,
		"c": float64(7),
		"d": []byte("7"),
		"e": "7",
	}
	for _, col := range []string{"a", "b", "c", "d", "e"} {
		got, err := Int64(row, col)
		if err != nil {
			t.Fatalf("column %s: unexpected error: %v", col, err)
		}
		if got == nil || *got != 7 {
			t.Fatalf("column %s: got %v, want 7", col, got)
		}
	}
}

func TestInt64NullAndMissing(t *testing.T) {
	row := Row{"a": nil}
	if got, err := Int64(row, "a"); err != nil || got != nil {
		t.Fatalf("null column: got %v, %v", got, err)
	}
	if got, err := Int64(row, "absent"); err != nil || got != nil {
		t.Fatalf("missing column: got %v, %v", got, err)
	}
}

func TestInt64Mismatch(t *testing.T) {
	row := Row{"a": 7.5, "b": true}
	for _, col := range []string{"a", "b"} {
		_, err := Int64(row, col)
		var tm *TypeMismatchError
		if !errors.As(err, &tm) {
			t.Fatalf("column %s: expected TypeMismatchError, got %v", col, err)
		}
		if tm.Column != col {
			t.Fatalf("mismatch names column %q, want %q", tm.Column, col)
		}
	}
}

func TestDecimalCoercions(t *testing.T) {
	row := Row{
		"bytes":  []byte("1500.50"),
		"string": "1500.50",
	}
	for _, col := range []string{"bytes", "string"} {
		got, err := Decimal(row, col)
		if err != nil {
			t.Fatalf("column %s: unexpected error: %v", col, err)
		}
		if got == nil || got.String() != "1500.5" {
			t.Fatalf("column %s: got %v", col, got)
		}
	}
	if _, err := Decimal(Row{"x": "not a number"}, "x"); err == nil {
		t.Fatal("expected mismatch for unparseable decimal")
	}
}

func TestDateTruncatesTimeComponent(t *testing.T) {
	row := Row{
		"t": time.Date(2024, 3, 15, 17, 45, 3, 0, time.FixedZone("X", 3600)),
		"s": "2024-03-15",
		"r": "2024-03-15T17:45:03Z",
	}
	want := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	for _, col := range []string{"t", "s", "r"} {
		got, err := Date(row, col)
		if err != nil {
			t.Fatalf("column %s: unexpected error: %v", col, err)
		}
		if got == nil || !got.Equal(want) {
			t.Fatalf("column %s: got %v, want %v", col, got, want)
		}
	}
}

func TestBoolCoercions(t *testing.T) {
	row := Row{"a": true, "b": "true", "c": []byte("false")}
	if got, _ := Bool(row, "a"); got == nil || !*got {
		t.Fatalf("bool column: got %v", got)
	}
	if got, _ := Bool(row, "b"); got == nil || !*got {
		t.Fatalf("string column: got %v", got)
	}
	if got, _ := Bool(row, "c"); got == nil || *got {
		t.Fatalf("bytes column: got %v", got)
	}
	if _, err := Bool(Row{"x": "maybe"}, "x"); err == nil {
		t.Fatal("expected mismatch for unparseable bool")
	}
}

func TestEntryTypeClosedEnum(t *testing.T) {
	got, err := EntryType(Row{"entry_type": "DEBIT"}, "entry_type")
	if err != nil || got == nil || *got != models.Debit {
		t.Fatalf("got %v, %v", got, err)
	}
	if got, err := EntryType(Row{}, "entry_type"); err != nil || got != nil {
		t.Fatalf("missing column: got %v, %v", got, err)
	}
	_, err = EntryType(Row{"entry_type": "TRANSFER"}, "entry_type")
	var tm *TypeMismatchError
	if !errors.As(err, &tm) {
		t.Fatalf("expected TypeMismatchError for unknown member, got %v", err)
	}
}
