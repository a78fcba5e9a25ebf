package rowmap

import (
	"testing"
	"time"
)

func TestAccountMapperReadsPrefixedColumns(t *testing.T) {
	row := Row{
		"e_id":              int64(3),
		"e_name":            "Petty cash",
		"e_number":          []byte("1000-01"),
		"e_opening_balance": []byte("2500.00"),
		"e_parent_id":       int64(1),
		"e_account_type_id": nil,
		"e_currency_id":     int64(5),
	}
	e, err := Account(row, "e")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.ID != 3 {
		t.Fatalf("id = %d", e.ID)
	}
	if e.Name == nil || *e.Name != "Petty cash" {
		t.Fatalf("name = %v", e.Name)
	}
	if e.Number == nil || *e.Number != "1000-01" {
		t.Fatalf("number = %v", e.Number)
	}
	if e.OpeningBalance == nil || e.OpeningBalance.String() != "2500" {
		t.Fatalf("opening balance = %v", e.OpeningBalance)
	}
	if e.ParentID == nil || *e.ParentID != 1 {
		t.Fatalf("parent id = %v", e.ParentID)
	}
	if e.AccountTypeID != nil {
		t.Fatalf("account type id should be nil, got %v", e.AccountTypeID)
	}
	if e.Parent != nil || e.AccountType != nil || e.Currency != nil {
		t.Fatal("mapper must not populate nested entities")
	}
}

func TestMapperNilWhenPrefixedIDIsNull(t *testing.T) {
	row := Row{
		"e_id":        int64(3),
		"parent_id":   nil,
		"parent_name": "should not matter",
	}
	e, err := Account(row, "parent")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e != nil {
		t.Fatalf("expected nil entity for null join, got %#v", e)
	}
}

func TestMapperEmptyPrefixReadsBareColumns(t *testing.T) {
	row := Row{
		"id":   int64(9),
		"name": "Banks",
	}
	e, err := AccountType(row, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e == nil || e.ID != 9 || e.Name == nil || *e.Name != "Banks" {
		t.Fatalf("unexpected entity: %#v", e)
	}
}

func TestMapperPropagatesMismatch(t *testing.T) {
	row := Row{
		"e_id":     int64(4),
		"e_amount": true,
	}
	if _, err := Entry(row, "e"); err == nil {
		t.Fatal("expected mismatch error")
	}
}

func TestEventMapperDates(t *testing.T) {
	row := Row{
		"e_id":            int64(2),
		"e_event_date":    time.Date(2024, 6, 1, 13, 0, 0, 0, time.UTC),
		"e_event_type_id": int64(1),
		"e_dealer_id":     nil,
	}
	e, err := Event(row, "e")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	if e.EventDate == nil || !e.EventDate.Equal(want) {
		t.Fatalf("event date = %v, want %v", e.EventDate, want)
	}
	if e.DealerID != nil {
		t.Fatalf("dealer id should be nil, got %v", e.DealerID)
	}
}
