package mapper

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"keeper/internal/dto"
	"keeper/internal/models"
)

func strPtr(s string) *string { return &s }

func intPtr(n int64) *int64 { return &n }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestAccountToDtoReducesRelations(t *testing.T) {
	deepType := &models.AccountType{ID: 2, Name: strPtr("Assets")}
	e := &models.Account{
		ID:             3,
		Name:           strPtr("Petty cash"),
		OpeningBalance: decPtr("2500.00"),
		ParentID:       intPtr(1),
		Parent: &models.Account{
			ID:          1,
			Name:        strPtr("Cash"),
			Number:      strPtr("1000"),
			AccountType: deepType,
		},
		Currency: &models.Currency{ID: 5, Name: strPtr("Kenyan Shilling"), Code: strPtr("KES")},
	}
	d := Account{}.ToDto(e)
	if d.ID == nil || *d.ID != 3 {
		t.Fatalf("id = %v", d.ID)
	}
	if d.ParentAccount == nil || *d.ParentAccount.ID != 1 || *d.ParentAccount.AccountName != "Cash" {
		t.Fatalf("parent ref = %#v", d.ParentAccount)
	}
	if d.Currency == nil || *d.Currency.Code != "KES" {
		t.Fatalf("currency ref = %#v", d.Currency)
	}
	if d.AccountType != nil {
		t.Fatalf("absent relation must stay nil, got %#v", d.AccountType)
	}
}

func TestAccountToEntityFlattensRefs(t *testing.T) {
	d := &dto.Account{
		ID:            intPtr(3),
		AccountName:   strPtr("Petty cash"),
		ParentAccount: &dto.AccountRef{ID: intPtr(1), AccountName: strPtr("Cash")},
		Currency:      &dto.CurrencyRef{ID: intPtr(5)},
	}
	e := Account{}.ToEntity(d)
	if e.ID != 3 {
		t.Fatalf("id = %d", e.ID)
	}
	if e.ParentID == nil || *e.ParentID != 1 {
		t.Fatalf("parent id = %v", e.ParentID)
	}
	if e.CurrencyID == nil || *e.CurrencyID != 5 {
		t.Fatalf("currency id = %v", e.CurrencyID)
	}
	if e.Parent != nil {
		t.Fatal("incoming refs must flatten to ids, not entities")
	}
	if e.AccountTypeID != nil {
		t.Fatalf("absent ref must leave fk nil, got %v", e.AccountTypeID)
	}
}

func TestAccountToEntityZeroIDForNew(t *testing.T) {
	e := Account{}.ToEntity(&dto.Account{AccountName: strPtr("New")})
	if e.ID != 0 {
		t.Fatalf("new dto must map to zero id, got %d", e.ID)
	}
}

func TestAccountPartialUpdateOverlaysOnlyPresentFields(t *testing.T) {
	e := &models.Account{
		ID:       3,
		Name:     strPtr("Petty cash"),
		Number:   strPtr("1000-01"),
		ParentID: intPtr(1),
	}
	Account{}.PartialUpdate(e, &dto.Account{
		AccountName:   strPtr("Petty cash (renamed)"),
		ParentAccount: &dto.AccountRef{ID: intPtr(2)},
	})
	if *e.Name != "Petty cash (renamed)" {
		t.Fatalf("name not overlaid: %v", *e.Name)
	}
	if e.Number == nil || *e.Number != "1000-01" {
		t.Fatalf("absent field must survive: %v", e.Number)
	}
	if e.ParentID == nil || *e.ParentID != 2 {
		t.Fatalf("parent fk not overlaid: %v", e.ParentID)
	}
}

func TestEntryMapperRoundTrip(t *testing.T) {
	et := models.Credit
	e := &models.Entry{
		ID:            11,
		Amount:        decPtr("250.00"),
		EntryType:     &et,
		AccountID:     intPtr(3),
		TransactionID: intPtr(8),
		Account:       &models.Account{ID: 3, Name: strPtr("Petty cash")},
		Transaction:   &models.Transaction{ID: 8, ReferenceNumber: strPtr("TXN-0008")},
	}
	d := Entry{}.ToDto(e)
	if d.Account == nil || *d.Account.AccountName != "Petty cash" {
		t.Fatalf("account ref = %#v", d.Account)
	}
	if d.Transaction == nil || *d.Transaction.ReferenceNumber != "TXN-0008" {
		t.Fatalf("transaction ref = %#v", d.Transaction)
	}

	back := Entry{}.ToEntity(d)
	if back.ID != 11 {
		t.Fatalf("id = %d", back.ID)
	}
	if back.AccountID == nil || *back.AccountID != 3 {
		t.Fatalf("account fk = %v", back.AccountID)
	}
	if back.EntryType == nil || *back.EntryType != models.Credit {
		t.Fatalf("entry type = %v", back.EntryType)
	}
}

func TestTransactionMapperDates(t *testing.T) {
	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	e := &models.Transaction{ID: 8, TransactionDate: &day}
	d := Transaction{}.ToDto(e)
	if d.TransactionDate == nil || !d.TransactionDate.Time.Equal(day) {
		t.Fatalf("dto date = %v", d.TransactionDate)
	}
	back := Transaction{}.ToEntity(d)
	if back.TransactionDate == nil || !back.TransactionDate.Equal(day) {
		t.Fatalf("entity date = %v", back.TransactionDate)
	}
}

func TestBalanceItemValueMapper(t *testing.T) {
	e := &models.BalanceItemValue{
		ID:         21,
		Amount:     decPtr("990.10"),
		ItemTypeID: intPtr(4),
		ItemType:   &models.BalanceItemType{ID: 4, ItemNumber: strPtr("BS-04")},
	}
	d := BalanceItemValue{}.ToDto(e)
	if d.ItemAmount == nil || !d.ItemAmount.Equal(decimal.RequireFromString("990.10")) {
		t.Fatalf("amount = %v", d.ItemAmount)
	}
	if d.ItemType == nil || *d.ItemType.ItemNumber != "BS-04" {
		t.Fatalf("item type ref = %#v", d.ItemType)
	}
}
