package store

import (
	"context"
	"strings"
	"testing"

	"keeper/internal/models"
	"keeper/internal/query"
	"keeper/internal/rowmap"
)

func TestEntryRepoFindAllHydratesBothSides(t *testing.T) {
	db := stubDB{
		queryFn: func(_ context.Context, stmt string, _ ...any) (Rows, error) {
			if !strings.Contains(stmt, "LEFT OUTER JOIN accounts AS account ON e.account_id = account.id") {
				t.Fatalf("missing account join: %s", stmt)
			}
			if !strings.Contains(stmt, "LEFT OUTER JOIN transactions AS transaction ON e.transaction_id = transaction.id") {
				t.Fatalf("missing transaction join: %s", stmt)
			}
			return &stubRows{rows: []rowmap.Row{{
				"e_id":                         int64(11),
				"e_amount":                     []byte("250.00"),
				"e_entry_type":                 "CREDIT",
				"e_account_id":                 int64(3),
				"e_transaction_id":             int64(8),
				"account_id":                   int64(3),
				"account_name":                 "Petty cash",
				"transaction_id":               int64(8),
				"transaction_reference_number": "TXN-0008",
			}}}, nil
		},
	}
	repo := NewEntryRepo(db, &stubIndex[models.Entry]{})
	var entries []*models.Entry
	for e, err := range repo.FindAll(context.Background(), query.Pageable{}) {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		entries = append(entries, e)
	}
	if len(entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(entries))
	}
	e := entries[0]
	if e.EntryType == nil || *e.EntryType != models.Credit {
		t.Fatalf("entry type = %v", e.EntryType)
	}
	if e.Account == nil || e.Account.Name == nil || *e.Account.Name != "Petty cash" {
		t.Fatalf("account not hydrated: %#v", e.Account)
	}
	if e.Transaction == nil || e.Transaction.ReferenceNumber == nil || *e.Transaction.ReferenceNumber != "TXN-0008" {
		t.Fatalf("transaction not hydrated: %#v", e.Transaction)
	}
}
