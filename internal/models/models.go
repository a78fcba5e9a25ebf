package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryType discriminates the two sides of a ledger line.
type EntryType string

const (
	Debit  EntryType = "DEBIT"
	Credit EntryType = "CREDIT"
)

func ParseEntryType(s string) (EntryType, bool) {
	switch EntryType(s) {
	case Debit, Credit:
		return EntryType(s), true
	}
	return "", false
}

// SameIdentity reports identity-based equality. Ids are assigned by the
// store on first insert; an entity without one never equals anything.
func SameIdentity(a, b int64) bool {
	return a != 0 && a == b
}

// Account is a chart-of-accounts node. Parent forms a forest via ParentID;
// cycles are not structurally prevented, the write path is expected to feed
// sane hierarchies. Parent, AccountType and Currency are populated only by
// an eager read and hold at most one level of the graph.
type Account struct {
	ID             int64
	Name           *string
	Number         *string
	OpeningBalance *decimal.Decimal
	ParentID       *int64
	AccountTypeID  *int64
	CurrencyID     *int64

	Parent      *Account
	AccountType *AccountType
	Currency    *Currency
}

// Transaction is an accounting document. The four Was* flags are independent
// workflow markers, not states of a machine.
type Transaction struct {
	ID              int64
	TransactionDate *time.Time
	Description     *string
	ReferenceNumber *string
	WasProposed     *bool
	WasPosted       *bool
	WasDeleted      *bool
	WasApproved     *bool
}

// Entry is a single debit/credit line belonging to one account and one
// transaction.
type Entry struct {
	ID            int64
	Amount        *decimal.Decimal
	EntryType     *EntryType
	Description   *string
	WasProposed   *bool
	WasPosted     *bool
	WasDeleted    *bool
	WasApproved   *bool
	AccountID     *int64
	TransactionID *int64

	Account     *Account
	Transaction *Transaction
}

// BalanceItemType is a balance-sheet reporting hierarchy node. Same forest
// caveat as Account.
type BalanceItemType struct {
	ID               int64
	ItemSequence     *int64
	ItemNumber       *string
	ShortDescription *string
	AccountID        *int64
	ParentID         *int64

	Account *Account
	Parent  *BalanceItemType
}

type BalanceItemValue struct {
	ID               int64
	ShortDescription *string
	EffectiveDate    *time.Time
	Amount           *decimal.Decimal
	ItemTypeID       *int64

	ItemType *BalanceItemType
}

type Dealer struct {
	ID           int64
	Name         *string
	DealerTypeID *int64

	DealerType *DealerType
}

type Event struct {
	ID          int64
	EventDate   *time.Time
	EventTypeID *int64
	DealerID    *int64

	EventType *EventType
	Dealer    *Dealer
}

type AccountType struct {
	ID   int64
	Name *string
}

type Currency struct {
	ID   int64
	Name *string
	Code *string
}

type DealerType struct {
	ID   int64
	Name *string
}

type EventType struct {
	ID   int64
	Name *string
}

// User backs the authentication layer only; domain entities never reference it.
type User struct {
	ID           string    `db:"id"`
	Username     string    `db:"username"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}
