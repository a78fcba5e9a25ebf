// Package dto defines the wire representations served over REST. Field
// names follow the historical API, so several of them carry a
// "transaction" prefix that the internal models dropped.
package dto

import (
	"github.com/shopspring/decimal"

	"keeper/internal/models"
)

// Reduced references carry the related row's id plus its display field and
// nothing deeper. They are what eager relations collapse to on the way out.

type AccountRef struct {
	ID          *int64  `json:"id"`
	AccountName *string `json:"accountName,omitempty"`
}

type AccountTypeRef struct {
	ID   *int64  `json:"id"`
	Name *string `json:"name,omitempty"`
}

type CurrencyRef struct {
	ID   *int64  `json:"id"`
	Code *string `json:"code,omitempty"`
}

type TransactionRef struct {
	ID              *int64  `json:"id"`
	ReferenceNumber *string `json:"referenceNumber,omitempty"`
}

type ItemTypeRef struct {
	ID         *int64  `json:"id"`
	ItemNumber *string `json:"itemNumber,omitempty"`
}

type DealerRef struct {
	ID   *int64  `json:"id"`
	Name *string `json:"name,omitempty"`
}

type DealerTypeRef struct {
	ID   *int64  `json:"id"`
	Name *string `json:"name,omitempty"`
}

type EventTypeRef struct {
	ID   *int64  `json:"id"`
	Name *string `json:"name,omitempty"`
}

type Account struct {
	ID             *int64           `json:"id"`
	AccountName    *string          `json:"accountName,omitempty"`
	AccountNumber  *string          `json:"accountNumber,omitempty"`
	OpeningBalance *decimal.Decimal `json:"openingBalance,omitempty"`
	ParentAccount  *AccountRef      `json:"parentAccount,omitempty"`
	AccountType    *AccountTypeRef  `json:"transactionAccountType,omitempty"`
	Currency       *CurrencyRef     `json:"transactionCurrency,omitempty"`
}

type Transaction struct {
	ID              *int64  `json:"id"`
	TransactionDate *Date   `json:"transactionDate,omitempty"`
	Description     *string `json:"description,omitempty"`
	ReferenceNumber *string `json:"referenceNumber,omitempty"`
	WasProposed     *bool   `json:"wasProposed,omitempty"`
	WasPosted       *bool   `json:"wasPosted,omitempty"`
	WasDeleted      *bool   `json:"wasDeleted,omitempty"`
	WasApproved     *bool   `json:"wasApproved,omitempty"`
}

type Entry struct {
	ID          *int64            `json:"id"`
	EntryAmount *decimal.Decimal  `json:"entryAmount,omitempty"`
	EntryType   *models.EntryType `json:"transactionEntryType,omitempty"`
	Description *string           `json:"description,omitempty"`
	WasProposed *bool             `json:"wasProposed,omitempty"`
	WasPosted   *bool             `json:"wasPosted,omitempty"`
	WasDeleted  *bool             `json:"wasDeleted,omitempty"`
	WasApproved *bool             `json:"wasApproved,omitempty"`
	Account     *AccountRef       `json:"transactionAccount,omitempty"`
	Transaction *TransactionRef   `json:"accountTransaction,omitempty"`
}

type BalanceItemType struct {
	ID               *int64       `json:"id"`
	ItemSequence     *int64       `json:"itemSequence,omitempty"`
	ItemNumber       *string      `json:"itemNumber,omitempty"`
	ShortDescription *string      `json:"shortDescription,omitempty"`
	Account          *AccountRef  `json:"transactionAccount,omitempty"`
	ParentItem       *ItemTypeRef `json:"parentItem,omitempty"`
}

type BalanceItemValue struct {
	ID               *int64           `json:"id"`
	ShortDescription *string          `json:"shortDescription,omitempty"`
	EffectiveDate    *Date            `json:"effectiveDate,omitempty"`
	ItemAmount       *decimal.Decimal `json:"itemAmount,omitempty"`
	ItemType         *ItemTypeRef     `json:"itemType,omitempty"`
}

type Dealer struct {
	ID         *int64         `json:"id"`
	Name       *string        `json:"name,omitempty"`
	DealerType *DealerTypeRef `json:"dealerType,omitempty"`
}

type Event struct {
	ID        *int64        `json:"id"`
	EventDate *Date         `json:"eventDate,omitempty"`
	EventType *EventTypeRef `json:"eventType,omitempty"`
	Dealer    *DealerRef    `json:"dealer,omitempty"`
}

type AccountType struct {
	ID   *int64  `json:"id"`
	Name *string `json:"name,omitempty"`
}

type Currency struct {
	ID   *int64  `json:"id"`
	Name *string `json:"name,omitempty"`
	Code *string `json:"code,omitempty"`
}

type DealerType struct {
	ID   *int64  `json:"id"`
	Name *string `json:"name,omitempty"`
}

type EventType struct {
	ID   *int64  `json:"id"`
	Name *string `json:"name,omitempty"`
}
