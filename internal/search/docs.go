package search

import (
	"time"

	"keeper/internal/models"
	"keeper/internal/rowmap"

	"github.com/shopspring/decimal"
)

// Document builders flatten an entity into the field set its index carries.
// Field names match the relational column names so the row mappers can read
// a hit with an empty prefix. Nil attributes are omitted rather than stored
// as empty values.

func putString(doc map[string]any, field string, v *string) {
	if v != nil {
		doc[field] = *v
	}
}

func putInt(doc map[string]any, field string, v *int64) {
	if v != nil {
		doc[field] = *v
	}
}

func putBool(doc map[string]any, field string, v *bool) {
	if v != nil {
		doc[field] = *v
	}
}

func putDecimal(doc map[string]any, field string, v *decimal.Decimal) {
	if v != nil {
		doc[field] = v.String()
	}
}

func putDate(doc map[string]any, field string, v *time.Time) {
	if v != nil {
		doc[field] = v.Format("2006-01-02")
	}
}

func NewAccounts(e *Engine) (*Index[models.Account], error) {
	return newIndex(e, "accounts", accountDoc, rowmap.Account)
}

func accountDoc(a *models.Account) map[string]any {
	doc := map[string]any{"id": a.ID}
	putString(doc, "name", a.Name)
	putString(doc, "number", a.Number)
	putDecimal(doc, "opening_balance", a.OpeningBalance)
	putInt(doc, "parent_id", a.ParentID)
	putInt(doc, "account_type_id", a.AccountTypeID)
	putInt(doc, "currency_id", a.CurrencyID)
	return doc
}

func NewTransactions(e *Engine) (*Index[models.Transaction], error) {
	return newIndex(e, "transactions", transactionDoc, rowmap.Transaction)
}

func transactionDoc(t *models.Transaction) map[string]any {
	doc := map[string]any{"id": t.ID}
	putDate(doc, "transaction_date", t.TransactionDate)
	putString(doc, "description", t.Description)
	putString(doc, "reference_number", t.ReferenceNumber)
	putBool(doc, "was_proposed", t.WasProposed)
	putBool(doc, "was_posted", t.WasPosted)
	putBool(doc, "was_deleted", t.WasDeleted)
	putBool(doc, "was_approved", t.WasApproved)
	return doc
}

func NewEntries(e *Engine) (*Index[models.Entry], error) {
	return newIndex(e, "entries", entryDoc, rowmap.Entry)
}

func entryDoc(en *models.Entry) map[string]any {
	doc := map[string]any{"id": en.ID}
	putDecimal(doc, "amount", en.Amount)
	if en.EntryType != nil {
		doc["entry_type"] = string(*en.EntryType)
	}
	putString(doc, "description", en.Description)
	putBool(doc, "was_proposed", en.WasProposed)
	putBool(doc, "was_posted", en.WasPosted)
	putBool(doc, "was_deleted", en.WasDeleted)
	putBool(doc, "was_approved", en.WasApproved)
	putInt(doc, "account_id", en.AccountID)
	putInt(doc, "transaction_id", en.TransactionID)
	return doc
}

func NewBalanceItemTypes(e *Engine) (*Index[models.BalanceItemType], error) {
	return newIndex(e, "balance_item_types", balanceItemTypeDoc, rowmap.BalanceItemType)
}

func balanceItemTypeDoc(t *models.BalanceItemType) map[string]any {
	doc := map[string]any{"id": t.ID}
	putInt(doc, "item_sequence", t.ItemSequence)
	putString(doc, "item_number", t.ItemNumber)
	putString(doc, "short_description", t.ShortDescription)
	putInt(doc, "account_id", t.AccountID)
	putInt(doc, "parent_id", t.ParentID)
	return doc
}

func NewBalanceItemValues(e *Engine) (*Index[models.BalanceItemValue], error) {
	return newIndex(e, "balance_item_values", balanceItemValueDoc, rowmap.BalanceItemValue)
}

func balanceItemValueDoc(v *models.BalanceItemValue) map[string]any {
	doc := map[string]any{"id": v.ID}
	putString(doc, "short_description", v.ShortDescription)
	putDate(doc, "effective_date", v.EffectiveDate)
	putDecimal(doc, "amount", v.Amount)
	putInt(doc, "item_type_id", v.ItemTypeID)
	return doc
}

func NewDealers(e *Engine) (*Index[models.Dealer], error) {
	return newIndex(e, "dealers", dealerDoc, rowmap.Dealer)
}

func dealerDoc(d *models.Dealer) map[string]any {
	doc := map[string]any{"id": d.ID}
	putString(doc, "name", d.Name)
	putInt(doc, "dealer_type_id", d.DealerTypeID)
	return doc
}

func NewEvents(e *Engine) (*Index[models.Event], error) {
	return newIndex(e, "events", eventDoc, rowmap.Event)
}

func eventDoc(ev *models.Event) map[string]any {
	doc := map[string]any{"id": ev.ID}
	putDate(doc, "event_date", ev.EventDate)
	putInt(doc, "event_type_id", ev.EventTypeID)
	putInt(doc, "dealer_id", ev.DealerID)
	return doc
}

func NewAccountTypes(e *Engine) (*Index[models.AccountType], error) {
	return newIndex(e, "account_types", accountTypeDoc, rowmap.AccountType)
}

func accountTypeDoc(t *models.AccountType) map[string]any {
	doc := map[string]any{"id": t.ID}
	putString(doc, "name", t.Name)
	return doc
}

func NewCurrencies(e *Engine) (*Index[models.Currency], error) {
	return newIndex(e, "currencies", currencyDoc, rowmap.Currency)
}

func currencyDoc(c *models.Currency) map[string]any {
	doc := map[string]any{"id": c.ID}
	putString(doc, "name", c.Name)
	putString(doc, "code", c.Code)
	return doc
}

func NewDealerTypes(e *Engine) (*Index[models.DealerType], error) {
	return newIndex(e, "dealer_types", dealerTypeDoc, rowmap.DealerType)
}

func dealerTypeDoc(t *models.DealerType) map[string]any {
	doc := map[string]any{"id": t.ID}
	putString(doc, "name", t.Name)
	return doc
}

func NewEventTypes(e *Engine) (*Index[models.EventType], error) {
	return newIndex(e, "event_types", eventTypeDoc, rowmap.EventType)
}

func eventTypeDoc(t *models.EventType) map[string]any {
	doc := map[string]any{"id": t.ID}
	putString(doc, "name", t.Name)
	return doc
}
