package rowmap

import "keeper/internal/models"

// One mapper per entity. Each reads every own attribute and foreign key of
// the entity under the given column prefix and returns nil when the prefixed
// id is NULL: an outer join with no match must not yield a half-populated
// sub-entity. Foreign keys stay bare ids here; nesting is the repository's
// job.

func key(prefix, column string) string {
	if prefix == "" {
		return column
	}
	return prefix + "_" + column
}

func Account(row Row, prefix string) (*models.Account, error) {
	id, err := Int64(row, key(prefix, "id"))
	if err != nil || id == nil {
		return nil, err
	}
	e := &models.Account{ID: *id}
	if e.Name, err = String(row, key(prefix, "name")); err != nil {
		return nil, err
	}
	if e.Number, err = String(row, key(prefix, "number")); err != nil {
		return nil, err
	}
	if e.OpeningBalance, err = Decimal(row, key(prefix, "opening_balance")); err != nil {
		return nil, err
	}
	if e.ParentID, err = Int64(row, key(prefix, "parent_id")); err != nil {
		return nil, err
	}
	if e.AccountTypeID, err = Int64(row, key(prefix, "account_type_id")); err != nil {
		return nil, err
	}
	if e.CurrencyID, err = Int64(row, key(prefix, "currency_id")); err != nil {
		return nil, err
	}
	return e, nil
}

func Transaction(row Row, prefix string) (*models.Transaction, error) {
	id, err := Int64(row, key(prefix, "id"))
	if err != nil || id == nil {
		return nil, err
	}
	e := &models.Transaction{ID: *id}
	if e.TransactionDate, err = Date(row, key(prefix, "transaction_date")); err != nil {
		return nil, err
	}
	if e.Description, err = String(row, key(prefix, "description")); err != nil {
		return nil, err
	}
	if e.ReferenceNumber, err = String(row, key(prefix, "reference_number")); err != nil {
		return nil, err
	}
	if e.WasProposed, err = Bool(row, key(prefix, "was_proposed")); err != nil {
		return nil, err
	}
	if e.WasPosted, err = Bool(row, key(prefix, "was_posted")); err != nil {
		return nil, err
	}
	if e.WasDeleted, err = Bool(row, key(prefix, "was_deleted")); err != nil {
		return nil, err
	}
	if e.WasApproved, err = Bool(row, key(prefix, "was_approved")); err != nil {
		return nil, err
	}
	return e, nil
}

func Entry(row Row, prefix string) (*models.Entry, error) {
	id, err := Int64(row, key(prefix, "id"))
	if err != nil || id == nil {
		return nil, err
	}
	e := &models.Entry{ID: *id}
	if e.Amount, err = Decimal(row, key(prefix, "amount")); err != nil {
		return nil, err
	}
	if e.EntryType, err = EntryType(row, key(prefix, "entry_type")); err != nil {
		return nil, err
	}
	if e.Description, err = String(row, key(prefix, "description")); err != nil {
		return nil, err
	}
	if e.WasProposed, err = Bool(row, key(prefix, "was_proposed")); err != nil {
		return nil, err
	}
	if e.WasPosted, err = Bool(row, key(prefix, "was_posted")); err != nil {
		return nil, err
	}
	if e.WasDeleted, err = Bool(row, key(prefix, "was_deleted")); err != nil {
		return nil, err
	}
	if e.WasApproved, err = Bool(row, key(prefix, "was_approved")); err != nil {
		return nil, err
	}
	if e.AccountID, err = Int64(row, key(prefix, "account_id")); err != nil {
		return nil, err
	}
	if e.TransactionID, err = Int64(row, key(prefix, "transaction_id")); err != nil {
		return nil, err
	}
	return e, nil
}

func BalanceItemType(row Row, prefix string) (*models.BalanceItemType, error) {
	id, err := Int64(row, key(prefix, "id"))
	if err != nil || id == nil {
		return nil, err
	}
	e := &models.BalanceItemType{ID: *id}
	if e.ItemSequence, err = Int64(row, key(prefix, "item_sequence")); err != nil {
		return nil, err
	}
	if e.ItemNumber, err = String(row, key(prefix, "item_number")); err != nil {
		return nil, err
	}
	if e.ShortDescription, err = String(row, key(prefix, "short_description")); err != nil {
		return nil, err
	}
	if e.AccountID, err = Int64(row, key(prefix, "account_id")); err != nil {
		return nil, err
	}
	if e.ParentID, err = Int64(row, key(prefix, "parent_id")); err != nil {
		return nil, err
	}
	return e, nil
}

func BalanceItemValue(row Row, prefix string) (*models.BalanceItemValue, error) {
	id, err := Int64(row, key(prefix, "id"))
	if err != nil || id == nil {
		return nil, err
	}
	e := &models.BalanceItemValue{ID: *id}
	if e.ShortDescription, err = String(row, key(prefix, "short_description")); err != nil {
		return nil, err
	}
	if e.EffectiveDate, err = Date(row, key(prefix, "effective_date")); err != nil {
		return nil, err
	}
	if e.Amount, err = Decimal(row, key(prefix, "amount")); err != nil {
		return nil, err
	}
	if e.ItemTypeID, err = Int64(row, key(prefix, "item_type_id")); err != nil {
		return nil, err
	}
	return e, nil
}

func Dealer(row Row, prefix string) (*models.Dealer, error) {
	id, err := Int64(row, key(prefix, "id"))
	if err != nil || id == nil {
		return nil, err
	}
	e := &models.Dealer{ID: *id}
	if e.Name, err = String(row, key(prefix, "name")); err != nil {
		return nil, err
	}
	if e.DealerTypeID, err = Int64(row, key(prefix, "dealer_type_id")); err != nil {
		return nil, err
	}
	return e, nil
}

func Event(row Row, prefix string) (*models.Event, error) {
	id, err := Int64(row, key(prefix, "id"))
	if err != nil || id == nil {
		return nil, err
	}
	e := &models.Event{ID: *id}
	if e.EventDate, err = Date(row, key(prefix, "event_date")); err != nil {
		return nil, err
	}
	if e.EventTypeID, err = Int64(row, key(prefix, "event_type_id")); err != nil {
		return nil, err
	}
	if e.DealerID, err = Int64(row, key(prefix, "dealer_id")); err != nil {
		return nil, err
	}
	return e, nil
}

func AccountType(row Row, prefix string) (*models.AccountType, error) {
	id, err := Int64(row, key(prefix, "id"))
	if err != nil || id == nil {
		return nil, err
	}
	e := &models.AccountType{ID: *id}
	if e.Name, err = String(row, key(prefix, "name")); err != nil {
		return nil, err
	}
	return e, nil
}

func Currency(row Row, prefix string) (*models.Currency, error) {
	id, err := Int64(row, key(prefix, "id"))
	if err != nil || id == nil {
		return nil, err
	}
	e := &models.Currency{ID: *id}
	if e.Name, err = String(row, key(prefix, "name")); err != nil {
		return nil, err
	}
	if e.Code, err = String(row, key(prefix, "code")); err != nil {
		return nil, err
	}
	return e, nil
}

func DealerType(row Row, prefix string) (*models.DealerType, error) {
	id, err := Int64(row, key(prefix, "id"))
	if err != nil || id == nil {
		return nil, err
	}
	e := &models.DealerType{ID: *id}
	if e.Name, err = String(row, key(prefix, "name")); err != nil {
		return nil, err
	}
	return e, nil
}

func EventType(row Row, prefix string) (*models.EventType, error) {
	id, err := Int64(row, key(prefix, "id"))
	if err != nil || id == nil {
		return nil, err
	}
	e := &models.EventType{ID: *id}
	if e.Name, err = String(row, key(prefix, "name")); err != nil {
		return nil, err
	}
	return e, nil
}
