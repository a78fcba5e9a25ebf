package store

import (
	"context"
	"iter"

	"keeper/internal/models"
	"keeper/internal/query"
	"keeper/internal/rowmap"
)

// The four lookup tables (account types, currencies, dealer types, event
// types) are flat id+name rows with no relations, so their repositories
// share this file.

var accountTypeTable = query.Table{
	Name:    "account_types",
	Alias:   "e",
	Columns: []string{"id", "name"},
}

type AccountTypeRepo struct {
	db  DB
	idx EntityIndex[models.AccountType]
}

func NewAccountTypeRepo(db DB, idx EntityIndex[models.AccountType]) *AccountTypeRepo {
	return &AccountTypeRepo{db: db, idx: idx}
}

func scanAccountType(row rowmap.Row) (*models.AccountType, error) {
	return rowmap.AccountType(row, "e")
}

func (r *AccountTypeRepo) FindByID(ctx context.Context, id int64) (*models.AccountType, error) {
	return selectOne(ctx, r.db, accountTypeTable, nil, id, scanAccountType)
}

func (r *AccountTypeRepo) FindAll(ctx context.Context, p query.Pageable) iter.Seq2[*models.AccountType, error] {
	return selectAll(ctx, r.db, accountTypeTable, nil, p, scanAccountType)
}

func (r *AccountTypeRepo) Save(ctx context.Context, e *models.AccountType) (*models.AccountType, error) {
	if e.ID == 0 {
		if err := r.db.GetContext(ctx, &e.ID, `INSERT INTO account_types (name) VALUES ($1) RETURNING id`, e.Name); err != nil {
			return nil, err
		}
	} else {
		res, err := r.db.ExecContext(ctx, `UPDATE account_types SET name = $1 WHERE id = $2`, e.Name, e.ID)
		if err != nil {
			return nil, err
		}
		if err := mustAffect(res); err != nil {
			return nil, err
		}
	}
	if err := r.idx.Index(ctx, e.ID, e); err != nil {
		return e, &IndexSyncError{Entity: "account type", ID: e.ID, Op: "upsert", Err: err}
	}
	return e, nil
}

func (r *AccountTypeRepo) DeleteByID(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM account_types WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if err := mustAffect(res); err != nil {
		return err
	}
	if err := r.idx.DeleteByID(ctx, id); err != nil {
		return &IndexSyncError{Entity: "account type", ID: id, Op: "delete", Err: err}
	}
	return nil
}

func (r *AccountTypeRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM account_types`)
	return n, err
}

var currencyTable = query.Table{
	Name:    "currencies",
	Alias:   "e",
	Columns: []string{"id", "name", "code"},
}

type CurrencyRepo struct {
	db  DB
	idx EntityIndex[models.Currency]
}

func NewCurrencyRepo(db DB, idx EntityIndex[models.Currency]) *CurrencyRepo {
	return &CurrencyRepo{db: db, idx: idx}
}

func scanCurrency(row rowmap.Row) (*models.Currency, error) {
	return rowmap.Currency(row, "e")
}

func (r *CurrencyRepo) FindByID(ctx context.Context, id int64) (*models.Currency, error) {
	return selectOne(ctx, r.db, currencyTable, nil, id, scanCurrency)
}

func (r *CurrencyRepo) FindAll(ctx context.Context, p query.Pageable) iter.Seq2[*models.Currency, error] {
	return selectAll(ctx, r.db, currencyTable, nil, p, scanCurrency)
}

func (r *CurrencyRepo) Save(ctx context.Context, e *models.Currency) (*models.Currency, error) {
	if e.ID == 0 {
		if err := r.db.GetContext(ctx, &e.ID, `INSERT INTO currencies (name, code) VALUES ($1, $2) RETURNING id`, e.Name, e.Code); err != nil {
			return nil, err
		}
	} else {
		res, err := r.db.ExecContext(ctx, `UPDATE currencies SET name = $1, code = $2 WHERE id = $3`, e.Name, e.Code, e.ID)
		if err != nil {
			return nil, err
		}
		if err := mustAffect(res); err != nil {
			return nil, err
		}
	}
	if err := r.idx.Index(ctx, e.ID, e); err != nil {
		return e, &IndexSyncError{Entity: "currency", ID: e.ID, Op: "upsert", Err: err}
	}
	return e, nil
}

func (r *CurrencyRepo) DeleteByID(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM currencies WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if err := mustAffect(res); err != nil {
		return err
	}
	if err := r.idx.DeleteByID(ctx, id); err != nil {
		return &IndexSyncError{Entity: "currency", ID: id, Op: "delete", Err: err}
	}
	return nil
}

func (r *CurrencyRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM currencies`)
	return n, err
}

var dealerTypeTable = query.Table{
	Name:    "dealer_types",
	Alias:   "e",
	Columns: []string{"id", "name"},
}

type DealerTypeRepo struct {
	db  DB
	idx EntityIndex[models.DealerType]
}

func NewDealerTypeRepo(db DB, idx EntityIndex[models.DealerType]) *DealerTypeRepo {
	return &DealerTypeRepo{db: db, idx: idx}
}

func scanDealerType(row rowmap.Row) (*models.DealerType, error) {
	return rowmap.DealerType(row, "e")
}

func (r *DealerTypeRepo) FindByID(ctx context.Context, id int64) (*models.DealerType, error) {
	return selectOne(ctx, r.db, dealerTypeTable, nil, id, scanDealerType)
}

func (r *DealerTypeRepo) FindAll(ctx context.Context, p query.Pageable) iter.Seq2[*models.DealerType, error] {
	return selectAll(ctx, r.db, dealerTypeTable, nil, p, scanDealerType)
}

func (r *DealerTypeRepo) Save(ctx context.Context, e *models.DealerType) (*models.DealerType, error) {
	if e.ID == 0 {
		if err := r.db.GetContext(ctx, &e.ID, `INSERT INTO dealer_types (name) VALUES ($1) RETURNING id`, e.Name); err != nil {
			return nil, err
		}
	} else {
		res, err := r.db.ExecContext(ctx, `UPDATE dealer_types SET name = $1 WHERE id = $2`, e.Name, e.ID)
		if err != nil {
			return nil, err
		}
		if err := mustAffect(res); err != nil {
			return nil, err
		}
	}
	if err := r.idx.Index(ctx, e.ID, e); err != nil {
		return e, &IndexSyncError{Entity: "dealer type", ID: e.ID, Op: "upsert", Err: err}
	}
	return e, nil
}

func (r *DealerTypeRepo) DeleteByID(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM dealer_types WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if err := mustAffect(res); err != nil {
		return err
	}
	if err := r.idx.DeleteByID(ctx, id); err != nil {
		return &IndexSyncError{Entity: "dealer type", ID: id, Op: "delete", Err: err}
	}
	return nil
}

func (r *DealerTypeRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM dealer_types`)
	return n, err
}

var eventTypeTable = query.Table{
	Name:    "event_types",
	Alias:   "e",
	Columns: []string{"id", "name"},
}

type EventTypeRepo struct {
	db  DB
	idx EntityIndex[models.EventType]
}

func NewEventTypeRepo(db DB, idx EntityIndex[models.EventType]) *EventTypeRepo {
	return &EventTypeRepo{db: db, idx: idx}
}

func scanEventType(row rowmap.Row) (*models.EventType, error) {
	return rowmap.EventType(row, "e")
}

func (r *EventTypeRepo) FindByID(ctx context.Context, id int64) (*models.EventType, error) {
	return selectOne(ctx, r.db, eventTypeTable, nil, id, scanEventType)
}

func (r *EventTypeRepo) FindAll(ctx context.Context, p query.Pageable) iter.Seq2[*models.EventType, error] {
	return selectAll(ctx, r.db, eventTypeTable, nil, p, scanEventType)
}

func (r *EventTypeRepo) Save(ctx context.Context, e *models.EventType) (*models.EventType, error) {
	if e.ID == 0 {
		if err := r.db.GetContext(ctx, &e.ID, `INSERT INTO event_types (name) VALUES ($1) RETURNING id`, e.Name); err != nil {
			return nil, err
		}
	} else {
		res, err := r.db.ExecContext(ctx, `UPDATE event_types SET name = $1 WHERE id = $2`, e.Name, e.ID)
		if err != nil {
			return nil, err
		}
		if err := mustAffect(res); err != nil {
			return nil, err
		}
	}
	if err := r.idx.Index(ctx, e.ID, e); err != nil {
		return e, &IndexSyncError{Entity: "event type", ID: e.ID, Op: "upsert", Err: err}
	}
	return e, nil
}

func (r *EventTypeRepo) DeleteByID(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM event_types WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if err := mustAffect(res); err != nil {
		return err
	}
	if err := r.idx.DeleteByID(ctx, id); err != nil {
		return &IndexSyncError{Entity: "event type", ID: id, Op: "delete", Err: err}
	}
	return nil
}

func (r *EventTypeRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM event_types`)
	return n, err
}
