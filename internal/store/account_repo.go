package store

import (
	"context"
	"iter"

	"keeper/internal/models"
	"keeper/internal/query"
	"keeper/internal/rowmap"
)

var accountTable = query.Table{
	Name:    "accounts",
	Alias:   "e",
	Columns: []string{"id", "name", "number", "opening_balance", "parent_id", "account_type_id", "currency_id"},
}

// AccountRepo keeps the accounts table and its search index in step. Reads
// eagerly join the parent account (the same table under a second alias), the
// account type and the currency, one level deep.
type AccountRepo struct {
	db  DB
	idx EntityIndex[models.Account]
}

func NewAccountRepo(db DB, idx EntityIndex[models.Account]) *AccountRepo {
	return &AccountRepo{db: db, idx: idx}
}

func accountJoins() []query.Join {
	return []query.Join{
		{Table: accountTable.As("parent"), On: "parent_id", RemoteColumn: "id"},
		{Table: accountTypeTable.As("account_type"), On: "account_type_id", RemoteColumn: "id"},
		{Table: currencyTable.As("currency"), On: "currency_id", RemoteColumn: "id"},
	}
}

func scanAccount(row rowmap.Row) (*models.Account, error) {
	e, err := rowmap.Account(row, "e")
	if err != nil || e == nil {
		return nil, err
	}
	if e.Parent, err = rowmap.Account(row, "parent"); err != nil {
		return nil, err
	}
	if e.AccountType, err = rowmap.AccountType(row, "account_type"); err != nil {
		return nil, err
	}
	if e.Currency, err = rowmap.Currency(row, "currency"); err != nil {
		return nil, err
	}
	return e, nil
}

func (r *AccountRepo) FindByID(ctx context.Context, id int64) (*models.Account, error) {
	return selectOne(ctx, r.db, accountTable, accountJoins(), id, scanAccount)
}

func (r *AccountRepo) FindAll(ctx context.Context, p query.Pageable) iter.Seq2[*models.Account, error] {
	return selectAll(ctx, r.db, accountTable, accountJoins(), p, scanAccount)
}

// Save inserts when the entity has no id yet, otherwise rewrites the whole
// row. After the relational write is acknowledged the entity is upserted
// into the search index; an index failure comes back as an IndexSyncError
// next to the persisted entity, never as a rollback.
func (r *AccountRepo) Save(ctx context.Context, e *models.Account) (*models.Account, error) {
	if e.ID == 0 {
		err := r.db.GetContext(ctx, &e.ID, `
			INSERT INTO accounts (name, number, opening_balance, parent_id, account_type_id, currency_id)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id
		`, e.Name, e.Number, e.OpeningBalance, e.ParentID, e.AccountTypeID, e.CurrencyID)
		if err != nil {
			return nil, err
		}
	} else {
		res, err := r.db.ExecContext(ctx, `
			UPDATE accounts
			SET name = $1, number = $2, opening_balance = $3, parent_id = $4, account_type_id = $5, currency_id = $6
			WHERE id = $7
		`, e.Name, e.Number, e.OpeningBalance, e.ParentID, e.AccountTypeID, e.CurrencyID, e.ID)
		if err != nil {
			return nil, err
		}
		if err := mustAffect(res); err != nil {
			return nil, err
		}
	}
	if err := r.idx.Index(ctx, e.ID, e); err != nil {
		return e, &IndexSyncError{Entity: "account", ID: e.ID, Op: "upsert", Err: err}
	}
	return e, nil
}

func (r *AccountRepo) DeleteByID(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if err := mustAffect(res); err != nil {
		return err
	}
	if err := r.idx.DeleteByID(ctx, id); err != nil {
		return &IndexSyncError{Entity: "account", ID: id, Op: "delete", Err: err}
	}
	return nil
}

func (r *AccountRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM accounts`)
	return n, err
}
