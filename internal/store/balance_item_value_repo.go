package store

import (
	"context"
	"iter"

	"keeper/internal/models"
	"keeper/internal/query"
	"keeper/internal/rowmap"
)

var balanceItemValueTable = query.Table{
	Name:    "balance_item_values",
	Alias:   "e",
	Columns: []string{"id", "short_description", "effective_date", "amount", "item_type_id"},
}

type BalanceItemValueRepo struct {
	db  DB
	idx EntityIndex[models.BalanceItemValue]
}

func NewBalanceItemValueRepo(db DB, idx EntityIndex[models.BalanceItemValue]) *BalanceItemValueRepo {
	return &BalanceItemValueRepo{db: db, idx: idx}
}

func balanceItemValueJoins() []query.Join {
	return []query.Join{
		{Table: balanceItemTypeTable.As("item_type"), On: "item_type_id", RemoteColumn: "id"},
	}
}

func scanBalanceItemValue(row rowmap.Row) (*models.BalanceItemValue, error) {
	e, err := rowmap.BalanceItemValue(row, "e")
	if err != nil || e == nil {
		return nil, err
	}
	if e.ItemType, err = rowmap.BalanceItemType(row, "item_type"); err != nil {
		return nil, err
	}
	return e, nil
}

func (r *BalanceItemValueRepo) FindByID(ctx context.Context, id int64) (*models.BalanceItemValue, error) {
	return selectOne(ctx, r.db, balanceItemValueTable, balanceItemValueJoins(), id, scanBalanceItemValue)
}

func (r *BalanceItemValueRepo) FindAll(ctx context.Context, p query.Pageable) iter.Seq2[*models.BalanceItemValue, error] {
	return selectAll(ctx, r.db, balanceItemValueTable, balanceItemValueJoins(), p, scanBalanceItemValue)
}

func (r *BalanceItemValueRepo) Save(ctx context.Context, e *models.BalanceItemValue) (*models.BalanceItemValue, error) {
	if e.ID == 0 {
		err := r.db.GetContext(ctx, &e.ID, `
			INSERT INTO balance_item_values (short_description, effective_date, amount, item_type_id)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`, e.ShortDescription, e.EffectiveDate, e.Amount, e.ItemTypeID)
		if err != nil {
			return nil, err
		}
	} else {
		res, err := r.db.ExecContext(ctx, `
			UPDATE balance_item_values
			SET short_description = $1, effective_date = $2, amount = $3, item_type_id = $4
			WHERE id = $5
		`, e.ShortDescription, e.EffectiveDate, e.Amount, e.ItemTypeID, e.ID)
		if err != nil {
			return nil, err
		}
		if err := mustAffect(res); err != nil {
			return nil, err
		}
	}
	if err := r.idx.Index(ctx, e.ID, e); err != nil {
		return e, &IndexSyncError{Entity: "balance item value", ID: e.ID, Op: "upsert", Err: err}
	}
	return e, nil
}

func (r *BalanceItemValueRepo) DeleteByID(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM balance_item_values WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if err := mustAffect(res); err != nil {
		return err
	}
	if err := r.idx.DeleteByID(ctx, id); err != nil {
		return &IndexSyncError{Entity: "balance item value", ID: id, Op: "delete", Err: err}
	}
	return nil
}

func (r *BalanceItemValueRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM balance_item_values`)
	return n, err
}
