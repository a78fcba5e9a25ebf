package store

import (
	"context"
	"iter"

	"keeper/internal/models"
	"keeper/internal/query"
	"keeper/internal/rowmap"
)

var balanceItemTypeTable = query.Table{
	Name:    "balance_item_types",
	Alias:   "e",
	Columns: []string{"id", "item_sequence", "item_number", "short_description", "account_id", "parent_id"},
}

// BalanceItemTypeRepo joins the backing account and the parent item, the
// latter being the same table under a second alias.
type BalanceItemTypeRepo struct {
	db  DB
	idx EntityIndex[models.BalanceItemType]
}

func NewBalanceItemTypeRepo(db DB, idx EntityIndex[models.BalanceItemType]) *BalanceItemTypeRepo {
	return &BalanceItemTypeRepo{db: db, idx: idx}
}

func balanceItemTypeJoins() []query.Join {
	return []query.Join{
		{Table: accountTable.As("account"), On: "account_id", RemoteColumn: "id"},
		{Table: balanceItemTypeTable.As("parent"), On: "parent_id", RemoteColumn: "id"},
	}
}

func scanBalanceItemType(row rowmap.Row) (*models.BalanceItemType, error) {
	e, err := rowmap.BalanceItemType(row, "e")
	if err != nil || e == nil {
		return nil, err
	}
	if e.Account, err = rowmap.Account(row, "account"); err != nil {
		return nil, err
	}
	if e.Parent, err = rowmap.BalanceItemType(row, "parent"); err != nil {
		return nil, err
	}
	return e, nil
}

func (r *BalanceItemTypeRepo) FindByID(ctx context.Context, id int64) (*models.BalanceItemType, error) {
	return selectOne(ctx, r.db, balanceItemTypeTable, balanceItemTypeJoins(), id, scanBalanceItemType)
}

func (r *BalanceItemTypeRepo) FindAll(ctx context.Context, p query.Pageable) iter.Seq2[*models.BalanceItemType, error] {
	return selectAll(ctx, r.db, balanceItemTypeTable, balanceItemTypeJoins(), p, scanBalanceItemType)
}

func (r *BalanceItemTypeRepo) Save(ctx context.Context, e *models.BalanceItemType) (*models.BalanceItemType, error) {
	if e.ID == 0 {
		err := r.db.GetContext(ctx, &e.ID, `
			INSERT INTO balance_item_types (item_sequence, item_number, short_description, account_id, parent_id)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`, e.ItemSequence, e.ItemNumber, e.ShortDescription, e.AccountID, e.ParentID)
		if err != nil {
			return nil, err
		}
	} else {
		res, err := r.db.ExecContext(ctx, `
			UPDATE balance_item_types
			SET item_sequence = $1, item_number = $2, short_description = $3, account_id = $4, parent_id = $5
			WHERE id = $6
		`, e.ItemSequence, e.ItemNumber, e.ShortDescription, e.AccountID, e.ParentID, e.ID)
		if err != nil {
			return nil, err
		}
		if err := mustAffect(res); err != nil {
			return nil, err
		}
	}
	if err := r.idx.Index(ctx, e.ID, e); err != nil {
		return e, &IndexSyncError{Entity: "balance item type", ID: e.ID, Op: "upsert", Err: err}
	}
	return e, nil
}

func (r *BalanceItemTypeRepo) DeleteByID(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM balance_item_types WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if err := mustAffect(res); err != nil {
		return err
	}
	if err := r.idx.DeleteByID(ctx, id); err != nil {
		return &IndexSyncError{Entity: "balance item type", ID: id, Op: "delete", Err: err}
	}
	return nil
}

func (r *BalanceItemTypeRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM balance_item_types`)
	return n, err
}
