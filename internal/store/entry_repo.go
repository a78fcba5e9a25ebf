package store

import (
	"context"
	"iter"

	"keeper/internal/models"
	"keeper/internal/query"
	"keeper/internal/rowmap"
)

var entryTable = query.Table{
	Name:    "entries",
	Alias:   "e",
	Columns: []string{"id", "amount", "entry_type", "description", "was_proposed", "was_posted", "was_deleted", "was_approved", "account_id", "transaction_id"},
}

// EntryRepo joins the owning account and transaction on reads.
type EntryRepo struct {
	db  DB
	idx EntityIndex[models.Entry]
}

func NewEntryRepo(db DB, idx EntityIndex[models.Entry]) *EntryRepo {
	return &EntryRepo{db: db, idx: idx}
}

func entryJoins() []query.Join {
	return []query.Join{
		{Table: accountTable.As("account"), On: "account_id", RemoteColumn: "id"},
		{Table: transactionTable.As("transaction"), On: "transaction_id", RemoteColumn: "id"},
	}
}

func scanEntry(row rowmap.Row) (*models.Entry, error) {
	e, err := rowmap.Entry(row, "e")
	if err != nil || e == nil {
		return nil, err
	}
	if e.Account, err = rowmap.Account(row, "account"); err != nil {
		return nil, err
	}
	if e.Transaction, err = rowmap.Transaction(row, "transaction"); err != nil {
		return nil, err
	}
	return e, nil
}

func (r *EntryRepo) FindByID(ctx context.Context, id int64) (*models.Entry, error) {
	return selectOne(ctx, r.db, entryTable, entryJoins(), id, scanEntry)
}

func (r *EntryRepo) FindAll(ctx context.Context, p query.Pageable) iter.Seq2[*models.Entry, error] {
	return selectAll(ctx, r.db, entryTable, entryJoins(), p, scanEntry)
}

func (r *EntryRepo) Save(ctx context.Context, e *models.Entry) (*models.Entry, error) {
	if e.ID == 0 {
		err := r.db.GetContext(ctx, &e.ID, `
			INSERT INTO entries (amount, entry_type, description, was_proposed, was_posted, was_deleted, was_approved, account_id, transaction_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING id
		`, e.Amount, e.EntryType, e.Description, e.WasProposed, e.WasPosted, e.WasDeleted, e.WasApproved, e.AccountID, e.TransactionID)
		if err != nil {
			return nil, err
		}
	} else {
		res, err := r.db.ExecContext(ctx, `
			UPDATE entries
			SET amount = $1, entry_type = $2, description = $3, was_proposed = $4, was_posted = $5, was_deleted = $6, was_approved = $7, account_id = $8, transaction_id = $9
			WHERE id = $10
		`, e.Amount, e.EntryType, e.Description, e.WasProposed, e.WasPosted, e.WasDeleted, e.WasApproved, e.AccountID, e.TransactionID, e.ID)
		if err != nil {
			return nil, err
		}
		if err := mustAffect(res); err != nil {
			return nil, err
		}
	}
	if err := r.idx.Index(ctx, e.ID, e); err != nil {
		return e, &IndexSyncError{Entity: "entry", ID: e.ID, Op: "upsert", Err: err}
	}
	return e, nil
}

func (r *EntryRepo) DeleteByID(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM entries WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if err := mustAffect(res); err != nil {
		return err
	}
	if err := r.idx.DeleteByID(ctx, id); err != nil {
		return &IndexSyncError{Entity: "entry", ID: id, Op: "delete", Err: err}
	}
	return nil
}

func (r *EntryRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM entries`)
	return n, err
}
