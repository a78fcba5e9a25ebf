package store

import (
	"context"
	"iter"

	"keeper/internal/models"
	"keeper/internal/query"
	"keeper/internal/rowmap"
)

var transactionTable = query.Table{
	Name:    "transactions",
	Alias:   "e",
	Columns: []string{"id", "transaction_date", "description", "reference_number", "was_proposed", "was_posted", "was_deleted", "was_approved"},
}

// TransactionRepo has no relations to join; reads return the bare document.
type TransactionRepo struct {
	db  DB
	idx EntityIndex[models.Transaction]
}

func NewTransactionRepo(db DB, idx EntityIndex[models.Transaction]) *TransactionRepo {
	return &TransactionRepo{db: db, idx: idx}
}

func scanTransaction(row rowmap.Row) (*models.Transaction, error) {
	return rowmap.Transaction(row, "e")
}

func (r *TransactionRepo) FindByID(ctx context.Context, id int64) (*models.Transaction, error) {
	return selectOne(ctx, r.db, transactionTable, nil, id, scanTransaction)
}

func (r *TransactionRepo) FindAll(ctx context.Context, p query.Pageable) iter.Seq2[*models.Transaction, error] {
	return selectAll(ctx, r.db, transactionTable, nil, p, scanTransaction)
}

func (r *TransactionRepo) Save(ctx context.Context, e *models.Transaction) (*models.Transaction, error) {
	if e.ID == 0 {
		err := r.db.GetContext(ctx, &e.ID, `
			INSERT INTO transactions (transaction_date, description, reference_number, was_proposed, was_posted, was_deleted, was_approved)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id
		`, e.TransactionDate, e.Description, e.ReferenceNumber, e.WasProposed, e.WasPosted, e.WasDeleted, e.WasApproved)
		if err != nil {
			return nil, err
		}
	} else {
		res, err := r.db.ExecContext(ctx, `
			UPDATE transactions
			SET transaction_date = $1, description = $2, reference_number = $3, was_proposed = $4, was_posted = $5, was_deleted = $6, was_approved = $7
			WHERE id = $8
		`, e.TransactionDate, e.Description, e.ReferenceNumber, e.WasProposed, e.WasPosted, e.WasDeleted, e.WasApproved, e.ID)
		if err != nil {
			return nil, err
		}
		if err := mustAffect(res); err != nil {
			return nil, err
		}
	}
	if err := r.idx.Index(ctx, e.ID, e); err != nil {
		return e, &IndexSyncError{Entity: "transaction", ID: e.ID, Op: "upsert", Err: err}
	}
	return e, nil
}

func (r *TransactionRepo) DeleteByID(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if err := mustAffect(res); err != nil {
		return err
	}
	if err := r.idx.DeleteByID(ctx, id); err != nil {
		return &IndexSyncError{Entity: "transaction", ID: id, Op: "delete", Err: err}
	}
	return nil
}

func (r *TransactionRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM transactions`)
	return n, err
}
