package store

import (
	"context"
	"iter"

	"keeper/internal/models"
	"keeper/internal/query"
	"keeper/internal/rowmap"
)

var dealerTable = query.Table{
	Name:    "dealers",
	Alias:   "e",
	Columns: []string{"id", "name", "dealer_type_id"},
}

type DealerRepo struct {
	db  DB
	idx EntityIndex[models.Dealer]
}

func NewDealerRepo(db DB, idx EntityIndex[models.Dealer]) *DealerRepo {
	return &DealerRepo{db: db, idx: idx}
}

func dealerJoins() []query.Join {
	return []query.Join{
		{Table: dealerTypeTable.As("dealer_type"), On: "dealer_type_id", RemoteColumn: "id"},
	}
}

func scanDealer(row rowmap.Row) (*models.Dealer, error) {
	e, err := rowmap.Dealer(row, "e")
	if err != nil || e == nil {
		return nil, err
	}
	if e.DealerType, err = rowmap.DealerType(row, "dealer_type"); err != nil {
		return nil, err
	}
	return e, nil
}

func (r *DealerRepo) FindByID(ctx context.Context, id int64) (*models.Dealer, error) {
	return selectOne(ctx, r.db, dealerTable, dealerJoins(), id, scanDealer)
}

func (r *DealerRepo) FindAll(ctx context.Context, p query.Pageable) iter.Seq2[*models.Dealer, error] {
	return selectAll(ctx, r.db, dealerTable, dealerJoins(), p, scanDealer)
}

func (r *DealerRepo) Save(ctx context.Context, e *models.Dealer) (*models.Dealer, error) {
	if e.ID == 0 {
		err := r.db.GetContext(ctx, &e.ID, `
			INSERT INTO dealers (name, dealer_type_id)
			VALUES ($1, $2)
			RETURNING id
		`, e.Name, e.DealerTypeID)
		if err != nil {
			return nil, err
		}
	} else {
		res, err := r.db.ExecContext(ctx, `
			UPDATE dealers
			SET name = $1, dealer_type_id = $2
			WHERE id = $3
		`, e.Name, e.DealerTypeID, e.ID)
		if err != nil {
			return nil, err
		}
		if err := mustAffect(res); err != nil {
			return nil, err
		}
	}
	if err := r.idx.Index(ctx, e.ID, e); err != nil {
		return e, &IndexSyncError{Entity: "dealer", ID: e.ID, Op: "upsert", Err: err}
	}
	return e, nil
}

func (r *DealerRepo) DeleteByID(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM dealers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if err := mustAffect(res); err != nil {
		return err
	}
	if err := r.idx.DeleteByID(ctx, id); err != nil {
		return &IndexSyncError{Entity: "dealer", ID: id, Op: "delete", Err: err}
	}
	return nil
}

func (r *DealerRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM dealers`)
	return n, err
}
