package store

import (
	"context"
	"iter"

	"keeper/internal/models"
	"keeper/internal/query"
	"keeper/internal/rowmap"
)

var eventTable = query.Table{
	Name:    "events",
	Alias:   "e",
	Columns: []string{"id", "event_date", "event_type_id", "dealer_id"},
}

type EventRepo struct {
	db  DB
	idx EntityIndex[models.Event]
}

func NewEventRepo(db DB, idx EntityIndex[models.Event]) *EventRepo {
	return &EventRepo{db: db, idx: idx}
}

func eventJoins() []query.Join {
	return []query.Join{
		{Table: eventTypeTable.As("event_type"), On: "event_type_id", RemoteColumn: "id"},
		{Table: dealerTable.As("dealer"), On: "dealer_id", RemoteColumn: "id"},
	}
}

func scanEvent(row rowmap.Row) (*models.Event, error) {
	e, err := rowmap.Event(row, "e")
	if err != nil || e == nil {
		return nil, err
	}
	if e.EventType, err = rowmap.EventType(row, "event_type"); err != nil {
		return nil, err
	}
	if e.Dealer, err = rowmap.Dealer(row, "dealer"); err != nil {
		return nil, err
	}
	return e, nil
}

func (r *EventRepo) FindByID(ctx context.Context, id int64) (*models.Event, error) {
	return selectOne(ctx, r.db, eventTable, eventJoins(), id, scanEvent)
}

func (r *EventRepo) FindAll(ctx context.Context, p query.Pageable) iter.Seq2[*models.Event, error] {
	return selectAll(ctx, r.db, eventTable, eventJoins(), p, scanEvent)
}

func (r *EventRepo) Save(ctx context.Context, e *models.Event) (*models.Event, error) {
	if e.ID == 0 {
		err := r.db.GetContext(ctx, &e.ID, `
			INSERT INTO events (event_date, event_type_id, dealer_id)
			VALUES ($1, $2, $3)
			RETURNING id
		`, e.EventDate, e.EventTypeID, e.DealerID)
		if err != nil {
			return nil, err
		}
	} else {
		res, err := r.db.ExecContext(ctx, `
			UPDATE events
			SET event_date = $1, event_type_id = $2, dealer_id = $3
			WHERE id = $4
		`, e.EventDate, e.EventTypeID, e.DealerID, e.ID)
		if err != nil {
			return nil, err
		}
		if err := mustAffect(res); err != nil {
			return nil, err
		}
	}
	if err := r.idx.Index(ctx, e.ID, e); err != nil {
		return e, &IndexSyncError{Entity: "event", ID: e.ID, Op: "upsert", Err: err}
	}
	return e, nil
}

func (r *EventRepo) DeleteByID(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if err := mustAffect(res); err != nil {
		return err
	}
	if err := r.idx.DeleteByID(ctx, id); err != nil {
		return &IndexSyncError{Entity: "event", ID: id, Op: "delete", Err: err}
	}
	return nil
}

func (r *EventRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM events`)
	return n, err
}
