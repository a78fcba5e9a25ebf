package store

import (
	"context"
	"database/sql"
	"iter"

	"keeper/internal/query"
	"keeper/internal/rowmap"
)

// selectAll streams the join query for one entity. The sequence is lazy and
// restartable; stopping early closes the rows before any further fetch.
func selectAll[E any](ctx context.Context, db Queryer, t query.Table, joins []query.Join, p query.Pageable, scan func(rowmap.Row) (*E, error)) iter.Seq2[*E, error] {
	return func(yield func(*E, error) bool) {
		stmt, args, err := query.BuildSelect(t, joins, p, nil)
		if err != nil {
			yield(nil, err)
			return
		}
		rows, err := db.Query(ctx, stmt, args...)
		if err != nil {
			yield(nil, err)
			return
		}
		defer rows.Close()
		for rows.Next() {
			row := rowmap.Row{}
			if err := rows.MapScan(row); err != nil {
				yield(nil, err)
				return
			}
			e, err := scan(row)
			if err != nil {
				yield(nil, err)
				return
			}
			if e == nil {
				continue
			}
			if !yield(e, nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(nil, err)
		}
	}
}

// selectOne runs the same join query constrained to a single id.
func selectOne[E any](ctx context.Context, db Queryer, t query.Table, joins []query.Join, id int64, scan func(rowmap.Row) (*E, error)) (*E, error) {
	stmt, args, err := query.BuildSelect(t, joins, query.Pageable{}, &query.Condition{Column: "id", Value: id})
	if err != nil {
		return nil, err
	}
	rows, err := db.Query(ctx, stmt, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, ErrNotFound
	}
	row := rowmap.Row{}
	if err := rows.MapScan(row); err != nil {
		return nil, err
	}
	e, err := scan(row)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, ErrNotFound
	}
	return e, nil
}

func mustAffect(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
