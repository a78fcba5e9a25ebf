package store

import (
	"context"
	"database/sql"

	"keeper/internal/rowmap"
)

type stubRows struct {
	rows   []rowmap.Row
	pos    int
	err    error
	closed bool
}

func (r *stubRows) Next() bool {
	if r.pos >= len(r.rows) {
		return false
	}
	r.pos++
	return true
}

func (r *stubRows) MapScan(dest map[string]any) error {
	for k, v := range r.rows[r.pos-1] {
		dest[k] = v
	}
	return nil
}

func (r *stubRows) Err() error { return r.err }

func (r *stubRows) Close() error {
	r.closed = true
	return nil
}

type stubDB struct {
	getFn   func(ctx context.Context, dest any, query string, args ...any) error
	execFn  func(ctx context.Context, query string, args ...any) (sql.Result, error)
	queryFn func(ctx context.Context, query string, args ...any) (Rows, error)
}

func (s stubDB) GetContext(ctx context.Context, dest any, query string, args ...any) error {
	if s.getFn == nil {
		return nil
	}
	return s.getFn(ctx, dest, query, args...)
}

func (s stubDB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if s.execFn == nil {
		return stubResult{rows: 1}, nil
	}
	return s.execFn(ctx, query, args...)
}

func (s stubDB) Query(ctx context.Context, query string, args ...any) (Rows, error) {
	if s.queryFn == nil {
		return &stubRows{}, nil
	}
	return s.queryFn(ctx, query, args...)
}

type stubResult struct {
	rows int64
	err  error
}

func (r stubResult) LastInsertId() (int64, error) {
	return 0, r.err
}

func (r stubResult) RowsAffected() (int64, error) {
	return r.rows, r.err
}

type stubIndex[E any] struct {
	indexErr  error
	deleteErr error
	indexed   []int64
	deleted   []int64
}

func (s *stubIndex[E]) Index(_ context.Context, id int64, _ *E) error {
	if s.indexErr != nil {
		return s.indexErr
	}
	s.indexed = append(s.indexed, id)
	return nil
}

func (s *stubIndex[E]) DeleteByID(_ context.Context, id int64) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deleted = append(s.deleted, id)
	return nil
}
