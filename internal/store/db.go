package store

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
)

type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type Getter interface {
	GetContext(ctx context.Context, dest any, query string, args ...any) error
}

// Rows is the named-field row sequence the read path consumes. *sqlx.Rows
// satisfies it directly.
type Rows interface {
	Next() bool
	MapScan(dest map[string]any) error
	Err() error
	Close() error
}

type Queryer interface {
	Query(ctx context.Context, query string, args ...any) (Rows, error)
}

type DB interface {
	Execer
	Getter
	Queryer
}

// EntityIndex is what a repository needs from the search side: mirrored
// upsert and delete, keyed by the relational id.
type EntityIndex[E any] interface {
	Index(ctx context.Context, id int64, e *E) error
	DeleteByID(ctx context.Context, id int64) error
}

// SQLDB adapts a sqlx connection to the DB interface.
type SQLDB struct {
	*sqlx.DB
}

func NewDB(db *sqlx.DB) SQLDB {
	return SQLDB{DB: db}
}

func (s SQLDB) Query(ctx context.Context, query string, args ...any) (Rows, error) {
	return s.DB.QueryxContext(ctx, query, args...)
}
