package store

import (
	"errors"
	"fmt"
)

// ErrNotFound: a lookup by id matched no row. Propagated, never retried.
var ErrNotFound = errors.New("entity not found")

// IndexSyncError reports a search-index write or delete that failed after
// the relational write was already acknowledged. The relational result
// stands; the two stores diverge until the next successful write of the same
// id. Repositories return it alongside the persisted entity so callers can
// log it and still report success.
type IndexSyncError struct {
	Entity string
	ID     int64
	Op     string
	Err    error
}

func (e *IndexSyncError) Error() string {
	return fmt.Sprintf("search index %s failed for %s %d: %v", e.Op, e.Entity, e.ID, e.Err)
}

func (e *IndexSyncError) Unwrap() error {
	return e.Err
}
