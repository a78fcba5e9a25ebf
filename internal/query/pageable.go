package query

import "errors"

var (
	// ErrInvalidJoin marks a join spec referencing a column absent from a
	// table's declared column set or reusing an alias. A construction-time
	// configuration error; well-formed entity definitions never trip it.
	ErrInvalidJoin = errors.New("invalid join spec")

	// ErrUnknownColumn marks a where or sort key outside the entity's
	// column set.
	ErrUnknownColumn = errors.New("unknown column")
)

type Sort struct {
	Field string
	Desc  bool
}

func (s Sort) direction() string {
	if s.Desc {
		return "DESC"
	}
	return "ASC"
}

// Pageable carries a zero-based page index, a page size and sort keys. The
// zero value means unpaged: no LIMIT/OFFSET is rendered and ordering is
// store-defined.
type Pageable struct {
	Page int
	Size int
	Sort []Sort
}

func PageOf(page, size int, sort ...Sort) Pageable {
	return Pageable{Page: page, Size: size, Sort: sort}
}

func (p Pageable) Offset() int {
	if p.Size <= 0 {
		return 0
	}
	return p.Page * p.Size
}
