// Package query renders paginated select statements over an entity table and
// its one-level left-outer joins. Every projected column is aliased with the
// owning table's alias so a flat result row can be sliced back into entities
// by prefix. Join specs are validated when the statement is built, not when
// it is executed.
package query

import (
	"fmt"
	"slices"
	"strings"
)

// Table describes a relational table, the alias it is projected under and its
// own column set. Joined tables project only this column set, never their own
// relations; eager loading is one level deep by contract.
type Table struct {
	Name    string
	Alias   string
	Columns []string
}

// As returns a copy of the table under a different alias, for joining the
// same table twice (self-referencing hierarchies need a distinct alias for
// the parent side).
func (t Table) As(alias string) Table {
	t.Alias = alias
	return t
}

func (t Table) has(column string) bool {
	return slices.Contains(t.Columns, column)
}

// Join renders one LEFT OUTER JOIN of a related table on an equality between
// a foreign-key column of the entity table and a key column of the related
// table.
type Join struct {
	Table        Table
	On           string // foreign-key column on the entity table
	RemoteColumn string // key column on the joined table
}

// Condition is an equality predicate on a column of the entity table.
type Condition struct {
	Column string
	Value  any
}

// BuildSelect renders the select for an entity table plus its join specs,
// preserving join order. The returned args line up with the rendered
// placeholders. Fails with ErrInvalidJoin or ErrUnknownColumn before any
// statement reaches the store.
func BuildSelect(entity Table, joins []Join, p Pageable, where *Condition) (string, []any, error) {
	if err := validate(entity, joins); err != nil {
		return "", nil, err
	}

	var b strings.Builder
	b.WriteString("SELECT ")
	writeColumns(&b, entity, true)
	for _, j := range joins {
		writeColumns(&b, j.Table, false)
	}
	fmt.Fprintf(&b, "\nFROM %s AS %s", entity.Name, entity.Alias)
	for _, j := range joins {
		fmt.Fprintf(&b, "\nLEFT OUTER JOIN %s AS %s ON %s.%s = %s.%s",
			j.Table.Name, j.Table.Alias, entity.Alias, j.On, j.Table.Alias, j.RemoteColumn)
	}

	var args []any
	if where != nil {
		if !entity.has(where.Column) {
			return "", nil, fmt.Errorf("%w: %q is not a column of %s", ErrUnknownColumn, where.Column, entity.Name)
		}
		args = append(args, where.Value)
		fmt.Fprintf(&b, "\nWHERE %s.%s = $%d", entity.Alias, where.Column, len(args))
	}

	if len(p.Sort) > 0 {
		b.WriteString("\nORDER BY ")
		for i, s := range p.Sort {
			if !entity.has(s.Field) {
				return "", nil, fmt.Errorf("%w: cannot sort by %q on %s", ErrUnknownColumn, s.Field, entity.Name)
			}
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s.%s %s", entity.Alias, s.Field, s.direction())
		}
	}

	if p.Size > 0 {
		fmt.Fprintf(&b, "\nLIMIT %d OFFSET %d", p.Size, p.Offset())
	}
	return b.String(), args, nil
}

func writeColumns(b *strings.Builder, t Table, first bool) {
	for i, col := range t.Columns {
		if !first || i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(b, "%s.%s AS %s_%s", t.Alias, col, t.Alias, col)
	}
}

func validate(entity Table, joins []Join) error {
	seen := map[string]struct{}{entity.Alias: {}}
	for _, j := range joins {
		if _, dup := seen[j.Table.Alias]; dup {
			return fmt.Errorf("%w: alias %q used twice", ErrInvalidJoin, j.Table.Alias)
		}
		seen[j.Table.Alias] = struct{}{}
		if !entity.has(j.On) {
			return fmt.Errorf("%w: %s has no column %q", ErrInvalidJoin, entity.Name, j.On)
		}
		if !j.Table.has(j.RemoteColumn) {
			return fmt.Errorf("%w: %s has no column %q", ErrInvalidJoin, j.Table.Name, j.RemoteColumn)
		}
	}
	return nil
}
