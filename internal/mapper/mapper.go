// Package mapper converts between stored entities and wire DTOs. Outgoing
// relations are reduced to id plus display field, incoming relations are
// flattened to foreign key ids, and partial updates overlay only the DTO
// fields that are present.
package mapper

import (
	"time"

	"keeper/internal/dto"
)

func idPtr(id int64) *int64 {
	if id == 0 {
		return nil
	}
	v := id
	return &v
}

func idOf(p *int64) int64 {
	if p == nil {
		return 0
	}
	return *p
}

func toDate(t *time.Time) *dto.Date {
	if t == nil {
		return nil
	}
	return dto.NewDate(*t)
}

func toTime(d *dto.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}
