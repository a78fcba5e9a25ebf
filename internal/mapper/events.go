package mapper

import (
	"keeper/internal/dto"
	"keeper/internal/models"
)

func dealerRef(e *models.Dealer) *dto.DealerRef {
	if e == nil {
		return nil
	}
	return &dto.DealerRef{ID: idPtr(e.ID), Name: e.Name}
}

func dealerTypeRef(e *models.DealerType) *dto.DealerTypeRef {
	if e == nil {
		return nil
	}
	return &dto.DealerTypeRef{ID: idPtr(e.ID), Name: e.Name}
}

func eventTypeRef(e *models.EventType) *dto.EventTypeRef {
	if e == nil {
		return nil
	}
	return &dto.EventTypeRef{ID: idPtr(e.ID), Name: e.Name}
}

type Dealer struct{}

func (Dealer) DtoID(d *dto.Dealer) *int64 { return d.ID }

func (Dealer) ToEntity(d *dto.Dealer) *models.Dealer {
	if d == nil {
		return nil
	}
	e := &models.Dealer{ID: idOf(d.ID), Name: d.Name}
	if d.DealerType != nil {
		e.DealerTypeID = d.DealerType.ID
	}
	return e
}

func (Dealer) ToDto(e *models.Dealer) *dto.Dealer {
	if e == nil {
		return nil
	}
	return &dto.Dealer{
		ID:         idPtr(e.ID),
		Name:       e.Name,
		DealerType: dealerTypeRef(e.DealerType),
	}
}

func (Dealer) PartialUpdate(e *models.Dealer, d *dto.Dealer) {
	if d.Name != nil {
		e.Name = d.Name
	}
	if d.DealerType != nil {
		e.DealerTypeID = d.DealerType.ID
	}
}

type Event struct{}

func (Event) DtoID(d *dto.Event) *int64 { return d.ID }

func (Event) ToEntity(d *dto.Event) *models.Event {
	if d == nil {
		return nil
	}
	e := &models.Event{ID: idOf(d.ID), EventDate: toTime(d.EventDate)}
	if d.EventType != nil {
		e.EventTypeID = d.EventType.ID
	}
	if d.Dealer != nil {
		e.DealerID = d.Dealer.ID
	}
	return e
}

func (Event) ToDto(e *models.Event) *dto.Event {
	if e == nil {
		return nil
	}
	return &dto.Event{
		ID:        idPtr(e.ID),
		EventDate: toDate(e.EventDate),
		EventType: eventTypeRef(e.EventType),
		Dealer:    dealerRef(e.Dealer),
	}
}

func (Event) PartialUpdate(e *models.Event, d *dto.Event) {
	if d.EventDate != nil {
		e.EventDate = toTime(d.EventDate)
	}
	if d.EventType != nil {
		e.EventTypeID = d.EventType.ID
	}
	if d.Dealer != nil {
		e.DealerID = d.Dealer.ID
	}
}
