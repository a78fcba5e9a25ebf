package mapper

import (
	"keeper/internal/dto"
	"keeper/internal/models"
)

type AccountType struct{}

func (AccountType) DtoID(d *dto.AccountType) *int64 { return d.ID }

func (AccountType) ToEntity(d *dto.AccountType) *models.AccountType {
	if d == nil {
		return nil
	}
	return &models.AccountType{ID: idOf(d.ID), Name: d.Name}
}

func (AccountType) ToDto(e *models.AccountType) *dto.AccountType {
	if e == nil {
		return nil
	}
	return &dto.AccountType{ID: idPtr(e.ID), Name: e.Name}
}

func (AccountType) PartialUpdate(e *models.AccountType, d *dto.AccountType) {
	if d.Name != nil {
		e.Name = d.Name
	}
}

type Currency struct{}

func (Currency) DtoID(d *dto.Currency) *int64 { return d.ID }

func (Currency) ToEntity(d *dto.Currency) *models.Currency {
	if d == nil {
		return nil
	}
	return &models.Currency{ID: idOf(d.ID), Name: d.Name, Code: d.Code}
}

func (Currency) ToDto(e *models.Currency) *dto.Currency {
	if e == nil {
		return nil
	}
	return &dto.Currency{ID: idPtr(e.ID), Name: e.Name, Code: e.Code}
}

func (Currency) PartialUpdate(e *models.Currency, d *dto.Currency) {
	if d.Name != nil {
		e.Name = d.Name
	}
	if d.Code != nil {
		e.Code = d.Code
	}
}

type DealerType struct{}

func (DealerType) DtoID(d *dto.DealerType) *int64 { return d.ID }

func (DealerType) ToEntity(d *dto.DealerType) *models.DealerType {
	if d == nil {
		return nil
	}
	return &models.DealerType{ID: idOf(d.ID), Name: d.Name}
}

func (DealerType) ToDto(e *models.DealerType) *dto.DealerType {
	if e == nil {
		return nil
	}
	return &dto.DealerType{ID: idPtr(e.ID), Name: e.Name}
}

func (DealerType) PartialUpdate(e *models.DealerType, d *dto.DealerType) {
	if d.Name != nil {
		e.Name = d.Name
	}
}

type EventType struct{}

func (EventType) DtoID(d *dto.EventType) *int64 { return d.ID }

func (EventType) ToEntity(d *dto.EventType) *models.EventType {
	if d == nil {
		return nil
	}
	return &models.EventType{ID: idOf(d.ID), Name: d.Name}
}

func (EventType) ToDto(e *models.EventType) *dto.EventType {
	if e == nil {
		return nil
	}
	return &dto.EventType{ID: idPtr(e.ID), Name: e.Name}
}

func (EventType) PartialUpdate(e *models.EventType, d *dto.EventType) {
	if d.Name != nil {
		e.Name = d.Name
	}
}
