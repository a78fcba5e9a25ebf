package mapper

import (
	"keeper/internal/dto"
	"keeper/internal/models"
)

func itemTypeRef(e *models.BalanceItemType) *dto.ItemTypeRef {
	if e == nil {
		return nil
	}
	return &dto.ItemTypeRef{ID: idPtr(e.ID), ItemNumber: e.ItemNumber}
}

type BalanceItemType struct{}

func (BalanceItemType) DtoID(d *dto.BalanceItemType) *int64 { return d.ID }

func (BalanceItemType) ToEntity(d *dto.BalanceItemType) *models.BalanceItemType {
	if d == nil {
		return nil
	}
	e := &models.BalanceItemType{
		ID:               idOf(d.ID),
		ItemSequence:     d.ItemSequence,
		ItemNumber:       d.ItemNumber,
		ShortDescription: d.ShortDescription,
	}
	if d.Account != nil {
		e.AccountID = d.Account.ID
	}
	if d.ParentItem != nil {
		e.ParentID = d.ParentItem.ID
	}
	return e
}

func (BalanceItemType) ToDto(e *models.BalanceItemType) *dto.BalanceItemType {
	if e == nil {
		return nil
	}
	return &dto.BalanceItemType{
		ID:               idPtr(e.ID),
		ItemSequence:     e.ItemSequence,
		ItemNumber:       e.ItemNumber,
		ShortDescription: e.ShortDescription,
		Account:          accountRef(e.Account),
		ParentItem:       itemTypeRef(e.Parent),
	}
}

func (BalanceItemType) PartialUpdate(e *models.BalanceItemType, d *dto.BalanceItemType) {
	if d.ItemSequence != nil {
		e.ItemSequence = d.ItemSequence
	}
	if d.ItemNumber != nil {
		e.ItemNumber = d.ItemNumber
	}
	if d.ShortDescription != nil {
		e.ShortDescription = d.ShortDescription
	}
	if d.Account != nil {
		e.AccountID = d.Account.ID
	}
	if d.ParentItem != nil {
		e.ParentID = d.ParentItem.ID
	}
}

type BalanceItemValue struct{}

func (BalanceItemValue) DtoID(d *dto.BalanceItemValue) *int64 { return d.ID }

func (BalanceItemValue) ToEntity(d *dto.BalanceItemValue) *models.BalanceItemValue {
	if d == nil {
		return nil
	}
	e := &models.BalanceItemValue{
		ID:               idOf(d.ID),
		ShortDescription: d.ShortDescription,
		EffectiveDate:    toTime(d.EffectiveDate),
		Amount:           d.ItemAmount,
	}
	if d.ItemType != nil {
		e.ItemTypeID = d.ItemType.ID
	}
	return e
}

func (BalanceItemValue) ToDto(e *models.BalanceItemValue) *dto.BalanceItemValue {
	if e == nil {
		return nil
	}
	return &dto.BalanceItemValue{
		ID:               idPtr(e.ID),
		ShortDescription: e.ShortDescription,
		EffectiveDate:    toDate(e.EffectiveDate),
		ItemAmount:       e.Amount,
		ItemType:         itemTypeRef(e.ItemType),
	}
}

func (BalanceItemValue) PartialUpdate(e *models.BalanceItemValue, d *dto.BalanceItemValue) {
	if d.ShortDescription != nil {
		e.ShortDescription = d.ShortDescription
	}
	if d.EffectiveDate != nil {
		e.EffectiveDate = toTime(d.EffectiveDate)
	}
	if d.ItemAmount != nil {
		e.Amount = d.ItemAmount
	}
	if d.ItemType != nil {
		e.ItemTypeID = d.ItemType.ID
	}
}
