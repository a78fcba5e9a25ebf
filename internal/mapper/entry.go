package mapper

import (
	"keeper/internal/dto"
	"keeper/internal/models"
)

type Entry struct{}

func (Entry) DtoID(d *dto.Entry) *int64 { return d.ID }

func (Entry) ToEntity(d *dto.Entry) *models.Entry {
	if d == nil {
		return nil
	}
	e := &models.Entry{
		ID:          idOf(d.ID),
		Amount:      d.EntryAmount,
		EntryType:   d.EntryType,
		Description: d.Description,
		WasProposed: d.WasProposed,
		WasPosted:   d.WasPosted,
		WasDeleted:  d.WasDeleted,
		WasApproved: d.WasApproved,
	}
	if d.Account != nil {
		e.AccountID = d.Account.ID
	}
	if d.Transaction != nil {
		e.TransactionID = d.Transaction.ID
	}
	return e
}

func (Entry) ToDto(e *models.Entry) *dto.Entry {
	if e == nil {
		return nil
	}
	return &dto.Entry{
		ID:          idPtr(e.ID),
		EntryAmount: e.Amount,
		EntryType:   e.EntryType,
		Description: e.Description,
		WasProposed: e.WasProposed,
		WasPosted:   e.WasPosted,
		WasDeleted:  e.WasDeleted,
		WasApproved: e.WasApproved,
		Account:     accountRef(e.Account),
		Transaction: transactionRef(e.Transaction),
	}
}

func (Entry) PartialUpdate(e *models.Entry, d *dto.Entry) {
	if d.EntryAmount != nil {
		e.Amount = d.EntryAmount
	}
	if d.EntryType != nil {
		e.EntryType = d.EntryType
	}
	if d.Description != nil {
		e.Description = d.Description
	}
	if d.WasProposed != nil {
		e.WasProposed = d.WasProposed
	}
	if d.WasPosted != nil {
		e.WasPosted = d.WasPosted
	}
	if d.WasDeleted != nil {
		e.WasDeleted = d.WasDeleted
	}
	if d.WasApproved != nil {
		e.WasApproved = d.WasApproved
	}
	if d.Account != nil {
		e.AccountID = d.Account.ID
	}
	if d.Transaction != nil {
		e.TransactionID = d.Transaction.ID
	}
}
