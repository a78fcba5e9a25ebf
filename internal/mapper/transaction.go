package mapper

import (
	"keeper/internal/dto"
	"keeper/internal/models"
)

func transactionRef(e *models.Transaction) *dto.TransactionRef {
	if e == nil {
		return nil
	}
	return &dto.TransactionRef{ID: idPtr(e.ID), ReferenceNumber: e.ReferenceNumber}
}

type Transaction struct{}

func (Transaction) DtoID(d *dto.Transaction) *int64 { return d.ID }

func (Transaction) ToEntity(d *dto.Transaction) *models.Transaction {
	if d == nil {
		return nil
	}
	return &models.Transaction{
		ID:              idOf(d.ID),
		TransactionDate: toTime(d.TransactionDate),
		Description:     d.Description,
		ReferenceNumber: d.ReferenceNumber,
		WasProposed:     d.WasProposed,
		WasPosted:       d.WasPosted,
		WasDeleted:      d.WasDeleted,
		WasApproved:     d.WasApproved,
	}
}

func (Transaction) ToDto(e *models.Transaction) *dto.Transaction {
	if e == nil {
		return nil
	}
	return &dto.Transaction{
		ID:              idPtr(e.ID),
		TransactionDate: toDate(e.TransactionDate),
		Description:     e.Description,
		ReferenceNumber: e.ReferenceNumber,
		WasProposed:     e.WasProposed,
		WasPosted:       e.WasPosted,
		WasDeleted:      e.WasDeleted,
		WasApproved:     e.WasApproved,
	}
}

func (Transaction) PartialUpdate(e *models.Transaction, d *dto.Transaction) {
	if d.TransactionDate != nil {
		e.TransactionDate = toTime(d.TransactionDate)
	}
	if d.Description != nil {
		e.Description = d.Description
	}
	if d.ReferenceNumber != nil {
		e.ReferenceNumber = d.ReferenceNumber
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
}
