package mapper

import (
	"keeper/internal/dto"
	"keeper/internal/models"
)

func accountRef(e *models.Account) *dto.AccountRef {
	if e == nil {
		return nil
	}
	return &dto.AccountRef{ID: idPtr(e.ID), AccountName: e.Name}
}

func accountTypeRef(e *models.AccountType) *dto.AccountTypeRef {
	if e == nil {
		return nil
	}
	return &dto.AccountTypeRef{ID: idPtr(e.ID), Name: e.Name}
}

func currencyRef(e *models.Currency) *dto.CurrencyRef {
	if e == nil {
		return nil
	}
	return &dto.CurrencyRef{ID: idPtr(e.ID), Code: e.Code}
}

type Account struct{}

func (Account) DtoID(d *dto.Account) *int64 { return d.ID }

func (Account) ToEntity(d *dto.Account) *models.Account {
	if d == nil {
		return nil
	}
	e := &models.Account{
		ID:             idOf(d.ID),
		Name:           d.AccountName,
		Number:         d.AccountNumber,
		OpeningBalance: d.OpeningBalance,
	}
	if d.ParentAccount != nil {
		e.ParentID = d.ParentAccount.ID
	}
	if d.AccountType != nil {
		e.AccountTypeID = d.AccountType.ID
	}
	if d.Currency != nil {
		e.CurrencyID = d.Currency.ID
	}
	return e
}

func (Account) ToDto(e *models.Account) *dto.Account {
	if e == nil {
		return nil
	}
	return &dto.Account{
		ID:             idPtr(e.ID),
		AccountName:    e.Name,
		AccountNumber:  e.Number,
		OpeningBalance: e.OpeningBalance,
		ParentAccount:  accountRef(e.Parent),
		AccountType:    accountTypeRef(e.AccountType),
		Currency:       currencyRef(e.Currency),
	}
}

func (Account) PartialUpdate(e *models.Account, d *dto.Account) {
	if d.AccountName != nil {
		e.Name = d.AccountName
	}
	if d.AccountNumber != nil {
		e.Number = d.AccountNumber
	}
	if d.OpeningBalance != nil {
		e.OpeningBalance = d.OpeningBalance
	}
	if d.ParentAccount != nil {
		e.ParentID = d.ParentAccount.ID
	}
	if d.AccountType != nil {
		e.AccountTypeID = d.AccountType.ID
	}
	if d.Currency != nil {
		e.CurrencyID = d.Currency.ID
	}
}
