package services

import (
	"keeper/internal/dto"
	"keeper/internal/mapper"
	"keeper/internal/models"
	"keeper/internal/search"
	"keeper/internal/store"
)

// Registry wires one service per entity over a shared database handle and
// search engine. Entity names double as the websocket change-feed topics.
type Registry struct {
	Accounts          *Service[models.Account, dto.Account]
	Transactions      *Service[models.Transaction, dto.Transaction]
	Entries           *Service[models.Entry, dto.Entry]
	BalanceItemTypes  *Service[models.BalanceItemType, dto.BalanceItemType]
	BalanceItemValues *Service[models.BalanceItemValue, dto.BalanceItemValue]
	Dealers           *Service[models.Dealer, dto.Dealer]
	Events            *Service[models.Event, dto.Event]
	AccountTypes      *Service[models.AccountType, dto.AccountType]
	Currencies        *Service[models.Currency, dto.Currency]
	DealerTypes       *Service[models.DealerType, dto.DealerType]
	EventTypes        *Service[models.EventType, dto.EventType]
}

func NewRegistry(db store.DB, eng *search.Engine, pub Publisher) (*Registry, error) {
	accountsIdx, err := search.NewAccounts(eng)
	if err != nil {
		return nil, err
	}
	transactionsIdx, err := search.NewTransactions(eng)
	if err != nil {
		return nil, err
	}
	entriesIdx, err := search.NewEntries(eng)
	if err != nil {
		return nil, err
	}
	itemTypesIdx, err := search.NewBalanceItemTypes(eng)
	if err != nil {
		return nil, err
	}
	itemValuesIdx, err := search.NewBalanceItemValues(eng)
	if err != nil {
		return nil, err
	}
	dealersIdx, err := search.NewDealers(eng)
	if err != nil {
		return nil, err
	}
	eventsIdx, err := search.NewEvents(eng)
	if err != nil {
		return nil, err
	}
	accountTypesIdx, err := search.NewAccountTypes(eng)
	if err != nil {
		return nil, err
	}
	currenciesIdx, err := search.NewCurrencies(eng)
	if err != nil {
		return nil, err
	}
	dealerTypesIdx, err := search.NewDealerTypes(eng)
	if err != nil {
		return nil, err
	}
	eventTypesIdx, err := search.NewEventTypes(eng)
	if err != nil {
		return nil, err
	}

	return &Registry{
		Accounts: New[models.Account, dto.Account]("accounts",
			store.NewAccountRepo(db, accountsIdx), accountsIdx,
			mapper.Account{}, pub,
			func(e *models.Account) int64 { return e.ID }),
		Transactions: New[models.Transaction, dto.Transaction]("transactions",
			store.NewTransactionRepo(db, transactionsIdx), transactionsIdx,
			mapper.Transaction{}, pub,
			func(e *models.Transaction) int64 { return e.ID }),
		Entries: New[models.Entry, dto.Entry]("entries",
			store.NewEntryRepo(db, entriesIdx), entriesIdx,
			mapper.Entry{}, pub,
			func(e *models.Entry) int64 { return e.ID }),
		BalanceItemTypes: New[models.BalanceItemType, dto.BalanceItemType]("balance-item-types",
			store.NewBalanceItemTypeRepo(db, itemTypesIdx), itemTypesIdx,
			mapper.BalanceItemType{}, pub,
			func(e *models.BalanceItemType) int64 { return e.ID }),
		BalanceItemValues: New[models.BalanceItemValue, dto.BalanceItemValue]("balance-item-values",
			store.NewBalanceItemValueRepo(db, itemValuesIdx), itemValuesIdx,
			mapper.BalanceItemValue{}, pub,
			func(e *models.BalanceItemValue) int64 { return e.ID }),
		Dealers: New[models.Dealer, dto.Dealer]("dealers",
			store.NewDealerRepo(db, dealersIdx), dealersIdx,
			mapper.Dealer{}, pub,
			func(e *models.Dealer) int64 { return e.ID }),
		Events: New[models.Event, dto.Event]("events",
			store.NewEventRepo(db, eventsIdx), eventsIdx,
			mapper.Event{}, pub,
			func(e *models.Event) int64 { return e.ID }),
		AccountTypes: New[models.AccountType, dto.AccountType]("account-types",
			store.NewAccountTypeRepo(db, accountTypesIdx), accountTypesIdx,
			mapper.AccountType{}, pub,
			func(e *models.AccountType) int64 { return e.ID }),
		Currencies: New[models.Currency, dto.Currency]("currencies",
			store.NewCurrencyRepo(db, currenciesIdx), currenciesIdx,
			mapper.Currency{}, pub,
			func(e *models.Currency) int64 { return e.ID }),
		DealerTypes: New[models.DealerType, dto.DealerType]("dealer-types",
			store.NewDealerTypeRepo(db, dealerTypesIdx), dealerTypesIdx,
			mapper.DealerType{}, pub,
			func(e *models.DealerType) int64 { return e.ID }),
		EventTypes: New[models.EventType, dto.EventType]("event-types",
			store.NewEventTypeRepo(db, eventTypesIdx), eventTypesIdx,
			mapper.EventType{}, pub,
			func(e *models.EventType) int64 { return e.ID }),
	}, nil
}
