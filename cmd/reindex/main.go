// Command reindex rebuilds the search indexes from the relational store.
// Run it after restoring a database dump or whenever index sync errors
// have left the two stores drifted.
package main

import (
	"context"
	"iter"
	"log"

	"keeper/internal/config"
	"keeper/internal/db"
	"keeper/internal/models"
	"keeper/internal/query"
	"keeper/internal/search"
	"keeper/internal/store"
)

func main() {
	cfg := config.Load()
	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	defer database.Close()

	engine := search.Open(cfg.SearchIndexDir)
	defer engine.Close()

	sdb := store.NewDB(database)
	ctx := context.Background()

	accountsIdx, err := search.NewAccounts(engine)
	if err != nil {
		log.Fatalf("failed to open index: %v", err)
	}
	sync(ctx, "accounts", store.NewAccountRepo(sdb, accountsIdx).FindAll(ctx, query.Pageable{}), accountsIdx,
		func(e *models.Account) int64 { return e.ID })

	transactionsIdx, err := search.NewTransactions(engine)
	if err != nil {
		log.Fatalf("failed to open index: %v", err)
	}
	sync(ctx, "transactions", store.NewTransactionRepo(sdb, transactionsIdx).FindAll(ctx, query.Pageable{}), transactionsIdx,
		func(e *models.Transaction) int64 { return e.ID })

	entriesIdx, err := search.NewEntries(engine)
	if err != nil {
		log.Fatalf("failed to open index: %v", err)
	}
	sync(ctx, "entries", store.NewEntryRepo(sdb, entriesIdx).FindAll(ctx, query.Pageable{}), entriesIdx,
		func(e *models.Entry) int64 { return e.ID })

	itemTypesIdx, err := search.NewBalanceItemTypes(engine)
	if err != nil {
		log.Fatalf("failed to open index: %v", err)
	}
	sync(ctx, "balance item types", store.NewBalanceItemTypeRepo(sdb, itemTypesIdx).FindAll(ctx, query.Pageable{}), itemTypesIdx,
		func(e *models.BalanceItemType) int64 { return e.ID })

	itemValuesIdx, err := search.NewBalanceItemValues(engine)
	if err != nil {
		log.Fatalf("failed to open index: %v", err)
	}
	sync(ctx, "balance item values", store.NewBalanceItemValueRepo(sdb, itemValuesIdx).FindAll(ctx, query.Pageable{}), itemValuesIdx,
		func(e *models.BalanceItemValue) int64 { return e.ID })

	dealersIdx, err := search.NewDealers(engine)
	if err != nil {
		log.Fatalf("failed to open index: %v", err)
	}
	sync(ctx, "dealers", store.NewDealerRepo(sdb, dealersIdx).FindAll(ctx, query.Pageable{}), dealersIdx,
		func(e *models.Dealer) int64 { return e.ID })

	eventsIdx, err := search.NewEvents(engine)
	if err != nil {
		log.Fatalf("failed to open index: %v", err)
	}
	sync(ctx, "events", store.NewEventRepo(sdb, eventsIdx).FindAll(ctx, query.Pageable{}), eventsIdx,
		func(e *models.Event) int64 { return e.ID })

	accountTypesIdx, err := search.NewAccountTypes(engine)
	if err != nil {
		log.Fatalf("failed to open index: %v", err)
	}
	sync(ctx, "account types", store.NewAccountTypeRepo(sdb, accountTypesIdx).FindAll(ctx, query.Pageable{}), accountTypesIdx,
		func(e *models.AccountType) int64 { return e.ID })

	currenciesIdx, err := search.NewCurrencies(engine)
	if err != nil {
		log.Fatalf("failed to open index: %v", err)
	}
	sync(ctx, "currencies", store.NewCurrencyRepo(sdb, currenciesIdx).FindAll(ctx, query.Pageable{}), currenciesIdx,
		func(e *models.Currency) int64 { return e.ID })

	dealerTypesIdx, err := search.NewDealerTypes(engine)
	if err != nil {
		log.Fatalf("failed to open index: %v", err)
	}
	sync(ctx, "dealer types", store.NewDealerTypeRepo(sdb, dealerTypesIdx).FindAll(ctx, query.Pageable{}), dealerTypesIdx,
		func(e *models.DealerType) int64 { return e.ID })

	eventTypesIdx, err := search.NewEventTypes(engine)
	if err != nil {
		log.Fatalf("failed to open index: %v", err)
	}
	sync(ctx, "event types", store.NewEventTypeRepo(sdb, eventTypesIdx).FindAll(ctx, query.Pageable{}), eventTypesIdx,
		func(e *models.EventType) int64 { return e.ID })
}

func sync[E any](ctx context.Context, name string, rows iter.Seq2[*E, error], idx *search.Index[E], id func(*E) int64) {
	n := 0
	for e, err := range rows {
		if err != nil {
			log.Fatalf("failed to read %s: %v", name, err)
		}
		if err := idx.Index(ctx, id(e), e); err != nil {
			log.Fatalf("failed to index %s %d: %v", name, id(e), err)
		}
		n++
	}
	log.Printf("indexed %d %s", n, name)
}
