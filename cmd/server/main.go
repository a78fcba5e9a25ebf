package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"keeper/internal/config"
	"keeper/internal/db"
	"keeper/internal/handlers"
	"keeper/internal/search"
	"keeper/internal/services"
	"keeper/internal/store"
	"keeper/internal/websocket"
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

	hub := websocket.NewHub()
	registry, err := services.NewRegistry(store.NewDB(database), engine, hub)
	if err != nil {
		log.Fatalf("failed to open search indexes: %v", err)
	}
	users := store.NewUserStore(store.NewDB(database))

	handler := handlers.New(cfg, users, registry, hub)
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler.Routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("keeper API listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)
	<-shutdown

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("shutdown error: %v", err)
	}
}
