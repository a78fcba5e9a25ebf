package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"keeper/internal/config"
	"keeper/internal/middleware"
	"keeper/internal/models"
	"keeper/internal/services"
	"keeper/internal/websocket"
)

type UserStore interface {
	Create(ctx context.Context, username, email, passwordHash string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}

type Handler struct {
	cfg      config.Config
	users    UserStore
	registry *services.Registry
	hub      *websocket.Hub
}

func New(cfg config.Config, users UserStore, registry *services.Registry, hub *websocket.Hub) *Handler {
	return &Handler{
		cfg:      cfg,
		users:    users,
		registry: registry,
		hub:      hub,
	}
}

func (h *Handler) Routes() http.Handler {
	router := chi.NewRouter()
	router.Use(chimiddleware.Logger)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{h.cfg.AllowedOrigins},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	router.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)
		r.With(middleware.Auth(h.cfg.JWTSecret)).Get("/me", h.Me)
	})
	router.Route("/api", func(r chi.Router) {
		r.Use(middleware.Auth(h.cfg.JWTSecret))
		Mount(r, "accounts", h.registry.Accounts)
		Mount(r, "transactions", h.registry.Transactions)
		Mount(r, "entries", h.registry.Entries)
		Mount(r, "balance-item-types", h.registry.BalanceItemTypes)
		Mount(r, "balance-item-values", h.registry.BalanceItemValues)
		Mount(r, "dealers", h.registry.Dealers)
		Mount(r, "events", h.registry.Events)
		Mount(r, "account-types", h.registry.AccountTypes)
		Mount(r, "currencies", h.registry.Currencies)
		Mount(r, "dealer-types", h.registry.DealerTypes)
		Mount(r, "event-types", h.registry.EventTypes)
	})
	router.Get("/ws/changes", func(w http.ResponseWriter, r *http.Request) {
		websocket.ServeWS(w, r, h.hub)
	})
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	return router
}
