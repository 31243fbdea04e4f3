package handlers

import (
	"StockKeeper/internal/config"
	"StockKeeper/internal/middleware"
	"StockKeeper/internal/service"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	userService *service.UserService,
	inventoryService *service.InventoryService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(config.AuthSecret))

	// Handlers
	authHandler := NewAuthHandler(userService, logger, config)
	inventoryHandler := NewInventoryHandler(inventoryService, logger)

	// Auth routes
	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Get("/me", authHandler.Me)
			r.Get("/logout", authHandler.Logout)
		})
	})

	// Inventory routes (все за токеном)
	r.Route("/api/v1/inventory", func(r chi.Router) {
		r.Use(requireAuth)
		r.Get("/", inventoryHandler.List)
		r.Post("/", inventoryHandler.Create)
		r.Get("/{id}", inventoryHandler.Get)
		r.Put("/{id}", inventoryHandler.Update)
		r.Delete("/{id}", inventoryHandler.Delete)
	})

	return &Handler{Router: r}
}

// requireAuth отклоняет запросы без валидного токена.
func requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.GetIdentityFromContext(r.Context()); !ok {
			writeError(w, http.StatusUnauthorized, "Not authorized to access this route")
			return
		}
		next.ServeHTTP(w, r)
	})
}
