package main

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/jhonfrank/bookstore-api/internal/api"
	apimiddleware "github.com/jhonfrank/bookstore-api/internal/api/middleware"
	"github.com/jhonfrank/bookstore-api/internal/config"
	"github.com/jhonfrank/bookstore-api/internal/platform/postgres"
	"github.com/jhonfrank/bookstore-api/internal/service/auth"
	"github.com/jhonfrank/bookstore-api/internal/store"
)

// application holds the wired dependencies for the running server.
type application struct {
	config *config.Config
	logger *slog.Logger

	userStore   store.UserStore
	bookStore   store.BookStore
	orderStore  store.OrderStore
	detailStore store.OrderDetailStore
	tokenStore  store.TokenStore

	tokenService     auth.TokenService
	passwordHasher   auth.PasswordHasher
	passwordVerifier auth.PasswordVerifier
}

// newApplication wires the stores and services around the given database
// connection.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	tokenService, err := auth.NewTokenService(cfg.Auth)
	if err != nil {
		return nil, err
	}

	return &application{
		config:           cfg,
		logger:           logger,
		userStore:        postgres.NewPostgresUserStore(db, logger),
		bookStore:        postgres.NewPostgresBookStore(db, logger),
		orderStore:       postgres.NewPostgresOrderStore(db, logger),
		detailStore:      postgres.NewPostgresOrderDetailStore(db, logger),
		tokenStore:       postgres.NewPostgresTokenStore(db, logger),
		tokenService:     tokenService,
		passwordHasher:   auth.NewBcryptHasher(0),
		passwordVerifier: auth.NewBcryptVerifier(),
	}, nil
}

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	authHandler := api.NewAuthHandler(
		app.userStore,
		app.tokenStore,
		app.tokenService,
		app.passwordHasher,
		app.passwordVerifier,
		app.logger,
	)
	bookHandler := api.NewBookHandler(app.bookStore, app.logger)
	orderHandler := api.NewOrderHandler(app.orderStore, app.logger)
	detailHandler := api.NewOrderDetailHandler(app.orderStore, app.detailStore, app.logger)

	authMiddleware := apimiddleware.NewAuthMiddleware(app.tokenService, app.tokenStore, app.logger)

	r.Route("/api", func(r chi.Router) {
		// Public endpoints
		r.Post("/register", authHandler.Register)
		r.Post("/generate-token", authHandler.GenerateToken)
		r.Post("/revoke-all-tokens", authHandler.RevokeAllTokens)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Post("/revoke-token", authHandler.RevokeToken)
			r.Get("/user-info", authHandler.UserInfo)

			r.Route("/books", func(r chi.Router) {
				r.Get("/", bookHandler.List)
				r.Post("/", bookHandler.Create)
				r.Get("/{id}", bookHandler.Show)
				r.Put("/{id}", bookHandler.Update)
				r.Patch("/{id}", bookHandler.Update)
				r.Delete("/{id}", bookHandler.Delete)
			})

			r.Route("/orders", func(r chi.Router) {
				r.Get("/", orderHandler.List)
				r.Post("/", orderHandler.Create)
				r.Get("/{id}", orderHandler.Show)
				r.Put("/{id}", orderHandler.Update)
				r.Patch("/{id}", orderHandler.Update)
				r.Delete("/{id}", orderHandler.Delete)

				r.Route("/{orderId}/details", func(r chi.Router) {
					r.Get("/", detailHandler.List)
					r.Post("/", detailHandler.Create)
					r.Get("/{detailId}", detailHandler.Show)
					r.Put("/{detailId}", detailHandler.Update)
					r.Patch("/{detailId}", detailHandler.Update)
					r.Delete("/{detailId}", detailHandler.Delete)
				})
			})
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
