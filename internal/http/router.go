package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/andremtx/grana/internal/auth"
	authHandler "github.com/andremtx/grana/internal/http/auth"
	cardHandler "github.com/andremtx/grana/internal/http/card"
	categoryHandler "github.com/andremtx/grana/internal/http/category"
	currencyHandler "github.com/andremtx/grana/internal/http/currency"
	exportHandler "github.com/andremtx/grana/internal/http/export"
	goalHandler "github.com/andremtx/grana/internal/http/goal"
	transactionHandler "github.com/andremtx/grana/internal/http/transaction"
	userHandler "github.com/andremtx/grana/internal/http/user"
)

func New(
	issuer *auth.TokenIssuer,
	allowedOrigins []string,
	authV1 *authHandler.Handler,
	transactionsV1 *transactionHandler.Handler,
	categoriesV1 *categoryHandler.Handler,
	goalsV1 *goalHandler.Handler,
	currenciesV1 *currencyHandler.Handler,
	cardsV1 *cardHandler.Handler,
	usersV1 *userHandler.Handler,
	exportV1 *exportHandler.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	router.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			authV1.Routes(r)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(issuer))

			r.Route("/transactions", transactionsV1.Routes)
			r.Route("/categories", categoriesV1.Routes)
			r.Route("/goals", goalsV1.Routes)
			r.Route("/currencies", currenciesV1.Routes)
			r.Route("/cards", cardsV1.Routes)
			r.Route("/user", usersV1.Routes)
			r.Route("/export", exportV1.Routes)
		})
	})

	return router
}
