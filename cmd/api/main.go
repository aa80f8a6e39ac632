package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/andremtx/grana/internal/auth"
	"github.com/andremtx/grana/internal/card"
	cardStore "github.com/andremtx/grana/internal/card/store"
	"github.com/andremtx/grana/internal/category"
	categoryStore "github.com/andremtx/grana/internal/category/store"
	"github.com/andremtx/grana/internal/config"
	"github.com/andremtx/grana/internal/currency"
	currencyStore "github.com/andremtx/grana/internal/currency/store"
	"github.com/andremtx/grana/internal/database"
	"github.com/andremtx/grana/internal/export"
	"github.com/andremtx/grana/internal/goal"
	goalStore "github.com/andremtx/grana/internal/goal/store"
	granaHttp "github.com/andremtx/grana/internal/http"
	authHandler "github.com/andremtx/grana/internal/http/auth"
	cardHandler "github.com/andremtx/grana/internal/http/card"
	categoryHandler "github.com/andremtx/grana/internal/http/category"
	currencyHandler "github.com/andremtx/grana/internal/http/currency"
	exportHandler "github.com/andremtx/grana/internal/http/export"
	goalHandler "github.com/andremtx/grana/internal/http/goal"
	transactionHandler "github.com/andremtx/grana/internal/http/transaction"
	userHandler "github.com/andremtx/grana/internal/http/user"
	"github.com/andremtx/grana/internal/stats"
	"github.com/andremtx/grana/internal/transaction"
	transactionStore "github.com/andremtx/grana/internal/transaction/store"
	"github.com/andremtx/grana/internal/user"
	userStore "github.com/andremtx/grana/internal/user/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var (
		categoryRepo    = categoryStore.New(db)
		transactionRepo = transactionStore.New(db)
		goalRepo        = goalStore.New(db)
		currencyRepo    = currencyStore.New(db)
		cardRepo        = cardStore.New(db)
		userRepo        = userStore.New(db)
	)

	resolver := category.NewResolver(categoryRepo)

	var (
		categoryService    = category.NewService(categoryRepo)
		transactionService = transaction.NewService(transactionRepo, resolver)
		goalService        = goal.NewService(goalRepo, resolver)
		currencyService    = currency.NewService(currencyRepo)
		cardService        = card.NewService(cardRepo)
		userService        = user.NewService(userRepo)
		statsService       = stats.NewService(transactionRepo, goalRepo, currencyRepo, categoryRepo, cardRepo)
	)

	exportService := export.NewService(transactionService)

	issuer := auth.NewTokenIssuer(cfg.Auth.Secret, cfg.Auth.TokenTTL)

	var (
		authH        = authHandler.NewHandler(userService, issuer)
		transactionH = transactionHandler.NewHandler(transactionService, statsService)
		categoryH    = categoryHandler.NewHandler(categoryService)
		goalH        = goalHandler.NewHandler(goalService, statsService)
		currencyH    = currencyHandler.NewHandler(currencyService)
		cardH        = cardHandler.NewHandler(cardService)
		userH        = userHandler.NewHandler(userService, statsService)
		exportH      = exportHandler.NewHandler(exportService)
	)

	router := granaHttp.New(
		issuer,
		cfg.CORS.AllowedOrigins,
		authH,
		transactionH,
		categoryH,
		goalH,
		currencyH,
		cardH,
		userH,
		exportH,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
