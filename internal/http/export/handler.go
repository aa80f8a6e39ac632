package export

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/andremtx/grana/internal/auth"
	"github.com/andremtx/grana/internal/category"
	"github.com/andremtx/grana/internal/export"
	"github.com/andremtx/grana/internal/transaction"
)

type Handler struct {
	svc *export.Service
}

func NewHandler(svc *export.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/transactions", h.transactions)
}

// transactions streams the caller's transactions as a CSV attachment. The
// filter query parameters mirror the transaction listing.
func (h *Handler) transactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "authorization required", http.StatusUnauthorized)
		return
	}

	params := transaction.ListParams{}

	if s := r.URL.Query().Get("start_date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			params.StartDate = new(t)
		}
	}

	if s := r.URL.Query().Get("end_date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			params.EndDate = new(t)
		}
	}

	if s := r.URL.Query().Get("type"); s != "" {
		params.Type = new(transaction.Type(s))
	}

	if s := r.URL.Query().Get("category"); s != "" {
		params.Category = category.ParseRef(s)
	}

	data, err := h.svc.TransactionsCSV(r.Context(), userID, params)
	if err != nil {
		slog.Error("export request failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.Filename(time.Now())+`"`)

	if _, err := w.Write(data); err != nil {
		slog.Error("failed to write export", "error", err)
	}
}
