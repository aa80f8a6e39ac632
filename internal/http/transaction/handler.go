package transaction

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/andremtx/grana/internal/auth"
	"github.com/andremtx/grana/internal/category"
	"github.com/andremtx/grana/internal/stats"
	"github.com/andremtx/grana/internal/transaction"
)

type Handler struct {
	svc   *transaction.Service
	stats *stats.Service
}

func NewHandler(svc *transaction.Service, stats *stats.Service) *Handler {
	return &Handler{svc: svc, stats: stats}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/stats/summary", h.statsSummary)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type createTransactionRequest struct {
	Amount      float64    `json:"amount"`
	Type        string     `json:"type"`
	Description string     `json:"description"`
	Notes       string     `json:"notes"`
	Category    string     `json:"category"`
	CardID      *uuid.UUID `json:"card_id"`
	Date        *time.Time `json:"date"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "authorization required", http.StatusUnauthorized)
		return
	}

	var req createTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	params := transaction.CreateParams{
		Amount:      req.Amount,
		Type:        transaction.Type(req.Type),
		Description: req.Description,
		Notes:       req.Notes,
		Category:    category.ParseRef(req.Category),
		CardID:      req.CardID,
	}
	if req.Date != nil {
		params.Date = *req.Date
	}

	tx, err := h.svc.Create(r.Context(), userID, params)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(tx)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
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

	txs, err := h.svc.List(r.Context(), userID, params)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(txs)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "authorization required", http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	tx, err := h.svc.Get(r.Context(), userID, id)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(tx)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateTransactionRequest struct {
	Amount      *float64   `json:"amount,omitempty"`
	Type        *string    `json:"type,omitempty"`
	Description *string    `json:"description,omitempty"`
	Notes       *string    `json:"notes,omitempty"`
	Category    *string    `json:"category,omitempty"`
	CardID      *string    `json:"card_id,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "authorization required", http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	params := transaction.UpdateParams{
		Amount:      req.Amount,
		Description: req.Description,
		Notes:       req.Notes,
		Date:        req.Date,
	}

	if req.Type != nil {
		params.Type = new(transaction.Type(*req.Type))
	}

	if req.Category != nil {
		ref := category.ParseRef(*req.Category)
		params.Category = &ref
	}

	if req.CardID != nil {
		if *req.CardID == "" {
			params.ClearCard = true
		} else if cardID, err := uuid.Parse(*req.CardID); err == nil {
			params.CardID = &cardID
		} else {
			http.Error(w, "invalid card_id", http.StatusBadRequest)
			return
		}
	}

	tx, err := h.svc.Update(r.Context(), userID, id, params)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(tx)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "authorization required", http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), userID, id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) statsSummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "authorization required", http.StatusUnauthorized)
		return
	}

	var dateRange stats.DateRange

	if s := r.URL.Query().Get("start_date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			dateRange.Start = new(t)
		}
	}

	if s := r.URL.Query().Get("end_date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			dateRange.End = new(t)
		}
	}

	summary, err := h.stats.TransactionSummary(r.Context(), userID, dateRange)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toStatsResponse(summary)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	var invalidRef *category.InvalidReferenceError

	switch {
	case errors.Is(err, transaction.ErrNotFound):
		http.Error(w, "transaction not found", http.StatusNotFound)
	case errors.As(err, &invalidRef):
		http.Error(w, invalidRef.Error(), http.StatusBadRequest)
	case errors.Is(err, transaction.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		slog.Error("transaction request failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
