package goal

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
	"github.com/andremtx/grana/internal/goal"
	"github.com/andremtx/grana/internal/stats"
)

type Handler struct {
	svc   *goal.Service
	stats *stats.Service
}

func NewHandler(svc *goal.Service, stats *stats.Service) *Handler {
	return &Handler{svc: svc, stats: stats}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/stats/summary", h.statsSummary)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
	r.Post("/{id}/contributions", h.contribute)
}

type createGoalRequest struct {
	Name          string     `json:"name"`
	TargetAmount  float64    `json:"target_amount"`
	CurrentAmount float64    `json:"current_amount"`
	Deadline      time.Time  `json:"deadline"`
	Category      string     `json:"category"`
	CurrencyID    *uuid.UUID `json:"currency_id"`
	Priority      int        `json:"priority"`
	Color         string     `json:"color"`
	Description   string     `json:"description"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "authorization required", http.StatusUnauthorized)
		return
	}

	var req createGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	g, err := h.svc.Create(r.Context(), userID, goal.CreateParams{
		Name:          req.Name,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: req.CurrentAmount,
		Deadline:      req.Deadline,
		Category:      category.ParseRef(req.Category),
		CurrencyID:    req.CurrencyID,
		Priority:      req.Priority,
		Color:         req.Color,
		Description:   req.Description,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(g, time.Now())); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "authorization required", http.StatusUnauthorized)
		return
	}

	filter := goal.ListFilter{}

	if s := r.URL.Query().Get("status"); s != "" {
		filter.Status = new(goal.Status(s))
	}

	goals, err := h.svc.List(r.Context(), userID, filter)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(goals, time.Now())); err != nil {
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

	g, err := h.svc.Get(r.Context(), userID, id)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(g, time.Now())); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateGoalRequest struct {
	Name          *string    `json:"name,omitempty"`
	TargetAmount  *float64   `json:"target_amount,omitempty"`
	CurrentAmount *float64   `json:"current_amount,omitempty"`
	Deadline      *time.Time `json:"deadline,omitempty"`
	Category      *string    `json:"category,omitempty"`
	CurrencyID    *string    `json:"currency_id,omitempty"`
	Priority      *int       `json:"priority,omitempty"`
	Color         *string    `json:"color,omitempty"`
	Description   *string    `json:"description,omitempty"`
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

	var req updateGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	params := goal.UpdateParams{
		Name:          req.Name,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: req.CurrentAmount,
		Deadline:      req.Deadline,
		Priority:      req.Priority,
		Color:         req.Color,
		Description:   req.Description,
	}

	if req.Category != nil {
		ref := category.ParseRef(*req.Category)
		params.Category = &ref
	}

	if req.CurrencyID != nil {
		if *req.CurrencyID == "" {
			params.ClearCurrency = true
		} else if currencyID, err := uuid.Parse(*req.CurrencyID); err == nil {
			params.CurrencyID = &currencyID
		} else {
			http.Error(w, "invalid currency_id", http.StatusBadRequest)
			return
		}
	}

	g, err := h.svc.Update(r.Context(), userID, id, params)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(g, time.Now())); err != nil {
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

type contributionRequest struct {
	Amount float64    `json:"amount"`
	Date   *time.Time `json:"date,omitempty"`
	Notes  string     `json:"notes,omitempty"`
}

func (h *Handler) contribute(w http.ResponseWriter, r *http.Request) {
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

	var req contributionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	params := goal.ContributionParams{
		Amount: req.Amount,
		Notes:  req.Notes,
	}
	if req.Date != nil {
		params.Date = *req.Date
	}

	g, c, err := h.svc.Contribute(r.Context(), userID, id, params)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toContributionResponse(g, c, time.Now())); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) statsSummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "authorization required", http.StatusUnauthorized)
		return
	}

	summary, err := h.stats.GoalSummary(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toSummaryResponse(summary)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	var invalidRef *category.InvalidReferenceError

	switch {
	case errors.Is(err, goal.ErrNotFound):
		http.Error(w, "goal not found", http.StatusNotFound)
	case errors.As(err, &invalidRef):
		http.Error(w, invalidRef.Error(), http.StatusBadRequest)
	case errors.Is(err, goal.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		slog.Error("goal request failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
