package user

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/andremtx/grana/internal/auth"
	"github.com/andremtx/grana/internal/stats"
	"github.com/andremtx/grana/internal/user"
)

type Handler struct {
	svc   *user.Service
	stats *stats.Service
}

func NewHandler(svc *user.Service, stats *stats.Service) *Handler {
	return &Handler{svc: svc, stats: stats}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/preferences", h.getPreferences)
	r.Put("/preferences", h.updatePreferences)
	r.Get("/stats", h.getStats)
	r.Put("/password", h.changePassword)
	r.Delete("/account", h.deleteAccount)
}

func (h *Handler) getPreferences(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "authorization required", http.StatusUnauthorized)
		return
	}

	preferences, err := h.svc.GetPreferences(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(preferences); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updatePreferencesRequest struct {
	Preferences map[string]any `json:"preferences"`
}

func (h *Handler) updatePreferences(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "authorization required", http.StatusUnauthorized)
		return
	}

	var req updatePreferencesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	preferences, err := h.svc.UpdatePreferences(r.Context(), userID, req.Preferences)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(map[string]any{
		"message":     "preferences updated",
		"preferences": preferences,
	}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type overviewResponse struct {
	TotalTransactions int                    `json:"totalTransactions"`
	TotalCategories   int                    `json:"totalCategories"`
	ActiveGoals       int                    `json:"activeGoals"`
	CreditCards       int                    `json:"creditCards"`
	TotalIncome       float64                `json:"totalIncome"`
	TotalExpenses     float64                `json:"totalExpenses"`
	TotalSavings      float64                `json:"totalSavings"`
	MonthlyAverage    monthlyAverageResponse `json:"monthlyAverage"`
	AchievementRate   int                    `json:"achievementRate"`
	CompletedGoals    int                    `json:"completedGoals"`
	TotalGoals        int                    `json:"totalGoals"`
}

type monthlyAverageResponse struct {
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Savings  float64 `json:"savings"`
}

func (h *Handler) getStats(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "authorization required", http.StatusUnauthorized)
		return
	}

	overview, err := h.stats.UserOverview(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := overviewResponse{
		TotalTransactions: overview.TotalTransactions,
		TotalCategories:   overview.TotalCategories,
		ActiveGoals:       overview.ActiveGoals,
		CreditCards:       overview.CreditCards,
		TotalIncome:       overview.TotalIncome,
		TotalExpenses:     overview.TotalExpenses,
		TotalSavings:      overview.TotalSavings,
		MonthlyAverage: monthlyAverageResponse{
			Income:   overview.MonthlyAverage.Income,
			Expenses: overview.MonthlyAverage.Expenses,
			Savings:  overview.MonthlyAverage.Savings,
		},
		AchievementRate: overview.AchievementRate,
		CompletedGoals:  overview.CompletedGoals,
		TotalGoals:      overview.TotalGoals,
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "authorization required", http.StatusUnauthorized)
		return
	}

	var req changePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.ChangePassword(r.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type deleteAccountRequest struct {
	Password string `json:"password"`
}

func (h *Handler) deleteAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "authorization required", http.StatusUnauthorized)
		return
	}

	var req deleteAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.DeleteAccount(r.Context(), userID, req.Password); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, user.ErrNotFound):
		http.Error(w, "user not found", http.StatusNotFound)
	case errors.Is(err, user.ErrInvalidCredentials):
		http.Error(w, "password is incorrect", http.StatusBadRequest)
	case errors.Is(err, user.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		slog.Error("user request failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
