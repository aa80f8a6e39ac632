package transaction

import (
	"time"

	"github.com/google/uuid"

	"github.com/andremtx/grana/internal/money"
	"github.com/andremtx/grana/internal/stats"
	"github.com/andremtx/grana/internal/transaction"
)

type transactionResponse struct {
	ID          uuid.UUID         `json:"id"`
	Amount      float64           `json:"amount"`
	Type        transaction.Type  `json:"type"`
	Description string            `json:"description"`
	Notes       string            `json:"notes,omitempty"`
	CategoryID  *uuid.UUID        `json:"category_id,omitempty"`
	Category    *categoryResponse `json:"category,omitempty"`
	CardID      *uuid.UUID        `json:"card_id,omitempty"`
	Card        *cardResponse     `json:"card,omitempty"`
	Date        time.Time         `json:"date"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   *time.Time        `json:"updated_at,omitempty"`
}

type categoryResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Color string    `json:"color"`
	Icon  string    `json:"icon,omitempty"`
}

type cardResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Type string    `json:"type"`
}

func toResponse(tx *transaction.Transaction) transactionResponse {
	resp := transactionResponse{
		ID:          tx.ID,
		Amount:      tx.Amount,
		Type:        tx.Type,
		Description: tx.Description,
		Notes:       tx.Notes,
		CategoryID:  tx.CategoryID,
		CardID:      tx.CardID,
		Date:        tx.Date,
		CreatedAt:   tx.CreatedAt,
		UpdatedAt:   tx.UpdatedAt,
	}

	if tx.Category != nil {
		resp.Category = &categoryResponse{
			ID:    tx.Category.ID,
			Name:  tx.Category.Name,
			Color: tx.Category.Color,
			Icon:  tx.Category.Icon,
		}
	}

	if tx.Card != nil {
		resp.Card = &cardResponse{
			ID:   tx.Card.ID,
			Name: tx.Card.Name,
			Type: tx.Card.Type,
		}
	}

	return resp
}

func toResponseList(txs []*transaction.Transaction) []transactionResponse {
	resp := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		resp[i] = toResponse(tx)
	}

	return resp
}

type statsResponse struct {
	TotalIncome   float64 `json:"totalIncome"`
	TotalExpenses float64 `json:"totalExpenses"`
	NetSavings    float64 `json:"netSavings"`
	Count         int     `json:"count"`
}

func toStatsResponse(s *stats.TransactionSummary) statsResponse {
	return statsResponse{
		TotalIncome:   money.Round2(s.TotalIncome),
		TotalExpenses: money.Round2(s.TotalExpenses),
		NetSavings:    money.Round2(s.NetSavings),
		Count:         s.Count,
	}
}
