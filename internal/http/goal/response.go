package goal

import (
	"time"

	"github.com/google/uuid"

	"github.com/andremtx/grana/internal/goal"
	"github.com/andremtx/grana/internal/money"
	"github.com/andremtx/grana/internal/stats"
)

// goalResponse is the decorated goal: the stored document plus the fields
// derived on every read.
type goalResponse struct {
	ID                  uuid.UUID              `json:"id"`
	Name                string                 `json:"name"`
	TargetAmount        float64                `json:"target_amount"`
	CurrentAmount       float64                `json:"current_amount"`
	Deadline            time.Time              `json:"deadline"`
	CategoryID          *uuid.UUID             `json:"category_id,omitempty"`
	Category            *categoryResponse      `json:"category,omitempty"`
	CurrencySummary     *currencyResponse      `json:"currency_summary,omitempty"`
	CurrencyCode        *string                `json:"currency_code"`
	CurrencySymbol      *string                `json:"currency_symbol"`
	Priority            int                    `json:"priority"`
	Color               string                 `json:"color,omitempty"`
	Description         string                 `json:"description,omitempty"`
	Contributions       []contributionResponse `json:"contributions,omitempty"`
	DaysRemaining       int                    `json:"days_remaining"`
	AmountNeeded        float64                `json:"amount_needed"`
	DailyAmountToSave   float64                `json:"daily_amount_to_save"`
	MonthlyAmountToSave float64                `json:"monthly_amount_to_save"`
	IsCompleted         bool                   `json:"is_completed"`
	IsOverdue           bool                   `json:"is_overdue"`
	CreatedAt           time.Time              `json:"created_at"`
	UpdatedAt           *time.Time             `json:"updated_at,omitempty"`
}

type categoryResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Color string    `json:"color"`
}

type currencyResponse struct {
	ID     uuid.UUID `json:"id"`
	Code   string    `json:"code"`
	Symbol string    `json:"symbol,omitempty"`
	Name   string    `json:"name,omitempty"`
	Rate   float64   `json:"rate"`
	IsBase bool      `json:"is_base"`
}

type contributionResponse struct {
	ID     uuid.UUID  `json:"id"`
	Amount float64    `json:"amount"`
	Date   time.Time  `json:"date"`
	Notes  string     `json:"notes,omitempty"`
}

func toCurrencyResponse(c *goal.CurrencySummary) *currencyResponse {
	c = goal.ProjectCurrency(c)
	if c == nil {
		return nil
	}

	return &currencyResponse{
		ID:     c.ID,
		Code:   c.Code,
		Symbol: c.Symbol,
		Name:   c.Name,
		Rate:   c.Rate,
		IsBase: c.IsBase,
	}
}

func toResponse(g *goal.Goal, now time.Time) goalResponse {
	projection := goal.Project(g, now)

	resp := goalResponse{
		ID:                  g.ID,
		Name:                g.Name,
		TargetAmount:        g.TargetAmount,
		CurrentAmount:       g.CurrentAmount,
		Deadline:            g.Deadline,
		CategoryID:          g.CategoryID,
		Priority:            g.Priority,
		Color:               g.Color,
		Description:         g.Description,
		DaysRemaining:       projection.DaysRemaining,
		AmountNeeded:        money.Round2(projection.AmountNeeded),
		DailyAmountToSave:   money.Round2(projection.DailyAmountToSave),
		MonthlyAmountToSave: money.Round2(projection.MonthlyAmountToSave),
		IsCompleted:         projection.IsCompleted,
		IsOverdue:           projection.IsOverdue,
		CreatedAt:           g.CreatedAt,
		UpdatedAt:           g.UpdatedAt,
	}

	if g.Category != nil {
		resp.Category = &categoryResponse{
			ID:    g.Category.ID,
			Name:  g.Category.Name,
			Color: g.Category.Color,
		}
	}

	if currency := toCurrencyResponse(g.Currency); currency != nil {
		resp.CurrencySummary = currency
		resp.CurrencyCode = &currency.Code
		resp.CurrencySymbol = &currency.Symbol
	}

	for _, c := range g.Contributions {
		resp.Contributions = append(resp.Contributions, contributionResponse{
			ID:     c.ID,
			Amount: c.Amount,
			Date:   c.Date,
			Notes:  c.Notes,
		})
	}

	return resp
}

func toResponseList(goals []*goal.Goal, now time.Time) []goalResponse {
	resp := make([]goalResponse, len(goals))
	for i, g := range goals {
		resp[i] = toResponse(g, now)
	}

	return resp
}

type contributionResultResponse struct {
	Goal         goalResponse         `json:"goal"`
	Contribution contributionResponse `json:"contribution"`
}

func toContributionResponse(g *goal.Goal, c *goal.Contribution, now time.Time) contributionResultResponse {
	return contributionResultResponse{
		Goal: toResponse(g, now),
		Contribution: contributionResponse{
			ID:     c.ID,
			Amount: c.Amount,
			Date:   c.Date,
			Notes:  c.Notes,
		},
	}
}

type goalTotalsResponse struct {
	TotalTarget    float64 `json:"totalTarget"`
	TotalCurrent   float64 `json:"totalCurrent"`
	TotalProgress  float64 `json:"totalProgress"`
	GoalCount      int     `json:"goalCount"`
	CompletedCount int     `json:"completedCount"`
	ActiveCount    int     `json:"activeCount"`
}

func toTotalsResponse(t stats.GoalTotals) goalTotalsResponse {
	return goalTotalsResponse{
		TotalTarget:    money.Round2(t.TotalTarget),
		TotalCurrent:   money.Round2(t.TotalCurrent),
		TotalProgress:  t.TotalProgress,
		GoalCount:      t.GoalCount,
		CompletedCount: t.CompletedCount,
		ActiveCount:    t.ActiveCount,
	}
}

type currencyBucketResponse struct {
	CurrencySummary *currencyResponse `json:"currencySummary"`
	goalTotalsResponse
}

type goalSummaryResponse struct {
	goalTotalsResponse
	BaseCurrency *currencyResponse                 `json:"baseCurrency"`
	TotalsInBase goalTotalsResponse                `json:"totalsInBase"`
	ByCurrency   map[string]currencyBucketResponse `json:"byCurrency"`
}

func toSummaryResponse(s *stats.GoalSummary) goalSummaryResponse {
	resp := goalSummaryResponse{
		goalTotalsResponse: toTotalsResponse(s.GoalTotals),
		BaseCurrency:       toCurrencyResponse(s.BaseCurrency),
		TotalsInBase:       toTotalsResponse(s.TotalsInBase),
		ByCurrency:         make(map[string]currencyBucketResponse, len(s.ByCurrency)),
	}

	for code, bucket := range s.ByCurrency {
		resp.ByCurrency[code] = currencyBucketResponse{
			CurrencySummary:    toCurrencyResponse(bucket.Currency),
			goalTotalsResponse: toTotalsResponse(bucket.GoalTotals),
		}
	}

	return resp
}
