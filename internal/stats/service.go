package stats

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/andremtx/grana/internal/currency"
	"github.com/andremtx/grana/internal/goal"
	"github.com/andremtx/grana/internal/money"
	"github.com/andremtx/grana/internal/transaction"
)

//go:generate mockgen -source=service.go -destination=sources_mock.go -package=stats
type TransactionSource interface {
	ListTransactions(ctx context.Context, userID uuid.UUID, filter transaction.ListFilter) ([]*transaction.Transaction, error)
}

type GoalSource interface {
	ListGoals(ctx context.Context, userID uuid.UUID, filter goal.ListFilter) ([]*goal.Goal, error)
}

type CurrencySource interface {
	GetBaseCurrency(ctx context.Context, userID uuid.UUID) (*currency.Currency, error)
}

type CategorySource interface {
	CountCategories(ctx context.Context, userID uuid.UUID) (int, error)
}

type CardSource interface {
	CountCards(ctx context.Context, userID uuid.UUID) (int, error)
}

type Service struct {
	transactions TransactionSource
	goals        GoalSource
	currencies   CurrencySource
	categories   CategorySource
	cards        CardSource

	// now is swapped in tests to pin the trailing-30-day window.
	now func() time.Time
}

func NewService(
	transactions TransactionSource,
	goals GoalSource,
	currencies CurrencySource,
	categories CategorySource,
	cards CardSource,
) *Service {
	return &Service{
		transactions: transactions,
		goals:        goals,
		currencies:   currencies,
		categories:   categories,
		cards:        cards,
		now:          time.Now,
	}
}

// TransactionSummary sums amounts by type within the optional inclusive
// date window. Intermediate sums keep full precision.
func (s *Service) TransactionSummary(ctx context.Context, userID uuid.UUID, r DateRange) (*TransactionSummary, error) {
	txs, err := s.transactions.ListTransactions(ctx, userID, transaction.ListFilter{
		StartDate: r.Start,
		EndDate:   r.End,
	})
	if err != nil {
		return nil, err
	}

	summary := &TransactionSummary{Count: len(txs)}

	for _, tx := range txs {
		switch tx.Type {
		case transaction.TypeIncome:
			summary.TotalIncome += tx.Amount
		case transaction.TypeExpense:
			summary.TotalExpenses += math.Abs(tx.Amount)
		}
	}

	summary.NetSavings = summary.TotalIncome - summary.TotalExpenses

	return summary, nil
}

// GoalSummary rolls the user's goals up overall, per currency code, and
// converted into the base currency. Goals whose currency has no positive
// rate are excluded from the base-converted totals but still appear in the
// per-currency breakdown.
func (s *Service) GoalSummary(ctx context.Context, userID uuid.UUID) (*GoalSummary, error) {
	goals, err := s.goals.ListGoals(ctx, userID, goal.ListFilter{})
	if err != nil {
		return nil, err
	}

	base, err := s.currencies.GetBaseCurrency(ctx, userID)
	if err != nil {
		return nil, err
	}

	var baseSummary *goal.CurrencySummary

	baseRate := 1.0

	if base != nil && base.Code != "" {
		baseSummary = &goal.CurrencySummary{
			ID:     base.ID,
			Code:   base.Code,
			Symbol: base.Symbol,
			Name:   base.Name,
			Rate:   base.Rate,
			IsBase: base.IsBase,
		}
		if base.Rate > 0 {
			baseRate = base.Rate
		}
	}

	summary := &GoalSummary{
		BaseCurrency: baseSummary,
		ByCurrency:   make(map[string]*CurrencyBucket),
	}

	for _, g := range goals {
		cur := goal.ProjectCurrency(g.Currency)

		code := UnknownCurrency
		if cur != nil {
			code = cur.Code
		}

		bucket, ok := summary.ByCurrency[code]
		if !ok {
			bucket = &CurrencyBucket{Currency: cur}
			summary.ByCurrency[code] = bucket
		}

		bucket.add(g, g.TargetAmount, g.CurrentAmount)
		summary.GoalTotals.add(g, g.TargetAmount, g.CurrentAmount)

		if cur != nil && cur.Rate > 0 {
			summary.TotalsInBase.add(g,
				(g.TargetAmount/cur.Rate)*baseRate,
				(g.CurrentAmount/cur.Rate)*baseRate,
			)
		}
	}

	summary.GoalTotals.finalize()
	summary.TotalsInBase.finalize()

	for _, bucket := range summary.ByCurrency {
		bucket.finalize()
	}

	return summary, nil
}

// UserOverview assembles the dashboard summary: lifetime totals, trailing
// 30-day averages, entity counts and the goal achievement rate.
func (s *Service) UserOverview(ctx context.Context, userID uuid.UUID) (*UserOverview, error) {
	txs, err := s.transactions.ListTransactions(ctx, userID, transaction.ListFilter{})
	if err != nil {
		return nil, err
	}

	var totalIncome, totalExpenses float64

	var monthlyIncome, monthlyExpenses float64

	thirtyDaysAgo := s.now().AddDate(0, 0, -30)

	for _, tx := range txs {
		recent := !tx.Date.Before(thirtyDaysAgo)

		switch tx.Type {
		case transaction.TypeIncome:
			totalIncome += tx.Amount

			if recent {
				monthlyIncome += tx.Amount
			}
		case transaction.TypeExpense:
			amount := math.Abs(tx.Amount)
			totalExpenses += amount

			if recent {
				monthlyExpenses += amount
			}
		}
	}

	goals, err := s.goals.ListGoals(ctx, userID, goal.ListFilter{})
	if err != nil {
		return nil, err
	}

	completedGoals := 0

	for _, g := range goals {
		if g.Completed() {
			completedGoals++
		}
	}

	achievementRate := 0
	if len(goals) > 0 {
		achievementRate = int(math.Round(float64(completedGoals) / float64(len(goals)) * 100))
	}

	totalCategories, err := s.categories.CountCategories(ctx, userID)
	if err != nil {
		return nil, err
	}

	creditCards, err := s.cards.CountCards(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &UserOverview{
		TotalTransactions: len(txs),
		TotalCategories:   totalCategories,
		ActiveGoals:       len(goals) - completedGoals,
		CreditCards:       creditCards,
		TotalIncome:       money.Round2(totalIncome),
		TotalExpenses:     money.Round2(totalExpenses),
		TotalSavings:      money.Round2(totalIncome - totalExpenses),
		MonthlyAverage: MonthlyAverage{
			Income:   money.Round2(monthlyIncome),
			Expenses: money.Round2(monthlyExpenses),
			Savings:  money.Round2(monthlyIncome - monthlyExpenses),
		},
		AchievementRate: achievementRate,
		CompletedGoals:  completedGoals,
		TotalGoals:      len(goals),
	}, nil
}
