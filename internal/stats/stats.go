// Package stats computes per-user aggregates over transactions and goals:
// income/expense totals, trailing monthly averages, goal completion counts
// and multi-currency rollups.
package stats

import (
	"time"

	"github.com/andremtx/grana/internal/goal"
)

// DateRange is an optional inclusive [Start, End] window.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// TransactionSummary totals transaction amounts by type. Expense amounts are
// absolute-valued during aggregation so a stray signed amount cannot skew
// the totals.
type TransactionSummary struct {
	TotalIncome   float64
	TotalExpenses float64
	NetSavings    float64
	Count         int
}

// GoalTotals is one rollup over a set of goals.
type GoalTotals struct {
	TotalTarget    float64
	TotalCurrent   float64
	TotalProgress  float64
	GoalCount      int
	CompletedCount int
	ActiveCount    int
}

func (t *GoalTotals) add(g *goal.Goal, target, current float64) {
	t.TotalTarget += target
	t.TotalCurrent += current
	t.GoalCount++

	if g.Completed() {
		t.CompletedCount++
	}
}

// finalize computes the derived fields once the sums are complete. Progress
// is 0 when there is nothing to progress toward.
func (t *GoalTotals) finalize() {
	if t.TotalTarget > 0 {
		t.TotalProgress = t.TotalCurrent / t.TotalTarget
	}

	t.ActiveCount = t.GoalCount - t.CompletedCount
}

// CurrencyBucket is the per-currency rollup inside a GoalSummary.
type CurrencyBucket struct {
	Currency *goal.CurrencySummary
	GoalTotals
}

// GoalSummary aggregates a user's goals: overall totals, totals converted to
// the user's base currency, and a per-currency breakdown. Goals with no
// resolvable currency land in the UNKNOWN bucket.
type GoalSummary struct {
	GoalTotals
	BaseCurrency *goal.CurrencySummary
	TotalsInBase GoalTotals
	ByCurrency   map[string]*CurrencyBucket
}

// UnknownCurrency keys the bucket for goals without a resolvable currency.
const UnknownCurrency = "UNKNOWN"

// MonthlyAverage holds the trailing 30-day totals. This is a fixed lookback
// from "now", not calendar-month bucketing.
type MonthlyAverage struct {
	Income   float64
	Expenses float64
	Savings  float64
}

// UserOverview is the dashboard-level summary for one user. Monetary fields
// are rounded to two decimals; counts are exact.
type UserOverview struct {
	TotalTransactions int
	TotalCategories   int
	ActiveGoals       int
	CreditCards       int
	TotalIncome       float64
	TotalExpenses     float64
	TotalSavings      float64
	MonthlyAverage    MonthlyAverage
	AchievementRate   int
	CompletedGoals    int
	TotalGoals        int
}
