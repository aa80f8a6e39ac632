package goal

import (
	"math"
	"time"
)

// Projection holds the fields derived from a goal snapshot on every read.
type Projection struct {
	DaysRemaining       int
	AmountNeeded        float64
	DailyAmountToSave   float64
	MonthlyAmountToSave float64
	IsCompleted         bool
	IsOverdue           bool
}

// Project computes the derived fields for a goal at the given instant. It is
// pure: same snapshot and instant, same output, no I/O.
func Project(g *Goal, now time.Time) Projection {
	daysRemainingRaw := int(math.Ceil(g.Deadline.Sub(now).Hours() / 24))

	daysRemaining := daysRemainingRaw
	if daysRemaining < 0 {
		daysRemaining = 0
	}

	amountNeeded := math.Max(0, g.TargetAmount-g.CurrentAmount)

	// Past-deadline goals are treated as due immediately: the whole
	// remainder is the daily and monthly rate.
	daily := amountNeeded
	monthly := amountNeeded

	if daysRemaining > 0 {
		daily = amountNeeded / float64(daysRemaining)
		monthly = amountNeeded / (float64(daysRemaining) / 30)
	}

	completed := g.Completed()

	return Projection{
		DaysRemaining:       daysRemaining,
		AmountNeeded:        amountNeeded,
		DailyAmountToSave:   daily,
		MonthlyAmountToSave: monthly,
		IsCompleted:         completed,
		IsOverdue:           daysRemainingRaw < 0 && !completed,
	}
}

// ProjectCurrency returns the currency summary a decorated goal should
// expose, or nil when the goal has no resolvable currency. A joined currency
// row without a code counts as absent.
func ProjectCurrency(c *CurrencySummary) *CurrencySummary {
	if c == nil || c.Code == "" {
		return nil
	}

	return c
}
