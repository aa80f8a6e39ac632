package goal

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Goal is a savings target owned by a single user. Completion is never
// stored; it is always recomputed from the amounts.
type Goal struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Name          string
	TargetAmount  float64
	CurrentAmount float64
	Deadline      time.Time
	CategoryID    *uuid.UUID
	Category      *CategorySummary // Loaded via JOIN
	CurrencyID    *uuid.UUID
	Currency      *CurrencySummary // Loaded via JOIN
	Priority      int
	Color         string
	Description   string
	Contributions []Contribution
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}

// Completed reports whether the goal has reached its target.
func (g *Goal) Completed() bool {
	return g.CurrentAmount >= g.TargetAmount
}

// Contribution is an immutable record of funds added toward a goal.
type Contribution struct {
	ID         uuid.UUID
	GoalID     uuid.UUID
	Amount     float64
	CurrencyID *uuid.UUID
	Date       time.Time
	Notes      string
	CreatedAt  time.Time
}

// CategorySummary is the slice of the referenced category a goal carries on
// reads.
type CategorySummary struct {
	ID    uuid.UUID
	Name  string
	Color string
}

// CurrencySummary is the slice of the referenced currency a goal carries on
// reads. A summary without a code is treated as no currency at all.
type CurrencySummary struct {
	ID     uuid.UUID
	Code   string
	Symbol string
	Name   string
	Rate   float64
	IsBase bool
}

// Status filters for goal listings.
type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

var (
	ErrNotFound     = errors.New("goal not found")
	ErrInvalidInput = errors.New("invalid goal input")
)
