package transaction

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Type represents the type of transaction (income or expense).
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

func (t Type) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Transaction represents a financial transaction owned by a single user.
// Amounts are stored as positive magnitudes for both types; the sign is
// carried by Type.
type Transaction struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Amount      float64
	Type        Type
	Description string
	Notes       string
	CategoryID  *uuid.UUID
	Category    *CategorySummary // Loaded via JOIN
	CardID      *uuid.UUID
	Card        *CardSummary // Loaded via JOIN
	Date        time.Time
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// CategorySummary is the slice of the referenced category a transaction
// carries on reads.
type CategorySummary struct {
	ID    uuid.UUID
	Name  string
	Color string
	Icon  string
}

// CardSummary is the slice of the referenced card a transaction carries on
// reads.
type CardSummary struct {
	ID   uuid.UUID
	Name string
	Type string
}

var (
	ErrNotFound     = errors.New("transaction not found")
	ErrInvalidInput = errors.New("invalid transaction input")
)
