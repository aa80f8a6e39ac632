package category

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Type classifies a category as money coming in or going out.
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

func (t Type) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Category is a per-user label for transactions and goals. Names are unique
// per user, case-insensitively.
type Category struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Type      Type
	Color     string
	Icon      string
	Budget    float64
	CreatedAt time.Time
	UpdatedAt *time.Time
}

var (
	ErrNotFound      = errors.New("category not found")
	ErrAlreadyExists = errors.New("category already exists")
	ErrInvalidInput  = errors.New("invalid category input")
)

// InvalidReferenceError reports a category reference that does not resolve
// for the user. The offending value is echoed back to the client.
type InvalidReferenceError struct {
	Value string
}

func (e *InvalidReferenceError) Error() string {
	return fmt.Sprintf("category %q not found", e.Value)
}
