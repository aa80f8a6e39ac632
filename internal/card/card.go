package card

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Card is a payment card a user can attach to transactions.
type Card struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Name       string
	Type       string
	LastDigits string
	Color      string
	Limit      float64
	CreatedAt  time.Time
}

var (
	ErrNotFound     = errors.New("card not found")
	ErrInvalidInput = errors.New("invalid card input")
)
