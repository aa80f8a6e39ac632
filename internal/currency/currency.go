package currency

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Currency is a per-user currency with an exchange rate relative to the
// user's base. At most one currency per user carries IsBase.
type Currency struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Code      string
	Symbol    string
	Name      string
	Rate      float64
	IsBase    bool
	CreatedAt time.Time
}

var (
	ErrNotFound     = errors.New("currency not found")
	ErrInvalidInput = errors.New("invalid currency input")
)
