package currency

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=currency
type Repository interface {
	CreateCurrency(ctx context.Context, c *Currency) error
	GetCurrency(ctx context.Context, userID, id uuid.UUID) (*Currency, error)
	ListCurrencies(ctx context.Context, userID uuid.UUID) ([]*Currency, error)
	UpdateCurrency(ctx context.Context, c *Currency) error
	DeleteCurrency(ctx context.Context, userID, id uuid.UUID) error
	// GetBaseCurrency returns (nil, nil) when the user has not designated a
	// base currency.
	GetBaseCurrency(ctx context.Context, userID uuid.UUID) (*Currency, error)
	// SetBaseCurrency flips the base flag to the given currency and clears
	// it from every other currency of the user, atomically.
	SetBaseCurrency(ctx context.Context, userID, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Code   string
	Symbol string
	Name   string
	Rate   float64
	IsBase bool
}

type UpdateParams struct {
	Code   *string
	Symbol *string
	Name   *string
	Rate   *float64
}

func validRate(rate float64) bool {
	return !math.IsNaN(rate) && !math.IsInf(rate, 0) && rate > 0
}

func (s *Service) Create(ctx context.Context, userID uuid.UUID, params CreateParams) (*Currency, error) {
	code := strings.ToUpper(strings.TrimSpace(params.Code))
	if code == "" {
		return nil, fmt.Errorf("%w: code is required", ErrInvalidInput)
	}

	if !validRate(params.Rate) {
		return nil, fmt.Errorf("%w: rate must be a positive number", ErrInvalidInput)
	}

	c := &Currency{
		UserID: userID,
		Code:   code,
		Symbol: params.Symbol,
		Name:   params.Name,
		Rate:   params.Rate,
	}
	if err := s.repo.CreateCurrency(ctx, c); err != nil {
		return nil, err
	}

	if params.IsBase {
		if err := s.repo.SetBaseCurrency(ctx, userID, c.ID); err != nil {
			return nil, err
		}

		c.IsBase = true
	}

	return c, nil
}

func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]*Currency, error) {
	return s.repo.ListCurrencies(ctx, userID)
}

func (s *Service) Get(ctx context.Context, userID, id uuid.UUID) (*Currency, error) {
	return s.repo.GetCurrency(ctx, userID, id)
}

func (s *Service) Update(ctx context.Context, userID, id uuid.UUID, params UpdateParams) (*Currency, error) {
	c, err := s.repo.GetCurrency(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if params.Code != nil {
		code := strings.ToUpper(strings.TrimSpace(*params.Code))
		if code == "" {
			return nil, fmt.Errorf("%w: code is required", ErrInvalidInput)
		}

		c.Code = code
	}

	if params.Symbol != nil {
		c.Symbol = *params.Symbol
	}

	if params.Name != nil {
		c.Name = *params.Name
	}

	if params.Rate != nil {
		if !validRate(*params.Rate) {
			return nil, fmt.Errorf("%w: rate must be a positive number", ErrInvalidInput)
		}

		c.Rate = *params.Rate
	}

	if err := s.repo.UpdateCurrency(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.DeleteCurrency(ctx, userID, id)
}

// SetBase designates the currency as the user's single base currency.
func (s *Service) SetBase(ctx context.Context, userID, id uuid.UUID) (*Currency, error) {
	if err := s.repo.SetBaseCurrency(ctx, userID, id); err != nil {
		return nil, err
	}

	return s.repo.GetCurrency(ctx, userID, id)
}
