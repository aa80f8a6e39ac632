package transaction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/andremtx/grana/internal/category"
	"github.com/andremtx/grana/internal/money"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=transaction
type Repository interface {
	CreateTransaction(ctx context.Context, tx *Transaction) error
	GetTransaction(ctx context.Context, userID, id uuid.UUID) (*Transaction, error)
	ListTransactions(ctx context.Context, userID uuid.UUID, filter ListFilter) ([]*Transaction, error)
	UpdateTransaction(ctx context.Context, tx *Transaction) error
	DeleteTransaction(ctx context.Context, userID, id uuid.UUID) error
}

// Resolver is the category resolution contract the service depends on.
type Resolver interface {
	Resolve(ctx context.Context, userID uuid.UUID, ref category.Ref, auto *category.AutoCreate) (*uuid.UUID, error)
}

type Service struct {
	repo     Repository
	resolver Resolver
}

func NewService(repo Repository, resolver Resolver) *Service {
	return &Service{repo: repo, resolver: resolver}
}

// Colors given to categories auto-created from a transaction write.
var defaultCategoryColors = map[Type]string{
	TypeIncome:  "#4CAF50",
	TypeExpense: "#F44336",
}

type CreateParams struct {
	Amount      float64
	Type        Type
	Description string
	Notes       string
	Category    category.Ref
	CardID      *uuid.UUID
	Date        time.Time
}

// ListFilter is the storage-level filter; category references are resolved
// to a concrete id before it is built.
type ListFilter struct {
	StartDate  *time.Time
	EndDate    *time.Time
	Type       *Type
	CategoryID *uuid.UUID
}

// ListParams is the caller-facing filter, carrying the raw category
// reference.
type ListParams struct {
	StartDate *time.Time
	EndDate   *time.Time
	Type      *Type
	Category  category.Ref
}

type UpdateParams struct {
	Amount      *float64
	Type        *Type
	Description *string
	Notes       *string
	Category    *category.Ref
	CardID      *uuid.UUID
	ClearCard   bool
	Date        *time.Time
}

func (s *Service) Create(ctx context.Context, userID uuid.UUID, params CreateParams) (*Transaction, error) {
	amount, err := money.ParseAmount(params.Amount)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	if !params.Type.Valid() {
		return nil, fmt.Errorf("%w: type must be either income or expense", ErrInvalidInput)
	}

	categoryID, err := s.resolver.Resolve(ctx, userID, params.Category, &category.AutoCreate{
		Type:  category.Type(params.Type),
		Color: defaultCategoryColors[params.Type],
		Icon:  "category",
	})
	if err != nil {
		return nil, err
	}

	date := params.Date
	if date.IsZero() {
		date = time.Now()
	}

	tx := &Transaction{
		UserID:      userID,
		Amount:      amount,
		Type:        params.Type,
		Description: params.Description,
		Notes:       params.Notes,
		CategoryID:  categoryID,
		CardID:      params.CardID,
		Date:        date,
	}
	if err := s.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	return tx, nil
}

// List returns the user's transactions, newest first. A category reference
// that resolves to nothing yields an empty result set rather than an error.
func (s *Service) List(ctx context.Context, userID uuid.UUID, params ListParams) ([]*Transaction, error) {
	filter := ListFilter{
		StartDate: params.StartDate,
		EndDate:   params.EndDate,
		Type:      params.Type,
	}

	if params.Category.Kind != category.RefEmpty {
		categoryID, err := s.resolver.Resolve(ctx, userID, params.Category, nil)
		if err != nil {
			var invalid *category.InvalidReferenceError
			if errors.As(err, &invalid) {
				return []*Transaction{}, nil
			}

			return nil, err
		}

		filter.CategoryID = categoryID
	}

	return s.repo.ListTransactions(ctx, userID, filter)
}

func (s *Service) Get(ctx context.Context, userID, id uuid.UUID) (*Transaction, error) {
	return s.repo.GetTransaction(ctx, userID, id)
}

func (s *Service) Update(ctx context.Context, userID, id uuid.UUID, params UpdateParams) (*Transaction, error) {
	tx, err := s.repo.GetTransaction(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if params.Amount != nil {
		amount, err := money.ParseAmount(*params.Amount)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
		}

		tx.Amount = amount
	}

	if params.Type != nil {
		if !params.Type.Valid() {
			return nil, fmt.Errorf("%w: type must be either income or expense", ErrInvalidInput)
		}

		tx.Type = *params.Type
	}

	if params.Description != nil {
		tx.Description = *params.Description
	}

	if params.Notes != nil {
		tx.Notes = *params.Notes
	}

	// A present category field is always re-resolved; an empty reference
	// clears it. Updates never auto-create categories.
	if params.Category != nil {
		categoryID, err := s.resolver.Resolve(ctx, userID, *params.Category, nil)
		if err != nil {
			return nil, err
		}

		tx.CategoryID = categoryID
	}

	if params.ClearCard {
		tx.CardID = nil
	} else if params.CardID != nil {
		tx.CardID = params.CardID
	}

	if params.Date != nil {
		tx.Date = *params.Date
	}

	if err := s.repo.UpdateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	return tx, nil
}

func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.DeleteTransaction(ctx, userID, id)
}
