package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=category
type Repository interface {
	CreateCategory(ctx context.Context, c *Category) error
	GetCategory(ctx context.Context, userID, id uuid.UUID) (*Category, error)
	// FindCategoryByName matches the name case-insensitively, scoped to the
	// user. Returns (nil, nil) when no category matches.
	FindCategoryByName(ctx context.Context, userID uuid.UUID, name string) (*Category, error)
	ListCategories(ctx context.Context, userID uuid.UUID, filter ListFilter) ([]*Category, error)
	UpdateCategory(ctx context.Context, c *Category) error
	DeleteCategory(ctx context.Context, userID, id uuid.UUID) error
	CountCategories(ctx context.Context, userID uuid.UUID) (int, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type ListFilter struct {
	Type *Type
}

type CreateParams struct {
	Name   string
	Type   Type
	Color  string
	Icon   string
	Budget float64
}

type UpdateParams struct {
	Name   *string
	Type   *Type
	Color  *string
	Icon   *string
	Budget *float64
}

func validateName(name string) error {
	if len(name) < 2 || len(name) > 50 {
		return fmt.Errorf("%w: name must be between 2 and 50 characters", ErrInvalidInput)
	}

	return nil
}

func (s *Service) Create(ctx context.Context, userID uuid.UUID, params CreateParams) (*Category, error) {
	if err := validateName(params.Name); err != nil {
		return nil, err
	}

	if !params.Type.Valid() {
		return nil, fmt.Errorf("%w: type must be either income or expense", ErrInvalidInput)
	}

	c := &Category{
		UserID: userID,
		Name:   params.Name,
		Type:   params.Type,
		Color:  params.Color,
		Icon:   params.Icon,
		Budget: params.Budget,
	}

	if c.Color == "" {
		c.Color = "#4CAF50"
	}

	if c.Icon == "" {
		c.Icon = "category"
	}

	if err := s.repo.CreateCategory(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) List(ctx context.Context, userID uuid.UUID, filter ListFilter) ([]*Category, error) {
	return s.repo.ListCategories(ctx, userID, filter)
}

func (s *Service) Get(ctx context.Context, userID, id uuid.UUID) (*Category, error) {
	return s.repo.GetCategory(ctx, userID, id)
}

func (s *Service) Update(ctx context.Context, userID, id uuid.UUID, params UpdateParams) (*Category, error) {
	c, err := s.repo.GetCategory(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if params.Name != nil {
		if err := validateName(*params.Name); err != nil {
			return nil, err
		}

		c.Name = *params.Name
	}

	if params.Type != nil {
		if !params.Type.Valid() {
			return nil, fmt.Errorf("%w: type must be either income or expense", ErrInvalidInput)
		}

		c.Type = *params.Type
	}

	if params.Color != nil {
		c.Color = *params.Color
	}

	if params.Icon != nil {
		c.Icon = *params.Icon
	}

	if params.Budget != nil {
		c.Budget = *params.Budget
	}

	if err := s.repo.UpdateCategory(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.DeleteCategory(ctx, userID, id)
}
