package card

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=card
type Repository interface {
	CreateCard(ctx context.Context, c *Card) error
	GetCard(ctx context.Context, userID, id uuid.UUID) (*Card, error)
	ListCards(ctx context.Context, userID uuid.UUID) ([]*Card, error)
	UpdateCard(ctx context.Context, c *Card) error
	DeleteCard(ctx context.Context, userID, id uuid.UUID) error
	CountCards(ctx context.Context, userID uuid.UUID) (int, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name       string
	Type       string
	LastDigits string
	Color      string
	Limit      float64
}

type UpdateParams struct {
	Name       *string
	Type       *string
	LastDigits *string
	Color      *string
	Limit      *float64
}

func (s *Service) Create(ctx context.Context, userID uuid.UUID, params CreateParams) (*Card, error) {
	if params.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	c := &Card{
		UserID:     userID,
		Name:       params.Name,
		Type:       params.Type,
		LastDigits: params.LastDigits,
		Color:      params.Color,
		Limit:      params.Limit,
	}
	if err := s.repo.CreateCard(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]*Card, error) {
	return s.repo.ListCards(ctx, userID)
}

func (s *Service) Get(ctx context.Context, userID, id uuid.UUID) (*Card, error) {
	return s.repo.GetCard(ctx, userID, id)
}

func (s *Service) Update(ctx context.Context, userID, id uuid.UUID, params UpdateParams) (*Card, error) {
	c, err := s.repo.GetCard(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if params.Name != nil {
		c.Name = *params.Name
	}

	if params.Type != nil {
		c.Type = *params.Type
	}

	if params.LastDigits != nil {
		c.LastDigits = *params.LastDigits
	}

	if params.Color != nil {
		c.Color = *params.Color
	}

	if params.Limit != nil {
		c.Limit = *params.Limit
	}

	if err := s.repo.UpdateCard(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.DeleteCard(ctx, userID, id)
}
