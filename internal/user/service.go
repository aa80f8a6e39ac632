package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=user
type Repository interface {
	CreateUser(ctx context.Context, u *User) error
	GetUser(ctx context.Context, id uuid.UUID) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	UpdatePreferences(ctx context.Context, id uuid.UUID, preferences map[string]any) error
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type RegisterParams struct {
	Name     string
	Email    string
	Password string
}

// Register creates an account with a bcrypt-hashed credential.
func (s *Service) Register(ctx context.Context, params RegisterParams) (*User, error) {
	email := strings.ToLower(strings.TrimSpace(params.Email))
	if params.Name == "" || email == "" {
		return nil, fmt.Errorf("%w: name and email are required", ErrInvalidInput)
	}

	if len(params.Password) < 6 {
		return nil, fmt.Errorf("%w: password must be at least 6 characters", ErrInvalidInput)
	}

	hash, err := HashPassword(params.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	u := &User{
		Name:         params.Name,
		Email:        email,
		PasswordHash: hash,
		Preferences:  map[string]any{},
	}
	if err := s.repo.CreateUser(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}

// Authenticate verifies an email/password pair. A missing account and a bad
// password report the same error.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*User, error) {
	u, err := s.repo.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}

		return nil, err
	}

	if !u.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}

	return u, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*User, error) {
	return s.repo.GetUser(ctx, id)
}

func (s *Service) GetPreferences(ctx context.Context, id uuid.UUID) (map[string]any, error) {
	u, err := s.repo.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if u.Preferences == nil {
		return map[string]any{}, nil
	}

	return u.Preferences, nil
}

// UpdatePreferences merges the given keys into the stored preference bag.
func (s *Service) UpdatePreferences(ctx context.Context, id uuid.UUID, preferences map[string]any) (map[string]any, error) {
	u, err := s.repo.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := make(map[string]any, len(u.Preferences)+len(preferences))
	for k, v := range u.Preferences {
		merged[k] = v
	}

	for k, v := range preferences {
		merged[k] = v
	}

	if err := s.repo.UpdatePreferences(ctx, id, merged); err != nil {
		return nil, err
	}

	return merged, nil
}

func (s *Service) ChangePassword(ctx context.Context, id uuid.UUID, current, next string) error {
	u, err := s.repo.GetUser(ctx, id)
	if err != nil {
		return err
	}

	if !u.CheckPassword(current) {
		return ErrInvalidCredentials
	}

	if len(next) < 6 {
		return fmt.Errorf("%w: password must be at least 6 characters", ErrInvalidInput)
	}

	hash, err := HashPassword(next)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	return s.repo.UpdatePassword(ctx, id, hash)
}

// DeleteAccount removes the user after a password check. Owned entities go
// with the account via storage-level cascades.
func (s *Service) DeleteAccount(ctx context.Context, id uuid.UUID, password string) error {
	u, err := s.repo.GetUser(ctx, id)
	if err != nil {
		return err
	}

	if !u.CheckPassword(password) {
		return ErrInvalidCredentials
	}

	return s.repo.DeleteUser(ctx, id)
}
