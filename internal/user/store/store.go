package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/andremtx/grana/internal/user"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectUserColumns = `
	id, name, email, password_hash, preferences, created_at, updated_at
`

func scanUser(s scanner) (*user.User, error) {
	var u user.User

	var preferences []byte

	if err := s.Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &preferences, &u.CreatedAt, &u.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if len(preferences) > 0 {
		if err := json.Unmarshal(preferences, &u.Preferences); err != nil {
			return nil, fmt.Errorf("decoding preferences: %w", err)
		}
	}

	return &u, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (s *Store) CreateUser(ctx context.Context, u *user.User) error {
	preferences, err := json.Marshal(u.Preferences)
	if err != nil {
		return fmt.Errorf("encoding preferences: %w", err)
	}

	query := `
		INSERT INTO users (name, email, password_hash, preferences, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err = s.db.QueryRowContext(ctx, query,
		u.Name,
		u.Email,
		u.PasswordHash,
		preferences,
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return user.ErrEmailTaken
		}

		return fmt.Errorf("creating user: %w", err)
	}

	return nil
}

func (s *Store) GetUser(ctx context.Context, id uuid.UUID) (*user.User, error) {
	query := `SELECT ` + selectUserColumns + ` FROM users WHERE id = $1`

	u, err := scanUser(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, user.ErrNotFound
		}

		return nil, fmt.Errorf("getting user: %w", err)
	}

	return u, nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*user.User, error) {
	query := `SELECT ` + selectUserColumns + ` FROM users WHERE email = $1`

	u, err := scanUser(s.db.QueryRowContext(ctx, query, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, user.ErrNotFound
		}

		return nil, fmt.Errorf("getting user by email: %w", err)
	}

	return u, nil
}

func (s *Store) UpdatePreferences(ctx context.Context, id uuid.UUID, preferences map[string]any) error {
	encoded, err := json.Marshal(preferences)
	if err != nil {
		return fmt.Errorf("encoding preferences: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`UPDATE users SET preferences = $1, updated_at = NOW() WHERE id = $2`,
		encoded, id,
	)
	if err != nil {
		return fmt.Errorf("updating preferences: %w", err)
	}

	return nil
}

func (s *Store) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE users SET password_hash = $1, updated_at = NOW() WHERE id = $2`,
		passwordHash, id,
	)
	if err != nil {
		return fmt.Errorf("updating password: %w", err)
	}

	return nil
}

func (s *Store) DeleteUser(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return user.ErrNotFound
	}

	return nil
}
