package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mrmoe28/solarscheduler/internal/domain"
)

type UserStore struct {
	db *sql.DB
}

func NewUserStore(db *sql.DB) *UserStore {
	return &UserStore{db: db}
}

func (s *UserStore) Create(ctx context.Context, id, email, name string) (*domain.User, error) {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (id, email, name) VALUES (?, ?, ?)
	`, id, email, name)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.GetByID(ctx, id)
}

func (s *UserStore) GetByID(ctx context.Context, id string) (*domain.User, error) {
	u := &domain.User{}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, email, name, company, phone, created_at FROM users WHERE id = ?
	`, id).Scan(&u.ID, &u.Email, &u.Name, &u.Company, &u.Phone, &u.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return u, nil
}

func (s *UserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	u := &domain.User{}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, email, name, company, phone, created_at FROM users WHERE email = ?
	`, email).Scan(&u.ID, &u.Email, &u.Name, &u.Company, &u.Phone, &u.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return u, nil
}

// UpdateProfile replaces the editable profile fields.
func (s *UserStore) UpdateProfile(ctx context.Context, id string, in *domain.ProfileInput) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE users SET name = ?, company = ?, phone = ? WHERE id = ?
	`, in.Name, in.Company, in.Phone, id)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes the user. Sessions cascade via foreign key.
func (s *UserStore) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `
		DELETE FROM users WHERE id = ?
	`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
