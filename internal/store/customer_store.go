package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mrmoe28/solarscheduler/internal/domain"
)

// ErrNotFound is returned when an operation targets a record that does not
// exist.
var ErrNotFound = errors.New("record not found")

// customerColumns selects customer fields plus the computed count of jobs
// still in an active status.
const customerColumns = `
	c.id, c.name, c.email, c.phone, c.address, c.notes, c.created_at, c.last_contact_at,
	(SELECT COUNT(*) FROM jobs j WHERE j.customer_id = c.id AND j.status IN ('scheduled', 'in_progress')) AS active_jobs
`

type CustomerStore struct {
	db *sql.DB
}

func NewCustomerStore(db *sql.DB) *CustomerStore {
	return &CustomerStore{db: db}
}

func scanCustomer(scanner interface{ Scan(...any) error }) (*domain.Customer, error) {
	c := &domain.Customer{}
	err := scanner.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.Notes,
		&c.CreatedAt, &c.LastContactAt, &c.ActiveJobs)
	return c, err
}

func (s *CustomerStore) Create(ctx context.Context, in *domain.CustomerInput) (*domain.Customer, error) {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO customers (name, email, phone, address, notes) VALUES (?, ?, ?, ?, ?)
	`, in.Name, in.Email, in.Phone, in.Address, in.Notes)
	if err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get last insert id: %w", err)
	}

	return s.GetByID(ctx, id)
}

func (s *CustomerStore) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	c, err := scanCustomer(s.db.QueryRowContext(ctx, `
		SELECT `+customerColumns+` FROM customers c WHERE c.id = ?
	`, id))

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	return c, nil
}

func (s *CustomerStore) List(ctx context.Context) ([]*domain.Customer, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+customerColumns+` FROM customers c ORDER BY c.name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("failed to close rows", "error", err)
		}
	}()

	var customers []*domain.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating customers: %w", err)
	}

	return customers, nil
}

// Update replaces every editable field of the customer.
func (s *CustomerStore) Update(ctx context.Context, id int64, in *domain.CustomerInput) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE customers SET name = ?, email = ?, phone = ?, address = ?, notes = ? WHERE id = ?
	`, in.Name, in.Email, in.Phone, in.Address, in.Notes, id)
	if err != nil {
		return fmt.Errorf("failed to update customer: %w", err)
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

// TouchLastContact stamps the customer's last contact time to now.
func (s *CustomerStore) TouchLastContact(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE customers SET last_contact_at = datetime('now') WHERE id = ?
	`, id)
	if err != nil {
		return fmt.Errorf("failed to touch customer: %w", err)
	}
	return nil
}

func (s *CustomerStore) Delete(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `
		DELETE FROM customers WHERE id = ?
	`, id)
	if err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
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
