package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mrmoe28/solarscheduler/internal/domain"
)

const vendorColumns = `
	id, name, contact_email, contact_phone, address, website, notes,
	specialties, rating, completed_installations, is_active, created_at
`

type VendorStore struct {
	db *sql.DB
}

func NewVendorStore(db *sql.DB) *VendorStore {
	return &VendorStore{db: db}
}

func scanVendor(scanner interface{ Scan(...any) error }) (*domain.Vendor, error) {
	v := &domain.Vendor{}
	var specialties string
	err := scanner.Scan(&v.ID, &v.Name, &v.ContactEmail, &v.ContactPhone, &v.Address,
		&v.Website, &v.Notes, &specialties, &v.Rating, &v.CompletedInstallations,
		&v.Active, &v.CreatedAt)
	v.Specialties = splitSpecialties(specialties)
	return v, err
}

// Specialties are stored as a single comma-joined column.
func joinSpecialties(specialties []string) string {
	return strings.Join(specialties, ",")
}

func splitSpecialties(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

func (s *VendorStore) Create(ctx context.Context, in *domain.VendorInput) (*domain.Vendor, error) {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO vendors (name, contact_email, contact_phone, address, website, notes,
			specialties, rating, completed_installations, is_active)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, in.Name, in.ContactEmail, in.ContactPhone, in.Address, in.Website, in.Notes,
		joinSpecialties(in.Specialties), in.Rating, in.CompletedInstallations, in.Active)
	if err != nil {
		return nil, fmt.Errorf("failed to create vendor: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get last insert id: %w", err)
	}

	return s.GetByID(ctx, id)
}

func (s *VendorStore) GetByID(ctx context.Context, id int64) (*domain.Vendor, error) {
	v, err := scanVendor(s.db.QueryRowContext(ctx, `
		SELECT `+vendorColumns+` FROM vendors WHERE id = ?
	`, id))

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get vendor: %w", err)
	}

	return v, nil
}

// List returns vendors ordered by name. With activeOnly set, deactivated
// vendors are filtered at query time.
func (s *VendorStore) List(ctx context.Context, activeOnly bool) ([]*domain.Vendor, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendors`
	if activeOnly {
		query += ` WHERE is_active = 1`
	}
	query += ` ORDER BY name ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list vendors: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("failed to close rows", "error", err)
		}
	}()

	var vendors []*domain.Vendor
	for rows.Next() {
		v, err := scanVendor(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vendor: %w", err)
		}
		vendors = append(vendors, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating vendors: %w", err)
	}

	return vendors, nil
}

// Update replaces every editable field of the vendor.
func (s *VendorStore) Update(ctx context.Context, id int64, in *domain.VendorInput) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE vendors SET name = ?, contact_email = ?, contact_phone = ?, address = ?,
			website = ?, notes = ?, specialties = ?, rating = ?,
			completed_installations = ?, is_active = ?
		WHERE id = ?
	`, in.Name, in.ContactEmail, in.ContactPhone, in.Address, in.Website, in.Notes,
		joinSpecialties(in.Specialties), in.Rating, in.CompletedInstallations, in.Active, id)
	if err != nil {
		return fmt.Errorf("failed to update vendor: %w", err)
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

// Deactivate clears the vendor's active flag so queries stop returning it.
func (s *VendorStore) Deactivate(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE vendors SET is_active = 0 WHERE id = ?
	`, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate vendor: %w", err)
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

func (s *VendorStore) Delete(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `
		DELETE FROM vendors WHERE id = ?
	`, id)
	if err != nil {
		return fmt.Errorf("failed to delete vendor: %w", err)
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
