package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mrmoe28/solarscheduler/internal/domain"
	"github.com/mrmoe28/solarscheduler/internal/filter"
)

// vendorRepository is the subset of store.VendorStore that VendorService
// requires.
type vendorRepository interface {
	Create(ctx context.Context, in *domain.VendorInput) (*domain.Vendor, error)
	GetByID(ctx context.Context, id int64) (*domain.Vendor, error)
	List(ctx context.Context, activeOnly bool) ([]*domain.Vendor, error)
	Update(ctx context.Context, id int64, in *domain.VendorInput) error
	Deactivate(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

type VendorService struct {
	vendors vendorRepository
	logger  *slog.Logger
}

func NewVendorService(vendors vendorRepository, logger *slog.Logger) *VendorService {
	return &VendorService{vendors: vendors, logger: logger}
}

// Create validates the submitted fields, including email syntax, trims
// free-text whitespace, and persists a new vendor. Validation failures are
// returned before any storage call is made.
func (s *VendorService) Create(ctx context.Context, in domain.VendorInput) (*domain.Vendor, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	in.Normalize()

	vendor, err := s.vendors.Create(ctx, &in)
	if err != nil {
		return nil, fmt.Errorf("failed to save vendor: %w", err)
	}
	s.logger.Info("vendor created", "vendor_id", vendor.ID)
	return vendor, nil
}

// Update validates the submitted fields and replaces every editable field of
// the existing vendor.
func (s *VendorService) Update(ctx context.Context, id int64, in domain.VendorInput) (*domain.Vendor, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	in.Normalize()

	if err := s.vendors.Update(ctx, id, &in); err != nil {
		return nil, fmt.Errorf("failed to update vendor: %w", err)
	}
	return s.vendors.GetByID(ctx, id)
}

func (s *VendorService) Get(ctx context.Context, id int64) (*domain.Vendor, error) {
	return s.vendors.GetByID(ctx, id)
}

// List returns active vendors matching the free-text query against name and
// specialties. Deactivated vendors are never returned, query or not.
func (s *VendorService) List(ctx context.Context, query string) ([]*domain.Vendor, error) {
	vendors, err := s.vendors.List(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list vendors: %w", err)
	}
	return filter.Vendors(vendors, query), nil
}

// Deactivate soft-deletes the vendor; it stays in storage but drops out of
// every listing.
func (s *VendorService) Deactivate(ctx context.Context, id int64) error {
	return s.vendors.Deactivate(ctx, id)
}

// Delete permanently removes the vendor record.
func (s *VendorService) Delete(ctx context.Context, id int64) error {
	return s.vendors.Delete(ctx, id)
}
