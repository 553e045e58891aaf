package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mrmoe28/solarscheduler/internal/domain"
	"github.com/mrmoe28/solarscheduler/internal/filter"
)

// customerRepository is the subset of store.CustomerStore that
// CustomerService requires.
type customerRepository interface {
	Create(ctx context.Context, in *domain.CustomerInput) (*domain.Customer, error)
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	List(ctx context.Context) ([]*domain.Customer, error)
	Update(ctx context.Context, id int64, in *domain.CustomerInput) error
	Delete(ctx context.Context, id int64) error
}

type CustomerService struct {
	customers customerRepository
	logger    *slog.Logger
}

func NewCustomerService(customers customerRepository, logger *slog.Logger) *CustomerService {
	return &CustomerService{customers: customers, logger: logger}
}

// Create validates the submitted fields, trims free-text whitespace, and
// persists a new customer. Validation failures are returned before any
// storage call is made.
func (s *CustomerService) Create(ctx context.Context, in domain.CustomerInput) (*domain.Customer, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	in.Normalize()

	customer, err := s.customers.Create(ctx, &in)
	if err != nil {
		return nil, fmt.Errorf("failed to save customer: %w", err)
	}
	s.logger.Info("customer created", "customer_id", customer.ID)
	return customer, nil
}

// Update validates the submitted fields and replaces every editable field of
// the existing customer. Submitting unchanged fields is idempotent.
func (s *CustomerService) Update(ctx context.Context, id int64, in domain.CustomerInput) (*domain.Customer, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	in.Normalize()

	if err := s.customers.Update(ctx, id, &in); err != nil {
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}
	return s.customers.GetByID(ctx, id)
}

func (s *CustomerService) Get(ctx context.Context, id int64) (*domain.Customer, error) {
	return s.customers.GetByID(ctx, id)
}

// List returns customers matching the free-text query, preserving store
// order. An empty query returns everything.
func (s *CustomerService) List(ctx context.Context, query string) ([]*domain.Customer, error) {
	customers, err := s.customers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return filter.Customers(customers, query), nil
}

func (s *CustomerService) Delete(ctx context.Context, id int64) error {
	return s.customers.Delete(ctx, id)
}
