package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mrmoe28/solarscheduler/internal/domain"
	"github.com/mrmoe28/solarscheduler/internal/filter"
	"github.com/mrmoe28/solarscheduler/internal/store"
)

// jobRepository is the subset of store.JobStore that JobService requires.
type jobRepository interface {
	Create(ctx context.Context, in *domain.JobInput) (*domain.Job, error)
	GetByID(ctx context.Context, id int64) (*domain.Job, error)
	List(ctx context.Context, status domain.JobStatus) ([]*domain.Job, error)
	ListByCustomerID(ctx context.Context, customerID int64) ([]*domain.Job, error)
	Update(ctx context.Context, id int64, in *domain.JobInput) error
	Delete(ctx context.Context, id int64) error
}

// jobCustomerRepository is the subset of store.CustomerStore that JobService
// requires.
type jobCustomerRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	TouchLastContact(ctx context.Context, id int64) error
}

type JobService struct {
	jobs      jobRepository
	customers jobCustomerRepository
	logger    *slog.Logger
}

func NewJobService(jobs jobRepository, customers jobCustomerRepository, logger *slog.Logger) *JobService {
	return &JobService{jobs: jobs, customers: customers, logger: logger}
}

// Create validates the submitted fields, checks the customer exists, and
// persists a new job. Creating a job counts as contact with the customer.
func (s *JobService) Create(ctx context.Context, in domain.JobInput) (*domain.Job, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	in.Normalize()

	customer, err := s.customers.GetByID(ctx, in.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	if customer == nil {
		return nil, fmt.Errorf("customer %d: %w", in.CustomerID, store.ErrNotFound)
	}

	job, err := s.jobs.Create(ctx, &in)
	if err != nil {
		return nil, fmt.Errorf("failed to save job: %w", err)
	}

	if err := s.customers.TouchLastContact(ctx, in.CustomerID); err != nil {
		s.logger.Error("failed to update customer last contact", "customer_id", in.CustomerID, "error", err)
	}

	s.logger.Info("job created", "job_id", job.ID, "customer_id", job.CustomerID)
	return job, nil
}

// Update validates the submitted fields and replaces every editable field of
// the existing job.
func (s *JobService) Update(ctx context.Context, id int64, in domain.JobInput) (*domain.Job, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	in.Normalize()

	if err := s.jobs.Update(ctx, id, &in); err != nil {
		return nil, fmt.Errorf("failed to update job: %w", err)
	}
	return s.jobs.GetByID(ctx, id)
}

func (s *JobService) Get(ctx context.Context, id int64) (*domain.Job, error) {
	return s.jobs.GetByID(ctx, id)
}

// List returns jobs, optionally restricted to one status, matching the
// free-text query against title, address, and notes.
func (s *JobService) List(ctx context.Context, query string, status domain.JobStatus) ([]*domain.Job, error) {
	if status != "" && !status.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, status)
	}
	jobs, err := s.jobs.List(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return filter.Jobs(jobs, query), nil
}

func (s *JobService) ListByCustomer(ctx context.Context, customerID int64) ([]*domain.Job, error) {
	return s.jobs.ListByCustomerID(ctx, customerID)
}

func (s *JobService) Delete(ctx context.Context, id int64) error {
	return s.jobs.Delete(ctx, id)
}
