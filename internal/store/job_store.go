package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/mrmoe28/solarscheduler/internal/domain"
)

const jobColumns = `
	id, customer_id, title, status, scheduled_at, address, panel_count,
	system_size_kw, notes, created_at
`

type JobStore struct {
	db *sql.DB
}

func NewJobStore(db *sql.DB) *JobStore {
	return &JobStore{db: db}
}

func scanJob(scanner interface{ Scan(...any) error }) (*domain.Job, error) {
	j := &domain.Job{}
	err := scanner.Scan(&j.ID, &j.CustomerID, &j.Title, &j.Status, &j.ScheduledAt,
		&j.Address, &j.PanelCount, &j.SystemSizeKW, &j.Notes, &j.CreatedAt)
	return j, err
}

func (s *JobStore) Create(ctx context.Context, in *domain.JobInput) (*domain.Job, error) {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO jobs (customer_id, title, status, scheduled_at, address, panel_count, system_size_kw, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, in.CustomerID, in.Title, in.Status, in.ScheduledAt, in.Address,
		in.PanelCount, in.SystemSizeKW, in.Notes)
	if err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get last insert id: %w", err)
	}

	return s.GetByID(ctx, id)
}

func (s *JobStore) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	j, err := scanJob(s.db.QueryRowContext(ctx, `
		SELECT `+jobColumns+` FROM jobs WHERE id = ?
	`, id))

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	return j, nil
}

// List returns jobs ordered by scheduled time, soonest first, with unscheduled
// jobs last. An empty status returns every job.
func (s *JobStore) List(ctx context.Context, status domain.JobStatus) ([]*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs`
	var args []any
	if status != "" {
		query += ` WHERE status = ?`
		args = append(args, status)
	}
	query += ` ORDER BY scheduled_at IS NULL, scheduled_at ASC, id ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("failed to close rows", "error", err)
		}
	}()

	var jobs []*domain.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, j)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating jobs: %w", err)
	}

	return jobs, nil
}

func (s *JobStore) ListByCustomerID(ctx context.Context, customerID int64) ([]*domain.Job, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+jobColumns+` FROM jobs WHERE customer_id = ?
		ORDER BY scheduled_at IS NULL, scheduled_at ASC, id ASC
	`, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("failed to close rows", "error", err)
		}
	}()

	var jobs []*domain.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, j)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating jobs: %w", err)
	}

	return jobs, nil
}

// Update replaces every editable field of the job.
func (s *JobStore) Update(ctx context.Context, id int64, in *domain.JobInput) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE jobs SET customer_id = ?, title = ?, status = ?, scheduled_at = ?,
			address = ?, panel_count = ?, system_size_kw = ?, notes = ?
		WHERE id = ?
	`, in.CustomerID, in.Title, in.Status, in.ScheduledAt, in.Address,
		in.PanelCount, in.SystemSizeKW, in.Notes, id)
	if err != nil {
		return fmt.Errorf("failed to update job: %w", err)
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

func (s *JobStore) Delete(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `
		DELETE FROM jobs WHERE id = ?
	`, id)
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
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

// Stats aggregates job counts by status and installed equipment totals for
// completed jobs.
func (s *JobStore) Stats(ctx context.Context) (*domain.JobStats, *domain.EquipmentStats, error) {
	jobStats := &domain.JobStats{}
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
			COALESCE(SUM(status = 'scheduled'), 0),
			COALESCE(SUM(status = 'in_progress'), 0),
			COALESCE(SUM(status = 'completed'), 0),
			COALESCE(SUM(status = 'cancelled'), 0)
		FROM jobs
	`).Scan(&jobStats.Total, &jobStats.Scheduled, &jobStats.InProgress,
		&jobStats.Completed, &jobStats.Cancelled)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to aggregate job stats: %w", err)
	}

	equipStats := &domain.EquipmentStats{}
	err = s.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(panel_count), 0), COALESCE(SUM(system_size_kw), 0)
		FROM jobs WHERE status = 'completed'
	`).Scan(&equipStats.PanelsInstalled, &equipStats.TotalCapacityKW)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to aggregate equipment stats: %w", err)
	}

	return jobStats, equipStats, nil
}
