package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrmoe28/solarscheduler/internal/db"
	"github.com/mrmoe28/solarscheduler/internal/domain"
	"github.com/mrmoe28/solarscheduler/internal/store"
)

type jobServiceEnv struct {
	jobs      *JobService
	customers *CustomerService
}

func newJobService(t *testing.T) jobServiceEnv {
	t.Helper()
	d, err := db.OpenForTesting()
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })

	customerStore := store.NewCustomerStore(d)
	jobStore := store.NewJobStore(d)
	return jobServiceEnv{
		jobs:      NewJobService(jobStore, customerStore, testLogger()),
		customers: NewCustomerService(customerStore, testLogger()),
	}
}

func (e jobServiceEnv) customer(t *testing.T, name string) *domain.Customer {
	t.Helper()
	customer, err := e.customers.Create(context.Background(), domain.CustomerInput{Name: name})
	require.NoError(t, err)
	return customer
}

func TestJobCreateRequiresTitle(t *testing.T) {
	env := newJobService(t)

	_, err := env.jobs.Create(context.Background(), domain.JobInput{CustomerID: 1})
	assert.ErrorIs(t, err, domain.ErrNameRequired)
}

func TestJobCreateRequiresExistingCustomer(t *testing.T) {
	env := newJobService(t)

	_, err := env.jobs.Create(context.Background(), domain.JobInput{CustomerID: 99999, Title: "Roof install"})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestJobCreateDefaultsStatusAndTouchesCustomer(t *testing.T) {
	env := newJobService(t)
	ctx := context.Background()
	customer := env.customer(t, "Alice")

	require.Nil(t, customer.LastContactAt)

	job, err := env.jobs.Create(ctx, domain.JobInput{
		CustomerID:   customer.ID,
		Title:        "  Roof install  ",
		PanelCount:   18,
		SystemSizeKW: 7.2,
	})
	require.NoError(t, err)
	assert.Equal(t, "Roof install", job.Title)
	assert.Equal(t, domain.JobScheduled, job.Status)

	// Creating a job counts as contact with the customer.
	updated, err := env.customers.Get(ctx, customer.ID)
	require.NoError(t, err)
	require.NotNil(t, updated.LastContactAt)
	assert.WithinDuration(t, time.Now(), *updated.LastContactAt, time.Minute)
	assert.Equal(t, 1, updated.ActiveJobs)
}

func TestJobCreateRejectsUnknownStatus(t *testing.T) {
	env := newJobService(t)
	customer := env.customer(t, "Alice")

	_, err := env.jobs.Create(context.Background(), domain.JobInput{
		CustomerID: customer.ID,
		Title:      "Roof install",
		Status:     "paused",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestJobListFiltersByStatusAndQuery(t *testing.T) {
	env := newJobService(t)
	ctx := context.Background()
	customer := env.customer(t, "Alice")

	for _, in := range []domain.JobInput{
		{CustomerID: customer.ID, Title: "Roof install", Status: domain.JobScheduled},
		{CustomerID: customer.ID, Title: "Ground mount", Status: domain.JobInProgress},
		{CustomerID: customer.ID, Title: "Roof repair", Status: domain.JobCompleted},
	} {
		_, err := env.jobs.Create(ctx, in)
		require.NoError(t, err)
	}

	jobs, err := env.jobs.List(ctx, "", domain.JobScheduled)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Roof install", jobs[0].Title)

	jobs, err = env.jobs.List(ctx, "roof", "")
	require.NoError(t, err)
	assert.Len(t, jobs, 2)

	jobs, err = env.jobs.List(ctx, "roof", domain.JobCompleted)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Roof repair", jobs[0].Title)

	_, err = env.jobs.List(ctx, "", "paused")
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestJobUpdateChangesStatus(t *testing.T) {
	env := newJobService(t)
	ctx := context.Background()
	customer := env.customer(t, "Alice")

	job, err := env.jobs.Create(ctx, domain.JobInput{CustomerID: customer.ID, Title: "Roof install"})
	require.NoError(t, err)

	updated, err := env.jobs.Update(ctx, job.ID, domain.JobInput{
		CustomerID: customer.ID,
		Title:      "Roof install",
		Status:     domain.JobCompleted,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.JobCompleted, updated.Status)

	// Completed jobs no longer count toward the customer's active total.
	got, err := env.customers.Get(ctx, customer.ID)
	require.NoError(t, err)
	assert.Zero(t, got.ActiveJobs)
}

func TestJobListByCustomer(t *testing.T) {
	env := newJobService(t)
	ctx := context.Background()
	alice := env.customer(t, "Alice")
	bob := env.customer(t, "Bob")

	_, err := env.jobs.Create(ctx, domain.JobInput{CustomerID: alice.ID, Title: "Alice roof"})
	require.NoError(t, err)
	_, err = env.jobs.Create(ctx, domain.JobInput{CustomerID: bob.ID, Title: "Bob carport"})
	require.NoError(t, err)

	jobs, err := env.jobs.ListByCustomer(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Alice roof", jobs[0].Title)
}
