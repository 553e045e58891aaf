package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrmoe28/solarscheduler/internal/db"
	"github.com/mrmoe28/solarscheduler/internal/domain"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	d, err := db.OpenForTesting()
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })
	return d
}

func TestCustomerStoreCreate(t *testing.T) {
	store := NewCustomerStore(openTestDB(t))
	ctx := context.Background()

	customer, err := store.Create(ctx, &domain.CustomerInput{
		Name:  "Alice Lee",
		Email: "a@x.com",
		Phone: "555-0100",
	})
	require.NoError(t, err)
	assert.NotZero(t, customer.ID)
	assert.Equal(t, "Alice Lee", customer.Name)
	assert.Equal(t, "a@x.com", customer.Email)
	assert.Zero(t, customer.ActiveJobs)
	assert.Nil(t, customer.LastContactAt)
}

func TestCustomerStoreGetByIDMissing(t *testing.T) {
	store := NewCustomerStore(openTestDB(t))

	customer, err := store.GetByID(context.Background(), 99999)
	require.NoError(t, err)
	assert.Nil(t, customer)
}

func TestCustomerStoreListOrderedByName(t *testing.T) {
	store := NewCustomerStore(openTestDB(t))
	ctx := context.Background()

	_, err := store.Create(ctx, &domain.CustomerInput{Name: "Zoe"})
	require.NoError(t, err)
	_, err = store.Create(ctx, &domain.CustomerInput{Name: "Alice"})
	require.NoError(t, err)

	customers, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, customers, 2)
	assert.Equal(t, "Alice", customers[0].Name)
	assert.Equal(t, "Zoe", customers[1].Name)
}

func TestCustomerStoreUpdateReplacesFields(t *testing.T) {
	store := NewCustomerStore(openTestDB(t))
	ctx := context.Background()

	created, err := store.Create(ctx, &domain.CustomerInput{Name: "Alice", Email: "a@x.com"})
	require.NoError(t, err)

	err = store.Update(ctx, created.ID, &domain.CustomerInput{Name: "Alice Lee", Email: "lee@x.com"})
	require.NoError(t, err)

	updated, err := store.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice Lee", updated.Name)
	assert.Equal(t, "lee@x.com", updated.Email)
}

func TestCustomerStoreUpdateMissing(t *testing.T) {
	store := NewCustomerStore(openTestDB(t))

	err := store.Update(context.Background(), 99999, &domain.CustomerInput{Name: "Nobody"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCustomerStoreActiveJobsComputed(t *testing.T) {
	d := openTestDB(t)
	customers := NewCustomerStore(d)
	jobs := NewJobStore(d)
	ctx := context.Background()

	customer, err := customers.Create(ctx, &domain.CustomerInput{Name: "Alice"})
	require.NoError(t, err)

	for _, status := range []domain.JobStatus{domain.JobScheduled, domain.JobInProgress, domain.JobCompleted} {
		_, err = jobs.Create(ctx, &domain.JobInput{CustomerID: customer.ID, Title: "Install", Status: status})
		require.NoError(t, err)
	}

	got, err := customers.GetByID(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.ActiveJobs)
}

func TestCustomerStoreTouchLastContact(t *testing.T) {
	store := NewCustomerStore(openTestDB(t))
	ctx := context.Background()

	created, err := store.Create(ctx, &domain.CustomerInput{Name: "Alice"})
	require.NoError(t, err)
	require.Nil(t, created.LastContactAt)

	require.NoError(t, store.TouchLastContact(ctx, created.ID))

	touched, err := store.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.NotNil(t, touched.LastContactAt)
}

func TestCustomerStoreDelete(t *testing.T) {
	store := NewCustomerStore(openTestDB(t))
	ctx := context.Background()

	created, err := store.Create(ctx, &domain.CustomerInput{Name: "Temp"})
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, created.ID))

	retrieved, err := store.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, retrieved)

	assert.ErrorIs(t, store.Delete(ctx, created.ID), ErrNotFound)
}
