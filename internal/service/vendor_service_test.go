package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrmoe28/solarscheduler/internal/db"
	"github.com/mrmoe28/solarscheduler/internal/domain"
	"github.com/mrmoe28/solarscheduler/internal/store"
)

func newVendorService(t *testing.T) *VendorService {
	t.Helper()
	d, err := db.OpenForTesting()
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })
	return NewVendorService(store.NewVendorStore(d), testLogger())
}

// countingVendorRepo fails the test if any write path is reached.
type countingVendorRepo struct {
	t *testing.T
}

func (r *countingVendorRepo) Create(ctx context.Context, in *domain.VendorInput) (*domain.Vendor, error) {
	r.t.Fatal("Create must not be called for invalid input")
	return nil, nil
}

func (r *countingVendorRepo) GetByID(ctx context.Context, id int64) (*domain.Vendor, error) {
	return nil, nil
}

func (r *countingVendorRepo) List(ctx context.Context, activeOnly bool) ([]*domain.Vendor, error) {
	return nil, nil
}

func (r *countingVendorRepo) Update(ctx context.Context, id int64, in *domain.VendorInput) error {
	r.t.Fatal("Update must not be called for invalid input")
	return nil
}

func (r *countingVendorRepo) Deactivate(ctx context.Context, id int64) error { return nil }

func (r *countingVendorRepo) Delete(ctx context.Context, id int64) error { return nil }

func TestVendorCreateValidation(t *testing.T) {
	svc := NewVendorService(&countingVendorRepo{t: t}, testLogger())
	ctx := context.Background()

	tests := []struct {
		name    string
		in      domain.VendorInput
		wantErr error
	}{
		{"missing name", domain.VendorInput{ContactEmail: "a@x.com"}, domain.ErrNameRequired},
		{"blank name", domain.VendorInput{Name: "  ", ContactEmail: "a@x.com"}, domain.ErrNameRequired},
		{"missing email", domain.VendorInput{Name: "SunParts"}, domain.ErrEmailRequired},
		{"bad email", domain.VendorInput{Name: "SunParts", ContactEmail: "not-an-email"}, domain.ErrInvalidEmail},
		{"email missing tld", domain.VendorInput{Name: "SunParts", ContactEmail: "a@host"}, domain.ErrInvalidEmail},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.in)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestVendorCreateTrimsAndDefaults(t *testing.T) {
	svc := newVendorService(t)

	vendor, err := svc.Create(context.Background(), domain.VendorInput{
		Name:         "  SunParts Supply  ",
		ContactEmail: " sales@sunparts.com ",
		Specialties:  []string{" panels ", "", " inverters "},
		Active:       true,
	})
	require.NoError(t, err)
	assert.Equal(t, "SunParts Supply", vendor.Name)
	assert.Equal(t, "sales@sunparts.com", vendor.ContactEmail)
	assert.Equal(t, []string{"panels", "inverters"}, vendor.Specialties)
	assert.True(t, vendor.Active)
}

func TestVendorListExcludesDeactivated(t *testing.T) {
	svc := newVendorService(t)
	ctx := context.Background()

	active, err := svc.Create(ctx, domain.VendorInput{Name: "Active Co", ContactEmail: "a@x.com", Active: true})
	require.NoError(t, err)
	retired, err := svc.Create(ctx, domain.VendorInput{Name: "Retired Co", ContactEmail: "r@x.com", Active: true})
	require.NoError(t, err)

	require.NoError(t, svc.Deactivate(ctx, retired.ID))

	// Deactivated vendors drop out of every listing, with or without a query.
	vendors, err := svc.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, vendors, 1)
	assert.Equal(t, active.ID, vendors[0].ID)

	vendors, err = svc.List(ctx, "retired")
	require.NoError(t, err)
	assert.Empty(t, vendors)

	// The record itself survives the soft delete.
	got, err := svc.Get(ctx, retired.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.False(t, got.Active)
}

func TestVendorListSearchesSpecialties(t *testing.T) {
	svc := newVendorService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.VendorInput{
		Name: "SunParts", ContactEmail: "s@x.com",
		Specialties: []string{"panels", "racking"}, Active: true,
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, domain.VendorInput{
		Name: "VoltWorks", ContactEmail: "v@x.com",
		Specialties: []string{"inverters"}, Active: true,
	})
	require.NoError(t, err)

	vendors, err := svc.List(ctx, "rack")
	require.NoError(t, err)
	require.Len(t, vendors, 1)
	assert.Equal(t, "SunParts", vendors[0].Name)
}

func TestVendorDeleteIsPermanent(t *testing.T) {
	svc := newVendorService(t)
	ctx := context.Background()

	vendor, err := svc.Create(ctx, domain.VendorInput{Name: "Gone Co", ContactEmail: "g@x.com", Active: true})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, vendor.ID))

	got, err := svc.Get(ctx, vendor.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	assert.ErrorIs(t, svc.Delete(ctx, vendor.ID), store.ErrNotFound)
}
