package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mrmoe28/solarscheduler/internal/domain"
)

func TestCustomersMatchesAnySearchedField(t *testing.T) {
	records := []*domain.Customer{
		{Name: "Alice Lee", Email: "a@x.com"},
		{Name: "Bob", Email: "b@y.com"},
	}

	got := Customers(records, "lee")
	assert.Len(t, got, 1)
	assert.Equal(t, "Alice Lee", got[0].Name)
}

func TestCustomersEmptyQueryReturnsAllInOrder(t *testing.T) {
	records := []*domain.Customer{
		{Name: "Zoe"},
		{Name: "Alice"},
		{Name: "Bob"},
	}

	got := Customers(records, "")
	assert.Equal(t, records, got)
}

func TestCustomersCaseInsensitive(t *testing.T) {
	records := []*domain.Customer{
		{Name: "Alice", Email: "ALICE@EXAMPLE.COM"},
		{Name: "Bob", Phone: "555-0100"},
	}

	assert.Len(t, Customers(records, "alice@example"), 1)
	assert.Len(t, Customers(records, "0100"), 1)
	assert.Len(t, Customers(records, "ALICE"), 1)
}

func TestCustomersNoMatchIsEmpty(t *testing.T) {
	records := []*domain.Customer{{Name: "Alice"}}
	assert.Empty(t, Customers(records, "zzz"))
}

func TestCustomersEveryResultContainsQuery(t *testing.T) {
	records := []*domain.Customer{
		{Name: "Sunrise Energy", Email: "ops@sunrise.io", Phone: "555-1000"},
		{Name: "Moonlight LLC", Email: "sun@moonlight.io", Phone: "555-2000"},
		{Name: "Cloudy Co", Email: "info@cloudy.io", Phone: "555-3000"},
	}

	got := Customers(records, "sun")
	assert.Len(t, got, 2)
	assert.Equal(t, "Sunrise Energy", got[0].Name)
	assert.Equal(t, "Moonlight LLC", got[1].Name)
}

func TestVendorsExcludesInactiveRegardlessOfQuery(t *testing.T) {
	records := []*domain.Vendor{
		{Name: "Active Solar", Active: true},
		{Name: "Retired Solar", Active: false},
	}

	got := Vendors(records, "")
	assert.Len(t, got, 1)
	assert.Equal(t, "Active Solar", got[0].Name)

	got = Vendors(records, "solar")
	assert.Len(t, got, 1)
	assert.Equal(t, "Active Solar", got[0].Name)

	assert.Empty(t, Vendors(records, "retired"))
}

func TestVendorsMatchesSpecialties(t *testing.T) {
	records := []*domain.Vendor{
		{Name: "Panel Pros", Specialties: []string{"Panel Installation", "Roofing"}, Active: true},
		{Name: "Wire Works", Specialties: []string{"Electrical"}, Active: true},
	}

	got := Vendors(records, "roof")
	assert.Len(t, got, 1)
	assert.Equal(t, "Panel Pros", got[0].Name)
}

func TestJobsMatchesTitleAddressNotes(t *testing.T) {
	records := []*domain.Job{
		{Title: "Rooftop install", Address: "12 Main St"},
		{Title: "Maintenance", Notes: "replace inverter"},
	}

	assert.Len(t, Jobs(records, "rooftop"), 1)
	assert.Len(t, Jobs(records, "main st"), 1)
	assert.Len(t, Jobs(records, "inverter"), 1)
	assert.Len(t, Jobs(records, ""), 2)
}

func TestFilterIsPure(t *testing.T) {
	records := []*domain.Customer{
		{Name: "Alice"},
		{Name: "Bob"},
	}

	_ = Customers(records, "alice")
	assert.Equal(t, "Alice", records[0].Name)
	assert.Equal(t, "Bob", records[1].Name)

	first := Customers(records, "bob")
	second := Customers(records, "bob")
	assert.Equal(t, first, second)
}
