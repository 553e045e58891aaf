// Package filter implements the client-side list filtering used by record
// list views. All functions are pure: deterministic, order-preserving, and
// free of side effects. An empty result is valid.
package filter

import (
	"strings"

	"github.com/mrmoe28/solarscheduler/internal/domain"
)

// Customers returns the customers where query is a case-insensitive substring
// of name, email, or phone. An empty query returns records unchanged.
func Customers(records []*domain.Customer, query string) []*domain.Customer {
	q := normalize(query)
	if q == "" {
		return records
	}
	var out []*domain.Customer
	for _, c := range records {
		if matches(q, c.Name, c.Email, c.Phone) {
			out = append(out, c)
		}
	}
	return out
}

// Vendors returns the active vendors where query is a case-insensitive
// substring of the name or any specialty. Inactive vendors are excluded
// regardless of query.
func Vendors(records []*domain.Vendor, query string) []*domain.Vendor {
	q := normalize(query)
	var out []*domain.Vendor
	for _, v := range records {
		if !v.Active {
			continue
		}
		if q == "" || matches(q, v.Name) || matches(q, v.Specialties...) {
			out = append(out, v)
		}
	}
	return out
}

// Jobs returns the jobs where query is a case-insensitive substring of title,
// address, or notes. An empty query returns records unchanged.
func Jobs(records []*domain.Job, query string) []*domain.Job {
	q := normalize(query)
	if q == "" {
		return records
	}
	var out []*domain.Job
	for _, j := range records {
		if matches(q, j.Title, j.Address, j.Notes) {
			out = append(out, j)
		}
	}
	return out
}

func normalize(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// matches reports whether q is a substring of any field, ignoring case.
// q must already be lowercase.
func matches(q string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
