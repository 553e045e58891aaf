package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Validation failures surfaced to the user. None are fatal; the form stays
// open and no storage call is made.
var (
	ErrNameRequired  = errors.New("name is required")
	ErrEmailRequired = errors.New("contact email is required")
	ErrInvalidEmail  = errors.New("invalid email format")
	ErrInvalidStatus = errors.New("invalid job status")
)

// IsValidation reports whether err is a form validation failure as opposed to
// a persistence or auth failure.
func IsValidation(err error) bool {
	return errors.Is(err, ErrNameRequired) ||
		errors.Is(err, ErrEmailRequired) ||
		errors.Is(err, ErrInvalidEmail) ||
		errors.Is(err, ErrInvalidStatus)
}

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// ValidEmail reports whether s matches the local@domain.tld shape.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// CustomerInput carries user-entered customer form fields.
type CustomerInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

// Validate checks required fields without modifying the input.
func (in *CustomerInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return ErrNameRequired
	}
	return nil
}

// Normalize trims leading and trailing whitespace from every free-text field.
func (in *CustomerInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Address = strings.TrimSpace(in.Address)
	in.Notes = strings.TrimSpace(in.Notes)
}

// VendorInput carries user-entered vendor form fields.
type VendorInput struct {
	Name                   string   `json:"name"`
	ContactEmail           string   `json:"contact_email"`
	ContactPhone           string   `json:"contact_phone"`
	Address                string   `json:"address"`
	Website                string   `json:"website"`
	Notes                  string   `json:"notes"`
	Specialties            []string `json:"specialties"`
	Rating                 float64  `json:"rating"`
	CompletedInstallations int      `json:"completed_installations"`
	Active                 bool     `json:"active"`
}

// Validate checks required fields and email syntax without modifying the input.
func (in *VendorInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return ErrNameRequired
	}
	email := strings.TrimSpace(in.ContactEmail)
	if email == "" {
		return ErrEmailRequired
	}
	if !ValidEmail(email) {
		return ErrInvalidEmail
	}
	return nil
}

// Normalize trims leading and trailing whitespace from every free-text field,
// including each specialty entry.
func (in *VendorInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.ContactEmail = strings.TrimSpace(in.ContactEmail)
	in.ContactPhone = strings.TrimSpace(in.ContactPhone)
	in.Address = strings.TrimSpace(in.Address)
	in.Website = strings.TrimSpace(in.Website)
	in.Notes = strings.TrimSpace(in.Notes)
	specialties := in.Specialties[:0]
	for _, sp := range in.Specialties {
		if sp = strings.TrimSpace(sp); sp != "" {
			specialties = append(specialties, sp)
		}
	}
	in.Specialties = specialties
}

// JobInput carries user-entered job form fields.
type JobInput struct {
	CustomerID   int64      `json:"customer_id"`
	Title        string     `json:"title"`
	Status       JobStatus  `json:"status"`
	ScheduledAt  *time.Time `json:"scheduled_at"`
	Address      string     `json:"address"`
	PanelCount   int        `json:"panel_count"`
	SystemSizeKW float64    `json:"system_size_kw"`
	Notes        string     `json:"notes"`
}

// Validate checks required fields. An empty status defaults to scheduled
// rather than failing.
func (in *JobInput) Validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return ErrNameRequired
	}
	if in.Status != "" && !in.Status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, in.Status)
	}
	return nil
}

// Normalize trims free-text fields and applies the default status.
func (in *JobInput) Normalize() {
	in.Title = strings.TrimSpace(in.Title)
	in.Address = strings.TrimSpace(in.Address)
	in.Notes = strings.TrimSpace(in.Notes)
	if in.Status == "" {
		in.Status = JobScheduled
	}
}

// ProfileInput carries editable user profile fields.
type ProfileInput struct {
	Name    string `json:"name"`
	Company string `json:"company"`
	Phone   string `json:"phone"`
}

func (in *ProfileInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return ErrNameRequired
	}
	return nil
}

func (in *ProfileInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Company = strings.TrimSpace(in.Company)
	in.Phone = strings.TrimSpace(in.Phone)
}
