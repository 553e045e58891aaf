package domain

import "time"

// JobStatus is the lifecycle state of an installation job.
type JobStatus string

const (
	JobScheduled  JobStatus = "scheduled"
	JobInProgress JobStatus = "in_progress"
	JobCompleted  JobStatus = "completed"
	JobCancelled  JobStatus = "cancelled"
)

// Active reports whether a job in this status still counts against a
// customer's active job total.
func (s JobStatus) Active() bool {
	return s == JobScheduled || s == JobInProgress
}

// Valid reports whether s is one of the known job statuses.
func (s JobStatus) Valid() bool {
	switch s {
	case JobScheduled, JobInProgress, JobCompleted, JobCancelled:
		return true
	}
	return false
}

type Customer struct {
	ID            int64      `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone"`
	Address       string     `json:"address"`
	Notes         string     `json:"notes"`
	ActiveJobs    int        `json:"active_jobs"` // Computed: jobs in scheduled/in_progress
	CreatedAt     time.Time  `json:"created_at"`
	LastContactAt *time.Time `json:"last_contact_at"`
}

type Vendor struct {
	ID                     int64     `json:"id"`
	Name                   string    `json:"name"`
	ContactEmail           string    `json:"contact_email"`
	ContactPhone           string    `json:"contact_phone"`
	Address                string    `json:"address"`
	Website                string    `json:"website"`
	Notes                  string    `json:"notes"`
	Specialties            []string  `json:"specialties"`
	Rating                 float64   `json:"rating"`
	CompletedInstallations int       `json:"completed_installations"`
	Active                 bool      `json:"active"`
	CreatedAt              time.Time `json:"created_at"`
}

type Job struct {
	ID           int64      `json:"id"`
	CustomerID   int64      `json:"customer_id"`
	Title        string     `json:"title"`
	Status       JobStatus  `json:"status"`
	ScheduledAt  *time.Time `json:"scheduled_at"`
	Address      string     `json:"address"`
	PanelCount   int        `json:"panel_count"`
	SystemSizeKW float64    `json:"system_size_kw"`
	Notes        string     `json:"notes"`
	CreatedAt    time.Time  `json:"created_at"`
}

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Company   string    `json:"company"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

// Session is a server-side record of an issued sign-in token. Deleting it
// revokes the token.
type Session struct {
	ID        string
	UserID    string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// JobStats summarizes jobs by lifecycle state.
type JobStats struct {
	Total      int `json:"total"`
	Scheduled  int `json:"scheduled"`
	InProgress int `json:"in_progress"`
	Completed  int `json:"completed"`
	Cancelled  int `json:"cancelled"`
}

// EquipmentStats summarizes installed equipment across completed jobs.
type EquipmentStats struct {
	PanelsInstalled int     `json:"panels_installed"`
	TotalCapacityKW float64 `json:"total_capacity_kw"`
}
