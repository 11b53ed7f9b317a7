package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance records. The
// evaluator depends only on this interface; the concrete store is
// injected.
type AttendanceRepository interface {
	// Create persists a new record
	Create(ctx context.Context, att Attendance) (Attendance, error)

	// GetByEmployeeAndDate returns the record for one employee and work
	// day, or nil when none exists. Used to reject double check-in.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	// GetOpenSession returns the employee's record that has a check-in
	// but no check-out yet, or nil when none is open.
	GetOpenSession(ctx context.Context, employeeID string) (*Attendance, error)

	// Update rewrites an existing record
	Update(ctx context.Context, att Attendance) error

	// List returns records matching the filter with pagination
	List(ctx context.Context, filter ListFilter) ([]Attendance, int64, error)

	// ListByMonth returns every record of a calendar month, for reports
	ListByMonth(ctx context.Context, year int, month time.Month) ([]Attendance, error)

	// ListOpenBefore returns open sessions whose check-in is older than
	// the cutoff, for the stale-session cron
	ListOpenBefore(ctx context.Context, cutoff time.Time) ([]Attendance, error)
}
