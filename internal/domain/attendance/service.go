package attendance

import (
	"context"
)

// AttendanceService defines business logic for presence capture.
type AttendanceService interface {
	// CheckIn admits a geofenced check-in, classifies it against the
	// day's resolved shift and creates the attendance record
	CheckIn(ctx context.Context, req CheckInRequest) (AttendanceResponse, error)

	// CheckOut closes the employee's open record; the status and late
	// minutes computed at check-in are never revised
	CheckOut(ctx context.Context, req CheckOutRequest) (AttendanceResponse, error)

	// GetMyAttendance retrieves records for one employee
	GetMyAttendance(ctx context.Context, filter ListFilter) (ListAttendanceResponse, error)

	// ListAttendance retrieves records with filters (admin/manager)
	ListAttendance(ctx context.Context, filter ListFilter) (ListAttendanceResponse, error)
}
