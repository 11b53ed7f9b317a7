package leave

import (
	"context"
	"time"
)

type LeaveRequestRepository interface {
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	Update(ctx context.Context, req LeaveRequest) error
	List(ctx context.Context, filter ListFilter) ([]LeaveRequest, int64, error)

	// HasApprovedLeaveOn reports whether the employee has an approved
	// request covering the given day, for the absent-marking job.
	HasApprovedLeaveOn(ctx context.Context, employeeID string, day time.Time) (bool, error)
}
