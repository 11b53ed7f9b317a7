package leave

import "time"

// RequestStatus is the lifecycle of a leave request. PENDING is the only
// non-terminal state.
type RequestStatus string

const (
	StatusPending  RequestStatus = "PENDING"
	StatusApproved RequestStatus = "APPROVED"
	StatusRejected RequestStatus = "REJECTED"
)

// LeaveRequest is created by an employee and decided once by an
// admin/manager.
type LeaveRequest struct {
	ID         string
	EmployeeID string
	CategoryID string
	StartDate  time.Time
	EndDate    time.Time
	Reason     string
	Status     RequestStatus

	// RequestedDays is the inclusive day span of the request, annotated
	// against the category entitlement at creation time.
	RequestedDays int
	EntitledDays  int

	DecidedBy *string
	DecidedAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO
	EmployeeName *string
}

// IsDecided reports whether the request reached a terminal state.
func (r LeaveRequest) IsDecided() bool {
	return r.Status == StatusApproved || r.Status == StatusRejected
}
