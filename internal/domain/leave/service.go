package leave

import "context"

// LeaveService defines business logic for leave requests.
type LeaveService interface {
	// CreateRequest files a new PENDING request, annotated with the
	// category entitlement
	CreateRequest(ctx context.Context, req CreateLeaveRequest) (LeaveRequestResponse, error)

	// Approve and Reject decide a PENDING request; a decided request is
	// terminal
	Approve(ctx context.Context, req DecideLeaveRequest) (LeaveRequestResponse, error)
	Reject(ctx context.Context, req DecideLeaveRequest) (LeaveRequestResponse, error)

	// ListRequests retrieves requests with filters
	ListRequests(ctx context.Context, filter ListFilter) (ListLeaveResponse, error)
}
