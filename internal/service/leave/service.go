package leave

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/presensikita/presensi-backend-go/internal/domain/employee"
	"github.com/presensikita/presensi-backend-go/internal/domain/leave"
)

type LeaveServiceImpl struct {
	requestRepo  leave.LeaveRequestRepository
	employeeRepo employee.EmployeeRepository

	now func() time.Time
}

func NewLeaveService(requestRepo leave.LeaveRequestRepository, employeeRepo employee.EmployeeRepository) *LeaveServiceImpl {
	return &LeaveServiceImpl{
		requestRepo:  requestRepo,
		employeeRepo: employeeRepo,
		now:          time.Now,
	}
}

// CreateRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) CreateRequest(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	category, err := leave.CategoryByID(req.CategoryID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	start, end, days := req.Span()

	// Entitlement 0 means the category has no fixed cap.
	if category.EntitledDays > 0 && days > category.EntitledDays {
		return leave.LeaveRequestResponse{}, fmt.Errorf("%w: requested %d days, entitled %d",
			leave.ErrExceedsEntitlement, days, category.EntitledDays)
	}

	data := leave.LeaveRequest{
		EmployeeID:    emp.ID,
		CategoryID:    category.ID,
		StartDate:     start,
		EndDate:       end,
		Reason:        req.Reason,
		Status:        leave.StatusPending,
		RequestedDays: days,
		EntitledDays:  category.EntitledDays,
		EmployeeName:  &emp.Name,
	}

	created, err := s.requestRepo.Create(ctx, data)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}
	if created.EmployeeName == nil {
		created.EmployeeName = &emp.Name
	}

	return toResponse(created), nil
}

// Approve implements leave.LeaveService.
func (s *LeaveServiceImpl) Approve(ctx context.Context, req leave.DecideLeaveRequest) (leave.LeaveRequestResponse, error) {
	return s.decide(ctx, req, leave.StatusApproved)
}

// Reject implements leave.LeaveService.
func (s *LeaveServiceImpl) Reject(ctx context.Context, req leave.DecideLeaveRequest) (leave.LeaveRequestResponse, error) {
	return s.decide(ctx, req, leave.StatusRejected)
}

func (s *LeaveServiceImpl) decide(ctx context.Context, req leave.DecideLeaveRequest, status leave.RequestStatus) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	request, err := s.requestRepo.GetByID(ctx, req.RequestID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	if request.IsDecided() {
		return leave.LeaveRequestResponse{}, leave.ErrLeaveRequestAlreadyProcessed
	}

	decidedAt := s.now()
	request.Status = status
	request.DecidedBy = &req.DecidedBy
	request.DecidedAt = &decidedAt

	if err := s.requestRepo.Update(ctx, request); err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to update leave request: %w", err)
	}

	slog.Info("leave request decided",
		"request_id", request.ID,
		"status", string(status),
		"decided_by", req.DecidedBy,
	)

	return toResponse(request), nil
}

// ListRequests implements leave.LeaveService.
func (s *LeaveServiceImpl) ListRequests(ctx context.Context, filter leave.ListFilter) (leave.ListLeaveResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	items, total, err := s.requestRepo.List(ctx, filter)
	if err != nil {
		return leave.ListLeaveResponse{}, fmt.Errorf("failed to list leave requests: %w", err)
	}

	resp := leave.ListLeaveResponse{
		Items:      make([]leave.LeaveRequestResponse, 0, len(items)),
		TotalItems: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}
	for _, item := range items {
		resp.Items = append(resp.Items, toResponse(item))
	}
	return resp, nil
}

func toResponse(req leave.LeaveRequest) leave.LeaveRequestResponse {
	label := req.CategoryID
	if cat, err := leave.CategoryByID(req.CategoryID); err == nil {
		label = cat.Label
	}

	return leave.LeaveRequestResponse{
		ID:            req.ID,
		EmployeeID:    req.EmployeeID,
		EmployeeName:  req.EmployeeName,
		CategoryID:    req.CategoryID,
		CategoryLabel: label,
		StartDate:     req.StartDate.Format("2006-01-02"),
		EndDate:       req.EndDate.Format("2006-01-02"),
		Reason:        req.Reason,
		Status:        string(req.Status),
		RequestedDays: req.RequestedDays,
		EntitledDays:  req.EntitledDays,
		DecidedBy:     req.DecidedBy,
		CreatedAt:     req.CreatedAt.Format(time.RFC3339),
	}
}
