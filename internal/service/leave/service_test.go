package leave

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/presensikita/presensi-backend-go/internal/domain/employee"
	"github.com/presensikita/presensi-backend-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memLeaveRepo struct {
	requests map[string]leave.LeaveRequest
}

func newMemLeaveRepo() *memLeaveRepo {
	return &memLeaveRepo{requests: make(map[string]leave.LeaveRequest)}
}

func (m *memLeaveRepo) Create(_ context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	req.ID = uuid.New().String()
	req.CreatedAt = time.Now()
	m.requests[req.ID] = req
	return req, nil
}

func (m *memLeaveRepo) GetByID(_ context.Context, id string) (leave.LeaveRequest, error) {
	req, ok := m.requests[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return req, nil
}

func (m *memLeaveRepo) Update(_ context.Context, req leave.LeaveRequest) error {
	if _, ok := m.requests[req.ID]; !ok {
		return leave.ErrLeaveRequestNotFound
	}
	m.requests[req.ID] = req
	return nil
}

func (m *memLeaveRepo) List(_ context.Context, filter leave.ListFilter) ([]leave.LeaveRequest, int64, error) {
	var out []leave.LeaveRequest
	for _, req := range m.requests {
		if filter.EmployeeID != "" && req.EmployeeID != filter.EmployeeID {
			continue
		}
		if filter.Status != "" && string(req.Status) != filter.Status {
			continue
		}
		out = append(out, req)
	}
	return out, int64(len(out)), nil
}

func (m *memLeaveRepo) HasApprovedLeaveOn(_ context.Context, employeeID string, day time.Time) (bool, error) {
	for _, req := range m.requests {
		if req.EmployeeID == employeeID && req.Status == leave.StatusApproved &&
			!day.Before(req.StartDate) && !day.After(req.EndDate) {
			return true, nil
		}
	}
	return false, nil
}

type memEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (m *memEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	emp, ok := m.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (m *memEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	m.employees[emp.ID] = emp
	return emp, nil
}

func (m *memEmployeeRepo) GetByNID(_ context.Context, _ string) (*employee.Employee, error) {
	return nil, nil
}

func (m *memEmployeeRepo) GetByEmail(_ context.Context, _ string) (*employee.Employee, error) {
	return nil, nil
}

func (m *memEmployeeRepo) List(_ context.Context, _ employee.ListFilter) ([]employee.Employee, int64, error) {
	return nil, 0, nil
}

func (m *memEmployeeRepo) Update(_ context.Context, emp employee.Employee) error {
	m.employees[emp.ID] = emp
	return nil
}

func (m *memEmployeeRepo) SoftDelete(_ context.Context, id string) error {
	delete(m.employees, id)
	return nil
}

func (m *memEmployeeRepo) ListActive(_ context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func newTestService() (*LeaveServiceImpl, *memLeaveRepo) {
	repo := newMemLeaveRepo()
	empRepo := &memEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", Name: "Siti Karyawan"},
	}}
	return NewLeaveService(repo, empRepo), repo
}

func validRequest() leave.CreateLeaveRequest {
	return leave.CreateLeaveRequest{
		EmployeeID: "emp-1",
		CategoryID: "CUTI_TAHUNAN",
		StartDate:  "2024-10-25",
		EndDate:    "2024-10-27",
		Reason:     "Acara keluarga",
	}
}

func TestCreateRequest_AnnotatesEntitlement(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService()

	resp, err := svc.CreateRequest(ctx, validRequest())
	require.NoError(t, err)

	assert.Equal(t, string(leave.StatusPending), resp.Status)
	assert.Equal(t, 3, resp.RequestedDays)
	assert.Equal(t, 12, resp.EntitledDays)
	assert.Equal(t, "Cuti Tahunan", resp.CategoryLabel)
}

func TestCreateRequest_RejectsOverEntitlement(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService()

	req := validRequest()
	req.CategoryID = "PP_A" // 3 days entitlement
	req.StartDate = "2024-10-01"
	req.EndDate = "2024-10-05" // 5 days

	_, err := svc.CreateRequest(ctx, req)
	assert.True(t, errors.Is(err, leave.ErrExceedsEntitlement))
}

func TestCreateRequest_UnknownCategory(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService()

	req := validRequest()
	req.CategoryID = "CUTI_BESAR"

	_, err := svc.CreateRequest(ctx, req)
	assert.True(t, errors.Is(err, leave.ErrCategoryNotFound))
}

func TestApprove_IsTerminal(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService()

	created, err := svc.CreateRequest(ctx, validRequest())
	require.NoError(t, err)

	decided, err := svc.Approve(ctx, leave.DecideLeaveRequest{RequestID: created.ID, DecidedBy: "MGR022"})
	require.NoError(t, err)
	assert.Equal(t, string(leave.StatusApproved), decided.Status)
	require.NotNil(t, decided.DecidedBy)
	assert.Equal(t, "MGR022", *decided.DecidedBy)

	// Deciding again, either way, is rejected.
	_, err = svc.Reject(ctx, leave.DecideLeaveRequest{RequestID: created.ID, DecidedBy: "ADM001"})
	assert.True(t, errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed))

	_, err = svc.Approve(ctx, leave.DecideLeaveRequest{RequestID: created.ID, DecidedBy: "ADM001"})
	assert.True(t, errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed))
}

func TestReject_IsTerminal(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService()

	created, err := svc.CreateRequest(ctx, validRequest())
	require.NoError(t, err)

	decided, err := svc.Reject(ctx, leave.DecideLeaveRequest{RequestID: created.ID, DecidedBy: "MGR022"})
	require.NoError(t, err)
	assert.Equal(t, string(leave.StatusRejected), decided.Status)

	_, err = svc.Approve(ctx, leave.DecideLeaveRequest{RequestID: created.ID, DecidedBy: "ADM001"})
	assert.True(t, errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed))
}

func TestListRequests_FiltersByStatus(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService()

	first, err := svc.CreateRequest(ctx, validRequest())
	require.NoError(t, err)

	second := validRequest()
	second.StartDate = "2024-11-04"
	second.EndDate = "2024-11-05"
	_, err = svc.CreateRequest(ctx, second)
	require.NoError(t, err)

	_, err = svc.Approve(ctx, leave.DecideLeaveRequest{RequestID: first.ID, DecidedBy: "MGR022"})
	require.NoError(t, err)

	pending, err := svc.ListRequests(ctx, leave.ListFilter{Status: "PENDING"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), pending.TotalItems)

	all, err := svc.ListRequests(ctx, leave.ListFilter{EmployeeID: "emp-1"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), all.TotalItems)
}
