package employee

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/presensikita/presensi-backend-go/internal/domain/employee"
	"github.com/presensikita/presensi-backend-go/internal/pkg/validator"
)

type memEmployeeRepo struct {
	employees map[string]employee.Employee
	nextID    int
}

func newMemEmployeeRepo() *memEmployeeRepo {
	return &memEmployeeRepo{employees: make(map[string]employee.Employee)}
}

func (m *memEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	m.nextID++
	emp.ID = fmt.Sprintf("emp-%d", m.nextID)
	emp.CreatedAt = time.Now()
	emp.UpdatedAt = emp.CreatedAt
	m.employees[emp.ID] = emp
	return emp, nil
}

func (m *memEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	emp, ok := m.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (m *memEmployeeRepo) GetByNID(_ context.Context, nid string) (*employee.Employee, error) {
	for _, emp := range m.employees {
		if emp.NID == nid {
			out := emp
			return &out, nil
		}
	}
	return nil, nil
}

func (m *memEmployeeRepo) GetByEmail(_ context.Context, email string) (*employee.Employee, error) {
	for _, emp := range m.employees {
		if emp.Email == email {
			out := emp
			return &out, nil
		}
	}
	return nil, nil
}

func (m *memEmployeeRepo) List(_ context.Context, _ employee.ListFilter) ([]employee.Employee, int64, error) {
	var out []employee.Employee
	for _, emp := range m.employees {
		out = append(out, emp)
	}
	return out, int64(len(out)), nil
}

func (m *memEmployeeRepo) Update(_ context.Context, emp employee.Employee) error {
	if _, ok := m.employees[emp.ID]; !ok {
		return employee.ErrEmployeeNotFound
	}
	m.employees[emp.ID] = emp
	return nil
}

func (m *memEmployeeRepo) SoftDelete(_ context.Context, id string) error {
	if _, ok := m.employees[id]; !ok {
		return employee.ErrEmployeeNotFound
	}
	delete(m.employees, id)
	return nil
}

func (m *memEmployeeRepo) ListActive(_ context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range m.employees {
		out = append(out, emp)
	}
	return out, nil
}

func validCreateRequest() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		NID:        "STF089",
		Name:       "Rina Wulandari",
		Email:      "rina@presensikita.id",
		Division:   "Operations",
		Position:   "Staff",
		WorkUnit:   "Control Room",
		ShiftGroup: "Shift A",
		JoinDate:   "2023-02-01",
	}
}

func TestCreateEmployee(t *testing.T) {
	t.Parallel()

	svc := NewEmployeeService(newMemEmployeeRepo())

	resp, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "STF089", resp.NID)
	assert.Equal(t, "Shift A", resp.ShiftGroup)
	assert.Equal(t, "2023-02-01", resp.JoinDate)
}

func TestCreateEmployeeDuplicateNID(t *testing.T) {
	t.Parallel()

	svc := NewEmployeeService(newMemEmployeeRepo())

	_, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	dup := validCreateRequest()
	dup.Email = "other@presensikita.id"
	_, err = svc.Create(context.Background(), dup)
	assert.ErrorIs(t, err, employee.ErrNIDExists)
}

func TestCreateEmployeeDuplicateEmail(t *testing.T) {
	t.Parallel()

	svc := NewEmployeeService(newMemEmployeeRepo())

	_, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	dup := validCreateRequest()
	dup.NID = "STF090"
	_, err = svc.Create(context.Background(), dup)
	assert.ErrorIs(t, err, employee.ErrEmailExists)
}

func TestCreateEmployeeRejectsBadInput(t *testing.T) {
	t.Parallel()

	svc := NewEmployeeService(newMemEmployeeRepo())

	req := validCreateRequest()
	req.NID = "089"
	req.ShiftGroup = "Shift Z"

	_, err := svc.Create(context.Background(), req)

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	fields := validationErrs.ToMap()
	assert.Contains(t, fields, "nid")
	assert.Contains(t, fields, "shift_group")
}

func TestUpdateEmployeeShiftGroup(t *testing.T) {
	t.Parallel()

	svc := NewEmployeeService(newMemEmployeeRepo())

	created, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	group := "Reguler"
	updated, err := svc.Update(context.Background(), employee.UpdateEmployeeRequest{
		ID:         created.ID,
		ShiftGroup: &group,
	})
	require.NoError(t, err)
	assert.Equal(t, "Reguler", updated.ShiftGroup)
	// untouched fields survive
	assert.Equal(t, created.Name, updated.Name)
}

func TestUpdateEmployeeEmailConflict(t *testing.T) {
	t.Parallel()

	repo := newMemEmployeeRepo()
	svc := NewEmployeeService(repo)

	first, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	other := validCreateRequest()
	other.NID = "STF090"
	other.Email = "second@presensikita.id"
	_, err = svc.Create(context.Background(), other)
	require.NoError(t, err)

	taken := "second@presensikita.id"
	_, err = svc.Update(context.Background(), employee.UpdateEmployeeRequest{
		ID:    first.ID,
		Email: &taken,
	})
	assert.ErrorIs(t, err, employee.ErrEmailExists)
}

func TestDeleteUnknownEmployee(t *testing.T) {
	t.Parallel()

	svc := NewEmployeeService(newMemEmployeeRepo())

	err := svc.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
