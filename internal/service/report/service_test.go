package report

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/presensikita/presensi-backend-go/internal/domain/attendance"
	"github.com/presensikita/presensi-backend-go/internal/domain/employee"
	"github.com/presensikita/presensi-backend-go/internal/domain/report"
	"github.com/presensikita/presensi-backend-go/internal/domain/shift"
	"github.com/presensikita/presensi-backend-go/internal/pkg/validator"
)

type memAttendanceRepo struct {
	records []attendance.Attendance
}

func (m *memAttendanceRepo) Create(_ context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	m.records = append(m.records, att)
	return att, nil
}

func (m *memAttendanceRepo) GetByEmployeeAndDate(_ context.Context, _ string, _ time.Time) (*attendance.Attendance, error) {
	return nil, nil
}

func (m *memAttendanceRepo) GetOpenSession(_ context.Context, _ string) (*attendance.Attendance, error) {
	return nil, nil
}

func (m *memAttendanceRepo) Update(_ context.Context, _ attendance.Attendance) error {
	return nil
}

func (m *memAttendanceRepo) List(_ context.Context, _ attendance.ListFilter) ([]attendance.Attendance, int64, error) {
	return m.records, int64(len(m.records)), nil
}

func (m *memAttendanceRepo) ListByMonth(_ context.Context, year int, month time.Month) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, rec := range m.records {
		if rec.Date.Year() == year && rec.Date.Month() == month {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (m *memAttendanceRepo) ListOpenBefore(_ context.Context, _ time.Time) ([]attendance.Attendance, error) {
	return nil, nil
}

type memEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (m *memEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
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
	var out []employee.Employee
	for _, emp := range m.employees {
		out = append(out, emp)
	}
	return out, nil
}

func TestMonthlyAttendanceWorkbook(t *testing.T) {
	t.Parallel()

	loc := time.UTC
	checkIn := time.Date(2024, time.October, 7, 7, 25, 0, 0, loc)
	checkOut := time.Date(2024, time.October, 7, 15, 31, 0, 0, loc)

	attRepo := &memAttendanceRepo{records: []attendance.Attendance{
		{
			ID:          "att-1",
			EmployeeID:  "emp-1",
			Date:        time.Date(2024, time.October, 7, 0, 0, 0, 0, loc),
			ShiftType:   shift.TypePagi,
			CheckIn:     &checkIn,
			CheckOut:    &checkOut,
			Status:      attendance.StatusPresent,
			LateMinutes: 0,
		},
		{
			// different month, must not appear
			ID:         "att-2",
			EmployeeID: "emp-1",
			Date:       time.Date(2024, time.November, 2, 0, 0, 0, 0, loc),
			ShiftType:  shift.TypePagi,
			Status:     attendance.StatusAbsent,
		},
	}}
	empRepo := &memEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", NID: "STF089", Name: "Rina Wulandari"},
	}}

	svc := NewReportService(attRepo, empRepo, loc)

	file, err := svc.MonthlyAttendance(context.Background(), report.MonthlyAttendanceRequest{Year: 2024, Month: 10})
	require.NoError(t, err)

	assert.Equal(t, "attendance-2024-10.xlsx", file.Filename)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", file.ContentType)

	wb, err := excelize.OpenReader(bytes.NewReader(file.Data))
	require.NoError(t, err)
	defer wb.Close()

	header, err := wb.GetCellValue("Attendance", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Employee Number", header)

	nid, _ := wb.GetCellValue("Attendance", "A2")
	name, _ := wb.GetCellValue("Attendance", "B2")
	date, _ := wb.GetCellValue("Attendance", "C2")
	in, _ := wb.GetCellValue("Attendance", "E2")
	status, _ := wb.GetCellValue("Attendance", "G2")
	assert.Equal(t, "STF089", nid)
	assert.Equal(t, "Rina Wulandari", name)
	assert.Equal(t, "2024-10-07", date)
	assert.Equal(t, "07:25", in)
	assert.Equal(t, "PRESENT", status)

	// the November record stays out of the October sheet
	spill, _ := wb.GetCellValue("Attendance", "A3")
	assert.Empty(t, spill)
}

func TestMonthlyAttendanceRejectsBadMonth(t *testing.T) {
	t.Parallel()

	svc := NewReportService(&memAttendanceRepo{}, &memEmployeeRepo{employees: map[string]employee.Employee{}}, time.UTC)

	_, err := svc.MonthlyAttendance(context.Background(), report.MonthlyAttendanceRequest{Year: 2024, Month: 13})

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Contains(t, validationErrs.ToMap(), "month")
}
