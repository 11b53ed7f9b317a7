package attendance

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/presensikita/presensi-backend-go/internal/domain/attendance"
	"github.com/presensikita/presensi-backend-go/internal/domain/employee"
	"github.com/presensikita/presensi-backend-go/internal/domain/roster"
	"github.com/presensikita/presensi-backend-go/internal/domain/settings"
	"github.com/presensikita/presensi-backend-go/internal/domain/shift"
	rosterService "github.com/presensikita/presensi-backend-go/internal/service/roster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===== in-memory fakes =====

type memAttendanceRepo struct {
	records map[string]attendance.Attendance
}

func newMemAttendanceRepo() *memAttendanceRepo {
	return &memAttendanceRepo{records: make(map[string]attendance.Attendance)}
}

func (m *memAttendanceRepo) Create(_ context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	att.ID = uuid.New().String()
	att.CreatedAt = time.Now()
	att.UpdatedAt = att.CreatedAt
	m.records[att.ID] = att
	return att, nil
}

func (m *memAttendanceRepo) GetByEmployeeAndDate(_ context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	for _, att := range m.records {
		if att.EmployeeID == employeeID && att.Date.Equal(date) {
			out := att
			return &out, nil
		}
	}
	return nil, nil
}

func (m *memAttendanceRepo) GetOpenSession(_ context.Context, employeeID string) (*attendance.Attendance, error) {
	for _, att := range m.records {
		if att.EmployeeID == employeeID && att.IsOpen() {
			out := att
			return &out, nil
		}
	}
	return nil, nil
}

func (m *memAttendanceRepo) Update(_ context.Context, att attendance.Attendance) error {
	if _, ok := m.records[att.ID]; !ok {
		return attendance.ErrAttendanceNotFound
	}
	m.records[att.ID] = att
	return nil
}

func (m *memAttendanceRepo) List(_ context.Context, filter attendance.ListFilter) ([]attendance.Attendance, int64, error) {
	var out []attendance.Attendance
	for _, att := range m.records {
		if filter.EmployeeID != "" && att.EmployeeID != filter.EmployeeID {
			continue
		}
		out = append(out, att)
	}
	return out, int64(len(out)), nil
}

func (m *memAttendanceRepo) ListByMonth(_ context.Context, year int, month time.Month) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, att := range m.records {
		if att.Date.Year() == year && att.Date.Month() == month {
			out = append(out, att)
		}
	}
	return out, nil
}

func (m *memAttendanceRepo) ListOpenBefore(_ context.Context, cutoff time.Time) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, att := range m.records {
		if att.IsOpen() && att.CheckIn.Before(cutoff) {
			out = append(out, att)
		}
	}
	return out, nil
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

type staticSettings struct {
	fence settings.OfficeGeofence
}

func (s *staticSettings) GetOfficeGeofence(_ context.Context) (settings.OfficeGeofence, error) {
	return s.fence, nil
}

func (s *staticSettings) UpdateOfficeGeofence(_ context.Context, req settings.UpdateGeofenceRequest) (settings.OfficeGeofence, error) {
	s.fence = settings.OfficeGeofence{
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		RadiusMeters: req.RadiusMeters,
	}
	return s.fence, nil
}

type memOverrideRepo struct {
	entries map[string]roster.Group
}

func (m *memOverrideRepo) Get(_ context.Context, key string) (roster.Group, bool, error) {
	g, ok := m.entries[key]
	return g, ok, nil
}

func (m *memOverrideRepo) Set(_ context.Context, key string, group roster.Group) error {
	m.entries[key] = group
	return nil
}

func (m *memOverrideRepo) ListByMonth(_ context.Context, _, _ int) (map[string]roster.Group, error) {
	return m.entries, nil
}

// ===== fixture =====

const (
	officeLat = -6.2000
	officeLng = 106.8166
)

type fixture struct {
	svc     *AttendanceServiceImpl
	attRepo *memAttendanceRepo
}

func newFixture(t *testing.T, employees ...employee.Employee) *fixture {
	t.Helper()

	empRepo := &memEmployeeRepo{employees: make(map[string]employee.Employee)}
	for _, emp := range employees {
		empRepo.employees[emp.ID] = emp
	}

	attRepo := newMemAttendanceRepo()
	rosterSvc := rosterService.NewRosterService(&memOverrideRepo{entries: make(map[string]roster.Group)})
	office := &staticSettings{fence: settings.OfficeGeofence{
		Latitude:     officeLat,
		Longitude:    officeLng,
		RadiusMeters: 500,
	}}

	svc := NewAttendanceService(attRepo, empRepo, rosterSvc, office, nil, time.UTC)
	return &fixture{svc: svc, attRepo: attRepo}
}

func (f *fixture) at(t time.Time) {
	f.svc.now = func() time.Time { return t }
}

func regularEmployee(id string) employee.Employee {
	return employee.Employee{
		ID:         id,
		NID:        "STF089",
		Name:       "Siti Karyawan",
		ShiftGroup: employee.ShiftGroupReguler,
	}
}

func rotatingEmployee(id string, group employee.ShiftGroup) employee.Employee {
	return employee.Employee{
		ID:         id,
		NID:        "STF090",
		Name:       "Budi Shift",
		ShiftGroup: group,
	}
}

func checkInAt(lat, lng float64) attendance.CheckInRequest {
	return attendance.CheckInRequest{EmployeeID: "emp-1", Latitude: lat, Longitude: lng}
}

// ===== tests =====

func TestCheckIn_AtScheduledStartIsPresent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t, regularEmployee("emp-1"))

	// REGULER starts 08:00; checking in exactly on time.
	f.at(time.Date(2024, time.October, 7, 8, 0, 0, 0, time.UTC))

	resp, err := f.svc.CheckIn(ctx, checkInAt(officeLat, officeLng))
	require.NoError(t, err)

	assert.Equal(t, string(attendance.StatusPresent), resp.Status)
	assert.Equal(t, 0, resp.LateMinutes)
	assert.Equal(t, "REGULER", resp.ShiftType)
	assert.False(t, resp.RestDay)
}

func TestCheckIn_OneMinuteAfterStartIsLate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t, regularEmployee("emp-1"))

	f.at(time.Date(2024, time.October, 7, 8, 1, 0, 0, time.UTC))

	resp, err := f.svc.CheckIn(ctx, checkInAt(officeLat, officeLng))
	require.NoError(t, err)

	assert.Equal(t, string(attendance.StatusLate), resp.Status)
	assert.Equal(t, 1, resp.LateMinutes)
}

func TestCheckIn_NightShiftAnchorsToOwnDay(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// October 7th 2024: slot 1 (MALAM) resolves to group D.
	f := newFixture(t, rotatingEmployee("emp-1", employee.ShiftGroupD))
	f.at(time.Date(2024, time.October, 7, 23, 45, 0, 0, time.UTC))

	resp, err := f.svc.CheckIn(ctx, checkInAt(officeLat, officeLng))
	require.NoError(t, err)

	// 23:45 against the same day's 23:30, not the following day's.
	assert.Equal(t, "MALAM", resp.ShiftType)
	assert.Equal(t, string(attendance.StatusLate), resp.Status)
	assert.Equal(t, 15, resp.LateMinutes)
}

func TestCheckIn_OutsideGeofenceCarriesDistance(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t, regularEmployee("emp-1"))
	f.at(time.Date(2024, time.October, 7, 8, 0, 0, 0, time.UTC))

	// Roughly 1.1km north of the office center.
	_, err := f.svc.CheckIn(ctx, checkInAt(officeLat+0.01, officeLng))
	require.Error(t, err)

	var outside *attendance.OutsideRadiusError
	require.True(t, errors.As(err, &outside))
	assert.Greater(t, outside.DistanceMeters, 1000.0)
	assert.Equal(t, 500.0, outside.RadiusMeters)

	// No record was created.
	assert.Empty(t, f.attRepo.records)
}

func TestCheckIn_DuplicateIsRejectedWithoutMutation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t, regularEmployee("emp-1"))
	f.at(time.Date(2024, time.October, 7, 8, 0, 0, 0, time.UTC))

	first, err := f.svc.CheckIn(ctx, checkInAt(officeLat, officeLng))
	require.NoError(t, err)

	f.at(time.Date(2024, time.October, 7, 9, 30, 0, 0, time.UTC))
	_, err = f.svc.CheckIn(ctx, checkInAt(officeLat, officeLng))
	assert.True(t, errors.Is(err, attendance.ErrAlreadyCheckedIn))

	// The first record is untouched.
	require.Len(t, f.attRepo.records, 1)
	stored := f.attRepo.records[first.ID]
	assert.Equal(t, attendance.StatusPresent, stored.Status)
	assert.Equal(t, 0, stored.LateMinutes)
}

func TestCheckIn_SettlesPriorDayOpenSession(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t, regularEmployee("emp-1"))

	// A night session from October 6 was never checked out.
	staleCheckIn := time.Date(2024, time.October, 6, 23, 42, 0, 0, time.UTC)
	stale, err := f.attRepo.Create(ctx, attendance.Attendance{
		EmployeeID:  "emp-1",
		Date:        time.Date(2024, time.October, 6, 0, 0, 0, 0, time.UTC),
		ShiftType:   shift.TypeMalam,
		CheckIn:     &staleCheckIn,
		Status:      attendance.StatusLate,
		LateMinutes: 12,
	})
	require.NoError(t, err)

	f.at(time.Date(2024, time.October, 7, 8, 0, 0, 0, time.UTC))

	resp, err := f.svc.CheckIn(ctx, checkInAt(officeLat, officeLng))
	require.NoError(t, err)
	assert.Equal(t, string(attendance.StatusPresent), resp.Status)

	// The leftover session is closed at its scheduled end, with the
	// status computed at its check-in preserved.
	closed := f.attRepo.records[stale.ID]
	require.NotNil(t, closed.CheckOut)
	assert.Equal(t, time.Date(2024, time.October, 7, 7, 30, 0, 0, time.UTC), *closed.CheckOut)
	assert.Equal(t, attendance.StatusLate, closed.Status)
	assert.Equal(t, 12, closed.LateMinutes)

	// Only today's record remains open.
	open, err := f.attRepo.GetOpenSession(ctx, "emp-1")
	require.NoError(t, err)
	require.NotNil(t, open)
	assert.Equal(t, resp.ID, open.ID)
}

func TestCheckOut_WithoutCheckInIsRejected(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t, regularEmployee("emp-1"))
	f.at(time.Date(2024, time.October, 7, 17, 0, 0, 0, time.UTC))

	_, err := f.svc.CheckOut(ctx, attendance.CheckOutRequest{
		EmployeeID: "emp-1", Latitude: officeLat, Longitude: officeLng,
	})
	assert.True(t, errors.Is(err, attendance.ErrNotCheckedIn))
}

func TestCheckOut_ClosesRecordWithoutRevisingStatus(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t, regularEmployee("emp-1"))

	f.at(time.Date(2024, time.October, 7, 8, 20, 0, 0, time.UTC))
	in, err := f.svc.CheckIn(ctx, checkInAt(officeLat, officeLng))
	require.NoError(t, err)
	require.Equal(t, string(attendance.StatusLate), in.Status)
	require.Equal(t, 20, in.LateMinutes)

	f.at(time.Date(2024, time.October, 7, 17, 5, 0, 0, time.UTC))
	out, err := f.svc.CheckOut(ctx, attendance.CheckOutRequest{
		EmployeeID: "emp-1", Latitude: officeLat, Longitude: officeLng,
	})
	require.NoError(t, err)

	assert.NotNil(t, out.CheckOutTime)
	assert.Equal(t, string(attendance.StatusLate), out.Status)
	assert.Equal(t, 20, out.LateMinutes)

	// A second check-out finds no open session.
	_, err = f.svc.CheckOut(ctx, attendance.CheckOutRequest{
		EmployeeID: "emp-1", Latitude: officeLat, Longitude: officeLng,
	})
	assert.True(t, errors.Is(err, attendance.ErrNotCheckedIn))
}

func TestCheckOut_IsGeofenceGated(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t, regularEmployee("emp-1"))

	f.at(time.Date(2024, time.October, 7, 8, 0, 0, 0, time.UTC))
	_, err := f.svc.CheckIn(ctx, checkInAt(officeLat, officeLng))
	require.NoError(t, err)

	f.at(time.Date(2024, time.October, 7, 17, 0, 0, 0, time.UTC))
	_, err = f.svc.CheckOut(ctx, attendance.CheckOutRequest{
		EmployeeID: "emp-1", Latitude: officeLat + 0.01, Longitude: officeLng,
	})

	var outside *attendance.OutsideRadiusError
	assert.True(t, errors.As(err, &outside))
}

func TestCheckIn_OnRestDayIsFlagged(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// October 7th 2024: slot 3 (LIBUR) resolves to group B.
	f := newFixture(t, rotatingEmployee("emp-1", employee.ShiftGroupB))
	f.at(time.Date(2024, time.October, 7, 8, 0, 0, 0, time.UTC))

	resp, err := f.svc.CheckIn(ctx, checkInAt(officeLat, officeLng))
	require.NoError(t, err)

	assert.True(t, resp.RestDay)
	assert.Equal(t, "LIBUR", resp.ShiftType)
	assert.Equal(t, string(attendance.StatusPresent), resp.Status)
	assert.Equal(t, 0, resp.LateMinutes)
}

func TestCheckIn_UnknownEmployee(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t) // no employees registered
	f.at(time.Date(2024, time.October, 7, 8, 0, 0, 0, time.UTC))

	_, err := f.svc.CheckIn(ctx, checkInAt(officeLat, officeLng))
	assert.True(t, errors.Is(err, employee.ErrEmployeeNotFound), fmt.Sprintf("got %v", err))
}
