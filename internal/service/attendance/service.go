package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/presensikita/presensi-backend-go/internal/domain/attendance"
	"github.com/presensikita/presensi-backend-go/internal/domain/employee"
	"github.com/presensikita/presensi-backend-go/internal/domain/roster"
	"github.com/presensikita/presensi-backend-go/internal/domain/settings"
	"github.com/presensikita/presensi-backend-go/internal/domain/shift"
	"github.com/presensikita/presensi-backend-go/internal/pkg/geo"
	"github.com/presensikita/presensi-backend-go/internal/service/file"
)

type AttendanceServiceImpl struct {
	attendanceRepo  attendance.AttendanceRepository
	employeeRepo    employee.EmployeeRepository
	rosterService   roster.RosterService
	settingsService settings.SettingsService
	fileService     file.FileService

	// per-employee locks: the check-in/check-out read-then-write must be
	// serialized per employee to keep at most one open record
	locks sync.Map

	now func() time.Time
	loc *time.Location
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	rosterService roster.RosterService,
	settingsService settings.SettingsService,
	fileService file.FileService,
	loc *time.Location,
) *AttendanceServiceImpl {
	if loc == nil {
		loc = time.UTC
	}
	return &AttendanceServiceImpl{
		attendanceRepo:  attendanceRepo,
		employeeRepo:    employeeRepo,
		rosterService:   rosterService,
		settingsService: settingsService,
		fileService:     fileService,
		now:             time.Now,
		loc:             loc,
	}
}

func (s *AttendanceServiceImpl) lockEmployee(employeeID string) func() {
	v, _ := s.locks.LoadOrStore(employeeID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// CheckIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	unlock := s.lockEmployee(req.EmployeeID)
	defer unlock()

	if err := s.admitLocation(ctx, req.Latitude, req.Longitude); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	nowLocal := s.now().In(s.loc)
	workDay := time.Date(nowLocal.Year(), nowLocal.Month(), nowLocal.Day(), 0, 0, 0, 0, s.loc)

	existing, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, req.EmployeeID, workDay)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to look up today's attendance: %w", err)
	}
	if existing != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
	}

	// An earlier day's session may still be open if the stale-session
	// sweeper has not fired yet. Settle it before opening a new one so the
	// employee never holds two open records.
	open, err := s.attendanceRepo.GetOpenSession(ctx, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to look up open session: %w", err)
	}
	if open != nil && open.Date.Before(workDay) {
		if err := s.settleStaleSession(ctx, *open); err != nil {
			return attendance.AttendanceResponse{}, err
		}
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	def, err := s.shiftFor(ctx, emp, workDay)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	status := attendance.StatusPresent
	lateMinutes := 0
	restDay := def.IsRestDay()

	if restDay {
		// The rotation says this group rests today. Admit the check-in but
		// flag the record for review instead of silently counting it.
		slog.Warn("check-in on rest day",
			"employee_id", emp.ID,
			"date", workDay.Format("2006-01-02"),
		)
	} else {
		// Anchor the scheduled start to the check-in's own calendar day,
		// also for cross-midnight shifts (MALAM 23:30 belongs to today).
		scheduledStart := def.StartOn(workDay)
		if nowLocal.After(scheduledStart) {
			status = attendance.StatusLate
			lateMinutes = int(math.Floor(nowLocal.Sub(scheduledStart).Minutes()))
		}
	}

	if req.File != nil && s.fileService != nil {
		selfieURL, err := s.fileService.UploadSelfie(ctx, emp.ID, workDay, req.File, req.FileHeader.Filename)
		if err != nil {
			return attendance.AttendanceResponse{}, fmt.Errorf("failed to upload selfie: %w", err)
		}
		req.SelfieURL = &selfieURL
	}

	checkInUTC := nowLocal.UTC()
	data := attendance.Attendance{
		EmployeeID:       emp.ID,
		Date:             workDay,
		ShiftType:        def.Type,
		CheckIn:          &checkInUTC,
		CheckInLatitude:  &req.Latitude,
		CheckInLongitude: &req.Longitude,
		SelfieURL:        req.SelfieURL,
		Status:           status,
		LateMinutes:      lateMinutes,
		RestDay:          restDay,
		EmployeeName:     &emp.Name,
	}

	created, err := s.attendanceRepo.Create(ctx, data)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}
	if created.EmployeeName == nil {
		created.EmployeeName = &emp.Name
	}

	return toResponse(created), nil
}

// CheckOut implements attendance.AttendanceService. The check-out is
// geofence-gated like the check-in; the status computed at check-in is
// never revised.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	unlock := s.lockEmployee(req.EmployeeID)
	defer unlock()

	if err := s.admitLocation(ctx, req.Latitude, req.Longitude); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	open, err := s.attendanceRepo.GetOpenSession(ctx, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get open session: %w", err)
	}
	if open == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNotCheckedIn
	}

	checkOutUTC := s.now().UTC()
	open.CheckOut = &checkOutUTC
	open.CheckOutLatitude = &req.Latitude
	open.CheckOutLongitude = &req.Longitude

	if err := s.attendanceRepo.Update(ctx, *open); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to close attendance record: %w", err)
	}

	return toResponse(*open), nil
}

// GetMyAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetMyAttendance(ctx context.Context, filter attendance.ListFilter) (attendance.ListAttendanceResponse, error) {
	if filter.EmployeeID == "" {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("employee_id filter is required")
	}
	return s.list(ctx, filter)
}

// ListAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.ListFilter) (attendance.ListAttendanceResponse, error) {
	return s.list(ctx, filter)
}

func (s *AttendanceServiceImpl) list(ctx context.Context, filter attendance.ListFilter) (attendance.ListAttendanceResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	items, total, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	resp := attendance.ListAttendanceResponse{
		Items:      make([]attendance.AttendanceResponse, 0, len(items)),
		TotalItems: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}
	for _, item := range items {
		resp.Items = append(resp.Items, toResponse(item))
	}
	return resp, nil
}

// admitLocation validates the reported coordinate against the office
// geofence. The boundary is inclusive.
func (s *AttendanceServiceImpl) admitLocation(ctx context.Context, lat, lng float64) error {
	office, err := s.settingsService.GetOfficeGeofence(ctx)
	if err != nil {
		return fmt.Errorf("failed to load office geofence: %w", err)
	}

	fence := office.Fence()
	point := geo.Point{Latitude: lat, Longitude: lng}
	if distance := fence.Distance(point); distance > fence.RadiusMeters {
		return &attendance.OutsideRadiusError{
			DistanceMeters: distance,
			RadiusMeters:   fence.RadiusMeters,
		}
	}
	return nil
}

// settleStaleSession closes an open record left over from an earlier
// day, stamping the check-out at the scheduled shift end. Status and
// late minutes stay as computed at check-in.
func (s *AttendanceServiceImpl) settleStaleSession(ctx context.Context, att attendance.Attendance) error {
	def, err := shift.Lookup(att.ShiftType)
	if err != nil {
		return fmt.Errorf("failed to resolve shift for open session %s: %w", att.ID, err)
	}

	end := def.EndOn(att.Date)
	if def.IsRestDay() {
		// Rest-day check-ins have no scheduled end; close them a full day
		// after check-in.
		end = att.CheckIn.Add(24 * time.Hour)
	}

	att.CheckOut = &end
	if err := s.attendanceRepo.Update(ctx, att); err != nil {
		return fmt.Errorf("failed to close stale session %s: %w", att.ID, err)
	}

	slog.Warn("stale session closed at check-in",
		"employee_id", att.EmployeeID,
		"date", att.Date.Format("2006-01-02"),
	)
	return nil
}

// shiftFor resolves which shift definition applies to the employee on
// the given work day.
func (s *AttendanceServiceImpl) shiftFor(ctx context.Context, emp employee.Employee, workDay time.Time) (shift.Definition, error) {
	if fixed, ok := emp.ShiftGroup.FixedShiftType(); ok {
		return shift.Lookup(fixed)
	}

	group, ok := emp.ShiftGroup.RotatingGroup()
	if !ok {
		return shift.Definition{}, fmt.Errorf("%w: shift group %q", roster.ErrUnresolvableShift, emp.ShiftGroup)
	}

	typ, err := s.rosterService.ShiftTypeFor(ctx, workDay, group)
	if err != nil {
		return shift.Definition{}, err
	}
	return shift.Lookup(typ)
}

func timePtrToString(t *time.Time, loc *time.Location) *string {
	if t == nil {
		return nil
	}
	formatted := t.In(loc).Format("2006-01-02 15:04:05")
	return &formatted
}

func toResponse(att attendance.Attendance) attendance.AttendanceResponse {
	loc := att.Date.Location()
	return attendance.AttendanceResponse{
		ID:           att.ID,
		EmployeeID:   att.EmployeeID,
		EmployeeName: att.EmployeeName,
		Date:         att.Date.Format("2006-01-02"),
		ShiftType:    string(att.ShiftType),
		CheckInTime:  timePtrToString(att.CheckIn, loc),
		CheckOutTime: timePtrToString(att.CheckOut, loc),
		Latitude:     att.CheckInLatitude,
		Longitude:    att.CheckInLongitude,
		SelfieURL:    att.SelfieURL,
		Status:       string(att.Status),
		LateMinutes:  att.LateMinutes,
		RestDay:      att.RestDay,
	}
}
