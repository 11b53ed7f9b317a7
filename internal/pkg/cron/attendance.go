package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/presensikita/presensi-backend-go/internal/domain/attendance"
	"github.com/presensikita/presensi-backend-go/internal/domain/employee"
	"github.com/presensikita/presensi-backend-go/internal/domain/leave"
	"github.com/presensikita/presensi-backend-go/internal/domain/roster"
	"github.com/presensikita/presensi-backend-go/internal/domain/shift"
)

// staleGrace is how long after the scheduled shift end an open session
// may linger before the closer claims it.
const staleGrace = time.Hour

type AttendanceJobs struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	leaveRepo      leave.LeaveRequestRepository
	rosterService  roster.RosterService
	loc            *time.Location

	now func() time.Time
}

func NewAttendanceJobs(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	leaveRepo leave.LeaveRequestRepository,
	rosterService roster.RosterService,
	loc *time.Location,
) *AttendanceJobs {
	if loc == nil {
		loc = time.UTC
	}
	return &AttendanceJobs{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		leaveRepo:      leaveRepo,
		rosterService:  rosterService,
		loc:            loc,
		now:            time.Now,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("mark_absent_employees", 1*time.Hour, j.MarkAbsentEmployees)
	scheduler.AddJob("auto_close_stale_sessions", 1*time.Hour, j.AutoCloseStaleSessions)
}

// MarkAbsentEmployees backfills ABSENT records for the previous work
// day: every active employee who was rostered on a working shift, has
// no attendance record and no approved leave gets one.
func (j *AttendanceJobs) MarkAbsentEmployees(ctx context.Context) error {
	// Only run in the 01:00-01:59 window, after the longest shift of the
	// previous day has fully closed.
	nowLocal := j.now().In(j.loc)
	if nowLocal.Hour() != 1 {
		return nil
	}

	prevDay := time.Date(nowLocal.Year(), nowLocal.Month(), nowLocal.Day(), 0, 0, 0, 0, j.loc).AddDate(0, 0, -1)

	slog.Info("Cron: marking absent employees", "date", prevDay.Format("2006-01-02"))

	employees, err := j.employeeRepo.ListActive(ctx)
	if err != nil {
		return fmt.Errorf("failed to list active employees: %w", err)
	}

	markedCount := 0
	for _, emp := range employees {
		if emp.JoinDate.After(prevDay) {
			continue
		}

		def, err := j.shiftFor(ctx, emp, prevDay)
		if err != nil {
			slog.Error("Cron: cannot resolve shift", "employee_id", emp.ID, "error", err)
			continue
		}
		if def.IsRestDay() {
			continue
		}

		existing, err := j.attendanceRepo.GetByEmployeeAndDate(ctx, emp.ID, prevDay)
		if err != nil {
			return fmt.Errorf("failed to check attendance for %s: %w", emp.ID, err)
		}
		if existing != nil {
			continue
		}

		onLeave, err := j.leaveRepo.HasApprovedLeaveOn(ctx, emp.ID, prevDay)
		if err != nil {
			return fmt.Errorf("failed to check leave for %s: %w", emp.ID, err)
		}
		if onLeave {
			continue
		}

		_, err = j.attendanceRepo.Create(ctx, attendance.Attendance{
			EmployeeID: emp.ID,
			Date:       prevDay,
			ShiftType:  def.Type,
			Status:     attendance.StatusAbsent,
		})
		if err != nil {
			return fmt.Errorf("failed to mark %s absent: %w", emp.ID, err)
		}
		markedCount++
	}

	slog.Info("Cron: absent marking finished", "marked", markedCount)
	return nil
}

// AutoCloseStaleSessions closes check-ins left open past the scheduled
// shift end plus grace. The check-out time is stamped at the scheduled
// end; status and late minutes stay as computed at check-in.
func (j *AttendanceJobs) AutoCloseStaleSessions(ctx context.Context) error {
	nowLocal := j.now().In(j.loc)

	sessions, err := j.attendanceRepo.ListOpenBefore(ctx, nowLocal.Add(-staleGrace))
	if err != nil {
		return fmt.Errorf("failed to list open sessions: %w", err)
	}

	closedCount := 0
	for _, session := range sessions {
		def, err := shift.Lookup(session.ShiftType)
		if err != nil {
			slog.Error("Cron: unknown shift type on open session", "attendance_id", session.ID, "shift_type", session.ShiftType)
			continue
		}

		end := def.EndOn(session.Date)
		if def.IsRestDay() {
			// Rest-day check-ins have no scheduled end; close them a full
			// day after check-in.
			end = session.CheckIn.Add(24 * time.Hour)
		}

		if nowLocal.Before(end.Add(staleGrace)) {
			continue
		}

		session.CheckOut = &end
		if err := j.attendanceRepo.Update(ctx, session); err != nil {
			return fmt.Errorf("failed to close session %s: %w", session.ID, err)
		}
		closedCount++
	}

	if closedCount > 0 {
		slog.Info("Cron: stale sessions closed", "closed", closedCount)
	}
	return nil
}

func (j *AttendanceJobs) shiftFor(ctx context.Context, emp employee.Employee, workDay time.Time) (shift.Definition, error) {
	if fixed, ok := emp.ShiftGroup.FixedShiftType(); ok {
		return shift.Lookup(fixed)
	}

	group, ok := emp.ShiftGroup.RotatingGroup()
	if !ok {
		return shift.Definition{}, fmt.Errorf("employee %s has unknown shift group %q", emp.ID, emp.ShiftGroup)
	}

	shiftType, err := j.rosterService.ShiftTypeFor(ctx, workDay, group)
	if err != nil {
		return shift.Definition{}, err
	}

	return shift.Lookup(shiftType)
}
