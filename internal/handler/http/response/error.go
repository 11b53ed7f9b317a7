package response

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/presensikita/presensi-backend-go/internal/domain/attendance"
	"github.com/presensikita/presensi-backend-go/internal/domain/employee"
	"github.com/presensikita/presensi-backend-go/internal/domain/leave"
	"github.com/presensikita/presensi-backend-go/internal/domain/payroll"
	"github.com/presensikita/presensi-backend-go/internal/domain/roster"
	"github.com/presensikita/presensi-backend-go/internal/domain/settings"
	"github.com/presensikita/presensi-backend-go/internal/domain/shift"
	"github.com/presensikita/presensi-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Geofence rejection carries the measured overage for the client
	var outside *attendance.OutsideRadiusError
	if errors.As(err, &outside) {
		BadRequest(w, "Location is outside the office geofence", map[string]string{
			"distance_meters": fmt.Sprintf("%.1f", outside.DistanceMeters),
			"radius_meters":   fmt.Sprintf("%.1f", outside.RadiusMeters),
		})
		return
	}

	switch {
	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in today")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		BadRequest(w, "No open check-in to close", nil)
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrNIDExists):
		Conflict(w, "Employee number already registered")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Leave domain errors
	case errors.Is(err, leave.ErrCategoryNotFound):
		NotFound(w, "Leave category not found")
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrExceedsEntitlement):
		BadRequest(w, "Requested days exceed the category entitlement", nil)

	// Roster and shift domain errors
	case errors.Is(err, roster.ErrUnresolvableShift):
		NotFound(w, "No shift resolved for the group on that day")
	case errors.Is(err, shift.ErrShiftTypeNotFound):
		NotFound(w, "Shift type not found")

	// Settings and payroll domain errors
	case errors.Is(err, settings.ErrSettingsNotFound):
		NotFound(w, "Setting not found")
	case errors.Is(err, payroll.ErrPayrollNotFound):
		NotFound(w, "Payroll record not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
