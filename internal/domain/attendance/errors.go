package attendance

import (
	"errors"
	"fmt"
)

// Attendance domain errors
var (
	ErrAlreadyCheckedIn   = errors.New("you have already checked in today")
	ErrNotCheckedIn       = errors.New("you have not checked in yet")
	ErrAttendanceNotFound = errors.New("attendance record not found")
)

// OutsideRadiusError rejects a check-in or check-out reported from
// beyond the office geofence. It carries the measured distance so the
// client can show the exact overage against the configured radius.
type OutsideRadiusError struct {
	DistanceMeters float64
	RadiusMeters   float64
}

func (e *OutsideRadiusError) Error() string {
	return fmt.Sprintf("you are %.0fm from the office center, outside the allowed radius of %.0fm",
		e.DistanceMeters, e.RadiusMeters)
}
