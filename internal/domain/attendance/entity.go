package attendance

import (
	"time"

	"github.com/presensikita/presensi-backend-go/internal/domain/shift"
)

// Status classifies an attendance record for one employee on one work day.
type Status string

const (
	StatusPresent      Status = "PRESENT"
	StatusLate         Status = "LATE"
	StatusAbsent       Status = "ABSENT"
	StatusLeave        Status = "LEAVE"
	StatusSick         Status = "SICK"
	StatusBusinessTrip Status = "BUSINESS_TRIP"
)

// Attendance is one employee's record for one work day. Created at
// check-in, closed at check-out, immutable once both sides are set.
type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time // work day, truncated to midnight local
	ShiftType  shift.Type

	CheckIn           *time.Time
	CheckOut          *time.Time
	CheckInLatitude   *float64
	CheckInLongitude  *float64
	CheckOutLatitude  *float64
	CheckOutLongitude *float64
	SelfieURL         *string

	Status      Status
	LateMinutes int

	// RestDay marks a check-in on a day the rotation assigned LIBUR.
	// Admitted but flagged so an admin can review it.
	RestDay bool

	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO
	EmployeeName *string
}

// IsOpen reports whether the record still awaits its check-out.
func (a Attendance) IsOpen() bool {
	return a.CheckIn != nil && a.CheckOut == nil
}
