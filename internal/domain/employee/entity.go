package employee

import (
	"time"

	"github.com/presensikita/presensi-backend-go/internal/domain/roster"
	"github.com/presensikita/presensi-backend-go/internal/domain/shift"
)

// ShiftGroup is the cohort an employee belongs to: one of the four
// rotating groups or a fixed day-shift arrangement.
type ShiftGroup string

const (
	ShiftGroupA       ShiftGroup = "Shift A"
	ShiftGroupB       ShiftGroup = "Shift B"
	ShiftGroupC       ShiftGroup = "Shift C"
	ShiftGroupD       ShiftGroup = "Shift D"
	ShiftGroupDaytime ShiftGroup = "Daytime"
	ShiftGroupReguler ShiftGroup = "Reguler"
)

var ShiftGroupValues = []string{
	string(ShiftGroupA),
	string(ShiftGroupB),
	string(ShiftGroupC),
	string(ShiftGroupD),
	string(ShiftGroupDaytime),
	string(ShiftGroupReguler),
}

type Employee struct {
	ID         string
	NID        string // employee number, e.g. "STF089"
	Name       string
	Email      string
	Division   string
	Position   string
	WorkUnit   string
	ShiftGroup ShiftGroup
	AvatarURL  *string
	JoinDate   time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time
}

// RotatingGroup maps the shift group to its roster cohort letter,
// reporting false for the fixed Daytime/Reguler arrangements.
func (g ShiftGroup) RotatingGroup() (roster.Group, bool) {
	switch g {
	case ShiftGroupA:
		return roster.GroupA, true
	case ShiftGroupB:
		return roster.GroupB, true
	case ShiftGroupC:
		return roster.GroupC, true
	case ShiftGroupD:
		return roster.GroupD, true
	}
	return "", false
}

// FixedShiftType returns the shift type for non-rotating groups.
func (g ShiftGroup) FixedShiftType() (shift.Type, bool) {
	switch g {
	case ShiftGroupDaytime:
		return shift.TypeDaytime, true
	case ShiftGroupReguler:
		return shift.TypeReguler, true
	}
	return "", false
}
