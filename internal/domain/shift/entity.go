package shift

import (
	"fmt"
	"time"
)

// Type identifies one of the six canonical shift types.
type Type string

const (
	TypePagi    Type = "PAGI"
	TypeSore    Type = "SORE"
	TypeMalam   Type = "MALAM"
	TypeReguler Type = "REGULER"
	TypeDaytime Type = "DAYTIME"
	TypeLibur   Type = "LIBUR"
)

// Definition is immutable reference data for a shift type.
type Definition struct {
	Type      Type   `json:"type"`
	Name      string `json:"name"`
	StartTime string `json:"start_time"` // "HH:MM"
	EndTime   string `json:"end_time"`   // "HH:MM"
}

// definitions is the canonical shift table. PAGI/SORE/MALAM form the
// three-shift rotating cycle, REGULER/DAYTIME are fixed day shifts and
// LIBUR is the rest-day slot with zero duration.
var definitions = []Definition{
	{Type: TypePagi, Name: "Shift Pagi", StartTime: "07:30", EndTime: "15:30"},
	{Type: TypeSore, Name: "Shift Sore", StartTime: "15:30", EndTime: "23:30"},
	{Type: TypeMalam, Name: "Shift Malam", StartTime: "23:30", EndTime: "07:30"},
	{Type: TypeReguler, Name: "Reguler", StartTime: "08:00", EndTime: "17:00"},
	{Type: TypeDaytime, Name: "Daytime", StartTime: "09:00", EndTime: "18:00"},
	{Type: TypeLibur, Name: "Libur", StartTime: "00:00", EndTime: "00:00"},
}

// Lookup returns the definition for a shift type.
func Lookup(t Type) (Definition, error) {
	for _, d := range definitions {
		if d.Type == t {
			return d, nil
		}
	}
	return Definition{}, fmt.Errorf("%w: %s", ErrShiftTypeNotFound, t)
}

// Definitions returns the full catalog in canonical order.
func Definitions() []Definition {
	out := make([]Definition, len(definitions))
	copy(out, definitions)
	return out
}

// CrossesMidnight reports whether the shift ends on the day after it
// starts (MALAM 23:30 -> 07:30).
func (d Definition) CrossesMidnight() bool {
	return d.EndTime < d.StartTime
}

// IsRestDay reports whether the definition is the LIBUR no-work slot.
func (d Definition) IsRestDay() bool {
	return d.Type == TypeLibur
}

// StartOn anchors the shift's start clock time to the given calendar day
// in that day's location. For cross-midnight shifts the anchor stays on
// the given day, not the following one.
func (d Definition) StartOn(day time.Time) time.Time {
	h, m := mustClock(d.StartTime)
	return time.Date(day.Year(), day.Month(), day.Day(), h, m, 0, 0, day.Location())
}

// EndOn anchors the shift's end clock time, rolling to the next day for
// cross-midnight shifts.
func (d Definition) EndOn(day time.Time) time.Time {
	h, m := mustClock(d.EndTime)
	end := time.Date(day.Year(), day.Month(), day.Day(), h, m, 0, 0, day.Location())
	if d.CrossesMidnight() {
		end = end.AddDate(0, 0, 1)
	}
	return end
}

func mustClock(hhmm string) (hour, minute int) {
	// The catalog is static; a malformed entry is a programming error.
	if _, err := fmt.Sscanf(hhmm, "%d:%d", &hour, &minute); err != nil {
		panic(fmt.Sprintf("shift: invalid clock time %q: %v", hhmm, err))
	}
	return hour, minute
}
