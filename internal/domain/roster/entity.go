package roster

import (
	"fmt"

	"github.com/presensikita/presensi-backend-go/internal/domain/shift"
)

// Group is one of the four rotating employee cohorts.
type Group string

const (
	GroupA Group = "A"
	GroupB Group = "B"
	GroupC Group = "C"
	GroupD Group = "D"
)

// Groups is the rotation cycle in order.
var Groups = []Group{GroupA, GroupB, GroupC, GroupD}

// SlotShiftTypes is the canonical ordering of the four rotating slots.
// The slot index is part of every override key, so this ordering must
// stay consistent between resolution and override writes.
var SlotShiftTypes = [...]shift.Type{
	shift.TypePagi,  // slot 0
	shift.TypeMalam, // slot 1
	shift.TypeSore,  // slot 2
	shift.TypeLibur, // slot 3
}

// SlotCount is the number of rotating slots per day.
const SlotCount = len(SlotShiftTypes)

// OverrideKey builds the composite key for one (day, slot) roster cell.
// Month is zero-based (January = 0), matching the stored key format
// "YYYY-M-D-slot".
func OverrideKey(year, monthZeroBased, day, slotIndex int) string {
	return fmt.Sprintf("%d-%d-%d-%d", year, monthZeroBased, day, slotIndex)
}

// Assignment is the resolved output for one shift slot on one day.
// Derived, never stored.
type Assignment struct {
	Year      int        `json:"year"`
	Month     int        `json:"month"` // zero-based
	Day       int        `json:"day"`
	SlotIndex int        `json:"slot_index"`
	ShiftType shift.Type `json:"shift_type"`
	Group     Group      `json:"group"`
}
