package roster

import (
	"github.com/presensikita/presensi-backend-go/internal/pkg/validator"
)

// ========================================
// ROSTER DTOs
// ========================================

type SetOverrideRequest struct {
	Year      int    `json:"year"`
	Month     int    `json:"month"` // zero-based
	Day       int    `json:"day"`
	SlotIndex int    `json:"slot_index"`
	Group     string `json:"group"`
}

func (r *SetOverrideRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2000 and 2100",
		})
	}

	if r.Month < 0 || r.Month > 11 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 0 and 11 (zero-based)",
		})
	}

	if r.Day < 1 || r.Day > 31 {
		errs = append(errs, validator.ValidationError{
			Field:   "day",
			Message: "day must be between 1 and 31",
		})
	}

	if r.SlotIndex < 0 || r.SlotIndex >= SlotCount {
		errs = append(errs, validator.ValidationError{
			Field:   "slot_index",
			Message: "slot_index must be between 0 and 3",
		})
	}

	if !validator.IsValidGroup(r.Group) {
		errs = append(errs, validator.ValidationError{
			Field:   "group",
			Message: "group must be one of A, B, C, D",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// MonthRosterResponse is the admin calendar matrix: one row per rotating
// slot, one resolved group per day of the month.
type MonthRosterResponse struct {
	Year  int             `json:"year"`
	Month int             `json:"month"` // zero-based
	Days  int             `json:"days"`
	Slots []SlotRosterRow `json:"slots"`
}

type SlotRosterRow struct {
	SlotIndex int      `json:"slot_index"`
	ShiftType string   `json:"shift_type"`
	ShiftName string   `json:"shift_name"`
	Groups    []string `json:"groups"` // index 0 = day 1
}
