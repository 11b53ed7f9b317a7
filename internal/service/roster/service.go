package roster

import (
	"context"
	"fmt"
	"time"

	"github.com/presensikita/presensi-backend-go/internal/domain/roster"
	"github.com/presensikita/presensi-backend-go/internal/domain/shift"
)

type RosterServiceImpl struct {
	overrides roster.OverrideRepository
}

func NewRosterService(overrides roster.OverrideRepository) *RosterServiceImpl {
	return &RosterServiceImpl{overrides: overrides}
}

// ResolveGroup implements roster.RosterService.
//
// Day 1 of every month anchors slot 0 to group A; each following day and
// each following slot advance the cycle by one. A stored override wins
// verbatim over the formula.
func (s *RosterServiceImpl) ResolveGroup(ctx context.Context, year, monthZeroBased, day, slotIndex int) (roster.Group, error) {
	key := roster.OverrideKey(year, monthZeroBased, day, slotIndex)

	group, ok, err := s.overrides.Get(ctx, key)
	if err != nil {
		return "", fmt.Errorf("failed to read roster override: %w", err)
	}
	if ok {
		return group, nil
	}

	baseIndex := (day - 1) % roster.SlotCount
	groupIndex := (baseIndex + slotIndex) % roster.SlotCount
	return roster.Groups[groupIndex], nil
}

// SetOverride implements roster.RosterService. Unconditional upsert,
// last write wins.
func (s *RosterServiceImpl) SetOverride(ctx context.Context, req roster.SetOverrideRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	key := roster.OverrideKey(req.Year, req.Month, req.Day, req.SlotIndex)
	if err := s.overrides.Set(ctx, key, roster.Group(req.Group)); err != nil {
		return fmt.Errorf("failed to store roster override: %w", err)
	}
	return nil
}

// ShiftTypeFor implements roster.RosterService. The slot-to-group map is
// a bijection on any single day, so each rotating group works exactly
// one slot, possibly the LIBUR rest slot.
func (s *RosterServiceImpl) ShiftTypeFor(ctx context.Context, day time.Time, group roster.Group) (shift.Type, error) {
	year, month, dom := day.Year(), int(day.Month())-1, day.Day()

	for slot := 0; slot < roster.SlotCount; slot++ {
		assigned, err := s.ResolveGroup(ctx, year, month, dom, slot)
		if err != nil {
			return "", err
		}
		if assigned == group {
			return roster.SlotShiftTypes[slot], nil
		}
	}

	// Reachable only when overrides assign one group to several slots and
	// crowd this group out of the day entirely.
	return "", fmt.Errorf("%w: group %s on %s", roster.ErrUnresolvableShift, group, day.Format("2006-01-02"))
}

// MonthRoster implements roster.RosterService.
func (s *RosterServiceImpl) MonthRoster(ctx context.Context, year, monthZeroBased int) (roster.MonthRosterResponse, error) {
	days := daysInMonth(year, monthZeroBased)

	// One read for the whole month instead of days*slots point lookups.
	overrides, err := s.overrides.ListByMonth(ctx, year, monthZeroBased)
	if err != nil {
		return roster.MonthRosterResponse{}, fmt.Errorf("failed to list roster overrides: %w", err)
	}

	resp := roster.MonthRosterResponse{
		Year:  year,
		Month: monthZeroBased,
		Days:  days,
		Slots: make([]roster.SlotRosterRow, 0, roster.SlotCount),
	}

	for slot, shiftType := range roster.SlotShiftTypes {
		def, err := shift.Lookup(shiftType)
		if err != nil {
			return roster.MonthRosterResponse{}, err
		}

		row := roster.SlotRosterRow{
			SlotIndex: slot,
			ShiftType: string(shiftType),
			ShiftName: def.Name,
			Groups:    make([]string, 0, days),
		}

		for day := 1; day <= days; day++ {
			key := roster.OverrideKey(year, monthZeroBased, day, slot)
			if group, ok := overrides[key]; ok {
				row.Groups = append(row.Groups, string(group))
				continue
			}
			baseIndex := (day - 1) % roster.SlotCount
			row.Groups = append(row.Groups, string(roster.Groups[(baseIndex+slot)%roster.SlotCount]))
		}

		resp.Slots = append(resp.Slots, row)
	}

	return resp, nil
}

func daysInMonth(year, monthZeroBased int) int {
	first := time.Date(year, time.Month(monthZeroBased+1), 1, 0, 0, 0, 0, time.UTC)
	return first.AddDate(0, 1, -1).Day()
}
