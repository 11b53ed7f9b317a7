package roster

import (
	"context"
	"time"

	"github.com/presensikita/presensi-backend-go/internal/domain/shift"
)

// RosterService resolves rotating shift assignments and records manual
// overrides.
type RosterService interface {
	// ResolveGroup maps (date, slot) to the assigned group. A stored
	// override wins; otherwise the deterministic rotation formula applies.
	// Month is zero-based. Day range is the caller's contract.
	ResolveGroup(ctx context.Context, year, monthZeroBased, day, slotIndex int) (Group, error)

	// SetOverride upserts a manual roster edit for one (date, slot) cell.
	SetOverride(ctx context.Context, req SetOverrideRequest) error

	// ShiftTypeFor returns the shift type a rotating group works on the
	// given day by inverting the day's slot assignment. The result may be
	// LIBUR when the group lands on the rest slot.
	ShiftTypeFor(ctx context.Context, day time.Time, group Group) (shift.Type, error)

	// MonthRoster returns the full roster matrix for a zero-based month,
	// overrides applied.
	MonthRoster(ctx context.Context, year, monthZeroBased int) (MonthRosterResponse, error)
}
