package roster

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/presensikita/presensi-backend-go/internal/domain/roster"
	"github.com/presensikita/presensi-backend-go/internal/domain/shift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memOverrideRepo is an in-memory stand-in for the persisted override store.
type memOverrideRepo struct {
	entries map[string]roster.Group
}

func newMemOverrideRepo() *memOverrideRepo {
	return &memOverrideRepo{entries: make(map[string]roster.Group)}
}

func (m *memOverrideRepo) Get(_ context.Context, key string) (roster.Group, bool, error) {
	g, ok := m.entries[key]
	return g, ok, nil
}

func (m *memOverrideRepo) Set(_ context.Context, key string, group roster.Group) error {
	m.entries[key] = group
	return nil
}

func (m *memOverrideRepo) ListByMonth(_ context.Context, year, month int) (map[string]roster.Group, error) {
	prefix := roster.OverrideKey(year, month, 0, 0)
	prefix = prefix[:strings.LastIndex(prefix, "-0-0")] + "-"
	out := make(map[string]roster.Group)
	for k, v := range m.entries {
		if strings.HasPrefix(k, prefix) {
			out[k] = v
		}
	}
	return out, nil
}

func TestResolveGroup_DefaultRotation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewRosterService(newMemOverrideRepo())

	// Day 1, slot 0 anchors to A; slots walk the cycle diagonally.
	cases := []struct {
		day, slot int
		want      roster.Group
	}{
		{1, 0, roster.GroupA},
		{1, 1, roster.GroupB},
		{1, 2, roster.GroupC},
		{1, 3, roster.GroupD},
		{2, 0, roster.GroupB},
		{4, 0, roster.GroupD},
		{5, 0, roster.GroupA},
		{5, 3, roster.GroupD},
	}

	for _, c := range cases {
		got, err := svc.ResolveGroup(ctx, 2024, 9, c.day, c.slot)
		require.NoError(t, err)
		assert.Equal(t, c.want, got, "day %d slot %d", c.day, c.slot)
	}
}

func TestResolveGroup_PeriodFourInDay(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewRosterService(newMemOverrideRepo())

	for day := 1; day <= 27; day++ {
		for slot := 0; slot < roster.SlotCount; slot++ {
			a, err := svc.ResolveGroup(ctx, 2024, 9, day, slot)
			require.NoError(t, err)
			b, err := svc.ResolveGroup(ctx, 2024, 9, day+4, slot)
			require.NoError(t, err)
			assert.Equal(t, a, b, "day %d vs %d, slot %d", day, day+4, slot)
		}
	}
}

func TestSetOverride_WinsOverFormula(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewRosterService(newMemOverrideRepo())

	// Formula says day 1 slot 0 is A; override it to D.
	err := svc.SetOverride(ctx, roster.SetOverrideRequest{
		Year: 2024, Month: 9, Day: 1, SlotIndex: 0, Group: "D",
	})
	require.NoError(t, err)

	got, err := svc.ResolveGroup(ctx, 2024, 9, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, roster.GroupD, got)

	// Untouched cells still follow the formula.
	got, err = svc.ResolveGroup(ctx, 2024, 9, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, roster.GroupB, got)
}

func TestSetOverride_NoOpOverrideIsIdempotent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewRosterService(newMemOverrideRepo())

	before, err := svc.ResolveGroup(ctx, 2024, 9, 7, 2)
	require.NoError(t, err)

	// Writing the value the formula would have produced changes nothing.
	err = svc.SetOverride(ctx, roster.SetOverrideRequest{
		Year: 2024, Month: 9, Day: 7, SlotIndex: 2, Group: string(before),
	})
	require.NoError(t, err)

	after, err := svc.ResolveGroup(ctx, 2024, 9, 7, 2)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestSetOverride_LastWriteWins(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewRosterService(newMemOverrideRepo())

	for _, g := range []string{"B", "C", "A"} {
		err := svc.SetOverride(ctx, roster.SetOverrideRequest{
			Year: 2024, Month: 9, Day: 15, SlotIndex: 1, Group: g,
		})
		require.NoError(t, err)
	}

	got, err := svc.ResolveGroup(ctx, 2024, 9, 15, 1)
	require.NoError(t, err)
	assert.Equal(t, roster.GroupA, got)
}

func TestSetOverride_RejectsBadInput(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewRosterService(newMemOverrideRepo())

	err := svc.SetOverride(ctx, roster.SetOverrideRequest{
		Year: 2024, Month: 9, Day: 1, SlotIndex: 0, Group: "E",
	})
	assert.Error(t, err)

	err = svc.SetOverride(ctx, roster.SetOverrideRequest{
		Year: 2024, Month: 12, Day: 1, SlotIndex: 0, Group: "A",
	})
	assert.Error(t, err)
}

func TestShiftTypeFor_InvertsDayAssignment(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewRosterService(newMemOverrideRepo())

	// October 7th 2024: baseIndex (7-1)%4 = 2, so slot 0 (PAGI) = C,
	// slot 1 (MALAM) = D, slot 2 (SORE) = A, slot 3 (LIBUR) = B.
	day := time.Date(2024, time.October, 7, 12, 0, 0, 0, time.UTC)

	typ, err := svc.ShiftTypeFor(ctx, day, roster.GroupC)
	require.NoError(t, err)
	assert.Equal(t, shift.TypePagi, typ)

	typ, err = svc.ShiftTypeFor(ctx, day, roster.GroupD)
	require.NoError(t, err)
	assert.Equal(t, shift.TypeMalam, typ)

	typ, err = svc.ShiftTypeFor(ctx, day, roster.GroupB)
	require.NoError(t, err)
	assert.Equal(t, shift.TypeLibur, typ)
}

func TestMonthRoster_AppliesOverrides(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewRosterService(newMemOverrideRepo())

	err := svc.SetOverride(ctx, roster.SetOverrideRequest{
		Year: 2024, Month: 9, Day: 3, SlotIndex: 0, Group: "A",
	})
	require.NoError(t, err)

	resp, err := svc.MonthRoster(ctx, 2024, 9)
	require.NoError(t, err)
	assert.Equal(t, 31, resp.Days) // October
	require.Len(t, resp.Slots, 4)

	pagi := resp.Slots[0]
	assert.Equal(t, "PAGI", pagi.ShiftType)
	assert.Equal(t, "A", pagi.Groups[0]) // day 1, formula
	assert.Equal(t, "A", pagi.Groups[2]) // day 3, overridden (formula says C)
	assert.Equal(t, "D", pagi.Groups[3]) // day 4, formula
}
