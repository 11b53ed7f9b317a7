package roster

import "context"

// OverrideRepository is the injected key-value store for manual roster
// edits. Keys are built with OverrideKey; absent entries fall back to
// the default rotation formula.
type OverrideRepository interface {
	// Get returns the override for a key, reporting whether one exists.
	Get(ctx context.Context, key string) (Group, bool, error)

	// Set upserts an override. Last write wins; concurrent admin edits to
	// the same key are an accepted race (roster edits are human-paced).
	Set(ctx context.Context, key string, group Group) error

	// ListByMonth returns all overrides for a zero-based month keyed by
	// their composite key.
	ListByMonth(ctx context.Context, year, monthZeroBased int) (map[string]Group, error)
}
