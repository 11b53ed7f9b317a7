package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/presensikita/presensi-backend-go/internal/domain/roster"
	"github.com/presensikita/presensi-backend-go/internal/pkg/database"
)

// rosterOverrideRepository stores manual roster edits keyed by the
// composite "year-month-day-slot" string the resolver builds.
type rosterOverrideRepository struct {
	db *database.DB
}

func NewRosterOverrideRepository(db *database.DB) roster.OverrideRepository {
	return &rosterOverrideRepository{db: db}
}

// Get implements roster.OverrideRepository.
func (r *rosterOverrideRepository) Get(ctx context.Context, key string) (roster.Group, bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT group_name
		FROM roster_overrides
		WHERE override_key = $1
	`

	var group roster.Group
	err := q.QueryRow(ctx, query, key).Scan(&group)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get roster override: %w", err)
	}

	return group, true, nil
}

// Set implements roster.OverrideRepository.
func (r *rosterOverrideRepository) Set(ctx context.Context, key string, group roster.Group) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO roster_overrides (override_key, group_name)
		VALUES ($1, $2)
		ON CONFLICT (override_key)
		DO UPDATE SET group_name = EXCLUDED.group_name, updated_at = NOW()
	`

	if _, err := q.Exec(ctx, query, key, group); err != nil {
		return fmt.Errorf("failed to set roster override: %w", err)
	}

	return nil
}

// ListByMonth implements roster.OverrideRepository.
func (r *rosterOverrideRepository) ListByMonth(ctx context.Context, year, monthZeroBased int) (map[string]roster.Group, error) {
	q := GetQuerier(ctx, r.db)

	// Keys share a "year-month-" prefix, so a LIKE scan covers the month.
	query := `
		SELECT override_key, group_name
		FROM roster_overrides
		WHERE override_key LIKE $1
	`

	rows, err := q.Query(ctx, query, fmt.Sprintf("%d-%d-%%", year, monthZeroBased))
	if err != nil {
		return nil, fmt.Errorf("failed to list roster overrides: %w", err)
	}
	defer rows.Close()

	out := make(map[string]roster.Group)
	for rows.Next() {
		var key string
		var group roster.Group
		if err := rows.Scan(&key, &group); err != nil {
			return nil, fmt.Errorf("failed to scan roster override: %w", err)
		}
		out[key] = group
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read roster overrides: %w", err)
	}

	return out, nil
}
