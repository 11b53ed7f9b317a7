package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/presensikita/presensi-backend-go/internal/domain/settings"
	"github.com/presensikita/presensi-backend-go/internal/pkg/database"
)

// geofence is stored as a single named row so the setting stays unique.
const officeGeofenceKey = "office_geofence"

type settingsRepository struct {
	db *database.DB
}

func NewSettingsRepository(db *database.DB) settings.SettingsRepository {
	return &settingsRepository{db: db}
}

// GetOfficeGeofence implements settings.SettingsRepository.
func (r *settingsRepository) GetOfficeGeofence(ctx context.Context) (settings.OfficeGeofence, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT latitude, longitude, radius_meters, updated_at
		FROM app_settings
		WHERE setting_key = $1
	`

	var fence settings.OfficeGeofence
	err := q.QueryRow(ctx, query, officeGeofenceKey).Scan(
		&fence.Latitude, &fence.Longitude, &fence.RadiusMeters, &fence.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return settings.OfficeGeofence{}, settings.ErrSettingsNotFound
		}
		return settings.OfficeGeofence{}, fmt.Errorf("failed to get office geofence: %w", err)
	}

	return fence, nil
}

// UpsertOfficeGeofence implements settings.SettingsRepository.
func (r *settingsRepository) UpsertOfficeGeofence(ctx context.Context, fence settings.OfficeGeofence) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO app_settings (setting_key, latitude, longitude, radius_meters)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (setting_key)
		DO UPDATE SET
			latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude,
			radius_meters = EXCLUDED.radius_meters,
			updated_at = NOW()
	`

	if _, err := q.Exec(ctx, query, officeGeofenceKey, fence.Latitude, fence.Longitude, fence.RadiusMeters); err != nil {
		return fmt.Errorf("failed to upsert office geofence: %w", err)
	}

	return nil
}
