package settings

import "context"

type SettingsRepository interface {
	// GetOfficeGeofence returns the stored geofence setting, or
	// ErrSettingsNotFound when nothing has been saved yet.
	GetOfficeGeofence(ctx context.Context) (OfficeGeofence, error)

	// UpsertOfficeGeofence stores the geofence setting.
	UpsertOfficeGeofence(ctx context.Context, fence OfficeGeofence) error
}
