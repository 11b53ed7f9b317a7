package settings

import "context"

// SettingsService exposes the office geofence configuration: a stored
// setting when present, otherwise the deployment default.
type SettingsService interface {
	GetOfficeGeofence(ctx context.Context) (OfficeGeofence, error)
	UpdateOfficeGeofence(ctx context.Context, req UpdateGeofenceRequest) (OfficeGeofence, error)
}
