package settings

import (
	"time"

	"github.com/presensikita/presensi-backend-go/internal/pkg/geo"
)

// OfficeGeofence is the circular admission zone every presence capture
// is validated against. Mutated only through the settings flow.
type OfficeGeofence struct {
	Latitude     float64
	Longitude    float64
	RadiusMeters float64
	UpdatedAt    time.Time
}

// Fence converts the stored setting into a geofence.
func (o OfficeGeofence) Fence() geo.Fence {
	return geo.Fence{
		Center:       geo.Point{Latitude: o.Latitude, Longitude: o.Longitude},
		RadiusMeters: o.RadiusMeters,
	}
}
