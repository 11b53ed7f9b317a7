package settings

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/presensikita/presensi-backend-go/internal/config"
	"github.com/presensikita/presensi-backend-go/internal/domain/settings"
)

type SettingsServiceImpl struct {
	repo     settings.SettingsRepository
	fallback settings.OfficeGeofence
}

// NewSettingsService wires the settings store with the deployment
// default used until an admin saves a geofence.
func NewSettingsService(repo settings.SettingsRepository, office config.OfficeConfig) *SettingsServiceImpl {
	return &SettingsServiceImpl{
		repo: repo,
		fallback: settings.OfficeGeofence{
			Latitude:     office.Latitude,
			Longitude:    office.Longitude,
			RadiusMeters: office.RadiusMeters,
		},
	}
}

// GetOfficeGeofence implements settings.SettingsService.
func (s *SettingsServiceImpl) GetOfficeGeofence(ctx context.Context) (settings.OfficeGeofence, error) {
	fence, err := s.repo.GetOfficeGeofence(ctx)
	if err != nil {
		if errors.Is(err, settings.ErrSettingsNotFound) {
			return s.fallback, nil
		}
		return settings.OfficeGeofence{}, fmt.Errorf("failed to load office geofence: %w", err)
	}
	return fence, nil
}

// UpdateOfficeGeofence implements settings.SettingsService.
func (s *SettingsServiceImpl) UpdateOfficeGeofence(ctx context.Context, req settings.UpdateGeofenceRequest) (settings.OfficeGeofence, error) {
	if err := req.Validate(); err != nil {
		return settings.OfficeGeofence{}, err
	}

	fence := settings.OfficeGeofence{
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		RadiusMeters: req.RadiusMeters,
		UpdatedAt:    time.Now().UTC(),
	}

	if err := s.repo.UpsertOfficeGeofence(ctx, fence); err != nil {
		return settings.OfficeGeofence{}, fmt.Errorf("failed to store office geofence: %w", err)
	}

	slog.Info("office geofence updated",
		"latitude", fence.Latitude,
		"longitude", fence.Longitude,
		"radius_meters", fence.RadiusMeters,
	)

	return fence, nil
}
