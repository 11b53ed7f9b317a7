package http

import (
	"encoding/json"
	"net/http"

	"github.com/presensikita/presensi-backend-go/internal/domain/settings"
	"github.com/presensikita/presensi-backend-go/internal/handler/http/response"
)

type SettingsHandler interface {
	GetGeofence(w http.ResponseWriter, r *http.Request)
	UpdateGeofence(w http.ResponseWriter, r *http.Request)
}

type settingsHandlerImpl struct {
	settingsService settings.SettingsService
}

func NewSettingsHandler(settingsService settings.SettingsService) SettingsHandler {
	return &settingsHandlerImpl{
		settingsService: settingsService,
	}
}

// GetGeofence implements SettingsHandler.
func (h *settingsHandlerImpl) GetGeofence(w http.ResponseWriter, r *http.Request) {
	fence, err := h.settingsService.GetOfficeGeofence(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, toGeofenceResponse(fence))
}

// UpdateGeofence implements SettingsHandler.
func (h *settingsHandlerImpl) UpdateGeofence(w http.ResponseWriter, r *http.Request) {
	var req settings.UpdateGeofenceRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	fence, err := h.settingsService.UpdateOfficeGeofence(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Office geofence updated", toGeofenceResponse(fence))
}

func toGeofenceResponse(fence settings.OfficeGeofence) settings.GeofenceResponse {
	return settings.GeofenceResponse{
		Latitude:     fence.Latitude,
		Longitude:    fence.Longitude,
		RadiusMeters: fence.RadiusMeters,
	}
}
