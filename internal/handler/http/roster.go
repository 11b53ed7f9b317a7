package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/presensikita/presensi-backend-go/internal/domain/roster"
	"github.com/presensikita/presensi-backend-go/internal/handler/http/response"
)

type RosterHandler interface {
	MonthRoster(w http.ResponseWriter, r *http.Request)
	SetOverride(w http.ResponseWriter, r *http.Request)
}

type rosterHandlerImpl struct {
	rosterService roster.RosterService
}

func NewRosterHandler(rosterService roster.RosterService) RosterHandler {
	return &rosterHandlerImpl{
		rosterService: rosterService,
	}
}

// MonthRoster implements RosterHandler. Month is zero-based, matching
// the override key format.
func (h *rosterHandlerImpl) MonthRoster(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	year, err := strconv.Atoi(q.Get("year"))
	if err != nil {
		response.BadRequest(w, "Query parameter 'year' is required", nil)
		return
	}
	month, err := strconv.Atoi(q.Get("month"))
	if err != nil {
		response.BadRequest(w, "Query parameter 'month' is required (zero-based)", nil)
		return
	}

	result, err := h.rosterService.MonthRoster(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// SetOverride implements RosterHandler.
func (h *rosterHandlerImpl) SetOverride(w http.ResponseWriter, r *http.Request) {
	var req roster.SetOverrideRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.rosterService.SetOverride(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Roster override saved", nil)
}
