package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/staffsync/attendance-backend-go/internal/handler/http/response"
	"github.com/staffsync/attendance-backend-go/internal/pkg/validator"
	"github.com/staffsync/attendance-backend-go/internal/service/geofence"
)

type GeofenceHandler interface {
	Check(w http.ResponseWriter, r *http.Request)
}

type geofenceHandlerImpl struct {
	geofenceService geofence.GeofenceService
}

func NewGeofenceHandler(geofenceService geofence.GeofenceService) GeofenceHandler {
	return &geofenceHandlerImpl{
		geofenceService: geofenceService,
	}
}

// Check implements GeofenceHandler.
func (h *geofenceHandlerImpl) Check(w http.ResponseWriter, r *http.Request) {
	companyID := chi.URLParam(r, "companyID")
	branchID := r.URL.Query().Get("branch_id")

	var errs validator.ValidationErrors

	if validator.IsEmpty(companyID) {
		errs = append(errs, validator.ValidationError{
			Field:   "company_id",
			Message: "company_id is required",
		})
	}

	userLat, ok := validator.ParseFloat(r.URL.Query().Get("user_lat"))
	if !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "user_lat",
			Message: "user_lat must be a decimal coordinate",
		})
	}

	userLon, ok := validator.ParseFloat(r.URL.Query().Get("user_lon"))
	if !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "user_lon",
			Message: "user_lon must be a decimal coordinate",
		})
	}

	if len(errs) > 0 {
		response.HandleError(w, errs)
		return
	}

	result, err := h.geofenceService.Check(r.Context(), companyID, branchID, userLat, userLon)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
