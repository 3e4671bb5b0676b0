package get_hospital

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HospitalBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-HospitalBookingService/internal/service/hospitals"
)

const (
	msgNotFound = "Hospital not found"
)

type Handler struct {
	service HospitalService
	logger  Logger
}

func NewHandler(service HospitalService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/hospitals/{hospitalId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hospitalID := mux.Vars(r)["hospitalId"]

	hospital, err := h.service.GetByID(r.Context(), hospitalID)
	if err != nil {
		switch {
		case errors.Is(err, hospitals.ErrHospitalNotFound):
			h.logger.Warn("GET /hospitals/{id} - Hospital not found: hospital_id=%s", hospitalID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /hospitals/{id} - Failed to get hospital: hospital_id=%s, error=%v", hospitalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /hospitals/{id} - Hospital retrieved successfully: hospital_id=%s", hospitalID)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(hospital))
}
