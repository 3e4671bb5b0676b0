package get_hospital_filters

import (
	"net/http"

	"github.com/m04kA/SMC-HospitalBookingService/internal/api/handlers"
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

// Handle GET /api/v1/hospitals/filters
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	options, err := h.service.Options(r.Context())
	if err != nil {
		h.logger.Error("GET /hospitals/filters - Failed to get filter options: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /hospitals/filters - %d locations, %d specialties",
		len(options.Locations), len(options.Specialties))
	handlers.RespondJSON(w, http.StatusOK, FromDomain(options))
}
