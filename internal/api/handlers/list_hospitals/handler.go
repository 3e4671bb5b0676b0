package list_hospitals

import (
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-HospitalBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-HospitalBookingService/internal/domain"
	"github.com/m04kA/SMC-HospitalBookingService/internal/service/hospitals"
)

const (
	msgInvalidMinRating = "minRating must be a number between 0 and 5"
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

// Handle GET /api/v1/hospitals?q=&location=&specialty=&minRating=
// q сравнивается как есть, пробелы по краям значимы
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	criteria := domain.HospitalFilter{
		Query:     query.Get("q"),
		Location:  query.Get("location"),
		Specialty: query.Get("specialty"),
	}

	if raw := query.Get("minRating"); raw != "" {
		rating, err := strconv.ParseFloat(raw, 64)
		if err != nil || !hospitals.ValidRating(rating) {
			h.logger.Warn("GET /hospitals - Invalid minRating: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidMinRating)
			return
		}
		criteria.MinRating = rating
	}

	result, total, err := h.service.List(r.Context(), criteria)
	if err != nil {
		h.logger.Error("GET /hospitals - Failed to list hospitals: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /hospitals - Showing %d of %d hospitals", len(result), total)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(result, total))
}
