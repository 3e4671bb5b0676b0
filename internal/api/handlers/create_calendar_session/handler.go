package create_calendar_session

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HospitalBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-HospitalBookingService/internal/service/calendar"
	"github.com/m04kA/SMC-HospitalBookingService/internal/service/calendar/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgHospitalRequired   = "hospitalId is required"
	msgHospitalNotFound   = "Hospital not found"
	msgServiceNotFound    = "Service not found"
)

type Handler struct {
	service CalendarService
	logger  Logger
}

func NewHandler(service CalendarService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/calendar-sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSessionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /calendar-sessions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	session, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, calendar.ErrInvalidInput):
			h.logger.Warn("POST /calendar-sessions - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgHospitalRequired)

		case errors.Is(err, calendar.ErrHospitalNotFound):
			h.logger.Warn("POST /calendar-sessions - Hospital not found: hospital_id=%s", req.HospitalID)
			handlers.RespondNotFound(w, msgHospitalNotFound)

		case errors.Is(err, calendar.ErrServiceNotFound):
			h.logger.Warn("POST /calendar-sessions - Service not found: hospital_id=%s", req.HospitalID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		default:
			h.logger.Error("POST /calendar-sessions - Failed to create session: hospital_id=%s, error=%v", req.HospitalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /calendar-sessions - Session created: session_id=%s, hospital_id=%s", session.ID, session.HospitalID)
	handlers.RespondJSON(w, http.StatusCreated, session)
}
