package update_calendar_session

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HospitalBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-HospitalBookingService/internal/service/calendar"
	"github.com/m04kA/SMC-HospitalBookingService/internal/service/calendar/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDirection   = "direction must be prev or next"
	msgInvalidDate        = "date must be in YYYY-MM-DD format"
	msgInvalidTime        = "time must be like 03:00 PM"
	msgServiceRequired    = "serviceName is required"
	msgSessionNotFound    = "Calendar session not found"
	msgServiceNotFound    = "Service not found"
	msgHospitalNotFound   = "Hospital not found"
)

// Handler переходы календаря. Недопустимый переход (чужой месяц, неизвестный слот)
// возвращает 200 с неизмененным состоянием.
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

// Navigate POST /api/v1/calendar-sessions/{sessionId}/navigate
func (h *Handler) Navigate(w http.ResponseWriter, r *http.Request) {
	var req NavigateRequest
	h.handle(w, r, "navigate", &req, msgInvalidDirection,
		func(ctx context.Context, id string) (*models.SessionResponse, error) {
			return h.service.Navigate(ctx, id, req.Direction)
		})
}

// SelectDate POST /api/v1/calendar-sessions/{sessionId}/date
func (h *Handler) SelectDate(w http.ResponseWriter, r *http.Request) {
	var req SelectDateRequest
	h.handle(w, r, "date", &req, msgInvalidDate,
		func(ctx context.Context, id string) (*models.SessionResponse, error) {
			return h.service.SelectDate(ctx, id, req.Date)
		})
}

// SelectTime POST /api/v1/calendar-sessions/{sessionId}/time
func (h *Handler) SelectTime(w http.ResponseWriter, r *http.Request) {
	var req SelectTimeRequest
	h.handle(w, r, "time", &req, msgInvalidTime,
		func(ctx context.Context, id string) (*models.SessionResponse, error) {
			return h.service.SelectTime(ctx, id, req.Time)
		})
}

// SelectService POST /api/v1/calendar-sessions/{sessionId}/service
func (h *Handler) SelectService(w http.ResponseWriter, r *http.Request) {
	var req SelectServiceRequest
	h.handle(w, r, "service", &req, msgServiceRequired,
		func(ctx context.Context, id string) (*models.SessionResponse, error) {
			return h.service.SelectService(ctx, id, req.ServiceName)
		})
}

func (h *Handler) handle(
	w http.ResponseWriter,
	r *http.Request,
	action string,
	req interface{},
	msgInvalidInput string,
	call func(ctx context.Context, id string) (*models.SessionResponse, error),
) {
	sessionID := mux.Vars(r)["sessionId"]

	if err := handlers.DecodeJSON(r, req); err != nil {
		h.logger.Warn("POST /calendar-sessions/{id}/%s - Invalid request body: %v", action, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	session, err := call(r.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, calendar.ErrInvalidInput):
			h.logger.Warn("POST /calendar-sessions/{id}/%s - Invalid input: session_id=%s, error=%v", action, sessionID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, calendar.ErrSessionNotFound):
			h.logger.Warn("POST /calendar-sessions/{id}/%s - Session not found: session_id=%s", action, sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, calendar.ErrServiceNotFound):
			h.logger.Warn("POST /calendar-sessions/{id}/%s - Service not found: session_id=%s", action, sessionID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, calendar.ErrHospitalNotFound):
			h.logger.Warn("POST /calendar-sessions/{id}/%s - Hospital not found: session_id=%s", action, sessionID)
			handlers.RespondNotFound(w, msgHospitalNotFound)

		default:
			h.logger.Error("POST /calendar-sessions/{id}/%s - Failed: session_id=%s, error=%v", action, sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /calendar-sessions/{id}/%s - OK: session_id=%s, canProceed=%t", action, sessionID, session.CanProceed)
	handlers.RespondJSON(w, http.StatusOK, session)
}
