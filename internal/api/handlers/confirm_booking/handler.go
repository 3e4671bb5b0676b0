package confirm_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HospitalBookingService/internal/api/handlers"
	confirmBooking "github.com/m04kA/SMC-HospitalBookingService/internal/usecase/confirm_booking"
)

const (
	msgInvalidRequestBody  = "invalid request body"
	msgInvalidInput        = "Please fill in all required fields"
	msgSessionNotFound     = "Calendar session not found"
	msgHospitalNotFound    = "Hospital not found"
	msgSelectionIncomplete = "Please select both date and time"
)

type Handler struct {
	useCase ConfirmBookingUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ConfirmBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/confirm - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, confirmBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings/confirm - Invalid input: session_id=%s, error=%v", req.SessionID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, confirmBooking.ErrSessionNotFound):
			h.logger.Warn("POST /bookings/confirm - Session not found: session_id=%s", req.SessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, confirmBooking.ErrHospitalNotFound):
			h.logger.Warn("POST /bookings/confirm - Hospital not found: session_id=%s", req.SessionID)
			handlers.RespondNotFound(w, msgHospitalNotFound)

		case errors.Is(err, confirmBooking.ErrSelectionIncomplete):
			h.logger.Warn("POST /bookings/confirm - Selection incomplete: session_id=%s", req.SessionID)
			handlers.RespondConflict(w, msgSelectionIncomplete)

		default:
			h.logger.Error("POST /bookings/confirm - Failed to confirm booking: session_id=%s, error=%v", req.SessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/confirm - Booking confirmed: booking_id=%s, session_id=%s",
		result.Record.BookingID, req.SessionID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
