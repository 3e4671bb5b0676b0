package export_pass_pdf

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/m04kA/SMC-HospitalBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-HospitalBookingService/internal/service/passes"
)

const (
	contentTypePDF = "application/pdf"

	msgInvalidRequestBody = "invalid request body"
	msgBookingDataMissing = "Booking data is required"
	msgRenderFailed       = "Failed to generate PDF"
)

type Handler struct {
	service PassService
	logger  Logger
}

func NewHandler(service PassService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/passes/pdf
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req handlers.PassRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /passes/pdf - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.BookingData == nil {
		h.logger.Warn("POST /passes/pdf - Booking data is missing")
		handlers.RespondBadRequest(w, msgBookingDataMissing)
		return
	}

	record := req.BookingData.ToDomain()

	data, err := h.service.PDF(r.Context(), record)
	if err != nil {
		switch {
		case errors.Is(err, passes.ErrInvalidInput):
			h.logger.Warn("POST /passes/pdf - Invalid booking data: %v", err)
			handlers.RespondBadRequest(w, msgBookingDataMissing)

		default:
			// Повторных попыток нет: ошибка сразу уходит клиенту
			h.logger.Error("POST /passes/pdf - PDF generation error: booking_id=%s, error=%v", record.BookingID, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgRenderFailed)
		}
		return
	}

	h.logger.Info("POST /passes/pdf - Pass generated: booking_id=%s", record.BookingID)
	handlers.RespondFile(w, contentTypePDF, fmt.Sprintf("appointment-pass-%s.pdf", record.BookingID), data)
}
