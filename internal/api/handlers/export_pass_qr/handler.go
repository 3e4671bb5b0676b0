package export_pass_qr

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HospitalBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-HospitalBookingService/internal/service/passes"
)

const (
	contentTypePNG = "image/png"

	msgInvalidRequestBody = "invalid request body"
	msgBookingDataMissing = "Booking data is required"
	msgRenderFailed       = "Failed to generate QR code"
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

// Handle POST /api/v1/passes/qr
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req handlers.PassRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /passes/qr - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.BookingData == nil {
		h.logger.Warn("POST /passes/qr - Booking data is missing")
		handlers.RespondBadRequest(w, msgBookingDataMissing)
		return
	}

	record := req.BookingData.ToDomain()

	data, err := h.service.QRCode(r.Context(), record)
	if err != nil {
		switch {
		case errors.Is(err, passes.ErrInvalidInput):
			h.logger.Warn("POST /passes/qr - Invalid booking data: %v", err)
			handlers.RespondBadRequest(w, msgBookingDataMissing)

		default:
			h.logger.Error("POST /passes/qr - QR generation error: booking_id=%s, error=%v", record.BookingID, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgRenderFailed)
		}
		return
	}

	h.logger.Info("POST /passes/qr - QR code generated: booking_id=%s", record.BookingID)
	handlers.RespondFile(w, contentTypePNG, "", data)
}
