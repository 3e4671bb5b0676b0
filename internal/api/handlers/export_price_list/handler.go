package export_price_list

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HospitalBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-HospitalBookingService/internal/service/passes"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	msgNotFound     = "Hospital not found"
	msgRenderFailed = "Failed to generate price list"
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

// Handle GET /api/v1/hospitals/{hospitalId}/price-list.xlsx
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hospitalID := mux.Vars(r)["hospitalId"]

	data, err := h.service.PriceList(r.Context(), hospitalID)
	if err != nil {
		switch {
		case errors.Is(err, passes.ErrHospitalNotFound):
			h.logger.Warn("GET /hospitals/{id}/price-list.xlsx - Hospital not found: hospital_id=%s", hospitalID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, passes.ErrRenderFailed):
			h.logger.Error("GET /hospitals/{id}/price-list.xlsx - Render failed: hospital_id=%s, error=%v", hospitalID, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgRenderFailed)

		default:
			h.logger.Error("GET /hospitals/{id}/price-list.xlsx - Failed: hospital_id=%s, error=%v", hospitalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /hospitals/{id}/price-list.xlsx - Price list exported: hospital_id=%s", hospitalID)
	handlers.RespondFile(w, contentTypeXLSX, fmt.Sprintf("price-list-%s.xlsx", hospitalID), data)
}
