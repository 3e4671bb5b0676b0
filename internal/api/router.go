package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HospitalBookingService/internal/api/handlers"
	confirmBookingHandler "github.com/m04kA/SMC-HospitalBookingService/internal/api/handlers/confirm_booking"
	createCalendarSessionHandler "github.com/m04kA/SMC-HospitalBookingService/internal/api/handlers/create_calendar_session"
	exportPassPDFHandler "github.com/m04kA/SMC-HospitalBookingService/internal/api/handlers/export_pass_pdf"
	exportPassQRHandler "github.com/m04kA/SMC-HospitalBookingService/internal/api/handlers/export_pass_qr"
	exportPriceListHandler "github.com/m04kA/SMC-HospitalBookingService/internal/api/handlers/export_price_list"
	getCalendarSessionHandler "github.com/m04kA/SMC-HospitalBookingService/internal/api/handlers/get_calendar_session"
	getHospitalHandler "github.com/m04kA/SMC-HospitalBookingService/internal/api/handlers/get_hospital"
	getHospitalFiltersHandler "github.com/m04kA/SMC-HospitalBookingService/internal/api/handlers/get_hospital_filters"
	listHospitalsHandler "github.com/m04kA/SMC-HospitalBookingService/internal/api/handlers/list_hospitals"
	updateCalendarSessionHandler "github.com/m04kA/SMC-HospitalBookingService/internal/api/handlers/update_calendar_session"
	"github.com/m04kA/SMC-HospitalBookingService/internal/api/middleware"
)

// Handlers обработчики всех маршрутов API
type Handlers struct {
	ListHospitals         *listHospitalsHandler.Handler
	GetHospitalFilters    *getHospitalFiltersHandler.Handler
	GetHospital           *getHospitalHandler.Handler
	ExportPriceList       *exportPriceListHandler.Handler
	CreateCalendarSession *createCalendarSessionHandler.Handler
	GetCalendarSession    *getCalendarSessionHandler.Handler
	UpdateCalendarSession *updateCalendarSessionHandler.Handler
	ConfirmBooking        *confirmBookingHandler.Handler
	ExportPassPDF         *exportPassPDFHandler.Handler
	ExportPassQR          *exportPassQRHandler.Handler
}

// Options общие настройки роутера
type Options struct {
	Logger         middleware.Logger
	Metrics        middleware.HTTPMetrics // nil - метрики выключены
	MetricsPath    string
	MetricsHandler http.Handler
}

const (
	msgRouteNotFound    = "route not found"
	msgMethodNotAllowed = "method not allowed"
)

// NewRouter регистрирует маршруты /api/v1, /health и, если включены, метрики.
// X-Request-ID выставляется до маршрутизации и попадает в любой ответ, включая 404/405.
func NewRouter(h *Handlers, opts Options) http.Handler {
	r := mux.NewRouter()

	// Метрики снаружи recovery: запрос с паникой учитывается как 500
	var chain []mux.MiddlewareFunc
	if opts.Metrics != nil {
		chain = append(chain, middleware.MetricsMiddleware(opts.Metrics))
	}
	chain = append(chain, middleware.Recovery(opts.Logger))
	r.Use(chain...)

	// Ненайденные маршруты не проходят через r.Use
	r.NotFoundHandler = wrap(http.HandlerFunc(notFound), chain)
	r.MethodNotAllowedHandler = wrap(http.HandlerFunc(methodNotAllowed), chain)

	if opts.MetricsHandler != nil && opts.MetricsPath != "" {
		r.Handle(opts.MetricsPath, opts.MetricsHandler).Methods(http.MethodGet)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Каталог больниц ---
	// /filters регистрируется раньше /{hospitalId}
	api.HandleFunc("/hospitals", h.ListHospitals.Handle).Methods(http.MethodGet)
	api.HandleFunc("/hospitals/filters", h.GetHospitalFilters.Handle).Methods(http.MethodGet)
	api.HandleFunc("/hospitals/{hospitalId}", h.GetHospital.Handle).Methods(http.MethodGet)
	api.HandleFunc("/hospitals/{hospitalId}/price-list.xlsx", h.ExportPriceList.Handle).Methods(http.MethodGet)

	// --- Календарь ---
	api.HandleFunc("/calendar-sessions", h.CreateCalendarSession.Handle).Methods(http.MethodPost)
	api.HandleFunc("/calendar-sessions/{sessionId}", h.GetCalendarSession.Handle).Methods(http.MethodGet)
	api.HandleFunc("/calendar-sessions/{sessionId}/navigate", h.UpdateCalendarSession.Navigate).Methods(http.MethodPost)
	api.HandleFunc("/calendar-sessions/{sessionId}/date", h.UpdateCalendarSession.SelectDate).Methods(http.MethodPost)
	api.HandleFunc("/calendar-sessions/{sessionId}/time", h.UpdateCalendarSession.SelectTime).Methods(http.MethodPost)
	api.HandleFunc("/calendar-sessions/{sessionId}/service", h.UpdateCalendarSession.SelectService).Methods(http.MethodPost)

	// --- Подтверждение и талон ---
	api.HandleFunc("/bookings/confirm", h.ConfirmBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/passes/pdf", h.ExportPassPDF.Handle).Methods(http.MethodPost)
	api.HandleFunc("/passes/qr", h.ExportPassQR.Handle).Methods(http.MethodPost)

	return middleware.RequestID(r)
}

func wrap(h http.Handler, chain []mux.MiddlewareFunc) http.Handler {
	for i := len(chain) - 1; i >= 0; i-- {
		h = chain[i](h)
	}
	return h
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	handlers.RespondNotFound(w, msgRouteNotFound)
}

func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	handlers.RespondError(w, http.StatusMethodNotAllowed, msgMethodNotAllowed)
}
