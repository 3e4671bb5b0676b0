package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

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
	"github.com/m04kA/SMC-HospitalBookingService/internal/infra/document"
	hospitalRepo "github.com/m04kA/SMC-HospitalBookingService/internal/infra/storage/hospital"
	sessionRepo "github.com/m04kA/SMC-HospitalBookingService/internal/infra/storage/session"
	calendarService "github.com/m04kA/SMC-HospitalBookingService/internal/service/calendar"
	calendarModels "github.com/m04kA/SMC-HospitalBookingService/internal/service/calendar/models"
	hospitalsService "github.com/m04kA/SMC-HospitalBookingService/internal/service/hospitals"
	"github.com/m04kA/SMC-HospitalBookingService/internal/service/passes"
	confirmBookingUC "github.com/m04kA/SMC-HospitalBookingService/internal/usecase/confirm_booking"
	"github.com/m04kA/SMC-HospitalBookingService/pkg/clock"
	"github.com/m04kA/SMC-HospitalBookingService/pkg/logger"
	"github.com/m04kA/SMC-HospitalBookingService/pkg/metrics"
)

var testNow = time.Date(2025, time.October, 1, 10, 0, 0, 0, time.UTC)

func newTestRouter(t *testing.T) (http.Handler, *metrics.Metrics) {
	t.Helper()

	log := logger.Nop()
	m := metrics.New("test")
	clk := clock.Fixed{T: testNow}

	hospitalSvc := hospitalsService.NewService(hospitalRepo.NewSeededRepository(), log)
	calendarSvc := calendarService.NewService(
		sessionRepo.NewMemoryRepository(time.Hour), hospitalSvc, clk, calendarService.UUIDGenerator{}, m, log)
	passSvc := passes.NewService(
		document.NewQREncoder(128),
		document.NewPassRenderer(),
		document.NewPriceListWriter(),
		hospitalSvc,
		clk,
		m,
		log,
		passes.Config{PublicURL: "http://localhost:8080", Currency: "SAR"},
	)
	confirmUC := confirmBookingUC.NewUseCase(
		calendarSvc, hospitalSvc, passSvc, confirmBookingUC.NewBookingIDGenerator("MAVEN-", nil), m, log)

	router := NewRouter(&Handlers{
		ListHospitals:         listHospitalsHandler.NewHandler(hospitalSvc, log),
		GetHospitalFilters:    getHospitalFiltersHandler.NewHandler(hospitalSvc, log),
		GetHospital:           getHospitalHandler.NewHandler(hospitalSvc, log),
		ExportPriceList:       exportPriceListHandler.NewHandler(passSvc, log),
		CreateCalendarSession: createCalendarSessionHandler.NewHandler(calendarSvc, log),
		GetCalendarSession:    getCalendarSessionHandler.NewHandler(calendarSvc, log),
		UpdateCalendarSession: updateCalendarSessionHandler.NewHandler(calendarSvc, log),
		ConfirmBooking:        confirmBookingHandler.NewHandler(confirmUC, log),
		ExportPassPDF:         exportPassPDFHandler.NewHandler(passSvc, log),
		ExportPassQR:          exportPassQRHandler.NewHandler(passSvc, log),
	}, Options{
		Logger:         log,
		Metrics:        m,
		MetricsPath:    "/metrics",
		MetricsHandler: m.Handler(),
	})

	return router, m
}

func do(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestRouter_ListHospitals(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := do(t, router, http.MethodGet, "/api/v1/hospitals?q=fahd", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[listHospitalsHandler.ListResponse](t, rec)
	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, 6, resp.Total)
	require.Len(t, resp.Hospitals, 1)
	assert.Equal(t, "3", resp.Hospitals[0].ID)

	rec = do(t, router, http.MethodGet, "/api/v1/hospitals?minRating=abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, router, http.MethodGet, "/api/v1/hospitals?minRating=4.5", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	for _, h := range decode[listHospitalsHandler.ListResponse](t, rec).Hospitals {
		assert.GreaterOrEqual(t, h.Rating, 4.5)
	}
}

func TestRouter_ListHospitals_QueryKeepsSpaces(t *testing.T) {
	router, _ := newTestRouter(t)

	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{name: "word with surrounding spaces", query: "%20al%20", wantIDs: []string{"5"}},
		{name: "single space matches every location", query: "%20", wantIDs: []string{"1", "2", "3", "4", "5", "6"}},
		{name: "double space matches nothing", query: "%20%20", wantIDs: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, router, http.MethodGet, "/api/v1/hospitals?q="+tt.query, nil)
			require.Equal(t, http.StatusOK, rec.Code)

			resp := decode[listHospitalsHandler.ListResponse](t, rec)
			ids := make([]string, 0, len(resp.Hospitals))
			for _, h := range resp.Hospitals {
				ids = append(ids, h.ID)
			}
			assert.ElementsMatch(t, tt.wantIDs, ids)
			assert.Equal(t, 6, resp.Total)
		})
	}
}

func TestRouter_Filters(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := do(t, router, http.MethodGet, "/api/v1/hospitals/filters", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[getHospitalFiltersHandler.FiltersResponse](t, rec)
	assert.Equal(t, []string{
		"Dubai, UAE", "Jeddah, Saudi Arabia", "Mecca, Saudi Arabia", "Riyadh, Saudi Arabia",
	}, resp.Locations)
	require.Len(t, resp.RatingOptions, 3)
	assert.Equal(t, "4.5+ Stars", resp.RatingOptions[2].Label)
}

func TestRouter_GetHospital(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := do(t, router, http.MethodGet, "/api/v1/hospitals/3", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	hospital := decode[getHospitalHandler.HospitalResponse](t, rec)
	assert.Equal(t, "King Fahd Medical City", hospital.Name)
	assert.Len(t, hospital.Services, 5)

	rec = do(t, router, http.MethodGet, "/api/v1/hospitals/42", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	errResp := decode[handlers.ErrorResponse](t, rec)
	assert.Equal(t, "Hospital not found", errResp.Message)
}

func TestRouter_PriceList(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := do(t, router, http.MethodGet, "/api/v1/hospitals/1/price-list.xlsx", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "price-list-1.xlsx")
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("PK")))

	rec = do(t, router, http.MethodGet, "/api/v1/hospitals/42/price-list.xlsx", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_BookingFlow(t *testing.T) {
	router, _ := newTestRouter(t)

	// Открываем календарь
	rec := do(t, router, http.MethodPost, "/api/v1/calendar-sessions",
		map[string]string{"hospitalId": "3", "serviceName": "Mental Health Consultation"})
	require.Equal(t, http.StatusCreated, rec.Code)
	session := decode[calendarModels.SessionResponse](t, rec)
	assert.Equal(t, "October 2025", session.Month)
	require.Len(t, session.Days, 42)

	base := "/api/v1/calendar-sessions/" + session.ID

	// Подтверждение без даты и времени
	rec = do(t, router, http.MethodPost, "/api/v1/bookings/confirm",
		map[string]string{"sessionId": session.ID, "patientName": "Sara", "phoneNumber": "0500000000"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Ячейка ноября в сетке октября игнорируется
	rec = do(t, router, http.MethodPost, base+"/date", map[string]string{"date": "2025-11-01"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, decode[calendarModels.SessionResponse](t, rec).SelectedDate)

	rec = do(t, router, http.MethodPost, base+"/date", map[string]string{"date": "2025-10-02"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, router, http.MethodPost, base+"/time", map[string]string{"time": "03:00 PM"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode[calendarModels.SessionResponse](t, rec).CanProceed)

	// Пустое имя пациента
	rec = do(t, router, http.MethodPost, "/api/v1/bookings/confirm",
		map[string]string{"sessionId": session.ID, "patientName": "  ", "phoneNumber": "0500000000"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, router, http.MethodPost, "/api/v1/bookings/confirm",
		map[string]string{"sessionId": session.ID, "patientName": "Sara", "phoneNumber": "0500000000"})
	require.Equal(t, http.StatusOK, rec.Code)
	confirmed := decode[confirmBookingHandler.ConfirmBookingResponse](t, rec)

	data := confirmed.BookingData
	require.NotNil(t, data)
	assert.Regexp(t, `^MAVEN-[A-Z0-9]{8}$`, data.BookingID)
	assert.Equal(t, "King Fahd Medical City", data.HospitalName)
	assert.Equal(t, "October 2, 2025", data.Date)
	assert.Equal(t, "03:00 PM", data.Time)
	assert.Equal(t, 50.0, data.Savings)
	assert.Equal(t, "http://localhost:8080/api/verify-booking/"+data.BookingID, confirmed.Verification.VerificationURL)

	// Экспорт талона
	rec = do(t, router, http.MethodPost, "/api/v1/passes/pdf", map[string]interface{}{"bookingData": data})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="appointment-pass-`+data.BookingID+`.pdf"`, rec.Header().Get("Content-Disposition"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF-")))

	rec = do(t, router, http.MethodPost, "/api/v1/passes/qr", map[string]interface{}{"bookingData": data})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))

	// Метрики
	rec = do(t, router, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "bookings_confirmed_total")
	assert.True(t, strings.Contains(body, `format="pdf"`))
}

func TestRouter_PassWithoutBookingData(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, path := range []string{"/api/v1/passes/pdf", "/api/v1/passes/qr"} {
		rec := do(t, router, http.MethodPost, path, map[string]string{})
		assert.Equal(t, http.StatusBadRequest, rec.Code, path)
		assert.Equal(t, "Booking data is required", decode[handlers.ErrorResponse](t, rec).Message, path)
	}
}

func TestRouter_CalendarErrors(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := do(t, router, http.MethodGet, "/api/v1/calendar-sessions/unknown", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, router, http.MethodPost, "/api/v1/calendar-sessions", map[string]string{"hospitalId": "42"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, router, http.MethodPost, "/api/v1/calendar-sessions", map[string]string{"hospitalId": "1"})
	require.Equal(t, http.StatusCreated, rec.Code)
	id := decode[calendarModels.SessionResponse](t, rec).ID

	rec = do(t, router, http.MethodPost, "/api/v1/calendar-sessions/"+id+"/navigate", map[string]string{"direction": "up"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, router, http.MethodPost, "/api/v1/calendar-sessions/"+id+"/navigate", map[string]string{"direction": "next"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "November 2025", decode[calendarModels.SessionResponse](t, rec).Month)

	rec = do(t, router, http.MethodPost, "/api/v1/calendar-sessions/"+id+"/service", map[string]string{"serviceName": "Teleportation"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_HealthAndRequestID(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := do(t, router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRouter_UnmatchedRequests(t *testing.T) {
	router, _ := newTestRouter(t)

	tests := []struct {
		name   string
		method string
		path   string
		codes  []int
	}{
		{name: "unknown path", method: http.MethodGet, path: "/api/v1/does-not-exist", codes: []int{http.StatusNotFound}},
		{name: "unknown root path", method: http.MethodGet, path: "/nowhere", codes: []int{http.StatusNotFound}},
		{name: "wrong method", method: http.MethodDelete, path: "/api/v1/hospitals", codes: []int{http.StatusNotFound, http.StatusMethodNotAllowed}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, router, tt.method, tt.path, nil)

			assert.Contains(t, tt.codes, rec.Code)
			assert.Len(t, rec.Header().Get("X-Request-ID"), 36)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.Equal(t, rec.Code, decode[handlers.ErrorResponse](t, rec).Code)
		})
	}
}

func TestRouter_UnmatchedRequestsAreCounted(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := do(t, router, http.MethodGet, "/api/v1/does-not-exist", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, router, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(),
		`http_requests_total{method="GET",route="unknown",service="test",status="404"} 1`)
}

func TestRouter_RequestIDPropagated(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/does-not-exist", nil)
	req.Header.Set("X-Request-ID", "req-7")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "req-7", rec.Header().Get("X-Request-ID"))
}
