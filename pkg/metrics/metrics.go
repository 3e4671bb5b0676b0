package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics набор прометеус-метрик сервиса
type Metrics struct {
	registry *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	calendarTransitions *prometheus.CounterVec
	bookingsConfirmed   prometheus.Counter
	passesExported      *prometheus.CounterVec
}

// New создает и регистрирует метрики в собственном реестре
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "http_requests_total",
				Help:        "Total number of HTTP requests.",
				ConstLabels: constLabels,
			},
			[]string{"method", "route", "status"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "http_request_duration_seconds",
				Help:        "HTTP request latency.",
				ConstLabels: constLabels,
				Buckets:     prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		calendarTransitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "calendar_transitions_total",
				Help:        "Calendar selection transitions by action and whether they changed state.",
				ConstLabels: constLabels,
			},
			[]string{"action", "applied"},
		),
		bookingsConfirmed: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name:        "bookings_confirmed_total",
				Help:        "Mock bookings confirmed.",
				ConstLabels: constLabels,
			},
		),
		passesExported: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "passes_exported_total",
				Help:        "Booking passes and documents exported by format.",
				ConstLabels: constLabels,
			},
			[]string{"format"},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpRequestDuration,
		m.calendarTransitions,
		m.bookingsConfirmed,
		m.passesExported,
	)

	return m
}

// Handler HTTP-хендлер для отдачи метрик
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveHTTPRequest учитывает завершенный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// IncCalendarTransition учитывает переход выбора в календаре
func (m *Metrics) IncCalendarTransition(action string, applied bool) {
	m.calendarTransitions.WithLabelValues(action, strconv.FormatBool(applied)).Inc()
}

// IncBookingConfirmed учитывает подтвержденное бронирование
func (m *Metrics) IncBookingConfirmed() {
	m.bookingsConfirmed.Inc()
}

// IncPassExported учитывает экспорт документа (pdf, qr, xlsx)
func (m *Metrics) IncPassExported(format string) {
	m.passesExported.WithLabelValues(format).Inc()
}

// Nop реализация для случая, когда метрики выключены
type Nop struct{}

func (Nop) IncCalendarTransition(string, bool) {}
func (Nop) IncBookingConfirmed()               {}
func (Nop) IncPassExported(string)             {}
