package confirm_booking

import (
	"context"

	"github.com/m04kA/SMC-HospitalBookingService/internal/domain"
)

// SessionService интерфейс сервиса календарных сессий
type SessionService interface {
	GetSession(ctx context.Context, id string) (*domain.CalendarSession, error)
}

// HospitalService интерфейс каталога больниц
type HospitalService interface {
	GetByID(ctx context.Context, id string) (*domain.Hospital, error)
}

// PassService интерфейс сервиса талонов
type PassService interface {
	VerificationPayload(record domain.BookingRecord) domain.VerificationPayload
}

// IDGenerator интерфейс генератора номера записи
type IDGenerator interface {
	Generate() (string, error)
}

// Metrics интерфейс метрик подтверждения
type Metrics interface {
	IncBookingConfirmed()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
