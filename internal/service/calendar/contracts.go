package calendar

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HospitalBookingService/internal/domain"
)

// SessionRepository интерфейс хранилища сессий
type SessionRepository interface {
	Save(ctx context.Context, s *domain.CalendarSession) error
	Get(ctx context.Context, id string) (*domain.CalendarSession, error)
}

// HospitalService интерфейс каталога больниц
type HospitalService interface {
	GetByID(ctx context.Context, id string) (*domain.Hospital, error)
	GetService(ctx context.Context, hospitalID, serviceName string) (*domain.Hospital, *domain.ServiceOffering, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// IDGenerator генератор идентификаторов сессий
type IDGenerator interface {
	NewID() string
}

// Metrics интерфейс метрик переходов календаря
type Metrics interface {
	IncCalendarTransition(action string, applied bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
