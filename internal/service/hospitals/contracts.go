package hospitals

import (
	"context"

	"github.com/m04kA/SMC-HospitalBookingService/internal/domain"
)

// HospitalRepository интерфейс каталога больниц
type HospitalRepository interface {
	List(ctx context.Context) ([]domain.Hospital, error)
	GetByID(ctx context.Context, id string) (*domain.Hospital, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
