package passes

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HospitalBookingService/internal/domain"
	"github.com/m04kA/SMC-HospitalBookingService/internal/infra/document"
)

// QREncoder интерфейс генерации QR-кода
type QREncoder interface {
	Encode(content string) ([]byte, error)
}

// PassRenderer интерфейс генерации PDF талона
type PassRenderer interface {
	Render(pass document.Pass) ([]byte, error)
}

// PriceListWriter интерфейс генерации прайс-листа
type PriceListWriter interface {
	Write(hospital *domain.Hospital, currency string) ([]byte, error)
}

// HospitalService интерфейс каталога больниц
type HospitalService interface {
	GetByID(ctx context.Context, id string) (*domain.Hospital, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Metrics интерфейс метрик экспорта
type Metrics interface {
	IncPassExported(format string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
