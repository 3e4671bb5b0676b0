package get_hospital

import (
	"context"

	"github.com/m04kA/SMC-HospitalBookingService/internal/domain"
)

type HospitalService interface {
	GetByID(ctx context.Context, id string) (*domain.Hospital, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
