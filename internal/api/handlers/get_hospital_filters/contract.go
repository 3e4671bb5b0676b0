package get_hospital_filters

import (
	"context"

	"github.com/m04kA/SMC-HospitalBookingService/internal/domain"
)

type HospitalService interface {
	Options(ctx context.Context) (*domain.FilterOptions, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
