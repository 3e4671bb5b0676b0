package list_hospitals

import (
	"context"

	"github.com/m04kA/SMC-HospitalBookingService/internal/domain"
)

type HospitalService interface {
	List(ctx context.Context, criteria domain.HospitalFilter) ([]domain.Hospital, int, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
