package export_pass_qr

import (
	"context"

	"github.com/m04kA/SMC-HospitalBookingService/internal/domain"
)

type PassService interface {
	QRCode(ctx context.Context, record domain.BookingRecord) ([]byte, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
