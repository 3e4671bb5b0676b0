package update_calendar_session

import (
	"context"

	"github.com/m04kA/SMC-HospitalBookingService/internal/service/calendar/models"
)

type CalendarService interface {
	Navigate(ctx context.Context, id string, direction string) (*models.SessionResponse, error)
	SelectDate(ctx context.Context, id string, date string) (*models.SessionResponse, error)
	SelectTime(ctx context.Context, id string, value string) (*models.SessionResponse, error)
	SelectService(ctx context.Context, id string, serviceName string) (*models.SessionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
