package create_calendar_session

import (
	"context"

	"github.com/m04kA/SMC-HospitalBookingService/internal/service/calendar/models"
)

type CalendarService interface {
	Create(ctx context.Context, req *models.CreateSessionRequest) (*models.SessionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
