package confirm_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HospitalBookingService/internal/domain"
	calendarService "github.com/m04kA/SMC-HospitalBookingService/internal/service/calendar"
	hospitalsService "github.com/m04kA/SMC-HospitalBookingService/internal/service/hospitals"
)

// UseCase use case для подтверждения записи на прием
type UseCase struct {
	sessions    SessionService
	hospitals   HospitalService
	passes      PassService
	idGenerator IDGenerator
	metrics     Metrics
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	sessions SessionService,
	hospitals HospitalService,
	passes PassService,
	idGenerator IDGenerator,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		sessions:    sessions,
		hospitals:   hospitals,
		passes:      passes,
		idGenerator: idGenerator,
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute выполняет use case подтверждения записи.
// Запись нигде не сохраняется, номер генерируется заново при каждом вызове.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ConfirmBooking: session=%s", req.SessionID)

	// 1. Валидация входных данных
	if err := normalizeRequest(req); err != nil {
		uc.logger.Warn("ConfirmBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем сессию
	session, err := uc.sessions.GetSession(ctx, req.SessionID)
	if err != nil {
		if errors.Is(err, calendarService.ErrSessionNotFound) {
			uc.logger.Warn("ConfirmBooking: session id=%s not found", req.SessionID)
			return nil, ErrSessionNotFound
		}
		uc.logger.Error("ConfirmBooking: failed to get session id=%s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: failed to get session: %v", ErrInternal, err)
	}

	// 3. Дата и время должны быть выбраны
	sel := session.Selection
	if !sel.CanProceed() {
		uc.logger.Warn("ConfirmBooking: selection incomplete for session id=%s", session.ID)
		return nil, ErrSelectionIncomplete
	}

	// 4. Получаем больницу
	hospital, err := uc.hospitals.GetByID(ctx, session.HospitalID)
	if err != nil {
		if errors.Is(err, hospitalsService.ErrHospitalNotFound) {
			uc.logger.Warn("ConfirmBooking: hospital id=%s not found", session.HospitalID)
			return nil, ErrHospitalNotFound
		}
		uc.logger.Error("ConfirmBooking: failed to get hospital id=%s: %v", session.HospitalID, err)
		return nil, fmt.Errorf("%w: failed to get hospital: %v", ErrInternal, err)
	}

	// 5. Генерируем номер записи
	bookingID, err := uc.idGenerator.Generate()
	if err != nil {
		uc.logger.Error("ConfirmBooking: failed to generate booking id: %v", err)
		return nil, fmt.Errorf("%w: failed to generate booking id: %v", ErrInternal, err)
	}

	record := domain.BookingRecord{
		BookingID:    bookingID,
		HospitalName: hospital.Name,
		PatientName:  req.PatientName,
		PatientPhone: req.PhoneNumber,
		Date:         sel.SelectedDate.Format(domain.DisplayDateFormat),
		Time:         sel.SelectedTime.Label(),
		Location:     hospital.Address,
	}

	// Услуга не обязательна, без нее цены нулевые
	if sel.Service != nil {
		record.ServiceName = sel.Service.Name
		record.OriginalPrice = sel.Service.OriginalPrice
		record.DiscountedPrice = sel.Service.DiscountedPrice
		record.Savings = sel.Service.Savings()
	}

	uc.metrics.IncBookingConfirmed()
	uc.logger.Info("ConfirmBooking: booking id=%s confirmed for hospital id=%s on %s at %s",
		record.BookingID, hospital.ID, record.Date, record.Time)

	return &Response{
		Record:       record,
		Verification: uc.passes.VerificationPayload(record),
	}, nil
}
