package calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-HospitalBookingService/internal/domain"
	sessionRepo "github.com/m04kA/SMC-HospitalBookingService/internal/infra/storage/session"
	"github.com/m04kA/SMC-HospitalBookingService/internal/service/calendar/models"
	hospitalsService "github.com/m04kA/SMC-HospitalBookingService/internal/service/hospitals"
	"github.com/m04kA/SMC-HospitalBookingService/pkg/ptr"
	"github.com/m04kA/SMC-HospitalBookingService/pkg/types"
)

const (
	actionNavigate      = "navigate"
	actionSelectDate    = "select_date"
	actionSelectTime    = "select_time"
	actionSelectService = "select_service"
)

// UUIDGenerator генерирует идентификаторы сессий в формате UUID v4
type UUIDGenerator struct{}

// NewID возвращает новый UUID
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// Service сервис календарных сессий
type Service struct {
	sessions     SessionRepository
	hospitals    HospitalService
	timeProvider TimeProvider
	ids          IDGenerator
	metrics      Metrics
	logger       Logger
}

// NewService создает новый экземпляр сервиса календаря
func NewService(
	sessions SessionRepository,
	hospitals HospitalService,
	timeProvider TimeProvider,
	ids IDGenerator,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		sessions:     sessions,
		hospitals:    hospitals,
		timeProvider: timeProvider,
		ids:          ids,
		metrics:      metrics,
		logger:       logger,
	}
}

// Create открывает календарь для больницы на текущем месяце.
// Если указана услуга, она сразу попадает в выбор.
func (s *Service) Create(ctx context.Context, req *models.CreateSessionRequest) (*models.SessionResponse, error) {
	if req.HospitalID == "" {
		return nil, fmt.Errorf("%w: hospitalId is required", ErrInvalidInput)
	}

	if _, err := s.hospitals.GetByID(ctx, req.HospitalID); err != nil {
		return nil, s.mapHospitalError("Create", req.HospitalID, err)
	}

	now := s.timeProvider.Now()
	session := &domain.CalendarSession{
		ID:         s.ids.NewID(),
		HospitalID: req.HospitalID,
		Selection:  NewSelection(now),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if serviceName := ptr.Value(req.ServiceName); serviceName != "" {
		selected, err := s.resolveService(ctx, req.HospitalID, serviceName)
		if err != nil {
			return nil, err
		}
		NewSelector(&session.Selection).SelectService(*selected)
	}

	if err := s.sessions.Save(ctx, session); err != nil {
		s.logger.Error("Create: failed to save session for hospital id=%s: %v", req.HospitalID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: session id=%s opened for hospital id=%s, month=%s",
		session.ID, session.HospitalID, session.Selection.DisplayedMonth)
	return s.view(session, now), nil
}

// Get возвращает текущее состояние календаря сессии
func (s *Service) Get(ctx context.Context, id string) (*models.SessionResponse, error) {
	session, err := s.load(ctx, "Get", id)
	if err != nil {
		return nil, err
	}

	return s.view(session, s.timeProvider.Now()), nil
}

// GetSession возвращает доменную сессию (для подтверждения записи)
func (s *Service) GetSession(ctx context.Context, id string) (*domain.CalendarSession, error) {
	return s.load(ctx, "GetSession", id)
}

// Navigate переключает отображаемый месяц
func (s *Service) Navigate(ctx context.Context, id string, direction string) (*models.SessionResponse, error) {
	d := domain.Direction(direction)
	if !d.IsValid() {
		s.logger.Warn("Navigate: invalid direction=%q for session id=%s", direction, id)
		return nil, fmt.Errorf("%w: direction must be prev or next", ErrInvalidInput)
	}

	return s.apply(ctx, id, actionNavigate, func(sel *Selector) bool {
		return sel.Navigate(d)
	})
}

// SelectDate выбирает дату в формате YYYY-MM-DD.
// Дата вне отображаемого месяца игнорируется.
func (s *Service) SelectDate(ctx context.Context, id string, date string) (*models.SessionResponse, error) {
	parsed, err := time.Parse(domain.DateFormat, date)
	if err != nil {
		s.logger.Warn("SelectDate: invalid date=%q for session id=%s", date, id)
		return nil, fmt.Errorf("%w: date must be in YYYY-MM-DD format", ErrInvalidInput)
	}

	return s.apply(ctx, id, actionSelectDate, func(sel *Selector) bool {
		return sel.SelectDate(parsed)
	})
}

// SelectTime выбирает временной слот ("03:00 PM" или "15:00").
// Время вне списка слотов игнорируется.
func (s *Service) SelectTime(ctx context.Context, id string, value string) (*models.SessionResponse, error) {
	t, err := types.NewTimeStringFromString(value)
	if err != nil {
		s.logger.Warn("SelectTime: invalid time=%q for session id=%s", value, id)
		return nil, fmt.Errorf("%w: time must be like 03:00 PM or 15:00", ErrInvalidInput)
	}

	return s.apply(ctx, id, actionSelectTime, func(sel *Selector) bool {
		return sel.SelectTime(t)
	})
}

// SelectService выбирает услугу больницы сессии
func (s *Service) SelectService(ctx context.Context, id string, serviceName string) (*models.SessionResponse, error) {
	if serviceName == "" {
		return nil, fmt.Errorf("%w: serviceName is required", ErrInvalidInput)
	}

	session, err := s.load(ctx, "SelectService", id)
	if err != nil {
		return nil, err
	}

	selected, err := s.resolveService(ctx, session.HospitalID, serviceName)
	if err != nil {
		return nil, err
	}

	return s.applyTo(ctx, session, actionSelectService, func(sel *Selector) bool {
		sel.SelectService(*selected)
		return true
	})
}

func (s *Service) apply(ctx context.Context, id, action string, transition func(*Selector) bool) (*models.SessionResponse, error) {
	session, err := s.load(ctx, action, id)
	if err != nil {
		return nil, err
	}

	return s.applyTo(ctx, session, action, transition)
}

func (s *Service) applyTo(ctx context.Context, session *domain.CalendarSession, action string, transition func(*Selector) bool) (*models.SessionResponse, error) {
	now := s.timeProvider.Now()

	applied := transition(NewSelector(&session.Selection))
	s.metrics.IncCalendarTransition(action, applied)

	if !applied {
		// Недопустимый переход: состояние не меняется
		s.logger.Debug("%s: ignored for session id=%s", action, session.ID)
		return s.view(session, now), nil
	}

	session.UpdatedAt = now
	if err := s.sessions.Save(ctx, session); err != nil {
		s.logger.Error("%s: failed to save session id=%s: %v", action, session.ID, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, action, err)
	}

	s.logger.Info("%s: session id=%s updated, canProceed=%t", action, session.ID, session.Selection.CanProceed())
	return s.view(session, now), nil
}

func (s *Service) load(ctx context.Context, op, id string) (*domain.CalendarSession, error) {
	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			s.logger.Warn("%s: session id=%s not found", op, id)
			return nil, ErrSessionNotFound
		}
		s.logger.Error("%s: repository error for session id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	return session, nil
}

func (s *Service) resolveService(ctx context.Context, hospitalID, serviceName string) (*domain.SelectedService, error) {
	hospital, offering, err := s.hospitals.GetService(ctx, hospitalID, serviceName)
	if err != nil {
		return nil, s.mapHospitalError("resolveService", hospitalID, err)
	}

	return &domain.SelectedService{
		HospitalID:      hospital.ID,
		Name:            offering.Name,
		OriginalPrice:   offering.OriginalPrice,
		DiscountedPrice: offering.DiscountedPrice,
	}, nil
}

func (s *Service) mapHospitalError(op, hospitalID string, err error) error {
	switch {
	case errors.Is(err, hospitalsService.ErrHospitalNotFound):
		return ErrHospitalNotFound
	case errors.Is(err, hospitalsService.ErrServiceNotFound):
		return ErrServiceNotFound
	default:
		s.logger.Error("%s: hospital service error for hospital id=%s: %v", op, hospitalID, err)
		return fmt.Errorf("%w: %s - hospital service error: %v", ErrInternal, op, err)
	}
}

func (s *Service) view(session *domain.CalendarSession, now time.Time) *models.SessionResponse {
	cells := BuildMonthGrid(session.Selection.DisplayedMonth)
	return models.FromDomainSession(session, cells, now)
}
