package passes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HospitalBookingService/internal/domain"
	"github.com/m04kA/SMC-HospitalBookingService/internal/infra/document"
	hospitalsService "github.com/m04kA/SMC-HospitalBookingService/internal/service/hospitals"
)

const (
	FormatPDF  = "pdf"
	FormatQR   = "qr"
	FormatXLSX = "xlsx"
)

// Config параметры экспорта
type Config struct {
	PublicURL string // базовый адрес для ссылки проверки
	Currency  string
}

// Service сервис талонов на прием и прайс-листов
type Service struct {
	qr           QREncoder
	renderer     PassRenderer
	priceList    PriceListWriter
	hospitals    HospitalService
	timeProvider TimeProvider
	metrics      Metrics
	logger       Logger
	cfg          Config
}

// NewService создает новый экземпляр сервиса талонов
func NewService(
	qr QREncoder,
	renderer PassRenderer,
	priceList PriceListWriter,
	hospitals HospitalService,
	timeProvider TimeProvider,
	metrics Metrics,
	logger Logger,
	cfg Config,
) *Service {
	if cfg.Currency == "" {
		cfg.Currency = domain.DefaultCurrency
	}
	return &Service{
		qr:           qr,
		renderer:     renderer,
		priceList:    priceList,
		hospitals:    hospitals,
		timeProvider: timeProvider,
		metrics:      metrics,
		logger:       logger,
		cfg:          cfg,
	}
}

// VerificationPayload данные проверки записи с текущей меткой времени
func (s *Service) VerificationPayload(record domain.BookingRecord) domain.VerificationPayload {
	return BuildVerificationPayload(record, s.cfg.PublicURL, s.timeProvider.Now())
}

// QRCode возвращает PNG с QR-кодом данных проверки записи
func (s *Service) QRCode(_ context.Context, record domain.BookingRecord) ([]byte, error) {
	if err := validateRecord(record); err != nil {
		return nil, err
	}

	png, err := s.encodePayload(record)
	if err != nil {
		s.logger.Error("QRCode: failed to render qr for booking id=%s: %v", record.BookingID, err)
		return nil, err
	}

	s.metrics.IncPassExported(FormatQR)
	s.logger.Info("QRCode: rendered qr for booking id=%s", record.BookingID)
	return png, nil
}

// PDF возвращает печатный талон на прием
func (s *Service) PDF(_ context.Context, record domain.BookingRecord) ([]byte, error) {
	if err := validateRecord(record); err != nil {
		return nil, err
	}

	png, err := s.encodePayload(record)
	if err != nil {
		s.logger.Error("PDF: failed to render qr for booking id=%s: %v", record.BookingID, err)
		return nil, err
	}

	out, err := s.renderer.Render(document.Pass{
		Record:   record,
		QRCode:   png,
		Currency: s.cfg.Currency,
		IssuedAt: s.timeProvider.Now(),
	})
	if err != nil {
		s.logger.Error("PDF: failed to render pass for booking id=%s: %v", record.BookingID, err)
		return nil, fmt.Errorf("%w: PDF - %v", ErrRenderFailed, err)
	}

	s.metrics.IncPassExported(FormatPDF)
	s.logger.Info("PDF: rendered pass for booking id=%s, %d bytes", record.BookingID, len(out))
	return out, nil
}

// PriceList возвращает XLSX с услугами больницы
func (s *Service) PriceList(ctx context.Context, hospitalID string) ([]byte, error) {
	hospital, err := s.hospitals.GetByID(ctx, hospitalID)
	if err != nil {
		if errors.Is(err, hospitalsService.ErrHospitalNotFound) {
			return nil, ErrHospitalNotFound
		}
		s.logger.Error("PriceList: hospital service error for hospital id=%s: %v", hospitalID, err)
		return nil, fmt.Errorf("%w: PriceList - hospital service error: %v", ErrInternal, err)
	}

	out, err := s.priceList.Write(hospital, s.cfg.Currency)
	if err != nil {
		s.logger.Error("PriceList: failed to render price list for hospital id=%s: %v", hospitalID, err)
		return nil, fmt.Errorf("%w: PriceList - %v", ErrRenderFailed, err)
	}

	s.metrics.IncPassExported(FormatXLSX)
	s.logger.Info("PriceList: rendered %d services for hospital id=%s", len(hospital.Services), hospitalID)
	return out, nil
}

func (s *Service) encodePayload(record domain.BookingRecord) ([]byte, error) {
	data, err := json.Marshal(s.VerificationPayload(record))
	if err != nil {
		return nil, fmt.Errorf("%w: encode payload: %v", ErrInternal, err)
	}

	png, err := s.qr.Encode(string(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}

	return png, nil
}

func validateRecord(record domain.BookingRecord) error {
	if record.BookingID == "" {
		return fmt.Errorf("%w: bookingId is required", ErrInvalidInput)
	}
	return nil
}
