package hospitals

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"math"
	"sync"

	"github.com/m04kA/SMC-HospitalBookingService/internal/domain"
	hospitalRepo "github.com/m04kA/SMC-HospitalBookingService/internal/infra/storage/hospital"
)

// Service сервис каталога больниц: фильтрация, опции фильтров, карточка больницы
type Service struct {
	repo   HospitalRepository
	logger Logger

	mu          sync.Mutex
	fingerprint uint64
	options     *domain.FilterOptions
}

// NewService создает новый экземпляр сервиса каталога
func NewService(repo HospitalRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// List возвращает отфильтрованные больницы и общее количество больниц в каталоге
func (s *Service) List(ctx context.Context, criteria domain.HospitalFilter) ([]domain.Hospital, int, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, 0, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	if criteria.IsEmpty() {
		s.logger.Info("List: no filters, returning all %d hospitals", len(all))
		return all, len(all), nil
	}

	filtered := Filter(all, criteria)

	s.logger.Info("List: query=%q, location=%q, specialty=%q, minRating=%.1f -> %d of %d",
		criteria.Query, criteria.Location, criteria.Specialty, criteria.MinRating, len(filtered), len(all))
	return filtered, len(all), nil
}

// Options возвращает значения для фильтров.
// Пересчитываются только при изменении каталога.
func (s *Service) Options(ctx context.Context) (*domain.FilterOptions, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("Options: repository error: %v", err)
		return nil, fmt.Errorf("%w: Options - repository error: %v", ErrInternal, err)
	}

	fp := catalogFingerprint(all)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.options == nil || s.fingerprint != fp {
		s.options = &domain.FilterOptions{
			Locations:     DistinctLocations(all),
			Specialties:   DistinctSpecialties(all),
			RatingOptions: append([]float64(nil), domain.RatingOptions...),
		}
		s.fingerprint = fp
		s.logger.Info("Options: recomputed filter options: %d locations, %d specialties",
			len(s.options.Locations), len(s.options.Specialties))
	}

	return cloneOptions(s.options), nil
}

// GetByID возвращает больницу по идентификатору
func (s *Service) GetByID(ctx context.Context, id string) (*domain.Hospital, error) {
	hospital, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, hospitalRepo.ErrHospitalNotFound) {
			s.logger.Warn("GetByID: hospital id=%s not found", id)
			return nil, ErrHospitalNotFound
		}
		s.logger.Error("GetByID: repository error for hospital id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return hospital, nil
}

// GetService возвращает больницу и выбранную услугу
func (s *Service) GetService(ctx context.Context, hospitalID, serviceName string) (*domain.Hospital, *domain.ServiceOffering, error) {
	hospital, err := s.GetByID(ctx, hospitalID)
	if err != nil {
		return nil, nil, err
	}

	service, ok := hospital.FindService(serviceName)
	if !ok {
		s.logger.Warn("GetService: service %q not found at hospital id=%s", serviceName, hospitalID)
		return nil, nil, ErrServiceNotFound
	}

	return hospital, &service, nil
}

// catalogFingerprint хэш полей, от которых зависят опции фильтров
func catalogFingerprint(hospitals []domain.Hospital) uint64 {
	h := fnv.New64a()
	for _, hospital := range hospitals {
		_, _ = h.Write([]byte(hospital.Location))
		_, _ = h.Write([]byte{0})
		for _, s := range hospital.Specialties {
			_, _ = h.Write([]byte(s))
			_, _ = h.Write([]byte{0})
		}
		_, _ = h.Write([]byte{1})
	}
	return h.Sum64()
}

func cloneOptions(o *domain.FilterOptions) *domain.FilterOptions {
	return &domain.FilterOptions{
		Locations:     append([]string(nil), o.Locations...),
		Specialties:   append([]string(nil), o.Specialties...),
		RatingOptions: append([]float64(nil), o.RatingOptions...),
	}
}

// ValidRating проверяет порог рейтинга (0..5)
func ValidRating(rating float64) bool {
	return !math.IsNaN(rating) && rating >= 0 && rating <= 5
}
