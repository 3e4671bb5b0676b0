package hospital

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-HospitalBookingService/internal/domain"
)

// MemoryRepository каталог больниц в памяти
// Данные неизменяемы после создания, поэтому синхронизация не нужна
type MemoryRepository struct {
	hospitals []domain.Hospital
	byID      map[string]int
}

// NewMemoryRepository создает репозиторий из переданного списка (порядок сохраняется)
func NewMemoryRepository(hospitals []domain.Hospital) *MemoryRepository {
	repo := &MemoryRepository{
		hospitals: make([]domain.Hospital, len(hospitals)),
		byID:      make(map[string]int, len(hospitals)),
	}

	for i, h := range hospitals {
		repo.hospitals[i] = cloneHospital(h)
		repo.byID[h.ID] = i
	}

	return repo
}

// NewSeededRepository создает репозиторий с демонстрационным каталогом
func NewSeededRepository() *MemoryRepository {
	return NewMemoryRepository(SeedHospitals())
}

// List возвращает все больницы в исходном порядке
func (r *MemoryRepository) List(_ context.Context) ([]domain.Hospital, error) {
	result := make([]domain.Hospital, len(r.hospitals))
	for i, h := range r.hospitals {
		result[i] = cloneHospital(h)
	}
	return result, nil
}

// GetByID возвращает больницу по идентификатору
func (r *MemoryRepository) GetByID(_ context.Context, id string) (*domain.Hospital, error) {
	idx, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: id=%s", ErrHospitalNotFound, id)
	}

	h := cloneHospital(r.hospitals[idx])
	return &h, nil
}

// cloneHospital копирует срезы, чтобы вызывающий код не мог изменить каталог
func cloneHospital(h domain.Hospital) domain.Hospital {
	h.Specialties = append([]string(nil), h.Specialties...)
	h.Services = append([]domain.ServiceOffering(nil), h.Services...)
	return h
}
