package hospitals

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HospitalBookingService/internal/domain"
	hospitalRepo "github.com/m04kA/SMC-HospitalBookingService/internal/infra/storage/hospital"
	"github.com/m04kA/SMC-HospitalBookingService/pkg/logger"
)

// countingRepo считает обращения и позволяет подменить каталог
type countingRepo struct {
	hospitals []domain.Hospital
	err       error
	calls     int
}

func (r *countingRepo) List(_ context.Context) ([]domain.Hospital, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	return r.hospitals, nil
}

func (r *countingRepo) GetByID(ctx context.Context, id string) (*domain.Hospital, error) {
	return hospitalRepo.NewMemoryRepository(r.hospitals).GetByID(ctx, id)
}

func TestService_List(t *testing.T) {
	svc := NewService(hospitalRepo.NewSeededRepository(), logger.Nop())

	filtered, total, err := svc.List(context.Background(), domain.HospitalFilter{MinRating: 4.5})
	require.NoError(t, err)
	assert.Equal(t, 6, total)
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, ids(filtered))
}

func TestService_List_RepositoryError(t *testing.T) {
	svc := NewService(&countingRepo{err: errors.New("db down")}, logger.Nop())

	_, _, err := svc.List(context.Background(), domain.HospitalFilter{})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestService_Options_RecomputedOnlyOnChange(t *testing.T) {
	repo := &countingRepo{hospitals: hospitalRepo.SeedHospitals()}
	svc := NewService(repo, logger.Nop())
	ctx := context.Background()

	first, err := svc.Options(ctx)
	require.NoError(t, err)
	cached := svc.options

	second, err := svc.Options(ctx)
	require.NoError(t, err)
	assert.Same(t, cached, svc.options, "unchanged catalog must reuse cached options")
	assert.Equal(t, first, second)
	assert.Equal(t, []float64{0, 4.0, 4.5}, second.RatingOptions)

	repo.hospitals = append(repo.hospitals, domain.Hospital{
		ID:          "7",
		Location:    "Abha, Saudi Arabia",
		Specialties: []string{"Allergy"},
	})

	third, err := svc.Options(ctx)
	require.NoError(t, err)
	assert.NotSame(t, cached, svc.options)
	assert.Equal(t, "Abha, Saudi Arabia", third.Locations[0])
	assert.Equal(t, "Allergy", third.Specialties[0])
}

func TestService_GetByID(t *testing.T) {
	svc := NewService(hospitalRepo.NewSeededRepository(), logger.Nop())
	ctx := context.Background()

	h, err := svc.GetByID(ctx, "4")
	require.NoError(t, err)
	assert.Equal(t, "King Abdullah Medical Complex", h.Name)

	_, err = svc.GetByID(ctx, "unknown")
	assert.ErrorIs(t, err, ErrHospitalNotFound)
}

func TestService_GetService(t *testing.T) {
	svc := NewService(hospitalRepo.NewSeededRepository(), logger.Nop())
	ctx := context.Background()

	_, service, err := svc.GetService(ctx, "3", "Mental Health Consultation")
	require.NoError(t, err)
	assert.Equal(t, 50.0, service.Savings())

	_, _, err = svc.GetService(ctx, "3", "Cardiology Consultation")
	assert.ErrorIs(t, err, ErrServiceNotFound)

	_, _, err = svc.GetService(ctx, "99", "Cardiology Consultation")
	assert.ErrorIs(t, err, ErrHospitalNotFound)
}
