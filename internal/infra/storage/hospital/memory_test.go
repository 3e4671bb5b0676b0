package hospital

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_List(t *testing.T) {
	repo := NewSeededRepository()

	hospitals, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, hospitals, 6)

	for i, h := range hospitals {
		assert.Equal(t, SeedHospitals()[i].ID, h.ID, "order must be preserved")
		assert.Len(t, h.Services, 5)
		for _, s := range h.Services {
			assert.Greater(t, s.OriginalPrice, 0.0)
			assert.LessOrEqual(t, s.DiscountedPrice, s.OriginalPrice)
		}
	}
}

func TestMemoryRepository_GetByID(t *testing.T) {
	repo := NewSeededRepository()

	h, err := repo.GetByID(context.Background(), "3")
	require.NoError(t, err)
	assert.Equal(t, "King Fahd Medical City", h.Name)

	_, err = repo.GetByID(context.Background(), "42")
	assert.ErrorIs(t, err, ErrHospitalNotFound)
}

func TestMemoryRepository_ReturnsCopies(t *testing.T) {
	repo := NewSeededRepository()
	ctx := context.Background()

	h, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)
	h.Specialties[0] = "Changed"
	h.Services[0].DiscountedPrice = 1

	again, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Cardiology", again.Specialties[0])
	assert.Equal(t, 210.0, again.Services[0].DiscountedPrice)
}
