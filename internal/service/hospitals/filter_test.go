package hospitals

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HospitalBookingService/internal/domain"
	hospitalRepo "github.com/m04kA/SMC-HospitalBookingService/internal/infra/storage/hospital"
)

func ids(hospitals []domain.Hospital) []string {
	result := make([]string, len(hospitals))
	for i, h := range hospitals {
		result[i] = h.ID
	}
	return result
}

func TestFilter(t *testing.T) {
	catalog := hospitalRepo.SeedHospitals()

	tests := []struct {
		name     string
		criteria domain.HospitalFilter
		expected []string
	}{
		{
			name:     "empty criteria returns everything in order",
			criteria: domain.HospitalFilter{},
			expected: []string{"1", "2", "3", "4", "5", "6"},
		},
		{
			name:     "query matches name case-insensitively",
			criteria: domain.HospitalFilter{Query: "FAHD"},
			expected: []string{"3"},
		},
		{
			name:     "query matches location",
			criteria: domain.HospitalFilter{Query: "jeddah"},
			expected: []string{"4"},
		},
		{
			name:     "query matches any specialty",
			criteria: domain.HospitalFilter{Query: "pediatr"},
			expected: []string{"2", "6"},
		},
		{
			name:     "location is exact",
			criteria: domain.HospitalFilter{Location: "Riyadh"},
			expected: []string{},
		},
		{
			name:     "location and specialty are combined with AND",
			criteria: domain.HospitalFilter{Location: "Riyadh, Saudi Arabia", Specialty: "Pediatrics"},
			expected: []string{"2"},
		},
		{
			name:     "specialty is exact membership",
			criteria: domain.HospitalFilter{Specialty: "Emergency"},
			expected: []string{},
		},
		{
			name:     "minimum rating is inclusive",
			criteria: domain.HospitalFilter{MinRating: 4.7},
			expected: []string{"1", "2", "4"},
		},
		{
			name:     "no match is a valid empty result",
			criteria: domain.HospitalFilter{Query: "veterinary"},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ids(Filter(catalog, tt.criteria)))
		})
	}
}

func TestFilter_SingleHospitalScenario(t *testing.T) {
	catalog := []domain.Hospital{{
		ID:          "3",
		Name:        "King Fahd Medical City",
		Location:    "Riyadh, Saudi Arabia",
		Rating:      4.6,
		Specialties: []string{"Mental Health"},
	}}

	result := Filter(catalog, domain.HospitalFilter{Query: "fahd"})
	require.Len(t, result, 1)
	assert.Equal(t, "King Fahd Medical City", result[0].Name)
}

func TestFilter_RatingThresholdNeverViolated(t *testing.T) {
	catalog := hospitalRepo.SeedHospitals()

	for _, threshold := range []float64{0.5, 4.0, 4.45, 4.5, 4.8, 4.9, 5} {
		for _, h := range Filter(catalog, domain.HospitalFilter{MinRating: threshold}) {
			assert.GreaterOrEqual(t, h.Rating, threshold)
		}
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	catalog := hospitalRepo.SeedHospitals()
	before := ids(catalog)

	_ = Filter(catalog, domain.HospitalFilter{Query: "king", MinRating: 4.7})

	assert.Equal(t, before, ids(catalog))
}

func TestDistinctOptions(t *testing.T) {
	catalog := hospitalRepo.SeedHospitals()

	assert.Equal(t, []string{
		"Dubai, UAE",
		"Jeddah, Saudi Arabia",
		"Mecca, Saudi Arabia",
		"Riyadh, Saudi Arabia",
	}, DistinctLocations(catalog))

	specialties := DistinctSpecialties(catalog)
	assert.IsIncreasing(t, specialties)
	assert.Contains(t, specialties, "Emergency Care")
	assert.Contains(t, specialties, "Pediatrics")

	counts := make(map[string]int)
	for _, s := range specialties {
		counts[s]++
	}
	for s, n := range counts {
		assert.Equal(t, 1, n, "specialty %q duplicated", s)
	}
}
