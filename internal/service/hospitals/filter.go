package hospitals

import (
	"sort"
	"strings"

	"github.com/m04kA/SMC-HospitalBookingService/internal/domain"
)

// Filter возвращает больницы, удовлетворяющие всем критериям (AND).
// Порядок сохраняется, входной срез не изменяется.
func Filter(hospitals []domain.Hospital, criteria domain.HospitalFilter) []domain.Hospital {
	query := strings.ToLower(criteria.Query)

	result := make([]domain.Hospital, 0, len(hospitals))
	for i := range hospitals {
		h := &hospitals[i]

		if !matchesQuery(h, query) {
			continue
		}
		if criteria.Location != "" && h.Location != criteria.Location {
			continue
		}
		if criteria.Specialty != "" && !h.HasSpecialty(criteria.Specialty) {
			continue
		}
		if h.Rating < criteria.MinRating {
			continue
		}

		result = append(result, *h)
	}

	return result
}

// matchesQuery подстрока без учета регистра по названию, локации или любой специализации (OR)
func matchesQuery(h *domain.Hospital, lowerQuery string) bool {
	if lowerQuery == "" {
		return true
	}

	if strings.Contains(strings.ToLower(h.Name), lowerQuery) ||
		strings.Contains(strings.ToLower(h.Location), lowerQuery) {
		return true
	}

	for _, s := range h.Specialties {
		if strings.Contains(strings.ToLower(s), lowerQuery) {
			return true
		}
	}

	return false
}

// DistinctLocations уникальные локации по возрастанию
func DistinctLocations(hospitals []domain.Hospital) []string {
	values := make([]string, 0, len(hospitals))
	for _, h := range hospitals {
		values = append(values, h.Location)
	}
	return sortedUnique(values)
}

// DistinctSpecialties уникальные специализации всех больниц по возрастанию
func DistinctSpecialties(hospitals []domain.Hospital) []string {
	values := make([]string, 0)
	for _, h := range hospitals {
		values = append(values, h.Specialties...)
	}
	return sortedUnique(values)
}

func sortedUnique(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))

	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}

	sort.Strings(result)
	return result
}
