package get_hospital_filters

import "github.com/m04kA/SMC-HospitalBookingService/internal/domain"

// RatingOption вариант фильтра по рейтингу
type RatingOption struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

// FiltersResponse HTTP response model
type FiltersResponse struct {
	Locations     []string       `json:"locations"`
	Specialties   []string       `json:"specialties"`
	RatingOptions []RatingOption `json:"ratingOptions"`
}

// FromDomain конвертирует опции фильтров в HTTP response
func FromDomain(o *domain.FilterOptions) *FiltersResponse {
	resp := &FiltersResponse{
		Locations:     o.Locations,
		Specialties:   o.Specialties,
		RatingOptions: make([]RatingOption, 0, len(o.RatingOptions)),
	}

	for _, v := range o.RatingOptions {
		resp.RatingOptions = append(resp.RatingOptions, RatingOption{Value: v, Label: ratingLabel(v)})
	}

	return resp
}

func ratingLabel(v float64) string {
	switch v {
	case 0:
		return "Any Rating"
	case 4.0:
		return "4+ Stars"
	case 4.5:
		return "4.5+ Stars"
	default:
		return ""
	}
}
