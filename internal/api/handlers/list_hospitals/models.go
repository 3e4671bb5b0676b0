package list_hospitals

import "github.com/m04kA/SMC-HospitalBookingService/internal/domain"

// HospitalCard карточка больницы в списке
type HospitalCard struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	ImageURL     string   `json:"imageUrl"`
	DiscountTag  string   `json:"discountTag"`
	Location     string   `json:"location"`
	Rating       float64  `json:"rating"`
	Specialties  []string `json:"specialties"`
	WorkingHours string   `json:"workingHours"`
}

// ListResponse HTTP response model
type ListResponse struct {
	Hospitals []HospitalCard `json:"hospitals"`
	Count     int            `json:"count"` // сколько показано
	Total     int            `json:"total"` // сколько всего в каталоге
}

// FromDomain конвертирует результат фильтрации в HTTP response
func FromDomain(hospitals []domain.Hospital, total int) *ListResponse {
	resp := &ListResponse{
		Hospitals: make([]HospitalCard, 0, len(hospitals)),
		Count:     len(hospitals),
		Total:     total,
	}

	for _, h := range hospitals {
		resp.Hospitals = append(resp.Hospitals, HospitalCard{
			ID:           h.ID,
			Name:         h.Name,
			ImageURL:     h.ImageURL,
			DiscountTag:  h.DiscountTag,
			Location:     h.Location,
			Rating:       h.Rating,
			Specialties:  h.Specialties,
			WorkingHours: h.WorkingHours,
		})
	}

	return resp
}
