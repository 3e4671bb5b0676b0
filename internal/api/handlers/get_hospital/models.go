package get_hospital

import "github.com/m04kA/SMC-HospitalBookingService/internal/domain"

// ServiceResponse услуга с ценами
type ServiceResponse struct {
	Name            string  `json:"name"`
	OriginalPrice   float64 `json:"originalPrice"`
	DiscountedPrice float64 `json:"discountedPrice"`
	Savings         float64 `json:"savings"`
	DiscountPercent int     `json:"discountPercent"`
}

// HospitalResponse HTTP response model
type HospitalResponse struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	ImageURL     string            `json:"imageUrl"`
	DiscountTag  string            `json:"discountTag"`
	Location     string            `json:"location"`
	Rating       float64           `json:"rating"`
	Specialties  []string          `json:"specialties"`
	WorkingHours string            `json:"workingHours"`
	Address      string            `json:"address"`
	Phone        string            `json:"phone"`
	Description  string            `json:"description"`
	Services     []ServiceResponse `json:"services"`
}

// FromDomain конвертирует больницу в HTTP response
func FromDomain(h *domain.Hospital) *HospitalResponse {
	resp := &HospitalResponse{
		ID:           h.ID,
		Name:         h.Name,
		ImageURL:     h.ImageURL,
		DiscountTag:  h.DiscountTag,
		Location:     h.Location,
		Rating:       h.Rating,
		Specialties:  h.Specialties,
		WorkingHours: h.WorkingHours,
		Address:      h.Address,
		Phone:        h.Phone,
		Description:  h.Description,
		Services:     make([]ServiceResponse, 0, len(h.Services)),
	}

	for _, s := range h.Services {
		resp.Services = append(resp.Services, ServiceResponse{
			Name:            s.Name,
			OriginalPrice:   s.OriginalPrice,
			DiscountedPrice: s.DiscountedPrice,
			Savings:         s.Savings(),
			DiscountPercent: s.DiscountPercent(),
		})
	}

	return resp
}
