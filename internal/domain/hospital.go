package domain

// Hospital represents a hospital in the catalog together with its priced services
type Hospital struct {
	ID           string
	Name         string
	ImageURL     string
	DiscountTag  string
	Location     string
	Rating       float64 // 0..5
	Specialties  []string
	WorkingHours string

	// Detail page data
	Address     string
	Phone       string
	Description string
	Services    []ServiceOffering
}

// FindService returns the service with the given name, if the hospital offers it
func (h *Hospital) FindService(name string) (ServiceOffering, bool) {
	for _, s := range h.Services {
		if s.Name == name {
			return s, true
		}
	}
	return ServiceOffering{}, false
}

// HasSpecialty returns true if the specialty is listed for the hospital (exact match)
func (h *Hospital) HasSpecialty(specialty string) bool {
	for _, s := range h.Specialties {
		if s == specialty {
			return true
		}
	}
	return false
}

// ServiceOffering is a priced service of a hospital
type ServiceOffering struct {
	Name            string
	OriginalPrice   float64
	DiscountedPrice float64 // <= OriginalPrice
}

// Savings returns how much the discount saves; never negative
func (s ServiceOffering) Savings() float64 {
	if s.DiscountedPrice >= s.OriginalPrice {
		return 0
	}
	return s.OriginalPrice - s.DiscountedPrice
}

// DiscountPercent returns the discount as a whole percentage of the original price
func (s ServiceOffering) DiscountPercent() int {
	if s.OriginalPrice <= 0 {
		return 0
	}
	return int(s.Savings()/s.OriginalPrice*100 + 0.5)
}
