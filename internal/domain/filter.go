package domain

// HospitalFilter criteria for the hospital list. Zero values mean "no constraint".
type HospitalFilter struct {
	Query     string  // case-insensitive substring over name, location and specialties
	Location  string  // exact match
	Specialty string  // exact membership
	MinRating float64 // rating >= MinRating
}

// IsEmpty returns true when no criterion is set
func (f HospitalFilter) IsEmpty() bool {
	return f.Query == "" && f.Location == "" && f.Specialty == "" && f.MinRating <= 0
}

// FilterOptions values available for populating filter controls
type FilterOptions struct {
	Locations     []string
	Specialties   []string
	RatingOptions []float64
}
