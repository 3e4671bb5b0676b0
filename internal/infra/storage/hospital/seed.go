package hospital

import "github.com/m04kA/SMC-HospitalBookingService/internal/domain"

// SeedHospitals демонстрационный каталог больниц
func SeedHospitals() []domain.Hospital {
	return []domain.Hospital{
		{
			ID:           "1",
			Name:         "King Faisal Specialist Hospital & Research Centre",
			ImageURL:     "/images/faisal.webp",
			DiscountTag:  "Up to 30% Off",
			Location:     "Riyadh, Saudi Arabia",
			Rating:       4.8,
			Specialties:  []string{"Cardiology", "Oncology", "Neurology", "Orthopedics", "Emergency Care"},
			WorkingHours: "24/7 Emergency Services",
			Address:      "Al Mathar Ash Shamali, Riyadh 11211, Saudi Arabia",
			Phone:        "+966 11 442 7777",
			Description: "A world-class medical facility specializing in cancer treatment, organ transplantation, " +
				"and cardiovascular diseases. Established in 1975, it serves as a tertiary care hospital and research center.",
			Services: []domain.ServiceOffering{
				{Name: "Cardiology Consultation", OriginalPrice: 300, DiscountedPrice: 210},
				{Name: "Oncology Treatment Session", OriginalPrice: 800, DiscountedPrice: 600},
				{Name: "Neurology Consultation", OriginalPrice: 250, DiscountedPrice: 175},
				{Name: "Orthopedic Surgery", OriginalPrice: 1500, DiscountedPrice: 1200},
				{Name: "Emergency Care Visit", OriginalPrice: 200, DiscountedPrice: 140},
			},
		},
		{
			ID:           "2",
			Name:         "King Abdulaziz Medical City",
			ImageURL:     "/images/abdulaziz.webp",
			DiscountTag:  "Up to 25% Off",
			Location:     "Riyadh, Saudi Arabia",
			Rating:       4.7,
			Specialties:  []string{"General Medicine", "Surgery", "Pediatrics", "Ophthalmology", "Dermatology"},
			WorkingHours: "Open 24 hours",
			Address:      "King Abdulaziz Medical City, Riyadh 11426, Saudi Arabia",
			Phone:        "+966 11 801 1111",
			Description: "A comprehensive healthcare facility providing specialized medical services including " +
				"cardiac care, oncology, and transplant programs.",
			Services: []domain.ServiceOffering{
				{Name: "General Medicine Consultation", OriginalPrice: 150, DiscountedPrice: 112},
				{Name: "Surgery Consultation", OriginalPrice: 400, DiscountedPrice: 320},
				{Name: "Pediatric Check-up", OriginalPrice: 180, DiscountedPrice: 144},
				{Name: "Ophthalmology Exam", OriginalPrice: 200, DiscountedPrice: 160},
				{Name: "Dermatology Consultation", OriginalPrice: 220, DiscountedPrice: 176},
			},
		},
		{
			ID:           "3",
			Name:         "King Fahd Medical City",
			ImageURL:     "/images/fahad.webp",
			DiscountTag:  "Up to 20% Off",
			Location:     "Riyadh, Saudi Arabia",
			Rating:       4.6,
			Specialties:  []string{"Internal Medicine", "Radiology", "Pathology", "Rehabilitation", "Mental Health"},
			WorkingHours: "6:00 AM - 10:00 PM",
			Address:      "King Fahd Medical City, Riyadh 11564, Saudi Arabia",
			Phone:        "+966 11 288 9999",
			Description: "A major healthcare complex offering comprehensive medical services with specialized " +
				"centers for rehabilitation and mental health.",
			Services: []domain.ServiceOffering{
				{Name: "Internal Medicine Consultation", OriginalPrice: 180, DiscountedPrice: 144},
				{Name: "Radiology Scan", OriginalPrice: 350, DiscountedPrice: 280},
				{Name: "Pathology Test", OriginalPrice: 120, DiscountedPrice: 96},
				{Name: "Rehabilitation Session", OriginalPrice: 200, DiscountedPrice: 160},
				{Name: "Mental Health Consultation", OriginalPrice: 250, DiscountedPrice: 200},
			},
		},
		{
			ID:           "4",
			Name:         "King Abdullah Medical Complex",
			ImageURL:     "/images/abdullah.jpg",
			DiscountTag:  "Up to 35% Off",
			Location:     "Jeddah, Saudi Arabia",
			Rating:       4.9,
			Specialties:  []string{"Cardiac Surgery", "Neurosurgery", "Transplant Services", "Emergency Medicine"},
			WorkingHours: "24/7 All Services",
			Address:      "King Abdullah Medical Complex, Jeddah 21423, Saudi Arabia",
			Phone:        "+966 12 640 1000",
			Description: "A state-of-the-art medical facility specializing in cardiac surgery, neurosurgery, " +
				"and emergency medicine with 24/7 services.",
			Services: []domain.ServiceOffering{
				{Name: "Cardiac Surgery Consultation", OriginalPrice: 500, DiscountedPrice: 350},
				{Name: "Neurosurgery Consultation", OriginalPrice: 600, DiscountedPrice: 450},
				{Name: "Transplant Consultation", OriginalPrice: 800, DiscountedPrice: 600},
				{Name: "Emergency Medicine Visit", OriginalPrice: 300, DiscountedPrice: 210},
				{Name: "Intensive Care Consultation", OriginalPrice: 400, DiscountedPrice: 320},
			},
		},
		{
			ID:           "5",
			Name:         "Dr. Sulaiman Al Habib Hospital",
			ImageURL:     "/images/sulaiman.jpg",
			DiscountTag:  "Up to 15% Off",
			Location:     "Dubai, UAE",
			Rating:       4.5,
			Specialties:  []string{"General Practice", "Obstetrics", "Gynecology", "Family Medicine"},
			WorkingHours: "8:00 AM - 8:00 PM",
			Address:      "Dr. Sulaiman Al Habib Hospital, Dubai Healthcare City, UAE",
			Phone:        "+971 4 429 7777",
			Description: "A modern healthcare facility offering comprehensive medical services including " +
				"general practice, obstetrics, and family medicine.",
			Services: []domain.ServiceOffering{
				{Name: "General Practice Consultation", OriginalPrice: 200, DiscountedPrice: 170},
				{Name: "Obstetrics Check-up", OriginalPrice: 250, DiscountedPrice: 212},
				{Name: "Gynecology Consultation", OriginalPrice: 220, DiscountedPrice: 187},
				{Name: "Family Medicine Visit", OriginalPrice: 180, DiscountedPrice: 153},
				{Name: "Vaccination Service", OriginalPrice: 100, DiscountedPrice: 85},
			},
		},
		{
			ID:           "6",
			Name:         "Al Noor Specialist Hospital",
			ImageURL:     "/images/al_noor.webp",
			DiscountTag:  "Up to 40% Off",
			Location:     "Mecca, Saudi Arabia",
			Rating:       4.4,
			Specialties:  []string{"Emergency Care", "General Surgery", "Internal Medicine", "Pediatrics"},
			WorkingHours: "24/7 Emergency",
			Address:      "Al Noor Specialist Hospital, Mecca 24231, Saudi Arabia",
			Phone:        "+966 12 542 2222",
			Description: "A specialized healthcare center providing emergency care, general surgery, " +
				"and pediatric services to the local community.",
			Services: []domain.ServiceOffering{
				{Name: "Emergency Care Visit", OriginalPrice: 150, DiscountedPrice: 90},
				{Name: "General Surgery Consultation", OriginalPrice: 300, DiscountedPrice: 240},
				{Name: "Internal Medicine Consultation", OriginalPrice: 180, DiscountedPrice: 144},
				{Name: "Pediatric Check-up", OriginalPrice: 160, DiscountedPrice: 128},
				{Name: "Laboratory Tests", OriginalPrice: 120, DiscountedPrice: 96},
			},
		},
	}
}
