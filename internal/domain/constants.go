package domain

import "github.com/m04kA/SMC-HospitalBookingService/pkg/types"

// Calendar grid constants
const (
	GridWeeks    = 6
	GridDays     = 7
	GridCellsNum = GridWeeks * GridDays // 42
)

// Booking constants
const (
	DefaultBookingIDPrefix = "MAVEN-"
	BookingIDLength        = 8
	BookingIDAlphabet      = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	VerificationType       = "appointment_verification"
	DefaultCurrency        = "SAR"
)

// Time format constants
const (
	DateFormat        = "2006-01-02"      // YYYY-MM-DD
	DisplayDateFormat = "January 2, 2006" // October 2, 2025
)

// TimeSlots fixed appointment slots offered on every selectable date.
// Midday gap between 11:30 and 14:00 is intentional.
var TimeSlots = []types.TimeString{
	"09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
	"14:00", "14:30", "15:00", "15:30", "16:00", "16:30", "17:00",
}

// RatingOptions minimum rating thresholds offered by the filter (0 = any)
var RatingOptions = []float64{0, 4.0, 4.5}

// IsTimeSlot returns true if t is one of TimeSlots
func IsTimeSlot(t types.TimeString) bool {
	for _, slot := range TimeSlots {
		if slot == t {
			return true
		}
	}
	return false
}
