package passes

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-HospitalBookingService/internal/domain"
)

const verifyPath = "/api/verify-booking/"

// BuildVerificationPayload собирает данные для QR-кода талона
func BuildVerificationPayload(record domain.BookingRecord, publicURL string, now time.Time) domain.VerificationPayload {
	return domain.VerificationPayload{
		Type:            domain.VerificationType,
		BookingID:       record.BookingID,
		PatientName:     record.PatientName,
		HospitalName:    record.HospitalName,
		ServiceName:     record.ServiceName,
		AppointmentDate: record.Date,
		AppointmentTime: record.Time,
		Location:        record.Location,
		VerificationURL: VerificationURL(publicURL, record.BookingID),
		Timestamp:       now.UTC().Format(time.RFC3339),
	}
}

// VerificationURL ссылка проверки записи
func VerificationURL(publicURL, bookingID string) string {
	return strings.TrimRight(publicURL, "/") + verifyPath + bookingID
}
