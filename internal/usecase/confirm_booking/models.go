package confirm_booking

import "github.com/m04kA/SMC-HospitalBookingService/internal/domain"

// Request модель запроса на подтверждение записи
type Request struct {
	SessionID   string // ID календарной сессии
	PatientName string // Имя пациента
	PhoneNumber string // Телефон пациента
}

// Response модель ответа с подтвержденной записью
type Response struct {
	Record       domain.BookingRecord       // Данные записи для талона
	Verification domain.VerificationPayload // Данные для QR-кода
}
