package confirm_booking

import (
	"github.com/m04kA/SMC-HospitalBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-HospitalBookingService/internal/domain"
	confirmBooking "github.com/m04kA/SMC-HospitalBookingService/internal/usecase/confirm_booking"
)

// ConfirmBookingRequest HTTP request model
type ConfirmBookingRequest struct {
	SessionID   string `json:"sessionId"`
	PatientName string `json:"patientName"`
	PhoneNumber string `json:"phoneNumber"`
}

// ConfirmBookingResponse HTTP response model
type ConfirmBookingResponse struct {
	BookingData  *handlers.BookingData      `json:"bookingData"`
	Verification domain.VerificationPayload `json:"verification"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ConfirmBookingRequest) ToUseCaseRequest() *confirmBooking.Request {
	return &confirmBooking.Request{
		SessionID:   r.SessionID,
		PatientName: r.PatientName,
		PhoneNumber: r.PhoneNumber,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *confirmBooking.Response) *ConfirmBookingResponse {
	return &ConfirmBookingResponse{
		BookingData:  handlers.FromDomainBookingRecord(resp.Record),
		Verification: resp.Verification,
	}
}
