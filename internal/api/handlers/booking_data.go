package handlers

import "github.com/m04kA/SMC-HospitalBookingService/internal/domain"

// BookingData запись на прием в формате клиента (ответ подтверждения, запросы экспорта)
type BookingData struct {
	BookingID       string  `json:"bookingId"`
	HospitalName    string  `json:"hospitalName"`
	ServiceName     string  `json:"serviceName"`
	PatientName     string  `json:"patientName"`
	PatientPhone    string  `json:"patientPhone,omitempty"`
	Date            string  `json:"date"` // "October 2, 2025"
	Time            string  `json:"time"` // "03:00 PM"
	Location        string  `json:"location"`
	OriginalPrice   float64 `json:"originalPrice"`
	DiscountedPrice float64 `json:"discountedPrice"`
	Savings         float64 `json:"savings"`
}

// PassRequest тело запросов экспорта талона
type PassRequest struct {
	BookingData *BookingData `json:"bookingData"`
}

// ToDomain конвертирует в доменную модель
func (b *BookingData) ToDomain() domain.BookingRecord {
	return domain.BookingRecord{
		BookingID:       b.BookingID,
		HospitalName:    b.HospitalName,
		ServiceName:     b.ServiceName,
		PatientName:     b.PatientName,
		PatientPhone:    b.PatientPhone,
		Date:            b.Date,
		Time:            b.Time,
		Location:        b.Location,
		OriginalPrice:   b.OriginalPrice,
		DiscountedPrice: b.DiscountedPrice,
		Savings:         b.Savings,
	}
}

// FromDomainBookingRecord конвертирует доменную модель в HTTP модель
func FromDomainBookingRecord(r domain.BookingRecord) *BookingData {
	return &BookingData{
		BookingID:       r.BookingID,
		HospitalName:    r.HospitalName,
		ServiceName:     r.ServiceName,
		PatientName:     r.PatientName,
		PatientPhone:    r.PatientPhone,
		Date:            r.Date,
		Time:            r.Time,
		Location:        r.Location,
		OriginalPrice:   r.OriginalPrice,
		DiscountedPrice: r.DiscountedPrice,
		Savings:         r.Savings,
	}
}
