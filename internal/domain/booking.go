package domain

import (
	"time"

	"github.com/m04kA/SMC-HospitalBookingService/pkg/types"
)

// SelectedService reference to the service chosen on the hospital page
type SelectedService struct {
	HospitalID      string
	Name            string
	OriginalPrice   float64
	DiscountedPrice float64
}

// Savings derived from the prices
func (s SelectedService) Savings() float64 {
	return ServiceOffering{Name: s.Name, OriginalPrice: s.OriginalPrice, DiscountedPrice: s.DiscountedPrice}.Savings()
}

// BookingSelection state of the calendar widget for one session
type BookingSelection struct {
	DisplayedMonth Month
	SelectedDate   *time.Time        // nil = no date; reset on month change
	SelectedTime   *types.TimeString // nil = no time; reset on date change
	Service        *SelectedService  // nil = no service chosen
}

// CanProceed returns true when both a date and a time are selected
func (s *BookingSelection) CanProceed() bool {
	return s.SelectedDate != nil && s.SelectedTime != nil
}

// IsDateSelected compares calendar dates ignoring the time of day
func (s *BookingSelection) IsDateSelected(date time.Time) bool {
	return s.SelectedDate != nil && SameDay(date, *s.SelectedDate)
}

// IsTimeSelected returns true if the slot is the selected time
func (s *BookingSelection) IsTimeSelected(slot types.TimeString) bool {
	return s.SelectedTime != nil && *s.SelectedTime == slot
}

// CalendarSession a booking interaction session with its private selection
type CalendarSession struct {
	ID         string
	HospitalID string
	Selection  BookingSelection
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// BookingRecord mock booking shown on the confirmation pass. Never persisted.
type BookingRecord struct {
	BookingID       string
	HospitalName    string
	ServiceName     string
	PatientName     string
	PatientPhone    string
	Date            string // "October 2, 2025"
	Time            string // "03:00 PM"
	Location        string
	OriginalPrice   float64
	DiscountedPrice float64
	Savings         float64
}

// VerificationPayload data encoded into the pass QR code
type VerificationPayload struct {
	Type            string `json:"type"`
	BookingID       string `json:"bookingId"`
	PatientName     string `json:"patientName"`
	HospitalName    string `json:"hospitalName"`
	ServiceName     string `json:"serviceName"`
	AppointmentDate string `json:"appointmentDate"`
	AppointmentTime string `json:"appointmentTime"`
	Location        string `json:"location"`
	VerificationURL string `json:"verificationUrl"`
	Timestamp       string `json:"timestamp"`
}
