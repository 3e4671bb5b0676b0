package models

import (
	"time"

	"github.com/m04kA/SMC-HospitalBookingService/internal/domain"
)

// Request модели

// CreateSessionRequest запрос на открытие календаря для больницы
type CreateSessionRequest struct {
	HospitalID  string  `json:"hospitalId"`
	ServiceName *string `json:"serviceName,omitempty"`
}

// Response модели

// SessionResponse состояние календаря сессии
type SessionResponse struct {
	ID           string           `json:"id"`
	HospitalID   string           `json:"hospitalId"`
	Month        string           `json:"month"` // "October 2025"
	Year         int              `json:"year"`
	MonthNumber  int              `json:"monthNumber"`
	Days         []DayResponse    `json:"days"`
	TimeSlots    []SlotResponse   `json:"timeSlots"`
	SelectedDate *string          `json:"selectedDate,omitempty"` // "2025-10-02"
	SelectedTime *string          `json:"selectedTime,omitempty"` // "03:00 PM"
	Service      *ServiceResponse `json:"service,omitempty"`
	CanProceed   bool             `json:"canProceed"`
	UpdatedAt    time.Time        `json:"updatedAt"`
}

// DayResponse ячейка сетки календаря
type DayResponse struct {
	Date           string `json:"date"`
	Day            int    `json:"day"`
	IsCurrentMonth bool   `json:"isCurrentMonth"`
	IsToday        bool   `json:"isToday"`
	IsSelected     bool   `json:"isSelected"`
}

// SlotResponse временной слот
type SlotResponse struct {
	Time     string `json:"time"` // "09:00 AM"
	Selected bool   `json:"selected"`
}

// ServiceResponse выбранная услуга
type ServiceResponse struct {
	Name            string  `json:"name"`
	OriginalPrice   float64 `json:"originalPrice"`
	DiscountedPrice float64 `json:"discountedPrice"`
	Savings         float64 `json:"savings"`
}

// Методы конвертации

// FromDomainSession строит ответ с сеткой месяца и флагами today/selected
func FromDomainSession(s *domain.CalendarSession, cells []domain.CalendarCell, now time.Time) *SessionResponse {
	sel := &s.Selection

	resp := &SessionResponse{
		ID:          s.ID,
		HospitalID:  s.HospitalID,
		Month:       sel.DisplayedMonth.String(),
		Year:        sel.DisplayedMonth.Year,
		MonthNumber: int(sel.DisplayedMonth.Month),
		Days:        make([]DayResponse, len(cells)),
		TimeSlots:   make([]SlotResponse, len(domain.TimeSlots)),
		CanProceed:  sel.CanProceed(),
		UpdatedAt:   s.UpdatedAt,
	}

	for i, cell := range cells {
		resp.Days[i] = DayResponse{
			Date:           cell.Date.Format(domain.DateFormat),
			Day:            cell.Date.Day(),
			IsCurrentMonth: cell.IsCurrentMonth,
			IsToday:        domain.SameDay(cell.Date, now),
			IsSelected:     sel.IsDateSelected(cell.Date),
		}
	}

	for i, slot := range domain.TimeSlots {
		resp.TimeSlots[i] = SlotResponse{
			Time:     slot.Label(),
			Selected: sel.IsTimeSelected(slot),
		}
	}

	if sel.SelectedDate != nil {
		date := sel.SelectedDate.Format(domain.DateFormat)
		resp.SelectedDate = &date
	}

	if sel.SelectedTime != nil {
		label := sel.SelectedTime.Label()
		resp.SelectedTime = &label
	}

	if sel.Service != nil {
		resp.Service = &ServiceResponse{
			Name:            sel.Service.Name,
			OriginalPrice:   sel.Service.OriginalPrice,
			DiscountedPrice: sel.Service.DiscountedPrice,
			Savings:         sel.Service.Savings(),
		}
	}

	return resp
}
