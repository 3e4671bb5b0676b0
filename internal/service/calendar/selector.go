package calendar

import (
	"time"

	"github.com/m04kA/SMC-HospitalBookingService/internal/domain"
	"github.com/m04kA/SMC-HospitalBookingService/pkg/types"
)

// Selector конечный автомат выбора даты и времени поверх BookingSelection.
// Недопустимые переходы ничего не меняют и возвращают false.
type Selector struct {
	sel *domain.BookingSelection
}

// NewSelection пустой выбор для месяца, в котором находится now
func NewSelection(now time.Time) domain.BookingSelection {
	return domain.BookingSelection{DisplayedMonth: domain.MonthOf(now)}
}

// NewSelector оборачивает существующий выбор
func NewSelector(sel *domain.BookingSelection) *Selector {
	return &Selector{sel: sel}
}

// Navigate переключает месяц на один календарный месяц и сбрасывает дату и время
func (s *Selector) Navigate(direction domain.Direction) bool {
	offset := direction.Offset()
	if offset == 0 {
		return false
	}

	s.sel.DisplayedMonth = s.sel.DisplayedMonth.Shift(offset)
	s.sel.SelectedDate = nil
	s.sel.SelectedTime = nil
	return true
}

// SelectDate выбирает дату отображаемого месяца; время всегда сбрасывается
func (s *Selector) SelectDate(date time.Time) bool {
	if !s.sel.DisplayedMonth.Contains(date) {
		return false
	}

	d := domain.DateOnly(date)
	s.sel.SelectedDate = &d
	s.sel.SelectedTime = nil
	return true
}

// SelectTime выбирает один из фиксированных слотов
func (s *Selector) SelectTime(t types.TimeString) bool {
	if !domain.IsTimeSlot(t) {
		return false
	}

	s.sel.SelectedTime = &t
	return true
}

// SelectService запоминает выбранную услугу, дата и время не меняются
func (s *Selector) SelectService(service domain.SelectedService) {
	s.sel.Service = &service
}

// CanProceed true, когда выбраны и дата, и время
func (s *Selector) CanProceed() bool {
	return s.sel.CanProceed()
}
