package session

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-HospitalBookingService/internal/domain"
	"github.com/m04kA/SMC-HospitalBookingService/pkg/types"
)

// record сериализуемое представление сессии
type record struct {
	ID           string         `json:"id"`
	HospitalID   string         `json:"hospitalId"`
	Year         int            `json:"year"`
	Month        int            `json:"month"`
	SelectedDate *string        `json:"selectedDate,omitempty"` // YYYY-MM-DD
	SelectedTime *string        `json:"selectedTime,omitempty"` // HH:MM
	Service      *serviceRecord `json:"service,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

type serviceRecord struct {
	HospitalID      string  `json:"hospitalId"`
	Name            string  `json:"name"`
	OriginalPrice   float64 `json:"originalPrice"`
	DiscountedPrice float64 `json:"discountedPrice"`
}

func toRecord(s *domain.CalendarSession) record {
	rec := record{
		ID:         s.ID,
		HospitalID: s.HospitalID,
		Year:       s.Selection.DisplayedMonth.Year,
		Month:      int(s.Selection.DisplayedMonth.Month),
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}

	if s.Selection.SelectedDate != nil {
		date := s.Selection.SelectedDate.Format(domain.DateFormat)
		rec.SelectedDate = &date
	}

	if s.Selection.SelectedTime != nil {
		t := s.Selection.SelectedTime.String()
		rec.SelectedTime = &t
	}

	if svc := s.Selection.Service; svc != nil {
		rec.Service = &serviceRecord{
			HospitalID:      svc.HospitalID,
			Name:            svc.Name,
			OriginalPrice:   svc.OriginalPrice,
			DiscountedPrice: svc.DiscountedPrice,
		}
	}

	return rec
}

func (r record) toDomain() (*domain.CalendarSession, error) {
	s := &domain.CalendarSession{
		ID:         r.ID,
		HospitalID: r.HospitalID,
		Selection: domain.BookingSelection{
			DisplayedMonth: domain.Month{Year: r.Year, Month: time.Month(r.Month)},
		},
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}

	if r.SelectedDate != nil {
		date, err := time.Parse(domain.DateFormat, *r.SelectedDate)
		if err != nil {
			return nil, fmt.Errorf("%w: selectedDate: %v", ErrDecode, err)
		}
		s.Selection.SelectedDate = &date
	}

	if r.SelectedTime != nil {
		t, err := types.NewTimeStringFromString(*r.SelectedTime)
		if err != nil {
			return nil, fmt.Errorf("%w: selectedTime: %v", ErrDecode, err)
		}
		s.Selection.SelectedTime = &t
	}

	if r.Service != nil {
		s.Selection.Service = &domain.SelectedService{
			HospitalID:      r.Service.HospitalID,
			Name:            r.Service.Name,
			OriginalPrice:   r.Service.OriginalPrice,
			DiscountedPrice: r.Service.DiscountedPrice,
		}
	}

	return s, nil
}
