package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonth_Shift(t *testing.T) {
	tests := []struct {
		name  string
		month Month
		n     int
		want  Month
	}{
		{name: "next", month: Month{2025, time.October}, n: 1, want: Month{2025, time.November}},
		{name: "prev", month: Month{2025, time.October}, n: -1, want: Month{2025, time.September}},
		{name: "year forward", month: Month{2025, time.December}, n: 1, want: Month{2026, time.January}},
		{name: "year back", month: Month{2025, time.January}, n: -1, want: Month{2024, time.December}},
		{name: "twelve months", month: Month{2025, time.March}, n: 12, want: Month{2026, time.March}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.month.Shift(tt.n))
		})
	}
}

func TestMonth_DaysIn(t *testing.T) {
	assert.Equal(t, 31, Month{2025, time.October}.DaysIn())
	assert.Equal(t, 30, Month{2025, time.November}.DaysIn())
	assert.Equal(t, 28, Month{2025, time.February}.DaysIn())
	assert.Equal(t, 29, Month{2024, time.February}.DaysIn())
}

func TestMonth_Contains(t *testing.T) {
	m := Month{2025, time.October}

	assert.True(t, m.Contains(time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, m.Contains(time.Date(2025, time.October, 31, 23, 59, 0, 0, time.UTC)))
	assert.False(t, m.Contains(time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC)))
	// тот же месяц другого года не входит
	assert.False(t, m.Contains(time.Date(2024, time.October, 15, 0, 0, 0, 0, time.UTC)))
}

func TestMonth_String(t *testing.T) {
	assert.Equal(t, "October 2025", Month{2025, time.October}.String())
}

func TestSameDay_IgnoresTimeOfDay(t *testing.T) {
	a := time.Date(2025, time.October, 2, 0, 0, 0, 0, time.UTC)
	b := time.Date(2025, time.October, 2, 23, 59, 59, 0, time.UTC)

	assert.True(t, SameDay(a, b))
	assert.False(t, SameDay(a, b.AddDate(0, 0, 1)))
	assert.Equal(t, a, DateOnly(b))
}

func TestDirection(t *testing.T) {
	assert.Equal(t, -1, DirectionPrev.Offset())
	assert.Equal(t, 1, DirectionNext.Offset())
	assert.Equal(t, 0, Direction("sideways").Offset())
	assert.False(t, Direction("sideways").IsValid())
}

func TestServiceOffering_Savings(t *testing.T) {
	tests := []struct {
		name        string
		offering    ServiceOffering
		wantSavings float64
		wantPercent int
	}{
		{name: "discounted", offering: ServiceOffering{OriginalPrice: 500, DiscountedPrice: 350}, wantSavings: 150, wantPercent: 30},
		{name: "no discount", offering: ServiceOffering{OriginalPrice: 200, DiscountedPrice: 200}, wantSavings: 0, wantPercent: 0},
		{name: "discounted above original", offering: ServiceOffering{OriginalPrice: 100, DiscountedPrice: 120}, wantSavings: 0, wantPercent: 0},
		{name: "free original", offering: ServiceOffering{}, wantSavings: 0, wantPercent: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantSavings, tt.offering.Savings())
			assert.Equal(t, tt.wantPercent, tt.offering.DiscountPercent())
		})
	}
}

func TestBookingSelection_CanProceed(t *testing.T) {
	date := time.Date(2025, time.October, 2, 0, 0, 0, 0, time.UTC)
	slot := TimeSlots[0]

	assert.False(t, (&BookingSelection{}).CanProceed())
	assert.False(t, (&BookingSelection{SelectedDate: &date}).CanProceed())
	assert.False(t, (&BookingSelection{SelectedTime: &slot}).CanProceed())
	assert.True(t, (&BookingSelection{SelectedDate: &date, SelectedTime: &slot}).CanProceed())
}

func TestIsTimeSlot(t *testing.T) {
	assert.Len(t, TimeSlots, 13)
	assert.True(t, IsTimeSlot("15:00"))
	assert.False(t, IsTimeSlot("12:00"))
}

func TestHospitalFilter_IsEmpty(t *testing.T) {
	assert.True(t, HospitalFilter{}.IsEmpty())
	assert.False(t, HospitalFilter{MinRating: 4.5}.IsEmpty())
	assert.False(t, HospitalFilter{Query: "cardio"}.IsEmpty())
}

func TestBookingSelection_IsDateSelected(t *testing.T) {
	date := time.Date(2025, time.October, 2, 0, 0, 0, 0, time.UTC)
	sel := &BookingSelection{}

	assert.False(t, sel.IsDateSelected(date))

	sel.SelectedDate = &date
	assert.True(t, sel.IsDateSelected(time.Date(2025, time.October, 2, 12, 0, 0, 0, time.UTC)))
	assert.False(t, sel.IsDateSelected(time.Date(2025, time.November, 2, 0, 0, 0, 0, time.UTC)))
}

func TestBookingSelection_IsTimeSelected(t *testing.T) {
	sel := &BookingSelection{}
	assert.False(t, sel.IsTimeSelected("15:00"))

	slot := TimeSlots[8]
	sel.SelectedTime = &slot
	assert.True(t, sel.IsTimeSelected("15:00"))
	assert.False(t, sel.IsTimeSelected("15:30"))
}
