package calendar

import (
	"time"

	"github.com/m04kA/SMC-HospitalBookingService/internal/domain"
)

// BuildMonthGrid строит сетку из 42 дней (6 недель по 7 дней, неделя начинается с воскресенья):
// хвост предыдущего месяца, все дни месяца, начало следующего месяца.
func BuildMonthGrid(month domain.Month) []domain.CalendarCell {
	first := month.FirstDay()
	leading := int(first.Weekday()) // 0 = Sunday
	daysInMonth := month.DaysIn()

	cells := make([]domain.CalendarCell, 0, domain.GridCellsNum)

	// Дни предыдущего месяца, строго раньше первого числа
	for i := leading; i > 0; i-- {
		cells = append(cells, domain.CalendarCell{Date: first.AddDate(0, 0, -i)})
	}

	for day := 1; day <= daysInMonth; day++ {
		cells = append(cells, domain.CalendarCell{
			Date:           time.Date(month.Year, month.Month, day, 0, 0, 0, 0, time.UTC),
			IsCurrentMonth: true,
		})
	}

	// Максимум 6 + 31 = 37, поэтому хвост всегда неотрицательный
	next := month.Shift(1).FirstDay()
	for day := 0; len(cells) < domain.GridCellsNum; day++ {
		cells = append(cells, domain.CalendarCell{Date: next.AddDate(0, 0, day)})
	}

	return cells
}
