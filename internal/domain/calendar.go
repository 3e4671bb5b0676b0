package domain

import "time"

// Month identifies a displayed calendar month
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf returns the month containing t
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// FirstDay returns midnight UTC of the first day of the month
func (m Month) FirstDay() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// Shift moves the month by n calendar months (not by a fixed day count)
func (m Month) Shift(n int) Month {
	return MonthOf(time.Date(m.Year, m.Month+time.Month(n), 1, 0, 0, 0, 0, time.UTC))
}

// Contains returns true if the date falls within the month (year and month compared)
func (m Month) Contains(date time.Time) bool {
	return date.Year() == m.Year && date.Month() == m.Month
}

// DaysIn returns the number of days in the month
func (m Month) DaysIn() int {
	return m.FirstDay().AddDate(0, 1, -1).Day()
}

// String returns the month as "October 2025"
func (m Month) String() string {
	return m.FirstDay().Format("January 2006")
}

// CalendarCell one entry of the month grid
type CalendarCell struct {
	Date           time.Time
	IsCurrentMonth bool // only current-month cells are selectable
}

// Direction of month navigation
type Direction string

const (
	DirectionPrev Direction = "prev"
	DirectionNext Direction = "next"
)

// Offset returns the month offset for the direction (0 for unknown values)
func (d Direction) Offset() int {
	switch d {
	case DirectionPrev:
		return -1
	case DirectionNext:
		return 1
	default:
		return 0
	}
}

// IsValid returns true for prev/next
func (d Direction) IsValid() bool {
	return d == DirectionPrev || d == DirectionNext
}

// SameDay compares calendar dates ignoring the time of day
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// DateOnly truncates t to midnight UTC of the same calendar date
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
