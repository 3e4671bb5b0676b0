package types

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	// clockFormat внутреннее представление времени (24h)
	clockFormat = "15:04"
	// labelFormat представление времени для отображения ("03:00 PM")
	labelFormat = "03:04 PM"
)

var (
	// ErrInvalidTimeFormat возвращается, когда строку не удалось разобрать как время суток
	ErrInvalidTimeFormat = errors.New("types: invalid time format")
)

// TimeString время суток без даты в формате HH:MM (24h)
type TimeString string

// NewTimeString создает TimeString из time.Time (дата отбрасывается)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(clockFormat))
}

// NewTimeStringFromString разбирает строку в формате "15:04" или "03:04 PM"
func NewTimeStringFromString(s string) (TimeString, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("%w: empty value", ErrInvalidTimeFormat)
	}

	if t, err := time.Parse(clockFormat, s); err == nil {
		return NewTimeString(t), nil
	}

	if t, err := time.Parse(labelFormat, strings.ToUpper(s)); err == nil {
		return NewTimeString(t), nil
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
}

// String возвращает время в формате HH:MM
func (t TimeString) String() string {
	return string(t)
}

// Label возвращает время в 12-часовом формате, например "03:00 PM"
func (t TimeString) Label() string {
	parsed, err := t.parse()
	if err != nil {
		return string(t)
	}
	return parsed.Format(labelFormat)
}

func (t TimeString) parse() (time.Time, error) {
	parsed, err := time.Parse(clockFormat, string(t))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, string(t))
	}
	return parsed, nil
}
