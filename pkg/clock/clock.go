package clock

import "time"

// Real провайдер текущего времени в заданной временной зоне
type Real struct {
	loc *time.Location
}

// NewReal создает провайдер; nil означает UTC
func NewReal(loc *time.Location) *Real {
	if loc == nil {
		loc = time.UTC
	}
	return &Real{loc: loc}
}

// Now возвращает текущее время
func (c *Real) Now() time.Time {
	return time.Now().In(c.loc)
}

// Fixed провайдер, всегда возвращающий одно и то же время (для тестов)
type Fixed struct {
	T time.Time
}

// Now возвращает зафиксированное время
func (c Fixed) Now() time.Time {
	return c.T
}
