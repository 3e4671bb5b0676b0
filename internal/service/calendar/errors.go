package calendar

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("calendar session not found")

	// ErrHospitalNotFound возвращается, когда больница сессии не найдена
	ErrHospitalNotFound = errors.New("hospital not found")

	// ErrServiceNotFound возвращается, когда у больницы нет выбранной услуги
	ErrServiceNotFound = errors.New("service not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
