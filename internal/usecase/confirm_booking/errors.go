package confirm_booking

import "errors"

var (
	// ErrSessionNotFound возвращается, когда календарная сессия не найдена или истекла
	ErrSessionNotFound = errors.New("confirm_booking: session not found")

	// ErrHospitalNotFound возвращается, когда больница сессии не найдена
	ErrHospitalNotFound = errors.New("confirm_booking: hospital not found")

	// ErrSelectionIncomplete возвращается, когда не выбраны дата или время
	ErrSelectionIncomplete = errors.New("confirm_booking: date and time must be selected")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("confirm_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("confirm_booking: internal error")
)
