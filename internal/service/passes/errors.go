package passes

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных данных записи
	ErrInvalidInput = errors.New("invalid input data")

	// ErrHospitalNotFound возвращается, когда больница не найдена
	ErrHospitalNotFound = errors.New("hospital not found")

	// ErrRenderFailed возвращается, когда документ не удалось сформировать
	ErrRenderFailed = errors.New("failed to render document")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
