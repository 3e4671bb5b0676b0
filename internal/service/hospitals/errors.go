package hospitals

import "errors"

var (
	// ErrHospitalNotFound возвращается, когда больница не найдена
	ErrHospitalNotFound = errors.New("hospital not found")

	// ErrServiceNotFound возвращается, когда у больницы нет услуги с таким названием
	ErrServiceNotFound = errors.New("service not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
