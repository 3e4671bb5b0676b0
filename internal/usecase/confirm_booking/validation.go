package confirm_booking

import (
	"fmt"
	"strings"
)

// normalizeRequest обрезает пробелы и проверяет обязательные поля
func normalizeRequest(req *Request) error {
	req.SessionID = strings.TrimSpace(req.SessionID)
	req.PatientName = strings.TrimSpace(req.PatientName)
	req.PhoneNumber = strings.TrimSpace(req.PhoneNumber)

	if req.SessionID == "" {
		return fmt.Errorf("%w: sessionId is required", ErrInvalidInput)
	}

	if req.PatientName == "" {
		return fmt.Errorf("%w: patientName is required", ErrInvalidInput)
	}

	if req.PhoneNumber == "" {
		return fmt.Errorf("%w: phoneNumber is required", ErrInvalidInput)
	}

	return nil
}
