package update_calendar_session

// NavigateRequest HTTP request model
type NavigateRequest struct {
	Direction string `json:"direction"` // "prev" | "next"
}

// SelectDateRequest HTTP request model
type SelectDateRequest struct {
	Date string `json:"date"` // "2025-10-02"
}

// SelectTimeRequest HTTP request model
type SelectTimeRequest struct {
	Time string `json:"time"` // "03:00 PM" или "15:00"
}

// SelectServiceRequest HTTP request model
type SelectServiceRequest struct {
	ServiceName string `json:"serviceName"`
}
