package handler

type createBookingRequest struct {
	Date       string `json:"date"        validate:"required,datetime=2006-01-02"`
	Time       string `json:"time"        validate:"required"`
	ReportType string `json:"report_type" validate:"required,oneof=Child Adult"`
	// Amount is optional; when sent it must match the fixed price table.
	Amount int `json:"amount" validate:"omitempty,gt=0"`
}

type handoffResponse struct {
	UserName   string `json:"user_name"`
	ReportType string `json:"report_type"`
	Amount     int    `json:"amount"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Message    string `json:"message"`
	Link       string `json:"link"`
}
