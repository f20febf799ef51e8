package payperiod

type OpenPeriodRequest struct {
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
}

type PayPeriodResponse struct {
	ID          string  `json:"id"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	Status      string  `json:"status"`
	CreatedBy   string  `json:"created_by"`
	GeneratedBy *string `json:"generated_by,omitempty"`
	GeneratedAt *string `json:"generated_at,omitempty"`
	CreatedAt   string  `json:"created_at"`
}
