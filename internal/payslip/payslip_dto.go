package payslip

type Branding struct {
	Name               string `json:"name"`
	LogoURL            string `json:"logo_url"`
	Address            string `json:"address"`
	RegistrationNumber string `json:"registration_number"`
	TaxID              string `json:"tax_id"`
}

type EmployeeIdentity struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Department string `json:"department"`
}

type LineItem struct {
	Label  string `json:"label"`
	Amount string `json:"amount"`
}

// Payslip is the renderable view of one payment. Both sources fill the same
// fields; RunNumber and DaysPaid stay empty for formal records.
type Payslip struct {
	Reference       string           `json:"reference"`
	Source          string           `json:"source"`
	Status          string           `json:"status"`
	StatusLabel     string           `json:"status_label"`
	Institution     Branding         `json:"institution"`
	Employee        EmployeeIdentity `json:"employee"`
	PeriodLabel     string           `json:"period_label"`
	PeriodStart     string           `json:"period_start"`
	PeriodEnd       string           `json:"period_end"`
	Earnings        []LineItem       `json:"earnings"`
	Deductions      []LineItem       `json:"deductions"`
	GrossPay        string           `json:"gross_pay"`
	TotalDeductions string           `json:"total_deductions"`
	NetPay          string           `json:"net_pay"`
	DaysPaid        string           `json:"days_paid,omitempty"`
	RunNumber       string           `json:"run_number,omitempty"`
	IssuedAt        string           `json:"issued_at"`
}
