package payroll

type PayrollRecordResponse struct {
	ID               string `json:"id"`
	EmployeeID       string `json:"employee_id"`
	PeriodID         string `json:"period_id"`
	EmployeeName     string `json:"employee_name"`
	DepartmentName   string `json:"department_name"`
	BaseAnnualSalary string `json:"base_annual_salary"`
	TaxRate          string `json:"tax_rate"`
	GrossPay         string `json:"gross_pay"`
	Taxes            string `json:"taxes"`
	Deductions       string `json:"deductions"`
	NetPay           string `json:"net_pay"`
	Status           string `json:"status"`
	GeneratedBy      string `json:"generated_by"`
	CreatedAt        string `json:"created_at"`
}

type GenerateResponse struct {
	PeriodID    string                  `json:"period_id"`
	RecordCount int                     `json:"record_count"`
	Records     []PayrollRecordResponse `json:"records"`
}
