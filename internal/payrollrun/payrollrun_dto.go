package payrollrun

import "encoding/json"

// SaveRunRequest is the one accepted shape for a manual run. Amounts are
// JSON numbers or numeric strings.
type SaveRunRequest struct {
	PeriodStart     string                 `json:"period_start" validate:"required,datetime=2006-01-02"`
	PeriodEnd       string                 `json:"period_end" validate:"required,datetime=2006-01-02"`
	TotalGross      json.Number            `json:"total_gross" validate:"required,amount"`
	TotalDeductions json.Number            `json:"total_deductions" validate:"required,amount"`
	TotalNet        json.Number            `json:"total_net" validate:"required,amount"`
	Details         []SaveRunDetailRequest `json:"details" validate:"required,min=1,dive"`
}

type SaveRunDetailRequest struct {
	EmployeeID      string          `json:"employee_id" validate:"required,uuid"`
	FullName        string          `json:"full_name" validate:"required,max=200"`
	DepartmentName  string          `json:"department_name" validate:"max=200"`
	DaysPaid        json.Number     `json:"days_paid" validate:"omitempty,days"`
	GrossPay        json.Number     `json:"gross_pay" validate:"required,amount"`
	Deductions      json.Number     `json:"deductions" validate:"required,amount"`
	NetPay          json.Number     `json:"net_pay" validate:"required,amount"`
	PayslipSnapshot json.RawMessage `json:"payslip_snapshot"`
}

type SaveRunResponse struct {
	RunID     string `json:"run_id"`
	RunNumber string `json:"run_number"`
}

type RunDetailResponse struct {
	ID              string          `json:"id"`
	EmployeeID      string          `json:"employee_id"`
	FullName        string          `json:"full_name"`
	DepartmentName  string          `json:"department_name"`
	DaysPaid        string          `json:"days_paid"`
	GrossPay        string          `json:"gross_pay"`
	Deductions      string          `json:"deductions"`
	NetPay          string          `json:"net_pay"`
	PayslipSnapshot json.RawMessage `json:"payslip_snapshot"`
}

type RunResponse struct {
	ID              string              `json:"id"`
	RunNumber       string              `json:"run_number"`
	PeriodStart     string              `json:"period_start"`
	PeriodEnd       string              `json:"period_end"`
	Status          string              `json:"status"`
	TotalGross      string              `json:"total_gross"`
	TotalDeductions string              `json:"total_deductions"`
	TotalNet        string              `json:"total_net"`
	RunBy           string              `json:"run_by"`
	RunDate         string              `json:"run_date"`
	Details         []RunDetailResponse `json:"details"`
}
