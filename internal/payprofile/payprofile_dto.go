package payprofile

type AllowancesResponse struct {
	HRA   string `json:"hra"`
	DA    string `json:"da"`
	Other string `json:"other"`
}

type PayProfileResponse struct {
	EmployeeID       string             `json:"employee_id"`
	BaseAnnualSalary string             `json:"base_annual_salary"`
	FixedDeductions  string             `json:"fixed_deductions"`
	TaxRate          *string            `json:"tax_rate"`
	Allowances       AllowancesResponse `json:"allowances"`
	BonusTarget      string             `json:"bonus_target"`
	UpdatedAt        string             `json:"updated_at"`
}
