package payprofile

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EmployeePayProfile is maintained by HR administration. Payroll only reads it
// and copies the values it needs into its own records.
type EmployeePayProfile struct {
	EmployeeID       uuid.UUID           `gorm:"type:uuid;primaryKey"`
	BaseAnnualSalary decimal.Decimal     `gorm:"type:numeric(14,2);not null;default:0"`
	FixedDeductions  decimal.Decimal     `gorm:"type:numeric(14,2);not null;default:0"`
	TaxRate          decimal.NullDecimal `gorm:"type:numeric(6,4)"` // null falls back to the configured default
	AllowanceHRA     decimal.Decimal     `gorm:"column:allowance_hra;type:numeric(14,2);not null;default:0"`
	AllowanceDA      decimal.Decimal     `gorm:"column:allowance_da;type:numeric(14,2);not null;default:0"`
	AllowanceOther   decimal.Decimal     `gorm:"type:numeric(14,2);not null;default:0"`
	BonusTarget      decimal.Decimal     `gorm:"type:numeric(14,2);not null;default:0"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (EmployeePayProfile) TableName() string {
	return "employee_pay_profiles"
}

// EligibleEmployee is one row of the employee directory as seen by payroll.
type EligibleEmployee struct {
	EmployeeID     uuid.UUID
	FullName       string
	DepartmentName string
	Profile        EmployeePayProfile
}

type eligibleRow struct {
	EmployeeID       uuid.UUID
	FullName         string
	DepartmentName   string
	BaseAnnualSalary decimal.Decimal
	FixedDeductions  decimal.Decimal
	TaxRate          decimal.NullDecimal
	AllowanceHRA     decimal.Decimal `gorm:"column:allowance_hra"`
	AllowanceDA      decimal.Decimal `gorm:"column:allowance_da"`
	AllowanceOther   decimal.Decimal
	BonusTarget      decimal.Decimal
	UpdatedAt        time.Time
}

func (r eligibleRow) toEligibleEmployee() EligibleEmployee {
	return EligibleEmployee{
		EmployeeID:     r.EmployeeID,
		FullName:       r.FullName,
		DepartmentName: r.DepartmentName,
		Profile: EmployeePayProfile{
			EmployeeID:       r.EmployeeID,
			BaseAnnualSalary: r.BaseAnnualSalary,
			FixedDeductions:  r.FixedDeductions,
			TaxRate:          r.TaxRate,
			AllowanceHRA:     r.AllowanceHRA,
			AllowanceDA:      r.AllowanceDA,
			AllowanceOther:   r.AllowanceOther,
			BonusTarget:      r.BonusTarget,
			UpdatedAt:        r.UpdatedAt,
		},
	}
}
