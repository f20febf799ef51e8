package payroll

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const StatusGenerated = "Generated"

// PayrollRecord is one employee's formal pay for one period. Rows are written
// once by Generate and never updated or deleted; the employee context is
// copied in so later directory changes do not alter issued pay.
type PayrollRecord struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID       uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_payroll_record_employee_period;index"`
	PeriodID         uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_payroll_record_employee_period"`
	EmployeeName     string          `gorm:"type:varchar(200);not null"`
	DepartmentName   string          `gorm:"type:varchar(200);not null;default:''"`
	BaseAnnualSalary decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	TaxRate          decimal.Decimal `gorm:"type:numeric(6,4);not null"`
	GrossPay         decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Taxes            decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Deductions       decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	NetPay           decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Status           string          `gorm:"type:varchar(20);not null;default:'Generated'"`
	GeneratedBy      uuid.UUID       `gorm:"type:uuid;not null"`
	CreatedAt        time.Time
}

func (PayrollRecord) TableName() string {
	return "payroll_records"
}

// RecordUniqueIndex guards against a second record for the same employee and period.
const RecordUniqueIndex = "uq_payroll_record_employee_period"
