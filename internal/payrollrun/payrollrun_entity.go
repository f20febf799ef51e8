package payrollrun

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

const StatusFinalized = "Finalized"

// PayrollRun is a frozen, client compiled manual payroll run. The header and
// its details are written together once and never edited.
type PayrollRun struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RunNumber       string          `gorm:"type:varchar(20);not null;uniqueIndex"`
	PeriodStart     time.Time       `gorm:"type:date;not null"`
	PeriodEnd       time.Time       `gorm:"type:date;not null;index"`
	Status          string          `gorm:"type:varchar(20);not null;default:'Finalized'"`
	TotalGross      decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	TotalDeductions decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	TotalNet        decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	RunBy           uuid.UUID       `gorm:"type:uuid;not null"`
	RunDate         time.Time       `gorm:"not null"`
	CreatedAt       time.Time

	Details []PayrollRunDetail `gorm:"foreignKey:RunID"`
}

func (PayrollRun) TableName() string {
	return "payroll_runs"
}

type PayrollRunDetail struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RunID           uuid.UUID       `gorm:"type:uuid;not null;index"`
	EmployeeID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	FullName        string          `gorm:"type:varchar(200);not null"`
	DepartmentName  string          `gorm:"type:varchar(200);not null;default:''"`
	DaysPaid        decimal.Decimal `gorm:"type:numeric(6,2);not null;default:0"`
	GrossPay        decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Deductions      decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	NetPay          decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	PayslipSnapshot datatypes.JSON  `gorm:"type:jsonb;not null"`
	CreatedAt       time.Time
}

func (PayrollRunDetail) TableName() string {
	return "payroll_run_details"
}
