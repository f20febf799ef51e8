package payhistory

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

//go:generate mockgen -source=payhistory_repo.go -destination=mock/payhistory_repo_mock.go -package=mock
type Repository interface {
	FormalByEmployee(ctx context.Context, employeeID string) ([]Entry, error)
	ManualByEmployee(ctx context.Context, employeeID string) ([]Entry, error)
	FormalByID(ctx context.Context, id string) (*Entry, error)
	ManualByID(ctx context.Context, id string) (*Entry, error)
	ManualByRunAndEmployee(ctx context.Context, runID, employeeID string) (*Entry, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

const formalSelect = `
SELECT
	r.id, r.employee_id, r.employee_name, r.department_name,
	r.gross_pay, r.taxes, r.tax_rate, r.deductions, r.net_pay, r.status,
	r.period_id, p.start_date AS period_start, p.end_date AS period_end, r.created_at
FROM payroll_records r
JOIN pay_periods p ON p.id = r.period_id
`

const manualSelect = `
SELECT
	d.id, d.employee_id, d.full_name, d.department_name,
	d.gross_pay, d.deductions, d.net_pay, d.days_paid, d.payslip_snapshot,
	pr.status, pr.id AS run_id, pr.run_number, pr.period_start, pr.period_end, pr.run_date
FROM payroll_run_details d
JOIN payroll_runs pr ON pr.id = d.run_id
`

type formalRow struct {
	ID             uuid.UUID
	EmployeeID     uuid.UUID
	EmployeeName   string
	DepartmentName string
	GrossPay       decimal.Decimal
	Taxes          decimal.Decimal
	TaxRate        decimal.Decimal
	Deductions     decimal.Decimal
	NetPay         decimal.Decimal
	Status         string
	PeriodID       uuid.UUID
	PeriodStart    time.Time
	PeriodEnd      time.Time
	CreatedAt      time.Time
}

func (r formalRow) toEntry() Entry {
	return Entry{
		ID:             r.ID.String(),
		Source:         SourceFormal,
		EmployeeID:     r.EmployeeID.String(),
		GrossPay:       r.GrossPay,
		NetPay:         r.NetPay,
		PeriodStart:    r.PeriodStart,
		PeriodEnd:      r.PeriodEnd,
		Status:         r.Status,
		ReferenceID:    r.PeriodID.String(),
		EmployeeName:   r.EmployeeName,
		DepartmentName: r.DepartmentName,
		Taxes:          decimal.NewNullDecimal(r.Taxes),
		TaxRate:        decimal.NewNullDecimal(r.TaxRate),
		Deductions:     r.Deductions,
		IssuedAt:       r.CreatedAt,
	}
}

type manualRow struct {
	ID              uuid.UUID
	EmployeeID      uuid.UUID
	FullName        string
	DepartmentName  string
	GrossPay        decimal.Decimal
	Deductions      decimal.Decimal
	NetPay          decimal.Decimal
	DaysPaid        decimal.Decimal
	PayslipSnapshot datatypes.JSON
	Status          string
	RunID           uuid.UUID
	RunNumber       string
	PeriodStart     time.Time
	PeriodEnd       time.Time
	RunDate         time.Time
}

func (r manualRow) toEntry() Entry {
	return Entry{
		ID:             r.ID.String(),
		Source:         SourceManual,
		EmployeeID:     r.EmployeeID.String(),
		GrossPay:       r.GrossPay,
		NetPay:         r.NetPay,
		PeriodStart:    r.PeriodStart,
		PeriodEnd:      r.PeriodEnd,
		Status:         r.Status,
		ReferenceID:    r.RunID.String(),
		EmployeeName:   r.FullName,
		DepartmentName: r.DepartmentName,
		Deductions:     r.Deductions,
		DaysPaid:       decimal.NewNullDecimal(r.DaysPaid),
		RunNumber:      r.RunNumber,
		Snapshot:       []byte(r.PayslipSnapshot),
		IssuedAt:       r.RunDate,
	}
}

func (r *repository) FormalByEmployee(ctx context.Context, employeeID string) ([]Entry, error) {
	var rows []formalRow
	if err := r.db.WithContext(ctx).Raw(formalSelect+"WHERE r.employee_id = ?", employeeID).Scan(&rows).Error; err != nil {
		return nil, err
	}
	entries := make([]Entry, len(rows))
	for i, row := range rows {
		entries[i] = row.toEntry()
	}
	return entries, nil
}

func (r *repository) ManualByEmployee(ctx context.Context, employeeID string) ([]Entry, error) {
	var rows []manualRow
	if err := r.db.WithContext(ctx).Raw(manualSelect+"WHERE d.employee_id = ?", employeeID).Scan(&rows).Error; err != nil {
		return nil, err
	}
	entries := make([]Entry, len(rows))
	for i, row := range rows {
		entries[i] = row.toEntry()
	}
	return entries, nil
}

func (r *repository) FormalByID(ctx context.Context, id string) (*Entry, error) {
	var row formalRow
	res := r.db.WithContext(ctx).Raw(formalSelect+"WHERE r.id = ?", id).Scan(&row)
	if err := firstRowError(res); err != nil {
		return nil, err
	}
	e := row.toEntry()
	return &e, nil
}

func (r *repository) ManualByID(ctx context.Context, id string) (*Entry, error) {
	var row manualRow
	res := r.db.WithContext(ctx).Raw(manualSelect+"WHERE d.id = ?", id).Scan(&row)
	if err := firstRowError(res); err != nil {
		return nil, err
	}
	e := row.toEntry()
	return &e, nil
}

func (r *repository) ManualByRunAndEmployee(ctx context.Context, runID, employeeID string) (*Entry, error) {
	var row manualRow
	res := r.db.WithContext(ctx).
		Raw(manualSelect+"WHERE d.run_id = ? AND d.employee_id = ? ORDER BY d.id LIMIT 1", runID, employeeID).
		Scan(&row)
	if err := firstRowError(res); err != nil {
		return nil, err
	}
	e := row.toEntry()
	return &e, nil
}

// firstRowError reports gorm.ErrRecordNotFound for a Scan that matched nothing;
// Raw().Scan does not do that on its own.
func firstRowError(res *gorm.DB) error {
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
