package payhistory

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

const (
	SourceFormal = "formal"
	SourceManual = "manual"
)

// Entry is one payment in an employee's history, produced either by formal
// generation (a payroll record) or by a manual run (a run detail). Source
// tells which; ReferenceID is the period id or the run id respectively.
type Entry struct {
	ID          string          `json:"id"`
	Source      string          `json:"source"`
	EmployeeID  string          `json:"employee_id"`
	GrossPay    decimal.Decimal `json:"gross_pay"`
	NetPay      decimal.Decimal `json:"net_pay"`
	PeriodStart time.Time       `json:"period_start"`
	PeriodEnd   time.Time       `json:"period_end"`
	Status      string          `json:"status"`
	ReferenceID string          `json:"reference_id"`

	EmployeeName   string              `json:"employee_name"`
	DepartmentName string              `json:"department_name"`
	Taxes          decimal.NullDecimal `json:"taxes"`
	TaxRate        decimal.NullDecimal `json:"tax_rate"`
	Deductions     decimal.Decimal     `json:"deductions"`
	DaysPaid       decimal.NullDecimal `json:"days_paid"`
	RunNumber      string              `json:"run_number,omitempty"`
	Snapshot       json.RawMessage     `json:"snapshot,omitempty"`
	IssuedAt       time.Time           `json:"issued_at"`
}

// SortEntries orders by period end descending, then source, then id.
func SortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if !a.PeriodEnd.Equal(b.PeriodEnd) {
			return a.PeriodEnd.After(b.PeriodEnd)
		}
		if a.Source != b.Source {
			return a.Source < b.Source
		}
		return a.ID < b.ID
	})
}
