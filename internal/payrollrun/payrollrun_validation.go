package payrollrun

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	payrollrunerrors "school-erp/internal/payrollrun/errors"
	"school-erp/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

const dateLayout = "2006-01-02"

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(apperror.JSONTagName)
	// amount fits numeric(14,2), days fits numeric(6,2); both >= 0.
	_ = v.RegisterValidation("amount", boundedDecimal(maxAmount))
	_ = v.RegisterValidation("days", boundedDecimal(maxDaysPaid))
	return v
}

var (
	maxAmount   = decimal.New(1, 12)
	maxDaysPaid = decimal.New(1, 4)
)

// boundedDecimal accepts a non-negative decimal that stays below limit once
// rounded to two places.
func boundedDecimal(limit decimal.Decimal) validator.Func {
	return func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		if err != nil || d.IsNegative() {
			return false
		}
		return d.Round(2).LessThan(limit)
	}
}

// fieldPath drops the root struct name from a validator namespace:
// "SaveRunRequest.details[2].net_pay" -> "details[2].net_pay".
func fieldPath(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

// validateRun checks structure only: presence, formats, non-negative amounts
// and date order. It never recomputes pay or reconciles totals with details.
func validateRun(v *validator.Validate, req SaveRunRequest) (*PayrollRun, error) {
	if err := v.Struct(req); err != nil {
		var errs validator.ValidationErrors
		if errors.As(err, &errs) && len(errs) > 0 {
			return nil, payrollrunerrors.InvalidField(fieldPath(errs[0].Namespace()), errs[0].Tag())
		}
		return nil, payrollrunerrors.InvalidField("", "invalid")
	}

	start, _ := time.Parse(dateLayout, req.PeriodStart)
	end, _ := time.Parse(dateLayout, req.PeriodEnd)
	if start.After(end) {
		return nil, payrollrunerrors.InvalidField("period_end", "gtefield=period_start")
	}

	run := &PayrollRun{
		PeriodStart:     start,
		PeriodEnd:       end,
		Status:          StatusFinalized,
		TotalGross:      mustAmount(req.TotalGross),
		TotalDeductions: mustAmount(req.TotalDeductions),
		TotalNet:        mustAmount(req.TotalNet),
	}

	run.Details = make([]PayrollRunDetail, len(req.Details))
	for i, d := range req.Details {
		detail := PayrollRunDetail{
			EmployeeID:     uuid.MustParse(d.EmployeeID),
			FullName:       strings.TrimSpace(d.FullName),
			DepartmentName: strings.TrimSpace(d.DepartmentName),
			GrossPay:       mustAmount(d.GrossPay),
			Deductions:     mustAmount(d.Deductions),
			NetPay:         mustAmount(d.NetPay),
		}
		if d.DaysPaid != "" {
			detail.DaysPaid = mustAmount(d.DaysPaid)
		}

		snapshot, err := snapshotFor(d)
		if err != nil {
			return nil, payrollrunerrors.InvalidField(fmt.Sprintf("details[%d].payslip_snapshot", i), "object")
		}
		detail.PayslipSnapshot = snapshot

		run.Details[i] = detail
	}

	return run, nil
}

// snapshotFor keeps the client's payslip JSON verbatim. Without one, the
// submitted detail itself is frozen as the snapshot.
func snapshotFor(d SaveRunDetailRequest) (datatypes.JSON, error) {
	raw := bytes.TrimSpace(d.PayslipSnapshot)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		d.PayslipSnapshot = nil
		b, err := json.Marshal(d)
		if err != nil {
			return nil, err
		}
		return datatypes.JSON(b), nil
	}
	if raw[0] != '{' || !json.Valid(raw) {
		return nil, errors.New("payslip_snapshot must be a JSON object")
	}
	return datatypes.JSON(raw), nil
}

func mustAmount(n json.Number) decimal.Decimal {
	return decimal.RequireFromString(n.String()).Round(2)
}
