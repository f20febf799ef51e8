package payrollrun

import (
	"encoding/json"
	"testing"

	payrollrunerrors "school-erp/internal/payrollrun/errors"
	"school-erp/internal/shared/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func validRequest() SaveRunRequest {
	return SaveRunRequest{
		PeriodStart:     "2024-03-01",
		PeriodEnd:       "2024-03-31",
		TotalGross:      "15000",
		TotalDeductions: "1000",
		TotalNet:        "14000",
		Details: []SaveRunDetailRequest{
			{EmployeeID: uuid.NewString(), FullName: "Ada", GrossPay: "10000", Deductions: "500", NetPay: "9500"},
			{EmployeeID: uuid.NewString(), FullName: "Grace", GrossPay: "5000", Deductions: "500", NetPay: "4500"},
			{EmployeeID: uuid.NewString(), FullName: "Linus", GrossPay: "0", Deductions: "0", NetPay: "0"},
		},
	}
}

func fieldOf(t *testing.T, err error) string {
	t.Helper()
	appErr, ok := err.(*apperror.AppError)
	if !assert.True(t, ok, "expected *apperror.AppError, got %T", err) {
		return ""
	}
	details, _ := appErr.Details.(map[string]string)
	return details["field"]
}

func TestValidateRun(t *testing.T) {
	v := newValidator()

	t.Run("valid", func(t *testing.T) {
		run, err := validateRun(v, validRequest())

		assert.NoError(t, err)
		assert.Len(t, run.Details, 3)
		assert.Equal(t, "15000.00", run.TotalGross.StringFixed(2))
		assert.Equal(t, StatusFinalized, run.Status)
	})

	cases := []struct {
		name   string
		mutate func(r *SaveRunRequest)
		field  string
	}{
		{"negative detail net", func(r *SaveRunRequest) { r.Details[2].NetPay = "-1" }, "details[2].net_pay"},
		{"missing detail gross", func(r *SaveRunRequest) { r.Details[1].GrossPay = "" }, "details[1].gross_pay"},
		{"bad employee id", func(r *SaveRunRequest) { r.Details[0].EmployeeID = "x" }, "details[0].employee_id"},
		{"missing full name", func(r *SaveRunRequest) { r.Details[0].FullName = "" }, "details[0].full_name"},
		{"no details", func(r *SaveRunRequest) { r.Details = []SaveRunDetailRequest{} }, "details"},
		{"missing period start", func(r *SaveRunRequest) { r.PeriodStart = "" }, "period_start"},
		{"bad date", func(r *SaveRunRequest) { r.PeriodEnd = "31/03/2024" }, "period_end"},
		{"start after end", func(r *SaveRunRequest) { r.PeriodStart = "2024-04-01" }, "period_end"},
		{"negative total", func(r *SaveRunRequest) { r.TotalNet = "-0.01" }, "total_net"},
		{"detail gross beyond column", func(r *SaveRunRequest) { r.Details[0].GrossPay = "1e13" }, "details[0].gross_pay"},
		{"total rounds past column", func(r *SaveRunRequest) { r.TotalGross = "999999999999.995" }, "total_gross"},
		{"days paid beyond column", func(r *SaveRunRequest) { r.Details[0].DaysPaid = "10000" }, "details[0].days_paid"},
		{"negative days paid", func(r *SaveRunRequest) { r.Details[1].DaysPaid = "-1" }, "details[1].days_paid"},
		{"snapshot not an object", func(r *SaveRunRequest) { r.Details[1].PayslipSnapshot = json.RawMessage(`[1,2]`) }, "details[1].payslip_snapshot"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(&req)

			_, err := validateRun(v, req)

			assert.ErrorIs(t, err, payrollrunerrors.ErrInvalidRunData)
			assert.Equal(t, tc.field, fieldOf(t, err))
		})
	}

	t.Run("largest values that fit the columns", func(t *testing.T) {
		req := validRequest()
		req.TotalGross = "999999999999.99"
		req.Details[0].DaysPaid = "9999.99"

		run, err := validateRun(v, req)

		assert.NoError(t, err)
		assert.Equal(t, "999999999999.99", run.TotalGross.StringFixed(2))
		assert.Equal(t, "9999.99", run.Details[0].DaysPaid.StringFixed(2))
	})

	t.Run("totals are not reconciled with details", func(t *testing.T) {
		req := validRequest()
		req.TotalGross = "1"

		_, err := validateRun(v, req)

		assert.NoError(t, err)
	})

	t.Run("snapshot kept verbatim", func(t *testing.T) {
		req := validRequest()
		req.Details[0].PayslipSnapshot = json.RawMessage(`{"earnings":[{"label":"Basic","amount":"10000.00"}]}`)

		run, err := validateRun(v, req)

		assert.NoError(t, err)
		assert.JSONEq(t, `{"earnings":[{"label":"Basic","amount":"10000.00"}]}`, string(run.Details[0].PayslipSnapshot))
		assert.Contains(t, string(run.Details[1].PayslipSnapshot), `"full_name":"Grace"`)
	})
}

func TestFormatRunNumber(t *testing.T) {
	assert.Equal(t, "RUN-000001", FormatRunNumber(1))
	assert.Equal(t, "RUN-123456", FormatRunNumber(123456))
}
