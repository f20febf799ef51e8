package payrollrun_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"school-erp/internal/payrollrun"
	payrollrunMock "school-erp/internal/payrollrun/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHandler_SaveRun(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := payrollrunMock.NewMockService(ctrl)
	h := payrollrun.NewHandler(svc)

	t.Run("numbers and numeric strings are accepted", func(t *testing.T) {
		svc.EXPECT().SaveRun(gomock.Any(), "emp-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, req payrollrun.SaveRunRequest) (payrollrun.SaveRunResponse, error) {
				assert.Equal(t, "100.5", req.TotalGross.String())
				assert.Equal(t, "90", req.Details[0].NetPay.String())
				return payrollrun.SaveRunResponse{RunID: "r-1", RunNumber: "RUN-000001"}, nil
			})

		body := `{"period_start":"2024-03-01","period_end":"2024-03-31","total_gross":100.5,"total_deductions":"10.5","total_net":90,
			"details":[{"employee_id":"e","full_name":"Ada","gross_pay":100.5,"deductions":10.5,"net_pay":"90"}]}`

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("employee_id", "emp-1")
		c.Request = httptest.NewRequest(http.MethodPost, "/payroll-runs", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		h.SaveRun(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "RUN-000001")
	})

	t.Run("wrong json type names the field", func(t *testing.T) {
		body := `{"period_start":"2024-03-01","details":"oops"}`

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/payroll-runs", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		h.SaveRun(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"field":"details"`)
	})
}
