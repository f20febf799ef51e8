package payperiod_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"school-erp/internal/payperiod"
	payperioderrors "school-erp/internal/payperiod/errors"
	payperiodMock "school-erp/internal/payperiod/mock"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHandler_OpenAndList(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := payperiodMock.NewMockService(ctrl)
	h := payperiod.NewHandler(svc)
	actorID := uuid.New().String()

	svc.EXPECT().
		OpenPeriod(gomock.Any(), actorID, payperiod.OpenPeriodRequest{StartDate: "2024-01-01", EndDate: "2024-01-31"}).
		Return(payperiod.PayPeriodResponse{ID: uuid.New().String(), Status: payperiod.StatusOpen}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("employee_id", actorID)
	c.Request = httptest.NewRequest(http.MethodPost, "/pay-periods", strings.NewReader(`{"start_date":"2024-01-01","end_date":"2024-01-31"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Open(c)
	assert.Equal(t, http.StatusCreated, w.Code)

	svc.EXPECT().GetAll(gomock.Any()).Return([]payperiod.PayPeriodResponse{{ID: "a"}, {ID: "b"}}, nil)

	w2 := httptest.NewRecorder()
	c2, _ := gin.CreateTestContext(w2)
	c2.Request = httptest.NewRequest(http.MethodGet, "/pay-periods?page=1&page_size=1", nil)
	h.GetAll(c2)
	assert.Equal(t, http.StatusOK, w2.Code)
	assert.Contains(t, w2.Body.String(), "\"meta\"")
	assert.NotContains(t, w2.Body.String(), "\"b\"")
}

func TestHandler_OpenMissingField(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := payperiodMock.NewMockService(ctrl)
	h := payperiod.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/pay-periods", strings.NewReader(`{"start_date":"2024-01-01"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Open(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetByIDNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := payperiodMock.NewMockService(ctrl)
	h := payperiod.NewHandler(svc)
	id := uuid.New().String()

	svc.EXPECT().GetByID(gomock.Any(), id).Return(payperiod.PayPeriodResponse{}, payperioderrors.ErrPeriodNotFound)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: id}}
	c.Request = httptest.NewRequest(http.MethodGet, "/pay-periods/"+id, nil)
	h.GetByID(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "NOT_FOUND")
}
