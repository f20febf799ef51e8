package payhistory_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"school-erp/internal/domain"
	"school-erp/internal/payhistory"
	payhistoryerrors "school-erp/internal/payhistory/errors"
	payhistoryMock "school-erp/internal/payhistory/mock"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHandler_History(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := payhistoryMock.NewMockService(ctrl)
	h := payhistory.NewHandler(svc)

	employeeID := uuid.NewString()
	self := domain.Requester{EmployeeID: employeeID}

	t.Run("mine uses the requester id", func(t *testing.T) {
		svc.EXPECT().HistoryFor(gomock.Any(), employeeID, self).Return([]payhistory.HistoryEntryResponse{
			{ID: uuid.NewString(), Source: "manual"},
			{ID: uuid.NewString(), Source: "formal"},
		}, nil)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("requester", self)
		c.Request = httptest.NewRequest(http.MethodGet, "/me/payroll-history?page_size=1", nil)
		h.Mine(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"source":"manual"`)
		assert.NotContains(t, w.Body.String(), `"source":"formal"`)
	})

	t.Run("forbidden for another employee", func(t *testing.T) {
		other := uuid.NewString()
		svc.EXPECT().HistoryFor(gomock.Any(), other, self).Return(nil, payhistoryerrors.ErrAccessDenied)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("requester", self)
		c.Params = gin.Params{{Key: "id", Value: other}}
		c.Request = httptest.NewRequest(http.MethodGet, "/employees/"+other+"/payroll-history", nil)
		h.ForEmployee(c)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "FORBIDDEN")
	})
}
