package middleware

import (
	"school-erp/internal/domain"
	"school-erp/internal/shared/apperror"
	"school-erp/internal/shared/response"

	"github.com/gin-gonic/gin"
)

const requesterKey = "requester"

// CapabilityService resolves an employee's "resource:action" capabilities.
type CapabilityService interface {
	Capabilities(employeeID string) ([]string, error)
}

// ResolveRequester builds the domain.Requester for the authenticated employee.
// Mount it after AuthMiddleware.
func ResolveRequester(service CapabilityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		employeeID := c.GetString("employee_id")
		if employeeID == "" {
			response.FromError(c, apperror.ErrUnauthorized)
			c.Abort()
			return
		}

		caps, err := service.Capabilities(employeeID)
		if err != nil {
			response.FromError(c, apperror.WrapAs(apperror.ErrInternal, err))
			c.Abort()
			return
		}

		c.Set(requesterKey, domain.Requester{EmployeeID: employeeID, Capabilities: caps})
		c.Next()
	}
}

// RequesterFrom returns the requester stored by ResolveRequester, or one with
// only the employee id when the middleware did not run.
func RequesterFrom(c *gin.Context) domain.Requester {
	if v, ok := c.Get(requesterKey); ok {
		if r, ok := v.(domain.Requester); ok {
			return r
		}
	}
	return domain.Requester{EmployeeID: c.GetString("employee_id")}
}
