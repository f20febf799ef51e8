package middleware

import (
	"school-erp/internal/domain"
	"school-erp/internal/shared/apperror"
	"school-erp/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// RBACService is satisfied by anything that can answer a domain.EnforceRequest.
type RBACService interface {
	Enforce(req domain.EnforceRequest) (bool, error)
}

func RBACAuthorize(service RBACService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		employeeID := c.GetString("employee_id")
		if employeeID == "" {
			response.FromError(c, apperror.ErrUnauthorized)
			c.Abort()
			return
		}

		allowed, err := service.Enforce(domain.EnforceRequest{
			EmployeeID: employeeID,
			Resource:   resource,
			Action:     action,
		})
		if err != nil {
			response.FromError(c, apperror.WrapAs(apperror.ErrInternal, err))
			c.Abort()
			return
		}

		if !allowed {
			response.FromError(c, apperror.ErrForbidden.WithDetails(map[string]string{
				"required": resource + ":" + action,
			}))
			c.Abort()
			return
		}
		c.Next()
	}
}
