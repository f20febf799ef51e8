package payhistory

import (
	"school-erp/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	capabilities middleware.CapabilityService,
	jwtSecret string,
) {
	protected := []gin.HandlerFunc{
		middleware.AuthMiddleware(jwtSecret),
		middleware.ResolveRequester(capabilities),
	}

	r.GET("/employees/:id/payroll-history", append(protected, handler.ForEmployee)...)
	r.GET("/me/payroll-history", append(protected, handler.Mine)...)
}
