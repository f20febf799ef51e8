package rbac

import (
	"net/http"
	"strings"

	"school-erp/internal/shared/apperror"
	"school-erp/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Enforce(c *gin.Context) {
	var req EnforceRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	req.EmployeeID = strings.TrimSpace(req.EmployeeID)
	req.Resource = strings.TrimSpace(req.Resource)
	req.Action = strings.TrimSpace(req.Action)

	allowed, err := h.service.Enforce(req)
	if err != nil {
		response.FromError(c, apperror.Wrap(err, apperror.CodeInternalError, "rbac enforce failed", http.StatusInternalServerError))
		return
	}

	response.Success(c, http.StatusOK, EnforceResponse{Allowed: allowed}, nil)
}

func (h *Handler) MyCapabilities(c *gin.Context) {
	employeeID := c.GetString("employee_id")

	caps, err := h.service.Capabilities(employeeID)
	if err != nil {
		response.FromError(c, apperror.Wrap(err, apperror.CodeInternalError, "load capabilities failed", http.StatusInternalServerError))
		return
	}

	response.Success(c, http.StatusOK, CapabilitiesResponse{
		EmployeeID:   employeeID,
		Capabilities: caps,
	}, nil)
}
