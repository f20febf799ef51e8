package payslip

import (
	"net/http"

	"school-erp/internal/middleware"
	"school-erp/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("payslip.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payslip.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) Get(c *gin.Context) {
	p, err := h.service.BuildPayslip(
		c.Request.Context(),
		c.Param("id"),
		middleware.RequesterFrom(c),
		c.Query("employee_id"),
	)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, p, nil)
}

func (h *Handler) Download(c *gin.Context) {
	p, err := h.service.BuildPayslip(
		c.Request.Context(),
		c.Param("id"),
		middleware.RequesterFrom(c),
		c.Query("employee_id"),
	)
	if err != nil {
		response.FromError(c, err)
		return
	}

	pdf, err := Render(p)
	if err != nil {
		h.logger.Error("render payslip failed", zap.String("reference", p.Reference), zap.Error(err))
		response.FromError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="payslip_`+p.Reference+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func (h *Handler) Verify(c *gin.Context) {
	p, err := h.service.Verify(c.Request.Context(), c.Param("reference"), middleware.RequesterFrom(c))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, p, nil)
}
