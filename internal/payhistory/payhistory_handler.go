package payhistory

import (
	"net/http"
	"strconv"

	"school-erp/internal/middleware"
	"school-erp/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ForEmployee(c *gin.Context) {
	h.respond(c, c.Param("id"))
}

func (h *Handler) Mine(c *gin.Context) {
	h.respond(c, middleware.RequesterFrom(c).EmployeeID)
}

func (h *Handler) respond(c *gin.Context, employeeID string) {
	entries, err := h.service.HistoryFor(c.Request.Context(), employeeID, middleware.RequesterFrom(c))
	if err != nil {
		response.FromError(c, err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	items, meta := response.Paginate(entries, page, pageSize)

	response.Success(c, http.StatusOK, items, &meta)
}
