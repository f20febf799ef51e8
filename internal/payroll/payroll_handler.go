package payroll

import (
	"net/http"
	"strconv"

	"school-erp/internal/middleware"
	"school-erp/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type Handler struct {
	service Service
	rdb     *redis.Client
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func NewHandlerWithRedis(service Service, rdb *redis.Client) *Handler {
	return &Handler{service: service, rdb: rdb}
}

func (h *Handler) Generate(c *gin.Context) {
	periodID := c.Param("id")

	records, err := h.service.Generate(c.Request.Context(), c.GetString("employee_id"), periodID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	resp := GenerateResponse{
		PeriodID:    periodID,
		RecordCount: len(records),
		Records:     records,
	}
	middleware.StoreIdempotentResult(c, h.rdb, resp)

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) ListByPeriod(c *gin.Context) {
	records, err := h.service.ListByPeriod(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "50"))
	items, meta := response.Paginate(records, page, pageSize)

	response.Success(c, http.StatusOK, items, &meta)
}

func (h *Handler) GetByID(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
