package payrollrun

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"school-erp/internal/middleware"
	payrollrunerrors "school-erp/internal/payrollrun/errors"
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

func (h *Handler) SaveRun(c *gin.Context) {
	var req SaveRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, mapDecodeError(err))
		return
	}

	resp, err := h.service.SaveRun(c.Request.Context(), c.GetString("employee_id"), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	middleware.StoreIdempotentResult(c, h.rdb, resp)
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetByID(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func mapDecodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return payrollrunerrors.InvalidField(typeErr.Field, "type")
	}
	if errors.Is(err, io.EOF) {
		return payrollrunerrors.InvalidField("body", "required")
	}
	return payrollrunerrors.InvalidField("body", "json")
}
