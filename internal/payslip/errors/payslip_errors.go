package paysliperrors

import (
	"net/http"

	"school-erp/internal/shared/apperror"
)

var (
	ErrRecordNotFound = apperror.New(
		apperror.CodeNotFound,
		"payslip record not found",
		http.StatusNotFound,
	)
	ErrAccessDenied = apperror.New(
		apperror.CodeForbidden,
		"you may only view your own payslips",
		http.StatusForbidden,
	)
)
