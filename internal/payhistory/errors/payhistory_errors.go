package payhistoryerrors

import (
	"net/http"

	"school-erp/internal/shared/apperror"
)

var (
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrAccessDenied = apperror.New(
		apperror.CodeForbidden,
		"you may only view your own payroll history",
		http.StatusForbidden,
	)
	ErrEntryNotFound = apperror.New(
		apperror.CodeNotFound,
		"payroll record not found",
		http.StatusNotFound,
	)
)
