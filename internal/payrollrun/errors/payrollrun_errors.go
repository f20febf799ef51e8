package payrollrunerrors

import (
	"net/http"

	"school-erp/internal/shared/apperror"
)

var (
	// ErrInvalidRunData carries {"field": "<json path>", "rule": "<failed rule>"}
	// as details, e.g. field "details[2].net_pay".
	ErrInvalidRunData = apperror.New(
		apperror.CodeInvalidInput,
		"invalid payroll run data",
		http.StatusBadRequest,
	)
	ErrInvalidActorID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid actor id",
		http.StatusBadRequest,
	)
	ErrInvalidRunID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid payroll run id",
		http.StatusBadRequest,
	)
	ErrRunNotFound = apperror.New(
		apperror.CodeNotFound,
		"payroll run not found",
		http.StatusNotFound,
	)
)

// InvalidField returns ErrInvalidRunData pointing at field.
func InvalidField(field, rule string) error {
	return ErrInvalidRunData.WithDetails(map[string]string{
		"field": field,
		"rule":  rule,
	})
}
