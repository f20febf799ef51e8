package payrollerrors

import (
	"net/http"

	"school-erp/internal/shared/apperror"
)

var (
	ErrInvalidActorID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid actor id",
		http.StatusBadRequest,
	)
	ErrInvalidRecordID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid payroll record id",
		http.StatusBadRequest,
	)
	ErrRecordNotFound = apperror.New(
		apperror.CodeNotFound,
		"payroll record not found",
		http.StatusNotFound,
	)
	ErrNoEligibleEmployees = apperror.New(
		apperror.CodeInvalidState,
		"no eligible employees with a pay profile, nothing to generate",
		http.StatusUnprocessableEntity,
	)
)
