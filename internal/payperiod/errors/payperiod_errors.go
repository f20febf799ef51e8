package payperioderrors

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
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"start_date must be before or equal end_date",
		http.StatusBadRequest,
	)
	ErrPeriodNotFound = apperror.New(
		apperror.CodeNotFound,
		"pay period not found",
		http.StatusNotFound,
	)
	// ErrPeriodNotOpen is returned to generation callers; existing records
	// for the period should be inspected instead.
	ErrPeriodNotOpen = apperror.New(
		apperror.CodeInvalidState,
		"pay period is not open, payroll was already generated",
		http.StatusConflict,
	)
	ErrInvalidStateTransition = apperror.New(
		apperror.CodeInvalidState,
		"invalid pay period status transition",
		http.StatusConflict,
	)
)
