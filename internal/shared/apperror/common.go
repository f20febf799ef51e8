package apperror

import (
	"fmt"
	"net/http"
)

var (
	ErrNotFound = New(
		CodeNotFound,
		"Resource not found",
		http.StatusNotFound,
	)

	ErrForbidden = New(
		CodeForbidden,
		"You do not have permission to access this resource",
		http.StatusForbidden,
	)

	ErrInternal = New(
		CodeInternalError,
		"An unexpected error occurred",
		http.StatusInternalServerError,
	)

	ErrUnauthorized = New(
		CodeUnauthorized,
		"Authentication is required",
		http.StatusUnauthorized,
	)

	ErrInvalidInput = New(
		CodeInvalidInput,
		"The provided input is invalid",
		http.StatusBadRequest,
	)

	ErrInvalidToken = New(
		CodeUnauthorized,
		"Invalid or malformed token",
		http.StatusUnauthorized,
	)

	ErrTokenExpired = New(
		CodeUnauthorized,
		"Token has expired",
		http.StatusUnauthorized,
	)

	ErrRateLimited = New(
		CodeRateLimited,
		"Too many requests",
		http.StatusTooManyRequests,
	)

	ErrRequestInFlight = New(
		CodeConflict,
		"A request with this Idempotency-Key is still being processed",
		http.StatusConflict,
	)

	// ErrTransactionFailed covers any storage failure inside a write transaction.
	// The enclosing operation has been rolled back when this is returned.
	ErrTransactionFailed = New(
		CodeInternalError,
		"transaction failed, no changes were applied",
		http.StatusInternalServerError,
	)
)

func TransactionFailure(err error) error {
	if err == nil {
		return nil
	}
	return WrapAs(ErrTransactionFailed, err)
}

func RequiredField(field string) *AppError {
	return New(
		CodeInvalidInput,
		fmt.Sprintf("%s is required", field),
		http.StatusBadRequest,
	)
}

func InvalidField(field string) *AppError {
	return New(
		CodeInvalidInput,
		fmt.Sprintf("%s is invalid", field),
		http.StatusBadRequest,
	)
}
