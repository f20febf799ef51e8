package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var fieldCaser = cases.Title(language.English)

// formatFieldName turns a json field into a label: period_start -> Period Start.
func formatFieldName(s string) string {
	return fieldCaser.String(strings.ReplaceAll(s, "_", " "))
}

// MapValidationError turns the first validator failure into an AppError whose
// details name the json field and the rule that failed.
func MapValidationError(err error) error {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return New(CodeInvalidInput, "Invalid input", http.StatusBadRequest)
	}

	e := errs[0]
	label := formatFieldName(e.Field())
	details := map[string]string{"field": e.Field(), "rule": e.Tag()}

	switch e.Tag() {
	case "required":
		return RequiredField(label).WithDetails(details)
	case "gte", "min":
		return fieldRule(label, "must be at least "+e.Param()).WithDetails(details)
	case "datetime":
		return fieldRule(label, "must be a date in YYYY-MM-DD form").WithDetails(details)
	case "uuid", "uuid4":
		return fieldRule(label, "must be a valid id").WithDetails(details)
	default:
		return InvalidField(label).WithDetails(details)
	}
}

func fieldRule(label, rule string) *AppError {
	return New(CodeInvalidInput, fmt.Sprintf("%s %s", label, rule), http.StatusBadRequest)
}
