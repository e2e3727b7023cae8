package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/store"
)

// MapErrorToStatusCode translates domain and store errors into HTTP status
// codes. Unrecognized errors map to 500 so nothing leaks as a false client
// error.
func MapErrorToStatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case store.IsNotFoundError(err):
		return http.StatusNotFound
	case store.IsDuplicateError(err):
		return http.StatusConflict
	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrInvalidID),
		domain.IsValidationError(err):
		return http.StatusBadRequest
	default:
		var valErrs validator.ValidationErrors
		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &valErrs) || errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
			return http.StatusBadRequest
		}
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a client-safe message for err. Internal
// details stay in the logs.
func GetSafeErrorMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, store.ErrTaskNotFound):
		return "task not found"
	case errors.Is(err, store.ErrUserNotFound):
		return "user not found"
	case store.IsNotFoundError(err):
		return "resource not found"
	case errors.Is(err, store.ErrEmailExists):
		return "email address is already registered"
	case store.IsDuplicateError(err):
		return "resource already exists"
	case errors.Is(err, store.ErrInvalidEntity):
		return err.Error()
	case errors.Is(err, domain.ErrInvalidID):
		return "invalid ID format"
	case domain.IsValidationError(err):
		return err.Error()
	default:
		var valErrs validator.ValidationErrors
		if errors.As(err, &valErrs) {
			return SanitizeValidationError(valErrs)
		}
		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
			return "malformed request body"
		}
		return "an internal error occurred"
	}
}

// SanitizeValidationError converts validator errors into a readable,
// field-by-field message without exposing struct internals.
func SanitizeValidationError(errs validator.ValidationErrors) string {
	msgs := make([]string, 0, len(errs))
	for _, fe := range errs {
		msgs = append(msgs, fmt.Sprintf("%s %s", strings.ToLower(fe.Field()), validationTagMessage(fe)))
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func validationTagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "url":
		return "must be a valid URL"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
