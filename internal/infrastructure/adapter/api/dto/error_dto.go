package dto

import (
	"errors"
	"net/http"

	errs "github.com/simplecyberhub/txc/internal/domain/error"
)

// ErrorResponse represents a standardized error response for the API
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewErrorResponse renders err. Server errors get a generic message so internals do not leak.
func NewErrorResponse(err error) ErrorResponse {
	status := HTTPStatus(err)
	message := err.Error()
	if status >= http.StatusInternalServerError {
		message = "Internal server error"
	}
	return ErrorResponse{
		Code:    errs.ErrorCode(err),
		Message: message,
	}
}

// HTTPStatus maps an error kind to its status code
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, errs.ErrInsufficientFunds):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrVerificationRequired),
		errors.Is(err, errs.ErrEmailNotVerified),
		errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrNotSupported):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrRateLimited):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
