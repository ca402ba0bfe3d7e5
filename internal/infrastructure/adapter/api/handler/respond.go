package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	errs "github.com/simplecyberhub/txc/internal/domain/error"
	coreport "github.com/simplecyberhub/txc/internal/domain/port/core"
	"github.com/simplecyberhub/txc/internal/domain/port/persistence"
	"github.com/simplecyberhub/txc/internal/infrastructure/adapter/api/dto"
)

// respondError renders err and logs it. Server errors are logged at error level with full context.
func respondError(c *gin.Context, logger coreport.Logger, operation string, err error) {
	status := dto.HTTPStatus(err)

	fields := errs.LogFields(err)
	fields["operation"] = operation
	fields["status"] = status
	fields["request_id"] = coreport.RequestIDFromContext(c.Request.Context())
	if identity, ok := coreport.IdentityFromContext(c.Request.Context()); ok {
		fields["user_id"] = identity.UserID
	}

	if status >= http.StatusInternalServerError {
		logger.Error("Request failed", fields)
	} else {
		logger.Debug("Request refused", fields)
	}

	_ = c.Error(err)
	c.JSON(status, dto.NewErrorResponse(err))
}

// bindError wraps a binding failure as a validation error on the body
func bindError(err error) error {
	return errs.NewValidationError("body", err)
}

// callerID returns the authenticated user's ID
func callerID(c *gin.Context) (uint64, error) {
	identity, ok := coreport.IdentityFromContext(c.Request.Context())
	if !ok {
		return 0, errs.ErrUnauthorized
	}
	return identity.UserID, nil
}

// pathID parses a positive integer path parameter
func pathID(c *gin.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, errs.ErrInvalidID
	}
	return id, nil
}

// pageFrom reads limit and offset from the query string. Bad values fall back to defaults.
func pageFrom(c *gin.Context) persistence.Page {
	var page persistence.Page
	if v, err := strconv.Atoi(c.Query("limit")); err == nil {
		page.Limit = v
	}
	if v, err := strconv.Atoi(c.Query("offset")); err == nil {
		page.Offset = v
	}
	return page.Normalize()
}

func isBodyTooLarge(err error) bool {
	var maxBytesErr *http.MaxBytesError
	return errors.As(err, &maxBytesErr)
}
