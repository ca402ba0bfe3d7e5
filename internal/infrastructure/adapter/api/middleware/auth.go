package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	errs "github.com/simplecyberhub/txc/internal/domain/error"
	coreport "github.com/simplecyberhub/txc/internal/domain/port/core"
)

// Auth requires a valid bearer token and stores its identity on the request context
func Auth(tokens coreport.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		scheme, token, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			abortWithError(c, errs.ErrUnauthorized)
			return
		}

		identity, err := tokens.Parse(strings.TrimSpace(token))
		if err != nil {
			abortWithError(c, err)
			return
		}

		c.Request = c.Request.WithContext(coreport.ContextWithIdentity(c.Request.Context(), identity))
		c.Next()
	}
}

// RequireAdmin must run after Auth
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := coreport.IdentityFromContext(c.Request.Context())
		if !ok {
			abortWithError(c, errs.ErrUnauthorized)
			return
		}
		if !identity.IsAdmin {
			abortWithError(c, errs.ErrForbidden)
			return
		}
		c.Next()
	}
}
