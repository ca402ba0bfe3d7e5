package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	errs "github.com/simplecyberhub/txc/internal/domain/error"
	coreport "github.com/simplecyberhub/txc/internal/domain/port/core"
	"github.com/simplecyberhub/txc/internal/infrastructure/adapter/api/dto"
	"github.com/simplecyberhub/txc/internal/infrastructure/adapter/logger"
	"github.com/simplecyberhub/txc/internal/infrastructure/adapter/ratelimit"
	"github.com/simplecyberhub/txc/internal/infrastructure/adapter/security"
	timeprovider "github.com/simplecyberhub/txc/internal/infrastructure/adapter/time"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRequestID(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, coreport.RequestIDFromContext(c.Request.Context()))
	})

	rec := serve(router, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := rec.Header().Get(RequestIDHeader)
	assert.Len(t, generated, 36)
	assert.Equal(t, generated, rec.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec = serve(router, req)
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
	assert.Equal(t, "abc-123", rec.Body.String())
}

func TestErrorHandler_RecoversPanic(t *testing.T) {
	router := gin.New()
	router.Use(ErrorHandler(logger.NewNoopLogger()))
	router.GET("/", func(c *gin.Context) { panic("boom") })

	rec := serve(router, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, errs.CodeInternalServer, decodeError(t, rec).Code)
}

func newAuthRouter(issuer coreport.TokenIssuer) *gin.Engine {
	router := gin.New()
	router.Use(Auth(issuer))
	router.GET("/me", func(c *gin.Context) {
		identity, _ := coreport.IdentityFromContext(c.Request.Context())
		c.JSON(http.StatusOK, identity)
	})
	admin := router.Group("/admin", RequireAdmin())
	admin.GET("", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	return router
}

func bearer(path, token string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestAuth(t *testing.T) {
	clock := timeprovider.NewManualTimeProvider(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	issuer := security.NewJWTIssuer("secret", time.Hour, clock)
	router := newAuthRouter(issuer)

	userToken, _, err := issuer.Issue(coreport.Identity{UserID: 7, Username: "alice"})
	require.NoError(t, err)
	adminToken, _, err := issuer.Issue(coreport.Identity{UserID: 1, Username: "admin", IsAdmin: true})
	require.NoError(t, err)

	rec := serve(router, bearer("/me", userToken))
	require.Equal(t, http.StatusOK, rec.Code)
	var identity coreport.Identity
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &identity))
	assert.Equal(t, uint64(7), identity.UserID)

	rec = serve(router, httptest.NewRequest(http.MethodGet, "/me", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, errs.CodeUnauthorized, decodeError(t, rec).Code)

	rec = serve(router, bearer("/me", "garbage"))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	assert.Equal(t, http.StatusForbidden, serve(router, bearer("/admin", userToken)).Code)
	assert.Equal(t, http.StatusNoContent, serve(router, bearer("/admin", adminToken)).Code)

	clock.Advance(2 * time.Hour)
	assert.Equal(t, http.StatusUnauthorized, serve(router, bearer("/me", userToken)).Code)
}

func TestRequireAdmin_WithoutAuth(t *testing.T) {
	router := gin.New()
	router.GET("/", RequireAdmin(), func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusUnauthorized, serve(router, httptest.NewRequest(http.MethodGet, "/", nil)).Code)
}

type failingLimiter struct{}

func (failingLimiter) Allow(context.Context, string, time.Time) (bool, time.Duration, error) {
	return false, 0, errors.New("redis down")
}

func TestRateLimit(t *testing.T) {
	clock := timeprovider.NewManualTimeProvider(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	router := gin.New()
	router.POST("/login", RateLimit(ratelimit.NewMemoryLimiter(2, time.Minute), "login", clock, logger.NewNoopLogger()),
		func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 2; i++ {
		assert.Equal(t, http.StatusOK, serve(router, httptest.NewRequest(http.MethodPost, "/login", nil)).Code)
	}

	rec := serve(router, httptest.NewRequest(http.MethodPost, "/login", nil))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))
	assert.Equal(t, errs.CodeRateLimited, decodeError(t, rec).Code)

	clock.Advance(time.Minute)
	assert.Equal(t, http.StatusOK, serve(router, httptest.NewRequest(http.MethodPost, "/login", nil)).Code)
}

func TestRateLimit_FailsOpen(t *testing.T) {
	router := gin.New()
	router.GET("/", RateLimit(failingLimiter{}, "x", timeprovider.NewRealTimeProvider(), logger.NewNoopLogger()),
		func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, serve(router, httptest.NewRequest(http.MethodGet, "/", nil)).Code)
}

func TestCORS(t *testing.T) {
	router := gin.New()
	router.Use(CORS([]string{"https://app.example.com"}))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "https://app.example.com")
	rec := serve(router, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Authorization")

	req = httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	assert.Equal(t, http.StatusForbidden, serve(router, req).Code)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec = serve(router, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
