package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainCounters(t *testing.T) {
	m := New()

	m.TransactionCreated("deposit", "completed")
	m.TransactionCreated("deposit", "completed")
	m.TransactionDecided("rejected")
	m.KYCSubmitted()
	m.KYCDecided("approved")
	m.AuthEvent("login", "failure")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.TransactionsCreated.WithLabelValues("deposit", "completed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.TransactionDecision.WithLabelValues("rejected")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.KYCSubmissions))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.KYCDecisions.WithLabelValues("approved")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AuthEvents.WithLabelValues("login", "failure")))
}

func TestMiddlewareAndHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New()

	router := gin.New()
	router.Use(m.Middleware())
	router.GET("/api/items/:id", func(c *gin.Context) { c.Status(http.StatusTeapot) })
	router.GET("/metrics", gin.WrapH(m.Handler()))

	for _, path := range []string{"/api/items/1", "/api/items/2", "/nowhere"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RequestCount.WithLabelValues("GET", "/api/items/:id", "418")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestCount.WithLabelValues("GET", "unmatched", "404")))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "txc_http_requests_total"))
	assert.True(t, strings.Contains(rec.Body.String(), "go_goroutines"))
}
