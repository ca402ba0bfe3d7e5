package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/simplecyberhub/txc/internal/domain/entity"
	errs "github.com/simplecyberhub/txc/internal/domain/error"
	coreport "github.com/simplecyberhub/txc/internal/domain/port/core"
	"github.com/simplecyberhub/txc/internal/domain/port/persistence"
	"github.com/simplecyberhub/txc/internal/domain/port/usecase"
	"github.com/simplecyberhub/txc/internal/infrastructure/adapter/api/handler"
	"github.com/simplecyberhub/txc/internal/infrastructure/adapter/api/middleware"
	"github.com/simplecyberhub/txc/internal/infrastructure/adapter/logger"
	"github.com/simplecyberhub/txc/internal/infrastructure/adapter/ratelimit"
	coremocks "github.com/simplecyberhub/txc/mocks/port/core"
	ucmocks "github.com/simplecyberhub/txc/mocks/port/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type okPinger struct{}

func (okPinger) Ping(context.Context) error { return nil }

type fixture struct {
	router       *gin.Engine
	tokens       *coremocks.MockTokenIssuer
	auth         *ucmocks.MockAuthUseCase
	admin        *ucmocks.MockAdminUseCase
	transactions *ucmocks.MockTransactionUseCase
}

func newFixture(t *testing.T, limiter ratelimit.Limiter) *fixture {
	gin.SetMode(gin.TestMode)
	log := logger.NewNoopLogger()

	f := &fixture{
		router:       gin.New(),
		tokens:       coremocks.NewMockTokenIssuer(t),
		auth:         ucmocks.NewMockAuthUseCase(t),
		admin:        ucmocks.NewMockAdminUseCase(t),
		transactions: ucmocks.NewMockTransactionUseCase(t),
	}

	h := Handlers{
		Auth:        handler.NewAuthHandler(f.auth, log),
		Transaction: handler.NewTransactionHandler(f.transactions, ucmocks.NewMockLedgerUseCase(t), log),
		Portfolio: handler.NewPortfolioHandler(ucmocks.NewMockPortfolioUseCase(t),
			ucmocks.NewMockWatchlistUseCase(t), f.transactions, log),
		KYC: handler.NewKYCHandler(ucmocks.NewMockKYCUseCase(t), coremocks.NewMockDocumentStore(t), 1024, log),
		Admin: handler.NewAdminHandler(f.admin, ucmocks.NewMockContentUseCase(t),
			ucmocks.NewMockSettingUseCase(t), log),
		Health: handler.NewHealthHandler(okPinger{}, log),
	}

	clock := coremocks.NewMockTimeProvider(t)
	clock.EXPECT().Now().Return(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)).Maybe()

	SetupMiddlewares(f.router, log, []string{"*"})
	SetupRoutes(f.router, h, Options{
		Tokens:       f.tokens,
		Limiter:      limiter,
		TimeProvider: clock,
		Logger:       log,
		MetricsPath:  "/metrics",
		Metrics: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}),
	})
	return f
}

func (f *fixture) do(method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func TestRoutes_AccessControl(t *testing.T) {
	f := newFixture(t, nil)

	f.tokens.EXPECT().Parse("user-token").Return(&coreport.Identity{UserID: 7, Username: "alice"}, nil)
	f.tokens.EXPECT().Parse("admin-token").Return(&coreport.Identity{UserID: 1, Username: "root", IsAdmin: true}, nil)
	f.tokens.EXPECT().Parse("expired").Return(nil, errs.ErrUnauthorized)

	assert.Equal(t, http.StatusUnauthorized, f.do(http.MethodGet, "/api/admin/overview", "").Code)
	assert.Equal(t, http.StatusUnauthorized, f.do(http.MethodGet, "/api/admin/overview", "expired").Code)
	assert.Equal(t, http.StatusForbidden, f.do(http.MethodGet, "/api/admin/overview", "user-token").Code)

	f.admin.EXPECT().Overview(mock.Anything).Return(&usecase.Overview{Users: 2}, nil)
	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/api/admin/overview", "admin-token").Code)

	assert.Equal(t, http.StatusUnauthorized, f.do(http.MethodGet, "/api/transactions", "").Code)

	f.transactions.EXPECT().ListForUser(mock.Anything, uint64(7), persistence.Page{}.Normalize()).
		Return([]*entity.Transaction{}, nil)
	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/api/transactions", "user-token").Code)
}

func TestRoutes_PublicAndProbes(t *testing.T) {
	f := newFixture(t, nil)

	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/healthz", "").Code)
	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/readyz", "").Code)
	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/metrics", "").Code)

	rec := f.do(http.MethodGet, "/healthz", "")
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
}

func TestRoutes_LoginIsRateLimited(t *testing.T) {
	f := newFixture(t, ratelimit.NewMemoryLimiter(1, time.Minute))

	f.auth.EXPECT().Login(mock.Anything, "alice", "wrong").Return(nil, errs.ErrUnauthorized).Once()

	login := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"username":"alice","password":"wrong"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, req)
		return rec
	}

	require.Equal(t, http.StatusUnauthorized, login().Code)
	rec := login()
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
}
