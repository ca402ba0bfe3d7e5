package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	coreport "github.com/simplecyberhub/txc/internal/domain/port/core"
	"github.com/simplecyberhub/txc/internal/infrastructure/adapter/api/handler"
	"github.com/simplecyberhub/txc/internal/infrastructure/adapter/api/middleware"
	"github.com/simplecyberhub/txc/internal/infrastructure/adapter/ratelimit"
)

// Handlers groups every HTTP handler
type Handlers struct {
	Auth        *handler.AuthHandler
	Transaction *handler.TransactionHandler
	Portfolio   *handler.PortfolioHandler
	KYC         *handler.KYCHandler
	Admin       *handler.AdminHandler
	Health      *handler.HealthHandler
}

// Options carries the cross-cutting pieces the routes need
type Options struct {
	Tokens       coreport.TokenIssuer
	Limiter      ratelimit.Limiter // nil disables rate limiting
	TimeProvider coreport.TimeProvider
	Logger       coreport.Logger
	MetricsPath  string
	Metrics      http.Handler // nil disables the metrics endpoint
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, h Handlers, opts Options) {
	router.GET("/healthz", h.Health.Live)
	router.GET("/readyz", h.Health.Ready)
	if opts.Metrics != nil {
		router.GET(opts.MetricsPath, gin.WrapH(opts.Metrics))
	}

	api := router.Group("/api")

	limit := func(scope string) gin.HandlerFunc {
		if opts.Limiter == nil {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimit(opts.Limiter, scope, opts.TimeProvider, opts.Logger)
	}

	// Public routes
	auth := api.Group("/auth")
	{
		auth.POST("/register", limit("register"), h.Auth.Register)
		auth.POST("/login", limit("login"), h.Auth.Login)
		auth.POST("/verify-email", limit("verify-email"), h.Auth.VerifyEmail)
	}
	api.GET("/content/:slug", h.Admin.PublishedContent)
	api.GET("/settings/:key", h.Admin.Setting)

	// Authenticated user routes
	user := api.Group("", middleware.Auth(opts.Tokens))
	{
		user.GET("/auth/me", h.Auth.Me)

		user.POST("/kyc", h.KYC.Submit)
		user.GET("/kyc/status", h.KYC.Status)

		user.GET("/wallet", h.Transaction.GetWallet)
		user.POST("/transactions", h.Transaction.Create)
		user.GET("/transactions", h.Transaction.List)

		user.GET("/portfolio", h.Portfolio.List)
		user.POST("/portfolio", h.Portfolio.Buy)

		user.GET("/watchlist", h.Portfolio.ListWatchlist)
		user.POST("/watchlist", h.Portfolio.AddToWatchlist)
		user.DELETE("/watchlist/:id", h.Portfolio.RemoveFromWatchlist)
	}

	// Admin routes
	admin := api.Group("/admin", middleware.Auth(opts.Tokens), middleware.RequireAdmin())
	{
		admin.GET("/kyc/pending", h.KYC.ListPending)
		admin.PUT("/kyc/:id", h.KYC.Decide)

		admin.GET("/transactions/pending", h.Transaction.ListPending)
		admin.PUT("/transactions/:id", h.Transaction.Decide)

		admin.GET("/users", h.Admin.ListUsers)
		admin.GET("/overview", h.Admin.Overview)

		admin.POST("/content", h.Admin.CreateContent)
		admin.GET("/content", h.Admin.ListContent)
		admin.PUT("/content/:id", h.Admin.UpdateContent)

		admin.POST("/settings", h.Admin.UpsertSetting)
		admin.GET("/settings", h.Admin.ListSettings)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, allowedOrigins []string, extra ...gin.HandlerFunc) {
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS(allowedOrigins))
	router.Use(extra...)
}
