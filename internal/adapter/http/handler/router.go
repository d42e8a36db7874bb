package handler

import (
	"p2p-exchange/internal/adapter/http/middleware"
	redisStore "p2p-exchange/internal/adapter/storage/redis"
	"p2p-exchange/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AuthSvc        ports.AuthService
	AccountSvc     ports.AccountService
	OfferSvc       ports.OfferService
	DealSvc        ports.DealService
	TokenSvc       ports.TokenService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies storage dependencies)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Public routes (no auth) ---
	authHandler := NewAuthHandler(deps.AuthSvc)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", rl("auth_register"), authHandler.Register)
		auth.POST("/login", rl("auth_login"), authHandler.Login)
	}

	// --- JWT-authenticated routes ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	accountHandler := NewAccountHandler(deps.AccountSvc)
	offerHandler := NewOfferHandler(deps.OfferSvc)
	dealHandler := NewDealHandler(deps.DealSvc)

	account := v1.Group("/account", jwtAuth)
	{
		account.GET("", rl("read"), accountHandler.GetAccount)
		account.PUT("/role", rl("trade"), accountHandler.SwitchRole)
		account.POST("/deposit", rl("trade"), accountHandler.Deposit)
		account.POST("/withdraw", rl("trade"), accountHandler.Withdraw)
	}

	offers := v1.Group("/offers", jwtAuth)
	{
		offers.GET("", rl("read"), offerHandler.ListOffers)
		offers.GET("/:id", rl("read"), offerHandler.GetOffer)
		offers.POST("", rl("trade"), offerHandler.PublishOffer)
		offers.POST("/:id/buy", rl("trade"), dealHandler.InitiateBuy)
	}

	deals := v1.Group("/deals", jwtAuth)
	{
		deals.GET("", rl("read"), dealHandler.ListDeals)
		deals.POST("/:id/escrow", rl("trade"), dealHandler.ConfirmEscrow)
		deals.POST("/:id/complete", rl("trade"), dealHandler.ConfirmComplete)
		deals.POST("/:id/dispute", rl("trade"), dealHandler.OpenDispute)
		deals.POST("/:id/cancel", rl("trade"), dealHandler.CancelDeal)
	}

	return r
}
