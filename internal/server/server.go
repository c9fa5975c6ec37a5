package server

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	"github.com/univoucher/univoucher-api/internal/cardcrypto"
	awsclient "github.com/univoucher/univoucher-api/internal/client/aws"
	"github.com/univoucher/univoucher-api/internal/client/blockchain"
	httpClient "github.com/univoucher/univoucher-api/internal/client/http"
	"github.com/univoucher/univoucher-api/internal/client/univoucher"
	"github.com/univoucher/univoucher-api/internal/constants"
	"github.com/univoucher/univoucher-api/internal/db"
	"github.com/univoucher/univoucher-api/internal/handlers"
	"github.com/univoucher/univoucher-api/internal/interfaces"
	"github.com/univoucher/univoucher-api/internal/logger"
	"github.com/univoucher/univoucher-api/internal/metrics"
	"github.com/univoucher/univoucher-api/internal/middleware"
	"github.com/univoucher/univoucher-api/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Handlers groups every HTTP handler the router serves
type Handlers struct {
	Health    *handlers.HealthHandler
	Wallet    *handlers.WalletHandler
	Card      *handlers.CardHandler
	Mint      *handlers.MintHandler
	Allowance *handlers.AllowanceHandler
	Settings  *handlers.SettingsHandler
}

var (
	config       Config
	apiHandlers  Handlers
	rateLimiter  *middleware.RateLimiter
	stopCleanup  chan struct{}
	connPool     *pgxpool.Pool
	chainGateway *blockchain.Gateway
)

// InitializeHandlers resolves configuration and builds every service and
// handler. It exits the process on any configuration error.
func InitializeHandlers() {
	ctx := context.Background()

	secrets, err := awsclient.NewSecretsManagerClient(ctx)
	if err != nil {
		logger.Warn("AWS config unavailable, using environment variables only", zap.Error(err))
		secrets = awsclient.NewSecretsManagerClientWithAPI(nil)
	}

	config, err = LoadConfig(ctx, secrets)
	if err != nil {
		logger.Fatal("Invalid configuration", zap.Error(err))
	}

	masterKey, err := cardcrypto.ParseMasterKey(config.MasterKey)
	if err != nil {
		logger.Fatal("WALLET_ENCRYPTION_KEY is invalid", zap.Error(err))
	}

	// Create a connection pool using pgxpool
	poolConfig, err := pgxpool.ParseConfig(config.DatabaseURL)
	if err != nil {
		logger.Fatal("Unable to parse database connection string", zap.Error(err))
	}

	// Configure the connection pool
	poolConfig.MaxConns = 10
	poolConfig.MinConns = 2
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = time.Minute * 30

	connPool, err = pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		logger.Fatal("Unable to create connection pool", zap.Error(err))
	}
	store := db.NewStore(connPool)

	collector := metrics.Default()
	chainGateway = blockchain.NewGateway(rpcKeySource(store, config.RPCAPIKey))
	api := univoucher.NewClient(config.UniVoucherAPIURL, httpClient.WithMetricsCollector(collector))

	var recovery interfaces.RecoveryPublisher
	if config.RecoveryQueueURL != "" {
		queue, err := awsclient.NewRecoveryQueue(ctx, config.RecoveryQueueURL)
		if err != nil {
			logger.Fatal("Unable to create recovery queue client", zap.Error(err))
		}
		recovery = queue
	}

	fees := services.NewFeeService(api, services.NewFeeCache(), collector)
	planner := services.NewPlannerService(chainGateway, fees)
	wallet := services.NewOperatorWalletService(store, masterKey)
	validation := services.NewValidationService(api, store, collector)
	admission := services.NewAdmissionService(store, validation, collector)
	approvals := services.NewApprovalService(chainGateway, wallet, planner, fees)
	minting := services.NewMintingService(services.MintingDeps{
		Inventory: store,
		Planner:   planner,
		Gateway:   chainGateway,
		Wallet:    wallet,
		API:       api,
		Admission: admission,
		Recovery:  recovery,
		Metrics:   collector,
	})

	commonServices := handlers.NewCommonServices(store, store, chainGateway, wallet)

	apiHandlers = Handlers{
		Health:    handlers.NewHealthHandler(),
		Wallet:    handlers.NewWalletHandler(commonServices),
		Card:      handlers.NewCardHandler(commonServices, validation, admission),
		Mint:      handlers.NewMintHandler(commonServices, minting),
		Allowance: handlers.NewAllowanceHandler(commonServices, approvals),
		Settings:  handlers.NewSettingsHandler(commonServices),
	}

	rateLimiter = middleware.NewRateLimiter(config.RateLimit, config.RateBurst)
	stopCleanup = make(chan struct{})
	go rateLimiter.Cleanup(5*time.Minute, stopCleanup)

	logger.Info("Handlers initialized",
		zap.String("stage", config.Stage),
		zap.Bool("recovery_queue", recovery != nil),
		zap.Bool("rpc_key_from_env", config.RPCAPIKey != ""))
}

// rpcKeySource prefers the key saved in settings over the startup value.
func rpcKeySource(settings interfaces.SettingsStore, fallback string) blockchain.APIKeySource {
	return func(ctx context.Context) (string, error) {
		key, err := settings.GetSettingValue(ctx, constants.SettingRPCAPIKey)
		if err == nil && key != "" {
			return key, nil
		}
		if fallback != "" {
			return fallback, nil
		}
		if err == nil || errors.Is(err, db.ErrSettingNotFound) {
			return "", errRPCKeyMissing
		}
		return "", err
	}
}

// InitializeRoutes registers middleware and routes on router
func InitializeRoutes(router *gin.Engine) {
	router.Use(configureCORS())
	router.Use(middleware.CorrelationIDMiddleware())
	router.Use(middleware.RequestLoggingMiddleware())

	// Add Swagger endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	RegisterRoutes(router, apiHandlers, config.AjaxNonce, rateLimiter)
}

// RegisterRoutes mounts the health check and the nonce-protected AJAX actions
func RegisterRoutes(router *gin.Engine, h Handlers, nonce string, limiter *middleware.RateLimiter) {
	router.GET("/health", h.Health.Health)

	ajax := router.Group("/ajax")
	ajax.Use(middleware.BodyLimitMiddleware(middleware.DefaultMaxBodySize))
	if limiter != nil {
		ajax.Use(limiter.Middleware())
	}
	ajax.Use(middleware.NonceMiddleware(nonce))
	{
		ajax.POST("/wallet-address", h.Wallet.GetWalletAddress)
		ajax.POST("/wallet/import", h.Wallet.ImportWallet)

		ajax.POST("/validate-card", h.Card.ValidateCard)
		ajax.POST("/add-cards", h.Card.AddCards)
		ajax.POST("/import-csv", h.Card.ImportCSV)

		mint := ajax.Group("/mint/sessions")
		{
			mint.POST("", h.Mint.StartSession)
			mint.GET("/:session_id", h.Mint.GetSession)
			mint.POST("/:session_id/quantity", h.Mint.SetQuantity)
			mint.POST("/:session_id/review", h.Mint.Review)
			mint.POST("/:session_id/back", h.Mint.Back)
			mint.POST("/:session_id/submit", h.Mint.Submit)
			mint.POST("/:session_id/create-more", h.Mint.CreateMore)
		}

		ajax.POST("/allowance/approve", h.Allowance.ApproveAllowance)
		ajax.POST("/allowance/revoke", h.Allowance.RevokeAllowance)

		ajax.POST("/settings/test-rpc", h.Settings.TestRPC)
	}
}

// Shutdown releases the database pool, RPC clients and background workers
func Shutdown() {
	if stopCleanup != nil {
		close(stopCleanup)
		stopCleanup = nil
	}
	if chainGateway != nil {
		chainGateway.Close()
	}
	if connPool != nil {
		connPool.Close()
	}
}

// configureCORS returns a configured CORS middleware
func configureCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	// Get allowed origins from environment variable
	originsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	if originsEnv == "" {
		// Default to localhost if not set
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	} else {
		corsConfig.AllowOrigins = splitAndTrim(originsEnv)
	}

	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", middleware.NonceHeader, middleware.CorrelationIDHeader}
	corsConfig.ExposeHeaders = []string{middleware.CorrelationIDHeader}

	// Set credentials allowed
	corsConfig.AllowCredentials = os.Getenv("CORS_ALLOW_CREDENTIALS") == "true"

	return cors.New(corsConfig)
}

func splitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
