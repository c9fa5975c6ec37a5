package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	awsclient "github.com/univoucher/univoucher-api/internal/client/aws"
	"github.com/univoucher/univoucher-api/internal/constants"
	"github.com/univoucher/univoucher-api/internal/helpers"
)

// SecretSource resolves a secret by ARN env var with a plain env var fallback
type SecretSource interface {
	GetSecretString(ctx context.Context, secretArnEnvVar string, fallbackEnvVar string) (string, error)
}

// Config is everything the API needs at startup
type Config struct {
	Stage            string
	Port             string
	DatabaseURL      string
	RPCAPIKey        string
	MasterKey        string
	AjaxNonce        string
	UniVoucherAPIURL string
	RecoveryQueueURL string
	RateLimit        int
	RateBurst        int
}

// LoadConfig reads the environment and resolves secrets. DATABASE_URL,
// WALLET_ENCRYPTION_KEY and AJAX_NONCE are required; RPC_API_KEY may instead
// be saved later through the settings endpoint.
func LoadConfig(ctx context.Context, secrets SecretSource) (Config, error) {
	cfg := Config{
		Stage:            getEnvWithDefault("STAGE", constants.ProdEnvironment),
		Port:             getEnvWithDefault("PORT", "8000"),
		UniVoucherAPIURL: os.Getenv("UNIVOUCHER_API_URL"),
		RecoveryQueueURL: os.Getenv("RECOVERY_QUEUE_URL"),
		RateLimit:        getIntEnvWithDefault("RATE_LIMIT_RPS", 10),
		RateBurst:        getIntEnvWithDefault("RATE_LIMIT_BURST", 20),
	}
	if !helpers.IsValidStage(cfg.Stage) {
		return Config{}, fmt.Errorf("invalid STAGE %q", cfg.Stage)
	}

	dbValue, err := secrets.GetSecretString(ctx, "DATABASE_URL_ARN", "DATABASE_URL")
	if err != nil {
		return Config{}, err
	}
	cfg.DatabaseURL, err = databaseURL(dbValue)
	if err != nil {
		return Config{}, err
	}

	if cfg.MasterKey, err = secrets.GetSecretString(ctx, "WALLET_ENCRYPTION_KEY_ARN", "WALLET_ENCRYPTION_KEY"); err != nil {
		return Config{}, err
	}
	if cfg.AjaxNonce, err = secrets.GetSecretString(ctx, "AJAX_NONCE_ARN", "AJAX_NONCE"); err != nil {
		return Config{}, err
	}

	// optional
	cfg.RPCAPIKey, _ = secrets.GetSecretString(ctx, "RPC_API_KEY_ARN", "RPC_API_KEY")

	return cfg, nil
}

// databaseURL accepts either a postgres URL or an RDS credential document.
func databaseURL(value string) (string, error) {
	value = strings.TrimSpace(value)
	if !strings.HasPrefix(value, "{") {
		return value, nil
	}
	var secret awsclient.DatabaseSecret
	if err := json.Unmarshal([]byte(value), &secret); err != nil {
		return "", fmt.Errorf("database secret is not valid JSON: %w", err)
	}
	return secret.DSN(os.Getenv("DB_SSLMODE")), nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnvWithDefault(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil || value <= 0 {
		return defaultValue
	}
	return value
}

var errRPCKeyMissing = errors.New("RPC API key is not configured")
