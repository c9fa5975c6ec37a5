package aws

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/univoucher/univoucher-api/internal/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"go.uber.org/zap"
)

// SecretsAPI is the part of the Secrets Manager client used here.
type SecretsAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// SecretsManagerClient resolves secrets from AWS Secrets Manager with an
// environment variable fallback.
type SecretsManagerClient struct {
	svc    SecretsAPI
	getenv func(string) string
}

// NewSecretsManagerClient uses the default AWS configuration chain
// (environment variables, shared config, IAM role).
func NewSecretsManagerClient(ctx context.Context) (*SecretsManagerClient, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}
	return NewSecretsManagerClientWithAPI(secretsmanager.NewFromConfig(cfg)), nil
}

// NewSecretsManagerClientWithAPI wraps an existing client. A nil svc means
// only the environment fallback is consulted.
func NewSecretsManagerClientWithAPI(svc SecretsAPI) *SecretsManagerClient {
	return &SecretsManagerClient{svc: svc, getenv: os.Getenv}
}

func (c *SecretsManagerClient) fetch(ctx context.Context, secretArnEnvVar string) (string, bool) {
	secretArn := c.getenv(secretArnEnvVar)
	if secretArn == "" || c.svc == nil {
		return "", false
	}

	result, err := c.svc.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretArn),
	})
	if err != nil || result.SecretString == nil || *result.SecretString == "" {
		logger.Log.Warn("Failed to retrieve secret from Secrets Manager, falling back to env var",
			zap.String("arnEnvVar", secretArnEnvVar),
			zap.String("secretArn", secretArn),
			zap.Error(err),
		)
		return "", false
	}

	logger.Log.Info("Fetched secret from Secrets Manager", zap.String("arnEnvVar", secretArnEnvVar))
	return *result.SecretString, true
}

// GetSecretString reads the secret named by the ARN in secretArnEnvVar, or the
// value of fallbackEnvVar when no ARN is set or the fetch fails.
func (c *SecretsManagerClient) GetSecretString(ctx context.Context, secretArnEnvVar string, fallbackEnvVar string) (string, error) {
	if value, ok := c.fetch(ctx, secretArnEnvVar); ok {
		return value, nil
	}

	if value := c.getenv(fallbackEnvVar); value != "" {
		logger.Log.Debug("Using secret value from direct environment variable", zap.String("envVar", fallbackEnvVar))
		return value, nil
	}

	return "", fmt.Errorf("secret not found using ARN env var '%s' or direct env var '%s'", secretArnEnvVar, fallbackEnvVar)
}

// GetSecretJSON is GetSecretString followed by a JSON decode into target.
func (c *SecretsManagerClient) GetSecretJSON(ctx context.Context, secretArnEnvVar string, fallbackEnvVar string, target interface{}) error {
	raw, err := c.GetSecretString(ctx, secretArnEnvVar, fallbackEnvVar)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(raw), target); err != nil {
		return fmt.Errorf("secret from '%s'/'%s' is not valid JSON: %w", secretArnEnvVar, fallbackEnvVar, err)
	}
	return nil
}

// DatabaseSecret is the RDS-style credential document.
type DatabaseSecret struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Host     string `json:"host"`
	Port     int    `json:"port"`
	DBName   string `json:"dbname"`
}

// DSN renders the credentials as a postgres URL.
func (s DatabaseSecret) DSN(sslMode string) string {
	if sslMode == "" {
		sslMode = "require"
	}
	port := s.Port
	if port == 0 {
		port = 5432
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s", s.Username, s.Password, s.Host, port, s.DBName, sslMode)
}
