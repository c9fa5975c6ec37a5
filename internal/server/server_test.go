package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/univoucher/univoucher-api/internal/constants"
	"github.com/univoucher/univoucher-api/internal/db"
	"github.com/univoucher/univoucher-api/internal/handlers"
	"github.com/univoucher/univoucher-api/internal/logger"
	"github.com/univoucher/univoucher-api/internal/middleware"
	"github.com/univoucher/univoucher-api/internal/mocks"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	logger.InitLogger("test")
	gin.SetMode(gin.TestMode)
}

// envSecrets resolves only the fallback env var
type envSecrets struct {
	values map[string]string
}

func (s envSecrets) GetSecretString(_ context.Context, _ string, fallbackEnvVar string) (string, error) {
	if v, ok := s.values[fallbackEnvVar]; ok {
		return v, nil
	}
	return "", fmt.Errorf("secret %s not found", fallbackEnvVar)
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("STAGE", "dev")
	t.Setenv("PORT", "")
	t.Setenv("RATE_LIMIT_RPS", "")
	t.Setenv("RATE_LIMIT_BURST", "")
	t.Setenv("UNIVOUCHER_API_URL", "https://api.example.test")

	secrets := envSecrets{values: map[string]string{
		"DATABASE_URL":          "postgres://u:p@localhost:5432/uv",
		"WALLET_ENCRYPTION_KEY": strings.Repeat("ab", 32),
		"AJAX_NONCE":            "nonce-1",
	}}

	cfg, err := LoadConfig(context.Background(), secrets)
	require.NoError(t, err)
	assert.Equal(t, "dev", cfg.Stage)
	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "postgres://u:p@localhost:5432/uv", cfg.DatabaseURL)
	assert.Equal(t, "nonce-1", cfg.AjaxNonce)
	assert.Empty(t, cfg.RPCAPIKey)
	assert.Equal(t, 10, cfg.RateLimit)
	assert.Equal(t, 20, cfg.RateBurst)
	assert.Equal(t, "https://api.example.test", cfg.UniVoucherAPIURL)
}

func TestLoadConfig_Errors(t *testing.T) {
	complete := map[string]string{
		"DATABASE_URL":          "postgres://localhost/uv",
		"WALLET_ENCRYPTION_KEY": strings.Repeat("ab", 32),
		"AJAX_NONCE":            "nonce-1",
	}

	tests := []struct {
		name    string
		stage   string
		missing string
	}{
		{name: "bad stage", stage: "staging"},
		{name: "no database", stage: "dev", missing: "DATABASE_URL"},
		{name: "no master key", stage: "dev", missing: "WALLET_ENCRYPTION_KEY"},
		{name: "no nonce", stage: "dev", missing: "AJAX_NONCE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("STAGE", tt.stage)
			values := make(map[string]string, len(complete))
			for k, v := range complete {
				if k != tt.missing {
					values[k] = v
				}
			}
			_, err := LoadConfig(context.Background(), envSecrets{values: values})
			assert.Error(t, err)
		})
	}
}

func TestDatabaseURL_FromCredentialDocument(t *testing.T) {
	t.Setenv("DB_SSLMODE", "disable")
	got, err := databaseURL(`{"username":"uv","password":"pw","host":"db.internal","port":5433,"dbname":"cards"}`)
	require.NoError(t, err)
	assert.Contains(t, got, "db.internal:5433/cards")
	assert.Contains(t, got, "sslmode=disable")

	_, err = databaseURL(`{not json`)
	assert.Error(t, err)
}

func TestRPCKeySource(t *testing.T) {
	ctx := context.Background()

	t.Run("settings win", func(t *testing.T) {
		settings := mocks.NewMockSettingsStore(gomock.NewController(t))
		settings.EXPECT().GetSettingValue(gomock.Any(), constants.SettingRPCAPIKey).Return("saved-key", nil)

		key, err := rpcKeySource(settings, "env-key")(ctx)
		require.NoError(t, err)
		assert.Equal(t, "saved-key", key)
	})

	t.Run("env fallback", func(t *testing.T) {
		settings := mocks.NewMockSettingsStore(gomock.NewController(t))
		settings.EXPECT().GetSettingValue(gomock.Any(), constants.SettingRPCAPIKey).Return("", db.ErrSettingNotFound)

		key, err := rpcKeySource(settings, "env-key")(ctx)
		require.NoError(t, err)
		assert.Equal(t, "env-key", key)
	})

	t.Run("missing everywhere", func(t *testing.T) {
		settings := mocks.NewMockSettingsStore(gomock.NewController(t))
		settings.EXPECT().GetSettingValue(gomock.Any(), constants.SettingRPCAPIKey).Return("", db.ErrSettingNotFound)

		_, err := rpcKeySource(settings, "")(ctx)
		assert.ErrorIs(t, err, errRPCKeyMissing)
	})

	t.Run("store failure", func(t *testing.T) {
		settings := mocks.NewMockSettingsStore(gomock.NewController(t))
		settings.EXPECT().GetSettingValue(gomock.Any(), constants.SettingRPCAPIKey).Return("", errors.New("connection refused"))

		_, err := rpcKeySource(settings, "")(ctx)
		assert.EqualError(t, err, "connection refused")
	})
}

func testRouter(t *testing.T) (*gin.Engine, *mocks.MockOperatorWallet) {
	ctrl := gomock.NewController(t)
	inventory := mocks.NewMockInventoryStore(ctrl)
	settings := mocks.NewMockSettingsStore(ctrl)
	gateway := mocks.NewMockChainGateway(ctrl)
	wallet := mocks.NewMockOperatorWallet(ctrl)
	shared := handlers.NewCommonServices(inventory, settings, gateway, wallet)

	h := Handlers{
		Health:    handlers.NewHealthHandler(),
		Wallet:    handlers.NewWalletHandler(shared),
		Card:      handlers.NewCardHandler(shared, mocks.NewMockValidationEngine(ctrl), mocks.NewMockAdmissionPipeline(ctrl)),
		Mint:      handlers.NewMintHandler(shared, mocks.NewMockMintingWorkflow(ctrl)),
		Allowance: handlers.NewAllowanceHandler(shared, mocks.NewMockApprovalActions(ctrl)),
		Settings:  handlers.NewSettingsHandler(shared),
	}

	router := gin.New()
	RegisterRoutes(router, h, "route-nonce", nil)
	return router, wallet
}

func TestRegisterRoutes(t *testing.T) {
	t.Run("health needs no nonce", func(t *testing.T) {
		router, _ := testRouter(t)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("ajax rejects a missing nonce before the handler", func(t *testing.T) {
		router, _ := testRouter(t)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/ajax/wallet-address", nil))

		var env map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, false, env["success"])
	})

	t.Run("ajax with nonce reaches the handler", func(t *testing.T) {
		router, wallet := testRouter(t)
		wallet.EXPECT().Address(gomock.Any()).Return(common.HexToAddress("0x01"), nil)

		req := httptest.NewRequest(http.MethodPost, "/ajax/wallet-address", nil)
		req.Header.Set(middleware.NonceHeader, "route-nonce")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		var env handlers.Envelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.True(t, env.Success)
	})

	t.Run("every mint action is mounted", func(t *testing.T) {
		router, _ := testRouter(t)
		mounted := map[string]bool{}
		for _, r := range router.Routes() {
			mounted[r.Method+" "+r.Path] = true
		}
		for _, route := range []string{
			"POST /ajax/mint/sessions",
			"GET /ajax/mint/sessions/:session_id",
			"POST /ajax/mint/sessions/:session_id/quantity",
			"POST /ajax/mint/sessions/:session_id/review",
			"POST /ajax/mint/sessions/:session_id/back",
			"POST /ajax/mint/sessions/:session_id/submit",
			"POST /ajax/mint/sessions/:session_id/create-more",
			"POST /ajax/allowance/approve",
			"POST /ajax/allowance/revoke",
			"POST /ajax/settings/test-rpc",
			"POST /ajax/import-csv",
		} {
			assert.True(t, mounted[route], route)
		}
	})
}
