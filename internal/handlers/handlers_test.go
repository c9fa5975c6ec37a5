package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"math/big"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/univoucher/univoucher-api/internal/constants"
	"github.com/univoucher/univoucher-api/internal/db"
	"github.com/univoucher/univoucher-api/internal/logger"
	"github.com/univoucher/univoucher-api/internal/mocks"
	"github.com/univoucher/univoucher-api/internal/services"
	"github.com/univoucher/univoucher-api/internal/types/business"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	logger.InitLogger("test")
	gin.SetMode(gin.TestMode)
}

var (
	operatorAddress = common.HexToAddress("0x00000000000000000000000000000000000000aa")
	usdcProduct     = business.ProductConfig{
		ProductID:     8,
		ChainID:       1,
		TokenAddress:  "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48",
		TokenSymbol:   "USDC",
		TokenDecimals: 6,
		Amount:        decimal.RequireFromString("25"),
	}
)

type testDeps struct {
	inventory  *mocks.MockInventoryStore
	settings   *mocks.MockSettingsStore
	gateway    *mocks.MockChainGateway
	wallet     *mocks.MockOperatorWallet
	validation *mocks.MockValidationEngine
	admission  *mocks.MockAdmissionPipeline
	minting    *mocks.MockMintingWorkflow
	approvals  *mocks.MockApprovalActions
	common     *CommonServices
}

func newTestDeps(t *testing.T) *testDeps {
	ctrl := gomock.NewController(t)
	d := &testDeps{
		inventory:  mocks.NewMockInventoryStore(ctrl),
		settings:   mocks.NewMockSettingsStore(ctrl),
		gateway:    mocks.NewMockChainGateway(ctrl),
		wallet:     mocks.NewMockOperatorWallet(ctrl),
		validation: mocks.NewMockValidationEngine(ctrl),
		admission:  mocks.NewMockAdmissionPipeline(ctrl),
		minting:    mocks.NewMockMintingWorkflow(ctrl),
		approvals:  mocks.NewMockApprovalActions(ctrl),
	}
	d.common = NewCommonServices(d.inventory, d.settings, d.gateway, d.wallet)
	return d
}

func jsonContext(t *testing.T, body string, params ...gin.Param) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/ajax/test", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = params
	return c, w
}

type testEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) (testEnvelope, ErrorData) {
	t.Helper()
	require.Equal(t, http.StatusOK, w.Code)
	var env testEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	var data ErrorData
	if !env.Success {
		require.NoError(t, json.Unmarshal(env.Data, &data))
	}
	return env, data
}

func TestHealth(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	NewHealthHandler().Health(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestValidateCard(t *testing.T) {
	const body = `{"product_id":8,"card_id":"102123456","card_secret":"ABCDE-FGHIJ-KLMNO-PQRST"}`

	t.Run("missing secret", func(t *testing.T) {
		d := newTestDeps(t)
		c, w := jsonContext(t, `{"product_id":8,"card_id":"102123456"}`)

		NewCardHandler(d.common, d.validation, d.admission).ValidateCard(c)

		env, data := decode(t, w)
		assert.False(t, env.Success)
		assert.Equal(t, constants.CardIDAndSecretNeeded, data.Message)
	})

	t.Run("unknown product", func(t *testing.T) {
		d := newTestDeps(t)
		d.inventory.EXPECT().GetProductConfig(gomock.Any(), int64(8)).Return(business.ProductConfig{}, db.ErrProductNotFound)
		c, w := jsonContext(t, body)

		NewCardHandler(d.common, d.validation, d.admission).ValidateCard(c)

		env, data := decode(t, w)
		assert.False(t, env.Success)
		assert.Equal(t, constants.ProductNotFound, data.Message)
	})

	t.Run("format error", func(t *testing.T) {
		d := newTestDeps(t)
		d.inventory.EXPECT().GetProductConfig(gomock.Any(), int64(8)).Return(usdcProduct, nil)
		d.validation.EXPECT().Validate(gomock.Any(), usdcProduct, gomock.Any(), int64(0)).
			Return(&business.ValidationResult{
				CardID: "102123456",
				Format: &business.FormatIssue{Field: "card_secret", Reason: "must be 20 letters"},
			}, nil)
		c, w := jsonContext(t, body)

		NewCardHandler(d.common, d.validation, d.admission).ValidateCard(c)

		env, data := decode(t, w)
		assert.False(t, env.Success)
		assert.Equal(t, "invalid card_secret: must be 20 letters", data.Message)
	})

	t.Run("facets reported", func(t *testing.T) {
		d := newTestDeps(t)
		d.inventory.EXPECT().GetProductConfig(gomock.Any(), int64(8)).Return(usdcProduct, nil)
		d.validation.EXPECT().Validate(gomock.Any(), usdcProduct,
			business.CardInput{CardID: "102123456", CardSecret: "ABCDE-FGHIJ-KLMNO-PQRST"}, int64(0)).
			Return(&business.ValidationResult{
				CardID: "102123456",
				Facets: business.Facets{New: true, Active: true, Network: true, Amount: false, Token: true, Secret: true},
			}, nil)
		c, w := jsonContext(t, body)

		NewCardHandler(d.common, d.validation, d.admission).ValidateCard(c)

		env, _ := decode(t, w)
		require.True(t, env.Success)
		var result business.ValidationResult
		require.NoError(t, json.Unmarshal(env.Data, &result))
		assert.False(t, result.AllValid)
		assert.False(t, result.Facets.Amount)
		assert.True(t, result.Facets.Secret)
	})

	t.Run("edit mode excludes row", func(t *testing.T) {
		d := newTestDeps(t)
		d.inventory.EXPECT().GetProductConfig(gomock.Any(), int64(8)).Return(usdcProduct, nil)
		d.validation.EXPECT().Validate(gomock.Any(), usdcProduct, gomock.Any(), int64(42)).
			Return(&business.ValidationResult{CardID: "102123456", AllValid: true}, nil)
		c, w := jsonContext(t, `{"product_id":8,"card_id":"102123456","card_secret":"ABCDE-FGHIJ-KLMNO-PQRST","exclude_inventory_id":42}`)

		NewCardHandler(d.common, d.validation, d.admission).ValidateCard(c)

		env, _ := decode(t, w)
		assert.True(t, env.Success)
	})
}

func TestAddCards(t *testing.T) {
	t.Run("admits through the pipeline", func(t *testing.T) {
		d := newTestDeps(t)
		inputs := []business.CardInput{
			{CardID: "102123456", CardSecret: "ABCDE-FGHIJ-KLMNO-PQRST"},
			{CardID: "102123457", CardSecret: "BCDEF-GHIJK-LMNOP-QRSTU"},
		}
		d.admission.EXPECT().ValidateAndAdmit(gomock.Any(), int64(8), inputs, business.SourceManual).
			Return(&business.AdmissionSummary{
				SuccessCount: 1,
				Admitted:     []business.AdmittedCard{{InventoryID: 1, CardID: "102123456"}},
				Errors:       []string{"row 2 (102123457): card failed validation: amount"},
			}, []*business.ValidationResult{{CardID: "102123456"}, {CardID: "102123457"}}, nil)

		payload, err := json.Marshal(AddCardsRequest{ProductID: 8, Cards: inputs})
		require.NoError(t, err)
		c, w := jsonContext(t, string(payload))

		NewCardHandler(d.common, d.validation, d.admission).AddCards(c)

		env, _ := decode(t, w)
		require.True(t, env.Success)
		var resp struct {
			SuccessCount int                          `json:"success_count"`
			Errors       []string                     `json:"errors"`
			Validations  []*business.ValidationResult `json:"validations"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &resp))
		assert.Equal(t, 1, resp.SuccessCount)
		assert.Len(t, resp.Errors, 1)
		assert.Len(t, resp.Validations, 2)
	})

	t.Run("nothing admitted", func(t *testing.T) {
		d := newTestDeps(t)
		d.admission.EXPECT().ValidateAndAdmit(gomock.Any(), int64(8), gomock.Any(), business.SourceManual).
			Return(&business.AdmissionSummary{Errors: []string{"row 1 (102123456): not validated"}}, nil, nil)
		c, w := jsonContext(t, `{"product_id":8,"cards":[{"card_id":"102123456","card_secret":"ABCDE-FGHIJ-KLMNO-PQRST"}]}`)

		NewCardHandler(d.common, d.validation, d.admission).AddCards(c)

		env, _ := decode(t, w)
		assert.False(t, env.Success)
	})

	t.Run("empty batch", func(t *testing.T) {
		d := newTestDeps(t)
		c, w := jsonContext(t, `{"product_id":8,"cards":[]}`)

		NewCardHandler(d.common, d.validation, d.admission).AddCards(c)

		env, data := decode(t, w)
		assert.False(t, env.Success)
		assert.Equal(t, "no cards provided", data.Message)
	})

	t.Run("missing product", func(t *testing.T) {
		d := newTestDeps(t)
		c, w := jsonContext(t, `{"cards":[{"card_id":"102123456","card_secret":"ABCDE-FGHIJ-KLMNO-PQRST"}]}`)

		NewCardHandler(d.common, d.validation, d.admission).AddCards(c)

		_, data := decode(t, w)
		assert.Equal(t, constants.ProductNotFound, data.Message)
	})
}

func csvContext(t *testing.T, productID, content string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("product_id", productID))
	part, err := mw.CreateFormFile("file", "cards.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/ajax/import-csv", &buf)
	c.Request.Header.Set("Content-Type", mw.FormDataContentType())
	return c, w
}

func TestImportCSV(t *testing.T) {
	t.Run("parsed rows go through the pipeline", func(t *testing.T) {
		d := newTestDeps(t)
		d.admission.EXPECT().ValidateAndAdmit(gomock.Any(), int64(8), []business.CardInput{
			{CardID: "102123456", CardSecret: "ABCDE-FGHIJ-KLMNO-PQRST"},
			{CardID: "102123457", CardSecret: "BCDEF-GHIJK-LMNOP-QRSTU"},
		}, business.SourceCSV).Return(&business.AdmissionSummary{SuccessCount: 2}, nil, nil)

		c, w := csvContext(t, "8", "card_id,card_secret\n102123456,ABCDE-FGHIJ-KLMNO-PQRST\n102123457,BCDEF-GHIJK-LMNOP-QRSTU\n")

		NewCardHandler(d.common, d.validation, d.admission).ImportCSV(c)

		env, _ := decode(t, w)
		assert.True(t, env.Success)
	})

	t.Run("short row", func(t *testing.T) {
		d := newTestDeps(t)
		c, w := csvContext(t, "8", "102123456\n")

		NewCardHandler(d.common, d.validation, d.admission).ImportCSV(c)

		env, data := decode(t, w)
		assert.False(t, env.Success)
		assert.Contains(t, data.Message, "row 1 needs card_id and card_secret")
	})
}

func TestMintSubmit(t *testing.T) {
	sessionParam := gin.Param{Key: "session_id", Value: "sess-1"}

	t.Run("completed", func(t *testing.T) {
		d := newTestDeps(t)
		view := &business.MintSessionView{
			ID:    "sess-1",
			State: business.MintCompleted,
			Result: &business.MintResult{
				TxHash: "0xabc",
				Pairs:  []business.CardSecretPair{{CardID: "102123456", CardSecret: "ABCDE-FGHIJ-KLMNO-PQRST"}},
			},
		}
		d.minting.EXPECT().Submit(gomock.Any(), "sess-1").Return(view, nil)
		c, w := jsonContext(t, "", sessionParam)

		NewMintHandler(d.common, d.minting).Submit(c)

		env, _ := decode(t, w)
		require.True(t, env.Success)
		var got business.MintSessionView
		require.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, business.MintCompleted, got.State)
		assert.Equal(t, "0xabc", got.Result.TxHash)
	})

	t.Run("partial success carries tx hash and cards", func(t *testing.T) {
		d := newTestDeps(t)
		partial := &services.PartialMintSuccess{
			TxHash:     "0xdef",
			Pairs:      []business.CardSecretPair{{CardID: "102123456", CardSecret: "ABCDE-FGHIJ-KLMNO-PQRST"}},
			Unresolved: []business.CardSecretPair{{CardSecret: "BCDEF-GHIJK-LMNOP-QRSTU", SlotID: "0x01"}},
			Err:        errors.New("card not found"),
		}
		view := &business.MintSessionView{ID: "sess-1", State: business.MintCompleted}
		d.minting.EXPECT().Submit(gomock.Any(), "sess-1").
			Return(view, &services.MintStepError{Step: services.StepResolveCards, Err: partial})
		c, w := jsonContext(t, "", sessionParam)

		NewMintHandler(d.common, d.minting).Submit(c)

		env, data := decode(t, w)
		assert.False(t, env.Success)
		assert.Equal(t, services.StepResolveCards, data.Step)
		assert.Equal(t, "0xdef", data.TxHash)
		assert.Len(t, data.Cards, 1)
		assert.Len(t, data.Unresolved, 1)
		require.NotNil(t, data.Session)
		assert.Equal(t, business.MintCompleted, data.Session.State)
	})

	t.Run("cards minted but not admitted", func(t *testing.T) {
		d := newTestDeps(t)
		partial := &services.PartialMintSuccess{
			TxHash:      "0xdef",
			Pairs:       []business.CardSecretPair{{CardID: "102123456", CardSecret: "ABCDE-FGHIJ-KLMNO-PQRST"}},
			NotAdmitted: true,
			Err:         errors.New("validation api down"),
		}
		d.minting.EXPECT().Submit(gomock.Any(), "sess-1").
			Return(&business.MintSessionView{ID: "sess-1", State: business.MintCompleted},
				&services.MintStepError{Step: services.StepAdmitCards, Err: partial})
		c, w := jsonContext(t, "", sessionParam)

		NewMintHandler(d.common, d.minting).Submit(c)

		env, data := decode(t, w)
		assert.False(t, env.Success)
		assert.Equal(t, services.StepAdmitCards, data.Step)
		assert.True(t, data.NotAdmitted)
		assert.Len(t, data.Cards, 1)
		assert.Contains(t, data.Message, "not added to inventory")
	})

	t.Run("total failure returns current session", func(t *testing.T) {
		d := newTestDeps(t)
		d.minting.EXPECT().Submit(gomock.Any(), "sess-1").
			Return(nil, &services.MintStepError{Step: services.StepSendTx, Err: errors.New("insufficient funds for gas")})
		d.minting.EXPECT().GetSession(gomock.Any(), "sess-1").
			Return(&business.MintSessionView{ID: "sess-1", State: business.MintReviewing}, nil)
		c, w := jsonContext(t, "", sessionParam)

		NewMintHandler(d.common, d.minting).Submit(c)

		env, data := decode(t, w)
		assert.False(t, env.Success)
		assert.Equal(t, services.StepSendTx, data.Step)
		assert.Empty(t, data.TxHash)
		require.NotNil(t, data.Session)
		assert.Equal(t, business.MintReviewing, data.Session.State)
	})
}

func TestMintSessionActions(t *testing.T) {
	t.Run("start", func(t *testing.T) {
		d := newTestDeps(t)
		d.minting.EXPECT().StartSession(gomock.Any(), int64(8)).
			Return(&business.MintSessionView{ID: "sess-1", State: business.MintConfiguring, Quantity: 1}, nil)
		c, w := jsonContext(t, `{"product_id":8}`)

		NewMintHandler(d.common, d.minting).StartSession(c)

		env, _ := decode(t, w)
		assert.True(t, env.Success)
	})

	t.Run("quantity", func(t *testing.T) {
		d := newTestDeps(t)
		d.minting.EXPECT().SetQuantity(gomock.Any(), "sess-1", 3).
			Return(&business.MintSessionView{ID: "sess-1", Quantity: 3}, nil)
		c, w := jsonContext(t, `{"quantity":3}`, gin.Param{Key: "session_id", Value: "sess-1"})

		NewMintHandler(d.common, d.minting).SetQuantity(c)

		env, _ := decode(t, w)
		assert.True(t, env.Success)
	})

	t.Run("review blocked", func(t *testing.T) {
		d := newTestDeps(t)
		blocked := &services.MintStepError{
			Step: services.StepReview,
			Err:  &services.InsufficientFundsError{Kind: services.FundsAllowance, Required: "50.5", Available: "0", Symbol: "USDC"},
		}
		d.minting.EXPECT().Review(gomock.Any(), "sess-1").Return(nil, blocked)
		d.minting.EXPECT().GetSession(gomock.Any(), "sess-1").
			Return(&business.MintSessionView{ID: "sess-1", State: business.MintConfiguring}, nil)
		c, w := jsonContext(t, "", gin.Param{Key: "session_id", Value: "sess-1"})

		NewMintHandler(d.common, d.minting).Review(c)

		env, data := decode(t, w)
		assert.False(t, env.Success)
		assert.Equal(t, services.StepReview, data.Step)
		assert.Contains(t, data.Message, "allowance")
	})

	t.Run("unknown session", func(t *testing.T) {
		d := newTestDeps(t)
		d.minting.EXPECT().Back(gomock.Any(), "nope").Return(nil, services.ErrSessionNotFound)
		d.minting.EXPECT().GetSession(gomock.Any(), "nope").Return(nil, services.ErrSessionNotFound)
		c, w := jsonContext(t, "", gin.Param{Key: "session_id", Value: "nope"})

		NewMintHandler(d.common, d.minting).Back(c)

		_, data := decode(t, w)
		assert.Equal(t, constants.MintSessionNotFound, data.Message)
		assert.Nil(t, data.Session)
	})
}

func TestAllowance(t *testing.T) {
	t.Run("unlimited", func(t *testing.T) {
		d := newTestDeps(t)
		d.inventory.EXPECT().GetProductConfig(gomock.Any(), int64(8)).Return(usdcProduct, nil)
		d.approvals.EXPECT().ApproveUnlimited(gomock.Any(), usdcProduct).
			Return(&business.ApprovalResult{TxHash: "0x1", Unlimited: true}, nil)
		c, w := jsonContext(t, `{"product_id":8,"mode":"unlimited"}`)

		NewAllowanceHandler(d.common, d.approvals).ApproveAllowance(c)

		env, _ := decode(t, w)
		assert.True(t, env.Success)
	})

	t.Run("quantity is the default", func(t *testing.T) {
		d := newTestDeps(t)
		d.inventory.EXPECT().GetProductConfig(gomock.Any(), int64(8)).Return(usdcProduct, nil)
		d.approvals.EXPECT().ApproveForQuantity(gomock.Any(), usdcProduct, 2).
			Return(&business.ApprovalResult{TxHash: "0x2", Amount: big.NewInt(50750000)}, nil)
		c, w := jsonContext(t, `{"product_id":8,"quantity":2}`)

		NewAllowanceHandler(d.common, d.approvals).ApproveAllowance(c)

		env, _ := decode(t, w)
		assert.True(t, env.Success)
	})

	t.Run("bad mode", func(t *testing.T) {
		d := newTestDeps(t)
		c, w := jsonContext(t, `{"product_id":8,"mode":"some"}`)

		NewAllowanceHandler(d.common, d.approvals).ApproveAllowance(c)

		env, _ := decode(t, w)
		assert.False(t, env.Success)
	})

	t.Run("revoke failure", func(t *testing.T) {
		d := newTestDeps(t)
		d.inventory.EXPECT().GetProductConfig(gomock.Any(), int64(8)).Return(usdcProduct, nil)
		d.approvals.EXPECT().Revoke(gomock.Any(), usdcProduct).Return(nil, services.ErrWalletNotConfigured)
		c, w := jsonContext(t, `{"product_id":8}`)

		NewAllowanceHandler(d.common, d.approvals).RevokeAllowance(c)

		env, data := decode(t, w)
		assert.False(t, env.Success)
		assert.Equal(t, constants.WalletNotConfigured, data.Message)
	})
}

func TestTestRPC(t *testing.T) {
	t.Run("saves key after a successful test", func(t *testing.T) {
		d := newTestDeps(t)
		d.gateway.EXPECT().TestConnection(gomock.Any(), int64(137), "key-123").Return(nil)
		d.settings.EXPECT().SetSettingValue(gomock.Any(), constants.SettingRPCAPIKey, "key-123").Return(nil)
		c, w := jsonContext(t, `{"api_key":" key-123 ","chain_id":137}`)

		NewSettingsHandler(d.common).TestRPC(c)

		env, _ := decode(t, w)
		require.True(t, env.Success)
		var resp TestRPCResponse
		require.NoError(t, json.Unmarshal(env.Data, &resp))
		assert.Equal(t, "Polygon", resp.Chain)
		assert.True(t, resp.Saved)
	})

	t.Run("failed test saves nothing and hides the key", func(t *testing.T) {
		d := newTestDeps(t)
		d.gateway.EXPECT().TestConnection(gomock.Any(), int64(1), "bad-key").
			Return(errors.New("dial https://eth-mainnet.g.alchemy.com/v2/bad-key: 401"))
		c, w := jsonContext(t, `{"api_key":"bad-key"}`)

		NewSettingsHandler(d.common).TestRPC(c)

		env, data := decode(t, w)
		assert.False(t, env.Success)
		assert.NotContains(t, data.Message, "bad-key")
	})

	t.Run("unknown chain lists supported ids", func(t *testing.T) {
		d := newTestDeps(t)
		c, w := jsonContext(t, `{"api_key":"key-123","chain_id":5}`)

		NewSettingsHandler(d.common).TestRPC(c)

		env, data := decode(t, w)
		assert.False(t, env.Success)
		assert.Equal(t, "unsupported chain 5; supported chain ids: 1, 10, 56, 137, 8453, 42161, 43114", data.Message)
	})
}

func TestWalletAddress(t *testing.T) {
	t.Run("address only", func(t *testing.T) {
		d := newTestDeps(t)
		d.wallet.EXPECT().Address(gomock.Any()).Return(operatorAddress, nil)
		c, w := jsonContext(t, "")

		NewWalletHandler(d.common).GetWalletAddress(c)

		env, _ := decode(t, w)
		require.True(t, env.Success)
		var resp WalletAddressResponse
		require.NoError(t, json.Unmarshal(env.Data, &resp))
		assert.Equal(t, operatorAddress.Hex(), resp.Address)
		assert.Empty(t, resp.Balance)
	})

	t.Run("with native balance", func(t *testing.T) {
		d := newTestDeps(t)
		d.wallet.EXPECT().Address(gomock.Any()).Return(operatorAddress, nil)
		d.gateway.EXPECT().GetNativeBalance(gomock.Any(), int64(1), operatorAddress).
			Return(big.NewInt(1500000000000000000), nil)
		c, w := jsonContext(t, `{"chain_id":1}`)

		NewWalletHandler(d.common).GetWalletAddress(c)

		env, _ := decode(t, w)
		require.True(t, env.Success)
		var resp WalletAddressResponse
		require.NoError(t, json.Unmarshal(env.Data, &resp))
		assert.Equal(t, "1.5", resp.Balance)
		assert.Equal(t, "ETH", resp.NativeSymbol)
	})

	t.Run("not configured", func(t *testing.T) {
		d := newTestDeps(t)
		d.wallet.EXPECT().Address(gomock.Any()).Return(common.Address{}, services.ErrWalletNotConfigured)
		c, w := jsonContext(t, "")

		NewWalletHandler(d.common).GetWalletAddress(c)

		env, data := decode(t, w)
		assert.False(t, env.Success)
		assert.Equal(t, constants.WalletNotConfigured, data.Message)
	})

	t.Run("import never echoes the key", func(t *testing.T) {
		d := newTestDeps(t)
		d.wallet.EXPECT().ImportKey(gomock.Any(), "0xnot-a-key").Return(common.Address{}, errors.New("invalid hex 0xnot-a-key"))
		c, w := jsonContext(t, `{"private_key":"0xnot-a-key"}`)

		NewWalletHandler(d.common).ImportWallet(c)

		env, data := decode(t, w)
		assert.False(t, env.Success)
		assert.NotContains(t, w.Body.String(), "not-a-key")
		assert.Equal(t, "invalid private key", data.Message)
	})
}
