package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/univoucher/univoucher-api/internal/client/blockchain"
	"github.com/univoucher/univoucher-api/internal/constants"
	"github.com/univoucher/univoucher-api/internal/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// defaultTestChainID is used when the request names no chain
const defaultTestChainID int64 = 1

// SettingsHandler manages plugin settings that need a live check before saving
type SettingsHandler struct {
	common *CommonServices
}

// NewSettingsHandler creates a new SettingsHandler instance
func NewSettingsHandler(common *CommonServices) *SettingsHandler {
	return &SettingsHandler{common: common}
}

// TestRPCRequest is an RPC provider API key to test and, on success, save
type TestRPCRequest struct {
	APIKey  string `json:"api_key" binding:"required"`
	ChainID int64  `json:"chain_id"`
}

// TestRPCResponse reports which chain answered
type TestRPCResponse struct {
	ChainID int64  `json:"chain_id"`
	Chain   string `json:"chain"`
	Saved   bool   `json:"saved"`
}

// TestRPC godoc
// @Summary      Test and save the RPC API key
// @Description  Connects to the provider with the key and stores it when the chain answers
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        X-UV-Nonce  header  string          true  "AJAX nonce"
// @Param        request     body    TestRPCRequest  true  "API key and optional chain id"
// @Success      200  {object}  Envelope
// @Router       /ajax/settings/test-rpc [post]
func (h *SettingsHandler) TestRPC(c *gin.Context) {
	var req TestRPCRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, constants.InvalidRequestBody, nil)
		return
	}
	apiKey := strings.TrimSpace(req.APIKey)
	if req.ChainID == 0 {
		req.ChainID = defaultTestChainID
	}
	chain, ok := blockchain.LookupChain(req.ChainID)
	if !ok {
		sendError(c, unsupportedChainMessage(req.ChainID), nil)
		return
	}

	ctx := c.Request.Context()
	if err := h.common.gateway.TestConnection(ctx, req.ChainID, apiKey); err != nil {
		// the RPC URL embeds the key
		sendError(c, "RPC connection failed for "+chain.Name, nil)
		return
	}
	if err := h.common.settings.SetSettingValue(ctx, constants.SettingRPCAPIKey, apiKey); err != nil {
		sendError(c, "Failed to save RPC API key", err)
		return
	}

	// drop clients dialed with the previous key
	if closer, ok := h.common.gateway.(interface{ Close() }); ok {
		closer.Close()
	}
	logger.Log.Info("RPC API key updated", zap.Int64("tested_chain_id", req.ChainID))

	sendSuccess(c, TestRPCResponse{ChainID: chain.ID, Chain: chain.Name, Saved: true})
}

func unsupportedChainMessage(chainID int64) string {
	ids := make([]string, 0)
	for _, chain := range blockchain.SupportedChains() {
		ids = append(ids, strconv.FormatInt(chain.ID, 10))
	}
	return fmt.Sprintf("unsupported chain %d; supported chain ids: %s", chainID, strings.Join(ids, ", "))
}
