package handlers

import (
	"strings"

	"github.com/univoucher/univoucher-api/internal/client/blockchain"
	"github.com/univoucher/univoucher-api/internal/constants"
	"github.com/univoucher/univoucher-api/internal/helpers"

	"github.com/gin-gonic/gin"
)

// WalletHandler exposes the operator's internal wallet
type WalletHandler struct {
	common *CommonServices
}

// NewWalletHandler creates a new WalletHandler instance
func NewWalletHandler(common *CommonServices) *WalletHandler {
	return &WalletHandler{common: common}
}

// WalletAddressRequest optionally asks for the native balance on one chain
type WalletAddressRequest struct {
	ChainID int64 `json:"chain_id"`
}

// WalletAddressResponse is the internal wallet address, plus its native
// balance when a chain was requested
type WalletAddressResponse struct {
	Address      string `json:"address"`
	ChainID      int64  `json:"chain_id,omitempty"`
	Balance      string `json:"balance,omitempty"`
	NativeSymbol string `json:"native_symbol,omitempty"`
}

// ImportWalletRequest carries the operator's private key
type ImportWalletRequest struct {
	PrivateKey string `json:"private_key" binding:"required"`
}

// GetWalletAddress godoc
// @Summary      Get internal wallet address
// @Description  Returns the operator wallet address and, when chain_id is given, its native balance
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        X-UV-Nonce  header  string                true   "AJAX nonce"
// @Param        request     body    WalletAddressRequest  false  "Chain to read the balance on"
// @Success      200  {object}  Envelope
// @Router       /ajax/wallet-address [post]
func (h *WalletHandler) GetWalletAddress(c *gin.Context) {
	var req WalletAddressRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			sendError(c, constants.InvalidRequestBody, err)
			return
		}
	}

	ctx := c.Request.Context()
	address, err := h.common.wallet.Address(ctx)
	if err != nil {
		sendServiceError(c, err)
		return
	}

	resp := WalletAddressResponse{Address: address.Hex()}
	if req.ChainID != 0 {
		chain, ok := blockchain.LookupChain(req.ChainID)
		if !ok {
			sendError(c, "unsupported chain", nil)
			return
		}
		balance, err := h.common.gateway.GetNativeBalance(ctx, req.ChainID, address)
		if err != nil {
			sendServiceError(c, err)
			return
		}
		resp.ChainID = req.ChainID
		resp.NativeSymbol = chain.NativeSymbol
		resp.Balance = helpers.FromSmallestUnit(balance, blockchain.NativeDecimals).String()
	}
	sendSuccess(c, resp)
}

// ImportWallet godoc
// @Summary      Import internal wallet key
// @Description  Encrypts the private key with the master key and stores it in settings
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        X-UV-Nonce  header  string               true  "AJAX nonce"
// @Param        request     body    ImportWalletRequest  true  "Private key"
// @Success      200  {object}  Envelope
// @Router       /ajax/wallet/import [post]
func (h *WalletHandler) ImportWallet(c *gin.Context) {
	var req ImportWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, constants.InvalidRequestBody, nil)
		return
	}

	address, err := h.common.wallet.ImportKey(c.Request.Context(), strings.TrimSpace(req.PrivateKey))
	if err != nil {
		// the error may quote the input; never echo it
		sendError(c, "invalid private key", nil)
		return
	}
	sendSuccess(c, WalletAddressResponse{Address: address.Hex()})
}
