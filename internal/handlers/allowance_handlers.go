package handlers

import (
	"context"

	"github.com/univoucher/univoucher-api/internal/constants"
	"github.com/univoucher/univoucher-api/internal/interfaces"

	"github.com/gin-gonic/gin"
)

// Approval modes accepted by ApproveAllowance
const (
	ApproveModeQuantity  = "quantity"
	ApproveModeUnlimited = "unlimited"
)

// AllowanceHandler sends ERC-20 approvals from the internal wallet
type AllowanceHandler struct {
	common    *CommonServices
	approvals interfaces.ApprovalActions
}

// NewAllowanceHandler creates a new AllowanceHandler instance
func NewAllowanceHandler(common *CommonServices, approvals interfaces.ApprovalActions) *AllowanceHandler {
	return &AllowanceHandler{common: common, approvals: approvals}
}

// ApproveRequest approves either exactly what quantity cards need or an
// unlimited amount
type ApproveRequest struct {
	ProductID int64  `json:"product_id"`
	Mode      string `json:"mode"`
	Quantity  int    `json:"quantity"`
}

// RevokeRequest sets the allowance for a product's token back to zero
type RevokeRequest struct {
	ProductID int64 `json:"product_id"`
}

// ApproveAllowance godoc
// @Summary      Approve token allowance
// @Description  Approves the UniVoucher contract for the exact total of quantity cards, or an unlimited amount
// @Tags         allowance
// @Accept       json
// @Produce      json
// @Param        X-UV-Nonce  header  string          true  "AJAX nonce"
// @Param        request     body    ApproveRequest  true  "Approval"
// @Success      200  {object}  Envelope
// @Router       /ajax/allowance/approve [post]
func (h *AllowanceHandler) ApproveAllowance(c *gin.Context) {
	var req ApproveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, constants.InvalidRequestBody, err)
		return
	}
	if req.Mode == "" {
		req.Mode = ApproveModeQuantity
	}
	if req.Mode != ApproveModeQuantity && req.Mode != ApproveModeUnlimited {
		sendError(c, "mode must be quantity or unlimited", nil)
		return
	}

	product, ok := h.common.loadProduct(c, req.ProductID)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(c.Request.Context()), submitTimeout)
	defer cancel()

	if req.Mode == ApproveModeUnlimited {
		result, err := h.approvals.ApproveUnlimited(ctx, product)
		if err != nil {
			sendServiceError(c, err)
			return
		}
		sendSuccess(c, result)
		return
	}

	result, err := h.approvals.ApproveForQuantity(ctx, product, req.Quantity)
	if err != nil {
		sendServiceError(c, err)
		return
	}
	sendSuccess(c, result)
}

// RevokeAllowance godoc
// @Summary      Revoke token allowance
// @Tags         allowance
// @Accept       json
// @Produce      json
// @Param        X-UV-Nonce  header  string         true  "AJAX nonce"
// @Param        request     body    RevokeRequest  true  "Product"
// @Success      200  {object}  Envelope
// @Router       /ajax/allowance/revoke [post]
func (h *AllowanceHandler) RevokeAllowance(c *gin.Context) {
	var req RevokeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, constants.InvalidRequestBody, err)
		return
	}
	product, ok := h.common.loadProduct(c, req.ProductID)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(c.Request.Context()), submitTimeout)
	defer cancel()

	result, err := h.approvals.Revoke(ctx, product)
	if err != nil {
		sendServiceError(c, err)
		return
	}
	sendSuccess(c, result)
}
