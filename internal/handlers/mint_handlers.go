package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/univoucher/univoucher-api/internal/constants"
	"github.com/univoucher/univoucher-api/internal/interfaces"
	"github.com/univoucher/univoucher-api/internal/types/business"

	"github.com/gin-gonic/gin"
)

// submitTimeout bounds a mint submission once it has started. The submission
// is detached from the request so a dropped connection cannot abandon a
// broadcast transaction.
const submitTimeout = 10 * time.Minute

// MintHandler drives internal-wallet mint sessions
type MintHandler struct {
	common  *CommonServices
	minting interfaces.MintingWorkflow
}

// NewMintHandler creates a new MintHandler instance
func NewMintHandler(common *CommonServices, minting interfaces.MintingWorkflow) *MintHandler {
	return &MintHandler{common: common, minting: minting}
}

// StartSessionRequest opens a mint session for a product
type StartSessionRequest struct {
	ProductID int64 `json:"product_id"`
}

// SetQuantityRequest changes the number of cards to mint
type SetQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// StartSession godoc
// @Summary      Start a mint session
// @Description  Opens a session in the configuring state with quantity 1 and its cost summary
// @Tags         mint
// @Accept       json
// @Produce      json
// @Param        X-UV-Nonce  header  string               true  "AJAX nonce"
// @Param        request     body    StartSessionRequest  true  "Product"
// @Success      200  {object}  Envelope
// @Router       /ajax/mint/sessions [post]
func (h *MintHandler) StartSession(c *gin.Context) {
	var req StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, constants.InvalidRequestBody, err)
		return
	}
	if req.ProductID <= 0 {
		sendError(c, constants.ProductNotFound, nil)
		return
	}

	view, err := h.minting.StartSession(c.Request.Context(), req.ProductID)
	if err != nil {
		sendServiceError(c, err)
		return
	}
	sendSuccess(c, view)
}

// GetSession godoc
// @Summary      Get a mint session
// @Tags         mint
// @Produce      json
// @Param        X-UV-Nonce  header  string  true  "AJAX nonce"
// @Param        session_id  path    string  true  "Session ID"
// @Success      200  {object}  Envelope
// @Router       /ajax/mint/sessions/{session_id} [get]
func (h *MintHandler) GetSession(c *gin.Context) {
	view, err := h.minting.GetSession(c.Request.Context(), c.Param("session_id"))
	h.respond(c, view, err)
}

// SetQuantity godoc
// @Summary      Set mint quantity
// @Description  Only allowed while configuring. Re-runs the cost, balance and allowance checks.
// @Tags         mint
// @Accept       json
// @Produce      json
// @Param        X-UV-Nonce  header  string              true  "AJAX nonce"
// @Param        session_id  path    string              true  "Session ID"
// @Param        request     body    SetQuantityRequest  true  "Quantity"
// @Success      200  {object}  Envelope
// @Router       /ajax/mint/sessions/{session_id}/quantity [post]
func (h *MintHandler) SetQuantity(c *gin.Context) {
	var req SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, constants.InvalidRequestBody, err)
		return
	}
	view, err := h.minting.SetQuantity(c.Request.Context(), c.Param("session_id"), req.Quantity)
	h.respond(c, view, err)
}

// Review godoc
// @Summary      Review a mint
// @Description  Moves to reviewing with a buffered gas estimate, or fails with the blocking reason
// @Tags         mint
// @Produce      json
// @Param        X-UV-Nonce  header  string  true  "AJAX nonce"
// @Param        session_id  path    string  true  "Session ID"
// @Success      200  {object}  Envelope
// @Router       /ajax/mint/sessions/{session_id}/review [post]
func (h *MintHandler) Review(c *gin.Context) {
	view, err := h.minting.Review(c.Request.Context(), c.Param("session_id"))
	h.respond(c, view, err)
}

// Back godoc
// @Summary      Return to configuring
// @Tags         mint
// @Produce      json
// @Param        X-UV-Nonce  header  string  true  "AJAX nonce"
// @Param        session_id  path    string  true  "Session ID"
// @Success      200  {object}  Envelope
// @Router       /ajax/mint/sessions/{session_id}/back [post]
func (h *MintHandler) Back(c *gin.Context) {
	view, err := h.minting.Back(c.Request.Context(), c.Param("session_id"))
	h.respond(c, view, err)
}

// Submit godoc
// @Summary      Submit a mint
// @Description  Signs and sends the deposit, waits for the receipt and returns every card id with its secret.
// @Description  A mined deposit with unresolved card ids fails with the transaction hash and the cards that were resolved.
// @Tags         mint
// @Produce      json
// @Param        X-UV-Nonce  header  string  true  "AJAX nonce"
// @Param        session_id  path    string  true  "Session ID"
// @Success      200  {object}  Envelope
// @Router       /ajax/mint/sessions/{session_id}/submit [post]
func (h *MintHandler) Submit(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(c.Request.Context()), submitTimeout)
	defer cancel()

	view, err := h.minting.Submit(ctx, c.Param("session_id"))
	h.respond(c, view, err)
}

// CreateMore godoc
// @Summary      Start over after a completed mint
// @Tags         mint
// @Produce      json
// @Param        X-UV-Nonce  header  string  true  "AJAX nonce"
// @Param        session_id  path    string  true  "Session ID"
// @Success      200  {object}  Envelope
// @Router       /ajax/mint/sessions/{session_id}/create-more [post]
func (h *MintHandler) CreateMore(c *gin.Context) {
	view, err := h.minting.CreateMore(c.Request.Context(), c.Param("session_id"))
	h.respond(c, view, err)
}

// respond sends the session view, or the failure together with the session
// as it stands after the failure.
func (h *MintHandler) respond(c *gin.Context, view *business.MintSessionView, err error) {
	if err == nil {
		sendSuccess(c, view)
		return
	}

	data := describeError(err)
	if view == nil {
		if current, getErr := h.minting.GetSession(c.Request.Context(), c.Param("session_id")); getErr == nil {
			view = current
		}
	}
	data.Session = view
	logFailure(c, data, err)
	c.JSON(http.StatusOK, Envelope{Success: false, Data: data})
}
