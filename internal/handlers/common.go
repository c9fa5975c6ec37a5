package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/univoucher/univoucher-api/internal/client/blockchain"
	"github.com/univoucher/univoucher-api/internal/constants"
	"github.com/univoucher/univoucher-api/internal/db"
	"github.com/univoucher/univoucher-api/internal/interfaces"
	"github.com/univoucher/univoucher-api/internal/logger"
	"github.com/univoucher/univoucher-api/internal/middleware"
	"github.com/univoucher/univoucher-api/internal/services"
	"github.com/univoucher/univoucher-api/internal/types/business"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CommonServices holds common dependencies used across handlers
type CommonServices struct {
	inventory interfaces.InventoryStore
	settings  interfaces.SettingsStore
	gateway   interfaces.ChainGateway
	wallet    interfaces.OperatorWallet
}

// NewCommonServices creates a new instance of CommonServices
func NewCommonServices(inventory interfaces.InventoryStore, settings interfaces.SettingsStore, gateway interfaces.ChainGateway, wallet interfaces.OperatorWallet) *CommonServices {
	return &CommonServices{
		inventory: inventory,
		settings:  settings,
		gateway:   gateway,
		wallet:    wallet,
	}
}

// Envelope is the response shape of every AJAX action. The HTTP status is
// always 200; Success carries the outcome.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

// ErrorData is the payload of a failed action.
type ErrorData struct {
	Message string `json:"message"`
	Step    string `json:"step,omitempty"`
	TxHash  string `json:"tx_hash,omitempty"`
	// Cards is set for a partially successful mint: funds moved and these
	// cards exist even though the action as a whole failed.
	Cards       []business.CardSecretPair `json:"cards,omitempty"`
	Unresolved  []business.CardSecretPair `json:"unresolved,omitempty"`
	Pending     bool                      `json:"pending,omitempty"`
	NotAdmitted bool                      `json:"not_admitted,omitempty"`
	Facets      []business.Facet          `json:"failed_facets,omitempty"`
	Session     *business.MintSessionView `json:"session,omitempty"`
}

// sendSuccess wraps data in a successful envelope
func sendSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data})
}

// sendError logs err with message and sends a failed envelope. The message is
// what the operator sees; err is only logged.
func sendError(c *gin.Context, message string, err error) {
	fields := []zap.Field{
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.String("correlation_id", middleware.GetCorrelationID(c)),
	}
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	logger.Log.Warn(message, fields...)
	c.JSON(http.StatusOK, Envelope{Success: false, Data: ErrorData{Message: message}})
}

// sendServiceError turns a service error into a failed envelope carrying the
// workflow step and transaction hash when the error has them.
func sendServiceError(c *gin.Context, err error) {
	data := describeError(err)
	logFailure(c, data, err)
	c.JSON(http.StatusOK, Envelope{Success: false, Data: data})
}

func logFailure(c *gin.Context, data ErrorData, err error) {
	logger.Log.Warn("Action failed",
		zap.String("path", c.Request.URL.Path),
		zap.String("step", data.Step),
		zap.String("tx_hash", data.TxHash),
		zap.String("correlation_id", middleware.GetCorrelationID(c)),
		zap.Error(err))
}

func describeError(err error) ErrorData {
	data := ErrorData{Message: err.Error()}

	var stepErr *services.MintStepError
	if errors.As(err, &stepErr) {
		data.Step = stepErr.Step
	}

	var partial *services.PartialMintSuccess
	if errors.As(err, &partial) {
		data.TxHash = partial.TxHash
		data.Cards = partial.Pairs
		data.Unresolved = partial.Unresolved
		data.Pending = partial.Pending
		data.NotAdmitted = partial.NotAdmitted
	}

	var pending *blockchain.ReceiptPendingError
	if data.TxHash == "" && errors.As(err, &pending) {
		data.TxHash = pending.TxHash.Hex()
	}

	var failure *services.ValidationFailure
	if errors.As(err, &failure) {
		data.Facets = failure.Failed
	}

	switch {
	case errors.Is(err, db.ErrProductNotFound):
		data.Message = constants.ProductNotFound
	case errors.Is(err, services.ErrWalletNotConfigured):
		data.Message = constants.WalletNotConfigured
	case errors.Is(err, services.ErrSessionNotFound):
		data.Message = constants.MintSessionNotFound
	}
	return data
}

// loadProduct reads the product_id field and loads its configuration. It
// sends the failure envelope itself and reports false when it did.
func (s *CommonServices) loadProduct(c *gin.Context, productID int64) (business.ProductConfig, bool) {
	if productID <= 0 {
		sendError(c, constants.ProductNotFound, nil)
		return business.ProductConfig{}, false
	}
	product, err := s.inventory.GetProductConfig(c.Request.Context(), productID)
	if err != nil {
		sendServiceError(c, err)
		return business.ProductConfig{}, false
	}
	return product, true
}

// int64Param reads a numeric form or JSON value that may arrive as a string.
func int64Param(raw string) int64 {
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}
	return v
}
