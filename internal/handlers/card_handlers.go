package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/univoucher/univoucher-api/internal/constants"
	"github.com/univoucher/univoucher-api/internal/interfaces"
	"github.com/univoucher/univoucher-api/internal/services"
	"github.com/univoucher/univoucher-api/internal/types/business"

	"github.com/gin-gonic/gin"
)

const (
	// MaxCardsPerRequest bounds add-cards and CSV imports
	MaxCardsPerRequest = 500
	// MaxCSVBytes bounds the uploaded CSV file
	MaxCSVBytes = 1 << 20
)

// CardHandler validates cards and adds them to a product's inventory
type CardHandler struct {
	common     *CommonServices
	validation interfaces.ValidationEngine
	admission  interfaces.AdmissionPipeline
}

// NewCardHandler creates a new CardHandler instance
func NewCardHandler(common *CommonServices, validation interfaces.ValidationEngine, admission interfaces.AdmissionPipeline) *CardHandler {
	return &CardHandler{
		common:     common,
		validation: validation,
		admission:  admission,
	}
}

// ValidateCardRequest is one card to validate against a product
type ValidateCardRequest struct {
	ProductID  int64  `json:"product_id"`
	CardID     string `json:"card_id"`
	CardSecret string `json:"card_secret"`
	// ExcludeInventoryID is the inventory row being edited, if any
	ExcludeInventoryID int64 `json:"exclude_inventory_id"`
}

// AddCardsRequest is a batch of cards to admit to a product
type AddCardsRequest struct {
	ProductID int64                `json:"product_id"`
	Cards     []business.CardInput `json:"cards"`
}

// AddCardsResponse is the admission summary together with the validation
// behind every row
type AddCardsResponse struct {
	*business.AdmissionSummary
	Validations []*business.ValidationResult `json:"validations"`
}

// ValidateCard godoc
// @Summary      Validate a card
// @Description  Checks a card id and secret against a product. Format errors fail before any network call.
// @Tags         cards
// @Accept       json
// @Produce      json
// @Param        X-UV-Nonce  header  string               true  "AJAX nonce"
// @Param        request     body    ValidateCardRequest  true  "Card to validate"
// @Success      200  {object}  Envelope
// @Router       /ajax/validate-card [post]
func (h *CardHandler) ValidateCard(c *gin.Context) {
	var req ValidateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, constants.InvalidRequestBody, err)
		return
	}
	if strings.TrimSpace(req.CardID) == "" || strings.TrimSpace(req.CardSecret) == "" {
		sendError(c, constants.CardIDAndSecretNeeded, nil)
		return
	}

	product, ok := h.common.loadProduct(c, req.ProductID)
	if !ok {
		return
	}

	input := business.CardInput{CardID: req.CardID, CardSecret: req.CardSecret}
	result, err := h.validation.Validate(c.Request.Context(), product, input, req.ExcludeInventoryID)
	if err != nil {
		sendServiceError(c, err)
		return
	}
	if result.Format != nil {
		formatErr := &services.FormatError{Field: result.Format.Field, Reason: result.Format.Reason}
		c.JSON(http.StatusOK, Envelope{Success: false, Data: ErrorData{Message: formatErr.Error()}})
		return
	}
	sendSuccess(c, result)
}

// AddCards godoc
// @Summary      Add cards to inventory
// @Description  Validates every card server-side and admits the ones that pass all checks
// @Tags         cards
// @Accept       json
// @Produce      json
// @Param        X-UV-Nonce  header  string           true  "AJAX nonce"
// @Param        request     body    AddCardsRequest  true  "Cards to add"
// @Success      200  {object}  Envelope
// @Router       /ajax/add-cards [post]
func (h *CardHandler) AddCards(c *gin.Context) {
	var req AddCardsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, constants.InvalidRequestBody, err)
		return
	}
	h.admit(c, req.ProductID, req.Cards, business.SourceManual)
}

// ImportCSV godoc
// @Summary      Import cards from CSV
// @Description  Reads card_id,card_secret rows (header optional), validates them and admits the ones that pass
// @Tags         cards
// @Accept       multipart/form-data
// @Produce      json
// @Param        nonce       formData  string  true  "AJAX nonce"
// @Param        product_id  formData  int     true  "Product ID"
// @Param        file        formData  file    true  "CSV file"
// @Success      200  {object}  Envelope
// @Router       /ajax/import-csv [post]
func (h *CardHandler) ImportCSV(c *gin.Context) {
	productID := int64Param(c.PostForm("product_id"))

	header, err := c.FormFile("file")
	if err != nil {
		sendError(c, "CSV file is required", err)
		return
	}
	if header.Size > MaxCSVBytes {
		sendError(c, fmt.Sprintf("CSV file must be smaller than %d KB", MaxCSVBytes/1024), nil)
		return
	}
	file, err := header.Open()
	if err != nil {
		sendError(c, "Failed to read CSV file", err)
		return
	}
	defer file.Close()

	inputs, err := services.ParseCSV(file)
	if err != nil {
		var formatErr *services.FormatError
		if errors.As(err, &formatErr) {
			sendError(c, formatErr.Error(), nil)
			return
		}
		sendError(c, "Failed to parse CSV file", err)
		return
	}
	h.admit(c, productID, inputs, business.SourceCSV)
}

func (h *CardHandler) admit(c *gin.Context, productID int64, inputs []business.CardInput, source business.CardSource) {
	if len(inputs) == 0 {
		sendError(c, "no cards provided", nil)
		return
	}
	if len(inputs) > MaxCardsPerRequest {
		sendError(c, fmt.Sprintf("at most %d cards can be added at once", MaxCardsPerRequest), nil)
		return
	}
	if productID <= 0 {
		sendError(c, constants.ProductNotFound, nil)
		return
	}

	summary, results, err := h.admission.ValidateAndAdmit(c.Request.Context(), productID, inputs, source)
	if err != nil {
		sendServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, Envelope{
		Success: summary.SuccessCount > 0,
		Data:    AddCardsResponse{AdmissionSummary: summary, Validations: results},
	})
}
