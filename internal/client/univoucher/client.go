package univoucher

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	httpClient "github.com/univoucher/univoucher-api/internal/client/http"
	"github.com/univoucher/univoucher-api/internal/constants"
	"github.com/univoucher/univoucher-api/internal/logger"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	DefaultBaseURL = "https://api.univoucher.com"
	defaultTimeout = 10 * time.Second
	userAgent      = constants.ServiceName + "/1.0"
)

// ErrCardNotFound is returned when the API has no record of the card.
var ErrCardNotFound = errors.New("card not found")

// APIError is a non-2xx answer from the redemption API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("UniVoucher API error: status %d, message: %s", e.StatusCode, e.Message)
}

// Client talks to the UniVoucher redemption API.
type Client struct {
	httpClient *httpClient.HTTPClient
}

// NewClient creates a client. An empty baseURL selects the public API.
func NewClient(baseURL string, options ...httpClient.ClientOption) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	opts := append([]httpClient.ClientOption{
		httpClient.WithBaseURL(baseURL),
		httpClient.WithTimeout(defaultTimeout),
		httpClient.WithDefaultHeader("User-Agent", userAgent),
	}, options...)

	return &Client{
		httpClient: httpClient.NewHTTPClient(opts...),
	}
}

// GetCard fetches a card record by card id.
func (c *Client) GetCard(ctx context.Context, cardID string) (*Card, error) {
	return c.getSingle(ctx, "id", cardID)
}

// GetCardBySlot fetches a card record by its slot address. Used to recover the
// card id when a receipt carries no CardCreated event.
func (c *Client) GetCardBySlot(ctx context.Context, slotID string) (*Card, error) {
	return c.getSingle(ctx, "slotId", slotID)
}

func (c *Client) getSingle(ctx context.Context, param, value string) (*Card, error) {
	var body cardResponse
	err := c.httpClient.GetJSON(ctx, "/v1/cards/single", &body, httpClient.WithQueryParam(param, value))
	if err != nil {
		return nil, c.translate(err, ErrCardNotFound, param, value)
	}
	card := body.record()
	if card == nil {
		if body.Error != "" {
			return nil, &APIError{StatusCode: http.StatusOK, Message: body.Error}
		}
		return nil, ErrCardNotFound
	}
	return card, nil
}

// GetCurrentFee returns the fee percentage for chainID as a fraction,
// e.g. 0.015 for a reported 1.5.
func (c *Client) GetCurrentFee(ctx context.Context, chainID int64) (decimal.Decimal, error) {
	var body feeResponse
	chain := strconv.FormatInt(chainID, 10)
	if err := c.httpClient.GetJSON(ctx, "/v1/fees/current", &body, httpClient.WithQueryParam("chainId", chain)); err != nil {
		return decimal.Zero, c.translate(err, nil, "chainId", chain)
	}
	if body.FeePercentage == "" {
		return decimal.Zero, &APIError{StatusCode: http.StatusOK, Message: "response has no feePercentage"}
	}

	pct, err := decimal.NewFromString(body.FeePercentage.String())
	if err != nil {
		return decimal.Zero, &APIError{StatusCode: http.StatusOK, Message: fmt.Sprintf("invalid feePercentage %q", body.FeePercentage)}
	}
	if pct.IsNegative() {
		return decimal.Zero, &APIError{StatusCode: http.StatusOK, Message: fmt.Sprintf("negative feePercentage %s", pct)}
	}
	return pct.Div(decimal.NewFromInt(100)), nil
}

func (c *Client) translate(err, notFound error, param, value string) error {
	var httpErr *httpClient.HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.StatusCode == http.StatusNotFound && notFound != nil {
			return notFound
		}
		logger.Warn("UniVoucher API returned an error status",
			zap.String(param, value),
			zap.Int("status", httpErr.StatusCode))
		return &APIError{StatusCode: httpErr.StatusCode, Message: httpErr.Body}
	}
	return fmt.Errorf("UniVoucher API request failed: %w", err)
}
