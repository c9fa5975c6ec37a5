package univoucher

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"
	"strings"
	"time"
)

// FlexString accepts a JSON string or number. The API returns card ids and
// token amounts either way depending on the endpoint.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", string(data))
	}
	*f = FlexString(n.String())
	return nil
}

func (f FlexString) String() string { return string(f) }

// Card is a card record as returned by /v1/cards/single.
type Card struct {
	CardID              FlexString `json:"cardId"`
	SlotID              string     `json:"slotId"`
	ChainID             int64      `json:"chainId"`
	TokenAddress        string     `json:"tokenAddress"`
	TokenSymbol         string     `json:"tokenSymbol"`
	TokenDecimals       uint8      `json:"tokenDecimals"`
	TokenAmount         FlexString `json:"tokenAmount"`
	Active              bool       `json:"active"`
	Status              string     `json:"status"`
	Creator             string     `json:"creator"`
	EncryptedPrivateKey string     `json:"encryptedPrivateKey"`
	CreatedAt           string     `json:"createdAt"`
	RedeemedAt          string     `json:"redeemedAt,omitempty"`
	CancelledAt         string     `json:"cancelledAt,omitempty"`
}

// Card statuses reported by the API
const (
	StatusActive    = "active"
	StatusRedeemed  = "redeemed"
	StatusCancelled = "cancelled"
)

// IsActive prefers the status string and falls back to the active flag.
func (c *Card) IsActive() bool {
	if c.IsCancelled() {
		return false
	}
	if c.Status != "" {
		return strings.EqualFold(c.Status, StatusActive)
	}
	return c.Active
}

func (c *Card) IsRedeemed() bool {
	return strings.EqualFold(c.Status, StatusRedeemed) || c.RedeemedAt != ""
}

func (c *Card) IsCancelled() bool {
	return strings.EqualFold(c.Status, StatusCancelled) || c.CancelledAt != ""
}

// AmountUnits parses the token amount, which the API reports in smallest units.
func (c *Card) AmountUnits() (*big.Int, bool) {
	v, ok := new(big.Int).SetString(strings.TrimSpace(c.TokenAmount.String()), 10)
	if !ok || v.Sign() < 0 {
		return nil, false
	}
	return v, true
}

// CreatedTime parses createdAt as RFC 3339 or unix seconds. The result is UTC.
func (c *Card) CreatedTime() (*time.Time, bool) {
	raw := strings.TrimSpace(c.CreatedAt)
	if raw == "" {
		return nil, false
	}
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		utc := t.UTC()
		return &utc, true
	}
	if secs, ok := new(big.Int).SetString(raw, 10); ok && secs.IsInt64() {
		utc := time.Unix(secs.Int64(), 0).UTC()
		return &utc, true
	}
	return nil, false
}

// cardResponse accepts both a bare card record and one wrapped in "card".
type cardResponse struct {
	Card
	Wrapped *Card  `json:"card,omitempty"`
	Error   string `json:"error,omitempty"`
}

func (r *cardResponse) record() *Card {
	if r.Wrapped != nil {
		return r.Wrapped
	}
	if r.Card.CardID != "" || r.Card.SlotID != "" {
		card := r.Card
		return &card
	}
	return nil
}

type feeResponse struct {
	ChainID       int64       `json:"chainId"`
	FeePercentage json.Number `json:"feePercentage"`
}
