package univoucher_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpClient "github.com/univoucher/univoucher-api/internal/client/http"
	"github.com/univoucher/univoucher-api/internal/client/univoucher"
	"github.com/univoucher/univoucher-api/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.InitLogger("test")
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *univoucher.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return univoucher.NewClient(server.URL, httpClient.WithRetryConfig(&httpClient.RetryConfig{}))
}

func TestGetCard(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/cards/single", r.URL.Path)
		assert.Equal(t, "102123456", r.URL.Query().Get("id"))
		assert.Equal(t, "univoucher-api/1.0", r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte(`{
			"cardId": 102123456,
			"slotId": "0x2222222222222222222222222222222222222222",
			"chainId": 137,
			"tokenAddress": "0x0000000000000000000000000000000000000000",
			"tokenSymbol": "POL",
			"tokenDecimals": 18,
			"tokenAmount": "10000000000000000000",
			"active": true,
			"status": "active",
			"encryptedPrivateKey": "{\"salt\":\"00\",\"iv\":\"00\",\"ciphertext\":\"AA==\"}",
			"createdAt": "2025-03-01T12:30:00.000Z"
		}`))
	})

	card, err := client.GetCard(context.Background(), "102123456")
	require.NoError(t, err)

	assert.Equal(t, "102123456", card.CardID.String())
	assert.Equal(t, int64(137), card.ChainID)
	assert.False(t, card.IsRedeemed())
	assert.False(t, card.IsCancelled())

	units, ok := card.AmountUnits()
	require.True(t, ok)
	assert.Equal(t, "10000000000000000000", units.String())

	created, ok := card.CreatedTime()
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 3, 1, 12, 30, 0, 0, time.UTC), *created)
}

func TestGetCardBySlot_WrappedRecord(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "0xabc", r.URL.Query().Get("slotId"))
		_, _ = w.Write([]byte(`{"card":{"cardId":"102000001","slotId":"0xabc","status":"redeemed"}}`))
	})

	card, err := client.GetCardBySlot(context.Background(), "0xabc")
	require.NoError(t, err)
	assert.Equal(t, "102000001", card.CardID.String())
	assert.True(t, card.IsRedeemed())
}

func TestGetCard_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.GetCard(context.Background(), "999999")
	assert.ErrorIs(t, err, univoucher.ErrCardNotFound)
}

func TestGetCard_ServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	})

	_, err := client.GetCard(context.Background(), "102123456")

	var apiErr *univoucher.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
}

func TestGetCurrentFee(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		status  int
		want    string
		wantErr bool
	}{
		{name: "percentage to fraction", body: `{"chainId":1,"feePercentage":1.5}`, status: 200, want: "0.015"},
		{name: "string percentage", body: `{"feePercentage":"0.25"}`, status: 200, want: "0.0025"},
		{name: "missing field", body: `{"chainId":1}`, status: 200, wantErr: true},
		{name: "negative", body: `{"feePercentage":-1}`, status: 200, wantErr: true},
		{name: "not found is not a card error", body: ``, status: 404, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "1", r.URL.Query().Get("chainId"))
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			fee, err := client.GetCurrentFee(context.Background(), 1)
			if tt.wantErr {
				require.Error(t, err)
				assert.NotErrorIs(t, err, univoucher.ErrCardNotFound)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, fee.String())
		})
	}
}
