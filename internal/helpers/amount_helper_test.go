package helpers_test

import (
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/univoucher/univoucher-api/internal/helpers"
)

func TestToSmallestUnit(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		decimals uint8
		want     string
		wantErr  bool
	}{
		{name: "whole ether", amount: "10", decimals: 18, want: "10000000000000000000"},
		{name: "fractional ether", amount: "0.01", decimals: 18, want: "10000000000000000"},
		{name: "usdc six decimals", amount: "25.5", decimals: 6, want: "25500000"},
		{name: "zero decimals", amount: "7", decimals: 0, want: "7"},
		{name: "too many decimal places", amount: "0.0000001", decimals: 6, wantErr: true},
		{name: "negative", amount: "-1", decimals: 18, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := helpers.ToSmallestUnit(decimal.RequireFromString(tt.amount), tt.decimals)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestFromSmallestUnit(t *testing.T) {
	units, _ := new(big.Int).SetString("10150000000000000", 10)
	assert.True(t, decimal.RequireFromString("0.01015").Equal(helpers.FromSmallestUnit(units, 18)))
	assert.True(t, helpers.FromSmallestUnit(nil, 18).IsZero())
	assert.Equal(t, "0.01015 ETH", helpers.FormatUnits(units, 18, "ETH"))
}

func TestParseAmount(t *testing.T) {
	amount, err := helpers.ParseAmount(" 10 ")
	require.NoError(t, err)
	assert.True(t, amount.Equal(decimal.NewFromInt(10)))

	_, err = helpers.ParseAmount("")
	assert.Error(t, err)
	_, err = helpers.ParseAmount("0")
	assert.Error(t, err)
	_, err = helpers.ParseAmount("ten")
	assert.Error(t, err)
}

func TestSameAddress(t *testing.T) {
	assert.True(t, helpers.SameAddress("", "0x0000000000000000000000000000000000000000"))
	assert.True(t, helpers.SameAddress(
		"0x2791bca1f2de4661ed88a30c99a7a9449aa84174",
		"0x2791Bca1f2de4661ED88A30C99A7a9449Aa84174",
	))
	assert.False(t, helpers.SameAddress("", "0x2791Bca1f2de4661ED88A30C99A7a9449Aa84174"))
	assert.False(t, helpers.SameAddress("not-an-address", ""))
}
