package business_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/univoucher/univoucher-api/internal/types/business"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchKindFor(t *testing.T) {
	kind, err := business.BatchKindFor(1)
	require.NoError(t, err)
	assert.Equal(t, business.BatchSingle, kind)

	kind, err = business.BatchKindFor(2)
	require.NoError(t, err)
	assert.Equal(t, business.BatchBulk, kind)

	_, err = business.BatchKindFor(0)
	assert.Error(t, err)
}

func TestProductConfig_TokenKind(t *testing.T) {
	tests := []struct {
		name    string
		address string
		want    business.TokenKind
	}{
		{"empty", "", business.TokenNative},
		{"zero address", "0x0000000000000000000000000000000000000000", business.TokenNative},
		{"usdc", "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48", business.TokenERC20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := business.ProductConfig{TokenAddress: tt.address}
			assert.Equal(t, tt.want, p.TokenKind())
		})
	}
}

func TestProductConfig_Validate(t *testing.T) {
	valid := business.ProductConfig{
		ProductID:     7,
		ChainID:       137,
		TokenSymbol:   "POL",
		TokenDecimals: 18,
		Amount:        decimal.NewFromInt(10),
	}
	require.NoError(t, valid.Validate())

	units, err := valid.AmountUnits()
	require.NoError(t, err)
	assert.Equal(t, "10000000000000000000", units.String())

	noChain := valid
	noChain.ChainID = 0
	assert.Error(t, noChain.Validate())

	tooPrecise := valid
	tooPrecise.TokenDecimals = 2
	tooPrecise.Amount = decimal.RequireFromString("0.001")
	assert.Error(t, tooPrecise.Validate())
}

func TestFacets(t *testing.T) {
	all := business.Facets{New: true, Active: true, Network: true, Amount: true, Token: true, Secret: true}
	assert.True(t, all.AllValid())
	assert.Empty(t, all.Failed())

	partial := all
	partial.Amount = false
	partial.Secret = false
	assert.False(t, partial.AllValid())
	assert.Equal(t, []business.Facet{business.FacetAmount, business.FacetSecret}, partial.Failed())
}
