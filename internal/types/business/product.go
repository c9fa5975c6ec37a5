package business

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"github.com/univoucher/univoucher-api/internal/helpers"
)

// TokenKind distinguishes the chain's native currency from an ERC-20 token.
type TokenKind int

const (
	TokenNative TokenKind = iota
	TokenERC20
)

func (k TokenKind) String() string {
	switch k {
	case TokenNative:
		return "native"
	case TokenERC20:
		return "erc20"
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// BatchKind selects between the single and bulk contract entry points.
type BatchKind int

const (
	BatchSingle BatchKind = iota
	BatchBulk
)

func (k BatchKind) String() string {
	switch k {
	case BatchSingle:
		return "single"
	case BatchBulk:
		return "bulk"
	}
	return fmt.Sprintf("BatchKind(%d)", int(k))
}

// BatchKindFor maps a quantity to its batch kind. A quantity of one is always
// single, never a one-element bulk call.
func BatchKindFor(quantity int) (BatchKind, error) {
	switch {
	case quantity == 1:
		return BatchSingle, nil
	case quantity > 1:
		return BatchBulk, nil
	}
	return 0, fmt.Errorf("quantity must be at least 1, got %d", quantity)
}

// ProductConfig is the token configuration a product's cards must match.
type ProductConfig struct {
	ProductID     int64           `json:"product_id"`
	ChainID       int64           `json:"chain_id"`
	TokenAddress  string          `json:"token_address"`
	TokenSymbol   string          `json:"token_symbol"`
	TokenDecimals uint8           `json:"token_decimals"`
	Amount        decimal.Decimal `json:"amount"`
}

// TokenKind reports native for an empty or zero token address.
func (p ProductConfig) TokenKind() TokenKind {
	if p.TokenAddress == "" || common.HexToAddress(p.TokenAddress) == (common.Address{}) {
		return TokenNative
	}
	return TokenERC20
}

// Token returns the ERC-20 contract address, or the zero address for native.
func (p ProductConfig) Token() common.Address {
	if p.TokenKind() == TokenNative {
		return common.Address{}
	}
	return common.HexToAddress(p.TokenAddress)
}

// AmountUnits is the card amount in the token's smallest unit.
func (p ProductConfig) AmountUnits() (*big.Int, error) {
	return helpers.ToSmallestUnit(p.Amount, p.TokenDecimals)
}

// Validate checks the configuration is usable for validation and minting.
func (p ProductConfig) Validate() error {
	if p.ChainID <= 0 {
		return fmt.Errorf("product %d has no chain configured", p.ProductID)
	}
	if p.TokenKind() == TokenERC20 && !helpers.IsAddressValid(p.TokenAddress) {
		return fmt.Errorf("product %d has an invalid token address", p.ProductID)
	}
	if !p.Amount.IsPositive() {
		return fmt.Errorf("product %d has no card amount configured", p.ProductID)
	}
	if _, err := p.AmountUnits(); err != nil {
		return fmt.Errorf("product %d amount: %w", p.ProductID, err)
	}
	return nil
}
