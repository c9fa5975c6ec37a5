package helpers

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// ToSmallestUnit converts a human-readable token amount into its integer
// representation at the given number of decimals. Amounts with more
// fractional digits than the token supports are rejected rather than rounded.
func ToSmallestUnit(amount decimal.Decimal, decimals uint8) (*big.Int, error) {
	if amount.IsNegative() {
		return nil, fmt.Errorf("amount %s is negative", amount.String())
	}
	shifted := amount.Shift(int32(decimals))
	if !shifted.IsInteger() {
		return nil, fmt.Errorf("amount %s has more than %d decimal places", amount.String(), decimals)
	}
	return shifted.BigInt(), nil
}

// FromSmallestUnit converts an integer token amount back into a decimal.
func FromSmallestUnit(units *big.Int, decimals uint8) decimal.Decimal {
	if units == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(units, -int32(decimals))
}

// FormatUnits renders smallest units as a trimmed decimal string with the symbol appended.
func FormatUnits(units *big.Int, decimals uint8, symbol string) string {
	value := FromSmallestUnit(units, decimals).String()
	if symbol == "" {
		return value
	}
	return value + " " + symbol
}

// ParseAmount parses a decimal amount string such as "10" or "0.01".
func ParseAmount(raw string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return decimal.Zero, fmt.Errorf("amount is required")
	}
	amount, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", raw, err)
	}
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("amount must be greater than zero")
	}
	return amount, nil
}

// IsAddressValid checks if the provided string is a valid EVM address
func IsAddressValid(address string) bool {
	return common.IsHexAddress(address)
}

// SameAddress compares two hex addresses case-insensitively. Empty strings and
// the zero address are both treated as the native-currency marker.
func SameAddress(a, b string) bool {
	addrA, okA := normalizeTokenAddress(a)
	addrB, okB := normalizeTokenAddress(b)
	if !okA || !okB {
		return false
	}
	return addrA == addrB
}

func normalizeTokenAddress(address string) (common.Address, bool) {
	trimmed := strings.TrimSpace(address)
	if trimmed == "" {
		return common.Address{}, true
	}
	if !common.IsHexAddress(trimmed) {
		return common.Address{}, false
	}
	return common.HexToAddress(trimmed), true
}
