package business

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// AllowanceStatus is the outcome of an ERC-20 allowance check.
type AllowanceStatus string

const (
	AllowanceUnlimited    AllowanceStatus = "unlimited"
	AllowanceSufficient   AllowanceStatus = "sufficient"
	AllowanceInsufficient AllowanceStatus = "insufficient"
)

// AllowanceCheck reports the operator's allowance towards the UniVoucher contract.
type AllowanceCheck struct {
	Status          AllowanceStatus `json:"status"`
	Current         *big.Int        `json:"current"`
	Required        *big.Int        `json:"required"`
	CurrentDisplay  string          `json:"current_display"`
	RequiredDisplay string          `json:"required_display"`
	// ApprovalAmount is set when Status is insufficient.
	ApprovalAmount *big.Int `json:"approval_amount,omitempty"`
	CanRevoke      bool     `json:"can_revoke"`
}

func (a *AllowanceCheck) Sufficient() bool {
	return a != nil && a.Status != AllowanceInsufficient
}

// BalanceCheck compares the operator's balance with what a mint needs.
type BalanceCheck struct {
	Sufficient       bool     `json:"sufficient"`
	Available        *big.Int `json:"available"`
	Required         *big.Int `json:"required"`
	AvailableDisplay string   `json:"available_display"`
	RequiredDisplay  string   `json:"required_display"`
}

// CostSummary is what the operator sees while configuring a mint.
type CostSummary struct {
	ChainID          int64           `json:"chain_id"`
	Quantity         int             `json:"quantity"`
	TokenKind        string          `json:"token_kind"`
	TokenSymbol      string          `json:"token_symbol"`
	CardAmount       decimal.Decimal `json:"card_amount"`
	FeePercentage    decimal.Decimal `json:"fee_percentage"`
	Fee              decimal.Decimal `json:"fee"`
	PerCardTotal     decimal.Decimal `json:"per_card_total"`
	TotalNeeded      decimal.Decimal `json:"total_needed"`
	PerCardUnits     *big.Int        `json:"per_card_units"`
	TotalNeededUnits *big.Int        `json:"total_needed_units"`
	Allowance        *AllowanceCheck `json:"allowance,omitempty"`
	Balance          *BalanceCheck   `json:"balance"`
	CanProceed       bool            `json:"can_proceed"`
	BlockingReason   string          `json:"blocking_reason,omitempty"`
}

// GasEstimate is a buffered gas figure for one deposit transaction.
type GasEstimate struct {
	Method        string          `json:"method"`
	RawGasLimit   uint64          `json:"raw_gas_limit"`
	GasLimit      uint64          `json:"gas_limit"`
	BufferPercent int             `json:"buffer_percent"`
	GasPrice      *big.Int        `json:"gas_price"`
	GasCostNative decimal.Decimal `json:"gas_cost_native"`
	NativeSymbol  string          `json:"native_symbol"`
}

// ApprovalResult is the outcome of an approve transaction.
type ApprovalResult struct {
	TxHash      string   `json:"tx_hash"`
	ExplorerURL string   `json:"explorer_url"`
	Amount      *big.Int `json:"amount"`
	Unlimited   bool     `json:"unlimited"`
	Revoked     bool     `json:"revoked"`
}
