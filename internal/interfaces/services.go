package interfaces

import (
	"context"
	"crypto/ecdsa"
	"math/big"

	"github.com/univoucher/univoucher-api/internal/client/blockchain"
	"github.com/univoucher/univoucher-api/internal/types/business"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// FeeOracle resolves the UniVoucher fee per chain
type FeeOracle interface {
	GetFeePercentage(ctx context.Context, chainID int64) (decimal.Decimal, error)
	CalculateFee(ctx context.Context, cardAmount decimal.Decimal, chainID int64) (decimal.Decimal, error)
	CalculateFeeUnits(ctx context.Context, amountUnits *big.Int, chainID int64) (*big.Int, error)
}

// Planner decides whether a mint is affordable and what it will cost
type Planner interface {
	ComputeCostSummary(ctx context.Context, product business.ProductConfig, quantity int, owner common.Address) (*business.CostSummary, error)
	CheckAllowance(ctx context.Context, chainID int64, token, owner common.Address, required *big.Int, decimals uint8, symbol string) (*business.AllowanceCheck, error)
	CheckBalance(ctx context.Context, chainID int64, token, owner common.Address, required *big.Int, decimals uint8, symbol string) (*business.BalanceCheck, error)
	EstimateMintGas(ctx context.Context, product business.ProductConfig, quantity int, owner common.Address) (*business.GasEstimate, error)
	EstimateExecutionGas(ctx context.Context, chainID int64, call blockchain.Call) (uint64, *big.Int, error)
}

// OperatorWallet holds the operator's signing key encrypted at rest
type OperatorWallet interface {
	Address(ctx context.Context) (common.Address, error)
	WithSigner(ctx context.Context, fn func(key *ecdsa.PrivateKey) error) error
	ImportKey(ctx context.Context, privateKeyHex string) (common.Address, error)
}

// ApprovalActions sends ERC-20 approvals for the UniVoucher contract
type ApprovalActions interface {
	ApproveForQuantity(ctx context.Context, product business.ProductConfig, quantity int) (*business.ApprovalResult, error)
	ApproveUnlimited(ctx context.Context, product business.ProductConfig) (*business.ApprovalResult, error)
	Revoke(ctx context.Context, product business.ProductConfig) (*business.ApprovalResult, error)
}

// ValidationEngine validates cards against a product
type ValidationEngine interface {
	Validate(ctx context.Context, product business.ProductConfig, input business.CardInput, excludeInventoryID int64) (*business.ValidationResult, error)
	ValidateBatch(ctx context.Context, product business.ProductConfig, inputs []business.CardInput) ([]*business.ValidationResult, error)
}

// AdmissionPipeline writes validated cards to inventory
type AdmissionPipeline interface {
	AdmitRows(ctx context.Context, productID int64, rows []business.CandidateRow) (*business.AdmissionSummary, error)
	ValidateAndAdmit(ctx context.Context, productID int64, inputs []business.CardInput, source business.CardSource) (*business.AdmissionSummary, []*business.ValidationResult, error)
}

// MintingWorkflow drives internal-wallet mint sessions
type MintingWorkflow interface {
	StartSession(ctx context.Context, productID int64) (*business.MintSessionView, error)
	GetSession(ctx context.Context, sessionID string) (*business.MintSessionView, error)
	SetQuantity(ctx context.Context, sessionID string, quantity int) (*business.MintSessionView, error)
	Review(ctx context.Context, sessionID string) (*business.MintSessionView, error)
	Back(ctx context.Context, sessionID string) (*business.MintSessionView, error)
	Submit(ctx context.Context, sessionID string) (*business.MintSessionView, error)
	CreateMore(ctx context.Context, sessionID string) (*business.MintSessionView, error)
}
