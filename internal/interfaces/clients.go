package interfaces

import (
	"context"
	"crypto/ecdsa"
	"math/big"

	"github.com/univoucher/univoucher-api/internal/client/aws"
	"github.com/univoucher/univoucher-api/internal/client/blockchain"
	"github.com/univoucher/univoucher-api/internal/client/univoucher"
	"github.com/univoucher/univoucher-api/internal/db"
	"github.com/univoucher/univoucher-api/internal/types/business"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/shopspring/decimal"
)

// RedemptionClient is the UniVoucher redemption API
type RedemptionClient interface {
	GetCard(ctx context.Context, cardID string) (*univoucher.Card, error)
	GetCardBySlot(ctx context.Context, slotID string) (*univoucher.Card, error)
	GetCurrentFee(ctx context.Context, chainID int64) (decimal.Decimal, error)
}

// ChainGateway issues JSON-RPC calls against a supported chain
type ChainGateway interface {
	GetNativeBalance(ctx context.Context, chainID int64, address common.Address) (*big.Int, error)
	GetTokenBalance(ctx context.Context, chainID int64, address, token common.Address) (*big.Int, error)
	GetAllowance(ctx context.Context, chainID int64, token, owner, spender common.Address) (*big.Int, error)
	GetGasPrice(ctx context.Context, chainID int64) (*big.Int, error)
	EstimateGas(ctx context.Context, chainID int64, call blockchain.Call) (uint64, error)
	Call(ctx context.Context, chainID int64, call blockchain.Call) ([]byte, error)
	SendTransaction(ctx context.Context, chainID int64, key *ecdsa.PrivateKey, call blockchain.Call, gasLimit uint64, gasPrice *big.Int) (common.Hash, error)
	WaitForReceipt(ctx context.Context, chainID int64, hash common.Hash) (*types.Receipt, error)
	TestConnection(ctx context.Context, chainID int64, apiKey string) error
}

// SettingsStore is the key-value settings store
type SettingsStore interface {
	GetSettingValue(ctx context.Context, key string) (string, error)
	SetSettingValue(ctx context.Context, key, value string) error
}

// InventoryStore persists admitted cards and product configuration
type InventoryStore interface {
	GetProductConfig(ctx context.Context, productID int64) (business.ProductConfig, error)
	CardExistsExcluding(ctx context.Context, cardID string, excludeID int64) (bool, error)
	AdmitCards(ctx context.Context, meta business.ProductMeta, cards []business.InventoryCard) (db.AdmitResult, error)
	SyncStock(ctx context.Context, productID int64) (int64, error)
}

// RecoveryPublisher records partial mints for manual follow-up
type RecoveryPublisher interface {
	PublishPartialMint(ctx context.Context, record aws.PartialMintRecord) error
}
