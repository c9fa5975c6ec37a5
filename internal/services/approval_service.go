package services

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"

	"github.com/univoucher/univoucher-api/internal/client/blockchain"
	"github.com/univoucher/univoucher-api/internal/contracts"
	"github.com/univoucher/univoucher-api/internal/interfaces"
	"github.com/univoucher/univoucher-api/internal/logger"
	"github.com/univoucher/univoucher-api/internal/types/business"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"
)

// ApprovalService sends ERC-20 approve transactions from the operator wallet
// with the UniVoucher contract as spender.
type ApprovalService struct {
	gateway  interfaces.ChainGateway
	wallet   interfaces.OperatorWallet
	planner  interfaces.Planner
	fees     interfaces.FeeOracle
	contract common.Address
	logger   *zap.Logger
}

func NewApprovalService(gateway interfaces.ChainGateway, wallet interfaces.OperatorWallet, planner interfaces.Planner, fees interfaces.FeeOracle) *ApprovalService {
	return &ApprovalService{
		gateway:  gateway,
		wallet:   wallet,
		planner:  planner,
		fees:     fees,
		contract: contracts.UniVoucherAddress,
		logger:   logger.Log,
	}
}

// ApproveForQuantity approves exactly what quantity cards need, fee included.
func (s *ApprovalService) ApproveForQuantity(ctx context.Context, product business.ProductConfig, quantity int) (*business.ApprovalResult, error) {
	if quantity < 1 {
		return nil, &FormatError{Field: "quantity", Reason: "must be a positive integer"}
	}
	amountUnits, err := product.AmountUnits()
	if err != nil {
		return nil, err
	}
	feeUnits, err := s.fees.CalculateFeeUnits(ctx, amountUnits, product.ChainID)
	if err != nil {
		return nil, err
	}
	total := new(big.Int).Add(amountUnits, feeUnits)
	total.Mul(total, big.NewInt(int64(quantity)))
	return s.approve(ctx, product, total)
}

// ApproveUnlimited approves the maximum uint256.
func (s *ApprovalService) ApproveUnlimited(ctx context.Context, product business.ProductConfig) (*business.ApprovalResult, error) {
	return s.approve(ctx, product, new(big.Int).Set(math.MaxBig256))
}

// Revoke sets the allowance back to zero.
func (s *ApprovalService) Revoke(ctx context.Context, product business.ProductConfig) (*business.ApprovalResult, error) {
	return s.approve(ctx, product, big.NewInt(0))
}

func (s *ApprovalService) approve(ctx context.Context, product business.ProductConfig, amount *big.Int) (*business.ApprovalResult, error) {
	if product.TokenKind() != business.TokenERC20 {
		return nil, fmt.Errorf("native-token products do not need an approval")
	}
	data, err := contracts.PackApprove(s.contract, amount)
	if err != nil {
		return nil, err
	}

	var hash common.Hash
	err = s.wallet.WithSigner(ctx, func(key *ecdsa.PrivateKey) error {
		call := blockchain.Call{
			From: crypto.PubkeyToAddress(key.PublicKey),
			To:   product.Token(),
			Data: data,
		}
		gasLimit, gasPrice, err := s.planner.EstimateExecutionGas(ctx, product.ChainID, call)
		if err != nil {
			return stepError(StepEstimateGas, err)
		}
		hash, err = s.gateway.SendTransaction(ctx, product.ChainID, key, call, gasLimit, gasPrice)
		return stepError(StepSendTx, err)
	})
	if err != nil {
		return nil, stepError(StepApprove, err)
	}

	receipt, err := s.gateway.WaitForReceipt(ctx, product.ChainID, hash)
	if err != nil {
		return nil, stepError(StepWaitReceipt, err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, stepError(StepApprove, fmt.Errorf("approve transaction %s reverted", hash.Hex()))
	}

	result := &business.ApprovalResult{
		TxHash:    hash.Hex(),
		Amount:    amount,
		Unlimited: amount.Cmp(math.MaxBig256) == 0,
		Revoked:   amount.Sign() == 0,
	}
	if chain, ok := blockchain.LookupChain(product.ChainID); ok {
		result.ExplorerURL = chain.TxURL(hash.Hex())
	}

	s.logger.Info("Token approval confirmed",
		zap.Int64("chain_id", product.ChainID),
		zap.String("token", product.TokenAddress),
		zap.String("tx_hash", result.TxHash),
		zap.Bool("unlimited", result.Unlimited),
		zap.Bool("revoked", result.Revoked))

	return result, nil
}
