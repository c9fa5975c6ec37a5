package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/univoucher/univoucher-api/internal/cardcrypto"
	"github.com/univoucher/univoucher-api/internal/client/blockchain"
	"github.com/univoucher/univoucher-api/internal/contracts"
	"github.com/univoucher/univoucher-api/internal/helpers"
	"github.com/univoucher/univoucher-api/internal/interfaces"
	"github.com/univoucher/univoucher-api/internal/logger"
	"github.com/univoucher/univoucher-api/internal/types/business"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"go.uber.org/zap"
)

// Gas buffers over the raw provider estimate. The review estimate runs on a
// dummy payload and gets the larger margin.
const (
	ReviewGasBufferPercent    = 25
	ExecutionGasBufferPercent = 20
)

// ApplyGasBuffer adds percent to gas, rounding up.
func ApplyGasBuffer(gas uint64, percent int) uint64 {
	if percent <= 0 {
		return gas
	}
	buffered := new(big.Int).SetUint64(gas)
	buffered.Mul(buffered, big.NewInt(int64(100+percent)))
	buffered.Add(buffered, big.NewInt(99))
	buffered.Div(buffered, big.NewInt(100))
	if !buffered.IsUint64() {
		return ^uint64(0)
	}
	return buffered.Uint64()
}

// PlannerService checks affordability and estimates gas for mints.
type PlannerService struct {
	gateway         interfaces.ChainGateway
	fees            interfaces.FeeOracle
	contract        common.Address
	reviewBuffer    int
	executionBuffer int
	logger          *zap.Logger
}

// PlannerOption configures a PlannerService.
type PlannerOption func(*PlannerService)

// WithGasBuffers overrides the review and execution buffers.
func WithGasBuffers(reviewPercent, executionPercent int) PlannerOption {
	return func(p *PlannerService) {
		p.reviewBuffer = reviewPercent
		p.executionBuffer = executionPercent
	}
}

func WithContractAddress(addr common.Address) PlannerOption {
	return func(p *PlannerService) {
		p.contract = addr
	}
}

func NewPlannerService(gateway interfaces.ChainGateway, fees interfaces.FeeOracle, options ...PlannerOption) *PlannerService {
	p := &PlannerService{
		gateway:         gateway,
		fees:            fees,
		contract:        contracts.UniVoucherAddress,
		reviewBuffer:    ReviewGasBufferPercent,
		executionBuffer: ExecutionGasBufferPercent,
		logger:          logger.Log,
	}
	for _, option := range options {
		option(p)
	}
	return p
}

// perCardUnits returns the card amount and fee in smallest units.
func (p *PlannerService) perCardUnits(ctx context.Context, product business.ProductConfig) (amount, fee *big.Int, err error) {
	amount, err = product.AmountUnits()
	if err != nil {
		return nil, nil, err
	}
	fee, err = p.fees.CalculateFeeUnits(ctx, amount, product.ChainID)
	if err != nil {
		return nil, nil, err
	}
	return amount, fee, nil
}

// ComputeCostSummary works out fee, per-card and total cost for quantity cards
// and runs the allowance and balance checks. It never reuses an earlier result.
func (p *PlannerService) ComputeCostSummary(ctx context.Context, product business.ProductConfig, quantity int, owner common.Address) (*business.CostSummary, error) {
	if quantity < 1 {
		return nil, &FormatError{Field: "quantity", Reason: "must be a positive integer"}
	}
	if err := product.Validate(); err != nil {
		return nil, err
	}

	feePct, err := p.fees.GetFeePercentage(ctx, product.ChainID)
	if err != nil {
		return nil, err
	}
	amountUnits, feeUnits, err := p.perCardUnits(ctx, product)
	if err != nil {
		return nil, err
	}

	perCardUnits := new(big.Int).Add(amountUnits, feeUnits)
	totalUnits := new(big.Int).Mul(perCardUnits, big.NewInt(int64(quantity)))

	summary := &business.CostSummary{
		ChainID:          product.ChainID,
		Quantity:         quantity,
		TokenKind:        product.TokenKind().String(),
		TokenSymbol:      product.TokenSymbol,
		CardAmount:       product.Amount,
		FeePercentage:    feePct,
		Fee:              helpers.FromSmallestUnit(feeUnits, product.TokenDecimals),
		PerCardTotal:     helpers.FromSmallestUnit(perCardUnits, product.TokenDecimals),
		TotalNeeded:      helpers.FromSmallestUnit(totalUnits, product.TokenDecimals),
		PerCardUnits:     perCardUnits,
		TotalNeededUnits: totalUnits,
	}

	token := product.Token()
	switch product.TokenKind() {
	case business.TokenERC20:
		allowance, err := p.CheckAllowance(ctx, product.ChainID, token, owner, totalUnits, product.TokenDecimals, product.TokenSymbol)
		if err != nil {
			return nil, err
		}
		summary.Allowance = allowance
	case business.TokenNative:
	default:
		return nil, fmt.Errorf("unknown token kind %s", product.TokenKind())
	}

	balance, err := p.CheckBalance(ctx, product.ChainID, token, owner, totalUnits, product.TokenDecimals, product.TokenSymbol)
	if err != nil {
		return nil, err
	}
	summary.Balance = balance

	if blocking := blockingError(summary); blocking != nil {
		summary.BlockingReason = blocking.Error()
	} else {
		summary.CanProceed = true
	}

	p.logger.Debug("Computed mint cost summary",
		zap.Int64("chain_id", product.ChainID),
		zap.Int("quantity", quantity),
		zap.String("total_needed", summary.TotalNeeded.String()),
		zap.Bool("can_proceed", summary.CanProceed))

	return summary, nil
}

// blockingError returns the InsufficientFundsError that stops a mint, if any.
// Allowance is reported before balance.
func blockingError(summary *business.CostSummary) error {
	if summary.Allowance != nil && !summary.Allowance.Sufficient() {
		return &InsufficientFundsError{
			Kind:      FundsAllowance,
			Required:  summary.Allowance.RequiredDisplay,
			Available: summary.Allowance.CurrentDisplay,
			Symbol:    summary.TokenSymbol,
		}
	}
	if summary.Balance != nil && !summary.Balance.Sufficient {
		return &InsufficientFundsError{
			Kind:      FundsBalance,
			Required:  summary.Balance.RequiredDisplay,
			Available: summary.Balance.AvailableDisplay,
			Symbol:    summary.TokenSymbol,
		}
	}
	return nil
}

// CheckAllowance reads allowance(owner, UniVoucher) on token.
func (p *PlannerService) CheckAllowance(ctx context.Context, chainID int64, token, owner common.Address, required *big.Int, decimals uint8, symbol string) (*business.AllowanceCheck, error) {
	current, err := p.gateway.GetAllowance(ctx, chainID, token, owner, p.contract)
	if err != nil {
		return nil, fmt.Errorf("failed to read allowance: %w", err)
	}

	check := &business.AllowanceCheck{
		Current:         current,
		Required:        new(big.Int).Set(required),
		CurrentDisplay:  helpers.FormatUnits(current, decimals, symbol),
		RequiredDisplay: helpers.FormatUnits(required, decimals, symbol),
		CanRevoke:       current.Sign() > 0,
	}

	switch {
	case current.Cmp(required) < 0:
		check.Status = business.AllowanceInsufficient
		check.ApprovalAmount = new(big.Int).Set(required)
	case current.Cmp(math.MaxBig256) == 0:
		check.Status = business.AllowanceUnlimited
		check.CurrentDisplay = "unlimited " + symbol
	default:
		check.Status = business.AllowanceSufficient
	}
	return check, nil
}

// CheckBalance compares owner's balance of token (zero address for native)
// with required.
func (p *PlannerService) CheckBalance(ctx context.Context, chainID int64, token, owner common.Address, required *big.Int, decimals uint8, symbol string) (*business.BalanceCheck, error) {
	var available *big.Int
	var err error
	if token == (common.Address{}) {
		available, err = p.gateway.GetNativeBalance(ctx, chainID, owner)
	} else {
		available, err = p.gateway.GetTokenBalance(ctx, chainID, owner, token)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read balance: %w", err)
	}

	return &business.BalanceCheck{
		Sufficient:       available.Cmp(required) >= 0,
		Available:        available,
		Required:         new(big.Int).Set(required),
		AvailableDisplay: helpers.FormatUnits(available, decimals, symbol),
		RequiredDisplay:  helpers.FormatUnits(required, decimals, symbol),
	}, nil
}

// EstimateMintGas estimates the deposit with a dummy payload shaped like the
// real one, applies the review buffer and prices it at the current gas price.
func (p *PlannerService) EstimateMintGas(ctx context.Context, product business.ProductConfig, quantity int, owner common.Address) (*business.GasEstimate, error) {
	batch, err := business.BatchKindFor(quantity)
	if err != nil {
		return nil, &FormatError{Field: "quantity", Reason: err.Error()}
	}
	method, err := contracts.SelectDepositMethod(product.TokenKind(), batch)
	if err != nil {
		return nil, err
	}

	amountUnits, feeUnits, err := p.perCardUnits(ctx, product)
	if err != nil {
		return nil, err
	}

	args, err := dummyDepositArgs(quantity, product.Token(), amountUnits)
	if err != nil {
		return nil, err
	}
	data, err := contracts.PackDeposit(method, args)
	if err != nil {
		return nil, err
	}

	call := blockchain.Call{From: owner, To: p.contract, Data: data}
	if method.Payable() {
		perCard := new(big.Int).Add(amountUnits, feeUnits)
		call.Value = perCard.Mul(perCard, big.NewInt(int64(quantity)))
	}

	raw, err := p.gateway.EstimateGas(ctx, product.ChainID, call)
	if err != nil {
		return nil, fmt.Errorf("failed to estimate %s gas: %w", method.Name(), err)
	}
	gasPrice, err := p.gateway.GetGasPrice(ctx, product.ChainID)
	if err != nil {
		return nil, fmt.Errorf("failed to read gas price: %w", err)
	}

	limit := ApplyGasBuffer(raw, p.reviewBuffer)
	cost := new(big.Int).Mul(new(big.Int).SetUint64(limit), gasPrice)

	nativeSymbol := ""
	if chain, ok := blockchain.LookupChain(product.ChainID); ok {
		nativeSymbol = chain.NativeSymbol
	}

	return &business.GasEstimate{
		Method:        method.Name(),
		RawGasLimit:   raw,
		GasLimit:      limit,
		BufferPercent: p.reviewBuffer,
		GasPrice:      gasPrice,
		GasCostNative: helpers.FromSmallestUnit(cost, blockchain.NativeDecimals),
		NativeSymbol:  nativeSymbol,
	}, nil
}

// EstimateExecutionGas estimates a real transaction and applies the execution
// buffer. It returns the gas limit and the gas price to send with.
func (p *PlannerService) EstimateExecutionGas(ctx context.Context, chainID int64, call blockchain.Call) (uint64, *big.Int, error) {
	raw, err := p.gateway.EstimateGas(ctx, chainID, call)
	if err != nil {
		return 0, nil, err
	}
	gasPrice, err := p.gateway.GetGasPrice(ctx, chainID)
	if err != nil {
		return 0, nil, err
	}
	return ApplyGasBuffer(raw, p.executionBuffer), gasPrice, nil
}

// dummyDepositArgs builds non-committing deposit arrays with random slot
// addresses and encrypted-key placeholders of realistic length.
func dummyDepositArgs(quantity int, token common.Address, amountUnits *big.Int) (contracts.DepositArgs, error) {
	args := contracts.DepositArgs{Token: token}
	dummyKey, err := cardcrypto.DummyEncryptedKeyJSON()
	if err != nil {
		return contracts.DepositArgs{}, err
	}
	for i := 0; i < quantity; i++ {
		var slot common.Address
		if _, err := rand.Read(slot[:]); err != nil {
			return contracts.DepositArgs{}, &cardcrypto.EncryptionUnavailableError{Primitive: "secure random source", Err: err}
		}
		args.SlotIDs = append(args.SlotIDs, slot)
		args.Amounts = append(args.Amounts, new(big.Int).Set(amountUnits))
		args.Messages = append(args.Messages, "")
		args.EncryptedKeys = append(args.EncryptedKeys, dummyKey)
	}
	return args, nil
}
