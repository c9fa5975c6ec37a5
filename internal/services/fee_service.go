package services

import (
	"context"
	"fmt"
	"math/big"
	"strconv"
	"sync"

	"github.com/univoucher/univoucher-api/internal/logger"
	"github.com/univoucher/univoucher-api/internal/metrics"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// FeeSource fetches the current fee percentage for a chain as a fraction.
type FeeSource interface {
	GetCurrentFee(ctx context.Context, chainID int64) (decimal.Decimal, error)
}

// FeeCache memoizes fees per chain for the life of the process. A value, once
// stored, is never replaced. Concurrent misses for one chain share one fetch.
type FeeCache struct {
	mu    sync.RWMutex
	fees  map[int64]decimal.Decimal
	group singleflight.Group
}

func NewFeeCache() *FeeCache {
	return &FeeCache{fees: make(map[int64]decimal.Decimal)}
}

func (c *FeeCache) Get(chainID int64) (decimal.Decimal, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	fee, ok := c.fees[chainID]
	return fee, ok
}

// store keeps the first value written for chainID and returns it.
func (c *FeeCache) store(chainID int64, fee decimal.Decimal) decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.fees[chainID]; ok {
		return existing
	}
	c.fees[chainID] = fee
	return fee
}

// FeeService is the fee oracle.
type FeeService struct {
	source  FeeSource
	cache   *FeeCache
	metrics *metrics.Collector
	logger  *zap.Logger
}

func NewFeeService(source FeeSource, cache *FeeCache, collector *metrics.Collector) *FeeService {
	if cache == nil {
		cache = NewFeeCache()
	}
	return &FeeService{
		source:  source,
		cache:   cache,
		metrics: collector,
		logger:  logger.Log,
	}
}

// GetFeePercentage returns the fee for chainID as a decimal fraction.
func (s *FeeService) GetFeePercentage(ctx context.Context, chainID int64) (decimal.Decimal, error) {
	if fee, ok := s.cache.Get(chainID); ok {
		s.metrics.ObserveFeeLookup("hit")
		return fee, nil
	}

	v, err, _ := s.cache.group.Do(strconv.FormatInt(chainID, 10), func() (interface{}, error) {
		if fee, ok := s.cache.Get(chainID); ok {
			return fee, nil
		}
		// shared by every waiter
		fee, err := s.source.GetCurrentFee(context.WithoutCancel(ctx), chainID)
		if err != nil {
			return nil, err
		}
		return s.cache.store(chainID, fee), nil
	})
	if err != nil {
		s.metrics.ObserveFeeLookup("error")
		s.logger.Error("Failed to fetch UniVoucher fee", zap.Int64("chain_id", chainID), zap.Error(err))
		return decimal.Zero, &FeeUnavailableError{ChainID: chainID, Err: err}
	}

	s.metrics.ObserveFeeLookup("miss")
	fee := v.(decimal.Decimal)
	s.logger.Info("Cached UniVoucher fee", zap.Int64("chain_id", chainID), zap.String("fee", fee.String()))
	return fee, nil
}

// CalculateFee returns cardAmount * fee(chainID).
func (s *FeeService) CalculateFee(ctx context.Context, cardAmount decimal.Decimal, chainID int64) (decimal.Decimal, error) {
	fee, err := s.GetFeePercentage(ctx, chainID)
	if err != nil {
		return decimal.Zero, err
	}
	return cardAmount.Mul(fee), nil
}

// CalculateFeeUnits is CalculateFee in smallest units, rounded down.
func (s *FeeService) CalculateFeeUnits(ctx context.Context, amountUnits *big.Int, chainID int64) (*big.Int, error) {
	if amountUnits == nil || amountUnits.Sign() < 0 {
		return nil, fmt.Errorf("amount must be non-negative")
	}
	fee, err := s.GetFeePercentage(ctx, chainID)
	if err != nil {
		return nil, err
	}
	return decimal.NewFromBigInt(amountUnits, 0).Mul(fee).Floor().BigInt(), nil
}
