package db

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/univoucher/univoucher-api/internal/constants"
	"github.com/univoucher/univoucher-api/internal/types/business"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

var (
	ErrSettingNotFound = errors.New("setting not found")
	ErrProductNotFound = errors.New(constants.ProductNotFound)
)

// AddedCard identifies one inserted inventory row.
type AddedCard struct {
	InventoryID int64  `json:"inventory_id"`
	CardID      string `json:"card_id"`
}

// AdmitResult mirrors the inventory store's admit contract.
type AdmitResult struct {
	SuccessCount int         `json:"success_count"`
	Errors       []string    `json:"errors"`
	AddedCards   []AddedCard `json:"added_cards"`
}

// Store is the Postgres-backed settings and inventory store.
type Store struct {
	pool TxBeginner
	*Queries
}

// NewStore wraps a pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool, Queries: New(pool)}
}

// NewStoreWith builds a store from any DBTX and transaction starter.
func NewStoreWith(conn DBTX, beginner TxBeginner) *Store {
	return &Store{pool: beginner, Queries: New(conn)}
}

// GetSettingValue returns the value stored under key.
func (s *Store) GetSettingValue(ctx context.Context, key string) (string, error) {
	setting, err := s.GetSetting(ctx, key)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrSettingNotFound
		}
		return "", errors.Wrapf(err, "failed to read setting %s", key)
	}
	return setting.Value, nil
}

// SetSettingValue stores value under key.
func (s *Store) SetSettingValue(ctx context.Context, key, value string) error {
	if err := s.UpsertSetting(ctx, UpsertSettingParams{Key: key, Value: value}); err != nil {
		return errors.Wrapf(err, "failed to write setting %s", key)
	}
	return nil
}

// GetProductConfig loads the token configuration of a product.
func (s *Store) GetProductConfig(ctx context.Context, productID int64) (business.ProductConfig, error) {
	product, err := s.GetProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return business.ProductConfig{}, ErrProductNotFound
		}
		return business.ProductConfig{}, errors.Wrap(err, "failed to load product")
	}
	return product.ToConfig()
}

// ToConfig converts a product row to its token configuration.
func (p Product) ToConfig() (business.ProductConfig, error) {
	amount, err := decimal.NewFromString(p.Amount)
	if err != nil {
		return business.ProductConfig{}, errors.Wrapf(err, "product %d has an invalid amount", p.ID)
	}
	if p.TokenDecimals < 0 || p.TokenDecimals > math.MaxUint8 {
		return business.ProductConfig{}, fmt.Errorf("product %d has invalid token decimals %d", p.ID, p.TokenDecimals)
	}
	return business.ProductConfig{
		ProductID:     p.ID,
		ChainID:       p.ChainID,
		TokenAddress:  p.TokenAddress,
		TokenSymbol:   p.TokenSymbol,
		TokenDecimals: uint8(p.TokenDecimals),
		Amount:        amount,
	}, nil
}

// CardExistsExcluding reports whether cardID is already in inventory, ignoring
// the row excludeID (0 excludes nothing).
func (s *Store) CardExistsExcluding(ctx context.Context, cardID string, excludeID int64) (bool, error) {
	exists, err := s.CardExists(ctx, CardExistsParams{CardID: cardID, ExcludeID: excludeID})
	if err != nil {
		return false, errors.Wrap(err, "failed to check card existence")
	}
	return exists, nil
}

// AdmitCards inserts cards in one transaction. A card id that already exists
// is reported in Errors and skipped; any other failure rolls back the batch.
func (s *Store) AdmitCards(ctx context.Context, meta business.ProductMeta, cards []business.InventoryCard) (AdmitResult, error) {
	result := AdmitResult{Errors: []string{}, AddedCards: []AddedCard{}}

	err := WithTransaction(ctx, s.pool, func(q *Queries) error {
		for _, card := range cards {
			row, err := q.InsertInventoryCard(ctx, insertParams(meta, card))
			if err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					result.Errors = append(result.Errors, fmt.Sprintf("card %s already exists in inventory", card.CardID))
					continue
				}
				return errors.Wrapf(err, "failed to insert card %s", card.CardID)
			}
			result.AddedCards = append(result.AddedCards, AddedCard{InventoryID: row.ID, CardID: card.CardID})
		}
		return nil
	})
	if err != nil {
		return AdmitResult{}, err
	}

	result.SuccessCount = len(result.AddedCards)
	return result, nil
}

func insertParams(meta business.ProductMeta, card business.InventoryCard) InsertInventoryCardParams {
	creation := pgtype.Timestamptz{}
	if card.CreationDate != nil {
		creation = pgtype.Timestamptz{Time: card.CreationDate.UTC(), Valid: true}
	}
	return InsertInventoryCardParams{
		ProductID:     meta.ProductID,
		CardID:        card.CardID,
		CardSecret:    card.CardSecret,
		ChainID:       meta.ChainID,
		TokenAddress:  meta.TokenAddress,
		TokenSymbol:   meta.TokenSymbol,
		TokenType:     meta.TokenType.String(),
		TokenDecimals: int16(meta.TokenDecimals),
		Amount:        meta.Amount,
		Status:        constants.CardStatusAvailable,
		Source:        string(card.Source),
		CreationDate:  creation,
	}
}

// SyncStock sets the product's stock to its number of available cards.
func (s *Store) SyncStock(ctx context.Context, productID int64) (int64, error) {
	count, err := s.CountAvailableCards(ctx, productID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count available cards")
	}
	stock := count
	if stock > math.MaxInt32 {
		stock = math.MaxInt32
	}
	if err := s.UpdateProductStock(ctx, UpdateProductStockParams{ID: productID, StockQuantity: int32(stock)}); err != nil {
		return 0, errors.Wrap(err, "failed to update product stock")
	}
	key := constants.SettingLastStockSyncPrefix + strconv.FormatInt(productID, 10)
	if err := s.SetSettingValue(ctx, key, time.Now().UTC().Format(time.RFC3339)); err != nil {
		return count, err
	}
	return count, nil
}
