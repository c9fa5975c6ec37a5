package db

import (
	"context"
)

type Querier interface {
	CardExists(ctx context.Context, arg CardExistsParams) (bool, error)
	CountAvailableCards(ctx context.Context, productID int64) (int64, error)
	GetProduct(ctx context.Context, id int64) (Product, error)
	GetSetting(ctx context.Context, key string) (Setting, error)
	InsertInventoryCard(ctx context.Context, arg InsertInventoryCardParams) (InsertInventoryCardRow, error)
	UpdateProductStock(ctx context.Context, arg UpdateProductStockParams) error
	UpsertSetting(ctx context.Context, arg UpsertSettingParams) error
}

var _ Querier = (*Queries)(nil)
