package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const getSetting = `-- name: GetSetting :one
SELECT key, value, updated_at FROM settings
WHERE key = $1
`

func (q *Queries) GetSetting(ctx context.Context, key string) (Setting, error) {
	row := q.db.QueryRow(ctx, getSetting, key)
	var i Setting
	err := row.Scan(&i.Key, &i.Value, &i.UpdatedAt)
	return i, err
}

const upsertSetting = `-- name: UpsertSetting :exec
INSERT INTO settings (key, value, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()
`

type UpsertSettingParams struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

func (q *Queries) UpsertSetting(ctx context.Context, arg UpsertSettingParams) error {
	_, err := q.db.Exec(ctx, upsertSetting, arg.Key, arg.Value)
	return err
}

const getProduct = `-- name: GetProduct :one
SELECT id, name, chain_id, token_address, token_symbol, token_decimals, amount::text, stock_quantity, updated_at
FROM products
WHERE id = $1
`

func (q *Queries) GetProduct(ctx context.Context, id int64) (Product, error) {
	row := q.db.QueryRow(ctx, getProduct, id)
	var i Product
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.ChainID,
		&i.TokenAddress,
		&i.TokenSymbol,
		&i.TokenDecimals,
		&i.Amount,
		&i.StockQuantity,
		&i.UpdatedAt,
	)
	return i, err
}

const cardExists = `-- name: CardExists :one
SELECT EXISTS (
    SELECT 1 FROM inventory_cards
    WHERE card_id = $1 AND ($2::bigint = 0 OR id <> $2::bigint)
)
`

type CardExistsParams struct {
	CardID    string `json:"card_id"`
	ExcludeID int64  `json:"exclude_id"`
}

func (q *Queries) CardExists(ctx context.Context, arg CardExistsParams) (bool, error) {
	row := q.db.QueryRow(ctx, cardExists, arg.CardID, arg.ExcludeID)
	var exists bool
	err := row.Scan(&exists)
	return exists, err
}

const insertInventoryCard = `-- name: InsertInventoryCard :one
INSERT INTO inventory_cards (
    product_id, card_id, card_secret, chain_id, token_address, token_symbol,
    token_type, token_decimals, amount, status, source, creation_date
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8, $9::numeric, $10, $11, COALESCE($12, now())
)
ON CONFLICT (card_id) DO NOTHING
RETURNING id, created_at
`

type InsertInventoryCardParams struct {
	ProductID     int64              `json:"product_id"`
	CardID        string             `json:"card_id"`
	CardSecret    string             `json:"-"`
	ChainID       int64              `json:"chain_id"`
	TokenAddress  string             `json:"token_address"`
	TokenSymbol   string             `json:"token_symbol"`
	TokenType     string             `json:"token_type"`
	TokenDecimals int16              `json:"token_decimals"`
	Amount        string             `json:"amount"`
	Status        string             `json:"status"`
	Source        string             `json:"source"`
	CreationDate  pgtype.Timestamptz `json:"creation_date"`
}

type InsertInventoryCardRow struct {
	ID        int64              `json:"id"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) InsertInventoryCard(ctx context.Context, arg InsertInventoryCardParams) (InsertInventoryCardRow, error) {
	row := q.db.QueryRow(ctx, insertInventoryCard,
		arg.ProductID,
		arg.CardID,
		arg.CardSecret,
		arg.ChainID,
		arg.TokenAddress,
		arg.TokenSymbol,
		arg.TokenType,
		arg.TokenDecimals,
		arg.Amount,
		arg.Status,
		arg.Source,
		arg.CreationDate,
	)
	var i InsertInventoryCardRow
	err := row.Scan(&i.ID, &i.CreatedAt)
	return i, err
}

const countAvailableCards = `-- name: CountAvailableCards :one
SELECT COUNT(*) FROM inventory_cards
WHERE product_id = $1 AND status = 'available'
`

func (q *Queries) CountAvailableCards(ctx context.Context, productID int64) (int64, error) {
	row := q.db.QueryRow(ctx, countAvailableCards, productID)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const updateProductStock = `-- name: UpdateProductStock :exec
UPDATE products SET stock_quantity = $2, updated_at = now()
WHERE id = $1
`

type UpdateProductStockParams struct {
	ID            int64 `json:"id"`
	StockQuantity int32 `json:"stock_quantity"`
}

func (q *Queries) UpdateProductStock(ctx context.Context, arg UpdateProductStockParams) error {
	_, err := q.db.Exec(ctx, updateProductStock, arg.ID, arg.StockQuantity)
	return err
}
