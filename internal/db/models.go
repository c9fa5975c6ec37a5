package db

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

type Setting struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Product struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	ChainID       int64     `json:"chain_id"`
	TokenAddress  string    `json:"token_address"`
	TokenSymbol   string    `json:"token_symbol"`
	TokenDecimals int16     `json:"token_decimals"`
	Amount        string    `json:"amount"`
	StockQuantity int32     `json:"stock_quantity"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type InventoryCard struct {
	ID            int64              `json:"id"`
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
	CreatedAt     time.Time          `json:"created_at"`
}
