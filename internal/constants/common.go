package constants

// Common string constants used throughout the codebase
const (
	// Log levels
	ErrorLevel = "error"

	// Environments
	ProdEnvironment = "prod"

	// Service name attached to structured logs
	ServiceName = "univoucher-api"
)

// Settings store keys
const (
	SettingRPCAPIKey           = "rpc_api_key"
	SettingEncryptedWalletKey  = "internal_wallet_encrypted_key"
	SettingLastStockSyncPrefix = "stock_sync_at_"
)

// Card sources recorded on admitted inventory rows
const (
	CardSourceManual = "manual"
	CardSourceCSV    = "csv"
	CardSourceMint   = "internal_wallet"
)

// Status of a freshly admitted inventory row
const CardStatusAvailable = "available"
