package constants

// Error messages returned by the AJAX handlers
const (
	ProductNotFound       = "product not found"
	MintSessionNotFound   = "mint session not found"
	WalletNotConfigured   = "internal wallet is not configured"
	InvalidNonce          = "invalid or missing nonce"
	InvalidRequestBody    = "invalid request body"
	CardIDAndSecretNeeded = "card id and card secret are required"
)
