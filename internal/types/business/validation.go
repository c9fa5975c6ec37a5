package business

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// CardInput is a card id and secret as entered or imported.
type CardInput struct {
	CardID     string `json:"card_id"`
	CardSecret string `json:"card_secret"`
}

// FormatIssue describes a pre-flight format failure.
type FormatIssue struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationResult is the outcome of validating one card against a product.
type ValidationResult struct {
	CardID       string       `json:"card_id"`
	ProductID    int64        `json:"product_id"`
	Facets       Facets       `json:"validations"`
	AllValid     bool         `json:"all_valid"`
	Format       *FormatIssue `json:"format_error,omitempty"`
	NotFound     bool         `json:"not_found,omitempty"`
	APIData      interface{}  `json:"api_data,omitempty"`
	CreationDate *time.Time   `json:"creation_date,omitempty"`
	Fingerprint  string       `json:"fingerprint"`
	ValidatedAt  time.Time    `json:"validated_at"`
}

// Matches reports whether the result was produced for exactly this card id
// and secret. A result that does not match must be treated as absent.
func (r *ValidationResult) Matches(cardID, secret string) bool {
	return r != nil && r.Fingerprint != "" && r.Fingerprint == Fingerprint(cardID, secret)
}

// Fingerprint binds a validation to its inputs. The secret is normalized the
// same way key derivation normalizes it.
func Fingerprint(cardID, secret string) string {
	normalized := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(secret), "-", ""))
	sum := sha256.Sum256([]byte(strings.TrimSpace(cardID) + "\x00" + normalized))
	return hex.EncodeToString(sum[:])
}

// CandidateRow is a row offered to the admission pipeline together with its
// most recent validation.
type CandidateRow struct {
	CardID     string            `json:"card_id"`
	CardSecret string            `json:"card_secret"`
	Source     CardSource        `json:"source"`
	Validation *ValidationResult `json:"validation,omitempty"`
}
