package cardcrypto

import (
	"crypto/rand"
	"io"
	"strings"
)

const (
	// SecretLength is the number of letters in a card secret.
	SecretLength = 20
	// SecretGroupSize is the number of letters between hyphens in the canonical form.
	SecretGroupSize = 5

	alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	// bytes at or above this value are discarded to keep byte%26 uniform
	rejectionLimit = (256 / len(alphabet)) * len(alphabet)
	randomChunk    = 32
)

// GenerateFriendlySecret returns a fresh XXXXX-XXXXX-XXXXX-XXXXX secret drawn
// from crypto/rand.
func GenerateFriendlySecret() (string, error) {
	return GenerateFriendlySecretFrom(rand.Reader)
}

// GenerateFriendlySecretFrom draws letters from src using rejection sampling.
// A read failure is reported as EncryptionUnavailableError; there is no fallback source.
func GenerateFriendlySecretFrom(src io.Reader) (string, error) {
	letters := make([]byte, 0, SecretLength)
	buf := make([]byte, randomChunk)

	for len(letters) < SecretLength {
		if _, err := io.ReadFull(src, buf); err != nil {
			return "", unavailable("secure random source", err)
		}
		for _, b := range buf {
			if int(b) >= rejectionLimit {
				continue
			}
			letters = append(letters, alphabet[int(b)%len(alphabet)])
			if len(letters) == SecretLength {
				break
			}
		}
	}

	return FormatSecret(string(letters)), nil
}

// NormalizeSecret strips hyphens and surrounding whitespace and upper-cases the
// result. Comparisons and key derivation always use this form.
func NormalizeSecret(secret string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(secret), "-", ""))
}

// FormatSecret renders a secret in its canonical hyphen-grouped form. Input that
// does not normalize to 20 letters is returned normalized but ungrouped.
func FormatSecret(secret string) string {
	normalized := NormalizeSecret(secret)
	if len(normalized) != SecretLength {
		return normalized
	}

	var sb strings.Builder
	sb.Grow(SecretLength + SecretLength/SecretGroupSize - 1)
	for i := 0; i < SecretLength; i += SecretGroupSize {
		if i > 0 {
			sb.WriteByte('-')
		}
		sb.WriteString(normalized[i : i+SecretGroupSize])
	}
	return sb.String()
}

// IsValidSecret reports whether secret normalizes to exactly 20 letters A-Z.
func IsValidSecret(secret string) bool {
	normalized := NormalizeSecret(secret)
	if len(normalized) != SecretLength {
		return false
	}
	for i := 0; i < len(normalized); i++ {
		if normalized[i] < 'A' || normalized[i] > 'Z' {
			return false
		}
	}
	return true
}
