package cardcrypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// PBKDF2Iterations is fixed by the redemption service and must not change.
	PBKDF2Iterations = 310000
	SaltSize         = 16
	IVSize           = 12
	keySize          = 32
)

// EncryptedKey is the wire record shared with the redemption service. Its JSON
// shape is exactly {"salt","iv","ciphertext"}.
type EncryptedKey struct {
	Salt       string `json:"salt"`
	IV         string `json:"iv"`
	Ciphertext string `json:"ciphertext"`
}

// JSON serializes the record in the fixed field order.
func (k *EncryptedKey) JSON() (string, error) {
	b, err := json.Marshal(k)
	if err != nil {
		return "", fmt.Errorf("failed to marshal encrypted key: %w", err)
	}
	return string(b), nil
}

// ParseEncryptedKey decodes the JSON record stored on-chain.
func ParseEncryptedKey(raw string) (*EncryptedKey, error) {
	var k EncryptedKey
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &k); err != nil {
		return nil, fmt.Errorf("%w: malformed encrypted key: %v", ErrDecryptionFailed, err)
	}
	if k.Salt == "" || k.IV == "" || k.Ciphertext == "" {
		return nil, fmt.Errorf("%w: encrypted key is missing fields", ErrDecryptionFailed)
	}
	return &k, nil
}

// EncryptPrivateKey encrypts the UTF-8 bytes of privateKey under secret.
// The key is derived with PBKDF2-HMAC-SHA256 over the normalized secret.
func EncryptPrivateKey(privateKey, secret string) (*EncryptedKey, error) {
	return encryptPrivateKeyFrom(rand.Reader, privateKey, secret)
}

func encryptPrivateKeyFrom(src io.Reader, privateKey, secret string) (*EncryptedKey, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(src, salt); err != nil {
		return nil, unavailable("secure random source", err)
	}
	iv := make([]byte, IVSize)
	if _, err := io.ReadFull(src, iv); err != nil {
		return nil, unavailable("secure random source", err)
	}

	gcm, err := newGCM(deriveKey(secret, salt))
	if err != nil {
		return nil, err
	}

	sealed := gcm.Seal(nil, iv, []byte(privateKey), nil)

	return &EncryptedKey{
		Salt:       hex.EncodeToString(salt),
		IV:         hex.EncodeToString(iv),
		Ciphertext: base64.StdEncoding.EncodeToString(sealed),
	}, nil
}

// DecryptPrivateKey reverses EncryptPrivateKey. A wrong secret fails GCM
// authentication and returns ErrDecryptionFailed, never garbage output.
func DecryptPrivateKey(key *EncryptedKey, secret string) (string, error) {
	if key == nil {
		return "", fmt.Errorf("%w: no encrypted key", ErrDecryptionFailed)
	}

	salt, err := hex.DecodeString(key.Salt)
	if err != nil || len(salt) != SaltSize {
		return "", fmt.Errorf("%w: bad salt", ErrDecryptionFailed)
	}
	iv, err := hex.DecodeString(key.IV)
	if err != nil || len(iv) != IVSize {
		return "", fmt.Errorf("%w: bad iv", ErrDecryptionFailed)
	}
	sealed, err := base64.StdEncoding.DecodeString(key.Ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: bad ciphertext encoding", ErrDecryptionFailed)
	}

	gcm, err := newGCM(deriveKey(secret, salt))
	if err != nil {
		return "", err
	}

	plain, err := gcm.Open(nil, iv, sealed, nil)
	if err != nil {
		return "", ErrDecryptionFailed
	}
	return string(plain), nil
}

// DecryptPrivateKeyJSON is DecryptPrivateKey for the raw on-chain string.
func DecryptPrivateKeyJSON(raw, secret string) (string, error) {
	key, err := ParseEncryptedKey(raw)
	if err != nil {
		return "", err
	}
	return DecryptPrivateKey(key, secret)
}

// DummyEncryptedKeyJSON returns a record with the same field lengths as a real
// one. It is only used to shape gas-estimation payloads.
func DummyEncryptedKeyJSON() (string, error) {
	// 0x + 64 hex chars, plus the 16-byte GCM tag
	sealedLen := 2 + 64 + 16
	k := EncryptedKey{
		Salt:       strings.Repeat("0", SaltSize*2),
		IV:         strings.Repeat("0", IVSize*2),
		Ciphertext: base64.StdEncoding.EncodeToString(make([]byte, sealedLen)),
	}
	return k.JSON()
}

func deriveKey(secret string, salt []byte) []byte {
	return pbkdf2.Key([]byte(NormalizeSecret(secret)), salt, PBKDF2Iterations, keySize, sha256.New)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, unavailable("aes-256", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, unavailable("aes-gcm", err)
	}
	return gcm, nil
}
