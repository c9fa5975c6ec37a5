package cardcrypto

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrInvalidMasterKey is returned when the at-rest master key is not 32 bytes.
var ErrInvalidMasterKey = errors.New("master key must be 32 bytes encoded as hex or base64")

// ParseMasterKey accepts a 32-byte key as hex (64 chars) or standard base64.
func ParseMasterKey(encoded string) ([]byte, error) {
	encoded = strings.TrimSpace(encoded)
	if b, err := hex.DecodeString(strings.TrimPrefix(encoded, "0x")); err == nil && len(b) == keySize {
		return b, nil
	}
	if b, err := base64.StdEncoding.DecodeString(encoded); err == nil && len(b) == keySize {
		return b, nil
	}
	return nil, ErrInvalidMasterKey
}

// Seal encrypts plaintext with AES-256-GCM under masterKey. The output is
// base64(nonce || ciphertext) and is what gets stored in the settings table.
func Seal(masterKey []byte, plaintext string) (string, error) {
	if len(masterKey) != keySize {
		return "", ErrInvalidMasterKey
	}
	gcm, err := newGCM(masterKey)
	if err != nil {
		return "", err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", unavailable("secure random source", err)
	}
	out := gcm.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(out), nil
}

// Open reverses Seal.
func Open(masterKey []byte, sealed string) (string, error) {
	if len(masterKey) != keySize {
		return "", ErrInvalidMasterKey
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(sealed))
	if err != nil {
		return "", fmt.Errorf("%w: bad sealed value encoding", ErrDecryptionFailed)
	}
	gcm, err := newGCM(masterKey)
	if err != nil {
		return "", err
	}
	if len(raw) < gcm.NonceSize() {
		return "", fmt.Errorf("%w: sealed value too short", ErrDecryptionFailed)
	}
	plain, err := gcm.Open(nil, raw[:gcm.NonceSize()], raw[gcm.NonceSize():], nil)
	if err != nil {
		return "", ErrDecryptionFailed
	}
	return string(plain), nil
}
