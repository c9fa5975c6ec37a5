package cardcrypto

import (
	"crypto/ecdsa"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// SlotKey is a freshly generated keypair used as the on-chain deposit slot for
// one card. The private key lives only until it has been encrypted.
type SlotKey struct {
	Address common.Address
	key     *ecdsa.PrivateKey
}

// GenerateSlotKey creates a new secp256k1 keypair.
func GenerateSlotKey() (*SlotKey, error) {
	key, err := crypto.GenerateKey()
	if err != nil {
		return nil, unavailable("secp256k1 key generation", err)
	}
	return &SlotKey{
		Address: crypto.PubkeyToAddress(key.PublicKey),
		key:     key,
	}, nil
}

// PrivateKeyHex returns the 0x-prefixed private key. The value is what gets
// encrypted under the card secret.
func (s *SlotKey) PrivateKeyHex() string {
	if s.key == nil {
		return ""
	}
	return hexutil.Encode(crypto.FromECDSA(s.key))
}

// Destroy zeroes the private scalar and drops the reference.
func (s *SlotKey) Destroy() {
	if s.key == nil {
		return
	}
	if s.key.D != nil {
		s.key.D.SetInt64(0)
	}
	s.key = nil
}

// DeriveAddress returns the EVM address controlled by a hex private key. The
// key may be given with or without the 0x prefix.
func DeriveAddress(privateKeyHex string) (common.Address, error) {
	key, err := ParsePrivateKey(privateKeyHex)
	if err != nil {
		return common.Address{}, err
	}
	addr := crypto.PubkeyToAddress(key.PublicKey)
	key.D.SetInt64(0)
	return addr, nil
}

// ParsePrivateKey decodes a hex secp256k1 private key.
func ParsePrivateKey(privateKeyHex string) (*ecdsa.PrivateKey, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(privateKeyHex), "0x")
	key, err := crypto.HexToECDSA(trimmed)
	if err != nil {
		// the key itself is never echoed back
		return nil, fmt.Errorf("invalid private key")
	}
	return key, nil
}
