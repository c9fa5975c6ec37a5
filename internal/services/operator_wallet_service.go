package services

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/univoucher/univoucher-api/internal/cardcrypto"
	"github.com/univoucher/univoucher-api/internal/constants"
	"github.com/univoucher/univoucher-api/internal/db"
	"github.com/univoucher/univoucher-api/internal/interfaces"
	"github.com/univoucher/univoucher-api/internal/logger"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"
)

// OperatorWalletService keeps the operator's private key sealed in the
// settings store. The key is opened only for the duration of a signing call,
// and signing calls run one at a time so pending nonces never overlap.
type OperatorWalletService struct {
	settings  interfaces.SettingsStore
	masterKey []byte

	// signing holds one token; taking it is the signer lock
	signing chan struct{}

	mu      sync.Mutex
	address *common.Address
	logger  *zap.Logger
}

func NewOperatorWalletService(settings interfaces.SettingsStore, masterKey []byte) *OperatorWalletService {
	signing := make(chan struct{}, 1)
	signing <- struct{}{}
	return &OperatorWalletService{
		settings:  settings,
		masterKey: masterKey,
		signing:   signing,
		logger:    logger.Log,
	}
}

// Address returns the wallet address without exposing the key.
func (w *OperatorWalletService) Address(ctx context.Context) (common.Address, error) {
	w.mu.Lock()
	if w.address != nil {
		addr := *w.address
		w.mu.Unlock()
		return addr, nil
	}
	w.mu.Unlock()

	key, err := w.openKey(ctx)
	if err != nil {
		return common.Address{}, err
	}
	defer zeroKey(key)
	return crypto.PubkeyToAddress(key.PublicKey), nil
}

// WithSigner opens the stored key, passes it to fn and clears it afterwards.
// Only one fn runs at a time; a caller waiting for the signer gives up when
// ctx is done.
func (w *OperatorWalletService) WithSigner(ctx context.Context, fn func(key *ecdsa.PrivateKey) error) error {
	select {
	case <-w.signing:
	case <-ctx.Done():
		return fmt.Errorf("waiting for wallet signer: %w", ctx.Err())
	}
	defer func() { w.signing <- struct{}{} }()

	key, err := w.openKey(ctx)
	if err != nil {
		return err
	}
	defer zeroKey(key)
	return fn(key)
}

func (w *OperatorWalletService) openKey(ctx context.Context) (*ecdsa.PrivateKey, error) {
	sealed, err := w.settings.GetSettingValue(ctx, constants.SettingEncryptedWalletKey)
	if err != nil {
		if errors.Is(err, db.ErrSettingNotFound) {
			return nil, ErrWalletNotConfigured
		}
		return nil, fmt.Errorf("failed to load wallet key: %w", err)
	}
	if strings.TrimSpace(sealed) == "" {
		return nil, ErrWalletNotConfigured
	}

	keyHex, err := cardcrypto.Open(w.masterKey, sealed)
	if err != nil {
		w.logger.Error("Failed to open internal wallet key", zap.Error(err))
		return nil, fmt.Errorf("failed to unlock wallet: %w", err)
	}
	key, err := cardcrypto.ParsePrivateKey(keyHex)
	if err != nil {
		return nil, err
	}

	addr := crypto.PubkeyToAddress(key.PublicKey)
	w.mu.Lock()
	w.address = &addr
	w.mu.Unlock()
	return key, nil
}

// ImportKey seals privateKeyHex with the master key and stores it.
func (w *OperatorWalletService) ImportKey(ctx context.Context, privateKeyHex string) (common.Address, error) {
	key, err := cardcrypto.ParsePrivateKey(privateKeyHex)
	if err != nil {
		return common.Address{}, err
	}
	defer zeroKey(key)

	addr := crypto.PubkeyToAddress(key.PublicKey)
	normalized := "0x" + common.Bytes2Hex(crypto.FromECDSA(key))
	sealed, err := cardcrypto.Seal(w.masterKey, normalized)
	if err != nil {
		return common.Address{}, err
	}
	if err := w.settings.SetSettingValue(ctx, constants.SettingEncryptedWalletKey, sealed); err != nil {
		return common.Address{}, fmt.Errorf("failed to store wallet key: %w", err)
	}

	w.mu.Lock()
	w.address = &addr
	w.mu.Unlock()

	w.logger.Info("Internal wallet key imported", zap.String("address", addr.Hex()))
	return addr, nil
}

func zeroKey(key *ecdsa.PrivateKey) {
	if key != nil && key.D != nil {
		key.D.SetInt64(0)
	}
}
