package services_test

import (
	"context"
	"crypto/ecdsa"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/univoucher/univoucher-api/internal/cardcrypto"
	"github.com/univoucher/univoucher-api/internal/constants"
	"github.com/univoucher/univoucher-api/internal/db"
	"github.com/univoucher/univoucher-api/internal/services"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memorySettings struct {
	mu     sync.Mutex
	values map[string]string
}

func newMemorySettings() *memorySettings {
	return &memorySettings{values: make(map[string]string)}
}

func (m *memorySettings) GetSettingValue(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	if !ok {
		return "", db.ErrSettingNotFound
	}
	return v, nil
}

func (m *memorySettings) SetSettingValue(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

var testMasterKey = []byte("0123456789abcdef0123456789abcdef")

func TestOperatorWallet_NotConfigured(t *testing.T) {
	wallet := services.NewOperatorWalletService(newMemorySettings(), testMasterKey)

	_, err := wallet.Address(context.Background())
	assert.ErrorIs(t, err, services.ErrWalletNotConfigured)
}

func TestOperatorWallet_ImportAndSign(t *testing.T) {
	settings := newMemorySettings()
	wallet := services.NewOperatorWalletService(settings, testMasterKey)
	ctx := context.Background()

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	keyHex := hexutil.Encode(crypto.FromECDSA(key))
	want := crypto.PubkeyToAddress(key.PublicKey)

	addr, err := wallet.ImportKey(ctx, keyHex)
	require.NoError(t, err)
	assert.Equal(t, want, addr)

	stored := settings.values[constants.SettingEncryptedWalletKey]
	require.NotEmpty(t, stored)
	assert.NotContains(t, stored, keyHex[2:])

	opened, err := cardcrypto.Open(testMasterKey, stored)
	require.NoError(t, err)
	assert.Equal(t, keyHex, opened)

	var seen *ecdsa.PrivateKey
	err = wallet.WithSigner(ctx, func(signer *ecdsa.PrivateKey) error {
		seen = signer
		assert.Equal(t, want, crypto.PubkeyToAddress(signer.PublicKey))
		return nil
	})
	require.NoError(t, err)
	assert.Zero(t, seen.D.Sign(), "signing key must be cleared after use")

	fresh := services.NewOperatorWalletService(settings, testMasterKey)
	addr, err = fresh.Address(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, addr)
}

func TestOperatorWallet_WrongMasterKey(t *testing.T) {
	settings := newMemorySettings()
	ctx := context.Background()

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	_, err = services.NewOperatorWalletService(settings, testMasterKey).ImportKey(ctx, hexutil.Encode(crypto.FromECDSA(key)))
	require.NoError(t, err)

	other := services.NewOperatorWalletService(settings, []byte("fedcba9876543210fedcba9876543210"))
	err = other.WithSigner(ctx, func(*ecdsa.PrivateKey) error { return nil })
	assert.Error(t, err)
}

func TestOperatorWallet_ImportRejectsGarbage(t *testing.T) {
	wallet := services.NewOperatorWalletService(newMemorySettings(), testMasterKey)
	_, err := wallet.ImportKey(context.Background(), "not-a-key")
	assert.Error(t, err)
}

func importedWallet(t *testing.T) *services.OperatorWalletService {
	t.Helper()
	wallet := services.NewOperatorWalletService(newMemorySettings(), testMasterKey)
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	_, err = wallet.ImportKey(context.Background(), hexutil.Encode(crypto.FromECDSA(key)))
	require.NoError(t, err)
	return wallet
}

func TestOperatorWallet_SignersRunOneAtATime(t *testing.T) {
	wallet := importedWallet(t)
	ctx := context.Background()

	var inside, maxInside int32
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := wallet.WithSigner(ctx, func(*ecdsa.PrivateKey) error {
				n := atomic.AddInt32(&inside, 1)
				for {
					seen := atomic.LoadInt32(&maxInside)
					if n <= seen || atomic.CompareAndSwapInt32(&maxInside, seen, n) {
						break
					}
				}
				time.Sleep(50 * time.Millisecond)
				atomic.AddInt32(&inside, -1)
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&maxInside))
}

func TestOperatorWallet_WaitingSignerHonorsContext(t *testing.T) {
	wallet := importedWallet(t)

	entered := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		done <- wallet.WithSigner(context.Background(), func(*ecdsa.PrivateKey) error {
			close(entered)
			<-release
			return nil
		})
	}()
	<-entered

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	called := false
	err := wallet.WithSigner(ctx, func(*ecdsa.PrivateKey) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, called)

	// the address is served without waiting for the signer
	_, err = wallet.Address(context.Background())
	assert.NoError(t, err)

	close(release)
	require.NoError(t, <-done)
}
