package blockchain_test

import (
	"context"
	"errors"
	"math/big"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/univoucher/univoucher-api/internal/client/blockchain"
	"github.com/univoucher/univoucher-api/internal/contracts"
	"github.com/univoucher/univoucher-api/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.InitLogger("test")
}

type fakeEthClient struct {
	mu sync.Mutex

	chainID      *big.Int
	balance      *big.Int
	callResult   []byte
	callErr      error
	gasPrice     *big.Int
	tipCap       *big.Int
	baseFee      *big.Int
	gasEstimate  uint64
	nonce        uint64
	sent         []*types.Transaction
	receipt      *types.Receipt
	receiptAfter int
	receiptCalls int
	lastCall     ethereum.CallMsg
	closed       bool
}

func (f *fakeEthClient) ChainID(ctx context.Context) (*big.Int, error) { return f.chainID, nil }
func (f *fakeEthClient) BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error) {
	return f.balance, nil
}
func (f *fakeEthClient) CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastCall = msg
	return f.callResult, f.callErr
}
func (f *fakeEthClient) SuggestGasPrice(ctx context.Context) (*big.Int, error) { return f.gasPrice, nil }
func (f *fakeEthClient) SuggestGasTipCap(ctx context.Context) (*big.Int, error) { return f.tipCap, nil }
func (f *fakeEthClient) HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error) {
	return &types.Header{Number: big.NewInt(100), BaseFee: f.baseFee}, nil
}
func (f *fakeEthClient) EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error) {
	return f.gasEstimate, nil
}
func (f *fakeEthClient) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	return f.nonce, nil
}
func (f *fakeEthClient) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, tx)
	return nil
}
func (f *fakeEthClient) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.receiptCalls++
	if f.receipt == nil || f.receiptCalls <= f.receiptAfter {
		return nil, ethereum.NotFound
	}
	return f.receipt, nil
}
func (f *fakeEthClient) Close() { f.closed = true }

func newGateway(fake *fakeEthClient, dialedURLs *[]string) *blockchain.Gateway {
	return blockchain.NewGateway(
		func(context.Context) (string, error) { return "test-key", nil },
		blockchain.WithDialer(func(ctx context.Context, rawURL string) (blockchain.EthClient, error) {
			if dialedURLs != nil {
				*dialedURLs = append(*dialedURLs, rawURL)
			}
			return fake, nil
		}),
		blockchain.WithReceiptWait(time.Millisecond, 50*time.Millisecond),
	)
}

func TestRPCURL(t *testing.T) {
	url, err := blockchain.RPCURL(137, "abc")
	require.NoError(t, err)
	assert.Equal(t, "https://polygon-mainnet.g.alchemy.com/v2/abc", url)

	_, err = blockchain.RPCURL(5, "abc")
	assert.Error(t, err)

	_, err = blockchain.RPCURL(1, "")
	assert.Error(t, err)

	ids := []int64{}
	for _, c := range blockchain.SupportedChains() {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []int64{1, 10, 56, 137, 8453, 42161, 43114}, ids)
}

func TestGateway_ReusesClientPerChain(t *testing.T) {
	fake := &fakeEthClient{balance: big.NewInt(42), gasPrice: big.NewInt(30_000_000_000)}
	var dialed []string
	gw := newGateway(fake, &dialed)

	balance, err := gw.GetNativeBalance(context.Background(), 1, common.HexToAddress("0x01"))
	require.NoError(t, err)
	assert.Equal(t, int64(42), balance.Int64())

	price, err := gw.GetGasPrice(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(30_000_000_000), price.Int64())

	require.Len(t, dialed, 1)
	assert.True(t, strings.HasPrefix(dialed[0], "https://eth-mainnet.g.alchemy.com/v2/"))

	_, err = gw.GetGasPrice(context.Background(), 99999)
	assert.Error(t, err)
}

func TestGateway_TokenBalanceAndAllowance(t *testing.T) {
	fake := &fakeEthClient{callResult: common.LeftPadBytes(big.NewInt(5_000_000).Bytes(), 32)}
	gw := newGateway(fake, nil)

	owner := common.HexToAddress("0x1111111111111111111111111111111111111111")
	token := common.HexToAddress("0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48")

	balance, err := gw.GetTokenBalance(context.Background(), 1, owner, token)
	require.NoError(t, err)
	assert.Equal(t, int64(5_000_000), balance.Int64())
	assert.Equal(t, token, *fake.lastCall.To)

	allowance, err := gw.GetAllowance(context.Background(), 1, token, owner, contracts.UniVoucherAddress)
	require.NoError(t, err)
	assert.Equal(t, int64(5_000_000), allowance.Int64())

	fake.callErr = errors.New("execution reverted")
	_, err = gw.GetAllowance(context.Background(), 1, token, owner, contracts.UniVoucherAddress)
	var rpcErr *blockchain.RpcError
	require.True(t, errors.As(err, &rpcErr))
	assert.Equal(t, "eth_call", rpcErr.Method)
	assert.Contains(t, rpcErr.Message, "execution reverted")
}

func TestGateway_SendTransactionUsesDynamicFeesWhenChainHasBaseFee(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	fake := &fakeEthClient{nonce: 3, baseFee: big.NewInt(100), tipCap: big.NewInt(2)}
	gw := newGateway(fake, nil)

	_, err = gw.SendTransaction(context.Background(), 1, key, blockchain.Call{
		To:   contracts.UniVoucherAddress,
		Data: []byte{0x01},
	}, 100000, big.NewInt(150))
	require.NoError(t, err)

	require.Len(t, fake.sent, 1)
	tx := fake.sent[0]
	assert.Equal(t, uint8(types.DynamicFeeTxType), tx.Type())
	assert.Equal(t, int64(2), tx.GasTipCap().Int64())
	assert.Equal(t, int64(202), tx.GasFeeCap().Int64())
	assert.Equal(t, int64(1), tx.ChainId().Int64())

	fake.sent = nil
	_, err = gw.SendTransaction(context.Background(), 1, key, blockchain.Call{To: contracts.UniVoucherAddress}, 100000, big.NewInt(500))
	require.NoError(t, err)
	assert.Equal(t, int64(500), fake.sent[0].GasFeeCap().Int64())

	sender, err := types.Sender(types.LatestSignerForChainID(big.NewInt(1)), fake.sent[0])
	require.NoError(t, err)
	assert.Equal(t, crypto.PubkeyToAddress(key.PublicKey), sender)
}

func TestGateway_SendTransaction(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	fake := &fakeEthClient{nonce: 7}
	gw := newGateway(fake, nil)

	hash, err := gw.SendTransaction(context.Background(), 137, key, blockchain.Call{
		To:    contracts.UniVoucherAddress,
		Data:  []byte{0x01, 0x02},
		Value: big.NewInt(1000),
	}, 210000, big.NewInt(50))
	require.NoError(t, err)

	require.Len(t, fake.sent, 1)
	tx := fake.sent[0]
	assert.Equal(t, hash, tx.Hash())
	assert.Equal(t, uint64(7), tx.Nonce())
	assert.Equal(t, uint64(210000), tx.Gas())
	assert.Equal(t, int64(1000), tx.Value().Int64())
	assert.Equal(t, int64(137), tx.ChainId().Int64())
	assert.Equal(t, uint8(types.LegacyTxType), tx.Type())

	sender, err := types.Sender(types.LatestSignerForChainID(big.NewInt(137)), tx)
	require.NoError(t, err)
	assert.Equal(t, crypto.PubkeyToAddress(key.PublicKey), sender)
}

func TestGateway_WaitForReceipt(t *testing.T) {
	hash := common.HexToHash("0xabc")

	t.Run("mined after polling", func(t *testing.T) {
		fake := &fakeEthClient{receipt: &types.Receipt{Status: types.ReceiptStatusSuccessful, TxHash: hash}, receiptAfter: 2}
		receipt, err := newGateway(fake, nil).WaitForReceipt(context.Background(), 1, hash)
		require.NoError(t, err)
		assert.Equal(t, hash, receipt.TxHash)
		assert.Equal(t, 3, fake.receiptCalls)
	})

	t.Run("reverted", func(t *testing.T) {
		fake := &fakeEthClient{receipt: &types.Receipt{Status: types.ReceiptStatusFailed, TxHash: hash}}
		_, err := newGateway(fake, nil).WaitForReceipt(context.Background(), 1, hash)
		var rpcErr *blockchain.RpcError
		require.True(t, errors.As(err, &rpcErr))
		assert.Contains(t, rpcErr.Message, "reverted")
	})

	t.Run("still pending", func(t *testing.T) {
		fake := &fakeEthClient{}
		_, err := newGateway(fake, nil).WaitForReceipt(context.Background(), 1, hash)
		var pending *blockchain.ReceiptPendingError
		require.True(t, errors.As(err, &pending))
		assert.Equal(t, hash, pending.TxHash)
	})
}

func TestGateway_TestConnection(t *testing.T) {
	fake := &fakeEthClient{chainID: big.NewInt(10)}
	gw := newGateway(fake, nil)

	require.NoError(t, gw.TestConnection(context.Background(), 10, "candidate"))
	assert.True(t, fake.closed)

	assert.Error(t, gw.TestConnection(context.Background(), 1, "candidate"))
	assert.Error(t, gw.TestConnection(context.Background(), 1, ""))
}
