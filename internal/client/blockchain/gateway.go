package blockchain

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/univoucher/univoucher-api/internal/contracts"
	"github.com/univoucher/univoucher-api/internal/logger"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"
)

const (
	DefaultCallTimeout    = 10 * time.Second
	DefaultReceiptPoll    = 2 * time.Second
	DefaultReceiptTimeout = 5 * time.Minute
)

// EthClient is the subset of ethclient.Client the gateway uses.
type EthClient interface {
	ChainID(ctx context.Context) (*big.Int, error)
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	SuggestGasTipCap(ctx context.Context) (*big.Int, error)
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)
	EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	Close()
}

// Dialer opens a client for an RPC URL.
type Dialer func(ctx context.Context, rawURL string) (EthClient, error)

// APIKeySource returns the current provider API key.
type APIKeySource func(ctx context.Context) (string, error)

func dialEthClient(ctx context.Context, rawURL string) (EthClient, error) {
	client, err := ethclient.DialContext(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	return client, nil
}

// Call is a contract call or value transfer.
type Call struct {
	From  common.Address
	To    common.Address
	Data  []byte
	Value *big.Int
}

func (c Call) msg() ethereum.CallMsg {
	to := c.To
	return ethereum.CallMsg{From: c.From, To: &to, Data: c.Data, Value: c.Value}
}

type cachedClient struct {
	client EthClient
	apiKey string
}

// Gateway issues JSON-RPC calls against one lazily dialled client per chain.
type Gateway struct {
	keySource      APIKeySource
	dial           Dialer
	logger         *zap.Logger
	callTimeout    time.Duration
	receiptPoll    time.Duration
	receiptTimeout time.Duration

	mu      sync.Mutex
	clients map[int64]cachedClient
}

// GatewayOption configures a Gateway.
type GatewayOption func(*Gateway)

func WithDialer(d Dialer) GatewayOption {
	return func(g *Gateway) { g.dial = d }
}

// WithReceiptWait sets the receipt poll interval and the overall wait limit.
func WithReceiptWait(poll, limit time.Duration) GatewayOption {
	return func(g *Gateway) {
		g.receiptPoll = poll
		g.receiptTimeout = limit
	}
}

// NewGateway creates a gateway. keySource is consulted on every dial so that
// a changed API key takes effect without a restart.
func NewGateway(keySource APIKeySource, options ...GatewayOption) *Gateway {
	g := &Gateway{
		keySource:      keySource,
		dial:           dialEthClient,
		logger:         logger.Log,
		callTimeout:    DefaultCallTimeout,
		receiptPoll:    DefaultReceiptPoll,
		receiptTimeout: DefaultReceiptTimeout,
		clients:        make(map[int64]cachedClient),
	}
	for _, option := range options {
		option(g)
	}
	return g
}

func (g *Gateway) client(ctx context.Context, chainID int64) (EthClient, error) {
	if _, ok := LookupChain(chainID); !ok {
		return nil, fmt.Errorf("unsupported chain id %d", chainID)
	}
	apiKey, err := g.keySource(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load RPC API key: %w", err)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if cached, ok := g.clients[chainID]; ok {
		if cached.apiKey == apiKey {
			return cached.client, nil
		}
		cached.client.Close()
		delete(g.clients, chainID)
	}

	rpcURL, err := RPCURL(chainID, apiKey)
	if err != nil {
		return nil, err
	}

	dialCtx, cancel := context.WithTimeout(ctx, g.callTimeout)
	defer cancel()
	client, err := g.dial(dialCtx, rpcURL)
	if err != nil {
		// the URL embeds the key and is deliberately not logged
		g.logger.Error("Failed to connect to network RPC", zap.Int64("chain_id", chainID), zap.Error(err))
		return nil, newRpcError(chainID, "dial", err)
	}

	g.clients[chainID] = cachedClient{client: client, apiKey: apiKey}
	g.logger.Info("Connected to network RPC", zap.Int64("chain_id", chainID))
	return client, nil
}

func (g *Gateway) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, g.callTimeout)
}

// GetNativeBalance returns the native balance of address in wei.
func (g *Gateway) GetNativeBalance(ctx context.Context, chainID int64, address common.Address) (*big.Int, error) {
	client, err := g.client(ctx, chainID)
	if err != nil {
		return nil, err
	}
	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	balance, err := client.BalanceAt(ctx, address, nil)
	if err != nil {
		return nil, newRpcError(chainID, "eth_getBalance", err)
	}
	return balance, nil
}

// GetTokenBalance returns the ERC-20 balance of address in smallest units.
func (g *Gateway) GetTokenBalance(ctx context.Context, chainID int64, address, token common.Address) (*big.Int, error) {
	data, err := contracts.PackBalanceOf(address)
	if err != nil {
		return nil, err
	}
	out, err := g.Call(ctx, chainID, Call{From: address, To: token, Data: data})
	if err != nil {
		return nil, err
	}
	balance, err := contracts.UnpackERC20Uint256("balanceOf", out)
	if err != nil {
		return nil, newRpcError(chainID, "balanceOf", err)
	}
	return balance, nil
}

// GetAllowance returns allowance(owner, spender) on token.
func (g *Gateway) GetAllowance(ctx context.Context, chainID int64, token, owner, spender common.Address) (*big.Int, error) {
	data, err := contracts.PackAllowance(owner, spender)
	if err != nil {
		return nil, err
	}
	out, err := g.Call(ctx, chainID, Call{From: owner, To: token, Data: data})
	if err != nil {
		return nil, err
	}
	allowance, err := contracts.UnpackERC20Uint256("allowance", out)
	if err != nil {
		return nil, newRpcError(chainID, "allowance", err)
	}
	return allowance, nil
}

// GetGasPrice returns the provider's suggested gas price in wei.
func (g *Gateway) GetGasPrice(ctx context.Context, chainID int64) (*big.Int, error) {
	client, err := g.client(ctx, chainID)
	if err != nil {
		return nil, err
	}
	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	price, err := client.SuggestGasPrice(ctx)
	if err != nil {
		return nil, newRpcError(chainID, "eth_gasPrice", err)
	}
	return price, nil
}

// EstimateGas returns the raw provider estimate, without any buffer.
func (g *Gateway) EstimateGas(ctx context.Context, chainID int64, call Call) (uint64, error) {
	client, err := g.client(ctx, chainID)
	if err != nil {
		return 0, err
	}
	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	gas, err := client.EstimateGas(ctx, call.msg())
	if err != nil {
		return 0, newRpcError(chainID, "eth_estimateGas", err)
	}
	return gas, nil
}

// Call performs an eth_call against the latest block.
func (g *Gateway) Call(ctx context.Context, chainID int64, call Call) ([]byte, error) {
	client, err := g.client(ctx, chainID)
	if err != nil {
		return nil, err
	}
	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	out, err := client.CallContract(ctx, call.msg(), nil)
	if err != nil {
		return nil, newRpcError(chainID, "eth_call", err)
	}
	return out, nil
}

// SendTransaction signs and broadcasts a transaction from the key's address.
// call.From is ignored. Chains whose latest header carries a base fee get an
// EIP-1559 transaction with a fee cap of max(gasPrice, 2*baseFee+tip); other
// chains get a legacy transaction at gasPrice.
func (g *Gateway) SendTransaction(ctx context.Context, chainID int64, key *ecdsa.PrivateKey, call Call, gasLimit uint64, gasPrice *big.Int) (common.Hash, error) {
	if key == nil {
		return common.Hash{}, fmt.Errorf("no signing key")
	}
	client, err := g.client(ctx, chainID)
	if err != nil {
		return common.Hash{}, err
	}
	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	from := crypto.PubkeyToAddress(key.PublicKey)
	nonce, err := client.PendingNonceAt(ctx, from)
	if err != nil {
		return common.Hash{}, newRpcError(chainID, "eth_getTransactionCount", err)
	}

	value := call.Value
	if value == nil {
		value = new(big.Int)
	}
	to := call.To
	header, err := client.HeaderByNumber(ctx, nil)
	if err != nil {
		return common.Hash{}, newRpcError(chainID, "eth_getBlockByNumber", err)
	}

	var tx *types.Transaction
	if header.BaseFee != nil {
		tip, err := client.SuggestGasTipCap(ctx)
		if err != nil {
			return common.Hash{}, newRpcError(chainID, "eth_maxPriorityFeePerGas", err)
		}
		feeCap := new(big.Int).Add(new(big.Int).Mul(header.BaseFee, big.NewInt(2)), tip)
		if gasPrice != nil && gasPrice.Cmp(feeCap) > 0 {
			feeCap = new(big.Int).Set(gasPrice)
		}
		tx = types.NewTx(&types.DynamicFeeTx{
			ChainID:   big.NewInt(chainID),
			Nonce:     nonce,
			GasTipCap: tip,
			GasFeeCap: feeCap,
			Gas:       gasLimit,
			To:        &to,
			Value:     value,
			Data:      call.Data,
		})
	} else {
		tx = types.NewTx(&types.LegacyTx{
			Nonce:    nonce,
			GasPrice: gasPrice,
			Gas:      gasLimit,
			To:       &to,
			Value:    value,
			Data:     call.Data,
		})
	}

	signed, err := types.SignTx(tx, types.LatestSignerForChainID(big.NewInt(chainID)), key)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to sign transaction: %w", err)
	}

	if err := client.SendTransaction(ctx, signed); err != nil {
		return common.Hash{}, newRpcError(chainID, "eth_sendRawTransaction", err)
	}

	g.logger.Info("Transaction broadcast",
		zap.Int64("chain_id", chainID),
		zap.String("tx_hash", signed.Hash().Hex()),
		zap.String("from", from.Hex()),
		zap.String("to", to.Hex()),
		zap.Uint8("tx_type", signed.Type()),
		zap.Uint64("gas_limit", gasLimit))

	return signed.Hash(), nil
}

// WaitForReceipt polls until the transaction is mined. It returns
// *ReceiptPendingError when the wait limit passes, and *RpcError when the
// transaction reverted.
func (g *Gateway) WaitForReceipt(ctx context.Context, chainID int64, hash common.Hash) (*types.Receipt, error) {
	client, err := g.client(ctx, chainID)
	if err != nil {
		return nil, err
	}

	waitCtx, cancel := context.WithTimeout(ctx, g.receiptTimeout)
	defer cancel()

	ticker := time.NewTicker(g.receiptPoll)
	defer ticker.Stop()

	for {
		callCtx, callCancel := g.withTimeout(waitCtx)
		receipt, err := client.TransactionReceipt(callCtx, hash)
		callCancel()

		switch {
		case err == nil && receipt != nil:
			if receipt.Status == types.ReceiptStatusFailed {
				return receipt, &RpcError{ChainID: chainID, Method: "eth_getTransactionReceipt", Message: fmt.Sprintf("transaction %s reverted", hash.Hex())}
			}
			return receipt, nil
		case err != nil && !errors.Is(err, ethereum.NotFound) && waitCtx.Err() == nil:
			return nil, newRpcError(chainID, "eth_getTransactionReceipt", err)
		}

		select {
		case <-waitCtx.Done():
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			g.logger.Warn("Receipt wait limit reached", zap.Int64("chain_id", chainID), zap.String("tx_hash", hash.Hex()))
			return nil, &ReceiptPendingError{ChainID: chainID, TxHash: hash}
		case <-ticker.C:
		}
	}
}

// TestConnection checks that the provider answers for chainID with the given
// API key and reports the expected chain id. The key is not cached.
func (g *Gateway) TestConnection(ctx context.Context, chainID int64, apiKey string) error {
	rpcURL, err := RPCURL(chainID, apiKey)
	if err != nil {
		return err
	}
	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	client, err := g.dial(ctx, rpcURL)
	if err != nil {
		return newRpcError(chainID, "dial", err)
	}
	defer client.Close()

	got, err := client.ChainID(ctx)
	if err != nil {
		return newRpcError(chainID, "eth_chainId", err)
	}
	if got.Int64() != chainID {
		return &RpcError{ChainID: chainID, Method: "eth_chainId", Message: fmt.Sprintf("provider reports chain %s", got)}
	}
	return nil
}

// Close closes every cached client.
func (g *Gateway) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	for id, cached := range g.clients {
		cached.client.Close()
		delete(g.clients, id)
	}
}
