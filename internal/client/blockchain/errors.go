package blockchain

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rpc"
)

// RpcError carries a provider failure. It is never retried automatically.
type RpcError struct {
	ChainID int64
	Method  string
	Code    int
	Message string
	Err     error
}

func (e *RpcError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("rpc %s on chain %d failed (code %d): %s", e.Method, e.ChainID, e.Code, e.Message)
	}
	return fmt.Sprintf("rpc %s on chain %d failed: %s", e.Method, e.ChainID, e.Message)
}

func (e *RpcError) Unwrap() error {
	return e.Err
}

// ReceiptPendingError means the transaction was broadcast but no receipt was
// seen before the wait limit. The transaction may still be mined.
type ReceiptPendingError struct {
	ChainID int64
	TxHash  common.Hash
}

func (e *ReceiptPendingError) Error() string {
	return fmt.Sprintf("transaction %s on chain %d is still pending", e.TxHash.Hex(), e.ChainID)
}

func newRpcError(chainID int64, method string, err error) *RpcError {
	rpcErr := &RpcError{ChainID: chainID, Method: method, Message: err.Error(), Err: err}
	var coded rpc.Error
	if errors.As(err, &coded) {
		rpcErr.Code = coded.ErrorCode()
	}
	return rpcErr
}
