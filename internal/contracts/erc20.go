package contracts

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

func PackBalanceOf(account common.Address) ([]byte, error) {
	parsed, err := ERC20ABI()
	if err != nil {
		return nil, err
	}
	return parsed.Pack("balanceOf", account)
}

func PackAllowance(owner, spender common.Address) ([]byte, error) {
	parsed, err := ERC20ABI()
	if err != nil {
		return nil, err
	}
	return parsed.Pack("allowance", owner, spender)
}

func PackApprove(spender common.Address, amount *big.Int) ([]byte, error) {
	parsed, err := ERC20ABI()
	if err != nil {
		return nil, err
	}
	return parsed.Pack("approve", spender, amount)
}

// UnpackERC20Uint256 decodes the single uint256 returned by balanceOf or allowance.
func UnpackERC20Uint256(method string, data []byte) (*big.Int, error) {
	parsed, err := ERC20ABI()
	if err != nil {
		return nil, err
	}
	return unpackUint256(parsed.Unpack, method, data)
}

func unpackUint256(unpack func(string, []byte) ([]interface{}, error), method string, data []byte) (*big.Int, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%s returned no data", method)
	}
	out, err := unpack(method, data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s result: %w", method, err)
	}
	if len(out) != 1 {
		return nil, fmt.Errorf("%s returned %d values", method, len(out))
	}
	v, ok := out[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("%s returned %T, expected uint256", method, out[0])
	}
	return v, nil
}
