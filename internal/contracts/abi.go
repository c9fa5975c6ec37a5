package contracts

import (
	"fmt"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// UniVoucherAddress is the UniVoucher contract, deployed at the same address on
// every supported chain.
var UniVoucherAddress = common.HexToAddress("0x51553818203e38ce0E78e4dA05C07ac779ec5b58")

const uniVoucherABIJSON = `[
  {"type":"function","name":"depositETH","stateMutability":"payable","inputs":[
    {"name":"slotId","type":"address"},{"name":"amount","type":"uint256"},
    {"name":"message","type":"string"},{"name":"encryptedPrivateKey","type":"string"}],"outputs":[]},
  {"type":"function","name":"depositERC20","stateMutability":"nonpayable","inputs":[
    {"name":"slotId","type":"address"},{"name":"tokenAddress","type":"address"},{"name":"amount","type":"uint256"},
    {"name":"message","type":"string"},{"name":"encryptedPrivateKey","type":"string"}],"outputs":[]},
  {"type":"function","name":"bulkDepositETH","stateMutability":"payable","inputs":[
    {"name":"slotIds","type":"address[]"},{"name":"amounts","type":"uint256[]"},
    {"name":"messages","type":"string[]"},{"name":"encryptedPrivateKeys","type":"string[]"}],"outputs":[]},
  {"type":"function","name":"bulkDepositERC20","stateMutability":"nonpayable","inputs":[
    {"name":"slotIds","type":"address[]"},{"name":"tokenAddress","type":"address"},{"name":"amounts","type":"uint256[]"},
    {"name":"messages","type":"string[]"},{"name":"encryptedPrivateKeys","type":"string[]"}],"outputs":[]},
  {"type":"function","name":"calculateFee","stateMutability":"view","inputs":[
    {"name":"amount","type":"uint256"}],"outputs":[{"name":"","type":"uint256"}]},
  {"type":"event","name":"CardCreated","anonymous":false,"inputs":[
    {"name":"cardId","type":"uint256","indexed":true},
    {"name":"slotId","type":"address","indexed":true},
    {"name":"creator","type":"address","indexed":true},
    {"name":"tokenAddress","type":"address","indexed":false},
    {"name":"tokenAmount","type":"uint256","indexed":false},
    {"name":"feePaid","type":"uint256","indexed":false},
    {"name":"message","type":"string","indexed":false},
    {"name":"encryptedPrivateKey","type":"string","indexed":false},
    {"name":"timestamp","type":"uint256","indexed":false}]}
]`

const erc20ABIJSON = `[
  {"type":"function","name":"balanceOf","stateMutability":"view","inputs":[
    {"name":"account","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
  {"type":"function","name":"allowance","stateMutability":"view","inputs":[
    {"name":"owner","type":"address"},{"name":"spender","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
  {"type":"function","name":"approve","stateMutability":"nonpayable","inputs":[
    {"name":"spender","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]}
]`

var (
	parseOnce     sync.Once
	uniVoucherABI abi.ABI
	erc20ABI      abi.ABI
	parseErr      error
)

func load() error {
	parseOnce.Do(func() {
		uniVoucherABI, parseErr = abi.JSON(strings.NewReader(uniVoucherABIJSON))
		if parseErr != nil {
			parseErr = fmt.Errorf("failed to parse UniVoucher ABI: %w", parseErr)
			return
		}
		erc20ABI, parseErr = abi.JSON(strings.NewReader(erc20ABIJSON))
		if parseErr != nil {
			parseErr = fmt.Errorf("failed to parse ERC-20 ABI: %w", parseErr)
		}
	})
	return parseErr
}

// UniVoucherABI returns the parsed contract ABI.
func UniVoucherABI() (abi.ABI, error) {
	if err := load(); err != nil {
		return abi.ABI{}, err
	}
	return uniVoucherABI, nil
}

// ERC20ABI returns the parsed ERC-20 subset.
func ERC20ABI() (abi.ABI, error) {
	if err := load(); err != nil {
		return abi.ABI{}, err
	}
	return erc20ABI, nil
}
