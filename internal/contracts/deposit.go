package contracts

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/univoucher/univoucher-api/internal/types/business"
)

// DepositMethod is one of the four UniVoucher deposit entry points.
type DepositMethod int

const (
	DepositETH DepositMethod = iota
	DepositERC20
	BulkDepositETH
	BulkDepositERC20
)

// Name is the ABI method name.
func (m DepositMethod) Name() string {
	switch m {
	case DepositETH:
		return "depositETH"
	case DepositERC20:
		return "depositERC20"
	case BulkDepositETH:
		return "bulkDepositETH"
	case BulkDepositERC20:
		return "bulkDepositERC20"
	}
	return fmt.Sprintf("DepositMethod(%d)", int(m))
}

func (m DepositMethod) String() string { return m.Name() }

// Payable reports whether the method carries the deposit in msg.value.
func (m DepositMethod) Payable() bool {
	return m == DepositETH || m == BulkDepositETH
}

// IsBulk reports whether the method takes parallel arrays.
func (m DepositMethod) IsBulk() bool {
	return m == BulkDepositETH || m == BulkDepositERC20
}

// SelectDepositMethod picks the entry point for a token kind and batch kind.
func SelectDepositMethod(token business.TokenKind, batch business.BatchKind) (DepositMethod, error) {
	switch token {
	case business.TokenNative:
		switch batch {
		case business.BatchSingle:
			return DepositETH, nil
		case business.BatchBulk:
			return BulkDepositETH, nil
		}
	case business.TokenERC20:
		switch batch {
		case business.BatchSingle:
			return DepositERC20, nil
		case business.BatchBulk:
			return BulkDepositERC20, nil
		}
	}
	return 0, fmt.Errorf("no deposit method for token kind %s and batch kind %s", token, batch)
}

// DepositArgs holds the per-card parallel arrays of a deposit. Single methods
// require exactly one entry.
type DepositArgs struct {
	SlotIDs       []common.Address
	Token         common.Address
	Amounts       []*big.Int
	Messages      []string
	EncryptedKeys []string
}

// Len is the number of cards in the deposit.
func (a DepositArgs) Len() int {
	return len(a.SlotIDs)
}

func (a DepositArgs) check(bulk bool) error {
	n := len(a.SlotIDs)
	if n == 0 {
		return fmt.Errorf("deposit has no cards")
	}
	if len(a.Amounts) != n || len(a.Messages) != n || len(a.EncryptedKeys) != n {
		return fmt.Errorf("deposit arrays differ in length: slots=%d amounts=%d messages=%d keys=%d",
			n, len(a.Amounts), len(a.Messages), len(a.EncryptedKeys))
	}
	if !bulk && n != 1 {
		return fmt.Errorf("single deposit called with %d cards", n)
	}
	for i, amount := range a.Amounts {
		if amount == nil || amount.Sign() <= 0 {
			return fmt.Errorf("card %d has a non-positive amount", i)
		}
		if a.EncryptedKeys[i] == "" {
			return fmt.Errorf("card %d has no encrypted key", i)
		}
	}
	return nil
}

// TotalAmount sums the per-card amounts.
func (a DepositArgs) TotalAmount() *big.Int {
	total := new(big.Int)
	for _, amount := range a.Amounts {
		if amount != nil {
			total.Add(total, amount)
		}
	}
	return total
}

// PackDeposit ABI-encodes the call data for method.
func PackDeposit(method DepositMethod, args DepositArgs) ([]byte, error) {
	parsed, err := UniVoucherABI()
	if err != nil {
		return nil, err
	}
	if err := args.check(method.IsBulk()); err != nil {
		return nil, fmt.Errorf("%s: %w", method.Name(), err)
	}

	switch method {
	case DepositETH:
		return parsed.Pack(method.Name(), args.SlotIDs[0], args.Amounts[0], args.Messages[0], args.EncryptedKeys[0])
	case DepositERC20:
		return parsed.Pack(method.Name(), args.SlotIDs[0], args.Token, args.Amounts[0], args.Messages[0], args.EncryptedKeys[0])
	case BulkDepositETH:
		return parsed.Pack(method.Name(), args.SlotIDs, args.Amounts, args.Messages, args.EncryptedKeys)
	case BulkDepositERC20:
		return parsed.Pack(method.Name(), args.SlotIDs, args.Token, args.Amounts, args.Messages, args.EncryptedKeys)
	}
	return nil, fmt.Errorf("unknown deposit method %d", int(method))
}

// PackCalculateFee encodes calculateFee(amount).
func PackCalculateFee(amount *big.Int) ([]byte, error) {
	parsed, err := UniVoucherABI()
	if err != nil {
		return nil, err
	}
	return parsed.Pack("calculateFee", amount)
}

// UnpackCalculateFee decodes the calculateFee return value.
func UnpackCalculateFee(data []byte) (*big.Int, error) {
	parsed, err := UniVoucherABI()
	if err != nil {
		return nil, err
	}
	return unpackUint256(parsed.Unpack, "calculateFee", data)
}
