package contracts

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// CardCreatedEvent is a decoded CardCreated log.
type CardCreatedEvent struct {
	CardID              *big.Int
	SlotID              common.Address
	Creator             common.Address
	TokenAddress        common.Address
	TokenAmount         *big.Int
	FeePaid             *big.Int
	Message             string
	EncryptedPrivateKey string
	Timestamp           *big.Int
	LogIndex            uint
}

type cardCreatedData struct {
	TokenAddress        common.Address
	TokenAmount         *big.Int
	FeePaid             *big.Int
	Message             string
	EncryptedPrivateKey string
	Timestamp           *big.Int
}

// ParseCardCreated extracts every CardCreated event emitted by contract, in log
// order. Logs from other addresses or with other topics are skipped.
func ParseCardCreated(logs []*types.Log, contract common.Address) ([]CardCreatedEvent, error) {
	parsed, err := UniVoucherABI()
	if err != nil {
		return nil, err
	}
	event := parsed.Events["CardCreated"]

	var events []CardCreatedEvent
	for _, lg := range logs {
		if lg == nil || lg.Address != contract || len(lg.Topics) == 0 || lg.Topics[0] != event.ID {
			continue
		}
		if len(lg.Topics) != 4 {
			return nil, fmt.Errorf("CardCreated log %d has %d topics, expected 4", lg.Index, len(lg.Topics))
		}

		var data cardCreatedData
		if err := parsed.UnpackIntoInterface(&data, "CardCreated", lg.Data); err != nil {
			return nil, fmt.Errorf("failed to decode CardCreated log %d: %w", lg.Index, err)
		}

		events = append(events, CardCreatedEvent{
			CardID:              new(big.Int).SetBytes(lg.Topics[1].Bytes()),
			SlotID:              common.BytesToAddress(lg.Topics[2].Bytes()),
			Creator:             common.BytesToAddress(lg.Topics[3].Bytes()),
			TokenAddress:        data.TokenAddress,
			TokenAmount:         data.TokenAmount,
			FeePaid:             data.FeePaid,
			Message:             data.Message,
			EncryptedPrivateKey: data.EncryptedPrivateKey,
			Timestamp:           data.Timestamp,
			LogIndex:            lg.Index,
		})
	}
	return events, nil
}
