package aws

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/univoucher/univoucher-api/internal/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"go.uber.org/zap"
)

// SQSAPI is the part of the SQS client used here.
type SQSAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// PartialMintRecord describes a mined deposit whose card ids could not all be
// resolved. It never carries card secrets or keys.
type PartialMintRecord struct {
	SessionID       string    `json:"session_id"`
	ProductID       int64     `json:"product_id"`
	ChainID         int64     `json:"chain_id"`
	TxHash          string    `json:"tx_hash"`
	ExplorerURL     string    `json:"explorer_url,omitempty"`
	ResolvedCardIDs []string  `json:"resolved_card_ids"`
	UnresolvedSlots []string  `json:"unresolved_slots"`
	Pending         bool      `json:"pending"`
	Reason          string    `json:"reason"`
	OccurredAt      time.Time `json:"occurred_at"`
}

// RecoveryQueue publishes partial mints for manual follow-up.
type RecoveryQueue struct {
	client   SQSAPI
	queueURL string
}

// NewRecoveryQueue loads the default AWS config and targets queueURL.
func NewRecoveryQueue(ctx context.Context, queueURL string) (*RecoveryQueue, error) {
	if queueURL == "" {
		return nil, fmt.Errorf("recovery queue URL is empty")
	}
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}
	return NewRecoveryQueueWithAPI(sqs.NewFromConfig(cfg), queueURL), nil
}

func NewRecoveryQueueWithAPI(client SQSAPI, queueURL string) *RecoveryQueue {
	return &RecoveryQueue{client: client, queueURL: queueURL}
}

// PublishPartialMint sends record to the queue.
func (q *RecoveryQueue) PublishPartialMint(ctx context.Context, record PartialMintRecord) error {
	body, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal recovery record: %w", err)
	}

	_, err = q.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(q.queueURL),
		MessageBody: aws.String(string(body)),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"ChainId": {
				DataType:    aws.String("Number"),
				StringValue: aws.String(strconv.FormatInt(record.ChainID, 10)),
			},
			"TxHash": {
				DataType:    aws.String("String"),
				StringValue: aws.String(record.TxHash),
			},
		},
	})
	if err != nil {
		logger.Error("Failed to publish partial mint to recovery queue",
			zap.String("tx_hash", record.TxHash),
			zap.Error(err))
		return fmt.Errorf("failed to send recovery message: %w", err)
	}

	logger.Info("Partial mint published to recovery queue",
		zap.String("tx_hash", record.TxHash),
		zap.Int("unresolved", len(record.UnresolvedSlots)))
	return nil
}
