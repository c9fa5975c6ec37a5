package aws

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/univoucher/univoucher-api/internal/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.InitLogger("test")
}

type fakeSecrets struct {
	values map[string]string
	err    error
}

func (f *fakeSecrets) GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	v, ok := f.values[aws.ToString(params.SecretId)]
	if !ok {
		return nil, errors.New("ResourceNotFoundException")
	}
	return &secretsmanager.GetSecretValueOutput{SecretString: aws.String(v)}, nil
}

func clientWithEnv(svc SecretsAPI, env map[string]string) *SecretsManagerClient {
	c := NewSecretsManagerClientWithAPI(svc)
	c.getenv = func(k string) string { return env[k] }
	return c
}

func TestGetSecretString(t *testing.T) {
	svc := &fakeSecrets{values: map[string]string{"arn:nonce": "from-sm"}}

	tests := []struct {
		name    string
		svc     SecretsAPI
		env     map[string]string
		want    string
		wantErr bool
	}{
		{"secrets manager wins", svc, map[string]string{"AJAX_NONCE_ARN": "arn:nonce", "AJAX_NONCE": "from-env"}, "from-sm", false},
		{"falls back when fetch fails", &fakeSecrets{err: errors.New("denied")}, map[string]string{"AJAX_NONCE_ARN": "arn:nonce", "AJAX_NONCE": "from-env"}, "from-env", false},
		{"no arn", svc, map[string]string{"AJAX_NONCE": "from-env"}, "from-env", false},
		{"nothing configured", nil, map[string]string{}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := clientWithEnv(tt.svc, tt.env).GetSecretString(context.Background(), "AJAX_NONCE_ARN", "AJAX_NONCE")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetSecretJSON(t *testing.T) {
	svc := &fakeSecrets{values: map[string]string{
		"arn:db": `{"username":"uv","password":"pw","host":"db.internal","port":5433,"dbname":"univoucher"}`,
	}}
	c := clientWithEnv(svc, map[string]string{"DATABASE_URL_ARN": "arn:db"})

	var secret DatabaseSecret
	require.NoError(t, c.GetSecretJSON(context.Background(), "DATABASE_URL_ARN", "DATABASE_URL", &secret))
	assert.Equal(t, "postgres://uv:pw@db.internal:5433/univoucher?sslmode=require", secret.DSN(""))

	bad := clientWithEnv(nil, map[string]string{"DATABASE_URL": "postgres://not-json"})
	assert.Error(t, bad.GetSecretJSON(context.Background(), "DATABASE_URL_ARN", "DATABASE_URL", &secret))
}

type fakeSQS struct {
	input *sqs.SendMessageInput
	err   error
}

func (f *fakeSQS) SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	f.input = params
	return &sqs.SendMessageOutput{}, f.err
}

func TestPublishPartialMint(t *testing.T) {
	fake := &fakeSQS{}
	queue := NewRecoveryQueueWithAPI(fake, "https://sqs.us-east-1.amazonaws.com/123/recovery")

	record := PartialMintRecord{
		SessionID:       "s-1",
		ChainID:         1,
		TxHash:          "0xabc",
		ResolvedCardIDs: []string{"102000001"},
		UnresolvedSlots: []string{"0x2222222222222222222222222222222222222222"},
		Reason:          "card id lookup failed",
		OccurredAt:      time.Unix(1700000000, 0).UTC(),
	}
	require.NoError(t, queue.PublishPartialMint(context.Background(), record))

	require.NotNil(t, fake.input)
	assert.Equal(t, "https://sqs.us-east-1.amazonaws.com/123/recovery", aws.ToString(fake.input.QueueUrl))
	assert.Equal(t, "0xabc", aws.ToString(fake.input.MessageAttributes["TxHash"].StringValue))

	var decoded PartialMintRecord
	require.NoError(t, json.Unmarshal([]byte(aws.ToString(fake.input.MessageBody)), &decoded))
	assert.Equal(t, record, decoded)

	fake.err = errors.New("throttled")
	assert.Error(t, queue.PublishPartialMint(context.Background(), record))
}
