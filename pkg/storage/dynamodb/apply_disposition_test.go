package dynamodb

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/finguard/risk-api/pkg/models"
	"github.com/finguard/risk-api/pkg/storage"
	"github.com/finguard/risk-api/pkg/storage/dynamodb/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func sampleAlert() *models.Alert {
	return &models.Alert{
		Id:            uuid.New().String(),
		UserId:        "user-1",
		TransactionId: "tx-1",
		Title:         "Transaction Confirmed",
		Message:       "You confirmed the transaction of $500.00 to Acme",
		Severity:      models.SeverityLow,
		Status:        models.AlertResolved,
		Date:          time.Now(),
	}
}

func TestApplyDisposition(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, TransactionsTableName: "transactions", AlertsTableName: "alerts"}

		mockClient.On("TransactWriteItems", mock.Anything, mock.MatchedBy(func(input *dynamodb.TransactWriteItemsInput) bool {
			if len(input.TransactItems) != 2 {
				return false
			}
			update := input.TransactItems[0].Update
			put := input.TransactItems[1].Put
			return update != nil && *update.TableName == "transactions" &&
				put != nil && *put.TableName == "alerts"
		})).Return(&dynamodb.TransactWriteItemsOutput{}, nil)

		err := store.ApplyDisposition(context.Background(), "tx-1", models.RiskSafe, false, sampleAlert())

		assert.NoError(t, err)
		mockClient.AssertNumberOfCalls(t, "TransactWriteItems", 1)
		mockClient.AssertExpectations(t)
	})

	t.Run("Conditional Check Failed Means Not Found", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, TransactionsTableName: "transactions", AlertsTableName: "alerts"}

		cancelled := &types.TransactionCanceledException{
			CancellationReasons: []types.CancellationReason{
				{Code: aws.String("ConditionalCheckFailed")},
				{Code: aws.String("None")},
			},
		}
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, cancelled)

		err := store.ApplyDisposition(context.Background(), "tx-1", models.RiskFraudulent, true, sampleAlert())

		assert.ErrorIs(t, err, storage.ErrTransactionNotFound)
		mockClient.AssertExpectations(t)
	})

	t.Run("Write Failure", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, TransactionsTableName: "transactions", AlertsTableName: "alerts"}

		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, errors.New("throttled"))

		err := store.ApplyDisposition(context.Background(), "tx-1", models.RiskSafe, false, sampleAlert())

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to execute disposition write")
		mockClient.AssertExpectations(t)
	})
}
