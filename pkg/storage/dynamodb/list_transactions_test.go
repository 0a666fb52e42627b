package dynamodb

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/finguard/risk-api/pkg/models"
	"github.com/finguard/risk-api/pkg/storage/dynamodb/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func marshalTxs(t *testing.T, txs []models.Transaction) []map[string]types.AttributeValue {
	var avs []map[string]types.AttributeValue
	for _, tx := range txs {
		av, err := attributevalue.MarshalMap(tx)
		assert.NoError(t, err)
		avs = append(avs, av)
	}
	return avs
}

func TestListTransactionsByUserID(t *testing.T) {
	userID := "test-user"
	txs := []models.Transaction{{Id: uuid.New().String()}, {Id: uuid.New().String()}}

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, TransactionsTableName: "transactions"}

		mockClient.On("Query", mock.Anything, mock.Anything).Return(&dynamodb.QueryOutput{Items: marshalTxs(t, txs)}, nil)

		result, err := store.ListTransactionsByUserID(context.Background(), userID, 0)

		assert.NoError(t, err)
		assert.Equal(t, txs, result)
		mockClient.AssertExpectations(t)
	})

	t.Run("Limit Passed To Query", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, TransactionsTableName: "transactions"}

		mockClient.On("Query", mock.Anything, mock.MatchedBy(func(input *dynamodb.QueryInput) bool {
			return input.Limit != nil && *input.Limit == 5 && !*input.ScanIndexForward
		})).Return(&dynamodb.QueryOutput{Items: marshalTxs(t, txs)}, nil)

		_, err := store.ListTransactionsByUserID(context.Background(), userID, 5)

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, TransactionsTableName: "transactions"}

		mockClient.On("Query", mock.Anything, mock.Anything).Return(nil, errors.New("query failed"))

		_, err := store.ListTransactionsByUserID(context.Background(), userID, 0)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to query for transactions by user ID")
		mockClient.AssertExpectations(t)
	})
}

func TestListStaleFlaggedTransactions(t *testing.T) {
	staleTxs := []models.Transaction{{Id: uuid.New().String(), Flagged: true}}

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, TransactionsTableName: "transactions"}

		mockClient.On("Scan", mock.Anything, mock.Anything).Return(&dynamodb.ScanOutput{Items: marshalTxs(t, staleTxs)}, nil)

		result, err := store.ListStaleFlaggedTransactions(context.Background(), time.Hour)

		assert.NoError(t, err)
		assert.Equal(t, staleTxs, result)
		mockClient.AssertExpectations(t)
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, TransactionsTableName: "transactions"}

		mockClient.On("Scan", mock.Anything, mock.Anything).Return(nil, errors.New("scan failed"))

		_, err := store.ListStaleFlaggedTransactions(context.Background(), time.Hour)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to scan for stale flagged transactions")
		mockClient.AssertExpectations(t)
	})
}
