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

func marshalAlerts(t *testing.T, alerts []models.Alert) []map[string]types.AttributeValue {
	var avs []map[string]types.AttributeValue
	for _, alert := range alerts {
		av, err := attributevalue.MarshalMap(alert)
		assert.NoError(t, err)
		avs = append(avs, av)
	}
	return avs
}

func TestAppendAlert(t *testing.T) {
	alert := &models.Alert{
		Id:            uuid.New().String(),
		UserId:        "user-1",
		TransactionId: "tx-1",
		Title:         "Review Reminder",
		Severity:      models.SeverityMedium,
		Status:        models.AlertUnresolved,
		Date:          time.Now(),
	}

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, AlertsTableName: "alerts"}

		mockClient.On("PutItem", mock.Anything, mock.MatchedBy(func(input *dynamodb.PutItemInput) bool {
			return *input.TableName == "alerts" && input.ConditionExpression != nil
		})).Return(&dynamodb.PutItemOutput{}, nil)

		err := store.AppendAlert(context.Background(), alert)

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, AlertsTableName: "alerts"}

		mockClient.On("PutItem", mock.Anything, mock.Anything).Return(nil, errors.New("put failed"))

		err := store.AppendAlert(context.Background(), alert)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to append alert")
		mockClient.AssertExpectations(t)
	})
}

func TestListUnresolvedAlertsByUserID(t *testing.T) {
	alerts := []models.Alert{
		{Id: uuid.New().String(), Status: models.AlertUnresolved},
		{Id: uuid.New().String(), Status: models.AlertUnresolved},
		{Id: uuid.New().String(), Status: models.AlertUnresolved},
	}

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, AlertsTableName: "alerts"}

		mockClient.On("Query", mock.Anything, mock.Anything).Return(&dynamodb.QueryOutput{Items: marshalAlerts(t, alerts)}, nil)

		result, err := store.ListUnresolvedAlertsByUserID(context.Background(), "user-1", 0)

		assert.NoError(t, err)
		assert.Equal(t, alerts, result)
		mockClient.AssertExpectations(t)
	})

	t.Run("Limit Enforced Client Side", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, AlertsTableName: "alerts"}

		mockClient.On("Query", mock.Anything, mock.MatchedBy(func(input *dynamodb.QueryInput) bool {
			// The bound must not be passed to DynamoDB, where it would apply
			// before the status filter.
			return input.Limit == nil
		})).Return(&dynamodb.QueryOutput{Items: marshalAlerts(t, alerts)}, nil)

		result, err := store.ListUnresolvedAlertsByUserID(context.Background(), "user-1", 2)

		assert.NoError(t, err)
		assert.Len(t, result, 2)
		assert.Equal(t, alerts[:2], result)
		mockClient.AssertExpectations(t)
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, AlertsTableName: "alerts"}

		mockClient.On("Query", mock.Anything, mock.Anything).Return(nil, errors.New("query failed"))

		_, err := store.ListUnresolvedAlertsByUserID(context.Background(), "user-1", 0)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to query for unresolved alerts")
		mockClient.AssertExpectations(t)
	})
}
