package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/finguard/risk-api/pkg/models"
)

const alertUserDateIndex = "user_id-date-index"

// AppendAlert creates a new alert ledger entry.
func (s *Store) AppendAlert(ctx context.Context, alert *models.Alert) error {
	item, err := attributevalue.MarshalMap(alert)
	if err != nil {
		return fmt.Errorf("failed to marshal alert: %w", err)
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.AlertsTableName),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	})
	if err != nil {
		return fmt.Errorf("failed to append alert: %w", err)
	}

	return nil
}

// ListUnresolvedAlertsByUserID retrieves a user's unresolved alerts ordered by
// date descending. A limit of zero or less returns all of them.
func (s *Store) ListUnresolvedAlertsByUserID(ctx context.Context, userID string, limit int32) ([]models.Alert, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.AlertsTableName),
		IndexName:              aws.String(alertUserDateIndex),
		KeyConditionExpression: aws.String("user_id = :userID"),
		FilterExpression:       aws.String("#status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":userID": &types.AttributeValueMemberS{Value: userID},
			":status": &types.AttributeValueMemberS{Value: string(models.AlertUnresolved)},
		},
		ScanIndexForward: aws.Bool(false), // Sort by date in descending order
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query for unresolved alerts: %w", err)
	}

	var alerts []models.Alert
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &alerts); err != nil {
		return nil, fmt.Errorf("failed to unmarshal alerts: %w", err)
	}

	// Query limits apply before the status filter, so the bound is enforced
	// here instead of on the request.
	if limit > 0 && int32(len(alerts)) > limit {
		alerts = alerts[:limit]
	}

	return alerts, nil
}
