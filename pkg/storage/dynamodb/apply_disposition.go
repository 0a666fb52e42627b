package dynamodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/finguard/risk-api/pkg/models"
	"github.com/finguard/risk-api/pkg/storage"
)

// ApplyDisposition sets the transaction's risk level and flagged marker and
// appends the paired alert ledger entry as a single atomic unit. The update is
// conditioned on the transaction existing and belonging to the alert's user,
// so a forged or foreign ID fails the whole write.
func (s *Store) ApplyDisposition(ctx context.Context, txID string, riskLevel models.RiskLevel, flagged bool, alert *models.Alert) error {
	riskAV, err := attributevalue.Marshal(riskLevel)
	if err != nil {
		return fmt.Errorf("failed to marshal risk level: %w", err)
	}

	alertAV, err := attributevalue.MarshalMap(alert)
	if err != nil {
		return fmt.Errorf("failed to marshal alert: %w", err)
	}

	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				// Operation 1: Update the transaction's risk disposition.
				Update: &types.Update{
					TableName: aws.String(s.TransactionsTableName),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: txID},
					},
					UpdateExpression:    aws.String("SET risk_level = :risk, flagged = :flagged"),
					ConditionExpression: aws.String("attribute_exists(id) AND user_id = :userID"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":risk":    riskAV,
						":flagged": &types.AttributeValueMemberBOOL{Value: flagged},
						":userID":  &types.AttributeValueMemberS{Value: alert.UserId},
					},
				},
			},
			{
				// Operation 2: Append the alert ledger entry.
				Put: &types.Put{
					TableName:           aws.String(s.AlertsTableName),
					Item:                alertAV,
					ConditionExpression: aws.String("attribute_not_exists(id)"),
				},
			},
		},
	}

	_, err = s.Client.TransactWriteItems(ctx, input)
	if err != nil {
		// A failed condition on the transaction update means the record is
		// missing or owned by someone else.
		var txc *types.TransactionCanceledException
		if errors.As(err, &txc) {
			for _, reason := range txc.CancellationReasons {
				if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
					return fmt.Errorf("transaction %s: %w", txID, storage.ErrTransactionNotFound)
				}
			}
		}
		return fmt.Errorf("failed to execute disposition write: %w", err)
	}

	return nil
}
