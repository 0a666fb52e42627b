package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/finguard/risk-api/pkg/models"
	"github.com/finguard/risk-api/pkg/storage"
	dydbstore "github.com/finguard/risk-api/pkg/storage/dynamodb"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

var store storage.ApiStore

// staleFlagThreshold is how long a transaction may sit flagged without a
// disposition before its owner is reminded.
const staleFlagThreshold = 72 * time.Hour

func init() {
	// Load environment variables for local testing.
	godotenv.Load()

	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	dbClient := dynamodb.NewFromConfig(cfg)

	transactionsTable := os.Getenv("DYNAMODB_TRANSACTIONS_TABLE_NAME")
	alertsTable := os.Getenv("DYNAMODB_ALERTS_TABLE_NAME")
	if transactionsTable == "" || alertsTable == "" {
		log.Fatal("One or more DynamoDB table name environment variables are not set")
	}

	store = dydbstore.New(dbClient, transactionsTable, alertsTable, "")
}

// HandleRequest is triggered by an EventBridge Schedule.
func HandleRequest(ctx context.Context) error {
	log.Println("Starting review reminder sweep for stale flagged transactions...")

	staleTxs, err := store.ListStaleFlaggedTransactions(ctx, staleFlagThreshold)
	if err != nil {
		log.Printf("ERROR: failed to list stale flagged transactions: %v", err)
		return err
	}

	if len(staleTxs) == 0 {
		log.Println("No stale flagged transactions found.")
		return nil
	}

	log.Printf("Found %d stale flagged transactions. Appending reminders...", len(staleTxs))

	for _, tx := range staleTxs {
		reminder := &models.Alert{
			Id:            uuid.New().String(),
			UserId:        tx.UserId,
			TransactionId: tx.Id,
			Title:         "Review Reminder",
			Message:       fmt.Sprintf("The flagged transaction of $%.2f to %s is still awaiting your review", tx.Amount, tx.Merchant),
			Severity:      models.SeverityMedium,
			Status:        models.AlertUnresolved,
			Date:          time.Now(),
		}

		if err := store.AppendAlert(ctx, reminder); err != nil {
			log.Printf("ERROR: failed to append reminder for transaction %s: %v", tx.Id, err)
			// Continue to the next transaction, don't let one failure stop the whole batch.
			continue
		}
		log.Printf("Appended review reminder for transaction %s", tx.Id)
	}

	log.Println("Review reminder sweep finished.")
	return nil
}

func main() {
	lambda.Start(HandleRequest)
}
