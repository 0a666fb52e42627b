package main

import (
	"context"
	"encoding/json"
	"log"
	"os"

	lambdaevents "github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/finguard/risk-api/pkg/events"
	dydbstore "github.com/finguard/risk-api/pkg/storage/dynamodb"
	"github.com/finguard/risk-api/pkg/websockets"
	"github.com/joho/godotenv"
)

var publisher websockets.Publisher

func init() {
	// Load environment variables from .env file (useful for local testing).
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Initialize dependencies once.
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	dbClient := dynamodb.NewFromConfig(cfg)
	connectionsTable := os.Getenv("DYNAMODB_CONNECTIONS_TABLE_NAME")
	if connectionsTable == "" {
		log.Fatal("DYNAMODB_CONNECTIONS_TABLE_NAME environment variable not set")
	}

	apiEndpoint := os.Getenv("WEBSOCKET_API_ENDPOINT")
	if apiEndpoint == "" {
		log.Fatal("WEBSOCKET_API_ENDPOINT environment variable not set")
	}

	// The notify lambda only touches the connections table, so the other
	// table names are irrelevant here.
	store := dydbstore.New(dbClient, "", "", connectionsTable)

	publisher, err = websockets.NewPublisher(store, store, apiEndpoint)
	if err != nil {
		log.Fatalf("failed to create websocket publisher: %v", err)
	}
}

// HandleRequest fans disposition events out to connected WebSocket clients.
func HandleRequest(ctx context.Context, sqsEvent lambdaevents.SQSEvent) error {
	for _, message := range sqsEvent.Records {
		log.Printf("Processing message %s", message.MessageId)

		var event events.DispositionEvent
		if err := json.Unmarshal([]byte(message.Body), &event); err != nil {
			log.Printf("ERROR: failed to unmarshal disposition event from SQS message %s: %v", message.MessageId, err)
			// Returning an error will cause SQS to retry the message, which is appropriate here.
			return err
		}

		msg := websockets.Message{
			Type: websockets.MessageTypeAlertCreated,
			Payload: websockets.AlertCreatedPayload{
				UserID:        event.UserId,
				TransactionID: event.TransactionId,
				AlertID:       event.AlertId,
				Severity:      event.Severity,
				Title:         event.Title,
			},
		}

		if err := publisher.Publish(ctx, msg); err != nil {
			log.Printf("ERROR: failed to publish alert for transaction %s: %v", event.TransactionId, err)
			return err
		}

		log.Printf("Successfully published alert %s", event.AlertId)
	}

	return nil
}

func main() {
	lambda.Start(HandleRequest)
}
