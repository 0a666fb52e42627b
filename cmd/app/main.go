package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/finguard/risk-api/pkg/disposition"
	"github.com/finguard/risk-api/pkg/events"
	"github.com/finguard/risk-api/pkg/handlers"
	wshandlers "github.com/finguard/risk-api/pkg/handlers/websockets"
	"github.com/finguard/risk-api/pkg/insights"
	dydbstore "github.com/finguard/risk-api/pkg/storage/dynamodb"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// AWS Session
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	dbClient := dynamodb.NewFromConfig(cfg)
	transactionsTable := os.Getenv("DYNAMODB_TRANSACTIONS_TABLE_NAME")
	alertsTable := os.Getenv("DYNAMODB_ALERTS_TABLE_NAME")
	connectionsTable := os.Getenv("DYNAMODB_CONNECTIONS_TABLE_NAME")

	if transactionsTable == "" || alertsTable == "" || connectionsTable == "" {
		log.Fatal("One or more DynamoDB table name environment variables are not set")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable not set")
	}

	// SQS Client and disposition event publisher
	sqsClient := sqs.NewFromConfig(cfg)
	sqsQueueURL := os.Getenv("SQS_QUEUE_URL")
	if sqsQueueURL == "" {
		log.Fatal("SQS_QUEUE_URL environment variable not set")
	}
	publisher := events.NewSQSPublisher(sqsClient, sqsQueueURL)

	// Create our storage implementation
	store := dydbstore.New(dbClient, transactionsTable, alertsTable, connectionsTable)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	router := handlers.NewRouter(handlers.Dependencies{
		Store:     store,
		Engine:    disposition.NewEngine(store, publisher),
		Insights:  insights.NewService(store, store),
		WsHandler: wshandlers.NewHandler(store),
		JWTSecret: []byte(jwtSecret),
		Logger:    logger,
	})

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080" // Default port if not specified
	}

	log.Printf("Starting server on port %s", port)

	// Start the server
	err = http.ListenAndServe(":"+port, router)
	if err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
