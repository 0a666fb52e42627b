package models

import (
	"time"
)

// RiskLevel defines the possible risk classifications of a transaction.
type RiskLevel string

const (
	RiskSafe       RiskLevel = "safe"
	RiskSuspicious RiskLevel = "suspicious"
	RiskFraudulent RiskLevel = "fraudulent"
)

// Severity defines the possible severities of an alert.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// AlertStatus defines the possible resolution states of an alert.
type AlertStatus string

const (
	AlertUnresolved AlertStatus = "unresolved"
	AlertResolved   AlertStatus = "resolved"
)

// Transaction represents the internal domain model for a card transaction.
// It includes dynamodbav tags for marshalling. Only RiskLevel and Flagged
// are mutable through this service; everything else is set at ingestion.
type Transaction struct {
	Id          string    `dynamodbav:"id"`
	UserId      string    `dynamodbav:"user_id"`
	Date        time.Time `dynamodbav:"date"`
	Amount      float64   `dynamodbav:"amount"`
	Merchant    string    `dynamodbav:"merchant"`
	Description string    `dynamodbav:"description"`
	Category    string    `dynamodbav:"category"`
	Location    string    `dynamodbav:"location"`
	CardLast4   string    `dynamodbav:"card_last4"`
	RiskLevel   RiskLevel `dynamodbav:"risk_level"`
	Flagged     bool      `dynamodbav:"flagged"`
}

// Alert represents a single entry in the append-only alert ledger.
// Alerts are never updated after creation; a resolution is recorded by
// appending a new entry with a resolved status.
type Alert struct {
	Id            string      `dynamodbav:"id"`
	UserId        string      `dynamodbav:"user_id"`
	TransactionId string      `dynamodbav:"transaction_id"`
	Title         string      `dynamodbav:"title"`
	Message       string      `dynamodbav:"message"`
	Severity      Severity    `dynamodbav:"severity"`
	Status        AlertStatus `dynamodbav:"status"`
	Date          time.Time   `dynamodbav:"date"`
}
