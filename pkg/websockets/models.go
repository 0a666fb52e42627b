package websockets

import "github.com/finguard/risk-api/pkg/models"

// MessageType defines the type of a WebSocket message.
type MessageType string

const (
	// MessageTypeAlertCreated is for messages announcing a new alert ledger entry.
	MessageTypeAlertCreated MessageType = "alertCreated"
)

// Message represents a generic WebSocket message.
type Message struct {
	Type    MessageType `json:"type"`
	Payload interface{} `json:"payload"`
}

// AlertCreatedPayload is the payload for an alertCreated message.
type AlertCreatedPayload struct {
	UserID        string          `json:"user_id"`
	TransactionID string          `json:"transaction_id"`
	AlertID       string          `json:"alert_id"`
	Severity      models.Severity `json:"severity"`
	Title         string          `json:"title"`
}
