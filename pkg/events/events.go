package events

import (
	"context"
	"time"

	"github.com/finguard/risk-api/pkg/models"
)

// DispositionEvent describes a recorded risk disposition. It is published for
// downstream consumers (notification push, fraud-ops tooling) after the
// disposition has been committed to the store.
type DispositionEvent struct {
	TransactionId string           `json:"transaction_id"`
	UserId        string           `json:"user_id"`
	AlertId       string           `json:"alert_id"`
	RiskLevel     models.RiskLevel `json:"risk_level"`
	Severity      models.Severity  `json:"severity"`
	Title         string           `json:"title"`
	OccurredAt    time.Time        `json:"occurred_at"`
}

// Publisher defines the interface for a component that publishes disposition
// events for asynchronous processing.
type Publisher interface {
	// PublishDisposition enqueues a disposition event.
	PublishDisposition(ctx context.Context, event *DispositionEvent) error
}
