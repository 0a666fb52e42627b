package storage

import (
	"context"

	"github.com/finguard/risk-api/pkg/models"
)

// AlertReader defines the interface for reading the alert ledger.
type AlertReader interface {
	// ListUnresolvedAlertsByUserID retrieves a user's unresolved alerts ordered
	// by date descending. A limit of zero or less returns all of them.
	ListUnresolvedAlertsByUserID(ctx context.Context, userID string, limit int32) ([]models.Alert, error)
}

// AlertAppender defines the interface for appending to the alert ledger.
// The ledger is append-only; no update or delete operation exists.
type AlertAppender interface {
	// AppendAlert creates a new alert ledger entry.
	AppendAlert(ctx context.Context, alert *models.Alert) error
}

// AlertStore combines the reader and appender interfaces.
type AlertStore interface {
	AlertReader
	AlertAppender
}
