package storage

import (
	"context"
	"time"

	"github.com/finguard/risk-api/pkg/models"
)

// TransactionReader defines the interface for reading transaction data.
type TransactionReader interface {
	// GetTransaction retrieves a transaction by its ID.
	GetTransaction(ctx context.Context, txID string) (*models.Transaction, error)

	// ListTransactionsByUserID retrieves a user's transactions ordered by date
	// descending. A limit of zero or less returns all of them.
	ListTransactionsByUserID(ctx context.Context, userID string, limit int32) ([]models.Transaction, error)

	// ListStaleFlaggedTransactions retrieves transactions that have been flagged
	// for review for longer than the specified duration.
	ListStaleFlaggedTransactions(ctx context.Context, maxAge time.Duration) ([]models.Transaction, error)
}

// TransactionDispositioner defines the interface for applying a risk
// disposition to a transaction. The risk-level/flagged update and the alert
// append are performed as a single atomic unit.
type TransactionDispositioner interface {
	// ApplyDisposition sets the transaction's risk level and flagged marker and
	// appends the paired alert entry. The update is conditioned on the
	// transaction existing and belonging to the alert's user.
	ApplyDisposition(ctx context.Context, txID string, riskLevel models.RiskLevel, flagged bool, alert *models.Alert) error
}

// TransactionStore combines the reader and dispositioner interfaces.
type TransactionStore interface {
	TransactionReader
	TransactionDispositioner
}
