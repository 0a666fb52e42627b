// Package disposition implements the risk disposition workflow: the two
// state-changing decisions a user may take on a transaction (confirm safe,
// report fraud) plus the investigation request, each recorded together with
// its alert ledger entry.
package disposition

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/finguard/risk-api/pkg/events"
	"github.com/finguard/risk-api/pkg/models"
	"github.com/finguard/risk-api/pkg/storage"
	"github.com/google/uuid"
)

// Func is the shape shared by the Engine's disposition operations.
type Func func(ctx context.Context, txID, actor string) (*models.Transaction, error)

// Engine mediates the state-changing operations on a transaction's risk
// classification. Each operation loads the transaction, verifies ownership,
// then writes the new disposition and its alert entry as one unit.
type Engine struct {
	Store     storage.TransactionStore
	Publisher events.Publisher
}

// NewEngine creates a new Engine. The publisher may be nil, in which case no
// disposition events are emitted.
func NewEngine(store storage.TransactionStore, publisher events.Publisher) *Engine {
	return &Engine{Store: store, Publisher: publisher}
}

// ConfirmSafe marks the transaction as safe and clears its review flag. There
// is no precondition on the prior state: an already-safe transaction may be
// reconfirmed, which still appends a ledger entry.
func (e *Engine) ConfirmSafe(ctx context.Context, txID, actor string) (*models.Transaction, error) {
	tx, err := e.load(ctx, txID, actor)
	if err != nil {
		return nil, err
	}

	alert := newAlert(tx, "Transaction Confirmed",
		fmt.Sprintf("You confirmed the transaction of %s to %s", formatAmount(tx.Amount), tx.Merchant),
		models.SeverityLow, models.AlertResolved)

	return e.apply(ctx, tx, models.RiskSafe, false, alert)
}

// ReportFraud marks the transaction as fraudulent and flags it for review.
// As with ConfirmSafe, no precondition is enforced on the prior state.
func (e *Engine) ReportFraud(ctx context.Context, txID, actor string) (*models.Transaction, error) {
	tx, err := e.load(ctx, txID, actor)
	if err != nil {
		return nil, err
	}

	alert := newAlert(tx, "Fraud Reported",
		fmt.Sprintf("You reported fraud for the transaction of %s to %s", formatAmount(tx.Amount), tx.Merchant),
		models.SeverityHigh, models.AlertUnresolved)

	return e.apply(ctx, tx, models.RiskFraudulent, true, alert)
}

// RequestInvestigation holds the transaction for review without changing its
// risk classification and records a medium-severity alert.
func (e *Engine) RequestInvestigation(ctx context.Context, txID, actor string) (*models.Transaction, error) {
	tx, err := e.load(ctx, txID, actor)
	if err != nil {
		return nil, err
	}

	alert := newAlert(tx, "Investigation Requested",
		fmt.Sprintf("You requested an investigation of the transaction of %s to %s", formatAmount(tx.Amount), tx.Merchant),
		models.SeverityMedium, models.AlertUnresolved)

	return e.apply(ctx, tx, tx.RiskLevel, true, alert)
}

// load fetches the transaction and verifies it belongs to the actor. Without
// an actor no store call is made at all. Foreign-owned transactions are
// reported as not found.
func (e *Engine) load(ctx context.Context, txID, actor string) (*models.Transaction, error) {
	if actor == "" {
		return nil, storage.ErrMissingActor
	}

	tx, err := e.Store.GetTransaction(ctx, txID)
	if err != nil {
		return nil, err
	}

	if tx.UserId != actor {
		return nil, fmt.Errorf("transaction %s: %w", txID, storage.ErrTransactionNotFound)
	}

	return tx, nil
}

// apply commits the disposition and returns the updated transaction view.
func (e *Engine) apply(ctx context.Context, tx *models.Transaction, riskLevel models.RiskLevel, flagged bool, alert *models.Alert) (*models.Transaction, error) {
	if err := e.Store.ApplyDisposition(ctx, tx.Id, riskLevel, flagged, alert); err != nil {
		return nil, err
	}

	tx.RiskLevel = riskLevel
	tx.Flagged = flagged

	// The disposition is already committed; a failed publish must not fail
	// the operation.
	if e.Publisher != nil {
		event := &events.DispositionEvent{
			TransactionId: tx.Id,
			UserId:        tx.UserId,
			AlertId:       alert.Id,
			RiskLevel:     riskLevel,
			Severity:      alert.Severity,
			Title:         alert.Title,
			OccurredAt:    alert.Date,
		}
		if err := e.Publisher.PublishDisposition(ctx, event); err != nil {
			slog.Error("disposition recorded but event publish failed", "transactionId", tx.Id, "error", err)
		}
	}

	return tx, nil
}

// newAlert builds the ledger entry paired with a disposition.
func newAlert(tx *models.Transaction, title, message string, severity models.Severity, status models.AlertStatus) *models.Alert {
	return &models.Alert{
		Id:            uuid.New().String(),
		UserId:        tx.UserId,
		TransactionId: tx.Id,
		Title:         title,
		Message:       message,
		Severity:      severity,
		Status:        status,
		Date:          time.Now(),
	}
}

func formatAmount(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}
