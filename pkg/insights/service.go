package insights

import (
	"context"

	"github.com/finguard/risk-api/pkg/models"
	"github.com/finguard/risk-api/pkg/storage"
)

// recentPreviewSize bounds the dashboard's recent-activity lists.
const recentPreviewSize = 5

// DashboardStats is the summary shown on the dashboard.
type DashboardStats struct {
	TotalTransactions int
	AlertsCount       int
	SafePercentage    int
}

// Service reads a user's transactions and alerts and reduces them into the
// dashboard views. It never mutates anything.
type Service struct {
	Transactions storage.TransactionReader
	Alerts       storage.AlertReader
}

// NewService creates a new Service.
func NewService(transactions storage.TransactionReader, alerts storage.AlertReader) *Service {
	return &Service{Transactions: transactions, Alerts: alerts}
}

// DashboardStats returns the user's transaction totals and unresolved alert count.
func (s *Service) DashboardStats(ctx context.Context, userID string) (*DashboardStats, error) {
	if userID == "" {
		return nil, storage.ErrMissingActor
	}

	txs, err := s.Transactions.ListTransactionsByUserID(ctx, userID, 0)
	if err != nil {
		return nil, err
	}

	alerts, err := s.Alerts.ListUnresolvedAlertsByUserID(ctx, userID, 0)
	if err != nil {
		return nil, err
	}

	stats := Summarize(txs)
	return &DashboardStats{
		TotalTransactions: stats.Total,
		AlertsCount:       len(alerts),
		SafePercentage:    stats.SafePercentage,
	}, nil
}

// RiskBreakdown returns the user's per-risk-level transaction counts.
func (s *Service) RiskBreakdown(ctx context.Context, userID string) (*RiskBreakdown, error) {
	if userID == "" {
		return nil, storage.ErrMissingActor
	}

	txs, err := s.Transactions.ListTransactionsByUserID(ctx, userID, 0)
	if err != nil {
		return nil, err
	}

	b := Breakdown(txs)
	return &b, nil
}

// RecentTransactions returns the user's most recent transactions, newest first.
func (s *Service) RecentTransactions(ctx context.Context, userID string) ([]models.Transaction, error) {
	if userID == "" {
		return nil, storage.ErrMissingActor
	}
	return s.Transactions.ListTransactionsByUserID(ctx, userID, recentPreviewSize)
}

// RecentAlerts returns the user's most recent unresolved alerts, newest first.
// Date ties keep the store's return order.
func (s *Service) RecentAlerts(ctx context.Context, userID string) ([]models.Alert, error) {
	if userID == "" {
		return nil, storage.ErrMissingActor
	}
	return s.Alerts.ListUnresolvedAlertsByUserID(ctx, userID, recentPreviewSize)
}
