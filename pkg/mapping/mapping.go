package mapping

import (
	"github.com/finguard/risk-api/pkg/api"
	"github.com/finguard/risk-api/pkg/insights"
	"github.com/finguard/risk-api/pkg/models"
)

// ToApiTransaction converts a domain Transaction model to an API Transaction model.
func ToApiTransaction(tx *models.Transaction) *api.Transaction {
	return &api.Transaction{
		Id:          tx.Id,
		UserId:      tx.UserId,
		Date:        tx.Date,
		Amount:      tx.Amount,
		Merchant:    tx.Merchant,
		Description: tx.Description,
		Category:    tx.Category,
		Location:    tx.Location,
		CardLast4:   tx.CardLast4,
		RiskLevel:   api.RiskLevel(tx.RiskLevel),
		Flagged:     tx.Flagged,
	}
}

// ToApiAlert converts a domain Alert model to an API Alert model.
func ToApiAlert(alert *models.Alert) *api.Alert {
	return &api.Alert{
		Id:            alert.Id,
		UserId:        alert.UserId,
		TransactionId: alert.TransactionId,
		Title:         alert.Title,
		Message:       alert.Message,
		Severity:      api.Severity(alert.Severity),
		Status:        api.AlertStatus(alert.Status),
		Date:          alert.Date,
	}
}

// ToApiDashboardStats converts a dashboard summary to its API model.
func ToApiDashboardStats(stats *insights.DashboardStats) *api.DashboardStats {
	return &api.DashboardStats{
		TotalTransactions: stats.TotalTransactions,
		AlertsCount:       stats.AlertsCount,
		SafePercentage:    stats.SafePercentage,
	}
}

// ToApiRiskBreakdown converts a risk breakdown to its API model.
func ToApiRiskBreakdown(b *insights.RiskBreakdown) *api.RiskBreakdown {
	return &api.RiskBreakdown{
		Safe:       b.Safe,
		Suspicious: b.Suspicious,
		Fraudulent: b.Fraudulent,
	}
}
