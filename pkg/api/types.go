// Package api defines the JSON types served over HTTP. They are kept separate
// from the domain models so the wire format can evolve independently of
// storage.
package api

import "time"

// RiskLevel is the wire representation of a transaction's risk classification.
type RiskLevel string

// Severity is the wire representation of an alert's severity.
type Severity string

// AlertStatus is the wire representation of an alert's resolution state.
type AlertStatus string

// Transaction is the API representation of a card transaction.
type Transaction struct {
	Id          string    `json:"id"`
	UserId      string    `json:"user_id"`
	Date        time.Time `json:"date"`
	Amount      float64   `json:"amount"`
	Merchant    string    `json:"merchant"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Location    string    `json:"location"`
	CardLast4   string    `json:"card_last4"`
	RiskLevel   RiskLevel `json:"risk_level"`
	Flagged     bool      `json:"flagged"`
}

// Alert is the API representation of an alert ledger entry.
type Alert struct {
	Id            string      `json:"id"`
	UserId        string      `json:"user_id"`
	TransactionId string      `json:"transaction_id"`
	Title         string      `json:"title"`
	Message       string      `json:"message"`
	Severity      Severity    `json:"severity"`
	Status        AlertStatus `json:"status"`
	Date          time.Time   `json:"date"`
}

// DashboardStats is the summary block shown at the top of the dashboard.
type DashboardStats struct {
	TotalTransactions int `json:"total_transactions"`
	AlertsCount       int `json:"alerts_count"`
	SafePercentage    int `json:"safe_percentage"`
}

// RiskBreakdown is the per-risk-level transaction count.
type RiskBreakdown struct {
	Safe       int `json:"safe"`
	Suspicious int `json:"suspicious"`
	Fraudulent int `json:"fraudulent"`
}
