// Package insights provides the read-only aggregation views over a user's
// transactions and alerts: dashboard statistics, the risk breakdown, and the
// recent-activity previews. All reductions are pure; nothing here writes.
package insights

import (
	"math"

	"github.com/finguard/risk-api/pkg/models"
)

// Stats summarizes a transaction set.
type Stats struct {
	Total          int
	SafeCount      int
	SafePercentage int
}

// RiskBreakdown counts transactions per risk level.
type RiskBreakdown struct {
	Safe       int
	Suspicious int
	Fraudulent int
}

// Summarize reduces a transaction set into its totals. The safe percentage is
// rounded to the nearest integer and defined as 0 for an empty set.
func Summarize(txs []models.Transaction) Stats {
	stats := Stats{Total: len(txs)}
	for _, tx := range txs {
		if tx.RiskLevel == models.RiskSafe {
			stats.SafeCount++
		}
	}
	if stats.Total > 0 {
		stats.SafePercentage = int(math.Round(float64(stats.SafeCount) / float64(stats.Total) * 100))
	}
	return stats
}

// Breakdown counts a transaction set per risk level. Unknown risk values are
// ignored rather than counted.
func Breakdown(txs []models.Transaction) RiskBreakdown {
	var b RiskBreakdown
	for _, tx := range txs {
		switch tx.RiskLevel {
		case models.RiskSafe:
			b.Safe++
		case models.RiskSuspicious:
			b.Suspicious++
		case models.RiskFraudulent:
			b.Fraudulent++
		}
	}
	return b
}
