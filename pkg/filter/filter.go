// Package filter implements the client-facing transaction list filter as a
// pure function: no caching, no recomputation triggers, no side effects.
package filter

import (
	"strings"

	"github.com/finguard/risk-api/pkg/models"
)

// RiskAll disables the risk-level predicate.
const RiskAll = "all"

// Apply returns the subsequence of transactions whose merchant, description,
// or category contains the query as a case-insensitive substring and whose
// risk level matches the filter. Input order is preserved, the result depends
// only on the inputs, and the two predicates commute.
func Apply(txs []models.Transaction, query string, risk string) []models.Transaction {
	q := strings.ToLower(query)

	filtered := make([]models.Transaction, 0, len(txs))
	for _, tx := range txs {
		if !matchesQuery(tx, q) {
			continue
		}
		if risk != RiskAll && risk != "" && string(tx.RiskLevel) != risk {
			continue
		}
		filtered = append(filtered, tx)
	}
	return filtered
}

func matchesQuery(tx models.Transaction, q string) bool {
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(tx.Merchant), q) ||
		strings.Contains(strings.ToLower(tx.Description), q) ||
		strings.Contains(strings.ToLower(tx.Category), q)
}
