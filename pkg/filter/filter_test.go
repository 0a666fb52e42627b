package filter

import (
	"testing"

	"github.com/finguard/risk-api/pkg/models"
	"github.com/stretchr/testify/assert"
)

func sampleTxs() []models.Transaction {
	return []models.Transaction{
		{Id: "1", Merchant: "Acme Corp", Description: "Online purchase", Category: "Shopping", RiskLevel: models.RiskSafe},
		{Id: "2", Merchant: "Other", Description: "Grocery run", Category: "Groceries", RiskLevel: models.RiskSuspicious},
		{Id: "3", Merchant: "Corner Cafe", Description: "Coffee at acme plaza", Category: "Dining", RiskLevel: models.RiskFraudulent},
	}
}

func ids(txs []models.Transaction) []string {
	out := make([]string, len(txs))
	for i, tx := range txs {
		out[i] = tx.Id
	}
	return out
}

func TestApply(t *testing.T) {
	t.Run("Case Insensitive Merchant Match", func(t *testing.T) {
		txs := []models.Transaction{
			{Id: "1", Merchant: "Acme Corp"},
			{Id: "2", Merchant: "Other"},
		}

		result := Apply(txs, "acme", RiskAll)

		assert.Equal(t, []string{"1"}, ids(result))
	})

	t.Run("Matches Description And Category", func(t *testing.T) {
		result := Apply(sampleTxs(), "grocer", RiskAll)
		assert.Equal(t, []string{"2"}, ids(result))

		result = Apply(sampleTxs(), "dining", RiskAll)
		assert.Equal(t, []string{"3"}, ids(result))
	})

	t.Run("Risk Filter", func(t *testing.T) {
		result := Apply(sampleTxs(), "", string(models.RiskSuspicious))
		assert.Equal(t, []string{"2"}, ids(result))
	})

	t.Run("Combined Filters", func(t *testing.T) {
		// "acme" matches both tx 1 (merchant) and tx 3 (description); the risk
		// filter narrows it to tx 3.
		result := Apply(sampleTxs(), "acme", string(models.RiskFraudulent))
		assert.Equal(t, []string{"3"}, ids(result))
	})

	t.Run("Empty Query And All Risk Returns Input Order", func(t *testing.T) {
		result := Apply(sampleTxs(), "", RiskAll)
		assert.Equal(t, []string{"1", "2", "3"}, ids(result))
	})

	t.Run("Idempotent", func(t *testing.T) {
		once := Apply(sampleTxs(), "acme", RiskAll)
		twice := Apply(once, "acme", RiskAll)

		assert.Equal(t, once, twice)
	})

	t.Run("Predicates Commute", func(t *testing.T) {
		txs := sampleTxs()

		textThenRisk := Apply(Apply(txs, "acme", RiskAll), "", string(models.RiskFraudulent))
		riskThenText := Apply(Apply(txs, "", string(models.RiskFraudulent)), "acme", RiskAll)

		assert.Equal(t, textThenRisk, riskThenText)
	})

	t.Run("No Matches", func(t *testing.T) {
		result := Apply(sampleTxs(), "nonexistent", RiskAll)
		assert.Empty(t, result)
	})
}
