package insights

import (
	"testing"

	"github.com/finguard/risk-api/pkg/models"
	"github.com/stretchr/testify/assert"
)

func txsWithRisk(levels ...models.RiskLevel) []models.Transaction {
	txs := make([]models.Transaction, len(levels))
	for i, level := range levels {
		txs[i] = models.Transaction{Id: "tx", RiskLevel: level}
	}
	return txs
}

func TestSummarize(t *testing.T) {
	t.Run("Mixed Set", func(t *testing.T) {
		txs := txsWithRisk(models.RiskSafe, models.RiskSafe, models.RiskSuspicious, models.RiskFraudulent)

		stats := Summarize(txs)

		assert.Equal(t, 4, stats.Total)
		assert.Equal(t, 2, stats.SafeCount)
		assert.Equal(t, 50, stats.SafePercentage)
	})

	t.Run("Empty Set", func(t *testing.T) {
		stats := Summarize(nil)

		assert.Equal(t, 0, stats.Total)
		assert.Equal(t, 0, stats.SafeCount)
		assert.Equal(t, 0, stats.SafePercentage)
	})

	t.Run("Rounds To Nearest", func(t *testing.T) {
		// 2 of 3 safe is 66.67%, which rounds to 67.
		stats := Summarize(txsWithRisk(models.RiskSafe, models.RiskSafe, models.RiskSuspicious))
		assert.Equal(t, 67, stats.SafePercentage)

		// 1 of 3 safe is 33.33%, which rounds to 33.
		stats = Summarize(txsWithRisk(models.RiskSafe, models.RiskSuspicious, models.RiskSuspicious))
		assert.Equal(t, 33, stats.SafePercentage)
	})

	t.Run("All Safe", func(t *testing.T) {
		stats := Summarize(txsWithRisk(models.RiskSafe, models.RiskSafe))
		assert.Equal(t, 100, stats.SafePercentage)
	})
}

func TestBreakdown(t *testing.T) {
	t.Run("Counts Per Level", func(t *testing.T) {
		txs := txsWithRisk(models.RiskSafe, models.RiskSafe, models.RiskSuspicious, models.RiskFraudulent)

		b := Breakdown(txs)

		assert.Equal(t, RiskBreakdown{Safe: 2, Suspicious: 1, Fraudulent: 1}, b)
	})

	t.Run("Ignores Unknown Levels", func(t *testing.T) {
		txs := txsWithRisk(models.RiskSafe, models.RiskLevel("bogus"))

		b := Breakdown(txs)

		assert.Equal(t, RiskBreakdown{Safe: 1}, b)
	})

	t.Run("Empty Set", func(t *testing.T) {
		assert.Equal(t, RiskBreakdown{}, Breakdown(nil))
	})
}
