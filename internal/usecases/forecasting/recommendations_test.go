package forecasting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/saturation-api/internal/domain"
)

func TestBuildRecommendations(t *testing.T) {
	t.Run("Dados insuficientes", func(t *testing.T) {
		result := &domain.MultiPeriodResult{
			Metadata: domain.PredictionMetadata{
				Error:             domain.MetadataErrorInsufficientData,
				MinRequiredPoints: 5,
			},
		}

		assert.Equal(t, []string{
			"Insufficient historical data: at least 5 days with conversions are required for a saturation forecast.",
		}, buildRecommendations(result))
		assert.Equal(t, 0.0, dataQualityScore(result))
	})

	t.Run("Nenhum período analisado", func(t *testing.T) {
		result := &domain.MultiPeriodResult{PeriodPredictions: map[domain.Period]*domain.PeriodPrediction{}}

		recommendations := buildRecommendations(result)

		assert.Len(t, recommendations, 1)
		assert.Contains(t, recommendations[0], "No analysis window had enough recent data")
	})

	t.Run("Período único sem ensemble - usa o de maior confiança", func(t *testing.T) {
		result := &domain.MultiPeriodResult{
			PeriodPredictions: map[domain.Period]*domain.PeriodPrediction{
				domain.LongTerm: {Period: domain.LongTerm, Confidence: 0.9, RecommendedSpend: 2500},
			},
		}

		assert.Equal(t, []string{
			"Only the long_term period had enough data. Recommended spend 2500.00 is based on that period alone.",
		}, buildRecommendations(result))
		assert.Equal(t, 0.9, dataQualityScore(result))
	})

	t.Run("Ensemble de risco alto com aviso por período", func(t *testing.T) {
		result := sampleResult("cmp_1")
		result.Ensemble.RiskLevel = domain.RiskHigh
		result.Ensemble.EnsembleConfidence = 0.5

		assert.Equal(t, []string{
			"Recommended spend: 1500.00 (ensemble confidence 50%).",
			"High saturation risk across periods: scale spend gradually and monitor CPA closely.",
			"High saturation risk detected for long_term period. Consider reducing spend levels.",
		}, buildRecommendations(result))
	})

	t.Run("Ensemble de risco baixo", func(t *testing.T) {
		result := sampleResult("cmp_1")
		result.Ensemble.RiskLevel = domain.RiskLow
		result.PeriodPredictions[domain.LongTerm].SaturationWarning = nil

		assert.Equal(t, []string{
			"Recommended spend: 1500.00 (ensemble confidence 72%).",
			"Low saturation risk: there is room to scale spend.",
		}, buildRecommendations(result))
	})
}
