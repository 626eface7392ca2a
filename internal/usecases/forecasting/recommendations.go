package forecasting

import (
	"fmt"

	"github.com/vfg2006/saturation-api/internal/domain"
	"github.com/vfg2006/saturation-api/pkg/utils"
)

// buildRecommendations traduz o resultado do modelo em orientações de investimento
func buildRecommendations(result *domain.MultiPeriodResult) []string {
	if result.InsufficientData() {
		return []string{
			fmt.Sprintf("Insufficient historical data: at least %d days with conversions are required for a saturation forecast.",
				result.Metadata.MinRequiredPoints),
		}
	}

	predictions := result.OrderedPredictions()
	if len(predictions) == 0 {
		return []string{"No analysis window had enough recent data. Collect more recent performance data before scaling spend."}
	}

	recommendations := make([]string, 0, len(predictions)+2)

	if ensemble := result.Ensemble; ensemble != nil {
		recommendations = append(recommendations,
			fmt.Sprintf("Recommended spend: %.2f (ensemble confidence %d%%).",
				ensemble.RecommendedSpend, utils.Percent(ensemble.EnsembleConfidence)))

		switch ensemble.RiskLevel {
		case domain.RiskHigh:
			recommendations = append(recommendations, "High saturation risk across periods: scale spend gradually and monitor CPA closely.")
		case domain.RiskMedium:
			recommendations = append(recommendations, "Moderate saturation risk: increase spend in small steps.")
		default:
			recommendations = append(recommendations, "Low saturation risk: there is room to scale spend.")
		}
	} else {
		best := predictions[0]
		for _, prediction := range predictions[1:] {
			if prediction.Confidence > best.Confidence {
				best = prediction
			}
		}
		recommendations = append(recommendations,
			fmt.Sprintf("Only the %s period had enough data. Recommended spend %.2f is based on that period alone.",
				best.Period, best.RecommendedSpend))
	}

	for _, prediction := range predictions {
		if prediction.SaturationWarning != nil {
			recommendations = append(recommendations, *prediction.SaturationWarning)
		}
	}

	return recommendations
}

// dataQualityScore é a média das confianças dos períodos analisados, 0 quando não há nenhum
func dataQualityScore(result *domain.MultiPeriodResult) float64 {
	predictions := result.OrderedPredictions()
	if len(predictions) == 0 {
		return 0
	}

	var total float64
	for _, prediction := range predictions {
		total += prediction.Confidence
	}
	return utils.RoundWithTwoDecimalPlace(total / float64(len(predictions)))
}
