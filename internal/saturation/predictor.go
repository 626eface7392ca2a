package saturation

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/saturation-api/internal/domain"
)

const (
	// Correção contextual só é aplicada com mais de 10 observações
	correctionMinDataPoints = 10
	recommendationThreshold = 0.65
	warningThreshold        = 0.75
	warningShare            = 0.5
)

type periodInput struct {
	campaignID   string
	period       domain.Period
	days         int
	history      []domain.HistoricalObservation
	targetSpends []float64
}

// predictPeriod ajusta a curva para uma janela, aplica a correção contextual e
// monta a trajetória para cada investimento alvo, na mesma ordem da entrada.
func predictPeriod(in periodInput, corrector Corrector) *domain.PeriodPrediction {
	logger := logrus.WithFields(logrus.Fields{
		"campaign_id": in.campaignID,
		"period":      in.period.String(),
		"days":        in.days,
		"data_points": len(in.history),
	})
	logger.Debug("saturation: prevendo período")

	spend, cpa := domain.SpendAndCPA(in.history)
	curve := FitCurve(spend, cpa)

	base := make([]float64, len(in.targetSpends))
	for i, target := range in.targetSpends {
		base[i] = Logistic(target, curve)
	}

	adjustments := make([]float64, len(in.targetSpends))
	if len(in.history) > correctionMinDataPoints && corrector != nil {
		features := extractContextFeatures(in.campaignID, in.history)
		adjustments = applyCorrector(corrector, features, in.period, in.targetSpends, logger)
	}

	fitted := make([]float64, len(spend))
	for i, s := range spend {
		fitted[i] = Logistic(s, curve)
	}
	mape := meanAbsolutePercentageError(cpa, fitted)
	r2 := rSquared(cpa, fitted)

	trajectory := make([]domain.TrajectoryPoint, len(in.targetSpends))
	levels := make([]float64, len(in.targetSpends))
	for i, target := range in.targetSpends {
		level := SaturationLevel(target, curve)
		levels[i] = level

		trajectory[i] = domain.TrajectoryPoint{
			Spend:            target,
			PredictedCPA:     base[i] * (1 + adjustments[i]),
			BasePrediction:   base[i],
			Adjustment:       adjustments[i],
			SaturationLevel:  level,
			EfficiencyRating: RateEfficiency(level),
			RiskLevel:        AssessPointRisk(level),
		}
	}

	return &domain.PeriodPrediction{
		Period:            in.period,
		PeriodDays:        in.days,
		DataPoints:        len(in.history),
		Confidence:        periodConfidence(mape, r2, len(in.history), in.days),
		Curve:             curve,
		Trajectory:        trajectory,
		MAPE:              mape,
		RSquared:          r2,
		FitQuality:        AssessFitQuality(mape, r2, len(in.history)),
		RecommendedSpend:  RecommendSpend(in.targetSpends, levels),
		SaturationWarning: saturationWarning(levels, in.period),
	}
}

func applyCorrector(corrector Corrector, features ContextFeatures, period domain.Period, targetSpends []float64, logger *logrus.Entry) []float64 {
	adjustments, err := corrector.Correct(features, period, targetSpends)
	if err != nil {
		logger.WithError(err).Warn("saturation: correção contextual falhou, mantendo previsão base")
		return make([]float64, len(targetSpends))
	}
	if len(adjustments) != len(targetSpends) {
		logger.WithFields(logrus.Fields{
			"expected": len(targetSpends),
			"received": len(adjustments),
		}).Warn("saturation: correção contextual com tamanho inválido, mantendo previsão base")
		return make([]float64, len(targetSpends))
	}

	for i, adj := range adjustments {
		if !isFinite(adj) {
			adjustments[i] = 0
		}
	}
	return adjustments
}

// RateEfficiency classifica o nível de saturação
func RateEfficiency(level float64) domain.EfficiencyRating {
	switch {
	case level < 0.3:
		return domain.EfficiencyHighlyEfficient
	case level < 0.6:
		return domain.EfficiencyEfficient
	case level < 0.8:
		return domain.EfficiencyModerate
	default:
		return domain.EfficiencyInefficient
	}
}

func AssessPointRisk(level float64) domain.RiskLevel {
	switch {
	case level > 0.8:
		return domain.RiskHigh
	case level > 0.6:
		return domain.RiskMedium
	default:
		return domain.RiskLow
	}
}

func AssessFitQuality(mape, r2 float64, dataPoints int) domain.FitQuality {
	switch {
	case mape < 0.15 && r2 > 0.7 && dataPoints >= 15:
		return domain.FitExcellent
	case mape < 0.25 && r2 > 0.5 && dataPoints >= 10:
		return domain.FitGood
	case mape < 0.40 && r2 > 0.3 && dataPoints >= 7:
		return domain.FitFair
	default:
		return domain.FitPoor
	}
}

// RecommendSpend retorna o primeiro investimento cujo nível de saturação passa de 0.65,
// ou o último investimento se nenhum passar.
func RecommendSpend(spends, levels []float64) float64 {
	for i, level := range levels {
		if level > recommendationThreshold {
			return spends[i]
		}
	}
	if len(spends) == 0 {
		return 0
	}
	return spends[len(spends)-1]
}

func saturationWarning(levels []float64, period domain.Period) *string {
	if len(levels) == 0 {
		return nil
	}

	high := 0
	for _, level := range levels {
		if level > warningThreshold {
			high++
		}
	}

	if float64(high) < float64(len(levels))*warningShare {
		return nil
	}

	warning := fmt.Sprintf("High saturation risk detected for %s period. Consider reducing spend levels.", period)
	return &warning
}

// periodConfidence combina MAPE, R² e volume de dados; janelas menores que 14 dias
// são penalizadas. O resultado fica sempre em [0.1, 1.0].
func periodConfidence(mape, r2 float64, dataPoints, days int) float64 {
	mapeScore := math.Max(0, 1-mape/50)
	r2Score := math.Max(0, r2)
	dataBonus := math.Min(float64(dataPoints)/15, 1.0)

	penalty := 1.0
	if days < 14 {
		penalty = 0.8
	}

	confidence := (0.4*mapeScore + 0.4*r2Score + 0.2*dataBonus) * penalty
	if math.IsNaN(confidence) {
		return 0.1
	}
	return clamp(confidence, 0.1, 1.0)
}
