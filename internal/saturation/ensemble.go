package saturation

import (
	"math"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/saturation-api/internal/domain"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

const (
	minEnsemblePeriods = 2
	ciZScore           = 1.96
)

// CombinePeriods monta a previsão de consenso a partir de 2 ou mais previsões de
// período. As previsões devem estar na ordem fixa de análise e cada trajetória
// deve ter um ponto por investimento alvo. Retorna nil com menos de 2 períodos.
func CombinePeriods(predictions []*domain.PeriodPrediction, targetSpends []float64) *domain.EnsemblePrediction {
	if len(predictions) < minEnsemblePeriods {
		return nil
	}

	weights := periodWeights(predictions)

	weightMap := make(map[domain.Period]float64, len(predictions))
	for i, prediction := range predictions {
		weightMap[prediction.Period] = weights[i]
	}

	logrus.WithField("weights", weightMap).Debug("saturation: pesos do ensemble")

	consensus := make([]domain.ConsensusPoint, len(targetSpends))
	intervals := make([]domain.ConfidenceInterval, len(targetSpends))
	levels := make([]float64, len(targetSpends))

	values := make([]float64, len(predictions))
	saturations := make([]float64, len(predictions))
	deviations := make([]float64, len(predictions))

	for i, spend := range targetSpends {
		individual := make(map[domain.Period]float64, len(predictions))
		for j, prediction := range predictions {
			point := prediction.Trajectory[i]
			values[j] = point.PredictedCPA
			saturations[j] = point.SaturationLevel
			individual[prediction.Period] = point.PredictedCPA
		}

		consensusCPA := stat.Mean(values, weights)
		for j, v := range values {
			deviations[j] = (v - consensusCPA) * (v - consensusCPA)
		}
		variance := stat.Mean(deviations, weights)
		std := math.Sqrt(variance)

		// Saturação de consenso é a média simples, sem pesos
		level := stat.Mean(saturations, nil)
		levels[i] = level

		consensus[i] = domain.ConsensusPoint{
			Spend:                 spend,
			PredictedCPA:          consensusCPA,
			SaturationLevel:       level,
			EfficiencyRating:      RateEfficiency(level),
			IndividualPredictions: individual,
		}

		intervals[i] = domain.ConfidenceInterval{
			Spend:        spend,
			LowerBound:   consensusCPA - ciZScore*std,
			UpperBound:   consensusCPA + ciZScore*std,
			StdDeviation: std,
			Variance:     variance,
		}
	}

	confidences := make([]float64, len(predictions))
	for i, prediction := range predictions {
		confidences[i] = prediction.Confidence
	}

	variances := make([]float64, len(intervals))
	for i, interval := range intervals {
		variances[i] = interval.Variance
	}

	var predictionVariance float64
	if len(variances) > 0 {
		predictionVariance = stat.Mean(variances, nil)
	}

	return &domain.EnsemblePrediction{
		PeriodWeights:       weightMap,
		ConsensusTrajectory: consensus,
		ConfidenceIntervals: intervals,
		EnsembleConfidence:  stat.Mean(confidences, nil),
		PredictionVariance:  predictionVariance,
		RecommendedSpend:    RecommendSpend(targetSpends, levels),
		RiskLevel:           assessEnsembleRisk(levels, intervals),
	}
}

// periodWeights pondera confiança, R², volume de dados e qualidade do ajuste, e
// normaliza para somar 1.
func periodWeights(predictions []*domain.PeriodPrediction) []float64 {
	weights := make([]float64, len(predictions))
	for i, prediction := range predictions {
		quality := 0.5
		if prediction.FitQuality == domain.FitExcellent || prediction.FitQuality == domain.FitGood {
			quality = 1.0
		}

		dataScore := 0.0
		if prediction.DataPoints > 0 {
			dataScore = math.Min(math.Log10(float64(prediction.DataPoints))/2, 1.0)
		}

		weights[i] = 0.4*prediction.Confidence +
			0.3*prediction.RSquared +
			0.2*dataScore +
			0.1*quality
	}

	total := floats.Sum(weights)
	if total <= 0 || !isFinite(total) {
		for i := range weights {
			weights[i] = 1 / float64(len(weights))
		}
		return weights
	}

	floats.Scale(1/total, weights)
	return weights
}

func assessEnsembleRisk(levels []float64, intervals []domain.ConfidenceInterval) domain.RiskLevel {
	if len(levels) == 0 {
		return domain.RiskLow
	}

	var widthSum float64
	for _, interval := range intervals {
		widthSum += interval.Width()
	}
	meanWidth := widthSum / float64(len(intervals))

	high := 0
	for _, level := range levels {
		if level > 0.7 {
			high++
		}
	}
	highShare := float64(high) / float64(len(levels))

	switch {
	case meanWidth > 2.0 || highShare > 0.6:
		return domain.RiskHigh
	case meanWidth > 1.0 || highShare > 0.3:
		return domain.RiskMedium
	default:
		return domain.RiskLow
	}
}
