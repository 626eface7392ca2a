package saturation

import (
	"math"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/saturation-api/internal/domain"
)

// Janelas candidatas para o período adaptativo, em ordem crescente
var candidateWindows = []int{7, 14, 21, 30, 45, 60, 90}

const defaultAdaptiveDays = 14

// WindowScore guarda a pontuação de uma janela candidata
type WindowScore struct {
	Days       int
	DataPoints int
	Data       float64
	Stability  float64
	Freshness  float64
	Fit        float64
	Total      float64
}

// SelectAdaptiveWindow escolhe a janela que melhor equilibra volume de dados,
// estabilidade do CPA, frescor e qualidade do ajuste. Em caso de empate vence a
// menor janela. Sem nenhuma janela com dados suficientes, retorna 14 dias.
func SelectAdaptiveWindow(history []domain.HistoricalObservation, asOf time.Time, minDataPoints int) (int, []WindowScore) {
	scores := make([]WindowScore, 0, len(candidateWindows))

	best := -1
	for _, days := range candidateWindows {
		window := domain.FilterByWindow(history, asOf, days)
		if len(window) < minDataPoints {
			continue
		}

		score := scoreWindow(window, days)
		scores = append(scores, score)

		if best < 0 || score.Total > scores[best].Total {
			best = len(scores) - 1
		}
	}

	if best < 0 {
		logrus.WithField("default_days", defaultAdaptiveDays).
			Warn("saturation: nenhuma janela com dados suficientes, usando período padrão")
		return defaultAdaptiveDays, scores
	}

	logrus.WithFields(logrus.Fields{
		"days":  scores[best].Days,
		"score": scores[best].Total,
	}).Debug("saturation: janela adaptativa selecionada")

	return scores[best].Days, scores
}

func scoreWindow(window []domain.HistoricalObservation, days int) WindowScore {
	spend, cpa := domain.SpendAndCPA(window)

	score := WindowScore{
		Days:       days,
		DataPoints: len(window),
		Data:       math.Min(float64(len(window))/20, 1.0),
		Stability:  trendStability(cpa),
		Freshness:  1 / (1 + float64(days)/30),
	}

	if curve, err := fitLogistic(spend, cpa); err == nil {
		predicted := make([]float64, len(spend))
		for i, s := range spend {
			predicted[i] = Logistic(s, curve)
		}
		score.Fit = rSquared(cpa, predicted)
	}

	score.Total = 0.25 * (score.Data + score.Stability + score.Freshness + score.Fit)
	return score
}

// trendStability = max(0, 1 - CV/0.5), limitado a [0,1]
func trendStability(cpa []float64) float64 {
	if len(cpa) < 3 {
		return 0.5
	}

	cv, ok := coefficientOfVariation(cpa)
	if !ok {
		return 0
	}
	return clamp(1-cv/0.5, 0, 1)
}
