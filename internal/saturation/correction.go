package saturation

import (
	"hash/fnv"
	"math/rand"
	"time"

	"github.com/vfg2006/saturation-api/internal/domain"
	"gonum.org/v1/gonum/stat"
)

// ContextFeatures são os agregados do período entregues à estratégia de correção
type ContextFeatures struct {
	CampaignID      string
	MeanSpend       float64
	MeanCPA         float64
	SpendVolatility float64
	DominantWeekday time.Weekday
	DataPoints      int
}

// Corrector devolve um ajuste multiplicativo por nível de investimento alvo.
// O CPA final é base * (1 + ajuste).
type Corrector interface {
	Correct(features ContextFeatures, period domain.Period, targetSpends []float64) ([]float64, error)
}

// CorrectorFunc adapta uma função comum para Corrector
type CorrectorFunc func(features ContextFeatures, period domain.Period, targetSpends []float64) ([]float64, error)

func (f CorrectorFunc) Correct(features ContextFeatures, period domain.Period, targetSpends []float64) ([]float64, error) {
	return f(features, period, targetSpends)
}

// NoCorrection mantém a previsão base da curva
type NoCorrection struct{}

func (NoCorrection) Correct(_ ContextFeatures, _ domain.Period, targetSpends []float64) ([]float64, error) {
	return make([]float64, len(targetSpends)), nil
}

// FixedCorrection aplica o mesmo ajuste a todos os níveis de investimento
type FixedCorrection float64

func (c FixedCorrection) Correct(_ ContextFeatures, _ domain.Period, targetSpends []float64) ([]float64, error) {
	adjustments := make([]float64, len(targetSpends))
	for i := range adjustments {
		adjustments[i] = float64(c)
	}
	return adjustments, nil
}

// SpendBandCorrector perturba a previsão base conforme a faixa de investimento.
// A semente vem da campanha e do período, então chamadas repetidas são reprodutíveis.
type SpendBandCorrector struct{}

func (SpendBandCorrector) Correct(features ContextFeatures, period domain.Period, targetSpends []float64) ([]float64, error) {
	rng := rand.New(rand.NewSource(correctionSeed(features.CampaignID, period)))

	adjustments := make([]float64, len(targetSpends))
	for i, spend := range targetSpends {
		switch {
		case spend < 10000:
			adjustments[i] = rng.NormFloat64() * 0.05
		case spend < 30000:
			adjustments[i] = rng.NormFloat64() * 0.1
		default:
			adjustments[i] = -0.05 + rng.NormFloat64()*0.15
		}
	}

	return adjustments, nil
}

func correctionSeed(campaignID string, period domain.Period) int64 {
	h := fnv.New64a()
	h.Write([]byte(campaignID))
	h.Write([]byte{0})
	h.Write([]byte(period.String()))
	return int64(h.Sum64())
}

func extractContextFeatures(campaignID string, history []domain.HistoricalObservation) ContextFeatures {
	features := ContextFeatures{
		CampaignID:      campaignID,
		DataPoints:      len(history),
		DominantWeekday: time.Monday,
	}
	if len(history) == 0 {
		return features
	}

	spend, cpa := domain.SpendAndCPA(history)
	meanSpend, stdSpend := stat.PopMeanStdDev(spend, nil)
	features.MeanSpend = meanSpend
	features.MeanCPA = stat.Mean(cpa, nil)
	if meanSpend > 0 {
		features.SpendVolatility = stdSpend / meanSpend
	}

	// Empate fica com o primeiro dia da semana (domingo primeiro)
	var counts [7]int
	for _, obs := range history {
		counts[obs.Date.Weekday()]++
	}
	best := 0
	for day := 1; day < len(counts); day++ {
		if counts[day] > counts[best] {
			best = day
		}
	}
	features.DominantWeekday = time.Weekday(best)

	return features
}
