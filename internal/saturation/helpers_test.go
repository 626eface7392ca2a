package saturation

import (
	"math"
	"math/rand"
	"time"

	"github.com/vfg2006/saturation-api/internal/domain"
)

var fixedNow = time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time {
	return fixedNow
}

// logisticHistory gera `days` observações diárias terminando em fixedNow, com CPA
// seguindo a curva informada e ruído multiplicativo opcional.
func logisticHistory(days int, curve domain.CurveParameters, noise float64, seed int64) []domain.HistoricalObservation {
	rng := rand.New(rand.NewSource(seed))
	today := time.Date(fixedNow.Year(), fixedNow.Month(), fixedNow.Day(), 0, 0, 0, 0, time.UTC)

	history := make([]domain.HistoricalObservation, 0, days)
	for i := days - 1; i >= 0; i-- {
		spend := 200 + float64((i*337)%3800)
		cpa := Logistic(spend, curve) * (1 + noise*rng.NormFloat64())
		history = append(history, domain.HistoricalObservation{
			Date:        today.AddDate(0, 0, -i),
			Spend:       spend,
			CPA:         cpa,
			Conversions: int(math.Max(1, math.Round(spend/cpa))),
		})
	}
	return history
}

func historyAt(daysBack []int, spends, cpas []float64) []domain.HistoricalObservation {
	today := time.Date(fixedNow.Year(), fixedNow.Month(), fixedNow.Day(), 0, 0, 0, 0, time.UTC)

	history := make([]domain.HistoricalObservation, len(daysBack))
	for i, back := range daysBack {
		history[i] = domain.HistoricalObservation{
			Date:        today.AddDate(0, 0, -back),
			Spend:       spends[i],
			CPA:         cpas[i],
			Conversions: 1,
		}
	}
	return history
}

var referenceCurve = domain.CurveParameters{
	MaxCPA:          50,
	Steepness:       0.002,
	InflectionPoint: 2000,
}
