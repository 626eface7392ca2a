package saturation

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// rSquared calcula 1 - SS_res/SS_tot, limitado a >= 0. Retorna 0 quando a série observada não varia.
func rSquared(actual, predicted []float64) float64 {
	if len(actual) == 0 || len(actual) != len(predicted) {
		return 0
	}

	mean := stat.Mean(actual, nil)

	var ssRes, ssTot float64
	for i := range actual {
		res := actual[i] - predicted[i]
		ssRes += res * res
		dev := actual[i] - mean
		ssTot += dev * dev
	}

	if ssTot <= 0 {
		return 0
	}

	r2 := 1 - ssRes/ssTot
	if math.IsNaN(r2) || r2 < 0 {
		return 0
	}
	return r2
}

// meanAbsolutePercentageError retorna o MAPE como fração (0.15 = 15%).
// Valores observados iguais a zero são ignorados.
func meanAbsolutePercentageError(actual, predicted []float64) float64 {
	if len(actual) != len(predicted) {
		return 0
	}

	var sum float64
	var n int
	for i := range actual {
		if actual[i] == 0 {
			continue
		}
		sum += math.Abs((actual[i] - predicted[i]) / actual[i])
		n++
	}

	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// coefficientOfVariation usa o desvio padrão amostral. Retorna ok=false se a média não for positiva.
func coefficientOfVariation(values []float64) (float64, bool) {
	if len(values) < 2 {
		return 0, false
	}

	mean, std := stat.MeanStdDev(values, nil)
	if mean <= 0 || math.IsNaN(std) {
		return 0, false
	}
	return std / mean, true
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func isFinite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
