package forecasting

import "math"

const defaultLadderSteps = 6

// BuildSpendLadder monta `steps` níveis igualmente espaçados entre o investimento atual e o
// alvo, incluindo as duas pontas, em ordem crescente. Sem investimento atual positivo a
// escada começa em alvo/steps. Retorna nil quando não há nenhum valor positivo.
func BuildSpendLadder(current, target float64, steps int) []float64 {
	if steps < 2 {
		steps = 2
	}

	low, high := math.Min(current, target), math.Max(current, target)
	if high <= 0 || math.IsNaN(high) || math.IsInf(high, 0) {
		return nil
	}
	if low <= 0 {
		low = high / float64(steps)
	}
	if low == high {
		return []float64{high}
	}

	step := (high - low) / float64(steps-1)
	ladder := make([]float64, steps)
	for i := range ladder {
		ladder[i] = low + float64(i)*step
	}
	ladder[steps-1] = high

	return ladder
}
