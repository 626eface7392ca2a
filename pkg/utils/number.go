package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}

	return math.Round(f*100) / 100
}

// Percent converte uma fração em percentual arredondado para inteiro
func Percent(fraction float64) int {
	if math.IsNaN(fraction) || math.IsInf(fraction, 0) {
		return 0
	}
	return int(math.Round(fraction * 100))
}
