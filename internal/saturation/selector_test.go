package saturation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectAdaptiveWindow(t *testing.T) {
	t.Run("histórico longo escolhe uma janela candidata", func(t *testing.T) {
		history := logisticHistory(90, referenceCurve, 0.02, 7)

		days, scores := SelectAdaptiveWindow(history, fixedNow, DefaultMinDataPoints)

		assert.Contains(t, candidateWindows, days)
		assert.Len(t, scores, len(candidateWindows))

		best := scores[0]
		for _, score := range scores {
			assert.GreaterOrEqual(t, score.Total, 0.0)
			assert.LessOrEqual(t, score.Total, 1.0)
			if score.Total > best.Total {
				best = score
			}
		}
		assert.Equal(t, best.Days, days)
	})

	t.Run("sem janela com dados suficientes usa 14 dias", func(t *testing.T) {
		history := historyAt([]int{2, 1, 0}, []float64{100, 200, 300}, []float64{5, 6, 7})

		days, scores := SelectAdaptiveWindow(history, fixedNow, DefaultMinDataPoints)

		assert.Equal(t, defaultAdaptiveDays, days)
		assert.Empty(t, scores)
	})

	t.Run("empate fica com a menor janela", func(t *testing.T) {
		// Todas as observações estão nos últimos 12 dias, então toda janela >= 14
		// enxerga os mesmos dados e só o frescor diferencia
		history := historyAt(
			[]int{12, 10, 8, 4, 2, 0},
			[]float64{100, 400, 250, 800, 600, 1000},
			[]float64{5, 7, 6, 11, 9, 12},
		)

		days, scores := SelectAdaptiveWindow(history, fixedNow, DefaultMinDataPoints)

		assert.Equal(t, 14, days)
		assert.Equal(t, 14, scores[0].Days)
	})
}

func TestTrendStability(t *testing.T) {
	tests := []struct {
		name string
		cpa  []float64
		want float64
	}{
		{name: "menos de 3 pontos", cpa: []float64{10, 20}, want: 0.5},
		{name: "CPA constante", cpa: []float64{10, 10, 10, 10}, want: 1},
		{name: "média não positiva", cpa: []float64{0, 0, 0}, want: 0},
		{name: "variação alta", cpa: []float64{1, 50, 2, 80}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, trendStability(tt.cpa), 1e-9)
		})
	}
}
