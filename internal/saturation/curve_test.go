package saturation

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/saturation-api/internal/domain"
)

func TestFitCurve_RecuperaParametrosDaCurva(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	spend := make([]float64, 0, 30)
	cpa := make([]float64, 0, 30)
	for i := 0; i < 30; i++ {
		s := 200 + float64(i)*130
		spend = append(spend, s)
		cpa = append(cpa, Logistic(s, referenceCurve)*(1+0.01*rng.NormFloat64()))
	}

	curve := FitCurve(spend, cpa)

	require.False(t, curve.Fallback)
	assert.InEpsilon(t, referenceCurve.MaxCPA, curve.MaxCPA, 0.15)
	assert.InEpsilon(t, referenceCurve.Steepness, curve.Steepness, 0.15)
	assert.InEpsilon(t, referenceCurve.InflectionPoint, curve.InflectionPoint, 0.15)
}

func TestFitCurve_Fallback(t *testing.T) {
	tests := []struct {
		name          string
		spend         []float64
		cpa           []float64
		wantMaxCPA    float64
		wantInflexion float64
	}{
		{
			name:          "investimento constante",
			spend:         []float64{1000, 1000, 1000, 1000, 1000},
			cpa:           []float64{10, 12, 11, 13, 9},
			wantMaxCPA:    19.5,
			wantInflexion: 1000,
		},
		{
			name:          "CPA sempre zero",
			spend:         []float64{100, 200, 300, 400},
			cpa:           []float64{0, 0, 0, 0},
			wantMaxCPA:    minCurveCeiling,
			wantInflexion: 250,
		},
		{
			name:          "poucos pontos",
			spend:         []float64{100, 300},
			cpa:           []float64{5, 8},
			wantMaxCPA:    12,
			wantInflexion: 200,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			curve := FitCurve(tt.spend, tt.cpa)

			assert.True(t, curve.Fallback)
			assert.InDelta(t, tt.wantMaxCPA, curve.MaxCPA, 1e-9)
			assert.Equal(t, fallbackSteepness, curve.Steepness)
			assert.InDelta(t, tt.wantInflexion, curve.InflectionPoint, 1e-9)
			assert.Greater(t, curve.MaxCPA, 0.0)

			// No ponto de inflexão a curva vale metade do teto
			assert.InDelta(t, curve.MaxCPA/2, Logistic(curve.InflectionPoint, curve), 1e-9)

			again := FitCurve(tt.spend, tt.cpa)
			assert.Equal(t, curve, again)
		})
	}
}

func TestLinearTrend(t *testing.T) {
	spend := []float64{100, 200, 300, 400, 500}
	cpa := make([]float64, len(spend))
	for i, s := range spend {
		cpa[i] = 2 + 0.01*s
	}

	slope, intercept := linearTrend(spend, cpa)

	assert.InDelta(t, 0.01, slope, 1e-6)
	assert.InDelta(t, 2.0, intercept, 1e-6)
}

func TestSaturationLevel_MonotonoELimitado(t *testing.T) {
	curves := []domain.CurveParameters{
		referenceCurve,
		{MaxCPA: 10, Steepness: fallbackSteepness, InflectionPoint: 500, Fallback: true},
		{MaxCPA: 1, Steepness: 50, InflectionPoint: 10},
	}

	for _, curve := range curves {
		previous := -1.0
		for spend := 0.0; spend <= 10000; spend += 250 {
			level := SaturationLevel(spend, curve)
			assert.GreaterOrEqual(t, level, 0.0)
			assert.LessOrEqual(t, level, 1.0)
			assert.GreaterOrEqual(t, level, previous)
			previous = level
		}
	}
}

func TestLogistic_ExpoenteExtremoNaoGeraNaN(t *testing.T) {
	curve := domain.CurveParameters{MaxCPA: 20, Steepness: 1e6, InflectionPoint: 10}

	low := Logistic(0, curve)
	high := Logistic(1e9, curve)

	assert.False(t, math.IsNaN(low) || math.IsInf(low, 0))
	assert.False(t, math.IsNaN(high) || math.IsInf(high, 0))
	assert.InDelta(t, 0, low, 1e-9)
	assert.InDelta(t, 20, high, 1e-9)
	assert.Equal(t, 0.0, SaturationLevel(100, domain.CurveParameters{}))
}
