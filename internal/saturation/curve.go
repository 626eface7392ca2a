package saturation

import (
	"errors"
	"fmt"
	"math"

	"github.com/sajari/regression"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/saturation-api/internal/domain"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/optimize"
	"gonum.org/v1/gonum/stat"
)

const (
	// Inclinação usada pelo fallback linear: região quase linear da curva
	fallbackSteepness = 0.0001
	minCurveCeiling   = 1e-6
	maxExponent       = 700.0
	minFitPoints      = 3
	maxFitEvaluations = 4000
)

var ErrCurveFitDivergence = errors.New("saturation: curve fit did not converge")

// Logistic avalia a curva ajustada em um nível de investimento
func Logistic(spend float64, curve domain.CurveParameters) float64 {
	return logistic(spend, curve.MaxCPA, curve.Steepness, curve.InflectionPoint)
}

func logistic(x, maxCPA, steepness, inflection float64) float64 {
	exponent := -steepness * (x - inflection)
	if math.IsNaN(exponent) {
		exponent = 0
	}
	exponent = clamp(exponent, -maxExponent, maxExponent)
	return maxCPA / (1 + math.Exp(exponent))
}

// SaturationLevel é a razão entre o CPA previsto e o CPA máximo da curva, em [0,1]
func SaturationLevel(spend float64, curve domain.CurveParameters) float64 {
	if curve.MaxCPA <= 0 {
		return 0
	}
	return clamp(Logistic(spend, curve)/curve.MaxCPA, 0, 1)
}

// FitCurve ajusta a curva logística e, se o ajuste falhar, usa a aproximação linear
func FitCurve(spend, cpa []float64) domain.CurveParameters {
	curve, err := fitLogistic(spend, cpa)
	if err == nil {
		return curve
	}

	logrus.WithError(err).WithField("data_points", len(spend)).
		Warn("saturation: ajuste logístico falhou, usando tendência linear")

	return fitLinearFallback(spend, cpa)
}

// fitLogistic faz mínimos quadrados não lineares com Nelder-Mead. Os parâmetros são
// otimizados em escala relativa ao chute inicial; todos devem ser >= 0.
func fitLogistic(spend, cpa []float64) (domain.CurveParameters, error) {
	if len(spend) != len(cpa) || len(spend) < minFitPoints {
		return domain.CurveParameters{}, fmt.Errorf("%w: %d pontos", ErrCurveFitDivergence, len(spend))
	}
	if !isFinite(spend...) || !isFinite(cpa...) {
		return domain.CurveParameters{}, fmt.Errorf("%w: valores não finitos", ErrCurveFitDivergence)
	}

	meanSpend, stdSpend := stat.PopMeanStdDev(spend, nil)
	maxCPA := floats.Max(cpa)
	if stdSpend == 0 {
		return domain.CurveParameters{}, fmt.Errorf("%w: investimento sem variância", ErrCurveFitDivergence)
	}
	if maxCPA <= 0 {
		return domain.CurveParameters{}, fmt.Errorf("%w: CPA máximo não positivo", ErrCurveFitDivergence)
	}

	scale := []float64{1.5 * maxCPA, 1 / stdSpend, meanSpend}
	for i := range scale {
		if scale[i] == 0 {
			scale[i] = 1
		}
	}

	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			l, k, x0 := x[0]*scale[0], x[1]*scale[1], x[2]*scale[2]
			if l < 0 || k < 0 || x0 < 0 {
				return math.Inf(1)
			}

			var sse float64
			for i := range spend {
				res := cpa[i] - logistic(spend[i], l, k, x0)
				sse += res * res
			}
			return sse
		},
	}

	settings := &optimize.Settings{
		FuncEvaluations: maxFitEvaluations,
		Converger: &optimize.FunctionConverge{
			Absolute:   1e-12,
			Relative:   1e-10,
			Iterations: 100,
		},
	}

	result, err := optimize.Minimize(problem, []float64{1, 1, 1}, settings, &optimize.NelderMead{})
	if err != nil {
		return domain.CurveParameters{}, fmt.Errorf("%w: %v", ErrCurveFitDivergence, err)
	}

	switch result.Status {
	case optimize.Failure, optimize.IterationLimit, optimize.FunctionEvaluationLimit, optimize.RuntimeLimit:
		return domain.CurveParameters{}, fmt.Errorf("%w: status %s", ErrCurveFitDivergence, result.Status)
	}

	curve := domain.CurveParameters{
		MaxCPA:          result.X[0] * scale[0],
		Steepness:       result.X[1] * scale[1],
		InflectionPoint: result.X[2] * scale[2],
	}
	if !isFinite(curve.MaxCPA, curve.Steepness, curve.InflectionPoint, result.F) || curve.MaxCPA <= 0 {
		return domain.CurveParameters{}, fmt.Errorf("%w: parâmetros inválidos", ErrCurveFitDivergence)
	}

	return curve, nil
}

// fitLinearFallback calcula a tendência linear entre investimento e CPA e a expressa
// como parâmetros logísticos quase lineares. Sempre retorna L > 0, k > 0.
func fitLinearFallback(spend, cpa []float64) domain.CurveParameters {
	var maxCPA, meanSpend float64
	if len(cpa) > 0 {
		maxCPA = floats.Max(cpa)
	}
	if len(spend) > 0 {
		meanSpend = stat.Mean(spend, nil)
	}

	slope, intercept := linearTrend(spend, cpa)

	return domain.CurveParameters{
		MaxCPA:          math.Max(1.5*maxCPA, minCurveCeiling),
		Steepness:       fallbackSteepness,
		InflectionPoint: meanSpend,
		Fallback:        true,
		LinearSlope:     slope,
		LinearIntercept: intercept,
	}
}

func linearTrend(spend, cpa []float64) (slope, intercept float64) {
	if len(cpa) > 0 {
		intercept = stat.Mean(cpa, nil)
	}
	if len(spend) < 2 || len(spend) != len(cpa) || stat.Variance(spend, nil) == 0 {
		return 0, intercept
	}

	var r regression.Regression
	r.SetObserved("cpa")
	r.SetVar(0, "spend")
	for i := range spend {
		r.Train(regression.DataPoint(cpa[i], []float64{spend[i]}))
	}

	if err := r.Run(); err != nil {
		logrus.WithError(err).Debug("saturation: regressão linear do fallback falhou")
		return 0, intercept
	}

	coeffs := r.GetCoeffs()
	if len(coeffs) < 2 || !isFinite(coeffs[0], coeffs[1]) {
		return 0, intercept
	}

	return coeffs[1], coeffs[0]
}
