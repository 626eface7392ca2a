package domain

import (
	"time"
)

type EfficiencyRating string

const (
	EfficiencyHighlyEfficient EfficiencyRating = "highly_efficient"
	EfficiencyEfficient       EfficiencyRating = "efficient"
	EfficiencyModerate        EfficiencyRating = "moderate"
	EfficiencyInefficient     EfficiencyRating = "inefficient"
)

type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

type FitQuality string

const (
	FitExcellent FitQuality = "excellent"
	FitGood      FitQuality = "good"
	FitFair      FitQuality = "fair"
	FitPoor      FitQuality = "poor"
)

// CurveParameters descreve a curva logística CPA(spend) = L / (1 + e^{-k(spend - x0)})
type CurveParameters struct {
	MaxCPA          float64 `json:"max_cpa"`
	Steepness       float64 `json:"steepness"`
	InflectionPoint float64 `json:"inflection_point"`

	// Preenchidos apenas quando o ajuste não linear falha e a tendência linear é usada
	Fallback        bool    `json:"fallback"`
	LinearSlope     float64 `json:"linear_slope,omitempty"`
	LinearIntercept float64 `json:"linear_intercept,omitempty"`
}

// TrajectoryPoint é a previsão de um período para um nível de investimento
type TrajectoryPoint struct {
	Spend            float64          `json:"spend"`
	PredictedCPA     float64          `json:"predicted_cpa"`
	BasePrediction   float64          `json:"base_prediction"`
	Adjustment       float64          `json:"adjustment"`
	SaturationLevel  float64          `json:"saturation_level"`
	EfficiencyRating EfficiencyRating `json:"efficiency_rating"`
	RiskLevel        RiskLevel        `json:"risk_level"`
}

type PeriodPrediction struct {
	Period            Period            `json:"period"`
	PeriodDays        int               `json:"period_days"`
	DataPoints        int               `json:"data_points"`
	Confidence        float64           `json:"confidence"`
	Curve             CurveParameters   `json:"curve"`
	Trajectory        []TrajectoryPoint `json:"spend_trajectory"`
	MAPE              float64           `json:"mape"`
	RSquared          float64           `json:"r_squared"`
	FitQuality        FitQuality        `json:"fit_quality"`
	RecommendedSpend  float64           `json:"recommended_spend"`
	SaturationWarning *string           `json:"saturation_warning"`
}

type ConsensusPoint struct {
	Spend                 float64            `json:"spend"`
	PredictedCPA          float64            `json:"predicted_cpa"`
	SaturationLevel       float64            `json:"saturation_level"`
	EfficiencyRating      EfficiencyRating   `json:"efficiency_rating"`
	IndividualPredictions map[Period]float64 `json:"individual_predictions"`
}

type ConfidenceInterval struct {
	Spend        float64 `json:"spend"`
	LowerBound   float64 `json:"lower_bound"`
	UpperBound   float64 `json:"upper_bound"`
	StdDeviation float64 `json:"std_deviation"`
	Variance     float64 `json:"variance"`
}

// Width retorna a largura do intervalo de confiança
func (c ConfidenceInterval) Width() float64 {
	return c.UpperBound - c.LowerBound
}

type EnsemblePrediction struct {
	PeriodWeights       map[Period]float64   `json:"period_weights"`
	ConsensusTrajectory []ConsensusPoint     `json:"consensus_trajectory"`
	ConfidenceIntervals []ConfidenceInterval `json:"confidence_intervals"`
	EnsembleConfidence  float64              `json:"ensemble_confidence"`
	PredictionVariance  float64              `json:"prediction_variance"`
	RecommendedSpend    float64              `json:"recommended_spend"`
	RiskLevel           RiskLevel            `json:"risk_level"`
}

type DateRange struct {
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	SpanDays int       `json:"span_days"`
}

// PredictionMetadata descreve os dados usados na análise. Error e Message só
// são preenchidos quando não há dados suficientes.
type PredictionMetadata struct {
	TotalDataPoints   int        `json:"total_data_points"`
	DataDateRange     *DateRange `json:"data_date_range,omitempty"`
	PeriodsAnalyzed   []Period   `json:"periods_analyzed"`
	AdaptiveDays      int        `json:"adaptive_days,omitempty"`
	ModelVersion      string     `json:"model_version"`
	AnalysisTimestamp time.Time  `json:"analysis_timestamp"`
	Error             string     `json:"error,omitempty"`
	Message           string     `json:"message,omitempty"`
	MinRequiredPoints int        `json:"min_required_points,omitempty"`
}

const MetadataErrorInsufficientData = "insufficient_data"

type MultiPeriodResult struct {
	CampaignID          string                       `json:"campaign_id"`
	PredictionTimestamp time.Time                    `json:"prediction_timestamp"`
	TargetSpends        []float64                    `json:"target_spends"`
	PeriodPredictions   map[Period]*PeriodPrediction `json:"predictions_by_period"`
	Ensemble            *EnsemblePrediction          `json:"ensemble"`
	Metadata            PredictionMetadata           `json:"metadata"`
}

func (r *MultiPeriodResult) InsufficientData() bool {
	return r != nil && r.Metadata.Error == MetadataErrorInsufficientData
}

// OrderedPredictions retorna as previsões de período na ordem fixa de análise
func (r *MultiPeriodResult) OrderedPredictions() []*PeriodPrediction {
	if r == nil {
		return nil
	}

	predictions := make([]*PeriodPrediction, 0, len(r.PeriodPredictions))
	for _, period := range AnalysisPeriods {
		if prediction, ok := r.PeriodPredictions[period]; ok && prediction != nil {
			predictions = append(predictions, prediction)
		}
	}
	return predictions
}
