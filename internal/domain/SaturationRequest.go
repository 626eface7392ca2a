package domain

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// SaturationPredictionRequest é o corpo aceito pelo endpoint de previsão de saturação
type SaturationPredictionRequest struct {
	CampaignID     string    `json:"campaign_id" validate:"required"`
	Platform       string    `json:"platform" validate:"omitempty,oneof=facebook meta google tiktok"`
	CurrentSpend   float64   `json:"current_spend" validate:"gte=0"`
	TargetSpend    float64   `json:"target_spend" validate:"required_without=TargetSpends,gte=0"`
	TargetSpends   []float64 `json:"target_spends,omitempty" validate:"omitempty,dive,gt=0"`
	HistoricalDays int       `json:"historical_days" validate:"omitempty,gte=5,lte=365"`
}

var requestValidator = validator.New()

func (r *SaturationPredictionRequest) Validate() error {
	return requestValidator.Struct(r)
}

type SaturationPredictionResponse struct {
	ForecastID       string             `json:"forecast_id"`
	CampaignID       string             `json:"campaign_id"`
	Platform         string             `json:"platform,omitempty"`
	RequestTimestamp time.Time          `json:"request_timestamp"`
	Result           *MultiPeriodResult `json:"result"`
	Recommendations  []string           `json:"recommendations"`
	DataQualityScore float64            `json:"data_quality_score"`
	ModelVersion     string             `json:"model_version"`
}

// ForecastEvent é publicado a cada previsão concluída
type ForecastEvent struct {
	ForecastID         string    `json:"forecast_id"`
	CampaignID         string    `json:"campaign_id"`
	PeriodsAnalyzed    []Period  `json:"periods_analyzed"`
	RecommendedSpend   float64   `json:"recommended_spend"`
	RiskLevel          RiskLevel `json:"risk_level,omitempty"`
	EnsembleConfidence float64   `json:"ensemble_confidence"`
	InsufficientData   bool      `json:"insufficient_data"`
	ModelVersion       string    `json:"model_version"`
	GeneratedAt        time.Time `json:"generated_at"`
}
