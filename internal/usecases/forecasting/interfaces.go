package forecasting

import (
	"context"

	"github.com/vfg2006/saturation-api/internal/domain"
)

// Predictor é o modelo de saturação multi-período
type Predictor interface {
	PredictMultiPeriod(ctx context.Context, campaignID string, targetSpends []float64) (*domain.MultiPeriodResult, error)
	PredictFromHistory(ctx context.Context, campaignID string, history []domain.HistoricalObservation, targetSpends []float64) (*domain.MultiPeriodResult, error)
	ModelVersion() string
}

// CampaignForecaster gera a previsão de uma campanha com a escada padrão de investimento
type CampaignForecaster interface {
	ForecastCampaign(ctx context.Context, campaign *domain.Campaign) (*domain.SaturationPredictionResponse, error)
}

// SaturationForecaster é a interface completa usada pela API
type SaturationForecaster interface {
	CampaignForecaster

	// PredictSaturation executa a previsão para a requisição recebida
	PredictSaturation(ctx context.Context, request *domain.SaturationPredictionRequest) (*domain.SaturationPredictionResponse, error)

	// GetLatestForecast devolve a última previsão gerada para a campanha
	GetLatestForecast(ctx context.Context, campaignID string) (*domain.SaturationPredictionResponse, error)
}
