package saturation

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/saturation-api/internal/domain"
)

const (
	DefaultModelVersion  = "2.0.0"
	DefaultMinDataPoints = 5
)

var (
	ErrCampaignIDRequired  = errors.New("saturation: campaign id is required")
	ErrInvalidTargetSpends = errors.New("saturation: target spends must be a non-empty list of positive values")
)

// HistoryFetcher devolve o histórico diário de uma campanha em ordem crescente de data
type HistoryFetcher interface {
	FetchHistory(ctx context.Context, campaignID string) ([]domain.HistoricalObservation, error)
}

type HistoryFetcherFunc func(ctx context.Context, campaignID string) ([]domain.HistoricalObservation, error)

func (f HistoryFetcherFunc) FetchHistory(ctx context.Context, campaignID string) ([]domain.HistoricalObservation, error) {
	return f(ctx, campaignID)
}

// Model coordena o ajuste por período e o ensemble
type Model struct {
	fetcher       HistoryFetcher
	corrector     Corrector
	now           func() time.Time
	modelVersion  string
	minDataPoints int
}

type Option func(*Model)

func WithCorrector(corrector Corrector) Option {
	return func(m *Model) {
		m.corrector = corrector
	}
}

func WithClock(now func() time.Time) Option {
	return func(m *Model) {
		m.now = now
	}
}

func WithModelVersion(version string) Option {
	return func(m *Model) {
		if version != "" {
			m.modelVersion = version
		}
	}
}

func NewModel(fetcher HistoryFetcher, opts ...Option) *Model {
	m := &Model{
		fetcher:       fetcher,
		corrector:     SpendBandCorrector{},
		now:           time.Now,
		modelVersion:  DefaultModelVersion,
		minDataPoints: DefaultMinDataPoints,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

func (m *Model) ModelVersion() string {
	return m.modelVersion
}

// PredictMultiPeriod busca o histórico da campanha e executa a previsão completa
func (m *Model) PredictMultiPeriod(ctx context.Context, campaignID string, targetSpends []float64) (*domain.MultiPeriodResult, error) {
	if err := validateInput(campaignID, targetSpends); err != nil {
		return nil, err
	}
	if m.fetcher == nil {
		return nil, errors.New("saturation: history fetcher not configured")
	}

	history, err := m.fetcher.FetchHistory(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("saturation: erro ao buscar histórico da campanha %s: %w", campaignID, err)
	}

	return m.PredictFromHistory(ctx, campaignID, history, targetSpends)
}

// PredictFromHistory executa a previsão sobre um histórico já carregado
func (m *Model) PredictFromHistory(ctx context.Context, campaignID string, history []domain.HistoricalObservation, targetSpends []float64) (*domain.MultiPeriodResult, error) {
	if err := validateInput(campaignID, targetSpends); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger := logrus.WithFields(logrus.Fields{
		"campaign_id": campaignID,
		"data_points": len(history),
	})

	now := m.now()
	targets := append([]float64(nil), targetSpends...)

	result := &domain.MultiPeriodResult{
		CampaignID:          campaignID,
		PredictionTimestamp: now,
		TargetSpends:        targets,
		PeriodPredictions:   map[domain.Period]*domain.PeriodPrediction{},
	}

	if len(history) < m.minDataPoints {
		logger.Warn("saturation: dados históricos insuficientes")
		result.Metadata = m.insufficientDataMetadata(campaignID, len(history), now)
		return result, nil
	}

	logger.Info("saturation: iniciando previsão multi-período")

	var (
		wg           sync.WaitGroup
		predictions  = make([]*domain.PeriodPrediction, len(domain.AnalysisPeriods))
		adaptiveDays int
	)

	for i, period := range domain.AnalysisPeriods {
		wg.Add(1)

		go func(i int, period domain.Period) {
			defer wg.Done()

			days, fixed := period.FixedDays()
			if !fixed {
				days, _ = SelectAdaptiveWindow(history, now, m.minDataPoints)
				adaptiveDays = days
			}

			window := domain.FilterByWindow(history, now, days)
			if len(window) < m.minDataPoints {
				logger.WithFields(logrus.Fields{
					"period":         period.String(),
					"days":           days,
					"window_entries": len(window),
				}).Warn("saturation: dados insuficientes para o período, ignorando")
				return
			}

			predictions[i] = predictPeriod(periodInput{
				campaignID:   campaignID,
				period:       period,
				days:         days,
				history:      window,
				targetSpends: targets,
			}, m.corrector)
		}(i, period)
	}

	wg.Wait()

	analyzed := make([]*domain.PeriodPrediction, 0, len(predictions))
	for _, prediction := range predictions {
		if prediction == nil {
			continue
		}
		analyzed = append(analyzed, prediction)
		result.PeriodPredictions[prediction.Period] = prediction
	}

	if len(analyzed) >= minEnsemblePeriods {
		result.Ensemble = CombinePeriods(analyzed, targets)
	} else {
		logger.WithField("periods_analyzed", len(analyzed)).Info("saturation: períodos insuficientes para ensemble")
	}

	result.Metadata = m.metadata(history, analyzed, adaptiveDays, now)

	logger.WithField("periods_analyzed", len(analyzed)).Info("saturation: previsão multi-período concluída")

	return result, nil
}

func (m *Model) metadata(history []domain.HistoricalObservation, analyzed []*domain.PeriodPrediction, adaptiveDays int, now time.Time) domain.PredictionMetadata {
	periods := make([]domain.Period, 0, len(analyzed))
	for _, prediction := range analyzed {
		periods = append(periods, prediction.Period)
	}

	start, end := history[0].Date, history[0].Date
	for _, obs := range history[1:] {
		if obs.Date.Before(start) {
			start = obs.Date
		}
		if obs.Date.After(end) {
			end = obs.Date
		}
	}

	return domain.PredictionMetadata{
		TotalDataPoints: len(history),
		DataDateRange: &domain.DateRange{
			Start:    start,
			End:      end,
			SpanDays: int(end.Sub(start).Hours() / 24),
		},
		PeriodsAnalyzed:   periods,
		AdaptiveDays:      adaptiveDays,
		ModelVersion:      m.modelVersion,
		AnalysisTimestamp: now,
	}
}

func (m *Model) insufficientDataMetadata(campaignID string, dataPoints int, now time.Time) domain.PredictionMetadata {
	return domain.PredictionMetadata{
		TotalDataPoints:   dataPoints,
		PeriodsAnalyzed:   []domain.Period{},
		ModelVersion:      m.modelVersion,
		AnalysisTimestamp: now,
		Error:             domain.MetadataErrorInsufficientData,
		Message:           fmt.Sprintf("Insufficient historical data for campaign %s", campaignID),
		MinRequiredPoints: m.minDataPoints,
	}
}

func validateInput(campaignID string, targetSpends []float64) error {
	if campaignID == "" {
		return ErrCampaignIDRequired
	}
	if len(targetSpends) == 0 {
		return ErrInvalidTargetSpends
	}
	for i, spend := range targetSpends {
		if spend <= 0 || math.IsNaN(spend) || math.IsInf(spend, 0) {
			return fmt.Errorf("%w: posição %d = %v", ErrInvalidTargetSpends, i, spend)
		}
	}
	return nil
}
