package saturation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/saturation-api/internal/domain"
)

func newTestModel(history []domain.HistoricalObservation, err error) *Model {
	fetcher := HistoryFetcherFunc(func(ctx context.Context, campaignID string) ([]domain.HistoricalObservation, error) {
		return history, err
	})
	return NewModel(fetcher, WithClock(fixedClock), WithCorrector(FixedCorrection(0)))
}

func TestModel_PredictMultiPeriod_DadosInsuficientes(t *testing.T) {
	history := historyAt([]int{2, 1, 0}, []float64{100, 200, 300}, []float64{5, 6, 7})
	model := newTestModel(history, nil)

	result, err := model.PredictMultiPeriod(context.Background(), "camp-1", []float64{1000, 2000})

	require.NoError(t, err)
	assert.True(t, result.InsufficientData())
	assert.Empty(t, result.PeriodPredictions)
	assert.Nil(t, result.Ensemble)
	assert.Equal(t, []float64{1000, 2000}, result.TargetSpends)
	assert.Equal(t, domain.MetadataErrorInsufficientData, result.Metadata.Error)
	assert.Equal(t, 3, result.Metadata.TotalDataPoints)
	assert.Equal(t, DefaultMinDataPoints, result.Metadata.MinRequiredPoints)
	assert.Equal(t, fixedNow, result.PredictionTimestamp)
}

func TestModel_PredictMultiPeriod_TodosOsPeriodos(t *testing.T) {
	history := logisticHistory(90, referenceCurve, 0.03, 11)
	model := newTestModel(history, nil)
	targets := []float64{4000, 1000, 2500, 500}

	result, err := model.PredictMultiPeriod(context.Background(), "camp-1", targets)
	require.NoError(t, err)

	assert.False(t, result.InsufficientData())
	require.Len(t, result.PeriodPredictions, len(domain.AnalysisPeriods))
	assert.Equal(t, domain.AnalysisPeriods, result.Metadata.PeriodsAnalyzed)

	for _, period := range domain.AnalysisPeriods {
		prediction := result.PeriodPredictions[period]
		require.NotNil(t, prediction, period.String())
		require.Len(t, prediction.Trajectory, len(targets))
		for i, point := range prediction.Trajectory {
			assert.Equal(t, targets[i], point.Spend)
		}
		if days, fixed := period.FixedDays(); fixed {
			assert.Equal(t, days, prediction.PeriodDays)
		}
	}

	assert.Contains(t, candidateWindows, result.Metadata.AdaptiveDays)
	assert.Equal(t, result.Metadata.AdaptiveDays, result.PeriodPredictions[domain.Adaptive].PeriodDays)

	require.NotNil(t, result.Ensemble)
	var total float64
	for _, w := range result.Ensemble.PeriodWeights {
		total += w
	}
	assert.InDelta(t, 1.0, total, 1e-9)
	require.Len(t, result.Ensemble.ConsensusTrajectory, len(targets))
	for i, point := range result.Ensemble.ConsensusTrajectory {
		assert.Equal(t, targets[i], point.Spend)
	}

	require.NotNil(t, result.Metadata.DataDateRange)
	assert.Equal(t, 89, result.Metadata.DataDateRange.SpanDays)
	assert.Equal(t, 90, result.Metadata.TotalDataPoints)
	assert.Equal(t, DefaultModelVersion, result.Metadata.ModelVersion)
}

func TestModel_PredictMultiPeriod_PeriodoCurtoIgnorado(t *testing.T) {
	history := historyAt(
		[]int{12, 10, 8, 4, 2, 0},
		[]float64{100, 400, 250, 800, 600, 1000},
		[]float64{5, 7, 6, 11, 9, 12},
	)
	model := newTestModel(history, nil)

	result, err := model.PredictMultiPeriod(context.Background(), "camp-1", []float64{500, 1500})
	require.NoError(t, err)

	assert.NotContains(t, result.PeriodPredictions, domain.ShortTerm)
	assert.Equal(t, []domain.Period{domain.MediumTerm, domain.LongTerm, domain.Adaptive}, result.Metadata.PeriodsAnalyzed)
	assert.Equal(t, 14, result.Metadata.AdaptiveDays)
	assert.NotNil(t, result.Ensemble)
}

func TestModel_PredictMultiPeriod_Deterministico(t *testing.T) {
	history := logisticHistory(45, referenceCurve, 0.05, 5)
	model := NewModel(HistoryFetcherFunc(func(context.Context, string) ([]domain.HistoricalObservation, error) {
		return history, nil
	}), WithClock(fixedClock))
	targets := []float64{1000, 3000, 6000}

	first, err := model.PredictMultiPeriod(context.Background(), "camp-9", targets)
	require.NoError(t, err)
	second, err := model.PredictMultiPeriod(context.Background(), "camp-9", targets)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestModel_PredictMultiPeriod_Erros(t *testing.T) {
	fetchErr := errors.New("conexão recusada")

	tests := []struct {
		name       string
		campaignID string
		targets    []float64
		fetchErr   error
		wantErr    error
	}{
		{name: "sem campanha", campaignID: "", targets: []float64{1000}, wantErr: ErrCampaignIDRequired},
		{name: "sem investimentos", campaignID: "camp-1", targets: nil, wantErr: ErrInvalidTargetSpends},
		{name: "investimento negativo", campaignID: "camp-1", targets: []float64{1000, -5}, wantErr: ErrInvalidTargetSpends},
		{name: "investimento zero", campaignID: "camp-1", targets: []float64{0}, wantErr: ErrInvalidTargetSpends},
		{name: "falha ao buscar histórico", campaignID: "camp-1", targets: []float64{1000}, fetchErr: fetchErr, wantErr: fetchErr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := newTestModel(nil, tt.fetchErr)

			result, err := model.PredictMultiPeriod(context.Background(), tt.campaignID, tt.targets)

			assert.Nil(t, result)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestModel_PredictFromHistory_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	model := newTestModel(nil, nil)
	_, err := model.PredictFromHistory(ctx, "camp-1", logisticHistory(20, referenceCurve, 0, 1), []float64{1000})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestWithModelVersion(t *testing.T) {
	assert.Equal(t, "3.1.0", NewModel(nil, WithModelVersion("3.1.0")).ModelVersion())
	assert.Equal(t, DefaultModelVersion, NewModel(nil, WithModelVersion("")).ModelVersion())
}
