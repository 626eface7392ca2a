package saturation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/saturation-api/internal/domain"
)

func TestSpendBandCorrector_Reprodutivel(t *testing.T) {
	corrector := SpendBandCorrector{}
	targets := []float64{5000, 20000, 50000}
	features := ContextFeatures{CampaignID: "camp-42"}

	first, err := corrector.Correct(features, domain.LongTerm, targets)
	require.NoError(t, err)
	second, err := corrector.Correct(features, domain.LongTerm, targets)
	require.NoError(t, err)

	assert.Len(t, first, len(targets))
	assert.Equal(t, first, second)

	other, err := corrector.Correct(ContextFeatures{CampaignID: "camp-43"}, domain.LongTerm, targets)
	require.NoError(t, err)
	assert.NotEqual(t, first, other)
}

func TestNoCorrection(t *testing.T) {
	adjustments, err := NoCorrection{}.Correct(ContextFeatures{}, domain.Adaptive, []float64{1, 2})

	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0}, adjustments)
}

func TestExtractContextFeatures(t *testing.T) {
	// 2024-06-03 é segunda-feira
	monday := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	history := []domain.HistoricalObservation{
		{Date: monday, Spend: 100, CPA: 10},
		{Date: monday.AddDate(0, 0, 1), Spend: 200, CPA: 20},
		{Date: monday.AddDate(0, 0, 7), Spend: 300, CPA: 30},
		{Date: monday.AddDate(0, 0, 8), Spend: 400, CPA: 40},
	}

	features := extractContextFeatures("camp-1", history)

	assert.Equal(t, "camp-1", features.CampaignID)
	assert.Equal(t, 4, features.DataPoints)
	assert.InDelta(t, 250, features.MeanSpend, 1e-9)
	assert.InDelta(t, 25, features.MeanCPA, 1e-9)
	assert.Greater(t, features.SpendVolatility, 0.0)
	// Segunda e terça empatam; vence o primeiro dia da semana
	assert.Equal(t, time.Monday, features.DominantWeekday)
}
