package forecasting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/saturation-api/infrastructure/repository/mocks"
	"github.com/vfg2006/saturation-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestHistoryLoader_FetchHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockCampaignInsightRepository(ctrl)
	loader := NewHistoryLoader(repo, 90).WithClock(func() time.Time { return testNow })

	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Usa o lookback configurado e descarta dias sem conversão", func(t *testing.T) {
		repo.EXPECT().
			GetDailyHistory(gomock.Any(), "cmp_1", testNow.AddDate(0, 0, -90), testNow).
			Return([]*domain.CampaignDailyInsight{
				{Date: day.AddDate(0, 0, 1), Spend: 200, Conversions: 4, Clicks: 30},
				nil,
				{Date: day, Spend: 100, Conversions: 0},
				{Date: day.AddDate(0, 0, -1), Spend: 90, Conversions: 3},
			}, nil)

		history, err := loader.FetchHistory(context.Background(), "cmp_1")

		require.NoError(t, err)
		require.Len(t, history, 2)
		assert.Equal(t, day.AddDate(0, 0, -1), history[0].Date)
		assert.Equal(t, 30.0, history[0].CPA)
		assert.Equal(t, 50.0, history[1].CPA)
		assert.Equal(t, 30, history[1].Clicks)
	})

	t.Run("Erro no repositório é propagado com contexto", func(t *testing.T) {
		dbErr := errors.New("connection refused")
		repo.EXPECT().
			GetDailyHistory(gomock.Any(), "cmp_1", gomock.Any(), gomock.Any()).
			Return(nil, dbErr)

		_, err := loader.Load(context.Background(), "cmp_1", 14)

		assert.ErrorIs(t, err, dbErr)
		assert.Contains(t, err.Error(), "cmp_1")
	})
}
