package forecasting

import (
	"context"
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/saturation-api/infrastructure/repository"
	"github.com/vfg2006/saturation-api/internal/domain"
)

// HistoryLoader lê as linhas diárias da campanha e as converte em observações do modelo
type HistoryLoader struct {
	repo         repository.CampaignInsightRepository
	lookbackDays int
	now          func() time.Time
}

func NewHistoryLoader(repo repository.CampaignInsightRepository, lookbackDays int) *HistoryLoader {
	return &HistoryLoader{
		repo:         repo,
		lookbackDays: lookbackDays,
		now:          time.Now,
	}
}

// WithClock troca o relógio usado para calcular o intervalo de datas
func (l *HistoryLoader) WithClock(now func() time.Time) *HistoryLoader {
	l.now = now
	return l
}

// FetchHistory carrega o histórico usando o lookback configurado
func (l *HistoryLoader) FetchHistory(ctx context.Context, campaignID string) ([]domain.HistoricalObservation, error) {
	return l.Load(ctx, campaignID, l.lookbackDays)
}

// Load carrega os últimos `days` dias da campanha. Dias sem conversão ficam de fora.
func (l *HistoryLoader) Load(ctx context.Context, campaignID string, days int) ([]domain.HistoricalObservation, error) {
	endDate := l.now()
	startDate := endDate.AddDate(0, 0, -days)

	rows, err := l.repo.GetDailyHistory(ctx, campaignID, startDate, endDate)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao carregar histórico da campanha %s", campaignID)
	}

	history := make([]domain.HistoricalObservation, 0, len(rows))
	for _, row := range rows {
		if row == nil {
			continue
		}
		if obs, ok := row.Observation(); ok {
			history = append(history, obs)
		}
	}

	sort.SliceStable(history, func(i, j int) bool {
		return history[i].Date.Before(history[j].Date)
	})

	return history, nil
}
