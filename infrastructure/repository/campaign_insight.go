package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/saturation-api/infrastructure/database/postgres"
	"github.com/vfg2006/saturation-api/internal/domain"
)

const (
	campaignInsightsTable = "campaign_daily_insights ci"
)

type CampaignInsightRepository interface {
	GetDailyHistory(ctx context.Context, campaignID string, startDate, endDate time.Time) ([]*domain.CampaignDailyInsight, error)
}

type campaignInsightRepository struct {
	conn postgres.Queryer
}

func NewCampaignInsightRepository(conn postgres.Queryer) CampaignInsightRepository {
	return &campaignInsightRepository{
		conn: conn,
	}
}

// GetDailyHistory retorna as linhas diárias da campanha no intervalo, em ordem crescente de data
func (r *campaignInsightRepository) GetDailyHistory(ctx context.Context, campaignID string, startDate, endDate time.Time) ([]*domain.CampaignDailyInsight, error) {
	query, args, err := dailyHistoryQuery(campaignID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	insights := make([]*domain.CampaignDailyInsight, 0)
	for rows.Next() {
		insight := &domain.CampaignDailyInsight{}
		if err := rows.Scan(
			&insight.CampaignID,
			&insight.Date,
			&insight.Spend,
			&insight.Conversions,
			&insight.Impressions,
			&insight.Clicks,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear insights da campanha: %w", err)
		}
		insights = append(insights, insight)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return insights, nil
}

func dailyHistoryQuery(campaignID string, startDate, endDate time.Time) (string, []any, error) {
	return squirrel.
		Select("ci.campaign_id, ci.date, ci.spend, ci.conversions, ci.impressions, ci.clicks").
		From(campaignInsightsTable).
		Where(squirrel.Eq{"ci.campaign_id": campaignID}).
		Where(squirrel.GtOrEq{"ci.date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"ci.date": endDate.Format(time.DateOnly)}).
		OrderBy("ci.date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}
