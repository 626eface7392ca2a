package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/saturation-api/infrastructure/database/postgres"
	"github.com/vfg2006/saturation-api/internal/domain"
)

const (
	campaignsTable = "campaigns c"
)

type CampaignRepository interface {
	GetCampaignByID(ctx context.Context, campaignID string) (*domain.Campaign, error)
	ListCampaigns(ctx context.Context, statuses []domain.CampaignStatus) ([]*domain.Campaign, error)
}

type campaignRepository struct {
	conn postgres.Queryer
}

func NewCampaignRepository(conn postgres.Queryer) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

func selectCampaigns() squirrel.SelectBuilder {
	return squirrel.
		Select("c.id, c.external_id, c.account_id, c.name, c.platform, c.status, c.daily_budget, c.updated_at").
		From(campaignsTable).
		PlaceholderFormat(squirrel.Dollar)
}

func (r *campaignRepository) GetCampaignByID(ctx context.Context, campaignID string) (*domain.Campaign, error) {
	query, args, err := selectCampaigns().
		Where(squirrel.Eq{"c.id": campaignID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	campaign, err := scanCampaign(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear campanha: %w", err)
	}

	return campaign, nil
}

// ListCampaigns lista as campanhas nos status informados; sem status, lista todas
func (r *campaignRepository) ListCampaigns(ctx context.Context, statuses []domain.CampaignStatus) ([]*domain.Campaign, error) {
	query, args, err := listCampaignsQuery(statuses)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	campaigns := make([]*domain.Campaign, 0)
	for rows.Next() {
		campaign, err := scanCampaign(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear campanhas: %w", err)
		}
		campaigns = append(campaigns, campaign)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return campaigns, nil
}

func listCampaignsQuery(statuses []domain.CampaignStatus) (string, []any, error) {
	builder := selectCampaigns().OrderBy("c.name ASC")

	if len(statuses) > 0 {
		values := make([]string, len(statuses))
		for i, status := range statuses {
			values[i] = string(status)
		}
		builder = builder.Where("c.status = ANY(?)", pq.Array(values))
	}

	return builder.ToSql()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCampaign(row rowScanner) (*domain.Campaign, error) {
	campaign := &domain.Campaign{}
	var status string

	if err := row.Scan(
		&campaign.ID,
		&campaign.ExternalID,
		&campaign.AccountID,
		&campaign.Name,
		&campaign.Platform,
		&status,
		&campaign.DailyBudget,
		&campaign.UpdatedAt,
	); err != nil {
		return nil, err
	}

	campaign.Status = domain.CampaignStatus(status)
	return campaign, nil
}
