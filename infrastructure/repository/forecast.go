package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/lib/pq"
	"github.com/vfg2006/saturation-api/infrastructure/database/postgres"
	"github.com/vfg2006/saturation-api/internal/domain"
)

const (
	forecastsTable = "saturation_forecasts sf"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ForecastRepository guarda o histórico das previsões geradas
type ForecastRepository interface {
	Save(ctx context.Context, forecast *domain.SaturationPredictionResponse) error
	GetLatestByCampaignID(ctx context.Context, campaignID string) (*domain.SaturationPredictionResponse, error)
}

type forecastRepository struct {
	conn postgres.Queryer
}

func NewForecastRepository(conn postgres.Queryer) ForecastRepository {
	return &forecastRepository{
		conn: conn,
	}
}

func (r *forecastRepository) Save(ctx context.Context, forecast *domain.SaturationPredictionResponse) error {
	query, args, err := saveForecastQuery(forecast)
	if err != nil {
		return err
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *forecastRepository) GetLatestByCampaignID(ctx context.Context, campaignID string) (*domain.SaturationPredictionResponse, error) {
	query, args, err := squirrel.
		Select("sf.payload").
		From(forecastsTable).
		Where(squirrel.Eq{"sf.campaign_id": campaignID}).
		OrderBy("sf.created_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var payload []byte
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&payload); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear previsão: %w", err)
	}

	forecast := &domain.SaturationPredictionResponse{}
	if err := json.Unmarshal(payload, forecast); err != nil {
		return nil, fmt.Errorf("erro ao deserializar previsão: %w", err)
	}

	return forecast, nil
}

func saveForecastQuery(forecast *domain.SaturationPredictionResponse) (string, []any, error) {
	payload, err := json.Marshal(forecast)
	if err != nil {
		return "", nil, fmt.Errorf("erro ao serializar previsão para JSON: %w", err)
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("saturation_forecasts").
		Columns("id", "campaign_id", "model_version", "payload", "created_at").
		Values(
			forecast.ForecastID,
			forecast.CampaignID,
			forecast.ModelVersion,
			payload,
			forecast.RequestTimestamp,
		).
		Suffix("ON CONFLICT (id) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return query, args, nil
}
