package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
	"github.com/vfg2006/saturation-api/internal/config"
	"github.com/vfg2006/saturation-api/internal/domain"
)

const forecastKeyPrefix = "saturation:forecast:"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ForecastCache guarda a última previsão de cada campanha
type ForecastCache interface {
	Get(ctx context.Context, campaignID string) (*domain.SaturationPredictionResponse, error)
	Set(ctx context.Context, forecast *domain.SaturationPredictionResponse) error
}

// Connect cria o client Redis a partir de uma URL redis:// ou de host:porta
func Connect(ctx context.Context, cfg config.Redis) (*redis.Client, error) {
	var client *redis.Client
	if strings.HasPrefix(cfg.Addr, "redis://") {
		opt, err := redis.ParseURL(cfg.Addr)
		if err != nil {
			return nil, fmt.Errorf("erro ao interpretar a URL do redis: %w", err)
		}
		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		})
	}

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("erro ao conectar ao redis: %w", err)
	}

	return client, nil
}

type redisForecastCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewForecastCache(client redis.Cmdable, ttl time.Duration) ForecastCache {
	return &redisForecastCache{
		client: client,
		ttl:    ttl,
	}
}

func forecastKey(campaignID string) string {
	return forecastKeyPrefix + campaignID
}

// Get retorna nil, nil quando não há previsão em cache
func (c *redisForecastCache) Get(ctx context.Context, campaignID string) (*domain.SaturationPredictionResponse, error) {
	raw, err := c.client.Get(ctx, forecastKey(campaignID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao ler previsão do cache: %w", err)
	}

	forecast := &domain.SaturationPredictionResponse{}
	if err := json.Unmarshal(raw, forecast); err != nil {
		return nil, fmt.Errorf("erro ao deserializar previsão do cache: %w", err)
	}

	return forecast, nil
}

func (c *redisForecastCache) Set(ctx context.Context, forecast *domain.SaturationPredictionResponse) error {
	raw, err := json.Marshal(forecast)
	if err != nil {
		return fmt.Errorf("erro ao serializar previsão para o cache: %w", err)
	}

	if err := c.client.Set(ctx, forecastKey(forecast.CampaignID), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("erro ao gravar previsão no cache: %w", err)
	}

	return nil
}
