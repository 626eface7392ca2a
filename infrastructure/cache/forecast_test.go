package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/saturation-api/internal/domain"
)

// fakeRedis implementa apenas Get e Set; os demais métodos de redis.Cmdable não são usados
type fakeRedis struct {
	redis.Cmdable
	values map[string]string
	ttls   map[string]time.Duration
	err    error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{
		values: map[string]string{},
		ttls:   map[string]time.Duration{},
	}
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	if f.err != nil {
		return redis.NewStringResult("", f.err)
	}
	value, ok := f.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(value, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	if f.err != nil {
		return redis.NewStatusResult("", f.err)
	}
	f.values[key] = string(value.([]byte))
	f.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func TestForecastCache_SetEGet(t *testing.T) {
	client := newFakeRedis()
	cache := NewForecastCache(client, 6*time.Hour)

	forecast := &domain.SaturationPredictionResponse{
		ForecastID:       "fc_123",
		CampaignID:       "camp-1",
		RequestTimestamp: time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC),
		DataQualityScore: 0.72,
		ModelVersion:     "2.0.0",
		Recommendations:  []string{"ok"},
	}

	require.NoError(t, cache.Set(context.Background(), forecast))
	assert.Equal(t, 6*time.Hour, client.ttls["saturation:forecast:camp-1"])

	got, err := cache.Get(context.Background(), "camp-1")
	require.NoError(t, err)
	assert.Equal(t, forecast, got)
}

func TestForecastCache_Get(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(*fakeRedis)
		wantNil bool
		wantErr bool
	}{
		{
			name:    "chave inexistente retorna nil sem erro",
			setup:   func(*fakeRedis) {},
			wantNil: true,
		},
		{
			name: "falha do redis",
			setup: func(f *fakeRedis) {
				f.err = errors.New("connection refused")
			},
			wantNil: true,
			wantErr: true,
		},
		{
			name: "valor corrompido",
			setup: func(f *fakeRedis) {
				f.values["saturation:forecast:camp-1"] = "{invalid"
			},
			wantNil: true,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newFakeRedis()
			tt.setup(client)

			got, err := NewForecastCache(client, time.Hour).Get(context.Background(), "camp-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if tt.wantNil {
				assert.Nil(t, got)
			}
		})
	}
}
