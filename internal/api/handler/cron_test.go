package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/saturation-api/internal/api/handler/router"
	"github.com/vfg2006/saturation-api/internal/domain"
	"github.com/vfg2006/saturation-api/pkg/middleware"
)

type fakeSyncer struct {
	started bool
	calls   int
}

func (f *fakeSyncer) TriggerManualSync(context.Context) bool {
	f.calls++
	return f.started
}

func (f *fakeSyncer) GetStatus() map[string]any {
	return map[string]any{"sync_enabled": true}
}

func newCronServer(syncer ForecastSyncer, role domain.Role) http.Handler {
	rt := router.New(router.WithRoutes(CronJobs(CronJobServices{SaturationForecastSyncService: syncer})...))
	return middleware.AuthMiddleware(staticValidator{claims: &domain.Claims{Role: role}})(rt)
}

func TestRunCronJob(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		started    bool
		role       domain.Role
		wantStatus int
		wantCalls  int
	}{
		{"Previsão agendada disparada", "/v1/cron/saturation/run", true, domain.RoleAdmin, http.StatusAccepted, 1},
		{"Tipo all dispara a previsão", "/v1/cron/all/run", true, domain.RoleAdmin, http.StatusAccepted, 1},
		{"Execução já em andamento", "/v1/cron/saturation/run", false, domain.RoleAdmin, http.StatusConflict, 1},
		{"Tipo desconhecido", "/v1/cron/meta/run", true, domain.RoleAdmin, http.StatusBadRequest, 0},
		{"Analista não pode disparar", "/v1/cron/saturation/run", true, domain.RoleAnalyst, http.StatusForbidden, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			syncer := &fakeSyncer{started: tt.started}

			rec := doRequest(newCronServer(syncer, tt.role), http.MethodPost, tt.path, "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCalls, syncer.calls)
		})
	}
}

func TestGetCronStatus(t *testing.T) {
	rec := doRequest(newCronServer(&fakeSyncer{}, domain.RoleAdmin), http.MethodGet, "/v1/cron/status", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["saturation"]["sync_enabled"])
}

func TestHealthcheckHandler(t *testing.T) {
	t.Run("Dependências saudáveis", func(t *testing.T) {
		h := HealthcheckHandler(map[string]Pinger{
			"postgres": PingerFunc(func(context.Context) error { return nil }),
		})
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"postgres":"up"`)
	})

	t.Run("Dependência fora do ar - 503", func(t *testing.T) {
		h := HealthcheckHandler(map[string]Pinger{
			"redis": PingerFunc(func(context.Context) error { return context.DeadlineExceeded }),
		})
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), `"redis":"down"`)
	})
}
