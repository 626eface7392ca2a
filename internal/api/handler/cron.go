package handler

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/saturation-api/pkg/apiErrors"
)

// Tipos de cron job aceitos na execução manual
const (
	CronJobTypeSaturation = "saturation"
	CronJobTypeAll        = "all"
)

// ForecastSyncer é o agendador que pode ser disparado manualmente
type ForecastSyncer interface {
	TriggerManualSync(ctx context.Context) bool
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	SaturationForecastSyncService ForecastSyncer
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeSaturation, CronJobTypeAll:
			if services.SaturationForecastSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de previsão agendada não disponível", nil)
				return
			}

			if !services.SaturationForecastSyncService.TriggerManualSync(r.Context()) {
				writeJSON(w, http.StatusConflict, map[string]any{
					"message": "Cron job já está em execução",
					"type":    cronType,
				})
				return
			}
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: saturation, all", nil)
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	})
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{}
		if services.SaturationForecastSyncService != nil {
			status[CronJobTypeSaturation] = services.SaturationForecastSyncService.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	})
}
