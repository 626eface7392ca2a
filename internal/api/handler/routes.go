package handler

import (
	"net/http"

	"github.com/vfg2006/saturation-api/internal/api/handler/router"
	"github.com/vfg2006/saturation-api/internal/usecases/forecasting"
	"github.com/vfg2006/saturation-api/pkg/middleware"
)

func Healthcheck(dependencies map[string]Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(dependencies),
		},
	}
}

func Saturation(service forecasting.SaturationForecaster) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/campaigns/:id/saturation",
			Method:      http.MethodPost,
			Handler:     PredictSaturation(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.CanForecast()},
		},
		{
			Path:        "/v1/campaigns/:id/saturation",
			Method:      http.MethodGet,
			Handler:     GetLatestSaturation(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
