package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/julienschmidt/httprouter"
	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/saturation-api/internal/domain"
	"github.com/vfg2006/saturation-api/internal/usecases/forecasting"
	"github.com/vfg2006/saturation-api/pkg/apiErrors"
	"github.com/vfg2006/saturation-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const maxRequestBodyBytes = 1 << 20

// PredictSaturation gera a previsão multi-período para a campanha da URL
func PredictSaturation(service forecasting.SaturationForecaster) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		campaignID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		request := &domain.SaturationPredictionRequest{}
		body := http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
		if err := json.NewDecoder(body).Decode(request); err != nil && !errors.Is(err, io.EOF) {
			logger.WithError(err).Warn("saturation: invalid request body")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		if request.CampaignID != "" && request.CampaignID != campaignID {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "campaign_id do corpo difere da URL", nil)
			return
		}
		request.CampaignID = campaignID

		response, err := service.PredictSaturation(r.Context(), request)
		if err != nil {
			logger.WithError(err).WithField("campaign_id", campaignID).Error("saturation: prediction failed")
			writeForecastError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, response)
	})
}

// GetLatestSaturation devolve a última previsão gerada para a campanha
func GetLatestSaturation(service forecasting.SaturationForecaster) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		campaignID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		response, err := service.GetLatestForecast(r.Context(), campaignID)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).WithField("campaign_id", campaignID).Warn("saturation: latest forecast unavailable")
			writeForecastError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, response)
	})
}

func writeForecastError(w http.ResponseWriter, err error) {
	var forecastErr *forecasting.ForecastError
	if errors.As(err, &forecastErr) {
		apiErrors.WriteError(w, forecastErr.Code, forecastErr.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar previsão de saturação", nil)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.L.WithError(err).Error("saturation: error encoding response")
	}
}
