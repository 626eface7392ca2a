package forecasting

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/saturation-api/infrastructure/cache"
	"github.com/vfg2006/saturation-api/infrastructure/messaging"
	"github.com/vfg2006/saturation-api/infrastructure/repository"
	"github.com/vfg2006/saturation-api/internal/config"
	"github.com/vfg2006/saturation-api/internal/domain"
	"github.com/vfg2006/saturation-api/internal/saturation"
	"github.com/vfg2006/saturation-api/pkg/apiErrors"
	"github.com/vfg2006/saturation-api/pkg/log"
	"github.com/vfg2006/saturation-api/pkg/utils"
)

// Service implementa SaturationForecaster
type Service struct {
	predictor          Predictor
	history            *HistoryLoader
	campaignRepository repository.CampaignRepository
	forecastRepository repository.ForecastRepository
	forecastCache      cache.ForecastCache
	publisher          messaging.ForecastPublisher
	cfg                *config.Config
	now                func() time.Time
	newID              func() (string, error)
}

// NewService cria o serviço de previsão; cache e publisher são opcionais
func NewService(
	predictor Predictor,
	history *HistoryLoader,
	campaignRepository repository.CampaignRepository,
	forecastRepository repository.ForecastRepository,
	cfg *config.Config,
) *Service {
	return &Service{
		predictor:          predictor,
		history:            history,
		campaignRepository: campaignRepository,
		forecastRepository: forecastRepository,
		cfg:                cfg,
		now:                time.Now,
		newID:              utils.GenerateForecastID,
	}
}

// WithCache habilita o cache da última previsão por campanha
func (s *Service) WithCache(forecastCache cache.ForecastCache) *Service {
	s.forecastCache = forecastCache
	return s
}

// WithPublisher habilita a publicação de eventos de previsão
func (s *Service) WithPublisher(publisher messaging.ForecastPublisher) *Service {
	s.publisher = publisher
	return s
}

func (s *Service) PredictSaturation(ctx context.Context, request *domain.SaturationPredictionRequest) (*domain.SaturationPredictionResponse, error) {
	if request == nil {
		return nil, NewForecastError(ErrInvalidRequest, apiErrors.ErrInvalidRequest, "", "corpo da requisição ausente")
	}

	logger := log.ForContext(ctx).WithField("campaign_id", request.CampaignID)

	if err := request.Validate(); err != nil {
		return nil, NewForecastError(ErrInvalidRequest, apiErrors.ErrInvalidRequest, request.CampaignID, err.Error())
	}

	campaign, err := s.getCampaign(ctx, request.CampaignID)
	if err != nil {
		return nil, err
	}

	targetSpends := request.TargetSpends
	if len(targetSpends) == 0 {
		targetSpends = BuildSpendLadder(request.CurrentSpend, request.TargetSpend, defaultLadderSteps)
	}
	if len(targetSpends) == 0 {
		return nil, NewForecastError(ErrInvalidRequest, apiErrors.ErrInvalidRequest, request.CampaignID, "target_spend deve ser positivo")
	}

	var result *domain.MultiPeriodResult
	if request.HistoricalDays > 0 {
		history, loadErr := s.history.Load(ctx, request.CampaignID, request.HistoricalDays)
		if loadErr != nil {
			logger.WithError(loadErr).Error("Erro ao carregar histórico da campanha")
			return nil, NewForecastError(ErrFetchHistory, apiErrors.ErrDatabaseOperation, request.CampaignID, "falha ao carregar histórico")
		}
		result, err = s.predictor.PredictFromHistory(ctx, request.CampaignID, history, targetSpends)
	} else {
		result, err = s.predictor.PredictMultiPeriod(ctx, request.CampaignID, targetSpends)
	}
	if err != nil {
		return nil, s.predictionError(ctx, request.CampaignID, err)
	}

	platform := request.Platform
	if platform == "" {
		platform = campaign.Platform
	}
	if platform == "" {
		platform = s.cfg.Saturation.DefaultPlatform
	}

	response, err := s.buildResponse(request.CampaignID, platform, result)
	if err != nil {
		return nil, err
	}

	s.store(ctx, response)

	return response, nil
}

// ForecastCampaign prevê a campanha numa escada do orçamento diário atual até
// SpendMultiplier vezes esse orçamento
func (s *Service) ForecastCampaign(ctx context.Context, campaign *domain.Campaign) (*domain.SaturationPredictionResponse, error) {
	if campaign == nil {
		return nil, NewForecastError(ErrCampaignNotFound, apiErrors.ErrCampaignNotFound, "", "campanha ausente")
	}
	if campaign.DailyBudget <= 0 {
		return nil, NewForecastError(ErrNoSpendBaseline, apiErrors.ErrInvalidRequest, campaign.ID, "campanha sem orçamento diário")
	}

	targetSpends := BuildSpendLadder(
		campaign.DailyBudget,
		campaign.DailyBudget*s.cfg.ForecastSync.SpendMultiplier,
		defaultLadderSteps,
	)

	result, err := s.predictor.PredictMultiPeriod(ctx, campaign.ID, targetSpends)
	if err != nil {
		return nil, s.predictionError(ctx, campaign.ID, err)
	}

	platform := campaign.Platform
	if platform == "" {
		platform = s.cfg.Saturation.DefaultPlatform
	}

	response, err := s.buildResponse(campaign.ID, platform, result)
	if err != nil {
		return nil, err
	}

	s.store(ctx, response)

	return response, nil
}

// GetLatestForecast consulta o cache e, sem acerto, o histórico persistido
func (s *Service) GetLatestForecast(ctx context.Context, campaignID string) (*domain.SaturationPredictionResponse, error) {
	logger := log.ForContext(ctx).WithField("campaign_id", campaignID)

	if campaignID == "" {
		return nil, NewForecastError(ErrInvalidRequest, apiErrors.ErrMissingRequiredData, "", "campaign_id é obrigatório")
	}

	if s.forecastCache != nil {
		forecast, err := s.forecastCache.Get(ctx, campaignID)
		if err != nil {
			logger.WithError(err).Warn("Erro ao ler previsão do cache, consultando o banco")
		} else if forecast != nil {
			return forecast, nil
		}
	}

	forecast, err := s.forecastRepository.GetLatestByCampaignID(ctx, campaignID)
	if err != nil {
		logger.WithError(err).Error("Erro ao buscar última previsão no banco")
		return nil, NewForecastError(ErrFetchForecast, apiErrors.ErrDatabaseOperation, campaignID, "falha ao buscar previsão")
	}
	if forecast == nil {
		return nil, NewForecastError(ErrForecastNotFound, apiErrors.ErrForecastNotFound, campaignID, "nenhuma previsão gerada para a campanha")
	}

	if s.forecastCache != nil {
		if err := s.forecastCache.Set(ctx, forecast); err != nil {
			logger.WithError(err).Warn("Erro ao atualizar cache de previsão")
		}
	}

	return forecast, nil
}

func (s *Service) getCampaign(ctx context.Context, campaignID string) (*domain.Campaign, error) {
	campaign, err := s.campaignRepository.GetCampaignByID(ctx, campaignID)
	if err != nil {
		log.ForContext(ctx).WithError(errors.Wrap(err, "erro ao buscar campanha")).Error("Erro ao buscar campanha")
		return nil, NewForecastError(ErrFetchCampaign, apiErrors.ErrDatabaseOperation, campaignID, "falha ao buscar campanha")
	}
	if campaign == nil {
		return nil, NewForecastError(ErrCampaignNotFound, apiErrors.ErrCampaignNotFound, campaignID, "")
	}
	return campaign, nil
}

func (s *Service) predictionError(ctx context.Context, campaignID string, err error) error {
	switch {
	case stderrors.Is(err, saturation.ErrCampaignIDRequired), stderrors.Is(err, saturation.ErrInvalidTargetSpends):
		return NewForecastError(ErrInvalidRequest, apiErrors.ErrInvalidRequest, campaignID, err.Error())
	case stderrors.Is(err, context.Canceled), stderrors.Is(err, context.DeadlineExceeded):
		return errors.Wrap(err, "previsão interrompida")
	default:
		log.ForContext(ctx).WithError(err).Error("Erro ao executar previsão de saturação")
		return NewForecastError(ErrFetchHistory, apiErrors.ErrDatabaseOperation, campaignID, "falha ao carregar histórico")
	}
}

func (s *Service) buildResponse(campaignID, platform string, result *domain.MultiPeriodResult) (*domain.SaturationPredictionResponse, error) {
	forecastID, err := s.newID()
	if err != nil {
		return nil, NewForecastError(ErrGenerateID, apiErrors.ErrInternalServer, campaignID, err.Error())
	}

	return &domain.SaturationPredictionResponse{
		ForecastID:       forecastID,
		CampaignID:       campaignID,
		Platform:         platform,
		RequestTimestamp: s.now(),
		Result:           result,
		Recommendations:  buildRecommendations(result),
		DataQualityScore: dataQualityScore(result),
		ModelVersion:     s.predictor.ModelVersion(),
	}, nil
}

// store persiste, atualiza o cache e publica o evento. Falhas aqui não invalidam a previsão.
func (s *Service) store(ctx context.Context, response *domain.SaturationPredictionResponse) {
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"campaign_id": response.CampaignID,
		"forecast_id": response.ForecastID,
	})

	if s.forecastRepository != nil {
		if err := s.forecastRepository.Save(ctx, response); err != nil {
			logger.WithError(err).Error("Erro ao salvar previsão no banco")
		}
	}

	if s.forecastCache != nil {
		if err := s.forecastCache.Set(ctx, response); err != nil {
			logger.WithError(err).Warn("Erro ao gravar previsão no cache")
		}
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, forecastEvent(response)); err != nil {
			logger.WithError(err).Warn("Erro ao publicar evento de previsão")
		}
	}
}

func forecastEvent(response *domain.SaturationPredictionResponse) domain.ForecastEvent {
	event := domain.ForecastEvent{
		ForecastID:       response.ForecastID,
		CampaignID:       response.CampaignID,
		ModelVersion:     response.ModelVersion,
		GeneratedAt:      response.RequestTimestamp,
		InsufficientData: response.Result.InsufficientData(),
		PeriodsAnalyzed:  []domain.Period{},
	}

	if result := response.Result; result != nil {
		event.PeriodsAnalyzed = result.Metadata.PeriodsAnalyzed
		if ensemble := result.Ensemble; ensemble != nil {
			event.RecommendedSpend = ensemble.RecommendedSpend
			event.RiskLevel = ensemble.RiskLevel
			event.EnsembleConfidence = ensemble.EnsembleConfidence
		} else if predictions := result.OrderedPredictions(); len(predictions) > 0 {
			event.RecommendedSpend = predictions[0].RecommendedSpend
		}
	}

	return event
}
