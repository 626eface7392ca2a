package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/saturation-api/infrastructure/repository"
	"github.com/vfg2006/saturation-api/internal/config"
	"github.com/vfg2006/saturation-api/internal/domain"
	"github.com/vfg2006/saturation-api/internal/usecases/forecasting"
)

// SaturationForecastSyncConfig representa a configuração do agendador de previsões de saturação
type SaturationForecastSyncConfig struct {
	CronSchedule        string
	RequestDelaySeconds int
	MaxConcurrentJobs   int
	SpendMultiplier     float64
	SyncEnabled         bool
}

// SyncSummary resume a última execução do agendador
type SyncSummary struct {
	Campaigns int `json:"campaigns"`
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
	Skipped   int `json:"skipped"`
}

// SaturationForecastSyncService gera periodicamente a previsão de saturação de todas as campanhas ativas
type SaturationForecastSyncService struct {
	scheduler           *gocron.Scheduler
	config              SaturationForecastSyncConfig
	campaignRepo        repository.CampaignRepository
	forecaster          forecasting.CampaignForecaster
	sleep               func(time.Duration)
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSummary         SyncSummary
}

// NewSaturationForecastSyncService cria uma nova instância do agendador de previsões
func NewSaturationForecastSyncService(
	campaignRepo repository.CampaignRepository,
	forecaster forecasting.CampaignForecaster,
	appConfig *config.Config,
) *SaturationForecastSyncService {
	syncConfig := SaturationForecastSyncConfig{
		CronSchedule:        appConfig.ForecastSync.CronSchedule,
		RequestDelaySeconds: appConfig.ForecastSync.RequestDelaySeconds,
		MaxConcurrentJobs:   appConfig.ForecastSync.MaxConcurrentJobs,
		SpendMultiplier:     appConfig.ForecastSync.SpendMultiplier,
		SyncEnabled:         appConfig.ForecastSync.Enabled,
	}
	if syncConfig.MaxConcurrentJobs <= 0 {
		syncConfig.MaxConcurrentJobs = 1
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"max_concurrent_jobs":   syncConfig.MaxConcurrentJobs,
		"spend_multiplier":      syncConfig.SpendMultiplier,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de previsões de saturação carregada")

	return &SaturationForecastSyncService{
		scheduler:    gocron.NewScheduler(time.Local),
		config:       syncConfig,
		campaignRepo: campaignRepo,
		forecaster:   forecaster,
		sleep:        time.Sleep,
	}
}

// Start inicia o agendador
func (s *SaturationForecastSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Previsão agendada de saturação desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de previsões de saturação")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllForecasts(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar previsões de saturação: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de previsões de saturação")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllForecasts gera a previsão de todas as campanhas ativas. Retorna false quando
// outra execução já está em andamento.
func (s *SaturationForecastSyncService) syncAllForecasts(ctx context.Context) bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Previsão de saturação já em andamento, ignorando")
		return false
	}
	s.syncRunning = true
	startTime := time.Now()
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando previsão de saturação para todas as campanhas ativas")

	campaigns, err := s.campaignRepo.ListCampaigns(ctx, []domain.CampaignStatus{domain.CampaignStatusActive})
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar campanhas ativas para previsão de saturação")
		return true
	}

	if len(campaigns) == 0 {
		logrus.Info("Nenhuma campanha ativa encontrada para previsão de saturação")
		s.finish(SyncSummary{})
		return true
	}

	summary := s.processCampaigns(ctx, campaigns)

	logrus.WithFields(logrus.Fields{
		"duration":  time.Since(startTime).String(),
		"campaigns": summary.Campaigns,
		"succeeded": summary.Succeeded,
		"failed":    summary.Failed,
		"skipped":   summary.Skipped,
	}).Info("Previsão de saturação concluída")

	s.finish(summary)
	return true
}

func (s *SaturationForecastSyncService) finish(summary SyncSummary) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	s.lastSummary = summary
	s.lastSyncCompletedAt = time.Now()
}

// processCampaigns executa as previsões com no máximo MaxConcurrentJobs campanhas em paralelo
func (s *SaturationForecastSyncService) processCampaigns(ctx context.Context, campaigns []*domain.Campaign) SyncSummary {
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup
	var mu sync.Mutex

	summary := SyncSummary{Campaigns: len(campaigns)}

	for _, campaign := range campaigns {
		if campaign.DailyBudget <= 0 {
			logrus.WithField("campaign_id", campaign.ID).Warn("Campanha sem orçamento diário. Pulando.")
			summary.Skipped++
			continue
		}

		if ctx.Err() != nil {
			logrus.WithError(ctx.Err()).Warn("Previsão de saturação interrompida")
			break
		}

		wg.Add(1)
		semaphore <- struct{}{}

		go func(c *domain.Campaign) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			ok := s.processCampaign(ctx, c)

			mu.Lock()
			if ok {
				summary.Succeeded++
			} else {
				summary.Failed++
			}
			mu.Unlock()

			s.sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
		}(campaign)
	}

	wg.Wait()
	return summary
}

func (s *SaturationForecastSyncService) processCampaign(ctx context.Context, campaign *domain.Campaign) bool {
	fields := logrus.Fields{
		"campaign_id":   campaign.ID,
		"campaign_name": campaign.Name,
		"daily_budget":  campaign.DailyBudget,
	}

	logrus.WithFields(fields).Info("Gerando previsão de saturação para campanha")

	forecast, err := s.forecaster.ForecastCampaign(ctx, campaign)
	if err != nil {
		logrus.WithFields(fields).WithError(err).Error("Erro ao gerar previsão de saturação para campanha")
		return false
	}

	if forecast == nil {
		return true
	}

	fields["forecast_id"] = forecast.ForecastID
	if forecast.Result.InsufficientData() {
		logrus.WithFields(fields).Warn("Campanha sem histórico suficiente para previsão de saturação")
	} else {
		logrus.WithFields(fields).Info("Previsão de saturação gerada com sucesso")
	}
	return true
}

// TriggerManualSync inicia manualmente uma execução. Retorna false quando já existe uma em andamento.
func (s *SaturationForecastSyncService) TriggerManualSync(ctx context.Context) bool {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	if running {
		logrus.Info("Previsão de saturação já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando previsão manual de saturação")
	go s.syncAllForecasts(context.WithoutCancel(ctx))
	return true
}

// IsRunning informa se existe uma execução em andamento
func (s *SaturationForecastSyncService) IsRunning() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.syncRunning
}

// GetStatus retorna o status atual do agendador
func (s *SaturationForecastSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_request_delay_s":   s.config.RequestDelaySeconds,
		"spend_multiplier":       s.config.SpendMultiplier,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_summary":      s.lastSummary,
	}
}
