package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/saturation-api/infrastructure/cache"
	"github.com/vfg2006/saturation-api/infrastructure/database/postgres"
	"github.com/vfg2006/saturation-api/infrastructure/messaging"
	"github.com/vfg2006/saturation-api/infrastructure/repository"
	"github.com/vfg2006/saturation-api/internal/api"
	"github.com/vfg2006/saturation-api/internal/api/handler"
	"github.com/vfg2006/saturation-api/internal/config"
	"github.com/vfg2006/saturation-api/internal/saturation"
	"github.com/vfg2006/saturation-api/internal/scheduler"
	"github.com/vfg2006/saturation-api/internal/usecases/authenticating"
	"github.com/vfg2006/saturation-api/internal/usecases/forecasting"
	"github.com/vfg2006/saturation-api/pkg/middleware"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	dependencies := map[string]handler.Pinger{
		"postgres": pgConn,
	}

	campaignRepo := repository.NewCampaignRepository(pgConn)
	campaignInsightRepo := repository.NewCampaignInsightRepository(pgConn)
	forecastRepo := repository.NewForecastRepository(pgConn)

	historyLoader := forecasting.NewHistoryLoader(campaignInsightRepo, cfg.Saturation.HistoryLookbackDays)

	var corrector saturation.Corrector = saturation.SpendBandCorrector{}
	if !cfg.Saturation.CorrectionEnabled {
		corrector = saturation.NoCorrection{}
	}

	model := saturation.NewModel(historyLoader,
		saturation.WithCorrector(corrector),
		saturation.WithModelVersion(cfg.Saturation.ModelVersion),
	)

	forecastService := forecasting.NewService(model, historyLoader, campaignRepo, forecastRepo, cfg)

	if cfg.Redis.Enabled {
		redisClient, err := cache.Connect(ctx, cfg.Redis)
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao conectar ao Redis")
		}
		defer redisClient.Close()

		forecastService.WithCache(cache.NewForecastCache(redisClient, cfg.Redis.TTL))
		dependencies["redis"] = handler.PingerFunc(func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		})
		logrus.Info("Cache de previsões no Redis habilitado")
	}

	if cfg.Kafka.Enabled {
		publisher, err := messaging.NewKafkaForecastPublisher(cfg.Kafka)
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao configurar publicação de previsões no Kafka")
		}
		defer publisher.Close()

		forecastService.WithPublisher(publisher)
		logrus.WithField("topic", cfg.Kafka.Topic).Info("Publicação de previsões no Kafka habilitada")
	}

	var tokenValidator middleware.TokenValidator
	if cfg.Auth.Enabled {
		authenticator, err := authenticating.NewService(cfg.Auth)
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao configurar autenticação")
		}
		tokenValidator = authenticator
	} else {
		logrus.Warn("Autenticação desabilitada por configuração")
	}

	forecastSyncService := scheduler.NewSaturationForecastSyncService(campaignRepo, forecastService, cfg)
	if err := forecastSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de previsões de saturação")
	} else {
		logrus.Info("Agendador de previsões de saturação iniciado com sucesso")
	}

	server, err := api.New(cfg, forecastService, tokenValidator, forecastSyncService, dependencies)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
