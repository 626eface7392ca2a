package main

import (
	"context"
	"database/sql"
	"flag"
	"math"
	"math/rand"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/saturation-api/infrastructure/database/postgres"
	"github.com/vfg2006/saturation-api/internal/config"
	"github.com/vfg2006/saturation-api/internal/domain"
	"github.com/vfg2006/saturation-api/internal/usecases/authenticating"
)

const (
	idLength   = 10
	characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS campaigns (
		id           VARCHAR(32) PRIMARY KEY,
		external_id  VARCHAR(64) NOT NULL,
		account_id   VARCHAR(64) NOT NULL,
		name         VARCHAR(255) NOT NULL,
		platform     VARCHAR(32) NOT NULL,
		status       VARCHAR(16) NOT NULL DEFAULT 'ACTIVE',
		daily_budget NUMERIC(14, 2) NOT NULL DEFAULT 0,
		updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS campaign_daily_insights (
		campaign_id VARCHAR(32) NOT NULL REFERENCES campaigns (id),
		date        DATE NOT NULL,
		spend       NUMERIC(14, 2) NOT NULL,
		conversions INTEGER NOT NULL DEFAULT 0,
		impressions INTEGER NOT NULL DEFAULT 0,
		clicks      INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (campaign_id, date)
	)`,
	`CREATE TABLE IF NOT EXISTS saturation_forecasts (
		id            VARCHAR(32) PRIMARY KEY,
		campaign_id   VARCHAR(32) NOT NULL REFERENCES campaigns (id),
		model_version VARCHAR(16) NOT NULL,
		payload       JSONB NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS saturation_forecasts_campaign_created_idx
		ON saturation_forecasts (campaign_id, created_at DESC)`,
}

// demoCampaign descreve uma campanha sintética e a curva de CPA usada para gerar seu histórico
type demoCampaign struct {
	Name        string
	Platform    string
	DailyBudget float64
	MaxCPA      float64
	Steepness   float64
	Inflection  float64
}

var demoCampaigns = []demoCampaign{
	{Name: "Prospecção - Lookalike", Platform: "meta", DailyBudget: 1500, MaxCPA: 80, Steepness: 0.0015, Inflection: 2500},
	{Name: "Remarketing - Carrinho", Platform: "meta", DailyBudget: 400, MaxCPA: 35, Steepness: 0.004, Inflection: 900},
	{Name: "Search - Marca", Platform: "google", DailyBudget: 800, MaxCPA: 25, Steepness: 0.002, Inflection: 1800},
	{Name: "Spark Ads - Criadores", Platform: "tiktok", DailyBudget: 600, MaxCPA: 60, Steepness: 0.003, Inflection: 1200},
}

func generateID() string {
	id, _ := gonanoid.Generate(characters, idLength)
	return id
}

func createSchema(ctx context.Context, tx *sql.Tx) error {
	for _, statement := range schema {
		if _, err := tx.ExecContext(ctx, statement); err != nil {
			return err
		}
	}
	logrus.Infof("Schema verificado: %d statements aplicados", len(schema))
	return nil
}

// seedCampaigns insere as campanhas de demonstração com `days` dias de histórico diário
func seedCampaigns(ctx context.Context, tx *sql.Tx, days int, seed int64) error {
	rng := rand.New(rand.NewSource(seed))
	today := time.Now().UTC().Truncate(24 * time.Hour)

	campaignStmt, err := tx.PrepareContext(ctx, `INSERT INTO campaigns (id, external_id, account_id, name, platform, status, daily_budget, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())`)
	if err != nil {
		return err
	}
	defer campaignStmt.Close()

	insightStmt, err := tx.PrepareContext(ctx, `INSERT INTO campaign_daily_insights (campaign_id, date, spend, conversions, impressions, clicks)
		VALUES ($1, $2, $3, $4, $5, $6) ON CONFLICT (campaign_id, date) DO NOTHING`)
	if err != nil {
		return err
	}
	defer insightStmt.Close()

	for _, demo := range demoCampaigns {
		id := generateID()
		if _, err := campaignStmt.ExecContext(ctx, id, generateID(), "demo", demo.Name, demo.Platform,
			string(domain.CampaignStatusActive), demo.DailyBudget); err != nil {
			return err
		}

		for i := days - 1; i >= 0; i-- {
			// investimento oscila entre 40% e 300% do orçamento para cobrir a curva
			spend := demo.DailyBudget * (0.4 + 2.6*rng.Float64())
			cpa := demo.MaxCPA / (1 + math.Exp(-demo.Steepness*(spend-demo.Inflection)))
			cpa *= 1 + 0.08*rng.NormFloat64()

			conversions := 0
			if cpa > 0 {
				conversions = int(math.Round(spend / cpa))
			}
			impressions := int(spend * (80 + 40*rng.Float64()))
			clicks := int(float64(impressions) * (0.008 + 0.01*rng.Float64()))

			if _, err := insightStmt.ExecContext(ctx, id, today.AddDate(0, 0, -i), math.Round(spend*100)/100,
				conversions, impressions, clicks); err != nil {
				return err
			}
		}

		logrus.WithFields(logrus.Fields{
			"campaign_id": id,
			"name":        demo.Name,
			"days":        days,
		}).Info("Campanha de demonstração inserida")
	}

	return nil
}

func main() {
	seed := flag.Bool("seed", false, "insere campanhas de demonstração com histórico sintético")
	days := flag.Int("days", 90, "dias de histórico gerados por campanha")
	randomSeed := flag.Int64("random-seed", 42, "semente do gerador de dados sintéticos")
	flag.Parse()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339})
	logrus.Info("Iniciando script de migração...")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar configuração")
	}

	ctx := context.Background()
	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao banco de dados")
	}
	defer conn.Close()

	startTime := time.Now()
	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if err := createSchema(ctx, tx); err != nil {
			return err
		}
		if *seed {
			return seedCampaigns(ctx, tx, *days, *randomSeed)
		}
		return nil
	})
	if err != nil {
		logrus.WithError(err).Fatal("Erro durante a migração, transação revertida")
	}

	logrus.WithField("duration", time.Since(startTime).String()).Info("Migração concluída")

	if cfg.Auth.Enabled {
		authenticator, err := authenticating.NewService(cfg.Auth)
		if err != nil {
			logrus.WithError(err).Warn("Não foi possível emitir token de desenvolvimento")
			return
		}
		token, err := authenticator.GenerateToken("dev-admin", domain.RoleAdmin, 24*time.Hour)
		if err != nil {
			logrus.WithError(err).Warn("Não foi possível emitir token de desenvolvimento")
			return
		}
		logrus.WithField("token", token).Info("Token de administrador para ambiente local (24h)")
	}
}
