package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Auth         Auth         `mapstructure:",squash"`
	Redis        Redis        `mapstructure:",squash"`
	Kafka        Kafka        `mapstructure:",squash"`
	Saturation   Saturation   `mapstructure:",squash"`
	ForecastSync ForecastSync `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret  string `mapstructure:"auth_secret"`
	Enabled bool   `mapstructure:"auth_enabled"`
}

type Redis struct {
	Addr     string        `mapstructure:"redis_addr"`
	Password string        `mapstructure:"redis_password"`
	DB       int           `mapstructure:"redis_db"`
	TTL      time.Duration `mapstructure:"redis_forecast_ttl"`
	Enabled  bool          `mapstructure:"redis_enabled"`
}

type Kafka struct {
	Brokers []string `mapstructure:"kafka_brokers"`
	Topic   string   `mapstructure:"kafka_forecast_topic"`
	Enabled bool     `mapstructure:"kafka_enabled"`
}

type Saturation struct {
	ModelVersion        string `mapstructure:"saturation_model_version"`
	HistoryLookbackDays int    `mapstructure:"saturation_history_lookback_days"`
	DefaultPlatform     string `mapstructure:"saturation_default_platform"`
	CorrectionEnabled   bool   `mapstructure:"saturation_correction_enabled"`
}

type ForecastSync struct {
	CronSchedule        string  `mapstructure:"forecast_sync_cron"`
	RequestDelaySeconds int     `mapstructure:"forecast_sync_request_delay_seconds"`
	MaxConcurrentJobs   int     `mapstructure:"forecast_sync_max_concurrent_jobs"`
	SpendMultiplier     float64 `mapstructure:"forecast_sync_spend_multiplier"`
	Enabled             bool    `mapstructure:"forecast_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/saturation")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_SECRET", "your_secret_key") // ONLY LOCAL
	viper.SetDefault("AUTH_ENABLED", true)

	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("REDIS_FORECAST_TTL", "6h")
	viper.SetDefault("REDIS_ENABLED", false)

	viper.SetDefault("KAFKA_BROKERS", "localhost:9092")
	viper.SetDefault("KAFKA_FORECAST_TOPIC", "saturation.forecasts")
	viper.SetDefault("KAFKA_ENABLED", false)

	viper.SetDefault("SATURATION_MODEL_VERSION", "2.0.0")
	viper.SetDefault("SATURATION_HISTORY_LOOKBACK_DAYS", 90)
	viper.SetDefault("SATURATION_DEFAULT_PLATFORM", "facebook")
	viper.SetDefault("SATURATION_CORRECTION_ENABLED", true)

	// Defaults para a previsão agendada
	viper.SetDefault("FORECAST_SYNC_CRON", "0 7 * * *")        // Todos os dias às 7h da manhã
	viper.SetDefault("FORECAST_SYNC_REQUEST_DELAY_SECONDS", 1) // 1 segundo entre campanhas
	viper.SetDefault("FORECAST_SYNC_MAX_CONCURRENT_JOBS", 3)   // 3 jobs concorrentes
	viper.SetDefault("FORECAST_SYNC_SPEND_MULTIPLIER", 2.0)    // Escada até 2x o investimento atual
	viper.SetDefault("FORECAST_SYNC_ENABLED", false)           // Habilitar previsão agendada

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// O .env é opcional, as variáveis já podem ter sido carregadas pelo godotenv
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.normalize(); err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

func (c *Config) normalize() error {
	c.Kafka.Brokers = trimList(c.Kafka.Brokers)
	c.Server.AllowedOrigins = trimList(c.Server.AllowedOrigins)

	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		return fmt.Errorf("KAFKA_BROKERS é obrigatório quando KAFKA_ENABLED=true")
	}

	if c.Saturation.HistoryLookbackDays <= 0 {
		c.Saturation.HistoryLookbackDays = 90
	}

	if c.ForecastSync.SpendMultiplier <= 1 {
		c.ForecastSync.SpendMultiplier = 2.0
	}

	if c.Auth.Enabled && c.Auth.Secret == "" {
		return fmt.Errorf("AUTH_SECRET é obrigatório quando AUTH_ENABLED=true")
	}

	return nil
}

func trimList(values []string) []string {
	trimmed := make([]string, 0, len(values))
	for _, value := range values {
		if value = strings.TrimSpace(value); value != "" {
			trimmed = append(trimmed, value)
		}
	}
	return trimmed
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
