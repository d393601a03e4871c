package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vfg2006/revenue-dashboard-api/internal/domain"
)

type Config struct {
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Database        Database        `mapstructure:",squash"`
	Listing         Listing         `mapstructure:",squash"`
	Reports         Reports         `mapstructure:",squash"`
	SpendingDigest  SpendingDigest  `mapstructure:",squash"`
	Cors            Cors            `mapstructure:",squash"`
	ConsumerDomains []string        `mapstructure:"consumer_domains"`
	Migrations      Migrations      `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN             string        `mapstructure:"-"`
	Driver          string        `mapstructure:"database_driver"`
	Password        string        `mapstructure:"database_password"`
	URL             string        `mapstructure:"database_url"`
	User            string        `mapstructure:"database_user"`
	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	MaxIdleConns    int           `mapstructure:"database_max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"database_conn_max_lifetime"`
}

type Listing struct {
	PageSize int `mapstructure:"listing_page_size"`
}

type Reports struct {
	DefaultPeriodMonths int `mapstructure:"reports_default_period_months"`
	MaxPeriodMonths     int `mapstructure:"reports_max_period_months"`
	Limit               int `mapstructure:"reports_limit"`
}

type SpendingDigest struct {
	CronSchedule string `mapstructure:"spending_digest_cron"`
	Enabled      bool   `mapstructure:"spending_digest_enabled"`
	Limit        int    `mapstructure:"spending_digest_limit"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Migrations struct {
	Path string `mapstructure:"migrations_path"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("APP_ENV", "development")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/dashboard?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")

	viper.SetDefault("LISTING_PAGE_SIZE", 12)

	viper.SetDefault("REPORTS_DEFAULT_PERIOD_MONTHS", domain.DefaultReportPeriodMonths)
	viper.SetDefault("REPORTS_MAX_PERIOD_MONTHS", domain.MaxReportPeriodMonths)
	viper.SetDefault("REPORTS_LIMIT", 10)

	// Resumo de movimentação de gastos
	viper.SetDefault("SPENDING_DIGEST_CRON", "0 7 * * 1") // Segundas às 7h da manhã
	viper.SetDefault("SPENDING_DIGEST_ENABLED", false)
	viper.SetDefault("SPENDING_DIGEST_LIMIT", 5)

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("MIGRATIONS_PATH", "migrations")

	// vazio = lista padrão de domínios de consumo
	viper.SetDefault("CONSUMER_DOMAINS", "")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.normalize()

	return config, nil
}

// normalize completa valores derivados e corrige valores fora do intervalo
func (c *Config) normalize() {
	c.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		c.Database.Driver,
		c.Database.User,
		c.Database.Password,
		c.Database.URL,
	)

	if c.Listing.PageSize <= 0 {
		logrus.Warnf("LISTING_PAGE_SIZE inválido (%d), usando 12", c.Listing.PageSize)
		c.Listing.PageSize = 12
	}

	if c.Reports.MaxPeriodMonths <= 0 {
		c.Reports.MaxPeriodMonths = domain.MaxReportPeriodMonths
	}
	if c.Reports.DefaultPeriodMonths <= 0 || c.Reports.DefaultPeriodMonths > c.Reports.MaxPeriodMonths {
		c.Reports.DefaultPeriodMonths = domain.DefaultReportPeriodMonths
	}
	if c.Reports.Limit <= 0 {
		c.Reports.Limit = 10
	}
	if c.SpendingDigest.Limit <= 0 {
		c.SpendingDigest.Limit = 5
	}

	c.ConsumerDomains = compact(c.ConsumerDomains)
	if len(c.ConsumerDomains) == 0 {
		c.ConsumerDomains = domain.DefaultConsumerDomains()
	}
	c.Cors.AllowedOrigins = compact(c.Cors.AllowedOrigins)
}

// ConsumerDomainSet constrói o conjunto imutável injetado no compilador de filtros
func (c *Config) ConsumerDomainSet() domain.ConsumerDomains {
	return domain.NewConsumerDomains(c.ConsumerDomains)
}

func compact(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
