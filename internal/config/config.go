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

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

type Config struct {
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Auth            Auth            `mapstructure:",squash"`
	Cors            Cors            `mapstructure:",squash"`
	Static          Static          `mapstructure:",squash"`
	ReferenceData   ReferenceData   `mapstructure:",squash"`
	MockData        MockData        `mapstructure:",squash"`
	Storage         Storage         `mapstructure:",squash"`
	Database        Database        `mapstructure:",squash"`
	Redis           Redis           `mapstructure:",squash"`
	KPICache        KPICache        `mapstructure:",squash"`
	Kafka           Kafka           `mapstructure:",squash"`
	KPISnapshotSync KPISnapshotSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Auth struct {
	Secret     string        `mapstructure:"auth_secret"`
	TokenTTL   time.Duration `mapstructure:"auth_token_ttl"`
	BcryptCost int           `mapstructure:"auth_bcrypt_cost"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Static struct {
	Dir string `mapstructure:"static_dir"`
}

// ReferenceData aponta para um catálogo YAML externo. Vazio usa o catálogo embutido.
type ReferenceData struct {
	Path string `mapstructure:"reference_data_path"`
}

type MockData struct {
	Seed int64 `mapstructure:"mockdata_seed"`
}

type Storage struct {
	Driver string `mapstructure:"storage_driver"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Redis struct {
	URL string `mapstructure:"redis_url"`
}

type KPICache struct {
	Enabled bool          `mapstructure:"kpi_cache_enabled"`
	TTL     time.Duration `mapstructure:"kpi_cache_ttl"`
}

type Kafka struct {
	Brokers          []string `mapstructure:"kafka_brokers"`
	TopicPriceAlert  string   `mapstructure:"kafka_topic_price_alert"`
	TopicExpiryAlert string   `mapstructure:"kafka_topic_expiry_alert"`
	TopicContest     string   `mapstructure:"kafka_topic_contest"`
}

type KPISnapshotSync struct {
	CronSchedule string `mapstructure:"kpi_snapshot_sync_cron"`
	Enabled      bool   `mapstructure:"kpi_snapshot_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 5000)
	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("APP_ENV", "")

	viper.SetDefault("AUTH_SECRET", "tradelite_dev_secret")
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")
	viper.SetDefault("AUTH_BCRYPT_COST", 10)

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("STATIC_DIR", "./static")
	viper.SetDefault("REFERENCE_DATA_PATH", "")
	viper.SetDefault("MOCKDATA_SEED", 0) // 0 usa o relógio como semente

	viper.SetDefault("STORAGE_DRIVER", StorageMemory)
	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/tradelite?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("KPI_CACHE_ENABLED", false)
	viper.SetDefault("KPI_CACHE_TTL", "10m")

	viper.SetDefault("KAFKA_BROKERS", "")
	viper.SetDefault("KAFKA_TOPIC_PRICE_ALERT", "tradelite.price-alerts")
	viper.SetDefault("KAFKA_TOPIC_EXPIRY_ALERT", "tradelite.expiry-alerts")
	viper.SetDefault("KAFKA_TOPIC_CONTEST", "tradelite.contests")

	viper.SetDefault("KPI_SNAPSHOT_SYNC_CRON", "*/10 * * * *") // A cada 10 minutos
	viper.SetDefault("KPI_SNAPSHOT_SYNC_ENABLED", false)
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
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

	if err := config.normalize(); err != nil {
		return nil, err
	}

	return config, nil
}

// normalize completa campos derivados e valida combinações inválidas
func (c *Config) normalize() error {
	c.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		c.Database.Driver,
		c.Database.User,
		c.Database.Password,
		c.Database.URL,
	)

	if c.Storage.Driver == "" {
		c.Storage.Driver = StorageMemory
	}
	if c.Storage.Driver != StorageMemory && c.Storage.Driver != StoragePostgres {
		return fmt.Errorf("STORAGE_DRIVER inválido: %s", c.Storage.Driver)
	}

	if c.Auth.Secret == "" {
		return fmt.Errorf("AUTH_SECRET é obrigatório")
	}
	if c.Auth.TokenTTL <= 0 {
		c.Auth.TokenTTL = 24 * time.Hour
	}
	if c.KPICache.TTL <= 0 {
		c.KPICache.TTL = 10 * time.Minute
	}

	c.Kafka.Brokers = compact(c.Kafka.Brokers)
	c.Cors.AllowedOrigins = compact(c.Cors.AllowedOrigins)

	return nil
}

func compact(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
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
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
