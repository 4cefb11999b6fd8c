package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	BackendLocal  = "local"
	BackendRemote = "remote"

	HistoryNone     = "none"
	HistoryPostgres = "postgres"
	HistorySQLite   = "sqlite"

	CacheNone  = "none"
	CacheLRU   = "lru"
	CacheRedis = "redis"
)

type Config struct {
	Server     ServerConfig
	Logger     LoggerConfig
	Model      ModelConfig
	Inference  InferenceConfig
	Kubernetes KubernetesConfig
	History    HistoryConfig
	Database   DatabaseConfig
	Cache      CacheConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type LoggerConfig struct {
	Level  string
	Format string

	// File enables rotated file output alongside stdout
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

type ModelConfig struct {
	ArtifactPath   string
	Backend        string
	CurrencySymbol string
}

type InferenceConfig struct {
	URL       string
	ModelName string
	Timeout   time.Duration
}

type KubernetesConfig struct {
	Enabled        bool
	InCluster      bool
	KubeConfigPath string
	Namespace      string
	ServiceName    string
}

type HistoryConfig struct {
	Driver     string
	SQLitePath string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}

type CacheConfig struct {
	Backend   string
	Size      int
	TTL       time.Duration
	RedisAddr string
}

// Load reads configuration from the environment, after loading an optional
// .env file from the working directory.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()

	// Defaults
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "json")
	v.SetDefault("LOGGER_FILE", "")
	v.SetDefault("LOGGER_MAX_SIZE_MB", 100)
	v.SetDefault("LOGGER_MAX_BACKUPS", 5)
	v.SetDefault("LOGGER_MAX_AGE_DAYS", 30)
	v.SetDefault("MODEL_ARTIFACT_PATH", "models/rental_price_model.json")
	v.SetDefault("MODEL_BACKEND", BackendLocal)
	v.SetDefault("MODEL_CURRENCY_SYMBOL", "₹")
	v.SetDefault("INFERENCE_URL", "http://localhost:8085")
	v.SetDefault("INFERENCE_MODEL_NAME", "rental-price")
	v.SetDefault("INFERENCE_TIMEOUT", "10s")
	v.SetDefault("KUBERNETES_ENABLED", false)
	v.SetDefault("KUBERNETES_IN_CLUSTER", false)
	v.SetDefault("KUBERNETES_KUBECONFIG", "")
	v.SetDefault("KUBERNETES_NAMESPACE", "model-serving")
	v.SetDefault("KUBERNETES_SERVICE_NAME", "rental-price")
	v.SetDefault("HISTORY_DRIVER", HistoryNone)
	v.SetDefault("HISTORY_SQLITE_PATH", "predictions.db")
	v.SetDefault("DATABASE_HOST", "localhost")
	v.SetDefault("DATABASE_PORT", 5432)
	v.SetDefault("DATABASE_USER", "postgres")
	v.SetDefault("DATABASE_PASSWORD", "postgres")
	v.SetDefault("DATABASE_NAME", "rental")
	v.SetDefault("DATABASE_SSLMODE", "disable")
	v.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	v.SetDefault("DATABASE_MAX_IDLE_CONNS", 2)
	v.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")
	v.SetDefault("CACHE_BACKEND", CacheLRU)
	v.SetDefault("CACHE_SIZE", 4096)
	v.SetDefault("CACHE_TTL", "1h")
	v.SetDefault("CACHE_REDIS_ADDR", "localhost:6379")

	// Env
	v.AutomaticEnv()

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("SERVER_HOST"),
			Port: v.GetInt("SERVER_PORT"),
		},
		Logger: LoggerConfig{
			Level:      v.GetString("LOGGER_LEVEL"),
			Format:     v.GetString("LOGGER_FORMAT"),
			File:       v.GetString("LOGGER_FILE"),
			MaxSizeMB:  v.GetInt("LOGGER_MAX_SIZE_MB"),
			MaxBackups: v.GetInt("LOGGER_MAX_BACKUPS"),
			MaxAgeDays: v.GetInt("LOGGER_MAX_AGE_DAYS"),
		},
		Model: ModelConfig{
			ArtifactPath:   v.GetString("MODEL_ARTIFACT_PATH"),
			Backend:        strings.ToLower(v.GetString("MODEL_BACKEND")),
			CurrencySymbol: v.GetString("MODEL_CURRENCY_SYMBOL"),
		},
		Inference: InferenceConfig{
			URL:       v.GetString("INFERENCE_URL"),
			ModelName: v.GetString("INFERENCE_MODEL_NAME"),
			Timeout:   parseDuration(v.GetString("INFERENCE_TIMEOUT"), 10*time.Second),
		},
		Kubernetes: KubernetesConfig{
			Enabled:        v.GetBool("KUBERNETES_ENABLED"),
			InCluster:      v.GetBool("KUBERNETES_IN_CLUSTER"),
			KubeConfigPath: v.GetString("KUBERNETES_KUBECONFIG"),
			Namespace:      v.GetString("KUBERNETES_NAMESPACE"),
			ServiceName:    v.GetString("KUBERNETES_SERVICE_NAME"),
		},
		History: HistoryConfig{
			Driver:     strings.ToLower(v.GetString("HISTORY_DRIVER")),
			SQLitePath: v.GetString("HISTORY_SQLITE_PATH"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DATABASE_HOST"),
			Port:            v.GetInt("DATABASE_PORT"),
			User:            v.GetString("DATABASE_USER"),
			Password:        v.GetString("DATABASE_PASSWORD"),
			Name:            v.GetString("DATABASE_NAME"),
			SSLMode:         v.GetString("DATABASE_SSLMODE"),
			MaxOpenConns:    v.GetInt("DATABASE_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DATABASE_MAX_IDLE_CONNS"),
			ConnMaxLifetime: parseDuration(v.GetString("DATABASE_CONN_MAX_LIFETIME"), 30*time.Minute),
		},
		Cache: CacheConfig{
			Backend:   strings.ToLower(v.GetString("CACHE_BACKEND")),
			Size:      v.GetInt("CACHE_SIZE"),
			TTL:       parseDuration(v.GetString("CACHE_TTL"), time.Hour),
			RedisAddr: v.GetString("CACHE_REDIS_ADDR"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Model.Backend {
	case BackendLocal, BackendRemote:
	default:
		return fmt.Errorf("MODEL_BACKEND must be %q or %q, got %q", BackendLocal, BackendRemote, c.Model.Backend)
	}
	switch c.History.Driver {
	case HistoryNone, HistoryPostgres, HistorySQLite:
	default:
		return fmt.Errorf("HISTORY_DRIVER must be none, postgres or sqlite, got %q", c.History.Driver)
	}
	switch c.Cache.Backend {
	case CacheNone, CacheLRU, CacheRedis:
	default:
		return fmt.Errorf("CACHE_BACKEND must be none, lru or redis, got %q", c.Cache.Backend)
	}
	if c.Model.ArtifactPath == "" {
		return fmt.Errorf("MODEL_ARTIFACT_PATH is required")
	}
	return nil
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}
