// backend-go/internal/config/config.go
package config

import (
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Oracle   OracleConfig
	Cache    CacheConfig
	Notify   NotifyConfig
	Archive  ArchiveConfig
}

type ServerConfig struct {
	Port           string
	Mode           string
	ReadTimeout    int
	WriteTimeout   int
	AllowedOrigins []string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// OracleConfig configures the external decision oracle (an OpenAI-compatible
// chat completions endpoint).
type OracleConfig struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

type CacheConfig struct {
	Enabled            bool
	RedisURL           string
	RedisHost          string
	RedisPort          string
	RedisPassword      string
	RedisDB            int
	ForecastTTLSeconds int
}

// NotifyConfig configures the best-effort email notifier.
type NotifyConfig struct {
	Enabled    bool
	SMTPHost   string
	SMTPPort   string
	SMTPUser   string
	SMTPPass   string
	From       string
	Recipients []string
}

// ArchiveConfig configures the S3-compatible store used to archive raw
// oracle exchanges for diagnostics.
type ArchiveConfig struct {
	Enabled   bool
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	UseSSL    bool
}

var (
	once     sync.Once
	instance *Config
)

func Load() *Config {
	once.Do(func() {
		// Load .env file if it exists
		_ = godotenv.Load()

		// Set default values
		viper.SetDefault("SERVER_PORT", "8080")
		viper.SetDefault("SERVER_MODE", "debug")
		viper.SetDefault("SERVER_READ_TIMEOUT", 15)
		viper.SetDefault("SERVER_WRITE_TIMEOUT", 30)
		viper.SetDefault("SERVER_ALLOWED_ORIGINS", []string{"*"})
		viper.SetDefault("DB_HOST", "localhost")
		viper.SetDefault("DB_PORT", "5432")
		viper.SetDefault("DB_USER", "postgres")
		viper.SetDefault("DB_PASSWORD", "postgres")
		viper.SetDefault("DB_NAME", "smartshelfx")
		viper.SetDefault("DB_SSLMODE", "disable")
		viper.SetDefault("ORACLE_BASE_URL", "https://openrouter.ai/api/v1")
		viper.SetDefault("ORACLE_API_KEY", "")
		viper.SetDefault("ORACLE_MODEL", "deepseek/deepseek-chat")
		viper.SetDefault("ORACLE_TIMEOUT_SECONDS", 8)
		viper.SetDefault("CACHE_ENABLED", false)
		viper.SetDefault("REDIS_URL", "")
		viper.SetDefault("REDIS_HOST", "127.0.0.1")
		viper.SetDefault("REDIS_PORT", "6379")
		viper.SetDefault("REDIS_PASSWORD", "")
		viper.SetDefault("REDIS_DB", 0)
		viper.SetDefault("CACHE_FORECAST_TTL_SECONDS", 300)
		viper.SetDefault("NOTIFY_ENABLED", false)
		viper.SetDefault("SMTP_HOST", "")
		viper.SetDefault("SMTP_PORT", "587")
		viper.SetDefault("SMTP_USER", "")
		viper.SetDefault("SMTP_PASSWORD", "")
		viper.SetDefault("NOTIFY_FROM", "alerts@smartshelfx.local")
		viper.SetDefault("NOTIFY_RECIPIENTS", []string{})
		viper.SetDefault("ARCHIVE_ENABLED", false)
		viper.SetDefault("ARCHIVE_ENDPOINT", "")
		viper.SetDefault("ARCHIVE_ACCESS_KEY", "")
		viper.SetDefault("ARCHIVE_SECRET_KEY", "")
		viper.SetDefault("ARCHIVE_BUCKET", "smartshelfx-oracle")
		viper.SetDefault("ARCHIVE_REGION", "us-east-1")
		viper.SetDefault("ARCHIVE_USE_SSL", true)

		// Read from environment variables
		viper.AutomaticEnv()

		instance = &Config{
			Server: ServerConfig{
				Port:           viper.GetString("SERVER_PORT"),
				Mode:           viper.GetString("SERVER_MODE"),
				ReadTimeout:    viper.GetInt("SERVER_READ_TIMEOUT"),
				WriteTimeout:   viper.GetInt("SERVER_WRITE_TIMEOUT"),
				AllowedOrigins: viper.GetStringSlice("SERVER_ALLOWED_ORIGINS"),
			},
			Database: DatabaseConfig{
				Host:     viper.GetString("DB_HOST"),
				Port:     viper.GetString("DB_PORT"),
				User:     viper.GetString("DB_USER"),
				Password: viper.GetString("DB_PASSWORD"),
				DBName:   viper.GetString("DB_NAME"),
				SSLMode:  viper.GetString("DB_SSLMODE"),
			},
			Oracle: OracleConfig{
				BaseURL: viper.GetString("ORACLE_BASE_URL"),
				APIKey:  viper.GetString("ORACLE_API_KEY"),
				Model:   viper.GetString("ORACLE_MODEL"),
				Timeout: time.Duration(viper.GetInt("ORACLE_TIMEOUT_SECONDS")) * time.Second,
			},
			Cache: CacheConfig{
				Enabled:            viper.GetBool("CACHE_ENABLED"),
				RedisURL:           viper.GetString("REDIS_URL"),
				RedisHost:          viper.GetString("REDIS_HOST"),
				RedisPort:          viper.GetString("REDIS_PORT"),
				RedisPassword:      viper.GetString("REDIS_PASSWORD"),
				RedisDB:            viper.GetInt("REDIS_DB"),
				ForecastTTLSeconds: viper.GetInt("CACHE_FORECAST_TTL_SECONDS"),
			},
			Notify: NotifyConfig{
				Enabled:    viper.GetBool("NOTIFY_ENABLED"),
				SMTPHost:   viper.GetString("SMTP_HOST"),
				SMTPPort:   viper.GetString("SMTP_PORT"),
				SMTPUser:   viper.GetString("SMTP_USER"),
				SMTPPass:   viper.GetString("SMTP_PASSWORD"),
				From:       viper.GetString("NOTIFY_FROM"),
				Recipients: viper.GetStringSlice("NOTIFY_RECIPIENTS"),
			},
			Archive: ArchiveConfig{
				Enabled:   viper.GetBool("ARCHIVE_ENABLED"),
				Endpoint:  viper.GetString("ARCHIVE_ENDPOINT"),
				AccessKey: viper.GetString("ARCHIVE_ACCESS_KEY"),
				SecretKey: viper.GetString("ARCHIVE_SECRET_KEY"),
				Bucket:    viper.GetString("ARCHIVE_BUCKET"),
				Region:    viper.GetString("ARCHIVE_REGION"),
				UseSSL:    viper.GetBool("ARCHIVE_USE_SSL"),
			},
		}
	})

	return instance
}
