package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"

	"github.com/GoArmGo/RandomImage/internal/domain"
)

// Config хранит все конфигурационные параметры приложения.
type Config struct {
	// Ключ не помечен required: без него каждый запрос получает 500, процесс стартует.
	UnsplashAccessKey string        `env:"UNSPLASH_ACCESS_KEY"`
	UnsplashAPIURL    string        `env:"UNSPLASH_API_URL" envDefault:"https://api.unsplash.com"`
	UnsplashTimeout   time.Duration `env:"UNSPLASH_TIMEOUT" envDefault:"10s"`

	// Стратегия выбора фото фиксируется на уровне деплоя
	Strategy     string `env:"UNSPLASH_STRATEGY" envDefault:"username"`
	Username     string `env:"UNSPLASH_USERNAME" envDefault:"tabliss-official"`
	CollectionID string `env:"UNSPLASH_COLLECTION_ID"`
	ListPerPage  int    `env:"UNSPLASH_LIST_PER_PAGE" envDefault:"30"`

	DefaultWidth    int    `env:"DEFAULT_WIDTH" envDefault:"1920"`
	CORSAllowOrigin string `env:"CORS_ALLOW_ORIGIN" envDefault:"*"`
	CacheControl    string `env:"CACHE_CONTROL" envDefault:"s-maxage=3600, stale-while-revalidate=86400"`

	ServerPort string `env:"SERVER_PORT"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat  string `env:"LOG_FORMAT" envDefault:"json"`

	RabbitMQ struct {
		RabbitMQURL       string `env:"RABBITMQ_URL"`
		RabbitMQQueueName string `env:"RABBITMQ_QUEUE_NAME" envDefault:"served_images"`
	}

	WarmupConcurrencyLimit int `env:"WARMUP_CONCURRENCY_LIMIT" envDefault:"10"`
}

// LoadConfig загружает конфигурацию из переменных окружения.
// В режиме разработки пытается загрузить .env файл.
func LoadConfig() (*Config, error) {
	if _, err := os.Stat(".env"); !os.IsNotExist(err) {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	}

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config from environment: %w", err)
	}

	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate проверяет только ошибки формы деплоя; наличие ключа проверяется на каждом запросе.
func (c *Config) Validate() error {
	strategy, err := domain.ParseStrategy(c.Strategy)
	if err != nil {
		return err
	}

	if strategy == domain.ByCollection && c.CollectionID == "" {
		return fmt.Errorf("UNSPLASH_COLLECTION_ID must be set for strategy %q", strategy)
	}
	if strategy != domain.ByCollection && c.Username == "" {
		return fmt.Errorf("UNSPLASH_USERNAME must be set for strategy %q", strategy)
	}
	if c.ListPerPage <= 0 {
		return fmt.Errorf("UNSPLASH_LIST_PER_PAGE must be positive, got %d", c.ListPerPage)
	}
	if c.DefaultWidth <= 0 {
		return fmt.Errorf("DEFAULT_WIDTH must be positive, got %d", c.DefaultWidth)
	}
	return nil
}

// Selection собирает параметры выбора фото для usecase.
func (c *Config) Selection() domain.Selection {
	// Validate уже отработал в LoadConfig, ошибку здесь можно игнорировать
	strategy, _ := domain.ParseStrategy(c.Strategy)
	return domain.Selection{
		Strategy:     strategy,
		Username:     c.Username,
		CollectionID: c.CollectionID,
		PerPage:      c.ListPerPage,
	}
}
