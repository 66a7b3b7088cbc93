package di

import (
	"github.com/GoArmGo/RandomImage/internal/adapter/unsplash"
	"github.com/GoArmGo/RandomImage/internal/app"
	"github.com/GoArmGo/RandomImage/internal/config"
	"github.com/GoArmGo/RandomImage/internal/core/ports"
	"github.com/GoArmGo/RandomImage/internal/logger"
	"github.com/GoArmGo/RandomImage/internal/rabbitmq"
	"github.com/GoArmGo/RandomImage/internal/usecase"
)

// BuildApp инициализирует все зависимости и возвращает готовый объект App.
func BuildApp() (*app.App, error) {
	// 1. Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	// 2. Логгер
	slogger := logger.NewSlog(logger.SlogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	slogger.Info("logger initialized", "level", cfg.LogLevel, "format", cfg.LogFormat)

	if cfg.UnsplashAccessKey == "" {
		// не фатально: каждый запрос получит 500, пока ключ не задан
		slogger.Warn("UNSPLASH_ACCESS_KEY is not set")
	}

	// 3. Клиент Unsplash
	unsplashClient := unsplash.NewUnsplashAPIClient(cfg)

	// 4. RabbitMQ (опционально)
	var (
		publisher ports.ServedImagePublisher
		consumer  ports.ServedImageConsumer
		closers   []func() error
	)
	if cfg.RabbitMQ.RabbitMQURL != "" {
		rabbitMQClient, err := rabbitmq.NewClient(cfg, slogger)
		if err != nil {
			// события опциональны: без брокера API продолжает отвечать, worker упадёт на старте
			slogger.Warn("RabbitMQ unavailable, served image events are disabled", "error", err)
		} else {
			publisher = rabbitMQClient
			consumer = rabbitMQClient
			closers = append(closers, rabbitMQClient.Close)
		}
	} else {
		slogger.Info("RABBITMQ_URL is not set, served image events are disabled")
	}

	// 5. Бизнес-логика
	selection := cfg.Selection()
	imageUseCase := usecase.NewImageUseCase(selection, unsplashClient, publisher, slogger)

	slogger.Info("dependencies initialized",
		"strategy", selection.Strategy,
		"username", selection.Username,
		"collection_id", selection.CollectionID,
	)

	// 6. Сборка итогового приложения
	return app.NewApp(cfg, slogger, imageUseCase, consumer, closers...), nil
}
