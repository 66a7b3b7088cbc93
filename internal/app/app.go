package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/GoArmGo/RandomImage/internal/config"
	"github.com/GoArmGo/RandomImage/internal/core/ports"
	"github.com/GoArmGo/RandomImage/internal/handler"
	"github.com/GoArmGo/RandomImage/internal/usecase"
)

// Режимы запуска
const (
	ModeServer = "server"
	ModeLambda = "lambda"
	ModeWorker = "worker"
)

type App struct {
	Config      *config.Config
	logger      *slog.Logger
	router      http.Handler
	consumer    ports.ServedImageConsumer
	closers     []func() error
	startLambda func(handler interface{})
}

func NewApp(cfg *config.Config,
	logger *slog.Logger,
	imageUseCase usecase.ImageUseCase,
	consumer ports.ServedImageConsumer,
	closers ...func() error) *App {
	imageHandler := handler.NewImageHandler(imageUseCase, handler.Options{
		DefaultWidth:    cfg.DefaultWidth,
		CORSAllowOrigin: cfg.CORSAllowOrigin,
		CacheControl:    cfg.CacheControl,
	}, logger)

	return &App{
		Config:      cfg,
		logger:      logger,
		router:      NewRouter(imageHandler, logger),
		consumer:    consumer,
		closers:     closers,
		startLambda: lambda.Start,
	}
}

// LoggerIns возвращает основной логгер приложения
func (a *App) LoggerIns() *slog.Logger {
	return a.logger
}

// Handler возвращает общий роутер; используется точкой входа Vercel
func (a *App) Handler() http.Handler {
	return a.router
}

func (a *App) Run(ctx context.Context, mode string) error {
	// канал для graceful shutdown
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.logger.Info("running", "mode", mode)

	var err error

	switch mode {
	case ModeServer:
		err = runServer(ctx, a.Config.ServerPort, a.router, a.logger)

	case ModeLambda:
		lh := &lambdaHandler{
			router: a.router,
			warmer: newWarmer(os.Getenv("AWS_LAMBDA_FUNCTION_NAME"), a.Config.WarmupConcurrencyLimit, a.logger),
			logger: a.logger,
		}
		// lambda.Start блокируется до конца жизни экземпляра
		a.startLambda(lh.Handle)

	case ModeWorker:
		err = runWorker(ctx, a.consumer, a.logger)

	default:
		err = fmt.Errorf("unknown mode: %s (use %q, %q or %q)", mode, ModeServer, ModeLambda, ModeWorker)
	}

	// аккуратно закрываем ресурсы
	if closeErr := a.Shutdown(); closeErr != nil {
		a.logger.Error("shutdown error", "error", closeErr)
	}

	return err
}

// Shutdown закрывает все ресурсы приложения
func (a *App) Shutdown() error {
	var firstErr error
	for _, closeFn := range a.closers {
		if err := closeFn(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	a.closers = nil
	return firstErr
}
