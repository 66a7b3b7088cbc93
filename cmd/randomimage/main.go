package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/GoArmGo/RandomImage/internal/di"
)

func main() {
	mode := flag.String("mode", "server", "Режим запуска: server, lambda или worker")
	flag.Parse()

	// bootstrap-логгер нужен только до создания основного
	bootstrapLogger := slog.New(
		slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
	)
	bootstrapLogger.Info("starting application", "mode", *mode)

	app, err := di.BuildApp()
	if err != nil {
		bootstrapLogger.Error("failed to build app", "error", err)
		os.Exit(1)
	}

	logger := app.LoggerIns()

	if err := app.Run(context.Background(), *mode); err != nil {
		logger.Error("application run failed", "error", err)
		os.Exit(1)
	}

	logger.Info("application stopped gracefully")
}
