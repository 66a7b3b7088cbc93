package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/GoArmGo/RandomImage/internal/core/ports"
	"github.com/GoArmGo/RandomImage/internal/messaging/payloads"
)

var errNoConsumer = errors.New("worker mode requires RABBITMQ_URL")

// runWorker читает события об отданных изображениях и пишет атрибуцию в лог
func runWorker(ctx context.Context, consumer ports.ServedImageConsumer, logger *slog.Logger) error {
	if consumer == nil {
		return errNoConsumer
	}

	logger.Info("worker started, waiting for served image events")

	if err := consumer.StartConsumingServedImages(ctx, servedImageLogger(logger)); err != nil {
		return fmt.Errorf("failed to start RabbitMQ consumer: %w", err)
	}

	<-ctx.Done()
	logger.Info("worker stopped")
	return nil
}

// servedImageLogger пишет атрибуцию каждого отданного фото в лог
func servedImageLogger(logger *slog.Logger) func(context.Context, payloads.ServedImagePayload) error {
	return func(ctx context.Context, p payloads.ServedImagePayload) error {
		// повторная доставка не исправит пустое событие, поэтому просто пропускаем
		if p.PhotoID == "" {
			logger.Warn("served image event without photo_id", "event_id", p.EventID)
			return nil
		}
		logger.Info("image served",
			"event_id", p.EventID,
			"request_id", p.RequestID,
			"photo_id", p.PhotoID,
			"photographer", p.PhotographerUsername,
			"strategy", p.Strategy,
			"width", p.Width,
			"orientation", p.Orientation,
			"served_at", p.ServedAt,
		)
		return nil
	}
}
