package ports

import (
	"context"

	"github.com/GoArmGo/RandomImage/internal/messaging/payloads"
)

//go:generate mockgen -destination=mocks/mock_message_queue.go -package=mock_ports . ServedImagePublisher

// ServedImagePublisher публикует события об отданных изображениях.
// Используется usecase'ом после успешного ответа
type ServedImagePublisher interface {
	PublishServedImage(ctx context.Context, payload payloads.ServedImagePayload) error
}

// ServedImageConsumer потребляет события об отданных изображениях,
// используется воркером
type ServedImageConsumer interface {
	// StartConsumingServedImages начинает прослушивание очереди и вызывает handler на каждое сообщение
	StartConsumingServedImages(ctx context.Context, handler func(context.Context, payloads.ServedImagePayload) error) error
}
