package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/GoArmGo/RandomImage/internal/config"
	"github.com/GoArmGo/RandomImage/internal/messaging/payloads"
)

const publishTimeout = 5 * time.Second

// Client представляет собой клиент RabbitMQ для событий об отданных изображениях
type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   amqp.Queue
	logger  *slog.Logger
}

// NewClient создает и инициализирует новый клиент RabbitMQ
func NewClient(cfg *config.Config, logger *slog.Logger) (*Client, error) {
	client := &Client{logger: logger}

	conn, err := amqp.Dial(cfg.RabbitMQ.RabbitMQURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	client.conn = conn
	logger.Info("connected to RabbitMQ")

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}
	client.channel = ch

	// Идемпотентно: очередь создаётся, если её ещё нет
	q, err := ch.QueueDeclare(
		cfg.RabbitMQ.RabbitMQQueueName, // name
		true,                           // durable
		false,                          // delete when unused
		false,                          // exclusive
		false,                          // no-wait
		nil,                            // arguments
	)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to declare a queue: %w", err)
	}
	client.queue = q
	logger.Info("queue declared", "queue", q.Name, "messages", q.Messages)

	return client, nil
}

// Close закрывает соединение и канал RabbitMQ
func (c *Client) Close() error {
	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			c.logger.Warn("error closing RabbitMQ channel", "error", err)
		}
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			return fmt.Errorf("close RabbitMQ connection: %w", err)
		}
	}
	c.logger.Info("RabbitMQ connection closed")
	return nil
}

// PublishServedImage публикует событие в очередь.
// Реализует интерфейс ports.ServedImagePublisher.
func (c *Client) PublishServedImage(ctx context.Context, payload payloads.ServedImagePayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload to JSON: %w", err)
	}

	publishCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = c.channel.PublishWithContext(
		publishCtx,
		"",           // exchange
		c.queue.Name, // routing key
		false,        // mandatory
		false,        // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			MessageId:    payload.EventID,
			Timestamp:    payload.ServedAt,
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish a message: %w", err)
	}

	c.logger.Debug("served image event published", "queue", c.queue.Name, "event_id", payload.EventID)
	return nil
}

// StartConsumingServedImages начинает потребление сообщений из очереди.
// Реализует интерфейс ports.ServedImageConsumer.
func (c *Client) StartConsumingServedImages(ctx context.Context, handler func(context.Context, payloads.ServedImagePayload) error) error {
	msgs, err := c.channel.Consume(
		c.queue.Name, // queue
		"",           // consumer
		false,        // auto-ack, подтверждаем вручную
		false,        // exclusive
		false,        // no-local
		false,        // no-wait
		nil,          // args
	)
	if err != nil {
		return fmt.Errorf("failed to register a consumer: %w", err)
	}

	c.logger.Info("consumer registered", "queue", c.queue.Name)

	go c.consume(ctx, msgs, handler)

	return nil
}

func (c *Client) consume(ctx context.Context, msgs <-chan amqp.Delivery, handler func(context.Context, payloads.ServedImagePayload) error) {
	for {
		select {
		case msg, ok := <-msgs:
			if !ok {
				c.logger.Info("RabbitMQ channel closed, stopping consumer")
				return
			}
			c.handleDelivery(ctx, msg, handler)

		case <-ctx.Done():
			c.logger.Info("context cancelled, stopping RabbitMQ consumer")
			return
		}
	}
}

// acknowledger: часть amqp.Delivery, нужная для ack/nack
type acknowledger interface {
	Ack(multiple bool) error
	Nack(multiple, requeue bool) error
}

func (c *Client) handleDelivery(ctx context.Context, msg amqp.Delivery, handler func(context.Context, payloads.ServedImagePayload) error) {
	processDelivery(ctx, msg.Body, msg, handler, c.logger)
}

// processDelivery декодирует сообщение и подтверждает его.
// Битое сообщение отклоняется без возврата в очередь, при ошибке обработчика возвращается.
func processDelivery(ctx context.Context, body []byte, ack acknowledger, handler func(context.Context, payloads.ServedImagePayload) error, logger *slog.Logger) {
	var payload payloads.ServedImagePayload
	if err := json.Unmarshal(body, &payload); err != nil {
		logger.Error("error unmarshalling message", "error", err, "body", string(body))
		if err := ack.Nack(false, false); err != nil {
			logger.Error("error NACKing message after unmarshal failure", "error", err)
		}
		return
	}

	if err := handler(ctx, payload); err != nil {
		logger.Error("error processing message", "error", err, "event_id", payload.EventID)
		if err := ack.Nack(false, true); err != nil {
			logger.Error("error NACKing message after processing failure", "error", err)
		}
		return
	}

	if err := ack.Ack(false); err != nil {
		logger.Error("error ACKing message", "error", err, "event_id", payload.EventID)
	}
}
