package app

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	lambdasdk "github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lambda/types"
)

const (
	// WarmupSource: значение поля source у warmup-событий из EventBridge
	WarmupSource = "warmup"

	// WarmupDelay нужен, чтобы экземпляры пересеклись по времени
	WarmupDelay = 75 * time.Millisecond
)

// WarmupEvent описывает событие прогрева
type WarmupEvent struct {
	Source      string `json:"source"`
	Concurrency int    `json:"concurrency"`
}

// WarmupResponse возвращается на событие прогрева
type WarmupResponse struct {
	Status          string `json:"status"`
	InstancesWarmed int    `json:"instancesWarmed"`
}

// lambdaInvoker: часть клиента AWS Lambda, нужная для самовызова
type lambdaInvoker interface {
	Invoke(ctx context.Context, params *lambdasdk.InvokeInput, optFns ...func(*lambdasdk.Options)) (*lambdasdk.InvokeOutput, error)
}

// IsWarmupEvent проверяет, является ли событие событием прогрева
func IsWarmupEvent(event json.RawMessage) (*WarmupEvent, bool) {
	var warmup WarmupEvent
	if err := json.Unmarshal(event, &warmup); err != nil {
		return nil, false
	}
	if warmup.Source != WarmupSource {
		return nil, false
	}
	if warmup.Concurrency < 0 {
		warmup.Concurrency = 0
	}
	return &warmup, true
}

// warmer держит экземпляры функции прогретыми асинхронным самовызовом
type warmer struct {
	functionName string
	maxFanOut    int
	logger       *slog.Logger
	delay        time.Duration

	// newInvoker создаёт клиент лениво: холодный старт без прогрева не платит за AWS config
	newInvoker func(ctx context.Context) (lambdaInvoker, error)
}

func newWarmer(functionName string, maxFanOut int, logger *slog.Logger) *warmer {
	return &warmer{
		functionName: functionName,
		maxFanOut:    maxFanOut,
		logger:       logger,
		delay:        WarmupDelay,
		newInvoker:   defaultLambdaInvoker,
	}
}

func defaultLambdaInvoker(ctx context.Context) (lambdaInvoker, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return lambdasdk.NewFromConfig(cfg), nil
}

// HandleWarmup обрабатывает событие прогрева и при необходимости вызывает себя N раз
func (w *warmer) HandleWarmup(ctx context.Context, warmup *WarmupEvent) (interface{}, error) {
	instancesWarmed := 1 // этот экземпляр

	count := warmup.Concurrency
	if w.maxFanOut > 0 && count > w.maxFanOut {
		w.logger.Warn("warmup concurrency capped", "requested", count, "limit", w.maxFanOut)
		count = w.maxFanOut
	}

	if count > 0 {
		if err := w.selfInvoke(ctx, count); err != nil {
			w.logger.Warn("warmup self-invoke failed", "error", err)
		} else {
			instancesWarmed += count
		}
	}

	time.Sleep(w.delay)

	w.logger.Info("warmup handled", "instances_warmed", instancesWarmed)
	return map[string]interface{}{
		"statusCode": 200,
		"body": WarmupResponse{
			Status:          "warm",
			InstancesWarmed: instancesWarmed,
		},
	}, nil
}

// selfInvoke асинхронно вызывает эту же функцию count раз
func (w *warmer) selfInvoke(ctx context.Context, count int) error {
	if w.functionName == "" {
		return fmt.Errorf("AWS_LAMBDA_FUNCTION_NAME is not set")
	}

	client, err := w.newInvoker(ctx)
	if err != nil {
		return err
	}

	// concurrency=0 у дочерних вызовов, иначе рекурсия
	payload, err := json.Marshal(WarmupEvent{Source: WarmupSource, Concurrency: 0})
	if err != nil {
		return err
	}

	var wg sync.WaitGroup
	var invokeErr error
	var errMu sync.Mutex

	for i := 0; i < count; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_, err := client.Invoke(ctx, &lambdasdk.InvokeInput{
				FunctionName:   aws.String(w.functionName),
				InvocationType: types.InvocationTypeEvent,
				Payload:        payload,
			})
			if err != nil {
				errMu.Lock()
				if invokeErr == nil {
					invokeErr = err
				}
				errMu.Unlock()
			}
		}()
	}

	wg.Wait()
	return invokeErr
}
