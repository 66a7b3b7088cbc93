package app

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/go-chi/chi/v5/middleware"
)

// lambdaHandler принимает сырое событие: warmup или API Gateway proxy-запрос
type lambdaHandler struct {
	router http.Handler
	warmer *warmer
	logger *slog.Logger
}

// Handle передаётся в lambda.Start
func (h *lambdaHandler) Handle(ctx context.Context, event json.RawMessage) (interface{}, error) {
	// Warmup проверяется первым, до любой другой обработки
	if warmup, ok := IsWarmupEvent(event); ok {
		return h.warmer.HandleWarmup(ctx, warmup)
	}

	var req events.APIGatewayProxyRequest
	if err := json.Unmarshal(event, &req); err != nil {
		return nil, fmt.Errorf("decode API Gateway event: %w", err)
	}

	return h.ServeAPIGateway(ctx, req)
}

// ServeAPIGateway прогоняет API Gateway запрос через общий роутер
func (h *lambdaHandler) ServeAPIGateway(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	httpReq, err := toHTTPRequest(ctx, req)
	if err != nil {
		h.logger.Error("failed to convert API Gateway request", "error", err)
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusInternalServerError,
			Headers:    map[string]string{"Content-Type": "application/json"},
			Body:       `{"error":"Internal server error"}`,
		}, nil
	}

	rw := newLambdaResponseWriter()
	h.router.ServeHTTP(rw, httpReq)

	return rw.toAPIGatewayResponse(), nil
}

// toHTTPRequest собирает *http.Request из события API Gateway
func toHTTPRequest(ctx context.Context, req events.APIGatewayProxyRequest) (*http.Request, error) {
	query := url.Values{}
	if len(req.MultiValueQueryStringParameters) > 0 {
		for k, vs := range req.MultiValueQueryStringParameters {
			for _, v := range vs {
				query.Add(k, v)
			}
		}
	} else {
		for k, v := range req.QueryStringParameters {
			query.Set(k, v)
		}
	}

	path := req.Path
	if path == "" {
		path = "/"
	}
	u := url.URL{Path: path, RawQuery: query.Encode()}

	body := []byte(req.Body)
	if req.IsBase64Encoded && req.Body != "" {
		decoded, err := base64.StdEncoding.DecodeString(req.Body)
		if err != nil {
			return nil, fmt.Errorf("decode base64 body: %w", err)
		}
		body = decoded
	}

	method := req.HTTPMethod
	if method == "" {
		method = http.MethodGet
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, u.String(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build http request: %w", err)
	}

	for k, vs := range req.MultiValueHeaders {
		for _, v := range vs {
			httpReq.Header.Add(k, v)
		}
	}
	for k, v := range req.Headers {
		if httpReq.Header.Get(k) == "" {
			httpReq.Header.Set(k, v)
		}
	}

	// chi RequestID подхватит id запроса API Gateway
	if req.RequestContext.RequestID != "" && httpReq.Header.Get(middleware.RequestIDHeader) == "" {
		httpReq.Header.Set(middleware.RequestIDHeader, req.RequestContext.RequestID)
	}

	return httpReq, nil
}

// lambdaResponseWriter накапливает ответ роутера для API Gateway
type lambdaResponseWriter struct {
	header     http.Header
	body       bytes.Buffer
	statusCode int
}

func newLambdaResponseWriter() *lambdaResponseWriter {
	return &lambdaResponseWriter{header: http.Header{}}
}

func (w *lambdaResponseWriter) Header() http.Header {
	return w.header
}

func (w *lambdaResponseWriter) Write(b []byte) (int, error) {
	if w.statusCode == 0 {
		w.statusCode = http.StatusOK
	}
	return w.body.Write(b)
}

func (w *lambdaResponseWriter) WriteHeader(code int) {
	if w.statusCode == 0 {
		w.statusCode = code
	}
}

func (w *lambdaResponseWriter) toAPIGatewayResponse() events.APIGatewayProxyResponse {
	status := w.statusCode
	if status == 0 {
		status = http.StatusOK
	}

	headers := make(map[string]string, len(w.header))
	multi := make(map[string][]string, len(w.header))
	for k, vs := range w.header {
		if len(vs) == 0 {
			continue
		}
		headers[k] = strings.Join(vs, ", ")
		multi[k] = vs
	}

	return events.APIGatewayProxyResponse{
		StatusCode:        status,
		Headers:           headers,
		MultiValueHeaders: multi,
		Body:              w.body.String(),
	}
}
