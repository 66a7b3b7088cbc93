package app

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/GoArmGo/RandomImage/internal/logger"
)

func TestToHTTPRequest(t *testing.T) {
	req := events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodGet,
		Path:       "/api/random",
		MultiValueQueryStringParameters: map[string][]string{
			"w":           {"800"},
			"orientation": {"portrait"},
		},
		QueryStringParameters: map[string]string{"w": "ignored"},
		Headers:               map[string]string{"Accept": "application/json"},
		RequestContext:        events.APIGatewayProxyRequestContext{RequestID: "gw-req-1"},
	}

	httpReq, err := toHTTPRequest(context.Background(), req)
	if err != nil {
		t.Fatalf("toHTTPRequest() error = %v", err)
	}

	if httpReq.URL.Path != "/api/random" {
		t.Errorf("path = %q", httpReq.URL.Path)
	}
	if got := httpReq.URL.Query().Get("w"); got != "800" {
		t.Errorf("w = %q, want multi-value parameter", got)
	}
	if got := httpReq.Header.Get("Accept"); got != "application/json" {
		t.Errorf("Accept = %q", got)
	}
	if got := httpReq.Header.Get(middleware.RequestIDHeader); got != "gw-req-1" {
		t.Errorf("request id header = %q", got)
	}
}

func TestToHTTPRequestDefaults(t *testing.T) {
	httpReq, err := toHTTPRequest(context.Background(), events.APIGatewayProxyRequest{
		QueryStringParameters: map[string]string{"w": "640"},
		Body:                  "aGVsbG8=",
		IsBase64Encoded:       true,
	})
	if err != nil {
		t.Fatalf("toHTTPRequest() error = %v", err)
	}
	if httpReq.Method != http.MethodGet || httpReq.URL.Path != "/" {
		t.Errorf("got %s %s, want GET /", httpReq.Method, httpReq.URL.Path)
	}
	if httpReq.URL.Query().Get("w") != "640" {
		t.Errorf("query = %q", httpReq.URL.RawQuery)
	}
	if httpReq.ContentLength != 5 {
		t.Errorf("ContentLength = %d, want decoded body length", httpReq.ContentLength)
	}
}

func TestToHTTPRequestBadBase64(t *testing.T) {
	_, err := toHTTPRequest(context.Background(), events.APIGatewayProxyRequest{
		Body:            "%%%",
		IsBase64Encoded: true,
	})
	if err == nil {
		t.Fatal("expected base64 error")
	}
}

func TestServeAPIGateway(t *testing.T) {
	var seenRequestID string
	router := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenRequestID = r.Header.Get(middleware.RequestIDHeader)
		w.Header().Set("Content-Type", "application/json")
		w.Header().Add("Vary", "Origin")
		w.Header().Add("Vary", "Accept")
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"error":"Unsplash API error"}`))
	})

	h := &lambdaHandler{router: router, logger: logger.Discard()}

	resp, err := h.ServeAPIGateway(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod:     http.MethodGet,
		Path:           "/api/random",
		RequestContext: events.APIGatewayProxyRequestContext{RequestID: "gw-2"},
	})
	if err != nil {
		t.Fatalf("ServeAPIGateway() error = %v", err)
	}

	if resp.StatusCode != http.StatusBadGateway {
		t.Errorf("StatusCode = %d", resp.StatusCode)
	}
	if resp.Body != `{"error":"Unsplash API error"}` {
		t.Errorf("Body = %q", resp.Body)
	}
	if resp.Headers["Vary"] != "Origin, Accept" || len(resp.MultiValueHeaders["Vary"]) != 2 {
		t.Errorf("Vary headers = %q / %v", resp.Headers["Vary"], resp.MultiValueHeaders["Vary"])
	}
	if seenRequestID != "gw-2" {
		t.Errorf("router saw request id %q", seenRequestID)
	}
}

func TestLambdaHandleRoutesEvents(t *testing.T) {
	router := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	w := newWarmer("", 10, logger.Discard())
	w.delay = 0
	h := &lambdaHandler{router: router, warmer: w, logger: logger.Discard()}

	t.Run("warmup", func(t *testing.T) {
		out, err := h.Handle(context.Background(), json.RawMessage(`{"source":"warmup","concurrency":0}`))
		if err != nil {
			t.Fatalf("Handle() error = %v", err)
		}
		m, ok := out.(map[string]interface{})
		if !ok || m["statusCode"] != 200 {
			t.Errorf("unexpected warmup response %#v", out)
		}
	})

	t.Run("api gateway", func(t *testing.T) {
		out, err := h.Handle(context.Background(), json.RawMessage(`{"httpMethod":"GET","path":"/api/random"}`))
		if err != nil {
			t.Fatalf("Handle() error = %v", err)
		}
		resp, ok := out.(events.APIGatewayProxyResponse)
		if !ok || resp.StatusCode != http.StatusOK || resp.Body != `{"ok":true}` {
			t.Errorf("unexpected response %#v", out)
		}
	})

	t.Run("garbage", func(t *testing.T) {
		if _, err := h.Handle(context.Background(), json.RawMessage(`[1,2]`)); err == nil {
			t.Error("expected decode error")
		}
	})
}
