package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GoArmGo/RandomImage/internal/adapter/unsplash"
	"github.com/GoArmGo/RandomImage/internal/domain"
	"github.com/GoArmGo/RandomImage/internal/handler"
	"github.com/GoArmGo/RandomImage/internal/logger"
	"github.com/GoArmGo/RandomImage/internal/usecase"
)

// newTestRouter собирает роутер с настоящим клиентом Unsplash поверх фейкового апстрима
func newTestRouter(t *testing.T, accessKey string, selection domain.Selection, upstream http.HandlerFunc) http.Handler {
	t.Helper()

	srv := httptest.NewServer(upstream)
	t.Cleanup(srv.Close)

	log := logger.Discard()
	client := unsplash.NewClient(srv.Client(), srv.URL, accessKey)
	uc := usecase.NewImageUseCase(selection, client, nil, log)
	h := handler.NewImageHandler(uc, handler.Options{
		DefaultWidth:    1920,
		CORSAllowOrigin: "*",
		CacheControl:    "s-maxage=3600, stale-while-revalidate=86400",
	}, log)

	return NewRouter(h, log)
}

func jsonUpstream(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func TestRouterRandomImage(t *testing.T) {
	var gotQuery string
	router := newTestRouter(t, "secret", domain.Selection{Strategy: domain.ByUsername, Username: "tabliss-official"},
		func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.RawQuery
			jsonUpstream(http.StatusOK, `{"id":"abc","urls":{"regular":"https://img/x"},"user":{"username":"jdoe","name":"Jane"}}`)(w, r)
		})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/random?w=800&orientation=portrait", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %q", rec.Code, rec.Body.String())
	}
	if gotQuery != "orientation=portrait&username=tabliss-official" {
		t.Errorf("upstream query = %q", gotQuery)
	}

	var body struct {
		URL          string `json:"url"`
		Photographer struct {
			Name       *string `json:"name"`
			ProfileURL *string `json:"profile_url"`
		} `json:"photographer"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.URL != "https://img/x?w=800&fit=crop" {
		t.Errorf("url = %q", body.URL)
	}
	if body.Photographer.Name == nil || *body.Photographer.Name != "Jane" || body.Photographer.ProfileURL != nil {
		t.Errorf("unexpected photographer %+v", body.Photographer)
	}
	if rec.Header().Get("X-Request-Id") != "" {
		t.Error("request id must not leak into response headers")
	}
}

func TestRouterErrorMapping(t *testing.T) {
	byUser := domain.Selection{Strategy: domain.ByUsername, Username: "u"}
	listing := domain.Selection{Strategy: domain.ByUserListing, Username: "u", PerPage: 30}

	tests := []struct {
		name       string
		accessKey  string
		selection  domain.Selection
		method     string
		upstream   http.HandlerFunc
		wantStatus int
	}{
		{
			name:       "missing key GET",
			selection:  byUser,
			method:     http.MethodGet,
			upstream:   jsonUpstream(http.StatusOK, `{}`),
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "missing key DELETE",
			selection:  byUser,
			method:     http.MethodDelete,
			upstream:   jsonUpstream(http.StatusOK, `{}`),
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "upstream 403",
			accessKey:  "secret",
			selection:  byUser,
			method:     http.MethodGet,
			upstream:   jsonUpstream(http.StatusForbidden, `{"errors":["Rate Limit Exceeded"]}`),
			wantStatus: http.StatusBadGateway,
		},
		{
			name:       "no urls",
			accessKey:  "secret",
			selection:  byUser,
			method:     http.MethodGet,
			upstream:   jsonUpstream(http.StatusOK, `{"id":"abc","urls":{}}`),
			wantStatus: http.StatusBadGateway,
		},
		{
			name:       "empty listing",
			accessKey:  "secret",
			selection:  listing,
			method:     http.MethodGet,
			upstream:   jsonUpstream(http.StatusOK, `[]`),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "preflight without key",
			selection:  byUser,
			method:     http.MethodOptions,
			upstream:   jsonUpstream(http.StatusOK, `{}`),
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(t, tt.accessKey, tt.selection, tt.upstream)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, RandomImagePath, nil))

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d (body %q)", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
				t.Error("CORS header missing")
			}
		})
	}
}

func TestRouterHealthz(t *testing.T) {
	router := newTestRouter(t, "", domain.Selection{Strategy: domain.ByUsername, Username: "u"}, jsonUpstream(http.StatusOK, `{}`))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestRouterDefaultWidthScenario(t *testing.T) {
	router := newTestRouter(t, "secret", domain.Selection{Strategy: domain.ByUsername, Username: "bob"},
		jsonUpstream(http.StatusOK, `{"id":"abc","urls":{"regular":"https://img/x"},"user":{"username":"bob"}}`))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, RandomImagePath, nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %q", rec.Code, rec.Body.String())
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["url"] != "https://img/x?w=1920&fit=crop" || body["id"] != "abc" {
		t.Errorf("unexpected body %v", body)
	}
	photographer, _ := body["photographer"].(map[string]any)
	if photographer["name"] != "bob" || photographer["username"] != "bob" {
		t.Errorf("photographer = %v", photographer)
	}
}
