// Package handler is the Vercel Go runtime entry point for /api/random.
package handler

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/GoArmGo/RandomImage/internal/di"
)

var defaultHandler http.Handler

// init выполняется один раз на холодном старте функции
func init() {
	application, err := di.BuildApp()
	if err != nil {
		logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
		logger.Error("failed to build app", "error", err)
		defaultHandler = unavailable()
		return
	}
	defaultHandler = application.Handler()
}

// Handler is the entry point for Vercel's Go runtime.
func Handler(w http.ResponseWriter, r *http.Request) {
	defaultHandler.ServeHTTP(w, r)
}

// unavailable отвечает общим 500, если конфигурация деплоя некорректна.
// Preflight при этом по-прежнему получает 204.
func unavailable() http.Handler {
	origin := os.Getenv("CORS_ALLOW_ORIGIN")
	if origin == "" {
		origin = "*"
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Internal server error"}`))
	})
}
