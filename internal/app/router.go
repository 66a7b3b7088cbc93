package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/GoArmGo/RandomImage/internal/handler"
)

// RandomImagePath единственный публичный эндпоинт
const RandomImagePath = "/api/random"

// NewRouter собирает общий http.Handler для всех режимов запуска (server, lambda, vercel)
func NewRouter(imageHandler *handler.ImageHandler, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(handler.RequestLogger(logger))
	r.Use(handler.Recoverer(logger))

	// все методы: OPTIONS отвечает на preflight, остальные обрабатываются как GET
	r.HandleFunc(RandomImagePath, imageHandler.RandomImage)
	r.Get("/healthz", handler.Health)

	return r
}
