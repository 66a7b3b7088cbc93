package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/GoArmGo/RandomImage/internal/domain"
	"github.com/GoArmGo/RandomImage/internal/usecase"
)

// Тексты ошибок, которые видит клиент. Подробности пишутся только в лог.
const (
	msgMissingAccessKey = "Missing UNSPLASH_ACCESS_KEY environment variable"
	msgUpstreamError    = "Unsplash API error"
	msgNoUsableURL      = "No usable image URL from Unsplash"
	msgNoPhotos         = "No photos found for user"
	msgInternalError    = "Internal server error"
)

// Options задаются деплоем
type Options struct {
	DefaultWidth    int
	CORSAllowOrigin string
	CacheControl    string
}

// ImageHandler — обработчик HTTP-запросов /api/random.
type ImageHandler struct {
	imageUseCase usecase.ImageUseCase
	opts         Options
	logger       *slog.Logger
}

// NewImageHandler создаёт новый экземпляр ImageHandler.
func NewImageHandler(uc usecase.ImageUseCase, opts Options, logger *slog.Logger) *ImageHandler {
	if opts.DefaultWidth <= 0 {
		opts.DefaultWidth = 1920
	}
	if opts.CORSAllowOrigin == "" {
		opts.CORSAllowOrigin = "*"
	}
	return &ImageHandler{
		imageUseCase: uc,
		opts:         opts,
		logger:       logger,
	}
}

// respondWithJSON — отправляет JSON-ответ клиенту.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}, logger *slog.Logger) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		logger.Error("failed to marshal JSON response", "error", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err = w.Write(response); err != nil {
		logger.Error("failed to write HTTP response", "error", err)
	}
}

// respondWithError — отправляет JSON-ответ с ошибкой.
func respondWithError(w http.ResponseWriter, code int, message string, logger *slog.Logger) {
	respondWithJSON(w, code, map[string]string{"error": message}, logger)
}

func (h *ImageHandler) setCORS(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", h.opts.CORSAllowOrigin)
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
}

// RandomImage — возвращает случайное фото Unsplash с параметрами размера.
func (h *ImageHandler) RandomImage(w http.ResponseWriter, r *http.Request) {
	h.setCORS(w)

	// preflight
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	query := r.URL.Query()
	req := domain.ImageRequest{
		Width:     domain.ResolveWidth(query.Get("w"), h.opts.DefaultWidth),
		RequestID: middleware.GetReqID(r.Context()),
	}

	if raw := query.Get("orientation"); raw != "" {
		orientation, ok := domain.ParseOrientation(raw)
		if ok {
			req.Orientation = orientation
		} else {
			h.logger.Warn("ignoring unsupported orientation", "orientation", raw, "request_id", req.RequestID)
		}
	}

	h.logger.Debug("processing request",
		"endpoint", "RandomImage",
		"orientation", req.Orientation,
		"width", req.Width,
		"request_id", req.RequestID,
	)

	payload, err := h.imageUseCase.RandomImage(r.Context(), req)
	if err != nil {
		h.respondWithUseCaseError(w, err, req.RequestID)
		return
	}

	if h.opts.CacheControl != "" {
		w.Header().Set("Cache-Control", h.opts.CacheControl)
	}

	h.logger.Info("random image served", "photo_id", valueOrEmpty(payload.ID), "width", req.Width, "request_id", req.RequestID)
	respondWithJSON(w, http.StatusOK, payload, h.logger)
}

// respondWithUseCaseError сопоставляет ошибку usecase со статусом и телом ответа
func (h *ImageHandler) respondWithUseCaseError(w http.ResponseWriter, err error, requestID string) {
	var upstreamErr *domain.UpstreamError

	switch {
	case errors.Is(err, domain.ErrMissingAccessKey):
		h.logger.Error("configuration error", "error", err, "request_id", requestID)
		respondWithError(w, http.StatusInternalServerError, msgMissingAccessKey, h.logger)

	case errors.As(err, &upstreamErr):
		h.logger.Error("unsplash API error",
			"status", upstreamErr.Status,
			"detail", upstreamErr.Detail,
			"request_id", requestID,
		)
		respondWithJSON(w, http.StatusBadGateway, map[string]any{
			"error":  msgUpstreamError,
			"status": upstreamErr.Status,
			"detail": upstreamErr.Detail,
		}, h.logger)

	case errors.Is(err, domain.ErrNoUsableURL):
		respondWithError(w, http.StatusBadGateway, msgNoUsableURL, h.logger)

	case errors.Is(err, domain.ErrNoPhotos):
		respondWithError(w, http.StatusNotFound, msgNoPhotos, h.logger)

	default:
		h.logger.Error("failed to get random image", "error", err, "request_id", requestID)
		respondWithError(w, http.StatusInternalServerError, msgInternalError, h.logger)
	}
}

func valueOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Health отвечает на проверку живости.
func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
