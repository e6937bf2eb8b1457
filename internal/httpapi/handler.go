// Package httpapi serves the generation contract over HTTP.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/rcliao/uaforge/internal/engine"
	"github.com/rcliao/uaforge/internal/model"
)

const maxBodyBytes = 1 << 10

// Generator is the part of the engine the HTTP shell calls.
type Generator interface {
	Generate(ctx context.Context, pref model.Preference) (model.Result, error)
	Stats(ctx context.Context) (engine.Stats, error)
}

// Handler serves the /api routes.
type Handler struct {
	gen     Generator
	limiter *ClientLimiter
	log     *slog.Logger
}

// NewHandler returns a Handler. A nil logger uses slog.Default.
func NewHandler(gen Generator, limiter *ClientLimiter, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{gen: gen, limiter: limiter, log: log}
}

// RegisterRoutes mounts the API on r.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Post("/generate", h.generate)
		r.Get("/stats", h.stats)
	})
}

// NewRouter wires the global middleware and the API routes.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))

	h.RegisterRoutes(r)
	return r
}

type generateRequest struct {
	DeviceType string `json:"device_type"`
}

type generateResponse struct {
	UserAgent    string           `json:"user_agent"`
	EntropyScore float64          `json:"entropy_score"`
	DeviceType   model.DeviceType `json:"device_type"`
}

func (h *Handler) generate(w http.ResponseWriter, r *http.Request) {
	if h.limiter != nil && !h.limiter.Allow(clientKey(r)) {
		Error(w, http.StatusTooManyRequests, "rate limit exceeded")
		return
	}

	var req generateRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	pref, err := model.ParsePreference(req.DeviceType)
	if err != nil {
		Error(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.gen.Generate(r.Context(), pref)
	if err != nil {
		h.log.Error("generate failed", "device_type", pref, "error", err)
		Error(w, http.StatusInternalServerError, "generation failed")
		return
	}

	JSON(w, http.StatusOK, generateResponse{
		UserAgent:    res.Text,
		EntropyScore: res.Score,
		DeviceType:   res.DeviceType,
	})
}

func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.gen.Stats(r.Context())
	if err != nil {
		h.log.Error("stats failed", "error", err)
		Error(w, http.StatusInternalServerError, "stats unavailable")
		return
	}
	JSON(w, http.StatusOK, stats)
}

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"error": "failed to encode response"}`, http.StatusInternalServerError)
	}
}

// Error writes a JSON error response.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}
