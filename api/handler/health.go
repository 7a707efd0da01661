package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/maxpoletaev/sorter/api/model"
)

const (
	statusReady        = "ready"
	statusInitializing = "initializing"
)

type HealthHandler struct {
	gate Gate
}

func NewHealthHandler(gate Gate) *HealthHandler {
	return &HealthHandler{gate: gate}
}

func (h *HealthHandler) Register(r chi.Router) {
	r.Get("/health", h.health)
}

func (h *HealthHandler) health(w http.ResponseWriter, r *http.Request) {
	if !h.gate.Ready() {
		render.Status(r, http.StatusServiceUnavailable)
		render.JSON(w, r, model.HealthResponse{Status: statusInitializing})

		return
	}

	render.JSON(w, r, model.HealthResponse{Status: statusReady})
}

// RequireReady rejects requests with 503 until the gate is ready.
func RequireReady(gate Gate) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !gate.Ready() {
				render.Status(r, http.StatusServiceUnavailable)
				render.JSON(w, r, model.HealthResponse{Status: statusInitializing})

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
