package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/maxpoletaev/sorter/api/handler"
)

func CreateRouter(sorter handler.Sorter, gate handler.Gate, logger kitlog.Logger) *chi.Mux {
	r := chi.NewRouter()
	r.Use(logRequests(logger))

	handler.NewHealthHandler(gate).Register(r)

	r.Route("/v1", func(r chi.Router) {
		r.Use(handler.RequireReady(gate))

		handler.NewSortHandler(sorter).Register(r)
		handler.NewBatchHandler(sorter).Register(r)
	})

	return r
}

func logRequests(logger kitlog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			level.Debug(logger).Log(
				"msg", "http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration", time.Since(start),
			)
		})
	}
}
