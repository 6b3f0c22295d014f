package http

import (
	"net/http"

	"log-stats/internal/ingestors"
	"log-stats/internal/shared/loggers"
	"log-stats/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates the read-only operator router. Nothing here feeds the aggregate.
func NewRouter(snapshots ingestors.SnapshotReader, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	statsHandler := NewStatsHandler(snapshots)

	router.Get("/stats", errorHandlingAdapter(statsHandler))
	router.Get("/healthz", healthz)
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
