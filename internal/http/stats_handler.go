package http

import (
	"encoding/json"
	"net/http"

	"log-stats/internal/ingestors"
)

type AppHttpHandler interface {
	Handle(w http.ResponseWriter, r *http.Request) error
}

type statsHandler struct {
	snapshots ingestors.SnapshotReader
}

func NewStatsHandler(snapshots ingestors.SnapshotReader) AppHttpHandler {
	return &statsHandler{snapshots: snapshots}
}

// Handle processes GET /stats requests with the last emitted report.
func (h *statsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	snapshot := h.snapshots.Latest()
	if snapshot == nil {
		return errStatsNotReported()
	}

	w.Header().Set(headerContentType, contentTypeJSON)
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(snapshot)
	return nil
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
