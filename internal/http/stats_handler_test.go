package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"log-stats/internal/ingestors/mocks"
	"log-stats/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestStatsHandler_BeforeFirstReport(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	snapshots := mocks.NewMockSnapshotReader(ctrl)
	snapshots.EXPECT().Latest().Return(nil)

	router := NewRouter(snapshots, discardLogger(t))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/stats", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)

	var errorResponse ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errorResponse))
	assert.Equal(t, "not_found", errorResponse.ErrorCategory)
	assert.Equal(t, codeStatsNotReported, errorResponse.ErrorCode)
}

func TestStatsHandler_LatestSnapshot(t *testing.T) {
	t.Parallel()

	reportedAt := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	ctrl := gomock.NewController(t)
	snapshots := mocks.NewMockSnapshotReader(ctrl)
	snapshots.EXPECT().Latest().Return(&models.ReportSnapshot{
		TotalBytes:    78,
		StatusCounts:  map[string]uint64{"200": 2, "404": 1},
		AcceptedLines: 3,
		Trigger:       models.TriggerPeriodic,
		ReportedAt:    reportedAt,
	})

	router := NewRouter(snapshots, discardLogger(t))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/stats", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, contentTypeJSON, rr.Header().Get(headerContentType))

	var got models.ReportSnapshot
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, uint64(78), got.TotalBytes)
	assert.Equal(t, map[string]uint64{"200": 2, "404": 1}, got.StatusCounts)
	assert.Equal(t, uint64(3), got.AcceptedLines)
	assert.Equal(t, models.TriggerPeriodic, got.Trigger)
	assert.True(t, reportedAt.Equal(got.ReportedAt))
}

func TestRouter_OperatorEndpoints(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	router := NewRouter(mocks.NewMockSnapshotReader(ctrl), discardLogger(t))

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{name: "healthz", method: http.MethodGet, path: "/healthz", wantStatus: http.StatusOK},
		{name: "metrics", method: http.MethodGet, path: "/metrics", wantStatus: http.StatusOK},
		{name: "no ingestion over http", method: http.MethodPost, path: "/stats", wantStatus: http.StatusMethodNotAllowed},
		{name: "unknown route", method: http.MethodGet, path: "/logs", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}
