package rest

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/inventory-dashboard/internal/adapter/memory"
)

type storeStatsStub struct {
	stats memory.Stats
	err   error
}

func (s *storeStatsStub) Stats(context.Context) (memory.Stats, error) {
	return s.stats, s.err
}

func TestHealth_Live(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(&storeStatsStub{err: errors.New("down")}, "test-version", discardLogger())

	rec := httptest.NewRecorder()
	h.Live(rec, httptest.NewRequest(http.MethodGet, "/live", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var data map[string]string
	resp := decodeEnvelope(t, rec, &data)
	assert.True(t, resp.Success)
	assert.Equal(t, "ok", data["status"])
}

func TestHealth_Ready(t *testing.T) {
	t.Parallel()

	stats := memory.Stats{Products: 12, Suppliers: 4, Transactions: 17, Alerts: 5, Users: 4, Sessions: 1}
	h := NewHealthHandler(&storeStatsStub{stats: stats}, "test-version", discardLogger())

	rec := httptest.NewRecorder()
	h.Ready(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var data readyResponse
	resp := decodeEnvelope(t, rec, &data)
	assert.True(t, resp.Success)
	assert.Equal(t, "ok", data.Status)
	assert.Equal(t, "test-version", data.Version)
	assert.Equal(t, stats, data.Store)
}

func TestHealth_NotReady(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		stub    *storeStatsStub
		wantErr string
	}{
		{"store error", &storeStatsStub{err: context.DeadlineExceeded}, "Store unavailable"},
		{"empty store", &storeStatsStub{}, "Store not seeded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := NewHealthHandler(tt.stub, "v", discardLogger())
			rec := httptest.NewRecorder()
			h.Ready(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

			assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
			resp := decodeEnvelope(t, rec, nil)
			assert.False(t, resp.Success)
			assert.Equal(t, tt.wantErr, resp.Error)
		})
	}
}
