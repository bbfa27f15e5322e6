package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler_Ping(t *testing.T) {
	_, api := humatest.New(t)
	handler := NewHealthHandler()
	handler.now = func() time.Time {
		return time.Date(2026, 3, 4, 5, 6, 7, 891_000_000, time.FixedZone("CET", 3600))
	}
	handler.RegisterRoutes(api)

	resp := api.Get("/api/ping")

	require.Equal(t, http.StatusOK, resp.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "2026-03-04T04:06:07.891Z", body["now"])
}

func TestHealthHandler_UsesWallClock(t *testing.T) {
	_, api := humatest.New(t)
	NewHealthHandler().RegisterRoutes(api)

	resp := api.Get("/api/ping")

	var body struct {
		Now string `json:"now"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	parsed, err := time.Parse(time.RFC3339Nano, body.Now)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), parsed, time.Minute)
}
