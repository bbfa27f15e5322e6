// ABOUTME: Liveness handler for the Huma API
// ABOUTME: Reports that the proxy is up along with the server clock

package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
)

// pingTimeFormat is ISO-8601 in UTC with millisecond precision
const pingTimeFormat = "2006-01-02T15:04:05.000Z07:00"

// HealthHandler serves GET /api/ping
type HealthHandler struct {
	now func() time.Time
}

// NewHealthHandler creates a health handler using the wall clock
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{now: time.Now}
}

// RegisterRoutes registers the ping route
func (h *HealthHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "ping",
		Method:      http.MethodGet,
		Path:        "/api/ping",
		Summary:     "Liveness check",
		Tags:        []string{"Health"},
	}, h.Ping)
}

// PingOutput defines the ping response
type PingOutput struct {
	Body struct {
		OK  bool   `json:"ok"`
		Now string `json:"now" doc:"Server time, ISO-8601 UTC"`
	}
}

// Ping handles the GET /api/ping endpoint
func (h *HealthHandler) Ping(ctx context.Context, input *struct{}) (*PingOutput, error) {
	out := &PingOutput{}
	out.Body.OK = true
	out.Body.Now = h.now().UTC().Format(pingTimeFormat)
	return out, nil
}
