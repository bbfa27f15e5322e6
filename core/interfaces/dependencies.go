// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Defines the contract for dependencies required by the core business logic

package interfaces

// Dependencies holds all external dependencies required by the core business logic
type Dependencies struct {
	// HTTPClient provides HTTP request functionality
	HTTPClient HTTPClient

	// Logger provides structured logging
	Logger Logger
}

// NopLogger discards everything. Services fall back to it when no logger is injected.
type NopLogger struct{}

// Debug implements Logger
func (NopLogger) Debug(string, map[string]interface{}) {}

// Info implements Logger
func (NopLogger) Info(string, map[string]interface{}) {}

// Warn implements Logger
func (NopLogger) Warn(string, map[string]interface{}) {}

// Error implements Logger
func (NopLogger) Error(string, map[string]interface{}) {}
