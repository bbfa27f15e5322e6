package handlers

import (
	"context"
	"sync"

	"newsfeed-api/core/domain"
	"newsfeed-api/core/news"
)

type forwardCall struct {
	provider domain.ProviderName
	intent   domain.SearchIntent
	page     int
}

// mockRelay is a mock implementation of the Relay interface
type mockRelay struct {
	forwardFunc func(ctx context.Context, provider domain.ProviderName, intent domain.SearchIntent, page int) (*news.RelayResponse, error)
	calls       []forwardCall
}

func (m *mockRelay) Forward(ctx context.Context, provider domain.ProviderName, intent domain.SearchIntent, page int) (*news.RelayResponse, error) {
	m.calls = append(m.calls, forwardCall{provider: provider, intent: intent, page: page})
	if m.forwardFunc != nil {
		return m.forwardFunc(ctx, provider, intent, page)
	}
	return &news.RelayResponse{StatusCode: 200, ContentType: "application/json", Body: []byte(`{"articles":[]}`)}, nil
}

type logEntry struct {
	level  string
	msg    string
	fields map[string]interface{}
}

// recordingLogger keeps every entry for later inspection
type recordingLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (l *recordingLogger) record(level, msg string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, logEntry{level: level, msg: msg, fields: fields})
}

func (l *recordingLogger) Debug(msg string, fields map[string]interface{}) { l.record("debug", msg, fields) }
func (l *recordingLogger) Info(msg string, fields map[string]interface{})  { l.record("info", msg, fields) }
func (l *recordingLogger) Warn(msg string, fields map[string]interface{})  { l.record("warn", msg, fields) }
func (l *recordingLogger) Error(msg string, fields map[string]interface{}) { l.record("error", msg, fields) }

func (l *recordingLogger) find(msg string) (logEntry, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, e := range l.entries {
		if e.msg == msg {
			return e, true
		}
	}
	return logEntry{}, false
}
