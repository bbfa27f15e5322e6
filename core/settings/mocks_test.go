package settings

import (
	"context"

	"github.com/stretchr/testify/mock"

	"newsfeed-api/core/interfaces"
)

// mockStore is a map-backed KeyValueStore with injectable failures
type mockStore struct {
	values  map[string]string
	getErr  error
	setErr  error
	setKeys []string
}

func newMockStore() *mockStore {
	return &mockStore{values: make(map[string]string)}
}

func (m *mockStore) Get(ctx context.Context, key string) (string, error) {
	if m.getErr != nil {
		return "", m.getErr
	}
	v, ok := m.values[key]
	if !ok {
		return "", interfaces.ErrKeyNotFound
	}
	return v, nil
}

func (m *mockStore) Set(ctx context.Context, key string, value string) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.setKeys = append(m.setKeys, key)
	m.values[key] = value
	return nil
}

func (m *mockStore) Delete(ctx context.Context, key string) error {
	delete(m.values, key)
	return nil
}

func (m *mockStore) Close() error {
	return nil
}

// mockLogger records log calls through testify's mock
type mockLogger struct {
	mock.Mock
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {
	m.Called(msg, fields)
}

func (m *mockLogger) Info(msg string, fields map[string]interface{}) {
	m.Called(msg, fields)
}

func (m *mockLogger) Warn(msg string, fields map[string]interface{}) {
	m.Called(msg, fields)
}

func (m *mockLogger) Error(msg string, fields map[string]interface{}) {
	m.Called(msg, fields)
}
