package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShouwangH/garage-demo/internal/storage"
)

// failingStore is a Store whose backend is unreachable.
type failingStore struct {
	pingErr error
}

func (f *failingStore) Get(_ context.Context, _ string, _ interface{}) (bool, error) {
	return false, f.pingErr
}

func (f *failingStore) Set(_ context.Context, _ string, _ interface{}) error {
	return f.pingErr
}

func (f *failingStore) Remove(_ context.Context, _ string) error {
	return f.pingErr
}

func (f *failingStore) Ping(_ context.Context) error {
	return f.pingErr
}

func setupHealthRouter(handler *HealthHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/health", handler.Health)
	router.GET("/health/ready", handler.Ready)
	router.GET("/api/v1/info", handler.Info)
	return router
}

func TestHealthHandler_Health(t *testing.T) {
	handler := NewHealthHandler(storage.NewMemory(), "test", "memory")
	router := setupHealthRouter(handler)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response HealthResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, HealthResponse{Status: "healthy"}, response)
}

func TestHealthHandler_Ready(t *testing.T) {
	tests := []struct {
		name           string
		store          storage.Store
		driver         string
		expectedStatus int
		expectedBody   ReadyResponse
	}{
		{
			name:           "reachable store reports ready",
			store:          storage.NewMemory(),
			driver:         "memory",
			expectedStatus: http.StatusOK,
			expectedBody:   ReadyResponse{Status: "ready", Storage: "connected", Driver: "memory"},
		},
		{
			name:           "unreachable store reports not ready",
			store:          &failingStore{pingErr: errors.New("connection refused")},
			driver:         "postgres",
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   ReadyResponse{Status: "not_ready", Storage: "disconnected", Driver: "postgres"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHealthHandler(tt.store, "test", tt.driver)
			router := setupHealthRouter(handler)

			req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response ReadyResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
			assert.Equal(t, tt.expectedBody, response)
		})
	}
}

func TestHealthHandler_Info(t *testing.T) {
	handler := NewHealthHandler(storage.NewMemory(), "development", "memory")
	handler.startTime = time.Now().Add(-90 * time.Minute)
	router := setupHealthRouter(handler)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/info", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response InfoResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, "garage-api", response.Name)
	assert.Equal(t, APIVersion, response.Version)
	assert.Equal(t, "development", response.Environment)
	assert.Equal(t, "1h 30m 0s", response.Uptime)
}

func TestFormatUptime(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{"seconds only", 42 * time.Second, "0h 0m 42s"},
		{"hours and minutes", 3*time.Hour + 25*time.Minute, "3h 25m 0s"},
		{"multiple days", 49*time.Hour + 10*time.Minute + 5*time.Second, "2d 1h 10m 5s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatUptime(tt.duration))
		})
	}
}
