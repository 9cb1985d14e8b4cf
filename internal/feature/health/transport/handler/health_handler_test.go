package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"auth_backend/internal/feature/health/metrics"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// mockCollector is a mock implementation of the Collector interface.
type mockCollector struct {
	start    time.Time
	snapshot metrics.Snapshot
}

func (m *mockCollector) Snapshot() metrics.Snapshot { return m.snapshot }
func (m *mockCollector) StartTime() time.Time       { return m.start }

type nopLogger struct{}

func (nopLogger) Info(string, map[string]any) {}

func TestHealthHandler_Check(t *testing.T) {
	start := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	collector := &mockCollector{
		start: start,
		snapshot: metrics.Snapshot{
			Process: metrics.ProcessMetrics{UptimeSeconds: 42.5, Goroutines: 7},
			System:  metrics.SystemMetrics{CPUs: 4, OS: "linux", Arch: "amd64", GoVersion: "go1.25"},
		},
	}

	r := gin.New()
	r.GET("/health", NewHealthHandler(collector, nopLogger{}).Check)

	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))

	var body map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "service is running normally", body["message"])

	data := body["data"].(map[string]any)
	assert.Equal(t, "OK", data["status"])
	assert.NotEmpty(t, data["timestamp"])

	reportedStart, err := time.Parse(time.RFC3339, data["serverStartTime"].(string))
	assert.NoError(t, err)
	assert.True(t, reportedStart.Equal(start))

	m := data["metrics"].(map[string]any)
	process := m["process"].(map[string]any)
	assert.Equal(t, 42.5, process["uptimeSeconds"])
	system := m["system"].(map[string]any)
	assert.Equal(t, "linux", system["os"])
}

func TestRuntimeCollector(t *testing.T) {
	c := metrics.NewRuntimeCollector()
	snap := c.Snapshot()

	assert.False(t, c.StartTime().IsZero())
	assert.Greater(t, snap.Process.Goroutines, 0)
	assert.Greater(t, snap.System.CPUs, 0)
	assert.NotEmpty(t, snap.System.GoVersion)
}
