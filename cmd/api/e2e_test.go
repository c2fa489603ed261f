package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-countdown/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Service: config.ServiceConfig{Name: "kanso-countdown-test", Environment: "test"},
		HTTP:    config.HTTPConfig{Port: 8080, AllowedOrigins: "*"},
		Database: config.DatabaseConfig{
			Driver:     "sqlite",
			SQLitePath: ":memory:",
		},
		Workers: config.WorkersConfig{StatsQueueSize: 10, CountdownSweepInterval: 3600},
	}
}

func setupApp(t *testing.T) *application {
	t.Helper()
	gin.SetMode(gin.TestMode)

	app, err := newApplication(context.Background(), testConfig(), time.Now())
	require.NoError(t, err, "Failed to build application")
	t.Cleanup(app.Close)
	return app
}

func call(t *testing.T, app *application, method, path, body string) (int, []byte) {
	t.Helper()

	var buf *bytes.Buffer
	if body != "" {
		buf = bytes.NewBufferString(body)
	} else {
		buf = &bytes.Buffer{}
	}

	req, err := http.NewRequest(method, path, buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, req)
	return w.Code, w.Body.Bytes()
}

func TestEndToEnd_HabitLifecycle(t *testing.T) {
	app := setupApp(t)

	var categoryID, habitID string
	yesterday := time.Now().UTC().AddDate(0, 0, -1).Format("2006-01-02")

	t.Run("1. Create Category", func(t *testing.T) {
		code, body := call(t, app, http.MethodPost, "/api/categories", `{"name": "Health", "color": "#22AA44"}`)
		require.Equal(t, http.StatusCreated, code, string(body))

		var resp map[string]any
		require.NoError(t, json.Unmarshal(body, &resp))
		categoryID = resp["id"].(string)
	})

	t.Run("2. Create Habit", func(t *testing.T) {
		code, body := call(t, app, http.MethodPost, "/api/habits",
			`{"title": "Morning Run", "frequency": "daily", "category_id": "`+categoryID+`"}`)
		require.Equal(t, http.StatusCreated, code, string(body))

		var resp map[string]any
		require.NoError(t, json.Unmarshal(body, &resp))
		habitID = resp["id"].(string)
		assert.Equal(t, categoryID, resp["category_id"])
	})

	t.Run("3. Log Yesterday And Today", func(t *testing.T) {
		code, body := call(t, app, http.MethodPost, "/api/habits/"+habitID+"/log?date="+yesterday, "")
		require.Equal(t, http.StatusCreated, code, string(body))

		code, body = call(t, app, http.MethodPost, "/api/habits/"+habitID+"/log", "")
		require.Equal(t, http.StatusCreated, code, string(body))
	})

	t.Run("4. Reject Duplicate Day", func(t *testing.T) {
		code, _ := call(t, app, http.MethodPost, "/api/habits/"+habitID+"/log?date="+yesterday+"T23:59:00Z", "")
		assert.Equal(t, http.StatusBadRequest, code)
	})

	t.Run("5. Read Stats", func(t *testing.T) {
		code, body := call(t, app, http.MethodGet, "/api/habits/"+habitID+"/stats", "")
		require.Equal(t, http.StatusOK, code, string(body))

		var stats map[string]any
		require.NoError(t, json.Unmarshal(body, &stats))
		assert.Equal(t, float64(2), stats["total_completions"])
		assert.Equal(t, float64(2), stats["current_streak"])
		assert.Equal(t, float64(2), stats["longest_streak"])
		assert.Equal(t, float64(100), stats["completion_rate"])
	})

	t.Run("6. Filter Stats By Category", func(t *testing.T) {
		code, body := call(t, app, http.MethodGet, "/api/stats?category_id="+categoryID, "")
		require.Equal(t, http.StatusOK, code)

		var list []map[string]any
		require.NoError(t, json.Unmarshal(body, &list))
		require.Len(t, list, 1)
		assert.Equal(t, habitID, list[0]["habit_id"])
	})

	t.Run("7. Delete Habit Removes Logs", func(t *testing.T) {
		code, _ := call(t, app, http.MethodDelete, "/api/habits/"+habitID, "")
		require.Equal(t, http.StatusOK, code)

		var n int
		require.NoError(t, app.db.Get(&n, "SELECT COUNT(*) FROM habit_logs WHERE habit_id = ?", habitID))
		assert.Zero(t, n)

		code, _ = call(t, app, http.MethodGet, "/api/habits/"+habitID+"/logs", "")
		assert.Equal(t, http.StatusNotFound, code)
	})
}

func TestEndToEnd_CountdownSweep(t *testing.T) {
	app := setupApp(t)

	code, body := call(t, app, http.MethodPost, "/api/countdowns", `{"title": "Deadline", "target_date": "2020-01-01T00:00:00Z"}`)
	require.Equal(t, http.StatusCreated, code, string(body))
	var past map[string]any
	require.NoError(t, json.Unmarshal(body, &past))
	assert.Equal(t, false, past["is_completed"])

	code, body = call(t, app, http.MethodPost, "/api/countdowns", `{"title": "Holiday", "target_date": "2999-01-01"}`)
	require.Equal(t, http.StatusCreated, code, string(body))
	var future map[string]any
	require.NoError(t, json.Unmarshal(body, &future))

	// Starting the workers runs one sweep right away.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, app.startWorkers(ctx))

	code, body = call(t, app, http.MethodGet, "/api/countdowns/"+past["id"].(string), "")
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(body, &past))
	assert.Equal(t, true, past["is_completed"])

	code, body = call(t, app, http.MethodGet, "/api/countdowns/"+future["id"].(string), "")
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(body, &future))
	assert.Equal(t, false, future["is_completed"])
}

func TestEndToEnd_Health(t *testing.T) {
	app := setupApp(t)

	code, body := call(t, app, http.MethodGet, "/health", "")

	require.Equal(t, http.StatusOK, code)
	var health map[string]any
	require.NoError(t, json.Unmarshal(body, &health))
	assert.Equal(t, "connected", health["database"])
	assert.Equal(t, "disabled", health["redis"])
}

func TestEndToEnd_HealthWithUnreachableRedis(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := testConfig()
	cfg.Redis = config.RedisConfig{Enabled: true, Host: "127.0.0.1", Port: 1}

	app, err := newApplication(context.Background(), cfg, time.Now())
	require.NoError(t, err, "Redis outage must not prevent start-up")
	t.Cleanup(app.Close)

	code, body := call(t, app, http.MethodGet, "/health", "")

	require.Equal(t, http.StatusServiceUnavailable, code)
	var health map[string]any
	require.NoError(t, json.Unmarshal(body, &health))
	assert.Equal(t, "connected", health["database"])
	assert.Equal(t, "unreachable", health["redis"])
}
