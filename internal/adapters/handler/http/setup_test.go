package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-countdown/internal/adapters/cache"
	adapterHTTP "github.com/comitanigiacomo/kanso-countdown/internal/adapters/handler/http"
	"github.com/comitanigiacomo/kanso-countdown/internal/adapters/repository"
	"github.com/comitanigiacomo/kanso-countdown/internal/core/services"
)

var testNow = time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)

func testClock() time.Time { return testNow }

// setupAPI wires the full router on top of the in-memory store.
func setupAPI(t *testing.T) *gin.Engine {
	t.Helper()
	return adapterHTTP.NewRouter(testDependencies(t))
}

func testDependencies(t *testing.T) adapterHTTP.RouterDependencies {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := repository.NewMemoryStore()
	categoryRepo := repository.NewInMemoryCategoryRepository(store)
	countdownRepo := repository.NewInMemoryCountdownRepository(store)
	habitRepo := repository.NewInMemoryHabitRepository(store)
	logRepo := repository.NewInMemoryHabitLogRepository(store)
	statsCache := cache.NopStatsCache{}

	return adapterHTTP.RouterDependencies{
		CategoryHandler:  adapterHTTP.NewCategoryHandler(services.NewCategoryService(categoryRepo)),
		CountdownHandler: adapterHTTP.NewCountdownHandler(services.NewCountdownService(countdownRepo).WithClock(testClock)),
		HabitHandler:     adapterHTTP.NewHabitHandler(services.NewHabitService(habitRepo, statsCache)),
		HabitLogHandler: adapterHTTP.NewHabitLogHandler(
			services.NewHabitLogService(logRepo, habitRepo, statsCache, nil).WithClock(testClock),
		),
		StatsHandler: adapterHTTP.NewStatsHandler(
			services.NewStatsService(habitRepo, logRepo, statsCache).WithClock(testClock),
		),
		StartTime: time.Now(),
	}
}

func doRequest(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}

	req, _ := http.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body: %s", w.Body.String())
	return out
}

// createHabit posts a habit and returns its id.
func createHabit(t *testing.T, router http.Handler, body string) string {
	t.Helper()
	w := doRequest(router, http.MethodPost, "/api/habits", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[map[string]any](t, w)["id"].(string)
}

func doRecorder(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
