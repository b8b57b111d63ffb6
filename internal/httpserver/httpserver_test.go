package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"review-task-board/internal/middleware"
	"review-task-board/pkg/log"
)

func newTestServer(t *testing.T, mw middleware.Config) *HTTPServer {
	t.Helper()
	srv, err := New(log.NewNop(), Config{
		Port:        8080,
		Mode:        gin.TestMode,
		Environment: "test",
		Middleware:  mw,
	})
	require.NoError(t, err)
	return srv
}

func serve(srv *HTTPServer, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()
	srv.gin.ServeHTTP(w, req)
	return w
}

func TestNew(t *testing.T) {
	_, err := New(nil, Config{Port: 8080, Mode: gin.TestMode})
	assert.Error(t, err)

	_, err = New(log.NewNop(), Config{Mode: gin.TestMode})
	assert.Error(t, err)

	_, err = New(log.NewNop(), Config{Port: 8080})
	assert.Error(t, err)
}

func TestProbes(t *testing.T) {
	srv := newTestServer(t, middleware.Config{})

	for _, path := range []string{"/health", "/ready", "/live"} {
		w := serve(srv, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Body.String(), ServiceName)
		assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
	}
}

func TestUnknownRoute(t *testing.T) {
	srv := newTestServer(t, middleware.Config{})

	w := serve(srv, http.MethodGet, "/api/v1/nothing-here", "")
	require.Equal(t, http.StatusNotFound, w.Code)

	var resp struct {
		ErrorCode int    `json:"error_code"`
		Message   string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusNotFound, resp.ErrorCode)
	assert.Equal(t, "not found", resp.Message)
}

func TestBoardFlow(t *testing.T) {
	srv := newTestServer(t, middleware.Config{})

	w := serve(srv, http.MethodPost, "/api/v1/boards", "")
	require.Equal(t, http.StatusOK, w.Code)

	var created struct {
		Data struct {
			Board struct {
				ID string `json:"id"`
			} `json:"board"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	base := "/api/v1/boards/" + created.Data.Board.ID

	w = serve(srv, http.MethodPost, base+"/selection/toggle", `{"tag":"urgent"}`)
	require.Equal(t, http.StatusOK, w.Code)

	// a tag added through the task API becomes visible to the board
	w = serve(srv, http.MethodPost, "/api/v1/tasks/2/tags", `{"tag":"urgent"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = serve(srv, http.MethodGet, base, "")
	require.Equal(t, http.StatusOK, w.Code)

	var detail struct {
		Data struct {
			Tasks []struct {
				ID int `json:"id"`
			} `json:"tasks"`
			Board struct {
				Query string `json:"query"`
			} `json:"board"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
	require.Len(t, detail.Data.Tasks, 2)
	assert.Equal(t, 1, detail.Data.Tasks[0].ID)
	assert.Equal(t, 2, detail.Data.Tasks[1].ID)
	assert.Equal(t, "tags=urgent", detail.Data.Board.Query)
}

func TestRateLimit(t *testing.T) {
	srv := newTestServer(t, middleware.Config{RateLimitEnabled: true, RequestsPerMin: 1})

	w := serve(srv, http.MethodGet, "/api/v1/tasks", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(srv, http.MethodGet, "/api/v1/tasks", "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	// probes are not limited
	w = serve(srv, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRun(t *testing.T) {
	srv, err := New(log.NewNop(), Config{Port: 18089, Mode: gin.TestMode})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
