package server

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/funnel/internal/config"
)

func TestHTTPErrorHandler_WithStackTrace(t *testing.T) {
	e := echo.New()

	var logBuffer bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logBuffer, &slog.HandlerOptions{AddSource: true}))
	originalLogger := slog.Default()
	slog.SetDefault(logger)
	defer slog.SetDefault(originalLogger)

	setupErrorHandling(e)

	e.GET("/test-unhandled-error", func(c echo.Context) error {
		return errors.New("a deliberate unhandled error occurred")
	})

	req := httptest.NewRequest(http.MethodGet, "/test-unhandled-error", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal Server Error", rec.Body.String())

	logOutput := logBuffer.String()
	assert.Contains(t, logOutput, "Internal Server Error (Unhandled)")
	assert.Contains(t, logOutput, "error=\"a deliberate unhandled error occurred\"")
	assert.Contains(t, logOutput, "stack_trace=")

	// A real stack trace reaches back into this test.
	assert.Contains(t, logOutput, "runtime/debug/stack.go")
	assert.Contains(t, logOutput, "internal/server/server_test.go")
}

func TestHTTPErrorHandler_HTTPError(t *testing.T) {
	e := echo.New()
	setupErrorHandling(e)
	e.GET("/missing", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "FAQ entry not found")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "FAQ entry not found", rec.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	req.Header.Set(echo.HeaderAccept, echo.MIMEApplicationJSON)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"code":"Not Found","message":"FAQ entry not found"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodHead, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	t.Setenv("CHECKOUT_URL", "https://pay.example.com/offer")
	cfg, err := config.Parse()
	require.NoError(t, err)
	cfg.Addr = "127.0.0.1:0"
	cfg.ShutdownTimeout = 2 * time.Second
	return cfg
}

func newTestServer(t *testing.T, cfg *config.Config) *Server {
	t.Helper()
	s, err := New(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { s.Shutdown(context.Background()) })
	return s
}

func serve(s *Server, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.E.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestServerRoutes(t *testing.T) {
	s := newTestServer(t, testConfig(t))

	t.Run("landing page", func(t *testing.T) {
		rec := serve(s, http.MethodGet, "/")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
		assert.Contains(t, rec.Body.String(), `id="checkout"`)
	})

	t.Run("faq fragment", func(t *testing.T) {
		rec := serve(s, http.MethodGet, "/faq/0?open=true")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `id="faq-0"`)

		assert.Equal(t, http.StatusNotFound, serve(s, http.MethodGet, "/faq/99").Code)
	})

	t.Run("checkout redirect", func(t *testing.T) {
		rec := serve(s, http.MethodGet, "/go/checkout?from=hero")
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "https://pay.example.com/offer", rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("static assets", func(t *testing.T) {
		rec := serve(s, http.MethodGet, "/static/js/motion.js")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "motion-config")

		assert.Equal(t, http.StatusOK, serve(s, http.MethodGet, "/static/css/funnel.css").Code)
	})

	t.Run("health", func(t *testing.T) {
		rec := serve(s, http.MethodGet, "/health")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"ok"`)
	})

	t.Run("metrics", func(t *testing.T) {
		rec := serve(s, http.MethodGet, "/metrics")
		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "funnel_http_requests_total")
		assert.Contains(t, body, "go_goroutines")
	})
}

func TestServerRateLimitsFragments(t *testing.T) {
	cfg := testConfig(t)
	cfg.RateLimit = 2
	s := newTestServer(t, cfg)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/faq/1?open=true", nil)
		req.RemoteAddr = "192.0.2.10:1234"
		rec := httptest.NewRecorder()
		s.E.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	// A forged X-Forwarded-For does not buy a fresh bucket.
	for _, forged := range []string{"203.0.113.1", "203.0.113.2"} {
		req := httptest.NewRequest(http.MethodGet, "/faq/1?open=true", nil)
		req.RemoteAddr = "192.0.2.10:1234"
		req.Header.Set(echo.HeaderXForwardedFor, forged)
		rec := httptest.NewRecorder()
		s.E.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusTooManyRequests, rec.Code, "forwarded for %s", forged)
	}

	// The page itself is not limited.
	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, serve(s, http.MethodGet, "/").Code)
	}
}

func TestServerTrustedProxy(t *testing.T) {
	cfg := testConfig(t)
	cfg.RateLimit = 1
	cfg.TrustProxy = true
	s := newTestServer(t, cfg)

	faq := func(forwarded string) int {
		req := httptest.NewRequest(http.MethodGet, "/faq/1?open=true", nil)
		req.RemoteAddr = "127.0.0.1:4321"
		req.Header.Set(echo.HeaderXForwardedFor, forwarded)
		rec := httptest.NewRecorder()
		s.E.ServeHTTP(rec, req)
		return rec.Code
	}

	// Behind a local proxy each forwarded client has its own bucket.
	assert.Equal(t, http.StatusOK, faq("203.0.113.1"))
	assert.Equal(t, http.StatusTooManyRequests, faq("203.0.113.1"))
	assert.Equal(t, http.StatusOK, faq("203.0.113.2"))
}

func TestServerContentOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "content.yaml")
	require.NoError(t, os.WriteFile(path, []byte("title: Turma de Outubro\n"), 0o644))

	cfg := testConfig(t)
	cfg.ContentFile = path
	s := newTestServer(t, cfg)

	rec := serve(s, http.MethodGet, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<title>Turma de Outubro</title>")
}

func TestServerRejectsInvalidContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "content.yaml")
	require.NoError(t, os.WriteFile(path, []byte("unknown_section: true\n"), 0o644))

	cfg := testConfig(t)
	cfg.ContentFile = path
	_, err := New(context.Background(), cfg)
	assert.Error(t, err)
}

func TestServerStartAndShutdown(t *testing.T) {
	s, err := New(context.Background(), testConfig(t))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Start(ctx) }()

	require.Eventually(t, func() bool {
		addr := s.E.ListenerAddr()
		if addr == nil {
			return false
		}
		resp, err := http.Get("http://" + addr.String() + "/health")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
