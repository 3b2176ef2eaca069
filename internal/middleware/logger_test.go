package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/simp-lee/logger"
)

func setupLoggerRouter(log *slog.Logger, requestID gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(requestID)
	r.Use(Logger(log))

	r.GET("/collections/:collection", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	r.GET("/missing", func(c *gin.Context) {
		c.String(http.StatusNotFound, "not found")
	})
	r.GET("/broken", func(c *gin.Context) {
		c.String(http.StatusInternalServerError, "error")
	})
	return r
}

func TestLogger_LevelPerStatus(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		wantLevel string
	}{
		{"2xx logs info", "/collections/coupon", "level=INFO"},
		{"4xx logs warn", "/missing", "level=WARN"},
		{"5xx logs error", "/broken", "level=ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logBuf bytes.Buffer
			r := setupLoggerRouter(newTestLogger(&logBuf), RequestID())

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			logOutput := logBuf.String()
			if !strings.Contains(logOutput, tt.wantLevel) {
				t.Errorf("expected %s log, got:\n%s", tt.wantLevel, logOutput)
			}
			if !strings.Contains(logOutput, "request") {
				t.Errorf("expected log message 'request', got:\n%s", logOutput)
			}
		})
	}
}

func TestLogger_ContainsExpectedFields(t *testing.T) {
	var logBuf bytes.Buffer
	r := setupLoggerRouter(newTestLogger(&logBuf), RequestID())

	req := httptest.NewRequest(http.MethodGet, "/collections/coupon", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	logOutput := logBuf.String()
	fields := []string{
		"method=GET",
		"path=/collections/coupon",
		"route=/collections/:collection",
		"status=200",
		"latency=",
		"bytes=2",
		"client_ip=",
	}
	for _, field := range fields {
		if !strings.Contains(logOutput, field) {
			t.Errorf("expected log to contain %q, got:\n%s", field, logOutput)
		}
	}
}

func TestLogger_IncludesRequestIDFromContext(t *testing.T) {
	var logBuf bytes.Buffer
	log, err := logger.New(
		logger.WithConsoleWriter(&logBuf),
		logger.WithConsoleFormat(logger.FormatText),
		logger.WithConsoleColor(false),
		logger.WithLevel(slog.LevelDebug),
		logger.WithMiddleware(logger.ContextMiddleware()),
	)
	if err != nil {
		t.Fatalf("logger.New error: %v", err)
	}
	defer log.Close()

	r := setupLoggerRouter(log.Logger, RequestIDWithConfig(RequestIDConfig{TrustUpstream: true}))

	req := httptest.NewRequest(http.MethodGet, "/collections/coupon", nil)
	req.Header.Set("X-Request-ID", "test-req-id-789")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	logOutput := logBuf.String()
	if !strings.Contains(logOutput, "test-req-id-789") {
		t.Errorf("expected log to contain request_id 'test-req-id-789', got:\n%s", logOutput)
	}
}
