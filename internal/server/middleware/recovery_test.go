package middleware

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecoveryMiddleware(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		value any
		name  string
	}{
		{name: "string", value: "something went wrong"},
		{name: "error", value: errors.New("nil map write")},
		{name: "custom type", value: struct{ msg string }{"critical error"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := RecoveryMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				panic(tt.value)
			}))

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/dir", nil))

			assert.Equal(t, http.StatusInternalServerError, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, `{"error":"Internal Server Error","message":"internal server error"}`, w.Body.String())
		})
	}

	t.Run("no panic", func(t *testing.T) {
		handler := RecoveryMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("success"))
		}))
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/dir", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "success", w.Body.String())
	})
}

func TestRecoveryMiddleware_RepanicsAbortHandler(t *testing.T) {
	var logBuf strings.Builder
	logger := slog.New(slog.NewTextHandler(&logBuf, nil))

	handler := RecoveryMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPartialContent)
		panic(http.ErrAbortHandler)
	}))

	// net/http сам обрывает соединение, 500 поверх 206 писать нельзя
	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/file/a.mp4", nil))
	})
	assert.NotContains(t, logBuf.String(), "Panic recovered")
}

// TestRecoveryMiddleware_InsideLogging повторяет порядок middleware сервера
func TestRecoveryMiddleware_InsideLogging(t *testing.T) {
	var logBuf strings.Builder
	logger := slog.New(slog.NewTextHandler(&logBuf, nil))

	handler := LoggingMiddleware(logger)(RecoveryMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("test panic for logging")
	})))

	req := httptest.NewRequest(http.MethodPost, "/api/setup", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "req-42", w.Header().Get(RequestIDHeader))

	logOutput := logBuf.String()
	assert.Contains(t, logOutput, "Panic recovered")
	assert.Contains(t, logOutput, "test panic for logging")
	assert.Contains(t, logOutput, "goroutine", "log should contain stack trace")
	assert.Equal(t, 2, strings.Count(logOutput, "request_id=req-42"))
	assert.Contains(t, logOutput, "status=500")
}
