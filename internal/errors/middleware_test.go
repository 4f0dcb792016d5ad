package errors

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"growdash/internal/shared/testutil"
)

func TestNewErrorMiddleware(t *testing.T) {
	logger, _ := testutil.NewTestLogger(t)
	errorHandler := NewErrorHandler(logger, false)

	m := NewErrorMiddleware(errorHandler, logger)

	assert.NotNil(t, m)
	assert.Equal(t, errorHandler, m.handler)
	assert.NotNil(t, m.logger)
}

func TestErrorMiddleware_Handler(t *testing.T) {
	tests := []struct {
		name          string
		handler       http.HandlerFunc
		requestPath   string
		wantStatus    int
		wantLogLevel  slog.Level
		shouldRecover bool
	}{
		{
			name: "successful request",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				w.Write([]byte("success"))
			},
			requestPath:  "/api/overview",
			wantStatus:   http.StatusOK,
			wantLogLevel: slog.LevelInfo,
		},
		{
			name: "client error request",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
			},
			requestPath:  "/api/environment",
			wantStatus:   http.StatusBadRequest,
			wantLogLevel: slog.LevelWarn,
		},
		{
			name: "server error request",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			requestPath:  "/api/growth",
			wantStatus:   http.StatusInternalServerError,
			wantLogLevel: slog.LevelError,
		},
		{
			name: "panicking handler",
			handler: func(w http.ResponseWriter, r *http.Request) {
				panic("handler blew up")
			},
			requestPath:   "/api/overview",
			wantStatus:    http.StatusInternalServerError,
			shouldRecover: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, logHandler := testutil.NewTestLogger(t)
			errorHandler := NewErrorHandler(logger, false)
			m := NewErrorMiddleware(errorHandler, logger)

			h := m.Handler(tt.handler)

			w := httptest.NewRecorder()
			r := httptest.NewRequest("GET", tt.requestPath, nil)

			require.NotPanics(t, func() { h.ServeHTTP(w, r) })
			assert.Equal(t, tt.wantStatus, w.Code)

			if tt.shouldRecover {
				assert.True(t, logHandler.ContainsMessage("panic recovered"))
				return
			}

			records := logHandler.GetRecordsByLevel(tt.wantLogLevel)
			var found bool
			for _, rec := range records {
				if strings.Contains(rec.Message, "http request") {
					found = true
					assert.Equal(t, tt.requestPath, rec.Attrs["path"])
					assert.Equal(t, int64(tt.wantStatus), toInt64(rec.Attrs["status"]))
				}
			}
			assert.True(t, found, "expected http request log at level %s", tt.wantLogLevel)
		})
	}
}

func toInt64(v any) int64 {
	switch n := v.(type) {
	case int:
		return int64(n)
	case int64:
		return n
	default:
		return -1
	}
}

func TestRecoveryMiddleware(t *testing.T) {
	logger, _ := testutil.NewTestLogger(t)
	errorHandler := NewErrorHandler(logger, false)

	h := RecoveryMiddleware(errorHandler)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/test", nil)

	require.NotPanics(t, func() { h.ServeHTTP(w, r) })
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestSanitizeRequestBody(t *testing.T) {
	t.Run("redacts sensitive fields", func(t *testing.T) {
		body := `{"password":"hunter2","school":"송도고"}`
		sanitized := sanitizeRequestBody(body)

		assert.Contains(t, sanitized, "[REDACTED]")
		assert.NotContains(t, sanitized, "hunter2")
		assert.Contains(t, sanitized, "송도고")
	})

	t.Run("passes through non-JSON", func(t *testing.T) {
		body := "plain text body"
		assert.Equal(t, body, sanitizeRequestBody(body))
	})
}
