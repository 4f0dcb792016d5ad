package infrastructure

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestOTelInitialization(t *testing.T) {
	providers, err := InitializeOTel(nil, testLogger())
	require.NoError(t, err)
	require.NotNil(t, providers)

	// Metrics are enabled by default
	assert.NotNil(t, providers.MeterProvider)
	assert.NotNil(t, providers.Meter)
	assert.NotNil(t, providers.PrometheusHTTP)

	// Tracing is disabled by default
	assert.Nil(t, providers.TracerProvider)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	assert.NoError(t, providers.Shutdown(ctx))
}

func TestOTelInitializationWithTracing(t *testing.T) {
	cfg := DefaultOTelConfig()
	cfg.EnableTracing = true
	cfg.TraceExporter = "stdout"

	providers, err := InitializeOTel(cfg, testLogger())
	require.NoError(t, err)

	assert.NotNil(t, providers.TracerProvider)
	assert.NotNil(t, providers.Tracer)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	assert.NoError(t, providers.Shutdown(ctx))
}

func TestOTelUnsupportedExporters(t *testing.T) {
	t.Run("unsupported trace exporter", func(t *testing.T) {
		cfg := DefaultOTelConfig()
		cfg.EnableTracing = true
		cfg.TraceExporter = "jaeger"

		_, err := InitializeOTel(cfg, testLogger())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported trace exporter")
	})

	t.Run("unsupported metric exporter", func(t *testing.T) {
		cfg := DefaultOTelConfig()
		cfg.MetricExporter = "statsd"

		_, err := InitializeOTel(cfg, testLogger())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported metric exporter")
	})
}

func TestPrometheusEndpoint(t *testing.T) {
	providers, err := InitializeOTel(nil, testLogger())
	require.NoError(t, err)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = providers.Shutdown(ctx)
	}()

	metrics, err := CreateBusinessMetrics(providers.Meter)
	require.NoError(t, err)

	ctx := context.Background()
	metrics.RecordDatasetLoad(ctx, 120*time.Millisecond, 240, 36, true)
	metrics.RecordCacheHit(ctx)
	metrics.RecordCacheMiss(ctx)
	metrics.RecordExport(ctx, "csv")
	metrics.RecordWebSocketClients(ctx, 1)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	providers.PrometheusHTTP.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "dataset_loads_total")
	assert.Contains(t, body, "dataset_cache_hits_total")
	assert.Contains(t, body, "exports_total")
}

func TestBusinessMetricsNilReceiver(t *testing.T) {
	var metrics *BusinessMetrics

	ctx := context.Background()
	assert.NotPanics(t, func() {
		metrics.RecordDatasetLoad(ctx, time.Second, 0, 0, false)
		metrics.RecordCacheHit(ctx)
		metrics.RecordCacheMiss(ctx)
		metrics.RecordExport(ctx, "xlsx")
		metrics.RecordWebSocketClients(ctx, -1)
	})
}

func TestTraceIDFromContext(t *testing.T) {
	// A context without a span yields an empty trace ID
	assert.Empty(t, TraceIDFromContext(context.Background()))
}
