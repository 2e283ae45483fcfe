package otel

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"transaction-api/internal/infrastructure/config"
)

func TestInitMeter_Disabled(t *testing.T) {
	cfg := &config.OpenTelemetryConfig{
		Enabled: false,
	}

	shutdown, err := InitMeter(cfg)
	assert.NoError(t, err)
	assert.NotNil(t, shutdown)

	// シャットダウン関数がエラーを返さないことを確認
	err = shutdown(context.Background())
	assert.NoError(t, err)
}

func TestInitMeter_OTLP(t *testing.T) {
	cfg := &config.OpenTelemetryConfig{
		Enabled:         true,
		MetricsExporter: "otlp",
		OTLPEndpoint:    "localhost:4318",
		OTLPInsecure:    true,
		ServiceName:     "test-service",
		ServiceVersion:  "1.0.0",
		MetricsInterval: 10 * time.Second,
	}

	shutdown, err := InitMeter(cfg)
	require.NoError(t, err)
	require.NotNil(t, shutdown)

	// エンドポイントが存在しないため、最終エクスポートは待たずに打ち切る
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_ = shutdown(ctx)
}

func TestInitMeter_None(t *testing.T) {
	cfg := &config.OpenTelemetryConfig{
		Enabled:         true,
		MetricsExporter: "none",
		ServiceName:     "test-service",
		ServiceVersion:  "1.0.0",
	}

	shutdown, err := InitMeter(cfg)
	assert.NoError(t, err)
	assert.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))
}

func TestInitMeter_UnsupportedExporter(t *testing.T) {
	cfg := &config.OpenTelemetryConfig{
		Enabled:         true,
		MetricsExporter: "unsupported",
		ServiceName:     "test-service",
		ServiceVersion:  "1.0.0",
	}

	shutdown, err := InitMeter(cfg)
	assert.Error(t, err)
	assert.Nil(t, shutdown)
	assert.Contains(t, err.Error(), "unsupported metrics exporter")
}

func TestMeter(t *testing.T) {
	meter := Meter("test-meter")
	assert.NotNil(t, meter)

	counter, err := meter.Int64Counter("test_counter")
	require.NoError(t, err)
	counter.Add(context.Background(), 1)
}
