package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnabled(t *testing.T) {
	assert.False(t, Enabled(""))
	assert.False(t, Enabled("   "))
	assert.True(t, Enabled("otel-collector:4318"))
}

func TestInitDisabled(t *testing.T) {
	shutdown, err := Init(context.Background(), "", "calisml", "dev", "testing")
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))
}

func TestInitEnabled(t *testing.T) {
	// the exporter connects lazily, so no collector is needed here
	shutdown, err := Init(context.Background(), "localhost:4318", "calisml", "dev", "testing")
	require.NoError(t, err)
	require.NotNil(t, shutdown)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_ = shutdown(ctx)
}

func TestExporterOptions(t *testing.T) {
	tests := []struct {
		endpoint string
		want     int
	}{
		{"otel-collector:4318", 2},
		{"http://otel-collector:4318", 2},
		{"https://collector.example.com", 1},
	}
	for _, tt := range tests {
		t.Run(tt.endpoint, func(t *testing.T) {
			assert.Len(t, exporterOptions(tt.endpoint), tt.want)
		})
	}
}
