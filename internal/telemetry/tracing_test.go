// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/blogdeck/blogdeck/internal/config"
)

func TestSetup_Disabled(t *testing.T) {
	shutdown, err := Setup(context.Background(), config.TracingConfig{Enabled: false})
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestNewTracerProvider_Sampling(t *testing.T) {
	tests := []struct {
		name  string
		ratio float64
		spans int
	}{
		{"always", 1.0, 1},
		{"never", 0.0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := tracetest.NewSpanRecorder()
			tp := NewTracerProvider(
				config.TracingConfig{ServiceName: "blogdeck-test", SampleRatio: tt.ratio},
				sdktrace.WithSpanProcessor(recorder),
			)
			defer tp.Shutdown(context.Background())

			_, span := tp.Tracer(InstrumentationName).Start(context.Background(), "op")
			span.End()

			ended := recorder.Ended()
			require.Len(t, ended, tt.spans)
			if tt.spans > 0 {
				assert.Equal(t, "op", ended[0].Name())
				svc, ok := ended[0].Resource().Set().Value("service.name")
				require.True(t, ok)
				assert.Equal(t, "blogdeck-test", svc.AsString())
			}
		})
	}
}
