package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"DEBUG", zerolog.DebugLevel},
		{" warn ", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"off", zerolog.Disabled},
		{"", zerolog.InfoLevel},
		{"nonsense", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestNew_JSONWritesToOutput(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Format = "json"
	cfg.Output = &buf

	logger := New(cfg)
	logger.Info().Str("property", "Theme").Msg("attached")

	out := buf.String()
	assert.Contains(t, out, `"property":"Theme"`)
	assert.Contains(t, out, `"message":"attached"`)
}

func TestNew_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Format = "json"
	cfg.Level = zerolog.WarnLevel
	cfg.Output = &buf

	logger := New(cfg)
	logger.Info().Msg("hidden")

	assert.Empty(t, buf.String())
}

func TestWithComponent_AddsField(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf)
	ctx := WithContext(context.Background(), base)

	ctx = WithComponent(ctx, "store")
	logger := FromContext(ctx)
	require.NotNil(t, logger)
	logger.Info().Msg("hello")

	assert.Contains(t, buf.String(), `"component":"store"`)
}

func TestFromContext_WithoutLoggerIsDisabled(t *testing.T) {
	logger := FromContext(context.Background())

	require.NotNil(t, logger)
	assert.Equal(t, zerolog.Disabled, logger.GetLevel())
}
