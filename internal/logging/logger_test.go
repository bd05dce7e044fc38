package logging

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	log := NewLogger(Config{Level: "debug", NoColor: true})
	require.NotNil(t, log)
	assert.Equal(t, zerolog.DebugLevel, log.GetLevel())
}

func TestNewLogger_WithFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "logs", "qiwurun.log")
	log := NewLogger(Config{Level: "info", LogFile: logFile, NoColor: true})
	require.NotNil(t, log)

	log.Info().Msg("hello")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"fatal", zerolog.FatalLevel},
		{"panic", zerolog.PanicLevel},
		{"bogus", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLevel(tt.input), "level %q", tt.input)
	}
}

func TestNewTestLogger(t *testing.T) {
	var buf bytes.Buffer
	log := NewTestLogger(&buf)

	log.Info().Str("key", "value").Msg("test message")

	assert.Contains(t, buf.String(), "test message")
	assert.Contains(t, buf.String(), `"key":"value"`)
}
