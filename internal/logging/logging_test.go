package logging_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/plus3/depthprobe/internal/logging"
)

func TestNewWriterLevels(t *testing.T) {
	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"bogus", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			log := logging.NewWriter(&bytes.Buffer{}, tt.level)
			assert.Equal(t, tt.want, log.GetLevel())
		})
	}
}

func TestLoggerWrites(t *testing.T) {
	var buf bytes.Buffer
	log := logging.NewWriter(&buf, "info")

	log.Info().Int("count", 3).Msg("spawned markers")
	assert.True(t, strings.Contains(buf.String(), "spawned markers"))

	buf.Reset()
	log.Debug().Msg("suppressed")
	assert.Empty(t, buf.String())
}
