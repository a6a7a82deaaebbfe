package obs

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLogger(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		expected zerolog.Level
	}{
		{"info level", "info", zerolog.InfoLevel},
		{"debug level", "debug", zerolog.DebugLevel},
		{"warn level", "warn", zerolog.WarnLevel},
		{"error level", "error", zerolog.ErrorLevel},
		{"empty defaults to info", "", zerolog.InfoLevel},
		{"invalid level defaults to info", "invalid", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			initLogger(tt.level, &bytes.Buffer{}, false)
			assert.Equal(t, tt.expected, zerolog.GlobalLevel())
		})
	}
}

func TestLogger_ComponentField(t *testing.T) {
	var buf bytes.Buffer
	initLogger("debug", &buf, false)
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	logger := Logger("harness")
	logger.Debug().Str("algorithm", "KMP").Msg("engine run")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "harness", entry["component"])
	assert.Equal(t, "KMP", entry["algorithm"])
	assert.Equal(t, "engine run", entry["message"])
	assert.Equal(t, "debug", entry["level"])
}

func TestLogger_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	initLogger("error", &buf, false)
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	logger := Logger("serve")
	logger.Info().Msg("hidden")
	assert.Empty(t, buf.String())
}
