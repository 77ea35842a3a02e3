package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	t.Run("should parse the level", func(t *testing.T) {
		tests := []struct {
			level    string
			expected zerolog.Level
		}{
			{"debug", zerolog.DebugLevel},
			{"warn", zerolog.WarnLevel},
			{"error", zerolog.ErrorLevel},
			{"", zerolog.InfoLevel},
			{"loud", zerolog.InfoLevel},
		}

		for _, test := range tests {
			t.Run(test.level, func(t *testing.T) {
				log := NewWithWriter(&bytes.Buffer{}, test.level)
				assert.Equal(t, test.expected, log.GetLevel())
			})
		}
	})

	t.Run("should write json lines with a timestamp", func(t *testing.T) {
		out := &bytes.Buffer{}
		log := NewWithWriter(out, "info")

		log.Debug().Msg("hidden")
		log.Info().Str("label", "trace").Msg("visible")

		line := map[string]any{}
		assert.NoError(t, json.Unmarshal(out.Bytes(), &line))
		assert.Equal(t, "visible", line["message"])
		assert.Equal(t, "trace", line["label"])
		assert.Contains(t, line, "time")
	})
}
