package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// New creates the service root logger. Unknown or empty levels fall back to info.
func New(level string) *zerolog.Logger {
	return NewWithWriter(os.Stdout, level)
}

func NewWithWriter(w io.Writer, level string) *zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs

	parsed, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		parsed = zerolog.InfoLevel
	}

	log := zerolog.New(w).
		Level(parsed).
		With().
		Timestamp().
		Logger()

	return &log
}
