package config

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger 控制台日志，输出到 stderr
func Logger(level string) zerolog.Logger {
	return NewLogger(os.Stderr, level)
}

// NewLogger 创建日志，级别无效时使用 info
func NewLogger(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	output := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}
	return zerolog.New(output).Level(lvl).With().Timestamp().Logger()
}
