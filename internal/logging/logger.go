// Package logging builds the zerolog logger used across tasks.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// New returns a logger at the given level. With a file it appends JSON lines
// to it; otherwise it writes human-readable output to stderr.
//
// The level parameter can be one of: debug, info, warn, error, fatal, disabled.
func New(level string, file string) (zerolog.Logger, func(), error) {
	return newLogger(level, file, os.Stderr)
}

func newLogger(level, file string, stderr io.Writer) (zerolog.Logger, func(), error) {
	closer := func() {}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Logger{}, closer, err
	}

	var writer io.Writer = zerolog.ConsoleWriter{Out: stderr, TimeFormat: time.Kitchen, NoColor: true}
	if file != "" {
		if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
			return zerolog.Logger{}, closer, fmt.Errorf("create logs dir: %w", err)
		}

		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Logger{}, closer, err
		}
		closer = func() { _ = f.Close() }
		writer = f
	}

	l := zerolog.New(writer).
		With().
		Timestamp().
		Logger().
		Level(lvl)

	return l, closer, nil
}
