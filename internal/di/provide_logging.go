package di

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// DefaultLogLevel keeps successful runs silent
const DefaultLogLevel = "disabled"

// NewLogger creates a console-formatted zerolog.Logger writing to w.
// When stderr is not a terminal (as in CI), output is not colorized.
func NewLogger(w io.Writer, level string) (zerolog.Logger, error) {
	if level == "" {
		level = DefaultLogLevel
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", level, err)
	}

	_, isFile := w.(*os.File)
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: !isFile}).
		Level(lvl).
		With().
		Timestamp().
		Logger(), nil
}
