package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New builds the process logger. format "console" gives human-readable
// output; anything else is JSON. Unknown levels fall back to info.
func New(level, format string, out io.Writer) zerolog.Logger {
	lvl := zerolog.InfoLevel
	if parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level))); err == nil && parsed != zerolog.NoLevel {
		lvl = parsed
	}
	if out == nil {
		out = os.Stdout
	}
	if strings.EqualFold(strings.TrimSpace(format), "console") {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano
	return zerolog.New(out).
		Level(lvl).
		With().
		Timestamp().
		Str("app", "tourtravel").
		Logger()
}

// Event returns a log event tagged with module, action and request id, the
// fields every service log line carries.
func Event(ev *zerolog.Event, requestID, module, action string) *zerolog.Event {
	return ev.Str("module", module).Str("action", action).Str("request_id", strings.TrimSpace(requestID))
}
