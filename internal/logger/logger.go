package logger

import (
	"io"
	"log/slog"
)

// L is the logger used by all containers. It discards everything until Set is called.
var L = discard()

// Set replaces the package logger, nil restores the discarding one.
func Set(l *slog.Logger) {
	if l == nil {
		L = discard()
		return
	}
	L = l
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
