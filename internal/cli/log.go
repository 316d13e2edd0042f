package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/rs/xid"
)

// newLogger returns a text logger writing to w at level,
// tagged with a unique run ID.
func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: lvl,
	})
	return slog.New(handler).With("run", xid.New().String()), nil
}
