// Package logging owns the process-wide logger. The level starts at WARN
// and is raised once per invocation from the verbosity flags.
package logging

import (
	"io"
	"log/slog"
)

var level = newLevel()

func newLevel() *slog.LevelVar {
	v := new(slog.LevelVar)
	v.Set(slog.LevelWarn)
	return v
}

// Setup installs the process-wide logger writing to w.
var Setup = func(w io.Writer) {
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})))
}

// SetLevel changes the level of the process-wide logger.
var SetLevel = func(l slog.Level) {
	level.Set(l)
}

// Level returns the current level of the process-wide logger.
func Level() slog.Level {
	return level.Level()
}
