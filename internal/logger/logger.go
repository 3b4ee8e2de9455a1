// Package logger builds the application's zap logger.
//
// The TUI owns the terminal, so logs go to a file by default; pass
// "stderr" as the path to log to the console instead (useful when the
// UI is not running, e.g. in scripts).
package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level controls the verbosity of the logger.
type Level int

const (
	// LevelOff disables all log output.
	LevelOff Level = iota
	// LevelNormal enables info, warn, and error output.
	LevelNormal
	// LevelVerbose enables all output including debug.
	LevelVerbose
)

// New creates a sugared zap logger writing to the given file path. The
// returned func flushes and must be called on shutdown. A file that
// cannot be opened is reported as an error; callers typically fall back
// to stderr.
func New(level Level, path string) (*zap.SugaredLogger, func(), error) {
	if level == LevelOff {
		nop := zap.NewNop().Sugar()
		return nop, func() {}, nil
	}

	zapLevel := zapcore.InfoLevel
	if level == LevelVerbose {
		zapLevel = zapcore.DebugLevel
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)

	if path != "" && path != "stderr" {
		if dir := filepath.Dir(path); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, nil, fmt.Errorf("create log dir: %w", err)
			}
		}
		cfg.OutputPaths = []string{path}
		cfg.ErrorOutputPaths = []string{path}
	} else {
		cfg.OutputPaths = []string{"stderr"}
		cfg.ErrorOutputPaths = []string{"stderr"}
	}

	base, err := cfg.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("build logger: %w", err)
	}

	log := base.Sugar()
	return log, func() { _ = base.Sync() }, nil
}
