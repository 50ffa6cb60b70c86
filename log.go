package kiri

import "go.uber.org/zap"

// logger is used only by the ambient packages (cmd/kiri, playout) for
// diagnostic output — per-rollout move counts and scores.
// The core rule engine above (Position's own methods) never logs: every
// failure is returned to the caller as an error, never logged or
// surfaced globally.
var logger = zap.NewNop()

// SetLogger installs the *zap.Logger used by this module's ambient
// components. Passing nil restores the no-op logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		logger = zap.NewNop()
		return
	}
	logger = l
}

// Logger returns the currently installed logger.
func Logger() *zap.Logger { return logger }
