package workflow

import "log/slog"

// Runtime bundles the dependencies that workflow nodes require.
// It is constructed by higher-level composition code from the configured
// agent and infrastructure logger.
type Runtime struct {
	Generator Generator
	Logger    *slog.Logger
}
