package transpiler

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the transpiler package's logger instance. It is a no-op
// logger by default, so embedding this package never writes anything
// unless a caller opts in with SetLogger.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger configures the transpiler package's logger. Call this before
// any Transpile call whose diagnostics you want recorded; logging never
// affects the emitted SkSL, only what gets traced alongside it.
func SetLogger(l *zap.Logger) {
	logger = l
}
