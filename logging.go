package ssf

import (
	"sync"

	"go.uber.org/zap"
)

// logger is the package-wide diagnostic sink. It defaults to a no-op
// logger so importing this package never writes to stderr by surprise;
// callers that want visibility into cache evictions or the General
// fallback path call SetLogger.
var (
	loggerMu sync.RWMutex
	logger   = zap.NewNop()
)

// SetLogger replaces the package logger. Passing nil restores the no-op
// default.
func SetLogger(l *zap.Logger) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

func currentLogger() *zap.Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return logger
}
