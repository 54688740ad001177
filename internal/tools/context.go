package tools

import (
	"context"
	"sync"

	"github.com/xingmcp/toolservers/internal/common"
)

type loggerKey struct{}

var silentLogger = sync.OnceValue(common.NewSilentLogger)

// withLogger attaches the per-invocation logger to ctx.
func withLogger(ctx context.Context, logger *common.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// LoggerFrom returns the invocation logger stored in ctx, then fallback, then a silent logger.
func LoggerFrom(ctx context.Context, fallback *common.Logger) *common.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*common.Logger); ok && l != nil {
		return l
	}
	if fallback != nil {
		return fallback
	}
	return silentLogger()
}
