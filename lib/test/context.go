package test

import (
	"context"
	"testing"

	"github.com/outofforest/logger"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// Context returns new context with logger.
func Context(t *testing.T) context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	return logger.WithLogger(ctx, logger.New(logger.DefaultConfig))
}

// ObservedContext returns new context with logger recording entries of all levels.
func ObservedContext(t *testing.T) (context.Context, *observer.ObservedLogs) {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	core, logs := observer.New(zap.DebugLevel)
	return logger.WithLogger(ctx, zap.New(core)), logs
}
