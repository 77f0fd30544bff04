package cli

import (
	"context"

	"github.com/google/uuid"
	"github.com/outofforest/logger"
	"go.uber.org/zap"
)

// withVerbosity tags context logger with the invocation id and drops debug entries unless verbose.
// Core of the process logger is kept so its format is used for all the entries.
func withVerbosity(ctx context.Context, verbose bool) context.Context {
	log := logger.Get(ctx).With(zap.String("invocation", uuid.New().String()))
	if !verbose {
		log = log.WithOptions(zap.IncreaseLevel(zap.InfoLevel))
	}
	return logger.WithLogger(ctx, log)
}
