// Package synthesizer is the boundary to the synthesis engine. The engine itself is not part of this repository,
// Run only records that it was asked to start.
package synthesizer

import (
	"context"

	"github.com/outofforest/logger"
	"go.uber.org/zap"
)

// Run starts synthesis.
func Run(ctx context.Context, verbose bool) error {
	log := logger.Get(ctx)
	log.Info("Synthesizer invoked", zap.Bool("verbose", verbose))
	log.Debug("Verbose output enabled")
	return nil
}
